// Package extxml implements the wire level of the HAFAS ExtXML protocol:
// the generic element tree responses are parsed into, the request document
// builders, and the HTTP transport that carries them.
//
// # Protocol shape
//
// Requests are iso8859-1 encoded XML documents rooted at ReqC, carrying the
// caller's access token. Responses are iso8859-1 XML rooted at ResC, with
// every element qualified by the fixed urn:ExtXml namespace. The namespace
// URI is part of the protocol contract and is not configurable.
//
// # Usage
//
// Build a location search request:
//
//	body, err := extxml.BuildLocationSearch([]extxml.SearchQuery{
//	    {Text: "Hauptbahnhof", Kind: extxml.KindStation},
//	}, accessToken)
//
// Post it and parse the response:
//
//	transport := extxml.NewHTTPTransport(endpoint, 10*time.Second, 0)
//	raw, err := transport.PostRaw(ctx, body)
//	doc, err := extxml.ParseDocument(bytes.NewReader(raw))
//
// The resulting Element tree is consumed by the converter package, which
// turns it into normalized FPTF records.
package extxml
