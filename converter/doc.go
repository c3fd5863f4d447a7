// Package converter is the main entry point for ExtXML to FPTF conversion.
//
// This package turns parsed ExtXML response trees into normalized transit
// records: it validates and demultiplexes the ResC response envelope,
// converts station/address/POI elements into fptf records, decodes
// fixed-point wire coordinates, resolves interval-tagged journey
// attributes such as the operator, and reconstructs absolute timestamps
// from the protocol's day-offset time encoding.
//
// # Usage
//
//	doc, err := extxml.ParseDocument(bytes.NewReader(raw))
//	env, err := converter.ParseResponse(doc)
//	results, err := converter.CollateLocationResults(queries, env)
//
// Every function is a pure function of its input element; the only ambient
// dependency is the reference clock the time decoders take as an explicit
// parameter, so tests can pin "now" to a fixed instant.
package converter
