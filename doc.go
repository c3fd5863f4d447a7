// Package extxmlfptf translates the HAFAS ExtXML transit protocol into
// normalized FPTF records.
//
// The Client wires the pieces together: the extxml package builds
// iso8859-1 request documents and posts them, the converter package
// validates and demultiplexes the response envelope and converts raw
// elements into the fptf package's station, location and operator records.
//
//	cfg := config.Config
//	client, err := extxmlfptf.New(cfg)
//	stations, err := client.SearchStations(ctx, "Saarbrücken Hbf")
//
// The library performs exactly one blocking POST per search call and keeps
// no state between calls.
package extxmlfptf
