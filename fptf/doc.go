// Package fptf defines the normalized, provider-agnostic transit records
// this library produces: stations, plain locations, and operators, modeled
// after the Friendly Public Transport Format. Downstream consumers depend
// on these types only, never on the ExtXML wire format.
package fptf
