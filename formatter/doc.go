// Package formatter renders normalized FPTF records for output and offers
// simple post-query filtering. The CLI is its main consumer; library users
// typically marshal the records themselves.
package formatter
