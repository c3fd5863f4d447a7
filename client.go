package extxmlfptf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/saarmobil/extxml-to-fptf/config"
	"github.com/saarmobil/extxml-to-fptf/converter"
	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// Client is the high-level search API over an ExtXML endpoint. It holds no
// mutable state between calls and is safe for concurrent use.
type Client struct {
	transport extxml.Transport
	token     string
	now       func() time.Time
	location  *time.Location
}

// Option customizes a Client.
type Option func(*Client)

// WithClock overrides the reference clock used when decoding wire times.
// Tests use this to pin "now" to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithLocation overrides the timezone the reference clock is interpreted
// in. Wire times carry no zone of their own.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) { c.location = loc }
}

// New creates a Client from the application configuration, posting over
// HTTP to the configured endpoint.
func New(cfg config.AppConfig) (*Client, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = config.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	transport := extxml.NewHTTPTransport(cfg.Endpoint, time.Duration(cfg.TimeoutMS)*time.Millisecond, cfg.Retries)
	return NewWithTransport(transport, cfg.AccessID, WithLocation(loc)), nil
}

// NewWithTransport creates a Client over a caller-provided transport.
func NewWithTransport(transport extxml.Transport, accessToken string, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		token:     accessToken,
		now:       time.Now,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reference returns the current reference instant in the client's zone.
// Wire time decoding is relative to this clock.
func (c *Client) Reference() time.Time {
	return c.now().In(c.location)
}

// SearchBatch runs one location search per query in a single request and
// returns the result lists in request order.
func (c *Client) SearchBatch(ctx context.Context, queries []extxml.SearchQuery) ([][]fptf.Place, error) {
	body, err := extxml.BuildLocationSearch(queries, c.token)
	if err != nil {
		return nil, err
	}
	raw, err := c.transport.PostRaw(ctx, body)
	if err != nil {
		return nil, err
	}
	doc, err := extxml.ParseDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	env, err := converter.ParseResponse(doc)
	if err != nil {
		return nil, err
	}
	return converter.CollateLocationResults(queries, env)
}

// SearchStations looks up stations matching the given text.
func (c *Client) SearchStations(ctx context.Context, text string) ([]fptf.Place, error) {
	return c.searchOne(ctx, text, extxml.KindStation)
}

// SearchAddresses looks up addresses matching the given text.
func (c *Client) SearchAddresses(ctx context.Context, text string) ([]fptf.Place, error) {
	return c.searchOne(ctx, text, extxml.KindAddress)
}

// SearchPOIs looks up points of interest matching the given text.
func (c *Client) SearchPOIs(ctx context.Context, text string) ([]fptf.Place, error) {
	return c.searchOne(ctx, text, extxml.KindPOI)
}

// SearchAny looks up places of any kind matching the given text.
func (c *Client) SearchAny(ctx context.Context, text string) ([]fptf.Place, error) {
	return c.searchOne(ctx, text, extxml.KindAny)
}

func (c *Client) searchOne(ctx context.Context, text string, kind extxml.LocationKind) ([]fptf.Place, error) {
	results, err := c.SearchBatch(ctx, []extxml.SearchQuery{{Text: text, Kind: kind}})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &extxml.ProtocolError{Msg: "empty response envelope for single-query search"}
	}
	return results[0], nil
}
