// Package config loads and validates the application configuration from
// config.yml: the ExtXML endpoint, the access token, the server timezone,
// and transport tuning.
package config
