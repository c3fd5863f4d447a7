package config

// AppConfig is the root configuration structure
type AppConfig struct {
	// Endpoint is the ExtXML gateway URL, e.g.
	// http://saarfahrplan.de/cgi-bin/extxml.exe
	Endpoint string `yaml:"endpoint" validate:"required,url"`

	// AccessID is the access token embedded in every request document.
	AccessID string `yaml:"accessId" validate:"required"`

	// Timezone is the IANA zone the server's wire times are relative to.
	Timezone string `yaml:"timezone"`

	// TimeoutMS bounds a single HTTP POST to the endpoint.
	TimeoutMS int `yaml:"timeoutMS" validate:"gte=0"`

	// Retries is how many times a failed post is retried with backoff.
	// Zero means a single attempt.
	Retries int `yaml:"retries" validate:"gte=0,lte=10"`
}
