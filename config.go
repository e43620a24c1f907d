// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"net/http"
	"time"
)

// DefaultEndpoint is the well-known production service root.
const DefaultEndpoint = "https://db.docq.cloud"

// Config holds common configuration for docq clients and transports.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Secret is the authentication credential presented by the root
	// client. Session clients carry their own secret.
	//
	// Set by [NewConfig] to the empty string.
	Secret string

	// Endpoint is the service root URL queries are POSTed to.
	//
	// Set by [NewConfig] to [DefaultEndpoint].
	Endpoint string

	// HTTPClient performs the HTTP exchanges when not nil.
	//
	// Left nil by [NewConfig]: [NewHTTPTransport] then builds an
	// HTTP/2-capable client of its own.
	HTTPClient *http.Client

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Secret:        "",
		Endpoint:      DefaultEndpoint,
		HTTPClient:    nil,
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
