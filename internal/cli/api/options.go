package api

import (
	"errors"
	"net/http"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The default one has no
// timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDiagnostics sets the sink that receives request failures.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Client) error {
		if d == nil {
			return errors.New("diagnostics must not be nil")
		}
		c.diag = d
		return nil
	}
}
