package norgesbank

import (
	"log/slog"
	"time"
)

type Option func(c *Client)

// WithLogger specifies the logger for the client
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithAPIURL specifies the base URL of the statistical data API
func WithAPIURL(url string) Option {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithTimeout specifies the upstream request timeout.
// Defaults to 30s
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithDenominations specifies the quote denomination table
func WithDenominations(table DenominationTable) Option {
	return func(c *Client) {
		c.denominations = table
	}
}
