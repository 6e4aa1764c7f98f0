package mcptool

import "log/slog"

type Option func(t *tool)

// WithLogger specifies the logger for the tool handler
func WithLogger(l *slog.Logger) Option {
	return func(t *tool) {
		t.logger = l
	}
}
