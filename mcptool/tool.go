// Package mcptool exposes the rate resolution engine as a Model Context
// Protocol tool. The adapter is intentionally thin: it parses tool arguments,
// delegates to the resolver, and flattens every failure into a single
// error-flagged message.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

const (
	serverName    = "exchange-rate-mcp"
	serverVersion = "1.0.0"

	toolName = "get_exchange_rate"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Resolver resolves an exchange rate for a currency pair
type Resolver interface {
	// Resolve derives the base -> target rate, stamped with the given date
	// (today when empty)
	Resolve(
		ctx context.Context,
		base types.Currency,
		target types.Currency,
		date string,
	) (*types.ExchangeRate, error)
}

// tool wires the resolver into the MCP tool handler
type tool struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewServer creates the MCP server exposing the exchange rate tool
func NewServer(resolver Resolver, opts ...Option) *server.MCPServer {
	t := &tool{
		resolver: resolver,
		logger:   noopLogger,
	}

	// Apply the options
	for _, opt := range opts {
		opt(t)
	}

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool(
			toolName,
			mcp.WithDescription(
				"Gets the conversion rate between two currencies, "+
					"derived from the latest Norges Bank reference rates",
			),
			mcp.WithString(
				"baseCurrency",
				mcp.Required(),
				mcp.Description("The currency to convert from, e.g. USD"),
			),
			mcp.WithString(
				"targetCurrency",
				mcp.Required(),
				mcp.Description("The currency to convert to, e.g. EUR"),
			),
			mcp.WithString(
				"date",
				mcp.Description("An optional date (YYYY-MM-DD) to stamp the result with"),
			),
		),
		t.handle,
	)

	return s
}

func (t *tool) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := req.RequireString("baseCurrency")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target, err := req.RequireString("targetCurrency")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	date := req.GetString("date", "")

	text, err := t.resolve(ctx, base, target, date)
	if err != nil {
		t.logger.Error(
			"tool call failed",
			"tool", toolName,
			"base", base,
			"target", target,
			"err", err,
		)

		return mcp.NewToolResultError(
			fmt.Sprintf("unable to get exchange rate: %s", err),
		), nil
	}

	return mcp.NewToolResultText(text), nil
}

// resolve runs the rate resolution and serializes the result
func (t *tool) resolve(ctx context.Context, base, target, date string) (string, error) {
	result, err := t.resolver.Resolve(
		ctx,
		parseCurrency(base),
		parseCurrency(target),
		date,
	)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("unable to serialize result: %w", err)
	}

	return string(out), nil
}

func parseCurrency(v string) types.Currency {
	return types.Currency(strings.ToUpper(strings.TrimSpace(v)))
}
