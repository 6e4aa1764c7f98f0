package serve

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/karashiiro/exchange-rate-mcp/cmd/env"
	"github.com/karashiiro/exchange-rate-mcp/exchange"
	"github.com/karashiiro/exchange-rate-mcp/provider/norgesbank"
	"github.com/karashiiro/exchange-rate-mcp/server/config"
)

// serveCfg wraps the serve configuration
type serveCfg struct {
	config *config.Config

	configPath string
}

// NewServeCmd creates the serve subcommand
func NewServeCmd() *ffcli.Command {
	cfg := &serveCfg{
		config: config.DefaultConfig(),
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg.registerFlags(fs)

	cmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "serve <subcommand> [flags]",
		LongHelp:   "Serves the exchange rate resolution engine",
		FlagSet:    fs,
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}

	cmd.Subcommands = []*ffcli.Command{
		newServeStdioCmd(cfg),
		newServeHTTPCmd(cfg),
	}

	return cmd
}

func (c *serveCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.config.ListenAddress,
		"listen",
		config.DefaultListenAddress,
		"the IP:PORT URL for the HTTP server",
	)

	fs.StringVar(
		&c.config.UpstreamURL,
		"upstream-url",
		config.DefaultUpstreamURL,
		"the base URL of the Norges Bank statistical data API",
	)

	fs.IntVar(
		&c.config.UpstreamTimeout,
		"upstream-timeout",
		config.DefaultUpstreamTimeout,
		"the upstream request timeout, in seconds",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the server TOML configuration, if any",
	)
}

// loadConfig reads the TOML configuration, if given
func (c *serveCfg) loadConfig() error {
	if c.configPath == "" {
		return nil
	}

	serverCfg, err := config.Read(c.configPath)
	if err != nil {
		return err
	}

	c.config = serverCfg

	return nil
}

// newResolver builds the rate resolver on top of the Norges Bank client
func (c *serveCfg) newResolver(logger *slog.Logger) *exchange.Resolver {
	client := norgesbank.NewClient(
		norgesbank.WithLogger(logger),
		norgesbank.WithAPIURL(c.config.UpstreamURL),
		norgesbank.WithTimeout(
			time.Duration(c.config.UpstreamTimeout)*time.Second,
		),
	)

	return exchange.NewResolver(
		client,
		exchange.WithLogger(logger),
	)
}
