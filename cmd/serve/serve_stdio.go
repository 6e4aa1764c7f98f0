package serve

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/karashiiro/exchange-rate-mcp/cmd/env"
	"github.com/karashiiro/exchange-rate-mcp/mcptool"
)

type serveStdioCfg struct {
	rootCfg *serveCfg
}

// newServeStdioCmd creates the serve stdio command
func newServeStdioCmd(rootCfg *serveCfg) *ffcli.Command {
	cfg := &serveStdioCfg{
		rootCfg: rootCfg,
	}

	fs := flag.NewFlagSet("stdio", flag.ExitOnError)
	cfg.rootCfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "stdio",
		ShortUsage: "serve stdio [flags]",
		LongHelp:   "Serves the rate resolution engine as an MCP tool over stdio",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *serveStdioCfg) exec(ctx context.Context, _ []string) error {
	// Read the server configuration, if any
	if err := c.rootCfg.loadConfig(); err != nil {
		return fmt.Errorf("unable to read server config, %w", err)
	}

	// The stdio transport owns stdout, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("unable to load .env file")
	}

	s := mcptool.NewServer(
		c.rootCfg.newResolver(logger),
		mcptool.WithLogger(logger),
	)

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	logger.Info("MCP server listening on stdio")

	return server.NewStdioServer(s).Listen(runCtx, os.Stdin, os.Stdout)
}
