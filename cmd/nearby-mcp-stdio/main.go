package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/nearby/api"
	"github.com/qyinm/nearby/config"
	"github.com/qyinm/nearby/logging"
	"github.com/qyinm/nearby/mcpsrv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// stdout carries the protocol
	log := logging.New(cfg.LogLevel, os.Stderr)

	source := api.New(cfg.APIURL, cfg.APITimeout, log)
	server := mcpsrv.NewServer(source, "dev", &mcpsrv.ServerOptions{Log: log})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error("stdio mcp server failed", "error", err)
		os.Exit(1)
	}
}
