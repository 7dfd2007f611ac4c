package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qyinm/nearby/api"
	"github.com/qyinm/nearby/config"
	"github.com/qyinm/nearby/logging"
	"github.com/qyinm/nearby/mcpsrv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(clientCfg.LogLevel, os.Stderr)

	cfg := mcpsrv.LoadConfig()
	source := api.New(clientCfg.APIURL, clientCfg.APITimeout, log)
	server := mcpsrv.NewServer(source, "dev", &mcpsrv.ServerOptions{Log: log})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mcpsrv.NewRouter(server, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	log.Info("nearby-mcp listening", "address", httpServer.Addr, "api", clientCfg.APIURL, "stateless", cfg.Stateless)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
