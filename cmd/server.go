package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/agent"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/config"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/metrics"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/toolkit"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client/balancereader"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client/contacts"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client/userservice"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/logger"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/token"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func setupApp(cfg *config.Config, log *zerolog.Logger) (*gin.Engine, error) {
	verifier, err := token.NewVerifier(cfg.ClusterPublicKey)
	if err != nil {
		return nil, err
	}

	observer := metrics.NewPrometheusObserver()

	common := []client.OptionFunc{
		client.WithTimeout(cfg.HTTPTimeout),
		client.WithObserver(observer),
	}

	userService, err := userservice.NewClient(log,
		append(common, client.WithBaseURL(cfg.Services.UserServiceURL()))...)
	if err != nil {
		return nil, fmt.Errorf("user service client: %w", err)
	}

	balanceReader, err := balancereader.NewClient(log,
		append(common, client.WithBaseURL(cfg.Services.BalanceReaderURL()), client.WithTokenVerifier(verifier))...)
	if err != nil {
		return nil, fmt.Errorf("balance reader client: %w", err)
	}

	contactsClient, err := contacts.NewClient(log,
		append(common, client.WithBaseURL(cfg.Services.ContactsURL()), client.WithTokenVerifier(verifier))...)
	if err != nil {
		return nil, fmt.Errorf("contacts client: %w", err)
	}

	registry := toolkit.NewRegistry()
	err = toolkit.RegisterBankTools(registry, toolkit.BankServices{
		UserService:     userService,
		BalanceReader:   balanceReader,
		Contacts:        contactsClient,
		TimestampFormat: cfg.TimestampFormat,
	})
	if err != nil {
		return nil, err
	}

	agents := agent.BankAgents(cfg.AgentModel)
	if err := agents.Validate(registry); err != nil {
		return nil, err
	}

	return web.SetupRouter(web.Dependencies{
		Logger:     log,
		Registry:   registry,
		Agents:     agents,
		Observer:   observer,
		Production: cfg.IsProduction(),
	}), nil
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.New("").Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.LogLevel)

	appRouter, err := setupApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up server")
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}
