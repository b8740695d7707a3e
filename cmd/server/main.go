package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/applicare/backend/internal/booking"
	"github.com/applicare/backend/internal/config"
	"github.com/applicare/backend/internal/directory"
	httpapi "github.com/applicare/backend/internal/http"
	"github.com/applicare/backend/internal/integrations"
	"github.com/applicare/backend/internal/region"
	"github.com/applicare/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "applicare-backend").Logger()

	st := store.New()
	dir := directory.New(directory.Seed())

	resolver := &region.Resolver{
		Client: &region.ZippopotamClient{
			BaseURL: cfg.LookupBaseURL,
			Country: cfg.LookupCountry,
		},
		Table:   region.DefaultTable(),
		Retries: cfg.LookupRetries,
		Timeout: cfg.LookupTimeout,
		Logger:  logger,
	}

	var crm integrations.CRM
	if cfg.CRMURL == "" {
		crm = integrations.StubCRM{}
		logger.Info().Msg("using stub CRM")
	} else {
		crm = integrations.HTTPCRM{BaseURL: cfg.CRMURL}
	}
	var calendar integrations.Calendar
	if cfg.CalendarURL == "" {
		calendar = integrations.StubCalendar{}
		logger.Info().Msg("using stub calendar")
	} else {
		calendar = integrations.HTTPCalendar{BaseURL: cfg.CalendarURL}
	}

	svc := &booking.Service{
		Store:     st,
		Directory: dir,
		Resolver:  resolver,
		CRM:       crm,
		Calendar:  calendar,
		Logger:    logger,
	}

	router := httpapi.Router(cfg, svc, st, dir, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
