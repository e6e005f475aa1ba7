package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dokind/esim-admin/pkg/handlers/dashboard"
	"github.com/dokind/esim-admin/pkg/services/catalog"
	"github.com/dokind/esim-admin/pkg/services/pricing"

	esimmiddleware "github.com/dokind/esim-admin/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Catalog catalog.Explorer
	Pricing pricing.Manager
	Rates   pricing.RateResolver
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := dashboard.NewHandler(
		config.Dependencies.Catalog,
		config.Dependencies.Pricing,
		config.Dependencies.Rates,
	)

	router := chi.NewRouter()

	router.Use(esimmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/continents", handler.Continents)
		r.Get("/countries/{skuid}/packages", handler.PackageBoard)
		r.Get("/countries/{skuid}/prices", handler.ListPrices)
		r.Post("/countries/{skuid}/prices", handler.SetPrice)
		r.Delete("/countries/{skuid}/prices/{priceid}", handler.DeletePrice)
		r.Get("/rates/usd", handler.Rate)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
