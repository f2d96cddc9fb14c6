package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/obrafin/internal/app"
	"github.com/MrJamesThe3rd/obrafin/internal/config"
	obrafinHttp "github.com/MrJamesThe3rd/obrafin/internal/http"
	costCenterHandler "github.com/MrJamesThe3rd/obrafin/internal/http/costcenter"
	importHandler "github.com/MrJamesThe3rd/obrafin/internal/http/importcsv"
	ledgerHandler "github.com/MrJamesThe3rd/obrafin/internal/http/ledger"
	masterDataHandler "github.com/MrJamesThe3rd/obrafin/internal/http/masterdata"
	productHandler "github.com/MrJamesThe3rd/obrafin/internal/http/product"
	reportHandler "github.com/MrJamesThe3rd/obrafin/internal/http/report"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/logger"
	"github.com/MrJamesThe3rd/obrafin/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(cfg.Log.Format, cfg.Log.Level))

	metrics := observability.NewMetrics()

	svc, err := app.New(cfg, ledger.WithRecorder(metrics))
	if err != nil {
		slog.Error("failed to build services", "error", err)
		os.Exit(1)
	}

	var (
		costCenterH = costCenterHandler.NewHandler(svc.CostCenters)
		productH    = productHandler.NewHandler(svc.Products)
		ledgerH     = ledgerHandler.NewHandler(svc.Ledger)
		masterDataH = masterDataHandler.NewHandler(svc.Directory)
		reportH     = reportHandler.NewHandler(svc.Reports, svc.Export, svc.Products)
		importH     = importHandler.NewHandler(svc.Importer)
	)

	router := obrafinHttp.New(obrafinHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		Timeout:        cfg.Server.Timeout,
		Production:     cfg.IsProduction(),
		Metrics:        metrics,
	}, costCenterH, productH, ledgerH, masterDataH, reportH, importH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "env", cfg.App.Env)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown", "error", err)
	}
}
