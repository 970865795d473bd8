package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carecoin/internal/config"
	"carecoin/internal/core"
	"carecoin/internal/db"
	"carecoin/internal/ethereum"
	"carecoin/internal/http/handler"
	"carecoin/internal/http/handler/middleware"
	"carecoin/internal/http/payload"
	"carecoin/internal/http/server"
	"carecoin/internal/metrics"
	"carecoin/internal/repository"
	"carecoin/pkg/log"

	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "carecoin"
	pingTimeout = 5 * time.Second
)

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	if err := config.LoadEnvFiles(".env", ".env.local"); err != nil {
		logger.Errorw("failed to load env files", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if config.LogLevel != zapcore.InfoLevel {
		logger = log.NewZapLogger(serviceName, config.LogLevel)
	}

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err = dbConn.Ping(ctx); err != nil {
		logger.Errorw("database is not reachable", "error", err)
		return err
	}

	// repository
	repo := repository.NewCareRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// care service
	careService := core.NewCareService(
		logger,
		repo,
		ethereum.NewMockDeployer())

	// handler
	careHlr := handler.NewCareHandler(
		logger,
		payload.DecodeValidator{},
		careService)

	// metrics
	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewMetricsMiddleware(httpMetrics).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterUser, careHlr.HandleRegisterUser)
	mux.HandleFunc(handler.GetUser, careHlr.HandleGetUser)
	mux.HandleFunc(handler.GetContracts, careHlr.HandleGetContracts)
	mux.HandleFunc(handler.DeployContracts, careHlr.HandleDeployContracts)
	mux.HandleFunc(handler.SimulateDeployment, careHlr.HandleSimulateDeployment)
	mux.HandleFunc(handler.SubmitCare, careHlr.HandleSubmitCare)
	mux.HandleFunc(handler.ListCareTokens, careHlr.HandleListCareTokens)
	mux.HandleFunc(handler.AcknowledgeCare, careHlr.HandleAcknowledgeCare)
	mux.HandleFunc(handler.ListCareReceipts, careHlr.HandleListCareReceipts)
	mux.HandleFunc(handler.GetStats, careHlr.HandleGetStats)
	mux.Handle("GET /metrics", metrics.Handler(registry))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
