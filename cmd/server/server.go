package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	otelapi "go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/internal/backend"
	"PontoWeb/internal/middleware"
	"PontoWeb/internal/router"
	"PontoWeb/pkg/geocode"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/otel"
	"PontoWeb/pkg/snowflake"
	"PontoWeb/pkg/token"
	"PontoWeb/storage"
)

const serviceVersion = "1.0.0"

func main() {
	// valida antes de qualquer coisa: sem segredo não há servidor
	config.MustValidate()

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	defer storage.Close()

	otelShutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
		ServiceName:    config.Cfg.ServiceName,
		ServiceVersion: serviceVersion,
		Environment:    config.Cfg.Environment,
		OTLPEndpoint:   config.Cfg.OTLPEndpoint,
		SampleRatio:    config.Cfg.OTelSampleRate,
	})
	if err != nil {
		logger.Logger.Warn("Failed to initialize OpenTelemetry", zap.Error(err))
		logger.Logger.Info("Telemetry will be disabled, traces and metrics may not be exported")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
			}
		}()
	}

	if err := middleware.InitMetrics(otelapi.Meter("pontoweb-server")); err != nil {
		logger.Logger.Fatal("Failed to initialize HTTP metrics", zap.Error(err))
	}

	if err := snowflake.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// cliente da geocodificação reversa; falha só degrada a exibição
	if err := geocode.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize geocode client", zap.Error(err))
		logger.Logger.Info("Geocoding will be disabled, punch locations fall back to a placeholder")
	}

	// cliente da API remota de ponto
	backend.Init(config.Cfg.BackendBaseURL, time.Duration(config.Cfg.BackendTimeoutMS)*time.Millisecond)

	if err := token.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize token package", zap.Error(err))
	} // token antes do middleware, o middleware depende do gerador

	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
		zap.String("backend", config.Cfg.BackendBaseURL),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	tracerOpt, tracingMiddleware := middleware.NewServerTracerConfig()
	h := server.Default(server.WithHostPorts(addr), tracerOpt)
	h.Use(tracingMiddleware)

	router.Register(h)

	// desligamento gracioso
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
