package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/dogbreeds/config"
	"github.com/Gunvolt24/dogbreeds/internal/kafka"
	"github.com/Gunvolt24/dogbreeds/internal/ports"
	"github.com/Gunvolt24/dogbreeds/internal/repo/dogapi"
	rest "github.com/Gunvolt24/dogbreeds/internal/transport/http"
	"github.com/Gunvolt24/dogbreeds/internal/usecase"
	"github.com/Gunvolt24/dogbreeds/pkg/logger"
	"github.com/Gunvolt24/dogbreeds/pkg/metrics"
	"github.com/Gunvolt24/dogbreeds/pkg/telemetry"
	"github.com/Gunvolt24/dogbreeds/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, метрики, consumer).
type App struct {
	Logger        ports.Logger          // логгер
	Lookup        ports.SubBreedLookup  // кэширующий поиск подпород
	HTTPServer    *http.Server          // HTTP API
	MetricsServer *http.Server          // отдельный /metrics; nil — только на API
	KafkaConsumer ports.MessageConsumer // прогрев из Kafka; nil — выключен

	gracefulTimeout time.Duration // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	// Сборка зависимостей доменного слоя.
	fetcher := dogapi.NewBreedFetcher(cfg.DogAPI.BaseURL, cfg.DogAPI.Timeout, nil)
	lookup, err := usecase.NewCachingLookup(fetcher,
		usecase.WithLogger(logg),
		usecase.WithCapacity(cfg.Cache.Capacity),
		usecase.WithTTL(cfg.Cache.TTL),
	)
	if err != nil {
		_ = shutdownTrace(context.Background())
		_ = cleanupLogger()
		return nil, func() {}, err
	}
	validator := validate.NewBreedValidator()

	// Прогрев кэша
	if names := cfg.Cache.WarmUp; len(names) > 0 {
		valid, invalid := validate.SplitValid(ctx, validator, names)
		if len(invalid) > 0 {
			logg.Warnf(ctx, "warm-up: invalid breed names skipped: %q", invalid)
		}
		lookup.WarmUp(ctx, valid)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(lookup, validator, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Отдельный сервер метрик (если адрес задан и не совпадает с API).
	var metricsSrv *http.Server
	if addr := strings.TrimSpace(cfg.Metrics.Addr); addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	app := &App{
		Logger:          logg,
		Lookup:          lookup,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Конфигурация и создание консьюмера Kafka.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = kafka.NewConsumer(&kafkaCfg, lookup, validator, logg)
		app.KafkaConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск сервера метрик.
	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped (calls made: %d)", a.callsMade())
	return runErr
}

func (a *App) callsMade() int {
	if a.Lookup == nil {
		return 0
	}
	return a.Lookup.CallsMade()
}
