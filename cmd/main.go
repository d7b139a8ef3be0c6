package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CourtBookingForm/internal/api"
	"github.com/m04kA/SMC-CourtBookingForm/internal/config"
	bookingServiceClient "github.com/m04kA/SMC-CourtBookingForm/internal/integrations/bookingservice"
	pricingServiceClient "github.com/m04kA/SMC-CourtBookingForm/internal/integrations/pricingservice"
	formService "github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
	commitBookingUC "github.com/m04kA/SMC-CourtBookingForm/internal/usecase/commit_booking"
	refreshQuoteUC "github.com/m04kA/SMC-CourtBookingForm/internal/usecase/refresh_quote"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtBookingForm...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Ограничение частоты запросов расчёта, общее для всех сессий
	var quoteLimiter *rate.Limiter
	if cfg.PricingService.RateLimit > 0 {
		quoteLimiter = rate.NewLimiter(rate.Limit(cfg.PricingService.RateLimit), cfg.PricingService.Burst)
	}

	// Инициализируем интеграционных клиентов
	pricingClient := pricingServiceClient.NewClient(
		cfg.PricingService.URL,
		time.Duration(cfg.PricingService.Timeout)*time.Second,
		quoteLimiter,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PricingService=%s timeout=%ds rate=%.1f/s, BookingService=%s timeout=%ds)",
		cfg.PricingService.URL, cfg.PricingService.Timeout, cfg.PricingService.RateLimit,
		cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Инициализируем use cases
	refreshQuoteUseCase := refreshQuoteUC.NewUseCase(pricingClient, metricsCollector, log)
	commitBookingUseCase := commitBookingUC.NewUseCase(bookingClient, metricsCollector, log)

	// Инициализируем сервис форм
	formSvc := formService.NewService(
		refreshQuoteUseCase,
		commitBookingUseCase,
		metricsCollector,
		log,
		formService.Options{
			Session: formService.SessionOptions{
				QuoteDebounce:  time.Duration(cfg.Form.QuoteDebounceMs) * time.Millisecond,
				KeepStaleQuote: cfg.Form.KeepStaleQuote,
			},
			SessionTTL:      time.Duration(cfg.Form.SessionTTLMinutes) * time.Minute,
			CleanupInterval: time.Duration(cfg.Form.CleanupIntervalSeconds) * time.Second,
		},
	)

	// Очистка неактивных сессий
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go formSvc.Run(janitorCtx)
	log.Info("Session janitor started (ttl=%dm, interval=%ds)",
		cfg.Form.SessionTTLMinutes, cfg.Form.CleanupIntervalSeconds)

	// Настраиваем роутер
	handler := api.NewRouter(api.RouterConfig{
		FormService:    formSvc,
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем очистку и закрываем сессии, отменяя запросы расчёта
	stopJanitor()
	formSvc.Shutdown()

	log.Info("Server stopped gracefully")
}
