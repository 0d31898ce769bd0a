package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/cancel_booking"
	getAlternativeSlotsHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/get_alternative_slots"
	getBookingHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/get_booking"
	getSlotBookingsHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/get_slot_bookings"
	validateCapacityHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/validate_capacity"
	"github.com/m04kA/SMC-VisitService/internal/api/middleware"
	"github.com/m04kA/SMC-VisitService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/location"
	timeslotRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/timeslot"
	invitationClient "github.com/m04kA/SMC-VisitService/internal/integrations/invitationservice"
	bookingsService "github.com/m04kA/SMC-VisitService/internal/service/bookings"
	capacityService "github.com/m04kA/SMC-VisitService/internal/service/capacity"
	bookSlotUC "github.com/m04kA/SMC-VisitService/internal/usecase/book_slot"
	getAlternativeSlotsUC "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
	validateCapacityUC "github.com/m04kA/SMC-VisitService/internal/usecase/validate_capacity"
	"github.com/m04kA/SMC-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
	"github.com/m04kA/SMC-VisitService/pkg/metrics"
	"github.com/m04kA/SMC-VisitService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VisitService/pkg/txmanager"
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

	log.Info("Starting SMC-VisitService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент InvitationService
	invitations := invitationClient.NewClient(
		cfg.InvitationService.URL,
		time.Duration(cfg.InvitationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (InvitationService=%s timeout=%ds)",
		cfg.InvitationService.URL, cfg.InvitationService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		timeslotRepository *timeslotRepo.Repository
		locationRepository *locationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	capacitySvc := capacityService.NewService(
		timeslotRepository,
		locationRepository,
		invitations,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		timeslotRepository,
		log,
	)

	// Инициализируем use cases
	getAlternativeSlotsUseCase := getAlternativeSlotsUC.NewUseCase(
		timeslotRepository,
		capacitySvc,
		log,
	)

	validateCapacityUseCase := validateCapacityUC.NewUseCase(
		capacitySvc,
		getAlternativeSlotsUseCase,
		log,
	)

	bookSlotUseCase := bookSlotUC.NewUseCase(
		bookingRepository,
		timeslotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	validateCapacity := validateCapacityHandler.NewHandler(validateCapacityUseCase, log)
	getAlternativeSlots := getAlternativeSlotsHandler.NewHandler(getAlternativeSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSlotBookings := getSlotBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка вместимости на момент посещения
	api.HandleFunc("/capacity/validate", validateCapacity.Handle).Methods(http.MethodPost)

	// Поиск альтернативных слотов
	api.HandleFunc("/capacity/alternative-slots", getAlternativeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Бронирование мест в слоте
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Бронирования слота на дату
	protected.HandleFunc("/timeslots/{timeSlotId}/bookings", getSlotBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
