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

	cancelBookingHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/create_booking"
	createEnrollmentHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/create_enrollment"
	createProcedureHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/create_procedure"
	deleteEnrollmentHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/delete_enrollment"
	deleteMasterProcedureHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/delete_master_procedure"
	generateSlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_booking"
	getMasterProceduresHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_master_procedures"
	getProceduresHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_procedures"
	getTimeSlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_time_slots"
	getUserBookingsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_user_bookings"
	getUserEnrollmentsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_user_enrollments"
	upsertMasterProcedureHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/upsert_master_procedure"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/config"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/enrollment"
	listingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/listing"
	procedureRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/procedure"
	timeslotRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/timeslot"
	profileServiceClient "github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
	bookingsService "github.com/m04kA/SalonBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SalonBookingService/internal/service/catalog"
	enrollmentsService "github.com/m04kA/SalonBookingService/internal/service/enrollments"
	slotsService "github.com/m04kA/SalonBookingService/internal/service/slots"
	cancelBookingUC "github.com/m04kA/SalonBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SalonBookingService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SalonBookingService/internal/usecase/generate_slots"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/logger"
	"github.com/m04kA/SalonBookingService/pkg/metrics"
	"github.com/m04kA/SalonBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SalonBookingService/pkg/txmanager"
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

	log.Info("Starting SalonBookingService...")
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

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository       *timeslotRepo.Repository
		bookingRepository    *bookingRepo.Repository
		enrollmentRepository *enrollmentRepo.Repository
		procedureRepository  *procedureRepo.Repository
		listingRepository    *listingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		enrollmentRepository = enrollmentRepo.NewRepository(wrappedDB)
		procedureRepository = procedureRepo.NewRepository(wrappedDB)
		listingRepository = listingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = timeslotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		enrollmentRepository = enrollmentRepo.NewRepository(db)
		procedureRepository = procedureRepo.NewRepository(db)
		listingRepository = listingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	enrollmentSvc := enrollmentsService.NewService(enrollmentRepository, listingRepository, log)
	catalogSvc := catalogService.NewService(procedureRepository, listingRepository, profileClient, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		listingRepository,
		profileClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		enrollmentRepository,
		profileClient,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	createEnrollment := createEnrollmentHandler.NewHandler(enrollmentSvc, log)
	deleteEnrollment := deleteEnrollmentHandler.NewHandler(enrollmentSvc, log)
	getUserEnrollments := getUserEnrollmentsHandler.NewHandler(enrollmentSvc, log)
	createProcedure := createProcedureHandler.NewHandler(catalogSvc, log)
	getProcedures := getProceduresHandler.NewHandler(catalogSvc, log)
	getMasterProcedures := getMasterProceduresHandler.NewHandler(catalogSvc, log)
	upsertMasterProcedure := upsertMasterProcedureHandler.NewHandler(catalogSvc, log)
	deleteMasterProcedure := deleteMasterProcedureHandler.NewHandler(catalogSvc, log)

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

	// Расписание мастера: все слоты и только свободные
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог процедур и прейскуранты мастеров
	api.HandleFunc("/procedures", getProcedures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/procedures", getMasterProcedures.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Генерация слотов по рабочему окну мастера
	protected.HandleFunc("/time-slots", generateSlots.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Записи (пользователь-мастер-процедура) ---
	protected.HandleFunc("/users/{userId}/user-procedures", createEnrollment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/user-procedures", getUserEnrollments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/user-procedures", deleteEnrollment.Handle).Methods(http.MethodDelete)

	// --- Каталог (для администраторов и мастеров) ---
	// Создание процедуры в каталоге
	protected.HandleFunc("/procedures", createProcedure.Handle).Methods(http.MethodPost)

	// Управление прейскурантом мастера
	protected.HandleFunc("/masters/{masterId}/procedures/{procedureId}", upsertMasterProcedure.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/masters/{masterId}/procedures/{procedureId}", deleteMasterProcedure.Handle).Methods(http.MethodDelete)

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
