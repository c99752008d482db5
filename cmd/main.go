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

	cancelBookingHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/check_slot"
	createBlockedDateHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/create_booking"
	getAvailableStaffHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/get_available_staff"
	getBookingHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/get_booking"
	getBookingStaffHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/get_booking_staff"
	getStaffAvailabilityHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/get_staff_availability"
	listStaffHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/list_staff"
	saveStaffAvailabilityHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/save_staff_availability"
	updateScheduleHandler "github.com/m04kA/SMC-StaffingService/internal/api/handlers/update_booking_schedule"
	"github.com/m04kA/SMC-StaffingService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffingService/internal/config"
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/assignment"
	availabilityRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/booking"
	reservationRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/reservation"
	staffRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffingService/internal/integrations/notificationservice"
	assignmentService "github.com/m04kA/SMC-StaffingService/internal/service/assignment"
	bookingsService "github.com/m04kA/SMC-StaffingService/internal/service/bookings"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
	staffService "github.com/m04kA/SMC-StaffingService/internal/service/staff"
	checkSlotUC "github.com/m04kA/SMC-StaffingService/internal/usecase/check_slot"
	createBlockedDateUC "github.com/m04kA/SMC-StaffingService/internal/usecase/create_blocked_date"
	createBookingUC "github.com/m04kA/SMC-StaffingService/internal/usecase/create_booking"
	getAvailableStaffUC "github.com/m04kA/SMC-StaffingService/internal/usecase/get_available_staff"
	updateScheduleUC "github.com/m04kA/SMC-StaffingService/internal/usecase/update_booking_schedule"
	"github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
	"github.com/m04kA/SMC-StaffingService/pkg/metrics"
	"github.com/m04kA/SMC-StaffingService/pkg/txmanager"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-StaffingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Prometheus metrics enabled")
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database %s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	staffRepository := staffRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	assignmentRepository := assignmentRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Клиенты внешних сервисов
	notificationClient := notificationservice.NewClient(
		cfg.NotificationService.URL,
		time.Duration(cfg.NotificationService.Timeout)*time.Second,
		log,
	)

	// Правила назначения
	businessHours := staffService.BusinessHours{
		Start: types.TimeString(cfg.Assignment.DefaultStartTime),
		End:   types.TimeString(cfg.Assignment.DefaultEndTime),
	}
	blockingKinds := make([]domain.ReservationKind, 0, len(cfg.Assignment.BlockingKinds))
	for _, kind := range cfg.Assignment.BlockingKinds {
		blockingKinds = append(blockingKinds, domain.ReservationKind(kind))
	}
	checker := conflicts.NewCheckerFromFlag(cfg.Assignment.IsInclusive())
	log.Info("Assignment rules: business hours %s-%s, inclusive boundaries=%t, blocking kinds=%v",
		businessHours.Start, businessHours.End, cfg.Assignment.IsInclusive(), cfg.Assignment.BlockingKinds)

	// Инициализируем сервисы
	assignmentSvc := assignmentService.NewService(
		availabilityRepository,
		staffRepository,
		assignmentRepository,
		notificationClient,
		txMgr,
		metricsCollector,
		log,
	)
	staffSvc := staffService.NewService(
		staffRepository,
		availabilityRepository,
		txMgr,
		businessHours,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		assignmentRepository,
		assignmentSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		reservationRepository,
		checker,
		assignmentSvc,
		txMgr,
		blockingKinds,
		metricsCollector,
		log,
	)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		bookingRepository,
		reservationRepository,
		checker,
		assignmentSvc,
		txMgr,
		blockingKinds,
		metricsCollector,
		log,
	)
	createBlockedDateUseCase := createBlockedDateUC.NewUseCase(
		reservationRepository,
		checker,
		txMgr,
		metricsCollector,
		log,
	)
	checkSlotUseCase := checkSlotUC.NewUseCase(reservationRepository, checker, log)
	getAvailableStaffUseCase := getAvailableStaffUC.NewUseCase(
		availabilityRepository,
		staffRepository,
		reservationRepository,
		checker,
		blockingKinds,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getBookingStaff := getBookingStaffHandler.NewHandler(assignmentSvc, log)
	getAvailableStaff := getAvailableStaffHandler.NewHandler(getAvailableStaffUseCase, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(createBlockedDateUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	saveStaffAvailability := saveStaffAvailabilityHandler.NewHandler(staffSvc, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(staffSvc, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	bookingPath := "/bookings/{bookingType:event_booking|service_booking}/{bookingId:[0-9]+}"

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка слота календаря на пересечения
	api.HandleFunc("/calendar/conflicts", checkSlot.Handle).Methods(http.MethodGet)

	// Сотрудники и их недельное расписание
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/available", getAvailableStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:[0-9]+}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)

	// Бронирование и назначенный на него персонал
	api.HandleFunc(bookingPath, getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc(bookingPath+"/staff", getBookingStaff.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc(bookingPath+"/schedule", updateSchedule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc(bookingPath+"/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Календарь ---
	protected.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)

	// --- Персонал ---
	protected.HandleFunc("/staff/{staffId:[0-9]+}/availability", saveStaffAvailability.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
