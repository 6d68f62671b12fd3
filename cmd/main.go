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

	cancelAppointmentHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/list_appointments"
	loginHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/login"
	servicesHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/services"
	settingsHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/settings"
	staffHandler "github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers/staff"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/api/middleware"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/config"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/infra/migrate"
	appointmentRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/appointment"
	scheduleRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/schedule"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	settingsRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/settings"
	staffRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/staff"
	userRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/user"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/integrations/linenotify"
	appointmentsService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/appointments"
	authService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/auth"
	catalogService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog"
	settingsService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings"
	createAppointmentUC "github.com/suphotsudsee/queue-booking-app-v2/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/suphotsudsee/queue-booking-app-v2/internal/usecase/get_available_slots"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/dbmetrics"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/logger"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/metrics"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/simpletxmanager"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/txmanager"
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

	log.Info("Starting queue-booking-app...")
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

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Инициализируем клиент LINE Notify
	notifier := linenotify.NewClient(
		cfg.Notify.LineToken,
		time.Duration(cfg.Notify.Timeout)*time.Second,
		log,
	)
	if cfg.Notify.LineToken == "" {
		log.Info("LINE Notify token is empty, notifications disabled")
	} else {
		log.Info("LINE Notify client initialized (timeout=%ds)", cfg.Notify.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		staffRepository       *staffRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		settingsRepository    *settingsRepo.Repository
		userRepository        *userRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notifier,
		log,
	)

	// Сидируем администратора при первом запуске
	if err := authSvc.EnsureAdmin(
		context.Background(),
		cfg.Auth.AdminName,
		cfg.Auth.AdminEmail,
		cfg.Auth.AdminPassword,
	); err != nil {
		log.Fatal("Failed to ensure admin account: %v", err)
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		settingsRepository,
		appointmentRepository,
		txMgr,
		notifier,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	staff := staffHandler.NewHandler(catalogSvc, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)

	authMiddleware := middleware.NewAuth(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetrics(metricsCollector)
		r.Use(metricsMiddleware.Handle)
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог услуг и сотрудников
	api.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", services.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/staff", staff.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}", staff.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/services", staff.HandleListServices).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/schedule", staff.HandleGetSchedule).Methods(http.MethodGet)

	// Настройки салона
	api.HandleFunc("/settings/business-hours", settings.HandleGetBusinessHours).Methods(http.MethodGet)
	api.HandleFunc("/settings/holidays", settings.HandleGetHolidays).Methods(http.MethodGet)

	// Доступные слоты и создание записи
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют токен с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware.RequireAdmin)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/confirm", confirmAppointment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	admin.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", services.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", services.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/staff", staff.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", staff.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", staff.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/staff/{id}/services", staff.HandleAssignService).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}/schedule", staff.HandleReplaceSchedule).Methods(http.MethodPut)

	// --- Настройки ---
	admin.HandleFunc("/settings/business-hours", settings.HandleReplaceBusinessHours).Methods(http.MethodPut)
	admin.HandleFunc("/settings/holidays", settings.HandleReplaceHolidays).Methods(http.MethodPut)

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
