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

	createBookingHandler "github.com/m04kA/SwagDay-BookingService/internal/api/handlers/create_booking"
	getCalendarHandler "github.com/m04kA/SwagDay-BookingService/internal/api/handlers/get_calendar"
	listBookingsHandler "github.com/m04kA/SwagDay-BookingService/internal/api/handlers/list_bookings"
	navigateMonthHandler "github.com/m04kA/SwagDay-BookingService/internal/api/handlers/navigate_month"
	selectDateHandler "github.com/m04kA/SwagDay-BookingService/internal/api/handlers/select_date"
	"github.com/m04kA/SwagDay-BookingService/internal/api/middleware"
	"github.com/m04kA/SwagDay-BookingService/internal/config"
	"github.com/m04kA/SwagDay-BookingService/internal/infra/notify"
	bookingRepo "github.com/m04kA/SwagDay-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SwagDay-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SwagDay-BookingService/internal/service/bookings"
	"github.com/m04kA/SwagDay-BookingService/internal/service/calendarstate"
	createBookingUC "github.com/m04kA/SwagDay-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/SwagDay-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/SwagDay-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SwagDay-BookingService/pkg/logger"
	"github.com/m04kA/SwagDay-BookingService/pkg/metrics"
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

	log.Info("Starting SwagDay-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Подписываемся на поток изменений таблицы бронирований
	listener, err := notify.New(
		cfg.Database.DSN(),
		cfg.Listener.Channel,
		time.Duration(cfg.Listener.MinReconnectInterval)*time.Second,
		time.Duration(cfg.Listener.MaxReconnectInterval)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to start change listener: %v", err)
	}
	defer listener.Close()

	// Инициализируем кэш доступности и выполняем первоначальную загрузку
	availabilityCache := availability.NewCache(bookingRepository, log, metricsCollector)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := availabilityCache.Refresh(startupCtx); err != nil {
		// Не фатально: снапшот пуст, следующие уведомления или refresh его наполнят
		log.Warn("Initial availability refresh failed: %v", err)
	}
	cancelStartup()

	// Запускаем обновление кэша по уведомлениям
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go availabilityCache.Run(runCtx, listener)

	// Инициализируем состояние календаря (отображаемый месяц + выбор даты)
	calendarState := calendarstate.New(availabilityCache, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityCache,
		calendarState,
		metricsCollector,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(calendarState, availabilityCache, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	navigateMonth := navigateMonthHandler.NewHandler(calendarState, log)
	selectDate := selectDateHandler.NewHandler(calendarState, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Календарная сетка
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Навигация по месяцам
	api.HandleFunc("/calendar/navigate", navigateMonth.Handle).Methods(http.MethodPost)

	// Выбор даты
	api.HandleFunc("/calendar/select", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar/select", selectDate.HandleClear).Methods(http.MethodDelete)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем обновление кэша и сбор метрик
	cancelRun()
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
