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

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/create_booking"
	createOrderHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/create_order"
	getBillHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_bill"
	getBookingHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_booking"
	getFreeSizesHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_free_sizes"
	getFreeSlotsHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_free_slots"
	getFreeTablesHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_free_tables"
	getMenuHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_menu"
	getTablesHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/get_tables"
	settleTableHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/settle_table"
	updateMenuHandler "github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers/update_menu"
	"github.com/othmanalikhan-apps/project-aardvark/internal/api/middleware"
	"github.com/othmanalikhan-apps/project-aardvark/internal/config"
	bookingRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/booking"
	menuRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/menu"
	orderRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/order"
	tableRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/table"
	"github.com/othmanalikhan-apps/project-aardvark/internal/jobs"
	bookingsService "github.com/othmanalikhan-apps/project-aardvark/internal/service/bookings"
	menuService "github.com/othmanalikhan-apps/project-aardvark/internal/service/menu"
	notifyService "github.com/othmanalikhan-apps/project-aardvark/internal/service/notify"
	ordersService "github.com/othmanalikhan-apps/project-aardvark/internal/service/orders"
	tablesService "github.com/othmanalikhan-apps/project-aardvark/internal/service/tables"
	createBookingUC "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/create_booking"
	getFreeSizesUC "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_sizes"
	getFreeSlotsUC "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_slots"
	getFreeTablesUC "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_tables"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/dbmetrics"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/logger"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/metrics"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/simpletxmanager"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/txmanager"
)

func main() {
	// Секреты (ключи нотификаций, пароль БД) подтягиваются из .env, если он есть
	_ = godotenv.Load()

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

	log.Info("Starting aardvark booking service...")
	log.Info("Configuration loaded from config.toml")

	// Каталог слотов фиксирован на старте и инжектируется в use cases
	catalogue, err := cfg.Restaurant.Slots()
	if err != nil {
		log.Fatal("Invalid slot catalogue: %v", err)
	}
	log.Info("Slot catalogue: %v", catalogue)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		tableRepository   *tableRepo.Repository
		menuRepository    *menuRepo.Repository
		orderRepository   *orderRepo.Repository
	)

	// Интерфейс transaction manager, общий для use cases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		menuRepository = menuRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		menuRepository = menuRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notifier := notifyService.NewService(cfg.Notifications, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	menuSvc := menuService.NewService(menuRepository, txMgr, log)
	ordersSvc := ordersService.NewService(orderRepository, menuRepository, tableRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		catalogue,
		bookingRepository,
		tableRepository,
		txMgr,
		notifier,
		&createBookingUC.RealTimeProvider{},
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(catalogue, bookingRepository, tableRepository, log)
	getFreeSizesUseCase := getFreeSizesUC.NewUseCase(catalogue, bookingRepository, tableRepository, log)
	getFreeTablesUseCase := getFreeTablesUC.NewUseCase(catalogue, bookingRepository, tableRepository, log)

	// Фоновая чистка отработанных броней
	scheduler := jobs.NewScheduler(cfg.Jobs, bookingRepository, log)
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start job scheduler: %v", err)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getFreeSizes := getFreeSizesHandler.NewHandler(getFreeSizesUseCase, log)
	getFreeTables := getFreeTablesHandler.NewHandler(getFreeTablesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTables := getTablesHandler.NewHandler(tablesSvc, log)
	getMenu := getMenuHandler.NewHandler(menuSvc, log)
	updateMenu := updateMenuHandler.NewHandler(menuSvc, log)
	createOrder := createOrderHandler.NewHandler(ordersSvc, log)
	getBill := getBillHandler.NewHandler(ordersSvc, log)
	settleTable := settleTableHandler.NewHandler(ordersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Столы ресторана
	api.HandleFunc("/tables", getTables.Handle).Methods(http.MethodGet)

	// Доступность: слоты по столам, размеры на слот, столы на (слот, размер)
	api.HandleFunc("/bookings/slots", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/sizes", getFreeSizes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/tables", getFreeTables.Handle).Methods(http.MethodGet)

	// Создание бронирования и просмотр по номеру брони
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference:[A-Za-z]{3}[0-9]{7}}", getBooking.Handle).Methods(http.MethodGet)

	// Меню
	api.HandleFunc("/menu", getMenu.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth)

	// Пополнение меню
	staff.HandleFunc("/menu", updateMenu.Handle).Methods(http.MethodPost)

	// Заказы и счета
	staff.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/tables/{number}/bill", getBill.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{number}/settle", settleTable.Handle).Methods(http.MethodPost)

	// CORS для браузерных клиентов
	allowedOrigins := cfg.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	handler := ghandlers.CORS(
		ghandlers.AllowedOrigins(allowedOrigins),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"Content-Type", middleware.StaffIDHeader, middleware.RequestIDHeader}),
	)(r)

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

	scheduler.Stop()

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
