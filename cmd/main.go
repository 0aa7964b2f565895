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
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/add_cart_item"
	checkoutHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/checkout"
	createReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_available_slots"
	getCartHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_cart"
	getLimitsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_limits"
	getProductsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_products"
	getReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_reservations"
	getUserOrdersHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_orders"
	removeCartItemHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/remove_cart_item"
	resetLimitsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/reset_limits"
	stripeWebhookHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/stripe_webhook"
	updateCartItemHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_cart_item"
	updateLimitsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_limits"
	updateReservationStatusHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/cartstore"
	limitConfigRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	orderRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/order"
	productRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/product"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/stripepay"
	cartService "github.com/m04kA/SMC-RestaurantService/internal/service/cart"
	catalogService "github.com/m04kA/SMC-RestaurantService/internal/service/catalog"
	limitsService "github.com/m04kA/SMC-RestaurantService/internal/service/limits"
	ordersService "github.com/m04kA/SMC-RestaurantService/internal/service/orders"
	reservationsService "github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	checkoutUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/checkout"
	createReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RestaurantService/pkg/txmanager"
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

	log.Info("Starting SMC-RestaurantService...")
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

	// Подключаемся к Redis (хранилище корзин)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	stripeClient := stripepay.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.Currency,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	mailClient := mailer.NewMailer(
		cfg.SMTP.Enabled,
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		log,
	)
	log.Info("Integration clients initialized (Stripe currency=%s timeout=%ds, SMTP enabled=%v)",
		cfg.Stripe.Currency, cfg.Stripe.Timeout, cfg.SMTP.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		limitConfigRepository *limitConfigRepo.Repository
		orderRepository       *orderRepo.Repository
		productRepository     *productRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		limitConfigRepository = limitConfigRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		productRepository = productRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		limitConfigRepository = limitConfigRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		productRepository = productRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	cartStorage := cartstore.NewStore(redisClient)

	// Инициализируем сервисы
	limitsSvc := limitsService.NewService(limitConfigRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, mailClient, log)
	cartSvc := cartService.NewService(cartStorage, productRepository, log)
	catalogSvc := catalogService.NewService(productRepository, log)
	ordersSvc := ordersService.NewService(orderRepository, cartStorage, mailClient, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		limitConfigRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		limitConfigRepository,
		log,
	)
	checkoutUseCase := checkoutUC.NewUseCase(
		orderRepository,
		productRepository,
		cartStorage,
		stripeClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getProducts := getProductsHandler.NewHandler(catalogSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	getUserOrders := getUserOrdersHandler.NewHandler(ordersSvc, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(ordersSvc, log)
	getLimits := getLimitsHandler.NewHandler(limitsSvc, log)
	updateLimits := updateLimitsHandler.NewHandler(limitsSvc, log)
	resetLimits := resetLimitsHandler.NewHandler(limitsSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

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

	// Каталог товаров
	api.HandleFunc("/products", getProducts.Handle).Methods(http.MethodGet)

	// Доступные слоты бронирования на дату
	api.HandleFunc("/reservations/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание брони столика
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Платёжные уведомления Stripe
	api.HandleFunc("/webhook/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Корзина ---
	protected.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items/{index}", updateCartItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/cart/items/{index}", removeCartItem.Handle).Methods(http.MethodDelete)

	// --- Заказы ---
	protected.HandleFunc("/orders/checkout", checkout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders", getUserOrders.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Ограничения онлайн-бронирования
	admin.HandleFunc("/reservation-limits", getLimits.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservation-limits", updateLimits.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/reservation-limits", resetLimits.Handle).Methods(http.MethodDelete)

	// Управление бронями
	admin.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

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
