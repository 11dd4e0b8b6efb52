package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addServiceHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/add_service"
	addStaffHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/add_staff"
	addStaffScheduleHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/add_staff_schedule"
	approveBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/create_booking"
	createSalonHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/create_salon"
	getAvailableStaffHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_available_staff"
	getBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_booking_stats"
	getCustomerHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_customer"
	getCustomerBookingsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_customer_bookings"
	getSalonHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_salon"
	getSalonBookingsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_salon_bookings"
	getStaffBookingsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/get_staff_bookings"
	grantCapabilityHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/grant_capability"
	listBookingsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/list_bookings"
	listSalonsHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/list_salons"
	registerCustomerHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/register_customer"
	rejectBookingHandler "github.com/m04kA/SalonSchedulingService/internal/api/handlers/reject_booking"
	"github.com/m04kA/SalonSchedulingService/internal/api/middleware"
	"github.com/m04kA/SalonSchedulingService/internal/config"
	bookingRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/customer"
	bookingsService "github.com/m04kA/SalonSchedulingService/internal/service/bookings"
	catalogService "github.com/m04kA/SalonSchedulingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SalonSchedulingService/internal/usecase/create_booking"
	getAvailableStaffUC "github.com/m04kA/SalonSchedulingService/internal/usecase/get_available_staff"
	"github.com/m04kA/SalonSchedulingService/pkg/ids"
	"github.com/m04kA/SalonSchedulingService/pkg/keylock"
	"github.com/m04kA/SalonSchedulingService/pkg/logger"
	"github.com/m04kA/SalonSchedulingService/pkg/metrics"
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

	log.Info("Starting SalonSchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Бизнес-метрики: реальный сборщик или заглушка
	var bookingMetrics interface {
		BookingCreated()
		BookingDenied(reason string)
		SetBookingsByStatus(status string, count int)
	}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	} else {
		bookingMetrics = metrics.Noop{}
	}

	// Инициализируем хранилища
	bookingRepository := bookingRepo.NewRepository()
	catalogRepository := catalogRepo.NewRepository()
	customerRepository := customerRepo.NewRepository()
	log.Info("In-memory storage initialized")

	// Генератор идентификаторов и пер-мастерные блокировки допуска
	allocator := ids.NewAllocator()
	locker := keylock.NewManager()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingMetrics,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		customerRepository,
		allocator,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		customerRepository,
		locker,
		allocator,
		bookingMetrics,
		log,
	)
	getAvailableStaffUseCase := getAvailableStaffUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableStaff := getAvailableStaffHandler.NewHandler(getAvailableStaffUseCase, log)
	createSalon := createSalonHandler.NewHandler(catalogSvc, log)
	getSalon := getSalonHandler.NewHandler(catalogSvc, log)
	listSalons := listSalonsHandler.NewHandler(catalogSvc, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)
	addStaff := addStaffHandler.NewHandler(catalogSvc, log)
	grantCapability := grantCapabilityHandler.NewHandler(catalogSvc, log)
	addStaffSchedule := addStaffScheduleHandler.NewHandler(catalogSvc, log)
	registerCustomer := registerCustomerHandler.NewHandler(catalogSvc, log)
	getCustomer := getCustomerHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/stats", getBookingStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Салоны и каталог ---
	api.HandleFunc("/salons", createSalon.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/services", addService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonId}/staff", addStaff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/capabilities", grantCapability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/windows", addStaffSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/available-staff", getAvailableStaff.Handle).Methods(http.MethodGet)

	// --- Мастера ---
	api.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/customers", registerCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

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
