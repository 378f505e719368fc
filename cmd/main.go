package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminFacilitiesHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/admin_facilities"
	adminReportsHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/admin_reports"
	adminUsersHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/admin_users"
	authHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/auth"
	cancelBookingHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/create_booking"
	createReportHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/create_report"
	getBookingHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_booking"
	getCourtSlotsHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_court_slots"
	getHomeHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_home"
	getUserBookingsHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_venue"
	getVenueBookingsHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/get_venue_bookings"
	listVenuesHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/list_venues"
	manageBlocksHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/manage_blocks"
	manageCourtsHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/manage_courts"
	manageVenuesHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/manage_venues"
	profileHandler "github.com/quickcourt/quickcourt-backend/internal/api/handlers/profile"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	"github.com/quickcourt/quickcourt-backend/internal/config"
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	blockRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/block"
	bookingRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/booking"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	reportRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/report"
	userRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/user"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/integrations/paymentpage"
	blocksService "github.com/quickcourt/quickcourt-backend/internal/service/blocks"
	bookingsService "github.com/quickcourt/quickcourt-backend/internal/service/bookings"
	reportsService "github.com/quickcourt/quickcourt-backend/internal/service/reports"
	usersService "github.com/quickcourt/quickcourt-backend/internal/service/users"
	venuesService "github.com/quickcourt/quickcourt-backend/internal/service/venues"
	createBlockUseCase "github.com/quickcourt/quickcourt-backend/internal/usecase/create_block"
	createBookingUseCase "github.com/quickcourt/quickcourt-backend/internal/usecase/create_booking"
	getCourtSlotsUseCase "github.com/quickcourt/quickcourt-backend/internal/usecase/get_court_slots"
	"github.com/quickcourt/quickcourt-backend/pkg/auth"
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
	"github.com/quickcourt/quickcourt-backend/pkg/logger"
	"github.com/quickcourt/quickcourt-backend/pkg/metrics"
	"github.com/quickcourt/quickcourt-backend/pkg/simpletxmanager"
	"github.com/quickcourt/quickcourt-backend/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting quickcourt-backend")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled, service=%s", cfg.Metrics.ServiceName)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database %s:%d/%s: %v", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, err)
	}
	log.Info("Connected to database %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	paymentPage, err := paymentpage.NewBuilder(cfg.PaymentPage.URL, log)
	if err != nil {
		log.Fatal("Failed to create payment page builder: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Repositories share one executor; with metrics enabled every query is
	// timed through the dbmetrics wrapper.
	stopMetricsCh := make(chan struct{})

	var (
		users    *userRepo.Repository
		venues   *venueRepo.Repository
		courts   *courtRepo.Repository
		bookings *bookingRepo.Repository
		blocks   *blockRepo.Repository
		reports  *reportRepo.Repository

		txMgr createBookingUseCase.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrapped := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		users = userRepo.NewRepository(wrapped)
		venues = venueRepo.NewRepository(wrapped)
		courts = courtRepo.NewRepository(wrapped)
		bookings = bookingRepo.NewRepository(wrapped)
		blocks = blockRepo.NewRepository(wrapped)
		reports = reportRepo.NewRepository(wrapped)
		txMgr = txmanager.NewTransactionManager(wrapped)
	} else {
		users = userRepo.NewRepository(db)
		venues = venueRepo.NewRepository(db)
		courts = courtRepo.NewRepository(db)
		bookings = bookingRepo.NewRepository(db)
		blocks = blockRepo.NewRepository(db)
		reports = reportRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	usersSvc := usersService.NewService(users, bookings, tokens, time.Duration(cfg.Auth.OTPTTLMinutes)*time.Minute, log)
	venuesSvc := venuesService.NewService(venues, courts, bookings, log)
	bookingsSvc := bookingsService.NewService(bookings, venues, log)
	reportsSvc := reportsService.NewService(reports, users, venues, log)
	blocksSvc := blocksService.NewService(blocks, courts, venues, log)

	// Use cases
	createBookingUC := createBookingUseCase.NewUseCase(bookings, courts, venues, blocks, paymentPage, txMgr,
		createBookingUseCase.Limits{
			MaxDurationHours:   cfg.Booking.MaxDurationHours,
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
		}, log)
	getCourtSlotsUC := getCourtSlotsUseCase.NewUseCase(bookings, courts, blocks, log)
	createBlockUC := createBlockUseCase.NewUseCase(bookings, courts, venues, blocks, txMgr, log)

	// Handlers
	authH := authHandler.NewHandler(usersSvc, log)
	profileH := profileHandler.NewHandler(usersSvc, log)
	homeH := getHomeHandler.NewHandler(venuesSvc, log)
	listVenuesH := listVenuesHandler.NewHandler(venuesSvc, log)
	getVenueH := getVenueHandler.NewHandler(venuesSvc, log)
	slotsH := getCourtSlotsHandler.NewHandler(getCourtSlotsUC, log)
	createBookingH := createBookingHandler.NewHandler(createBookingUC, log)
	getBookingH := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBookingH := cancelBookingHandler.NewHandler(bookingsSvc, log)
	userBookingsH := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	venueBookingsH := getVenueBookingsHandler.NewHandler(bookingsSvc, log)
	createReportH := createReportHandler.NewHandler(reportsSvc, log)
	manageVenuesH := manageVenuesHandler.NewHandler(venuesSvc, log)
	manageCourtsH := manageCourtsHandler.NewHandler(venuesSvc, log)
	manageBlocksH := manageBlocksHandler.NewHandler(createBlockUC, blocksSvc, log)
	adminFacilitiesH := adminFacilitiesHandler.NewHandler(venuesSvc, log)
	adminUsersH := adminUsersHandler.NewHandler(usersSvc, log)
	adminReportsH := adminReportsHandler.NewHandler(reportsSvc, log)

	authMw := middleware.NewAuth(tokens, log)

	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics(metricsCollector))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", authH.HandleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify-otp", authH.HandleVerifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authH.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/resend-otp", authH.HandleResendOTP).Methods(http.MethodPost)

	api.HandleFunc("/home", homeH.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues", listVenuesH.Handle).Methods(http.MethodGet)
	api.Handle("/venues/{venueId:[0-9]+}", authMw.Optional(http.HandlerFunc(getVenueH.Handle))).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId:[0-9]+}/courts/{courtId:[0-9]+}/slots", slotsH.Handle).Methods(http.MethodGet)

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Require)

	authed.HandleFunc("/users/me", profileH.HandleGet).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", profileH.HandleUpdate).Methods(http.MethodPut)
	authed.HandleFunc("/users/{userId:[0-9]+}/bookings", userBookingsH.Handle).Methods(http.MethodGet)

	authed.HandleFunc("/bookings", createBookingH.Handle).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{bookingId:[0-9]+}", getBookingH.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBookingH.Handle).Methods(http.MethodPatch)

	authed.HandleFunc("/reports", createReportH.Handle).Methods(http.MethodPost)

	// Facility owner routes (admins pass the role gate too)
	owner := api.NewRoute().Subrouter()
	owner.Use(authMw.Require, middleware.RequireRole(domain.RoleOwner, domain.RoleAdmin))

	owner.HandleFunc("/venues", manageVenuesH.HandleCreate).Methods(http.MethodPost)
	owner.HandleFunc("/venues/mine", manageVenuesH.HandleListOwned).Methods(http.MethodGet)
	owner.HandleFunc("/venues/{venueId:[0-9]+}", manageVenuesH.HandleUpdate).Methods(http.MethodPut)
	owner.HandleFunc("/venues/{venueId:[0-9]+}/bookings", venueBookingsH.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/venues/{venueId:[0-9]+}/courts", manageCourtsH.HandleCreate).Methods(http.MethodPost)
	owner.HandleFunc("/courts/{courtId:[0-9]+}", manageCourtsH.HandleUpdate).Methods(http.MethodPut)
	owner.HandleFunc("/courts/{courtId:[0-9]+}", manageCourtsH.HandleDelete).Methods(http.MethodDelete)
	owner.HandleFunc("/courts/{courtId:[0-9]+}/blocks", manageBlocksH.HandleCreate).Methods(http.MethodPost)
	owner.HandleFunc("/blocks/{blockId:[0-9]+}", manageBlocksH.HandleDelete).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.Require, middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/facilities", adminFacilitiesH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/facilities/{venueId:[0-9]+}/approve", adminFacilitiesH.HandleApprove).Methods(http.MethodPatch)
	admin.HandleFunc("/facilities/{venueId:[0-9]+}/reject", adminFacilitiesH.HandleReject).Methods(http.MethodPatch)
	admin.HandleFunc("/users", adminUsersH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}/ban", adminUsersH.HandleBan).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId:[0-9]+}/unban", adminUsersH.HandleUnban).Methods(http.MethodPatch)
	admin.HandleFunc("/reports", adminReportsH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{reportId}/resolve", adminReportsH.HandleResolve).Methods(http.MethodPatch)
	admin.HandleFunc("/reports/{reportId}/dismiss", adminReportsH.HandleDismiss).Methods(http.MethodPatch)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
