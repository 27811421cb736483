// Package server boots the HTTP API: config, database, cache, storage,
// route table and middleware chain.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/blossom-shop/blossom/app/controllers"
	"github.com/blossom-shop/blossom/app/notifications"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/blossom-shop/blossom/app/routes"
	"github.com/blossom-shop/blossom/app/services"
	"github.com/blossom-shop/blossom/config"
	"github.com/blossom-shop/blossom/pkg/cache"
	"github.com/blossom-shop/blossom/pkg/database"
	"github.com/blossom-shop/blossom/pkg/logger"
	"github.com/blossom-shop/blossom/pkg/metrics"
	"github.com/blossom-shop/blossom/pkg/middleware"
	"github.com/blossom-shop/blossom/pkg/reqid"
	"github.com/blossom-shop/blossom/pkg/router"
	"github.com/blossom-shop/blossom/pkg/storage"
	"gorm.io/gorm"
)

// Boot connects external collaborators and returns the ready HTTP
// handler. It is separate from Run so tests can mount the handler on
// an httptest server.
func Boot() (http.Handler, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}
	if err := database.Connect(); err != nil {
		return nil, fmt.Errorf("server: connect database: %w", err)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()

	return Handler(database.DB, storage.Default()), nil
}

// Handler builds the route table over the given database and disk.
func Handler(db *gorm.DB, disk storage.Disk) http.Handler {
	productRepo := repositories.NewProductRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	tokenRepo := repositories.NewAdminTokenRepository(db)
	bankRepo := repositories.NewBankDetailsRepository(db)

	catalog := services.NewCatalogService(productRepo, disk)
	orders := services.NewOrderService(transactionRepo, disk, notifications.NewDispatcher())
	settings := services.NewSettingsService(settingsRepo)
	admin := services.NewAdminService(tokenRepo, config.AdminTokenTTL())

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	routes.Register(r, routes.API{
		Products:     controllers.NewProductController(catalog),
		Transactions: controllers.NewTransactionController(orders),
		BankDetails:  controllers.NewBankDetailsController(bankRepo),
		Settings:     controllers.NewSettingsController(settings),
		Admin:        controllers.NewAdminController(admin),
	})

	r.HandleFunc("/metrics", metrics.Handler())

	return r.Handler()
}

// Run boots the app and serves it on the configured port.
func Run() error {
	handler, err := Boot()
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	logger.Info("server: listening", "addr", addr, "env", config.AppEnv())

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
