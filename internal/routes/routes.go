package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/logismart/logismart/internal/config"
	"github.com/logismart/logismart/internal/customers"
	"github.com/logismart/logismart/internal/funding"
	"github.com/logismart/logismart/internal/gateway"
	"github.com/logismart/logismart/internal/identity"
	"github.com/logismart/logismart/internal/kyc"
	"github.com/logismart/logismart/internal/middleware"
	"github.com/logismart/logismart/internal/notification"
	"github.com/logismart/logismart/internal/profile"
	"github.com/logismart/logismart/internal/shipments"
	"github.com/logismart/logismart/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// The in-memory profile store loses state on restart, so it is only
	// acceptable in development.
	if !d.Cfg.IsDev() && d.DB == nil && d.Cache == nil {
		return fmt.Errorf("a database or redis backend is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(middleware.ProfileOwner())
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var store profile.Store
	switch {
	case d.DB != nil:
		store = profile.NewPostgresStore(d.DB)
	case d.Cache != nil:
		store = profile.NewRedisStore(d.Cache)
	default:
		store = profile.NewMemoryStore()
	}

	profiles := profile.NewService(store)
	wallets := wallet.NewService(profiles)
	gw := gateway.New(d.Cfg.GatewayDelay, d.Logger)
	notifier := notification.NewLoggerNotifier(d.Logger)

	fundingSvc := funding.NewService(wallets, gw, notifier, funding.Merchant{
		Name:    d.Cfg.MerchantName,
		IconURL: d.Cfg.MerchantIconURL,
	}, d.Logger)
	shipmentSvc := shipments.NewService(profiles, wallets, gw, notifier, shipments.Merchant{
		Name:    d.Cfg.MerchantName,
		IconURL: d.Cfg.MerchantIconURL,
	}, d.Logger)
	customerSvc := customers.NewService(profiles)
	kycSvc := kyc.NewService(profiles, d.Cfg.KYCDelay, d.Logger)
	identitySvc := identity.NewService(profiles)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterWalletRoutes(api, wallet.NewHandler(wallets))
	RegisterGatewayRoutes(api, gateway.NewHandler(gw))
	RegisterFundingRoutes(api, funding.NewHandler(fundingSvc))
	RegisterShipmentRoutes(api, shipments.NewHandler(shipmentSvc))
	RegisterCustomerRoutes(api, customers.NewHandler(customerSvc))
	RegisterKYCRoutes(api, kyc.NewHandler(kycSvc))
	RegisterSettingsRoutes(api, identity.NewHandler(identitySvc))

	return nil
}
