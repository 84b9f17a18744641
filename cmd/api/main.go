package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"hazelview_backend/internal/controller"
	"hazelview_backend/internal/listing"
	"hazelview_backend/internal/middleware"
	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
	"hazelview_backend/pkg/config"
	appcron "hazelview_backend/pkg/cron"
	"hazelview_backend/pkg/database"
	"hazelview_backend/pkg/email"
	"hazelview_backend/pkg/seed"
	"hazelview_backend/pkg/storage"
	"hazelview_backend/pkg/utils/jwt"
)

type controllers struct {
	auth       *controller.AuthController
	properties *controller.PropertyController
	leads      *controller.LeadController
	sales      *controller.SaleController
	community  *controller.CommunityController
	settings   *controller.SettingsController
	upload     *controller.UploadController
}

func setupRoutes(app *fiber.App, ctrl controllers) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", ctrl.auth.Login)

	// Public catalog
	api.Get("/properties", ctrl.properties.List)
	api.Get("/properties/admin", middleware.AuthMiddleware(), ctrl.properties.ListAdmin)
	api.Get("/properties/:id", middleware.OptionalAuth(), ctrl.properties.Get)

	// Admin property management
	api.Post("/properties", middleware.AuthMiddleware(), ctrl.properties.Create)
	api.Put("/properties/:id", middleware.AuthMiddleware(), ctrl.properties.Update)
	api.Delete("/properties/:id", middleware.AuthMiddleware(), ctrl.properties.Delete)
	api.Post("/properties/:id/images", middleware.AuthMiddleware(), ctrl.properties.AddImage)
	api.Delete("/images/:image_id", middleware.AuthMiddleware(), ctrl.properties.DeleteImage)
	api.Post("/upload-image", middleware.AuthMiddleware(), ctrl.upload.UploadImage)

	// Communities
	api.Get("/communities", ctrl.community.List)
	api.Get("/communities/:id", ctrl.community.Get)
	api.Post("/communities", middleware.AuthMiddleware(), ctrl.community.Create)
	api.Put("/communities/:id", middleware.AuthMiddleware(), ctrl.community.Update)

	// Leads
	api.Post("/leads", ctrl.leads.Create)
	api.Get("/leads", middleware.AuthMiddleware(), ctrl.leads.List)

	// Sales banners
	api.Get("/sales", ctrl.sales.ListCurrent)
	api.Get("/sales/banner", ctrl.sales.Banner)
	api.Get("/sales/all", middleware.AuthMiddleware(), ctrl.sales.ListAll)
	api.Post("/sales", middleware.AuthMiddleware(), ctrl.sales.Create)
	api.Put("/sales/:id", middleware.AuthMiddleware(), ctrl.sales.Update)
	api.Delete("/sales/:id", middleware.AuthMiddleware(), ctrl.sales.Delete)

	// Settings
	api.Get("/settings", middleware.AuthMiddleware(), ctrl.settings.List)
	api.Put("/settings", middleware.AuthMiddleware(), ctrl.settings.Upsert)
}

func main() {
	cfg := config.Load()
	jwt.Init(cfg.JWT.Secret)

	var (
		catalog       listing.Catalog
		settingsStore settings.Store
		ctrl          controllers
	)

	// Backend kapasitesi açılışta bir kez belirlenir: DATABASE_URL yoksa
	// uygulama in-memory demo kataloğu ile çalışır.
	if cfg.Database.URL != "" {
		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}

		err = database.Migrate(db,
			&model.Property{},
			&model.PropertyImage{},
			&model.Lead{},
			&model.Sale{},
			&model.Community{},
			&model.School{},
			&model.Setting{},
		)
		if err != nil {
			log.Printf("Migration warning: %v", err)
		}

		seed.SeedCommunities(db)
		appcron.InitSaleExpiryCron(db)

		catalog = listing.NewGormCatalog(db)
		settingsStore = settings.NewGormStore(db)

		var mailer *email.Service
		if cfg.Email.ResendAPIKey != "" {
			mailer, err = email.NewService(cfg.Email.ResendAPIKey, cfg.Email.From)
			if err != nil {
				log.Printf("Could not initialize email service: %v", err)
			}
		}

		var storageClient *storage.Client
		if cfg.AWS.AccessKey != "" {
			storageClient, err = storage.New(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.AccessKey, cfg.AWS.SecretKey)
			if err != nil {
				log.Printf("Could not initialize storage: %v", err)
			}
		}

		ctrl = controllers{
			leads:     controller.NewLeadController(db, mailer, cfg.Email.NotifyTo),
			sales:     controller.NewSaleController(db),
			community: controller.NewCommunityController(db),
			upload:    controller.NewUploadController(storageClient),
		}
	} else {
		memCatalog := listing.NewMemoryCatalog()
		seed.LoadDemoCatalog(memCatalog)

		catalog = memCatalog
		settingsStore = settings.NewMemoryStore()

		ctrl = controllers{
			leads:     controller.NewLeadController(nil, nil, ""),
			sales:     controller.NewSaleController(nil),
			community: controller.NewCommunityController(nil),
			upload:    controller.NewUploadController(nil),
		}
	}

	ctrl.auth = controller.NewAuthController(cfg.Admin.Email, cfg.Admin.PasswordHash)
	ctrl.properties = controller.NewPropertyController(catalog, settingsStore)
	ctrl.settings = controller.NewSettingsController(settingsStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, ctrl)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
