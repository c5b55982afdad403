package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pantry-planner/core/loader"
	"pantry-planner/core/logger"
	"pantry-planner/core/middleware/auth"
	"pantry-planner/core/middleware/identity"
	"pantry-planner/core/middleware/rayid"
	"pantry-planner/core/storage"
	"pantry-planner/feature/catalog"
	"pantry-planner/feature/integrity"
	"pantry-planner/feature/inventories"
	"pantry-planner/feature/recipes"
	"pantry-planner/feature/shopping"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pantry-planner/docs/swagger"
)

// @title Pantry Planner API
// @version 1.0
// @description API for recipes, kitchen inventories and shopping lists.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pantry planner server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := loadEnvironment()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The kitchen stores live in the database, so it is required.
		db, err := openDatabase(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// Storage is only needed for integrity checks and datasets.
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Storage client unavailable", zap.Error(err))
		}

		repos := newRepositories(db)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(repos.catalog, logg))
		mgr.Register(recipes.NewFeature(repos.recipes, logg))
		mgr.Register(inventories.NewFeature(repos.inventories, logg))
		mgr.Register(shopping.NewFeature(repos.planner(), cfg.Server.Currency, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.DatasetObject, logg, db))

		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(logger.Middleware(logg))

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		app.Use(identity.New(identity.Config{Secret: cfg.Server.JWTSecret}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("token_auth", cfg.Server.TokenAuth()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
