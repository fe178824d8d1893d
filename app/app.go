package app

import (
	"context"
	"errors"
	"fmt"

	"aliccedress/config"
	"aliccedress/libs"
	"aliccedress/middleware"
	"aliccedress/repositories"
	"aliccedress/routes"
	"aliccedress/services"
	"aliccedress/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// App is a fully wired storefront: storage, stores, navigator and router.
type App struct {
	Router    *gin.Engine
	Navigator *services.Navigator

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	if cfg.StorageNamespace != "" {
		storage = repositories.WithNamespace(storage, cfg.StorageNamespace)
	}

	passwords, err := utils.NewPasswordScheme(cfg.PasswordScheme)
	if err != nil {
		a.Close()
		return nil, err
	}

	catalog := services.NewCatalogService(repositories.NewProductRepository())
	cart, err := services.NewCartStore(ctx, repositories.NewCartRepository(storage))
	if err != nil {
		a.Close()
		return nil, err
	}
	profile, err := services.NewProfileStore(ctx, repositories.NewUserRepository(storage), passwords, &services.SeedAccount{
		Name:     cfg.SeedName,
		Email:    cfg.SeedEmail,
		Phone:    cfg.SeedPhone,
		Password: cfg.SeedPassword,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	var opts []services.NavigatorOption
	if cfg.ReceiptSecret != "" {
		opts = append(opts, services.WithReceiptSigner(services.NewReceiptSigner(cfg.ReceiptSecret, cfg.ReceiptExpiry)))
	}
	if cfg.SMTPEnabled() {
		opts = append(opts, services.WithOrderNotifier(libs.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)))
	}
	a.Navigator = services.NewNavigator(catalog, cart, profile, opts...)

	uploader, err := newUploader(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Dependencies{
		Catalog:   catalog,
		Navigator: a.Navigator,
		Uploader:  uploader,
		UploadDir: cfg.UploadDir,
	})
	a.Router = router

	return a, nil
}

// Close releases storage connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config) (repositories.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		storage, err := repositories.NewSQLiteStorage(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		a.closers = append(a.closers, storage.Close)
		return storage, nil
	case config.StorageRedis:
		client, err := config.ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return repositories.NewRedisStorage(client), nil
	case config.StoragePostgres:
		pool, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})
		return repositories.NewPostgresStorage(pool), nil
	default:
		log.Warn().Msg("using in-memory storage, state is lost on restart")
		return repositories.NewMemoryStorage(), nil
	}
}

func newUploader(cfg *config.Config) (libs.AvatarUploader, error) {
	if cfg.CloudinaryEnabled() {
		uploader, err := libs.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.MaxUploadSize)
		if err != nil {
			return nil, fmt.Errorf("configuring cloudinary: %w", err)
		}
		return uploader, nil
	}
	return &libs.LocalUploader{Dir: cfg.UploadDir, URLPrefix: "/uploads", MaxSize: cfg.MaxUploadSize}, nil
}
