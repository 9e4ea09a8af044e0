package app

import (
	"fmt"

	"github.com/anekzad/portfolio/internal/config"
	"github.com/anekzad/portfolio/internal/db"
	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/service"
	"github.com/anekzad/portfolio/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	VerificationService *service.VerificationService
	ContactService      *service.ContactService
	ArticleService      *service.ArticleService
	BlogService         *service.BlogService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	contactRepository := repository.NewContactRepository(database)
	articleRepository := repository.NewArticleRepository(database)

	// Storage
	articleStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.OwnerEmail,
		cfg.OwnerName,
		cfg.AppURL,
		cfg.IsDevelopment(),
	)
	verificationService := service.NewVerificationService(contactRepository, emailService, cfg.VerifyTokenExpiry)
	contactService := service.NewContactService(contactRepository, emailService, cfg.DuplicateWindow)
	articleService := service.NewArticleService(articleRepository, articleStorage)
	blogService := service.NewBlogService(cfg.ContentPath, articleRepository)
	authService := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		AuthService:         authService,
		EmailService:        emailService,
		VerificationService: verificationService,
		ContactService:      contactService,
		ArticleService:      articleService,
		BlogService:         blogService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
