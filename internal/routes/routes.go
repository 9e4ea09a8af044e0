package routes

import (
	"net/http"

	"github.com/anekzad/portfolio/internal/app"
	"github.com/anekzad/portfolio/internal/handler"
	"github.com/anekzad/portfolio/internal/middleware"
	"github.com/anekzad/portfolio/internal/web"
)

func SetupRoutes(app *app.App) http.Handler {
	renderer := web.NewRenderer()

	// Handlers
	pages := handler.NewPageHandler(app.BlogService, renderer)
	blog := handler.NewBlogHandler(app.BlogService, renderer)
	seo := handler.NewSEOHandler(app.BlogService, app.Cfg.AppURL, app.Cfg.StaticPath)
	contact := handler.NewContactHandler(app.VerificationService, app.ContactService, renderer)
	article := handler.NewArticleHandler(app.ArticleService)
	admin := handler.NewAdminHandler(app.AuthService, renderer)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(app.Cfg.StaticPath))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Pages
	mux.HandleFunc("GET /{$}", pages.HomePage)
	mux.HandleFunc("GET /about", pages.StaticPage("about"))
	mux.HandleFunc("GET /projects", pages.StaticPage("projects"))
	mux.HandleFunc("GET /resume", pages.StaticPage("resume"))
	mux.HandleFunc("GET /contact", pages.StaticPage("contact"))

	// Blog
	mux.HandleFunc("GET /blog", blog.ListPosts)
	mux.HandleFunc("GET /blog/{slug}", blog.ShowPost)
	mux.HandleFunc("GET /blog/tag/{tag}", blog.ListByTag)

	// Contact workflow. Verification issue and admin login are rate limited,
	// each with its own budget so contact abuse can't lock out the admin.
	verifyLimiter := middleware.RateLimitVerification()
	loginLimiter := middleware.RateLimitVerification()

	mux.HandleFunc("POST /api/contact/verify-email", verifyLimiter(contact.RequestVerification))
	mux.HandleFunc("GET /api/contact/verify", contact.Confirm)
	mux.HandleFunc("POST /api/contact", contact.Submit)

	// ============================================================================
	// ADMIN ROUTES
	// ============================================================================

	mux.HandleFunc("GET /admin", admin.AdminPage)
	mux.HandleFunc("POST /api/admin/login", loginLimiter(admin.Login))
	mux.HandleFunc("POST /api/admin/logout", admin.Logout)

	mux.HandleFunc("GET /api/contact/verification-status", middleware.RequireAdmin(contact.Status))
	mux.HandleFunc("GET /api/articles", middleware.RequireAdmin(article.List))
	mux.HandleFunc("POST /api/articles", middleware.RequireAdmin(article.Create))
	mux.HandleFunc("PUT /api/articles/{slug}", middleware.RequireAdmin(article.Update))
	mux.HandleFunc("DELETE /api/articles/{slug}", middleware.RequireAdmin(article.Delete))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", pages.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
	)

	return h
}
