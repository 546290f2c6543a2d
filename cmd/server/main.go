package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/readnest/readnest-server/internal/api"
	"github.com/readnest/readnest-server/internal/auth"
	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/mail"
	"github.com/readnest/readnest-server/internal/recommend"
	"github.com/readnest/readnest-server/internal/templates"
)

func main() {
	initLogger()

	// Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	auth.Init(jwtSecret)

	// Database
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "data/readnest.db"
	}
	database, err := db.New(dsn)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Services
	mailer := mail.NewSenderFromEnv()
	templatesMgr := templates.NewManager("templates")
	recommender := recommend.NewClientFromEnv()
	if recommender == nil {
		slog.Info("OPENAI_API_KEY not set, recommendations disabled")
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Handlers
	authHandler := &api.AuthHandler{
		DB:        database,
		Mailer:    mailer,
		Templates: templatesMgr,
		BaseURL:   baseURL,
	}
	userHandler := &api.UserHandler{DB: database}
	bookHandler := &api.BookHandler{DB: database}
	goalHandler := &api.GoalHandler{DB: database}
	statsHandler := &api.StatsHandler{DB: database}
	recommendHandler := &api.RecommendHandler{DB: database, Client: recommender}

	mw := &api.Middleware{DB: database}
	protected := func(h http.HandlerFunc) http.Handler {
		return mw.AuthMiddleware(h)
	}

	// Router. Non-matching verbs on a registered path get 405 with an
	// Allow header from the ServeMux itself.
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", api.Health)
	mux.HandleFunc("POST /auth", authHandler.Login)
	mux.HandleFunc("POST /forgot-password", authHandler.ForgotPassword)
	mux.HandleFunc("POST /reset-password", authHandler.ResetPassword)
	mux.HandleFunc("GET /deeplink/reset-password", authHandler.ResetPasswordDeeplink)

	// Protected
	mux.Handle("GET /me", protected(userHandler.GetMe))
	mux.Handle("GET /api/books", protected(bookHandler.List))
	mux.Handle("POST /api/books", protected(bookHandler.Add))
	mux.Handle("PUT /api/books", protected(bookHandler.Update))
	mux.Handle("POST /api/goal", protected(goalHandler.Upsert))
	mux.Handle("PUT /api/goal", protected(goalHandler.Upsert))
	mux.Handle("GET /api/stats", protected(statsHandler.Get))
	mux.Handle("GET /api/recommendations", protected(recommendHandler.Get))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, api.LoggingMiddleware(mux)); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// initLogger configures slog: text in development, JSON elsewhere.
func initLogger() {
	var handler slog.Handler
	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
