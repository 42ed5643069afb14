// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"vocab_forge/internal/config"
	"vocab_forge/internal/handlers"
	"vocab_forge/internal/lookup"
	"vocab_forge/internal/middleware"
	"vocab_forge/internal/repository"
	"vocab_forge/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// A .env file is optional; environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection.
	userRepo := repository.NewGormUserRepository()
	listRepo := repository.NewGormListRepository()
	entryRepo := repository.NewGormEntryRepository()
	apiLogRepo := repository.NewGormAPILogRepository()

	auditor := lookup.NewGormAuditor(db, apiLogRepo)
	dictionary := lookup.NewDictionaryClient(&config.Cfg, auditor)
	translator := lookup.NewTranslatorClient(&config.Cfg, auditor)

	authService := service.NewAuthService(db, userRepo, listRepo, entryRepo, &config.Cfg)
	enrichService := service.NewEnrichService(dictionary, translator)
	listService := service.NewListService(db, listRepo, entryRepo)
	adminService := service.NewAdminService(db, userRepo, listRepo, entryRepo, apiLogRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	wordHandler := handlers.NewWordHandler(enrichService, logger)
	listHandler := handlers.NewListHandler(listService, logger)
	profileHandler := handlers.NewProfileHandler(authService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/google", authHandler.GoogleSignIn)
		r.Post("/auth/google/complete-setup", authHandler.CompleteGoogleSetup)

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(&config.Cfg, authService))

			r.Get("/auth/me", authHandler.Me)
			r.Post("/words/enrich", wordHandler.Enrich)

			r.Route("/lists", func(r chi.Router) {
				r.Post("/", listHandler.SaveList)
				r.Get("/", listHandler.GetLists)
				r.Get("/{list_id}", listHandler.GetList)
				r.Patch("/{list_id}", listHandler.RenameList)
				r.Delete("/{list_id}", listHandler.DeleteList)
			})
			r.Route("/entries", func(r chi.Router) {
				r.Patch("/{entry_id}", listHandler.UpdateEntry)
				r.Delete("/{entry_id}", listHandler.DeleteEntry)
			})

			r.Get("/dashboard", profileHandler.GetDashboard)
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.UpdateProfile)
				r.Put("/password", profileHandler.ChangePassword)
				r.Delete("/", profileHandler.DeleteAccount)
			})

			// Admin routes.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/admin/users", adminHandler.ListUsers)
				r.Get("/admin/users/{user_id}", adminHandler.GetUser)
				r.Delete("/admin/users/{user_id}", adminHandler.DeleteUser)
				r.Post("/admin/users/{user_id}/block", adminHandler.BlockUser)
				r.Get("/admin/users/{user_id}/lists/{list_id}", adminHandler.GetUserList)
				r.Get("/admin/api-logs", adminHandler.GetAPILogStats)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:        config.Cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// Enrichment fans out to slow external services; the chi Timeout
		// middleware bounds the request instead.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
