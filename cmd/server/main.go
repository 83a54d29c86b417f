package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swiftmove/backend/internal/chatbot"
	"github.com/swiftmove/backend/internal/config"
	"github.com/swiftmove/backend/internal/content"
	"github.com/swiftmove/backend/internal/handler"
	"github.com/swiftmove/backend/internal/logging"
	"github.com/swiftmove/backend/internal/service"
	"github.com/swiftmove/backend/pkg/auth"
	"github.com/swiftmove/backend/pkg/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	st, err := openStores(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer st.close()

	catalog, err := content.Load(cfg.ContentFile)
	if err != nil {
		logging.Fatal("failed to load content catalog", "error", err)
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notifier := notify.New(cfg.NotifyWebhookURL)

	contactService := service.NewContactService(st.contacts, notifier)
	bookingService := service.NewBookingService(st.bookings, notifier)
	testimonialService := service.NewTestimonialService(st.testimonials)
	chatService := service.NewChatService(st.chat, chatbot.New(), contactService)
	adminService := service.NewAdminService(st.adminUsers, st.dashboard, tokens)

	if _, err := testimonialService.Seed(ctx, catalog.SeedTestimonials()); err != nil {
		slog.Error("failed to seed testimonials", "error", err)
	}
	if cfg.AdminUsername != "" {
		if cfg.UsesDefaultSecret() {
			slog.Warn("JWT_SECRET is the built-in development default; admin tokens can be forged. Set JWT_SECRET before exposing this server")
		}
		created, err := adminService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			logging.Fatal("failed to create bootstrap admin", "username", cfg.AdminUsername, "error", err)
		}
		if created {
			slog.Info("created bootstrap admin", "username", cfg.AdminUsername)
		}
	}

	rateLimiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)
	defer rateLimiter.Close()

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.Routes(handler.Deps{
			DB:           st.db,
			FrontendURL:  cfg.FrontendURL,
			StaticDir:    cfg.StaticDir,
			LegalDocsDir: cfg.LegalDocsDir,
			Contacts:     contactService,
			Bookings:     bookingService,
			Testimonials: testimonialService,
			Chat:         chatService,
			Admin:        adminService,
			Catalog:      catalog,
			Tokens:       tokens,
			Metrics:      handler.NewMetrics(),
			RateLimiter:  rateLimiter,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", st.kind)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
