package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hs21digital/backend/internal/config"
	"github.com/hs21digital/backend/internal/handler"
	"github.com/hs21digital/backend/internal/logging"
	"github.com/hs21digital/backend/internal/repository"
	"github.com/hs21digital/backend/internal/service"
	"github.com/hs21digital/backend/pkg/mailer"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// One store object for the whole process. A failed (or skipped) connect
	// leaves it disconnected and every feature degrades gracefully: contact
	// forms are not saved, chat exchanges are not logged, health reports
	// Disconnected.
	store := repository.NewStore()
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, running without database; submissions will not be saved")
	} else {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.Connect(connectCtx, cfg.DatabaseURL); err != nil {
			slog.Error("database connection failed, running without database", "error", err)
		} else {
			slog.Info("database connected")
		}
		cancel()
	}
	defer store.Close()

	notifier := mailer.New(mailer.Config{
		SMTPHost: cfg.Email.SMTPHost,
		SMTPPort: cfg.Email.SMTPPort,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		FromName: cfg.Email.FromName,
		NotifyTo: cfg.Email.NotifyTo,
	})
	if !notifier.Enabled() {
		slog.Warn("EMAIL_USER/EMAIL_PASSWORD not set, email notifications disabled")
	}

	submissionRepo := repository.NewPgSubmissionRepository(store)
	chatLogRepo := repository.NewPgChatLogRepository(store)
	contactService := service.NewContactService(submissionRepo, notifier)
	chatbotService := service.NewChatbotService(chatLogRepo)

	h := handler.New(store, contactService)
	contactHandler := handler.NewContactHandler(contactService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService, chatLogRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/chatbot", chatbotHandler.Respond)

	// Admin endpoints ship unauthenticated, matching the product as it is
	// deployed behind a private network. Known gap.
	mux.HandleFunc("GET /api/admin/contacts", contactHandler.AdminList)
	mux.HandleFunc("PATCH /api/admin/contacts/{id}/status", contactHandler.UpdateStatus)
	mux.HandleFunc("GET /api/admin/chatlogs/stats", chatbotHandler.Stats)
	mux.HandleFunc("GET /api/admin/chatlogs/{sessionId}", chatbotHandler.SessionHistory)

	mux.HandleFunc("/", h.NotFound)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
