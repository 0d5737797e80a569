// main is the entry point of the student registration service.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file, env vars, or pure defaults)
//  2. Initialise the logger and make it the slog default
//  3. Open the storage backend (JSON file by default, SQLite optional)
//  4. Register HTTP routes and the embedded form assets
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-registration
//
// or with an explicit config file:
//
//	go run ./cmd/student-registration --config=config/local.yaml
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/student-registration/internal/config"
	"github.com/aanand-mishra/student-registration/internal/http/handlers/registration"
	"github.com/aanand-mishra/student-registration/internal/storage"
	"github.com/aanand-mishra/student-registration/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-registration/internal/storage/sqlite"
	"github.com/aanand-mishra/student-registration/web"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-registration",
		slog.String("env", cfg.Env),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// The handlers only see the storage.Storage interface; which
	// backend sits behind it is decided here and nowhere else.
	var store storage.Storage
	var err error

	switch cfg.StorageDriver {
	case "sqlite":
		store, err = sqlite.New(cfg.StoragePath)
	default:
		store, err = jsonfile.New(cfg.StoragePath)
	}
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	// Route table:
	//   POST /register-student → validate, hash, persist a registrant
	//   GET  /students         → list registrants (hashes stripped)
	//   /                      → embedded registration form assets
	router := http.NewServeMux()

	router.HandleFunc("POST /register-student", registration.New(store))
	router.HandleFunc("GET /students", registration.GetList(store))
	router.Handle("/", http.FileServerFS(web.Assets()))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts prevent slow clients from pinning connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// Give in-flight registrations five seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text at DEBUG in dev, JSON at DEBUG in
// staging, JSON at INFO in prod.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
