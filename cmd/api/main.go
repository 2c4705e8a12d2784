package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"pills-tracker/internal/adapters/auth/supabase"
	pg "pills-tracker/internal/adapters/storage/postgres"
	"pills-tracker/internal/platform/logger"
	"pills-tracker/internal/router"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	appLog := logger.NewFromEnv()

	opts := router.Options{Log: appLog}

	// DB_DSN => Postgres con migraciones; sin DSN corre in-memory.
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		if err := pg.Migrate(dsn); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		db, err := pg.Open(dsn)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer db.Close()
		opts.DB = db
	}

	// SUPABASE_URL + SUPABASE_ANON_KEY => verificación real de tokens.
	// Sin supabase queda el modo dev (X-Debug-User-ID) y roles por ADMIN_USERS.
	if base := os.Getenv("SUPABASE_URL"); base != "" {
		client, err := supabase.NewClient(supabase.Config{
			BaseURL: base,
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		})
		if err != nil {
			log.Fatalf("supabase client: %v", err)
		}
		opts.AuthVerifier = supabase.NewVerifier(client)
		opts.Roles = supabase.NewRoles(client)
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
