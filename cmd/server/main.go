package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"delivery-scheduler/internal/adapters/repositories"
	"delivery-scheduler/internal/api"
	"delivery-scheduler/internal/config"
	"delivery-scheduler/internal/platform/db"
	"delivery-scheduler/internal/ports"
)

// main is the application composition root.
// It wires a storage backend (Postgres when DATABASE_URL is set,
// SQLite otherwise) behind the repository and store ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/customers.json")
	port := config.Get("PORT", "8080")

	params := config.EngineParams()
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	conn, store, err := openBackend(seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewSQLCustomerRepository(conn)
	router := api.NewRouter(repo, store, params)

	// Write timeout leaves room for long multi-day runs over large
	// customer sets.
	log.Printf("Server listening addr=:%s fleet=%d capacity_kg=%g", port, params.FleetSize, params.CapacityKg)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openBackend initializes schema and seed data on startup for local
// runs and returns the connection plus the matching schedule store.
func openBackend(seedPath string) (*sql.DB, ports.ScheduleStore, error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		return conn, repositories.NewSQLScheduleStore(conn), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open backend: open sqlite database %q: %w", dbPath, err)
	}
	if err := conn.Ping(); err != nil {
		return nil, nil, fmt.Errorf("open backend: verify sqlite connection to %q: %w", dbPath, err)
	}
	if err := repositories.InitSchema(conn); err != nil {
		return nil, nil, fmt.Errorf("open backend: %w", err)
	}
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return nil, nil, fmt.Errorf("open backend: %w", err)
	}
	return conn, repositories.NewSqliteScheduleStore(conn), nil
}
