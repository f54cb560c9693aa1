package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		created TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS countries (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS states (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code INTEGER NOT NULL,
		country_id BIGINT NOT NULL,
		FOREIGN KEY (country_id) REFERENCES countries(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS cities (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code INTEGER NOT NULL,
		state_id BIGINT NOT NULL,
		FOREIGN KEY (state_id) REFERENCES states(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS citizens (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(20) NOT NULL,
		last_name VARCHAR(20) NOT NULL,
		address VARCHAR(30) NOT NULL,
		phone BIGINT NOT NULL,
		no_identification BIGINT NOT NULL,
		city_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		FOREIGN KEY (city_id) REFERENCES cities(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_states_country_id ON states(country_id);
	CREATE INDEX IF NOT EXISTS idx_cities_state_id ON cities(state_id);
	CREATE INDEX IF NOT EXISTS idx_citizens_city_id ON citizens(city_id);
	CREATE INDEX IF NOT EXISTS idx_citizens_user_id ON citizens(user_id);

    -- Function to update updated column
    CREATE OR REPLACE FUNCTION update_updated_column()
    RETURNS TRIGGER AS $$
    BEGIN
       NEW.updated = NOW();
       RETURN NEW;
    END;
    $$ language 'plpgsql';

    -- Trigger for users table
    DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1
            FROM pg_trigger
            WHERE tgname = 'set_users_updated' AND tgrelid = 'users'::regclass
        ) THEN
            CREATE TRIGGER set_users_updated
            BEFORE UPDATE ON users
            FOR EACH ROW
            EXECUTE FUNCTION update_updated_column();
        END IF;
    END
    $$;
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
