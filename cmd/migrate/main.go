package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	migrate "github.com/rubenv/sql-migrate"
)

// dbSettings mirrors the DB_* variables the API server reads. The migration
// runner talks to Postgres directly, without GORM.
type dbSettings struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"meeting_intelligence"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

func (s dbSettings) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, s.SSLMode,
	)
}

func main() {
	dir := flag.String("dir", "migrations", "directory holding migration files")
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables or defaults")
	}

	var settings dbSettings
	if err := envconfig.Process("", &settings); err != nil {
		log.Fatalf("Failed to read database settings: %v", err)
	}

	db, err := sql.Open("pgx", settings.dsn())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrations := &migrate.FileMigrationSource{Dir: *dir}

	if *down {
		log.Println("🔄 Rolling back the most recent migration...")
		n, err := migrate.ExecMax(db, "postgres", migrations, migrate.Down, 1)
		if err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		log.Printf("✅ Rolled back %d migration(s)!\n", n)
		return
	}

	log.Printf("🔄 Applying migrations from %s/ ...", *dir)
	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Printf("✅ Applied %d migration(s)!\n", n)
}
