package config

import "os"

type Environment struct {
	IsDevelopment bool
	Port          string
	DatabaseURL   string
	SQLitePath    string
}

var Env Environment

// LoadEnvironment populates Env from the process environment. Called from
// Connect so it runs after godotenv has loaded any .env file.
func LoadEnvironment() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "graph.db"
	}

	dbURL := os.Getenv("DATABASE_URL")

	Env = Environment{
		IsDevelopment: dbURL == "",
		Port:          port,
		DatabaseURL:   dbURL,
		SQLitePath:    sqlitePath,
	}
}
