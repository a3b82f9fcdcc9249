package config

const (
	// DefaultDatabasePath is where the sqlite database lives unless
	// DATABASE_PATH overrides it.
	DefaultDatabasePath = "./wordbank.db"

	// DefaultAllowedOrigins covers the local frontend dev servers.
	DefaultAllowedOrigins = "http://localhost:5173,http://localhost:3000"
)
