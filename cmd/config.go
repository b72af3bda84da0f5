package cmd

import (
	"time"
)

type Config struct {
	HTTPPort string

	// Orders are kept in memory unless DBHost is set.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SessionCapacity    int
	SessionIdleTimeout time.Duration
	SweepSchedule      string
}

// UsesPostgres reports whether orders go to PostgreSQL.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}
