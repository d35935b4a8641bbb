// internal/config/database.go
package config

import "fmt"

// DSN returns the PostgreSQL connection string
func (db *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Database, db.SSLMode,
	)
}
