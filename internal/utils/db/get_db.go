package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente.
func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	dbHostPort := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(dbHostPort, 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "gestao"
	}
	dbCredsSecretID := os.Getenv("DB_SECRET_ID")
	return ConectarBanco(uint(port), dbHost, dbName, dbCredsSecretID)
}
