package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseDSN_FromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "dbhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "farmart")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "farmart_dev")
	LoadConfig()

	assert.Equal(t, "host=dbhost port=5433 user=farmart password=pw dbname=farmart_dev sslmode=disable", DatabaseDSN())
	assert.Equal(t, "postgres://farmart:pw@dbhost:5433/farmart_dev?sslmode=disable", DatabaseURL())
}

func TestDatabaseDSN_URLTakesPrecedence(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/db")
	LoadConfig()

	assert.Equal(t, "postgres://u:p@host:5432/db", DatabaseDSN())
	assert.Equal(t, "postgres://u:p@host:5432/db", DatabaseURL())
}

func TestCORSOrigins_Parsing(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://farmart.co.ke ,")
	LoadConfig()

	assert.Equal(t, []string{"http://localhost:3000", "https://farmart.co.ke"}, CORSOrigins)
}

func TestCORSOrigins_EmptyByDefault(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	LoadConfig()

	assert.Empty(t, CORSOrigins)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	LoadConfig()
	assert.True(t, IsProduction)

	t.Setenv("APP_ENV", "development")
	LoadConfig()
	assert.False(t, IsProduction)
}
