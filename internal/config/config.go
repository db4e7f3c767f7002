package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret   string
	Issuer      string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	DatabaseUrl string
	ServerPort  string
	CORSOrigins []string

	IsProduction bool

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

// LoadConfig populates the package variables from the environment. Extra
// dotenv files may be passed in front of the default .env lookup.
func LoadConfig(envFiles ...string) {
	var err error
	if len(envFiles) > 0 {
		err = godotenv.Load(envFiles...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "farmart")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "farmart")
	DatabaseUrl = getEnv("DATABASE_URL", "")
	ServerPort = getEnv("SERVER_PORT", "5000")
	IsProduction = getEnv("APP_ENV", "development") == "production"

	CORSOrigins = nil
	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", ""), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			CORSOrigins = append(CORSOrigins, origin)
		}
	}

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "farmart-media")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

// DatabaseDSN returns the keyword/value connection string used by GORM.
// DATABASE_URL takes precedence when set so hosted deployments can hand
// over a single URL.
func DatabaseDSN() string {
	if DatabaseUrl != "" {
		return DatabaseUrl
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		DbHost,
		DbPort,
		DbUser,
		DbPassword,
		DbName,
	)
}

// DatabaseURL returns a postgres:// URL for tools that want URL form.
func DatabaseURL() string {
	if DatabaseUrl != "" {
		return DatabaseUrl
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		DbUser,
		DbPassword,
		DbHost,
		DbPort,
		DbName,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
