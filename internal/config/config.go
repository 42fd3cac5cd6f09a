package config

import (
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	AllowedOrigins []string
	ImageDir       string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	dbName := getEnvOrDefault("DB_NAME", "lessonstore")
	AppEnv = Config{
		MongoURI:       mongoURIFromEnv(dbName),
		DBName:         dbName,
		Port:           getEnvOrDefault("PORT", "8080"),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")),
		ImageDir:       getEnvOrDefault("IMAGE_DIR", "./images"),
	}
}

// mongoURIFromEnv prefers a full MONGO_URI and otherwise assembles one from
// the split MONGO_* property fields.
func mongoURIFromEnv(dbName string) string {
	if uri := strings.TrimSpace(os.Getenv("MONGO_URI")); uri != "" {
		return uri
	}

	host := strings.TrimSpace(os.Getenv("MONGO_HOST"))
	if host == "" {
		log.Fatal("MONGO_URI or MONGO_HOST is required")
	}

	return assembleMongoURI(
		getEnvOrDefault("MONGO_SCHEME", "mongodb+srv"),
		host,
		os.Getenv("MONGO_USER"),
		os.Getenv("MONGO_PASSWORD"),
		dbName,
		getEnvOrDefault("MONGO_OPTIONS", "retryWrites=true&w=majority"),
	)
}

func assembleMongoURI(scheme, host, user, password, dbName, options string) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	if user != "" {
		b.WriteString(url.QueryEscape(user))
		b.WriteString(":")
		b.WriteString(url.QueryEscape(password))
		b.WriteString("@")
	}
	b.WriteString(host)
	b.WriteString("/")
	b.WriteString(dbName)
	if options != "" {
		b.WriteString("?")
		b.WriteString(options)
	}
	return b.String()
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
