package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	JWTSecret    string
	BaseURL      string
	Origin       string
	UploadDir    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	Timeout      time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "lms"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:5000"),
		Origin:       getEnv("ORIGIN", "*"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		SMTPHost:     getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("EMAIL_PORT", 587),
		SMTPUser:     getEnv("EMAIL_USER", ""),
		SMTPPass:     getEnv("EMAIL_PASS", ""),
		Timeout:      10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
