package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type DB struct {
	DbDRIVER     string
	DbHOST       string
	DbPORT       string
	DbUSER       string
	DbPASSWORD   string
	DbNAME       string
	DbSSLMODE    string
	DbSQLITEPATH string
}

type Config struct {
	ServerPort      int
	DB              DB
	JWTSecretKey    string
	TokenDuration   time.Duration
	BcryptCost      int
	ShutdownTimeout time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseBcryptCost(value int) int {
	if value < bcrypt.MinCost || value > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return value
}

func LoadDB() DB {
	return DB{
		DbDRIVER:     getEnv("DB_DRIVER", "postgres"),
		DbHOST:       getEnv("DB_HOST", "localhost"),
		DbPORT:       getEnv("DB_PORT", "5432"),
		DbUSER:       getEnv("DB_USER", "postgres"),
		DbPASSWORD:   getEnv("DB_PASSWORD", "password"),
		DbNAME:       getEnv("DB_NAME", "blog"),
		DbSSLMODE:    getEnv("DB_SSLMODE", "disable"),
		DbSQLITEPATH: getEnv("DB_SQLITE_PATH", "data/blog.db"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:   parseDuration(getEnv("TOKEN_DURATION", "24h"), 24*time.Hour),
		BcryptCost:      parseBcryptCost(getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost)),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}
