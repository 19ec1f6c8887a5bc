package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default avatar assigned on federated signup when the provider sends none.
const defaultAvatarURL = "https://as2.ftcdn.net/jpg/03/40/12/49/1000_F_340124934_bz3pQTLrdFpH92ekknuaTHy8JuXgG7fi.webp"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// CookieSecure controls the Secure flag on the session cookie. One flag
	// for every login path.
	CookieSecure bool

	// AdminToggleOpen, when true, lets any authenticated caller toggle admin
	// status on another account. Off by default; toggling then requires a
	// super-admin.
	AdminToggleOpen bool

	DefaultAvatarURL string
	SwaggerHost      string
	LogLevel         string
}

// Load reads an optional .env file, then builds Config from environment with
// sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/toolhub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		CookieSecure:     getEnvBool("COOKIE_SECURE", true),
		AdminToggleOpen:  getEnvBool("ADMIN_TOGGLE_OPEN", false),
		DefaultAvatarURL: getEnv("DEFAULT_AVATAR_URL", defaultAvatarURL),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
