package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the attendance rules and the department routing
// table. DepartmentAccessPoints maps a department name to the code of the
// access point that department's badges are provisioned for; it is handed to
// the employee service explicitly instead of living as package-level state.
type AttendanceConfig struct {
	CheckInDeadline        time.Duration
	CheckOutDeadline       time.Duration
	HistoryDays            int
	DepartmentAccessPoints map[string]string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gatewise-access"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance rules
	checkInDeadline, err := time.ParseDuration(getEnv("CHECKIN_DEADLINE", "8h30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKIN_DEADLINE: %w", err)
	}
	checkOutDeadline, err := time.ParseDuration(getEnv("CHECKOUT_DEADLINE", "17h30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_DEADLINE: %w", err)
	}
	historyDays, err := strconv.Atoi(getEnv("ATTENDANCE_HISTORY_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HISTORY_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		CheckInDeadline:  checkInDeadline,
		CheckOutDeadline: checkOutDeadline,
		HistoryDays:      historyDays,
		DepartmentAccessPoints: getEnvMap("DEPARTMENT_ACCESS_POINTS",
			"Engineering=GATE-ENG,Accounting=GATE-ACC,Warehouse=GATE-WHS,Marketing=GATE-MKT,Management=GATE-MGT"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.CheckInDeadline <= 0 || c.Attendance.CheckInDeadline >= 24*time.Hour {
		return fmt.Errorf("CHECKIN_DEADLINE must be a time of day")
	}
	if c.Attendance.CheckOutDeadline <= 0 || c.Attendance.CheckOutDeadline >= 24*time.Hour {
		return fmt.Errorf("CHECKOUT_DEADLINE must be a time of day")
	}
	if c.Attendance.CheckInDeadline >= c.Attendance.CheckOutDeadline {
		return fmt.Errorf("CHECKIN_DEADLINE must come before CHECKOUT_DEADLINE")
	}
	if c.Attendance.HistoryDays <= 0 {
		return fmt.Errorf("ATTENDANCE_HISTORY_DAYS must be positive")
	}
	if len(c.Attendance.DepartmentAccessPoints) == 0 {
		return fmt.Errorf("DEPARTMENT_ACCESS_POINTS is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvMap parses "key=value,key=value" pairs.
func getEnvMap(env string, fallback string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(getEnv(env, fallback), ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}
