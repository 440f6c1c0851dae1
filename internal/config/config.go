package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Email     EmailConfig     `yaml:"email"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig contains the staff login gate settings. StaffPasswordHash is a
// bcrypt hash; the plaintext password never appears in configuration.
type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"`
	StaffPasswordHash string `yaml:"staff_password_hash"`
	TokenExpiryHours  int    `yaml:"token_expiry_hours"`
}

// StorageConfig contains license-image storage settings
type StorageConfig struct {
	Type            string `yaml:"type"`       // "mock" or "firebase"
	UploadDir       string `yaml:"upload_dir"` // for mock storage
	BaseURL         string `yaml:"base_url"`   // server base URL for mock URLs
	Bucket          string `yaml:"bucket"`     // for firebase storage
	CredentialsFile string `yaml:"credentials_file"`
	MaxFileSizeMB   int64  `yaml:"max_file_size_mb"`
}

// EmailConfig contains notification settings
type EmailConfig struct {
	Enabled        bool   `yaml:"enabled"`
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
	StaffEmail     string `yaml:"staff_email"` // receives new-request notices
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	CompleteElapsedRentals string `yaml:"complete_elapsed_rentals"`
	PurgeResolvedImages    string `yaml:"purge_resolved_images"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}
	if val := os.Getenv("STAFF_PASSWORD_HASH"); val != "" {
		c.Auth.StaffPasswordHash = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.StaffPasswordHash == "" {
		return fmt.Errorf("staff password hash is required")
	}
	if c.Auth.TokenExpiryHours <= 0 {
		c.Auth.TokenExpiryHours = 12
	}

	switch c.Storage.Type {
	case "", "mock":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("upload directory is required for mock storage")
		}
	case "firebase":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for firebase storage")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	if c.Storage.MaxFileSizeMB == 0 {
		c.Storage.MaxFileSizeMB = 10
	}

	if c.Email.Enabled && c.Email.SendGridAPIKey == "" {
		return fmt.Errorf("sendgrid api key is required when email is enabled")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.CompleteElapsedRentals == "" {
		c.Scheduler.CompleteElapsedRentals = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.PurgeResolvedImages == "" {
		c.Scheduler.PurgeResolvedImages = "0 30 2 * * *" // 2:30 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
