package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sppd-activity/internal/matrix"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Activity matrix specifics
	Google      GoogleConfig
	Matrix      MatrixConfig
	Description DescriptionConfig

	// API security
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	SpreadsheetID   string
	Timezone        string
}

// MatrixConfig locates the date header and the append window. Columns are A1 letters.
type MatrixConfig struct {
	HeaderRow          int
	FirstColumn        string
	LastColumn         string
	FirstDataRow       int
	LastDataRow        int
	SheetPrefix        string
	VerifyBeforeCommit bool
}

type DescriptionConfig struct {
	StorageHost string
}

type SecurityConfig struct {
	APIKey          string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenPath = viper.GetString("google.token_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.SpreadsheetID = expandEnvVar(viper.GetString("google.spreadsheet_id"))
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if creds := viper.GetString("google_credentials"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}

	// Matrix layout
	cfg.Matrix.HeaderRow = viper.GetInt("matrix.header_row")
	cfg.Matrix.FirstColumn = viper.GetString("matrix.first_column")
	cfg.Matrix.LastColumn = viper.GetString("matrix.last_column")
	cfg.Matrix.FirstDataRow = viper.GetInt("matrix.first_data_row")
	cfg.Matrix.LastDataRow = viper.GetInt("matrix.last_data_row")
	cfg.Matrix.SheetPrefix = viper.GetString("matrix.sheet_prefix")
	cfg.Matrix.VerifyBeforeCommit = viper.GetBool("matrix.verify_before_commit")

	cfg.Description.StorageHost = viper.GetString("description.storage_host")

	// Security
	cfg.Security.APIKey = expandEnvVar(viper.GetString("security.api_key"))
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Security.APIKey = apiKey
	}
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.timezone", "Asia/Jakarta")

	// Reference sheet: dates in E17:AI17, entries in rows 18..52
	viper.SetDefault("matrix.header_row", 17)
	viper.SetDefault("matrix.first_column", "E")
	viper.SetDefault("matrix.last_column", "AI")
	viper.SetDefault("matrix.first_data_row", 18)
	viper.SetDefault("matrix.last_data_row", 52)
	viper.SetDefault("matrix.sheet_prefix", "Giat")
	viper.SetDefault("matrix.verify_before_commit", true)

	viper.SetDefault("description.storage_host", "drive.google.com")

	viper.SetDefault("security.rate_limit_per_min", 60)
}

func (cfg *Config) validate() error {
	if cfg.Google.SpreadsheetID == "" {
		return fmt.Errorf("google.spreadsheet_id is required")
	}
	loc, err := time.LoadLocation(cfg.Google.Timezone)
	if err != nil {
		return fmt.Errorf("google.timezone: %w", err)
	}
	if _, err := cfg.Matrix.Layout(loc); err != nil {
		return err
	}
	return nil
}

// Layout builds and validates the matrix layout for the given office timezone.
func (m MatrixConfig) Layout(loc *time.Location) (matrix.Layout, error) {
	first, err := matrix.ColumnIndex(m.FirstColumn)
	if err != nil {
		return matrix.Layout{}, fmt.Errorf("matrix.first_column: %w", err)
	}
	last, err := matrix.ColumnIndex(m.LastColumn)
	if err != nil {
		return matrix.Layout{}, fmt.Errorf("matrix.last_column: %w", err)
	}

	l := matrix.DefaultLayout(loc)
	l.HeaderRow = m.HeaderRow
	l.FirstColumn = first
	l.LastColumn = last
	l.FirstDataRow = m.FirstDataRow
	l.LastDataRow = m.LastDataRow
	if err := l.Validate(); err != nil {
		return matrix.Layout{}, err
	}
	return l, nil
}

// expandEnvVar expands values of the form ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
