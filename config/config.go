package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"db"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Auth            AuthConfig            `mapstructure:"auth"`
	Log             LogConfig             `mapstructure:"log"`
	Media           MediaConfig           `mapstructure:"media"`
	Pagination      PaginationConfig      `mapstructure:"pagination"`
	Semester        SemesterConfig        `mapstructure:"semester"`
	TeacherCategory TeacherCategoryConfig `mapstructure:"teacher_category"`
	Public          PublicConfig          `mapstructure:"public"`
	Sentry          SentryConfig          `mapstructure:"sentry"`
	Bootstrap       BootstrapConfig       `mapstructure:"bootstrap"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	BaseURL   string     `mapstructure:"base_url"`
	MaxBodyMB int64      `mapstructure:"max_body_mb"`
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT settings.
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

// LogConfig logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MediaConfig holds the media host credentials and upload limits.
type MediaConfig struct {
	CloudName      string `mapstructure:"cloud_name"`
	APIKey         string `mapstructure:"api_key"`
	APISecret      string `mapstructure:"api_secret"`
	ImageMaxKB     int64  `mapstructure:"image_max_kb"`
	CoverMaxKB     int64  `mapstructure:"cover_max_kb"`
	DocumentMaxKB  int64  `mapstructure:"document_max_kb"`
	DeliveryDomain string `mapstructure:"delivery_domain"`
}

// PaginationConfig page sizes per listing. Zero means unpaginated.
type PaginationConfig struct {
	Teachers          int `mapstructure:"teachers"`
	TeacherTypes      int `mapstructure:"teacher_types"`
	News              int `mapstructure:"news"`
	Galleries         int `mapstructure:"galleries"`
	Semesters         int `mapstructure:"semesters"`
	Settings          int `mapstructure:"settings"`
	Users             int `mapstructure:"users"`
	DashboardTeachers int `mapstructure:"dashboard_teachers"`
	Public            int `mapstructure:"public"`
}

// SemesterConfig semester numbering rules.
type SemesterConfig struct {
	AllowElective bool `mapstructure:"allow_elective"`
}

// Teacher category delete policies.
const (
	DeletePolicyIgnore   = "ignore"
	DeletePolicyRestrict = "restrict"
	DeletePolicyNullify  = "nullify"
)

// TeacherCategoryConfig controls what happens to teachers when their category is deleted.
type TeacherCategoryConfig struct {
	DeletePolicy string `mapstructure:"delete_policy"`
}

// PublicConfig read-only API options.
type PublicConfig struct {
	SemestersActiveOnly bool `mapstructure:"semesters_active_only"`
}

// SentryConfig error reporting. Empty DSN disables it.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
	Release     string `mapstructure:"release"`
}

// BootstrapConfig initial administrator, created when the users table is empty.
type BootstrapConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Load reads configuration from file and environment.
// Precedence: environment > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.max_body_mb", 25)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "admin_eapiis")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "America/Lima")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.access_token_ttl", "8h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("media.cloud_name", "")
	v.SetDefault("media.api_key", "")
	v.SetDefault("media.api_secret", "")
	v.SetDefault("media.image_max_kb", 2048)
	v.SetDefault("media.cover_max_kb", 5120)
	v.SetDefault("media.document_max_kb", 20480)
	v.SetDefault("media.delivery_domain", "https://res.cloudinary.com")

	v.SetDefault("pagination.teachers", 15)
	v.SetDefault("pagination.teacher_types", 15)
	v.SetDefault("pagination.news", 15)
	v.SetDefault("pagination.galleries", 15)
	v.SetDefault("pagination.semesters", 15)
	v.SetDefault("pagination.settings", 0)
	v.SetDefault("pagination.users", 15)
	v.SetDefault("pagination.dashboard_teachers", 8)
	v.SetDefault("pagination.public", 15)

	v.SetDefault("semester.allow_elective", false)
	v.SetDefault("teacher_category.delete_policy", DeletePolicyIgnore)
	v.SetDefault("public.semesters_active_only", false)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.release", "")

	v.SetDefault("bootstrap.name", "")
	v.SetDefault("bootstrap.email", "")
	v.SetDefault("bootstrap.password", "")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("EAPIIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: auth.jwt_secret is required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("invalid config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535")
	}
	switch c.TeacherCategory.DeletePolicy {
	case DeletePolicyIgnore, DeletePolicyRestrict, DeletePolicyNullify:
	default:
		return fmt.Errorf("invalid config: teacher_category.delete_policy %q", c.TeacherCategory.DeletePolicy)
	}
	if c.Pagination.DashboardTeachers < 0 || c.Pagination.Teachers < 0 {
		return fmt.Errorf("invalid config: page sizes cannot be negative")
	}
	return nil
}
