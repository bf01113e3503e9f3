package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
)

// ErrConfigMissing is returned when a required environment value is absent.
var ErrConfigMissing = crerr.New("required configuration missing")

// Config stores runtime configuration for the sync job. It is read once at
// startup and passed explicitly to the components that need it.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFile        string

	DatabaseDriver   string `env:"DATABASE_DRIVER" validate:"required"`
	DatabaseUser     string `env:"DATABASE_USER" validate:"required"`
	DatabasePassword string `env:"DATABASE_PASSWORD" validate:"required"`
	DatabaseHost     string `env:"DATABASE_HOST" validate:"required"`
	DatabasePort     string `env:"DATABASE_PORT" validate:"required"`
	DatabaseName     string `env:"DATABASE_DATABASE" validate:"required"`
	DatabaseSSLMode  string

	Token         string `env:"TOKEN" validate:"required"`
	FutDBBaseURL  string `env:"FUTDB_BASE_URL" validate:"required,url"`
	FutDBTimeout  time.Duration
	SyncPageBound string `env:"SYNC_PAGE_BOUND" validate:"oneof=items_per_page page_total count_total"`

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeUploadRate    time.Duration

	PushgatewayURL string `env:"PROMETHEUS_PUSHGATEWAY_URL" validate:"omitempty,url"`
	PushJobName    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	futdbTimeout, err := time.ParseDuration(getEnv("FUTDB_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FUTDB_TIMEOUT: %w", err)
	}
	if futdbTimeout < 0 {
		return Config{}, fmt.Errorf("FUTDB_TIMEOUT must be >= 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("%w: UPTRACE_DSN is required when UPTRACE_ENABLED=true", ErrConfigMissing)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("%w: PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true", ErrConfigMissing)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "futdb-sync"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:               logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFile:                strings.TrimSpace(getEnv("APP_LOG_FILE", "")),
		DatabaseDriver:         strings.TrimSpace(os.Getenv("DATABASE_DRIVER")),
		DatabaseUser:           os.Getenv("DATABASE_USER"),
		DatabasePassword:       os.Getenv("DATABASE_PASSWORD"),
		DatabaseHost:           strings.TrimSpace(getEnv("DATABASE_HOST", "database")),
		DatabasePort:           strings.TrimSpace(os.Getenv("DATABASE_PORT")),
		DatabaseName:           strings.TrimSpace(os.Getenv("DATABASE_DATABASE")),
		DatabaseSSLMode:        strings.TrimSpace(getEnv("DATABASE_SSLMODE", "disable")),
		Token:                  strings.TrimSpace(os.Getenv("TOKEN")),
		FutDBBaseURL:           strings.TrimRight(strings.TrimSpace(getEnv("FUTDB_BASE_URL", "https://futdb.app/api")), "/"),
		FutDBTimeout:           futdbTimeout,
		SyncPageBound:          strings.ToLower(strings.TrimSpace(getEnv("SYNC_PAGE_BOUND", "items_per_page"))),
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeUploadRate:    pyroscopeUploadRate,
		PushgatewayURL:         strings.TrimRight(strings.TrimSpace(getEnv("PROMETHEUS_PUSHGATEWAY_URL", "")), "/"),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PushJobName = strings.TrimSpace(getEnv("PROMETHEUS_PUSH_JOB", cfg.ServiceName))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if _, err := strconv.Atoi(cfg.DatabasePort); err != nil {
		return Config{}, fmt.Errorf("parse DATABASE_PORT: %w", err)
	}
	switch cfg.DatabaseDriver {
	case "postgres", "postgresql":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q: valid values are postgres, postgresql", cfg.DatabaseDriver)
	}

	return cfg, nil
}

// DatabaseURL assembles the connection string from the DATABASE_* values.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: c.DatabaseDriver,
		User:   url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:   net.JoinHostPort(c.DatabaseHost, c.DatabasePort),
		Path:   "/" + c.DatabaseName,
	}
	if c.DatabaseSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DatabaseSSLMode}}.Encode()
	}
	return u.String()
}

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// validate turns struct tag failures into env-keyed errors. Every missing
// required key is reported at once.
func (c Config) validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	missing := make([]string, 0, len(fieldErrs))
	invalid := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	sort.Strings(missing)
	sort.Strings(invalid)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigMissing, strings.Join(missing, ", "))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(invalid, ", "))
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
