package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, webhook URLs), security settings
// - default: Values common across all environments (timezone, timeouts, page size), standard settings
// - optional (no tag): Features that are switched off when empty (search tool, cache, session check)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Session    SessionConfig
	Cookie     CookieConfig
	Platform   PlatformConfig
	TableStore TableStoreConfig
	Workflow   WorkflowConfig
	LLM        LLMConfig
	Search     SearchConfig
	Cache      CacheConfig
	Webhook    WebhookConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,x-company-id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// SessionConfig enables the extension session check when Secret is set.
type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET"`
	Duration time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"None"`
}

type PlatformConfig struct {
	BaseURL     string        `envconfig:"PLATFORM_BASE_URL" default:"https://api.fynd.com"`
	AccessToken string        `envconfig:"PLATFORM_ACCESS_TOKEN" required:"true"`
	PageSize    int           `envconfig:"CATALOG_PAGE_SIZE" default:"100"`
	MaxPages    int           `envconfig:"CATALOG_MAX_PAGES" default:"500"`
	Timeout     time.Duration `envconfig:"PLATFORM_TIMEOUT" default:"15s"`
}

type TableStoreConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string        `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	PricingTable string        `envconfig:"PRICING_TABLE" default:"pricing_suggestions"`
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
	MaxConns     int32         `envconfig:"DB_MAX_CONNS" default:"10"`
}

type WorkflowConfig struct {
	AcceptURL    string        `envconfig:"WORKFLOW_ACCEPT_URL" required:"true"`
	PromotionURL string        `envconfig:"WORKFLOW_PROMOTION_URL" required:"true"`
	Timeout      time.Duration `envconfig:"WORKFLOW_TIMEOUT" default:"10s"`
}

type LLMConfig struct {
	APIKey    string        `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL   string        `envconfig:"GEMINI_BASE_URL"`
	Model     string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	MaxTokens int           `envconfig:"GEMINI_MAX_TOKENS" default:"4096"`
	MaxSteps  int           `envconfig:"GEMINI_MAX_TOOL_STEPS" default:"8"`
	Timeout   time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// SearchConfig describes the stdio search tool server. Both credentials must be
// present for the server to be started.
type SearchConfig struct {
	APIKey       string        `envconfig:"GOOGLE_SEARCH_API_KEY"`
	EngineID     string        `envconfig:"GOOGLE_SEARCH_ENGINE_ID"`
	Command      string        `envconfig:"SEARCH_MCP_COMMAND" default:"npx"`
	Args         []string      `envconfig:"SEARCH_MCP_ARGS" default:"-y,@adenot/mcp-google-search"`
	StartTimeout time.Duration `envconfig:"SEARCH_MCP_START_TIMEOUT" default:"20s"`
}

func (c SearchConfig) Enabled() bool {
	return c.APIKey != "" && c.EngineID != ""
}

type CacheConfig struct {
	RedisURL     string        `envconfig:"REDIS_URL"`
	Prefix       string        `envconfig:"CACHE_PREFIX" default:"promo:"`
	TTL          time.Duration `envconfig:"CACHE_TTL" default:"30m"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

type WebhookConfig struct {
	Secret string `envconfig:"WEBHOOK_SECRET"`
}

func (c *TableStoreConfig) BuildDSN() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		TableStore: TableStoreConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "Asia/Kolkata",
			PricingTable: "pricing_suggestions",
			QueryTimeout: 5 * time.Second,
			MaxConns:     4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Platform: PlatformConfig{
			BaseURL:     "http://platform.test",
			AccessToken: "test-token",
			PageSize:    100,
			MaxPages:    20,
			Timeout:     2 * time.Second,
		},
		Workflow: WorkflowConfig{
			AcceptURL:    "http://workflow.test/accept",
			PromotionURL: "http://workflow.test/promotion",
			Timeout:      2 * time.Second,
		},
		LLM: LLMConfig{
			APIKey:    "test-key",
			Model:     "gemini-2.5-flash",
			MaxTokens: 1024,
			MaxSteps:  4,
			Timeout:   5 * time.Second,
		},
		Search: SearchConfig{
			Command:      "npx",
			StartTimeout: time.Second,
		},
		Cache: CacheConfig{
			Prefix: "promo:test:",
			TTL:    time.Minute,
		},
		Session: SessionConfig{
			Duration: time.Hour,
		},
	}
}
