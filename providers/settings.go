package providers

import (
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system string, fields ...string) common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	Secrets() common.ISecretProvider
	FanOut() IInternalFanOutProvider
	GlueAPI() IGlueAPIProvider
	Security() ISecurityProvider
	Metrics() IMetricsProvider
	Settings() *Settings
}

// Settings has the whole loaded configuration.
type Settings struct {
	Logger   string          `yaml:"logger" default:"console" validate:"oneof=console json"`
	LogLevel string          `yaml:"logLevel" default:"info" validate:"oneof=debug dbg info warn warning error err"`
	Glue     GlueSettings    `yaml:"glue"`
	Poll     PollSettings    `yaml:"poll"`
	Refresh  RefreshSettings `yaml:"refresh"`
	Locks    LocksSettings   `yaml:"locks"`
	Server   ServerSettings  `yaml:"server"`
	MQTT     MQTTSettings    `yaml:"mqtt"`
}

// GlueSettings has remote service settings.
// If API key is empty, it's loaded from secrets or issued with username and password.
type GlueSettings struct {
	URL      string        `yaml:"url" default:"https://user-api.gluehome.com" validate:"required,url"`
	Timeout  time.Duration `yaml:"timeout" default:"60s" validate:"period"`
	APIKey   string        `yaml:"apiKey"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
}

// PollSettings has command status polling settings.
type PollSettings struct {
	Attempts int           `yaml:"attempts" default:"5" validate:"gte=1,lte=100"`
	Interval time.Duration `yaml:"interval" default:"2s" validate:"period"`
}

// RefreshSettings has reconciliation settings.
type RefreshSettings struct {
	Interval  time.Duration `yaml:"interval" default:"10s" validate:"period"`
	Discovery time.Duration `yaml:"discovery" default:"1m" validate:"period"`
}

// LocksSettings has glob filters of served locks.
// Filters match lock id or lock name.
type LocksSettings struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// ServerSettings has host API settings.
type ServerSettings struct {
	Port           int               `yaml:"port" validate:"required,port" default:"8000"`
	Users          map[string]string `yaml:"users"`
	Roles          []*SecRole        `yaml:"roles" validate:"dive"`
	IdempotencyTTL time.Duration     `yaml:"idempotencyTtl" default:"5m" validate:"period"`
}

// MQTTSettings has state publisher settings.
type MQTTSettings struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"clientId" default:"gluehome"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topicPrefix" default:"gluehome"`
	QoS         byte   `yaml:"qos" validate:"lte=2"`
	Retained    bool   `yaml:"retained"`
}

// SecretGlueAPIKey is the secret with issued API key.
const SecretGlueAPIKey = "glueApiKey"

// SecretGlueUsername is the secret with account username.
const SecretGlueUsername = "glueUsername"

// SecretGluePassword is the secret with account password.
const SecretGluePassword = "gluePassword"
