package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

// Version is the running plugin-core version; compared against the
// installed_version option to trigger one-time migrations.
const Version = "1.5"

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to config.json in development environment
)

const defaultBroadcastFormat = "{title}: {content} {url}"

type Config struct {
	Secrets         Secrets        `json:"-"`
	LogFile         string         `json:"log_file"`
	LogLevel        string         `json:"log_level"`
	ServicePort     uint           `json:"service_port"`
	Host            string         `json:"host"`
	DbFile          string         `json:"db_file"`
	BroadcastFormat string         `json:"broadcast_format"`
	Aggregation     AggregationCfg `json:"aggregation"`
	ExternalCron    bool           `json:"external_cron"`
	ProfileDir      string         `json:"profile_dir"`
	ProfileKeepDays int            `json:"profile_keep_days"`
}

// AggregationCfg is the reply-polling backoff schedule: polling for a post
// starts at InitialMinutes and doubles after each run, up to MaxMinutes.
type AggregationCfg struct {
	InitialMinutes int `json:"initial_minutes"`
	MaxMinutes     int `json:"max_minutes"`
	TickSeconds    int `json:"tick_seconds"`
}

type Secrets struct {
	ApiKeys               []string `json:"api_keys"`
	CronApiKey            string   `json:"cron_api_key"`
	MetricsAuth           string   `json:"metrics_auth"`
	TwitterConsumerKey    string   `json:"twitter_consumer_key"`
	TwitterConsumerSecret string   `json:"twitter_consumer_secret"`
	FacebookAppId         string   `json:"facebook_app_id"`
	FacebookAppSecret     string   `json:"facebook_app_secret"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)

	applyDefaults(&config)
	return &config
}

func applyDefaults(config *Config) {
	if config.BroadcastFormat == "" {
		config.BroadcastFormat = defaultBroadcastFormat
	}
	if config.Aggregation.InitialMinutes == 0 {
		config.Aggregation.InitialMinutes = 15
	}
	if config.Aggregation.MaxMinutes == 0 {
		config.Aggregation.MaxMinutes = 60 * 24
	}
	if config.Aggregation.TickSeconds == 0 {
		config.Aggregation.TickSeconds = 60
	}
	if config.ProfileKeepDays == 0 {
		config.ProfileKeepDays = 7
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
