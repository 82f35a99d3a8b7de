package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	LLMProvider     string `yaml:"llm_provider"` // "gemini" or "anthropic"
	LLMModel        string `yaml:"llm_model"`
	GeminiAPIKey    string `yaml:"gemini_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`

	SpoonacularAPIKey string `yaml:"spoonacular_api_key"`

	DBPath    string `yaml:"db_path"`
	RulesPath string `yaml:"rules_path"`

	CacheMaxEntries       int    `yaml:"cache_max_entries"`
	CacheSnapshotSchedule string `yaml:"cache_snapshot_schedule"`

	ExternalHTTPTimeoutSeconds int `yaml:"external_http_timeout_seconds"`

	SlackBotToken string `yaml:"slack_bot_token"`
	SlackAppToken string `yaml:"slack_app_token"`
}

func LoadConfig() Config {
	var cfg Config

	// .env first, so its values are visible as env overrides below.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.LLMProvider, "LLM_PROVIDER")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.GeminiAPIKey, "GOOGLE_API_KEY")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.SpoonacularAPIKey, "SPOONACULAR_API_KEY")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.RulesPath, "RULES_PATH")
	envOverrideInt(&cfg.CacheMaxEntries, "CACHE_MAX_ENTRIES")
	envOverride(&cfg.CacheSnapshotSchedule, "CACHE_SNAPSHOT_SCHEDULE")
	envOverrideInt(&cfg.ExternalHTTPTimeoutSeconds, "EXTERNAL_HTTP_TIMEOUT_SECONDS")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackAppToken, "SLACK_APP_TOKEN")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":5002"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./nutrition-chatbot.db"
	}
	if cfg.CacheMaxEntries == 0 {
		cfg.CacheMaxEntries = defaultCacheMaxEntries
	}
	if cfg.ExternalHTTPTimeoutSeconds == 0 {
		cfg.ExternalHTTPTimeoutSeconds = int(defaultExternalHTTPTimeout.Seconds())
	}

	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Println("WARNING: GOOGLE_API_KEY not set - chat responses will report a configuration error")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Println("WARNING: ANTHROPIC_API_KEY not set - chat responses will report a configuration error")
		}
	default:
		log.Fatalf("llm_provider must be 'gemini' or 'anthropic', got '%s'", cfg.LLMProvider)
	}

	if cfg.SpoonacularAPIKey == "" {
		log.Println("WARNING: SPOONACULAR_API_KEY not set - food term detection and remote lookups will be limited")
	}
	if cfg.CacheMaxEntries < 1 {
		log.Fatalf("invalid cache_max_entries '%d': must be >= 1", cfg.CacheMaxEntries)
	}
	if cfg.RulesPath != "" {
		if _, err := LoadRules(cfg.RulesPath); err != nil {
			log.Fatalf("invalid rules_path '%s': %v", cfg.RulesPath, err)
		}
	}

	return cfg
}

// SlackConfigured reports whether the optional Slack front-end can start.
func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.SlackAppToken != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
