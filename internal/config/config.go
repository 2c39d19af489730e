package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LogBackend string

const (
	BackendFile   LogBackend = "file"
	BackendSQLite LogBackend = "sqlite"
)

type Config struct {
	// LINE credentials
	LineChannelSecret string `env:"LINE_CHANNEL_SECRET,required"`
	LineChannelToken  string `env:"LINE_CHANNEL_TOKEN,required"`
	ListenAddr        string `env:"LISTEN_ADDR" envDefault:":5000"`

	// Embedding backend
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	// Storefront
	StoreBaseURL     string `env:"STORE_BASE_URL" envDefault:"https://mustardsneakers.com"`
	CacheRefreshSpec string `env:"CACHE_REFRESH_SPEC" envDefault:"@every 30m"`

	// Storage
	GreetingCorpusPath string     `env:"GREETING_CORPUS_PATH" envDefault:"data/greetings.json"`
	LogBackend         LogBackend `env:"LOG_BACKEND" envDefault:"file"`
	LogFilePath        string     `env:"LOG_FILE_PATH" envDefault:"logs/interactions.jsonl"`
	LogDBPath          string     `env:"LOG_DB_PATH" envDefault:"data/interactions.db"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
