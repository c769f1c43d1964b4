package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"required"`
	BodyLimit   int    `koanf:"body_limit" validate:"required"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleAdapt   Module = "adapt"
	ModuleSpeech  Module = "speech"
	ModuleParse   Module = "parse"
	ModuleLLM     Module = "llm"
	ModuleServer  Module = "server"
	ModuleSetting Module = "setting"
)

type anthropicConfig struct {
	Key       string `koanf:"key"`
	BaseURL   string `koanf:"base_url" validate:"required"`
	Model     string `koanf:"model" validate:"required"`
	Version   string `koanf:"version" validate:"required"`
	MaxTokens int    `koanf:"max_tokens" validate:"required"`
	// Seconds; the upstream call is aborted past this deadline.
	Timeout int `koanf:"timeout" validate:"required"`
}

type openaiConfig struct {
	Key      string `koanf:"key"`
	TTSModel string `koanf:"tts_model" validate:"required"`
	Voice    string `koanf:"voice" validate:"required"`
	Timeout  int    `koanf:"timeout" validate:"required"`
}

type adaptConfig struct {
	// Ceiling on a decoded uploaded document, in bytes.
	MaxDocumentBytes int `koanf:"max_document_bytes" validate:"required"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins" validate:"required"`
	AllowMethods []string `koanf:"allow_methods" validate:"required"`
	AllowHeaders []string `koanf:"allow_headers" validate:"required"`
}

type config struct {
	Server    serverConfig    `koanf:"server"`
	Anthropic anthropicConfig `koanf:"anthropic"`
	OpenAI    openaiConfig    `koanf:"openai"`
	Adapt     adaptConfig     `koanf:"adapt"`
	Cors      corsConfig      `koanf:"cors"`
	LogLevel  logLevel        `koanf:"log_level"`
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        8000,
		Mode:        "release",
		Concurrency: 64,
		BodyLimit:   16 << 20,
		AppName:     "ai-adapt-reader",
	},
	Anthropic: anthropicConfig{
		Key:       "",
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     "claude-sonnet-4-20250514",
		Version:   "2023-06-01",
		MaxTokens: 4096,
		Timeout:   120,
	},
	OpenAI: openaiConfig{
		Key:      "",
		TTSModel: "tts-1",
		Voice:    "alloy",
		Timeout:  60,
	},
	Adapt: adaptConfig{
		MaxDocumentBytes: 10 << 20,
	},
	Cors: corsConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	},
	LogLevel: Info,
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

// envKey maps APP_SECTION__FIELD to section.field. A double underscore marks
// the nesting boundary so single underscores inside field names survive
// (APP_ADAPT__MAX_DOCUMENT_BYTES -> adapt.max_document_bytes).
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "APP_")), "__", ".")
}

func init() {
	path := "config.yaml"

	once.Do(func() {
		k := koanf.New(".")

		validate := validator.New()
		// defaults
		Cfg = defaultConfig

		// file
		if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !os.IsNotExist(e) {
			return
		}

		// env APP_ANTHROPIC__KEY, APP_SERVER__PORT, ...
		if e := k.Load(env.Provider("APP_", ".", envKey), nil); e != nil {
			return
		}

		// bind
		if e := k.Unmarshal("", &Cfg); e != nil {
			log.Errorf("failed to unmarshal config: %v", e)
		}

		// validate config
		if err := validate.Struct(Cfg); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%v Config validation failed:\n", ModuleSetting))

				for _, e := range errs {
					sb.WriteString(
						fmt.Sprintf("  - %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()),
					)
				}

				log.Error(sb.String())
			} else {
				log.Errorf("config validation failed: %v", err)
			}
		}
	})
}
