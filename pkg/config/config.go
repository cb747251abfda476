package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Bip39 Bip39Config `mapstructure:"bip39"`
}

type AppConfig struct {
	Env          string        `mapstructure:"env"`
	LogLevel     string        `mapstructure:"log_level"`
	HttpPort     string        `mapstructure:"http_port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type Bip39Config struct {
	RejectDuplicates bool `mapstructure:"reject_duplicates"` // 拒绝重复单词 (标准 BIP-39 允许)
	MaxPhraseBytes   int  `mapstructure:"max_phrase_bytes"`  // 请求中助记词的最大字节数
}

var Global Config

func Init() {
	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	v.AddConfigPath(".")      // optionally look for config in the working directory
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error if desired
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			// Config file was found but another error was produced
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	Global = cfg

	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load 在 v 上设置默认值与环境变量映射并解析配置。
// 环境变量: APP_HTTP_PORT, BIP39_REJECT_DUPLICATES ...
func Load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Bip39.MaxPhraseBytes <= 0 {
		return Config{}, fmt.Errorf("bip39.max_phrase_bytes must be positive, got %d", cfg.Bip39.MaxPhraseBytes)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.read_timeout", 10*time.Second)
	v.SetDefault("app.write_timeout", 30*time.Second)

	v.SetDefault("bip39.reject_duplicates", true)
	v.SetDefault("bip39.max_phrase_bytes", 1024)
}
