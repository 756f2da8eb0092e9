package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-store/pkg/kafka"
	"github.com/Astemirdum/book-store/pkg/logger"
	"github.com/Astemirdum/book-store/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STORE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"STORE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Auth struct {
	Secret string `json:"-" envconfig:"JWT_SECRET" required:"true"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Auth     Auth        `yaml:"auth"`
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		c, err := load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = c
		printConfig(cfg)
	})

	return cfg
}

func load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
