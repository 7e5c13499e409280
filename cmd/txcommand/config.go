package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/txcommand/internal/api"
	"github.com/nikmy/txcommand/internal/repo"
	"github.com/nikmy/txcommand/pkg/environment"
	"github.com/nikmy/txcommand/pkg/errors"
)

const (
	backendPostgres = "postgres"
	backendMongo    = "mongo"
)

type Config struct {
	Environment environment.Env     `yaml:"Environment"`
	Backend     string              `yaml:"Backend"`
	Postgres    repo.PostgresConfig `yaml:"Postgres"`
	Mongo       repo.MongoConfig    `yaml:"Mongo"`
	API         api.Config          `yaml:"API"`
}

func loadConfig(path string) (*Config, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if cfg.Backend == "" {
		cfg.Backend = backendPostgres
	}

	return &cfg, nil
}
