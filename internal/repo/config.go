package repo

import (
	"time"

	"github.com/nikmy/txcommand/pkg/txn"
)

type PostgresConfig struct {
	URL       string             `yaml:"url"`
	Isolation txn.IsolationLevel `yaml:"isolation"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Isolation *txn.IsolationLevel `yaml:"isolation"`
}
