package api

import "time"

// Config of the people API. Zero values keep fiber defaults.
type Config struct {
	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		BodyLimit    int           `yaml:"body_limit"`
	} `yaml:"http"`

	Proxy struct {
		Header  string   `yaml:"header"`
		Trusted []string `yaml:"trusted"`
	} `yaml:"proxy"`

	// MetricsPath serves the session metrics, /metrics if empty.
	MetricsPath string `yaml:"metrics_path"`
}

func (c Config) metricsPath() string {
	if c.MetricsPath == "" {
		return "/metrics"
	}
	return c.MetricsPath
}
