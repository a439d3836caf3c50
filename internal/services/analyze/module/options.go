package module

import (
	"time"

	"resumail/internal/platform/config"
)

// Options holds configuration settings for the analyze module
type Options struct {
	BatchSize int
	FanIn     int

	OracleBaseURL    string
	OracleModel      string
	OracleAPIKey     string
	OracleTimeout    time.Duration
	OracleMaxTokens  int
	OracleMaxRetries int
}

// FromConfig reads the pipeline settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANALYZE_")
	return Options{
		BatchSize: af.MayInt("BATCH_SIZE", 50),
		FanIn:     af.MayInt("FAN_IN", 5),
	}
}

// withOracle reads the oracle client settings. API_KEY is required, so this
// must only run when no Oracle override is injected
func (o Options) withOracle(cfg config.Conf) Options {
	of := cfg.Prefix("SERVICE_ORACLE_")
	o.OracleBaseURL = of.MayString("BASE_URL", "")
	o.OracleModel = of.MayString("MODEL", "")
	o.OracleAPIKey = of.MustString("API_KEY")
	o.OracleTimeout = of.MayDuration("TIMEOUT", 90*time.Second)
	o.OracleMaxTokens = of.MayInt("MAX_OUTPUT_TOKENS", 0)
	o.OracleMaxRetries = of.MayInt("MAX_RETRIES", 0)
	return o
}
