package module

import "resumail/internal/platform/config"

// Options holds configuration settings for the ledger module
type Options struct {
	Atomic        bool
	CostPerRecord int
	UsageTable    string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_LEDGER_")
	return Options{
		Atomic:        lf.MayBool("ATOMIC", true),
		CostPerRecord: lf.MayInt("COST_PER_RECORD", 1),
		UsageTable:    lf.MayString("USAGE_TABLE", "usage_events"),
	}
}
