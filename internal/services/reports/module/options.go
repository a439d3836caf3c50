package module

import "resumail/internal/platform/config"

// Options holds configuration settings for the reports module
type Options struct {
	ListLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REPORTS_")
	return Options{
		ListLimit: rf.MayInt("LIST_LIMIT", 50),
	}
}
