// Package api provides the HTTP API for the application
package api

import (
	"resumail/internal/platform/config"
	"resumail/internal/platform/logger"
	phttp "resumail/internal/platform/net/http"
	"resumail/internal/platform/store"

	"resumail/internal/modkit"
	"resumail/internal/modkit/httpkit"
	"resumail/internal/modkit/module"
	"resumail/internal/modkit/swaggerkit"

	analyzemod "resumail/internal/services/analyze/module"
	metamod "resumail/internal/services/api/meta/module"
	ledgermod "resumail/internal/services/ledger/module"
	reportsmod "resumail/internal/services/reports/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Ledger and reports come first, the pipeline consumes their ports
	ledger := ledgermod.New(deps)
	ledgerPorts := ledger.Ports().(ledgermod.Ports)

	reports := reportsmod.New(deps)
	reportsPorts := reports.Ports().(reportsmod.Ports)

	analyze := analyzemod.New(
		deps,
		modkit.WithPorts(analyzemod.Ports{
			Reserver: ledgerPorts.Reserver,
			Pricer:   ledgerPorts.Pricer,
			Reports:  reportsPorts.Writer,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		ledger,
		reports,
		analyze,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
