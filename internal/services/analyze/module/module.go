// Package module wires the analysis pipeline into the API using modkit
package module

import (
	"net/http"

	"resumail/internal/adapters/oracle"
	modkit "resumail/internal/modkit"
	"resumail/internal/modkit/httpkit"
	str "resumail/internal/platform/strings"
	"resumail/internal/services/analyze/domain"
	analyzehttp "resumail/internal/services/analyze/http"
	analyzesvc "resumail/internal/services/analyze/service"
	ledgerdom "resumail/internal/services/ledger/domain"
	reportsdom "resumail/internal/services/reports/domain"
)

// Ports declares what the analyze module needs from and offers to others.
// Reserver, Pricer and Reports must be injected; Analyzer is exported
type Ports struct {
	Reserver ledgerdom.ReserverPort
	Pricer   ledgerdom.PricerPort
	Reports  reportsdom.WriterPort

	// Oracle overrides the config-built client, used by tests and workers
	Oracle domain.CompletePort

	Analyzer domain.AnalyzerPort
}

// Module implements the analyze module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *analyzesvc.Service
}

// New constructs the analyze module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
		modkit.WithPrefix(""),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Reserver == nil || injected.Pricer == nil {
		panic("analyze module requires ledger ports (Reserver, Pricer)")
	}
	if injected.Reports == nil {
		panic("analyze module requires the reports Writer port")
	}

	o := FromConfig(deps.Cfg)

	complete := injected.Oracle
	if complete == nil {
		o = o.withOracle(deps.Cfg)
		complete = oracle.NewClient(oracle.Options{
			BaseURL:         o.OracleBaseURL,
			Model:           o.OracleModel,
			APIKey:          o.OracleAPIKey,
			Timeout:         o.OracleTimeout,
			MaxOutputTokens: o.OracleMaxTokens,
			MaxRetries:      o.OracleMaxRetries,
		})
	}

	svc := analyzesvc.New(complete, injected.Reserver, injected.Pricer, injected.Reports, analyzesvc.Config{
		BatchSize: o.BatchSize,
		FanIn:     o.FanIn,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = injected
	m.ports.Analyzer = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyzehttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.prefix == "" {
		for _, mw := range m.mws {
			r.Use(mw)
		}
		if m.register != nil {
			m.register(r)
		}
		return
	}
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports for registry lookups
func (m *Module) Ports() any { return m.ports }
