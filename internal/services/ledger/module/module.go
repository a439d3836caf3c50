// Package module wires the credit ledger into the API using modkit
package module

import (
	"net/http"

	modkit "resumail/internal/modkit"
	"resumail/internal/modkit/httpkit"
	str "resumail/internal/platform/strings"
	"resumail/internal/services/ledger/domain"
	ledgerhttp "resumail/internal/services/ledger/http"
	ledgerrepo "resumail/internal/services/ledger/repo"
	ledgersvc "resumail/internal/services/ledger/service"
)

// Ports exposed by the ledger module for cross-module wiring
type Ports struct {
	Reserver domain.ReserverPort
	Balance  domain.BalancePort
	Creditor domain.CreditorPort
	Pricer   domain.PricerPort
}

// Module implements the ledger module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *ledgersvc.Service
}

// New constructs the ledger module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ledger"),
		modkit.WithPrefix("/ledger"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := ledgersvc.New(deps.PG, ledgerrepo.NewPG(), deps.CH, ledgersvc.Config{
		Atomic:        o.Atomic,
		CostPerRecord: o.CostPerRecord,
		UsageTable:    o.UsageTable,
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
	m.ports = Ports{Reserver: svc, Balance: svc, Creditor: svc, Pricer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ledgerhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
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
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports for registry lookups
func (m *Module) Ports() any { return m.ports }
