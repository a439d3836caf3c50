// Package module wires report storage into the API using modkit
package module

import (
	"net/http"

	modkit "resumail/internal/modkit"
	"resumail/internal/modkit/httpkit"
	str "resumail/internal/platform/strings"
	"resumail/internal/services/reports/domain"
	reportshttp "resumail/internal/services/reports/http"
	reportsrepo "resumail/internal/services/reports/repo"
	reportssvc "resumail/internal/services/reports/service"
)

// Ports exposed by the reports module for cross-module wiring
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module implements the reports module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *reportssvc.Service
}

// New constructs the reports module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix("/reports"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := reportssvc.New(deps.PG, reportsrepo.NewPG(), reportssvc.Config{
		ListLimit: o.ListLimit,
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
	m.ports = Ports{Writer: svc, Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reportshttp.Register(r, svc)
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
