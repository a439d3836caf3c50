package module

import (
	"context"
	"testing"

	"resumail/internal/core/analysis"
	modkit "resumail/internal/modkit"
	"resumail/internal/platform/config"
)

type stubOracle struct{}

func (stubOracle) Complete(context.Context, string, string) (string, error) { return "{}", nil }

type stubLedger struct{}

func (stubLedger) Reserve(_ context.Context, _ string, amount int) (int, error) { return 0, nil }
func (stubLedger) Quote(records int) int                                        { return records }

type stubWriter struct{}

func (stubWriter) SaveMini(context.Context, string, analysis.Result, int) (string, error) {
	return "m", nil
}

func (stubWriter) SaveFinal(context.Context, string, analysis.Result, []string) (string, error) {
	return "f", nil
}

// TestNew_InjectedOracleSkipsClientConfig constructs the module with an
// Oracle override and no SERVICE_ORACLE_* env; the client config (which
// requires API_KEY) must never be read
func TestNew_InjectedOracleSkipsClientConfig(t *testing.T) {
	deps := modkit.Deps{Cfg: config.New()}

	m := New(deps, modkit.WithPorts(Ports{
		Reserver: stubLedger{},
		Pricer:   stubLedger{},
		Reports:  stubWriter{},
		Oracle:   stubOracle{},
	}))
	if m == nil {
		t.Fatalf("New returned nil module")
	}

	p, ok := m.Ports().(Ports)
	if !ok {
		t.Fatalf("Ports() = %T, want module.Ports", m.Ports())
	}
	if p.Analyzer == nil {
		t.Fatalf("Analyzer port not exported")
	}
}

// TestNew_MissingLedgerPortsPanics guards the required injections
func TestNew_MissingLedgerPortsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without ledger ports")
		}
	}()
	New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(Ports{Reports: stubWriter{}, Oracle: stubOracle{}}))
}
