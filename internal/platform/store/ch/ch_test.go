package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_BadDSN fails fast on an unparseable DSN without dialing
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected error for bad DSN")
	}
}

// TestClose_NilSafe tolerates a zero value client
func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var cl *CH
	if err := cl.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
	if err := (&CH{}).Close(); err != nil {
		t.Fatalf("Close on zero client: %v", err)
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	info := BuildClientInfo("api", "v1")
	s := info.String()
	if !strings.Contains(s, "resumail") {
		t.Fatalf("client info missing product name: %q", s)
	}
}
