package main

import (
	"testing"
	"time"
)

func TestConfigureExternalHTTPClient(t *testing.T) {
	original := externalHTTPClient.Timeout
	t.Cleanup(func() { externalHTTPClient.Timeout = original })

	if got := ConfigureExternalHTTPClient(12); got != 12*time.Second {
		t.Fatalf("expected 12s timeout, got %s", got)
	}
	// Non-positive values keep whatever is currently configured.
	if got := ConfigureExternalHTTPClient(0); got != 12*time.Second {
		t.Fatalf("expected timeout to be unchanged, got %s", got)
	}
	if got := ConfigureExternalHTTPClient(-5); got != 12*time.Second {
		t.Fatalf("expected timeout to be unchanged, got %s", got)
	}
}
