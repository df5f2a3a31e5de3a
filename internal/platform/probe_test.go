package platform

import (
	"errors"
	"testing"
)

func TestUnsupportedProbe(t *testing.T) {
	probe := unsupportedProbe{reason: "test target"}

	if probe.Name() != "unsupported" {
		t.Fatalf("unexpected name %q", probe.Name())
	}

	_, err := probe.Probe()
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
