package gate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/xraph/sequin/gate"
)

func TestGate_Unconfigured(t *testing.T) {
	g := gate.New(gate.Config{})
	// No bounds; any occupancy passes.
	if err := g.Admit(0); err != nil {
		t.Fatalf("Admit(0) error: %v", err)
	}
	if err := g.Admit(1_000_000); err != nil {
		t.Fatalf("Admit(1000000) error: %v", err)
	}
}

func TestGate_MaxBuffered(t *testing.T) {
	g := gate.New(gate.Config{MaxBuffered: 2})

	if err := g.Admit(0); err != nil {
		t.Fatalf("Admit(0) error: %v", err)
	}
	if err := g.Admit(1); err != nil {
		t.Fatalf("Admit(1) error: %v", err)
	}
	if err := g.Admit(2); !errors.Is(err, gate.ErrBufferFull) {
		t.Fatalf("Admit(2) = %v, want ErrBufferFull", err)
	}
}

func TestGate_RateLimit(t *testing.T) {
	g := gate.New(gate.Config{RateLimit: 1, RateBurst: 2})

	// Burst of 2 passes.
	if err := g.Admit(0); err != nil {
		t.Fatalf("first Admit error: %v", err)
	}
	if err := g.Admit(0); err != nil {
		t.Fatalf("second Admit error: %v", err)
	}
	// Third exceeds the bucket.
	if err := g.Admit(0); !errors.Is(err, gate.ErrThrottled) {
		t.Fatalf("third Admit = %v, want ErrThrottled", err)
	}
}

func TestGate_RateLimitRefills(t *testing.T) {
	g := gate.New(gate.Config{RateLimit: 50, RateBurst: 1})

	if err := g.Admit(0); err != nil {
		t.Fatalf("first Admit error: %v", err)
	}
	if err := g.Admit(0); !errors.Is(err, gate.ErrThrottled) {
		t.Fatalf("second Admit = %v, want ErrThrottled", err)
	}

	// 50/s refills a token within ~20ms.
	time.Sleep(40 * time.Millisecond)
	if err := g.Admit(0); err != nil {
		t.Fatalf("Admit after refill error: %v", err)
	}
}

func TestGate_FullBufferDoesNotConsumeTokens(t *testing.T) {
	g := gate.New(gate.Config{MaxBuffered: 1, RateLimit: 1, RateBurst: 1})

	// Rejected on the cap; the single rate token must survive.
	if err := g.Admit(1); !errors.Is(err, gate.ErrBufferFull) {
		t.Fatalf("Admit(1) = %v, want ErrBufferFull", err)
	}
	if err := g.Admit(0); err != nil {
		t.Fatalf("Admit(0) error: %v", err)
	}
}

func TestGate_DefaultBurst(t *testing.T) {
	g := gate.New(gate.Config{RateLimit: 1})

	// Burst defaults to 1: one admission passes, the next is throttled.
	if err := g.Admit(0); err != nil {
		t.Fatalf("first Admit error: %v", err)
	}
	if err := g.Admit(0); !errors.Is(err, gate.ErrThrottled) {
		t.Fatalf("second Admit = %v, want ErrThrottled", err)
	}
}
