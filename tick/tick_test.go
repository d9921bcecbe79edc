package tick_test

import (
	"testing"
	"time"

	"github.com/xraph/sequin/tick"
)

func TestInterval_DeliversTicks(t *testing.T) {
	src := tick.NewInterval(10 * time.Millisecond)
	defer src.Stop()

	ch := src.Start()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a tick within 1s")
	}
}

func TestInterval_StopIsIdempotent(t *testing.T) {
	src := tick.NewInterval(10 * time.Millisecond)
	src.Start()
	src.Stop()
	src.Stop() // must not panic
}

func TestInterval_StopBeforeStart(t *testing.T) {
	src := tick.NewInterval(10 * time.Millisecond)
	src.Stop() // must not panic
}

func TestParseSchedule_EveryDescriptor(t *testing.T) {
	sched, err := tick.ParseSchedule("@every 30s")
	if err != nil {
		t.Fatalf("ParseSchedule(@every 30s) error: %v", err)
	}

	now := time.Now()
	next := sched.Next(now)
	if diff := next.Sub(now); diff <= 0 || diff > 31*time.Second {
		t.Errorf("Next() = %v from now, want ~30s", diff)
	}
}

func TestParseSchedule_FiveField(t *testing.T) {
	if _, err := tick.ParseSchedule("*/5 * * * *"); err != nil {
		t.Fatalf("ParseSchedule(*/5 * * * *) error: %v", err)
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	if _, err := tick.ParseSchedule("not a schedule"); err == nil {
		t.Fatal("expected error for invalid expression")
	}
}

func TestNewSchedule_Invalid(t *testing.T) {
	if _, err := tick.NewSchedule("bogus"); err == nil {
		t.Fatal("expected error for invalid expression")
	}
}

func TestSchedule_DeliversTicks(t *testing.T) {
	src, err := tick.NewSchedule("@every 20ms")
	if err != nil {
		t.Fatalf("NewSchedule error: %v", err)
	}
	defer src.Stop()

	ch := src.Start()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a tick within 1s")
	}
}

func TestSchedule_StopHaltsTicks(t *testing.T) {
	src, err := tick.NewSchedule("@every 10ms")
	if err != nil {
		t.Fatalf("NewSchedule error: %v", err)
	}

	ch := src.Start()
	src.Stop()

	// Drain anything already in flight, then expect silence.
	time.Sleep(30 * time.Millisecond)
	for len(ch) > 0 {
		<-ch
	}
	select {
	case <-ch:
		t.Fatal("tick delivered after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
