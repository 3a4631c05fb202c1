package game

import (
	"testing"
	"time"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("disabled limiter blocked for %v", elapsed)
	}
}

func TestFPSLimiterPacing(t *testing.T) {
	f := NewFPSLimiter(100) // 10ms per frame
	f.Wait()                // prime the schedule

	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	// 5 frames at 100fps should take ~50ms; allow scheduler slack downward
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("5 capped frames took %v, want at least ~50ms", elapsed)
	}
}
