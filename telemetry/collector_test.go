package telemetry

import (
	"testing"

	"github.com/pthm-cable/rockfield/components"
)

func TestCollectorWindowBoundaries(t *testing.T) {
	c := NewCollector(5.0, 60)

	if c.ShouldFlush(299) {
		t.Error("should not flush before the window fills")
	}
	if !c.ShouldFlush(300) {
		t.Error("should flush at the window boundary")
	}

	c.Flush(300, 60, KindCounts{}, nil)
	if c.ShouldFlush(599) {
		t.Error("should not flush mid-window after a flush")
	}
	if !c.ShouldFlush(600) {
		t.Error("should flush at the next boundary")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 60)
	if !c.ShouldFlush(1) {
		t.Error("degenerate window should clamp to one tick")
	}
}

func TestCollectorAccumulatesAndResets(t *testing.T) {
	c := NewCollector(1.0, 60)

	c.RecordSpawn(components.KindBullet)
	c.RecordSpawn(components.KindBullet)
	c.RecordSpawn(components.KindAsteroid)
	c.RecordRemoval(components.KindAsteroid)
	c.RecordRemoval(components.KindDebris)
	c.RecordSplit()
	c.RecordPairCheck()
	c.RecordPairCheck()
	c.RecordPairCheck()
	c.RecordCollision()
	c.RecordPlayerHit()

	counts := KindCounts{Asteroids: 3, Bullets: 2, Players: 1}
	stats := c.Flush(60, 60, counts, []float64{2, 2})

	if stats.SpawnedBullets != 2 || stats.SpawnedAsteroids != 1 {
		t.Errorf("spawned bullets=%d asteroids=%d, want 2 and 1", stats.SpawnedBullets, stats.SpawnedAsteroids)
	}
	if stats.RemovedAsteroids != 1 || stats.RemovedDebris != 1 {
		t.Errorf("removed asteroids=%d debris=%d, want 1 and 1", stats.RemovedAsteroids, stats.RemovedDebris)
	}
	if stats.Splits != 1 || stats.PairChecks != 3 || stats.Hits != 1 || stats.PlayerHits != 1 {
		t.Errorf("activity = %d/%d/%d/%d, want 1/3/1/1", stats.Splits, stats.PairChecks, stats.Hits, stats.PlayerHits)
	}
	if stats.Asteroids != 3 || stats.Bullets != 2 || stats.Players != 1 {
		t.Errorf("live counts not carried through: %+v", stats)
	}
	if stats.SimTimeSec != 1.0 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}
	if stats.SpeedMean != 2 {
		t.Errorf("speed mean = %v, want 2", stats.SpeedMean)
	}

	// The next window starts clean.
	next := c.Flush(120, 60, KindCounts{}, nil)
	if next.SpawnedBullets != 0 || next.Splits != 0 || next.PairChecks != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("window start = %d, want 60", next.WindowStartTick)
	}
}

// TestNilCollector checks a nil collector absorbs every call, so the
// world can run without telemetry.
func TestNilCollector(t *testing.T) {
	var c *Collector
	c.RecordSpawn(components.KindBullet)
	c.RecordRemoval(components.KindBullet)
	c.RecordSplit()
	c.RecordPairCheck()
	c.RecordCollision()
	c.RecordPlayerHit()
	if c.ShouldFlush(1000) {
		t.Error("nil collector should never request a flush")
	}
}
