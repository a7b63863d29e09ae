// Package telemetry accumulates simulation events into windowed stats.
package telemetry

import "github.com/pthm-cable/rockfield/components"

// KindCounts holds live entity counts by kind at a point in time.
type KindCounts struct {
	Asteroids int
	Bullets   int
	Debris    int
	Players   int
}

// Collector accumulates events within tick windows and produces
// WindowStats. A nil Collector is valid and records nothing, so the
// world can run without telemetry wired up.
type Collector struct {
	windowTicks int64
	windowStart int64

	spawned    [4]int // indexed by components.Kind
	removed    [4]int
	splits     int
	pairChecks int
	hits       int
	playerHits int
}

// NewCollector creates a stats collector.
// windowSec: how long each stats window lasts in simulation seconds.
// ticksPerSecond: the nominal tick rate, for tick-to-time conversion.
func NewCollector(windowSec float64, ticksPerSecond int) *Collector {
	ticks := int64(windowSec * float64(ticksPerSecond))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks}
}

// RecordSpawn records an entity entering the world.
func (c *Collector) RecordSpawn(k components.Kind) {
	if c == nil {
		return
	}
	c.spawned[k]++
}

// RecordRemoval records an entity leaving the world.
func (c *Collector) RecordRemoval(k components.Kind) {
	if c == nil {
		return
	}
	c.removed[k]++
}

// RecordSplit records an asteroid splitting into children.
func (c *Collector) RecordSplit() {
	if c == nil {
		return
	}
	c.splits++
}

// RecordPairCheck records one collidable pair reaching the geometric test.
func (c *Collector) RecordPairCheck() {
	if c == nil {
		return
	}
	c.pairChecks++
}

// RecordCollision records a geometric test reporting contact.
func (c *Collector) RecordCollision() {
	if c == nil {
		return
	}
	c.hits++
}

// RecordPlayerHit records a player-involving collision left to the
// extension point.
func (c *Collector) RecordPlayerHit() {
	if c == nil {
		return
	}
	c.playerHits++
}

// ShouldFlush reports whether the current window ends at the given tick.
func (c *Collector) ShouldFlush(tick int64) bool {
	if c == nil {
		return false
	}
	return tick-c.windowStart >= c.windowTicks
}

// Flush produces the stats for the closing window and starts the next
// one. counts and speeds describe the live entity set at window end.
func (c *Collector) Flush(tick int64, ticksPerSecond int, counts KindCounts, speeds []float64) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) / float64(ticksPerSecond),

		Asteroids: counts.Asteroids,
		Bullets:   counts.Bullets,
		Debris:    counts.Debris,
		Players:   counts.Players,

		SpawnedAsteroids: c.spawned[components.KindAsteroid],
		SpawnedBullets:   c.spawned[components.KindBullet],
		SpawnedDebris:    c.spawned[components.KindDebris],
		RemovedAsteroids: c.removed[components.KindAsteroid],
		RemovedBullets:   c.removed[components.KindBullet],
		RemovedDebris:    c.removed[components.KindDebris],

		Splits:     c.splits,
		PairChecks: c.pairChecks,
		Hits:       c.hits,
		PlayerHits: c.playerHits,
	}

	stats.SpeedMean, stats.SpeedStd, stats.SpeedP50, stats.SpeedP90 = ComputeSpeedStats(speeds)

	c.windowStart = tick
	c.spawned = [4]int{}
	c.removed = [4]int{}
	c.splits = 0
	c.pairChecks = 0
	c.hits = 0
	c.playerHits = 0

	return stats
}
