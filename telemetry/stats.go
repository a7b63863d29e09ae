package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Live counts at window end
	Asteroids int `csv:"asteroids"`
	Bullets   int `csv:"bullets"`
	Debris    int `csv:"debris"`
	Players   int `csv:"players"`

	// Lifecycle events during the window
	SpawnedAsteroids int `csv:"spawned_asteroids"`
	SpawnedBullets   int `csv:"spawned_bullets"`
	SpawnedDebris    int `csv:"spawned_debris"`
	RemovedAsteroids int `csv:"removed_asteroids"`
	RemovedBullets   int `csv:"removed_bullets"`
	RemovedDebris    int `csv:"removed_debris"`

	// Collision activity
	Splits     int `csv:"splits"`
	PairChecks int `csv:"pair_checks"`
	Hits       int `csv:"hits"`
	PlayerHits int `csv:"player_hits"`

	// Speed distribution over live entities at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats calculates mean, standard deviation, and quantiles
// of the given speed samples. The input slice is sorted in place.
func ComputeSpeedStats(speeds []float64) (mean, std, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	sort.Float64s(speeds)
	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	return mean, std, p50, p90
}

// Log writes the window summary via slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"asteroids", s.Asteroids,
		"bullets", s.Bullets,
		"debris", s.Debris,
		"players", s.Players,
		"splits", s.Splits,
		"pair_checks", s.PairChecks,
		"hits", s.Hits,
		"player_hits", s.PlayerHits,
		"speed_mean", s.SpeedMean,
	)
}
