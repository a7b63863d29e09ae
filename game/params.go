package game

import (
	"github.com/pthm-cable/rockfield/components"
	"github.com/pthm-cable/rockfield/config"
)

// SizeParams defines the procedural outline for one asteroid size.
type SizeParams struct {
	Verts     int
	MinRadius float64
	MaxRadius float64
}

// Params carries the tuning the world and its factories run with,
// derived once from config so the simulation core never reads global
// state.
type Params struct {
	Tuning components.Tuning

	BulletTTL          int
	BulletSpeed        float64
	BulletMuzzleOffset float64

	SplitImpulse  float64
	AsteroidSizes [3]SizeParams

	DebrisTTL       int
	DebrisSpeed     float64
	DebrisVerts     int
	DebrisMinRadius float64
	DebrisMaxRadius float64
}

// ParamsFromConfig maps the loaded configuration onto world tuning.
func ParamsFromConfig(cfg *config.Config) Params {
	p := Params{
		Tuning: components.Tuning{
			Thrust:   cfg.Physics.Thrust,
			TurnRate: cfg.Derived.TurnRate,
			Drag:     cfg.Physics.Drag,
		},
		BulletTTL:          cfg.Bullet.TTL,
		BulletSpeed:        cfg.Bullet.Speed,
		BulletMuzzleOffset: cfg.Bullet.MuzzleOffset,

		SplitImpulse: cfg.Asteroid.SplitImpulse,

		DebrisTTL:       cfg.Debris.TTL,
		DebrisSpeed:     cfg.Debris.Speed,
		DebrisVerts:     cfg.Debris.Verts,
		DebrisMinRadius: cfg.Debris.MinRadius,
		DebrisMaxRadius: cfg.Debris.MaxRadius,
	}
	for i, s := range cfg.Asteroid.Sizes {
		p.AsteroidSizes[i] = SizeParams{
			Verts:     s.Verts,
			MinRadius: s.MinRadius,
			MaxRadius: s.MaxRadius,
		}
	}
	return p
}
