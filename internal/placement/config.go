package placement

// SnapConfig holds every distance threshold the engine uses, in millimeters.
type SnapConfig struct {
	// WallSnapThreshold is the edge-to-wall distance below which a wall
	// snap engages.
	WallSnapThreshold float64
	// WallReleaseThreshold is the larger distance an already-snapped item
	// must exceed before the wall snap disengages. The gap between the two
	// prevents flicker while a cabinet sits near the boundary.
	WallReleaseThreshold float64
	// CornerSnapThreshold applies to both walls of a corner pair.
	CornerSnapThreshold float64
	// CabinetSnapThreshold is the edge-to-edge gap below which a
	// cabinet-to-cabinet match fires.
	CabinetSnapThreshold float64
	// BackAlignThreshold is the secondary-axis tolerance against the
	// neighbor's back edge. Tighter than CabinetAlignThreshold so wall-run
	// alignment wins ties.
	BackAlignThreshold float64
	// CabinetAlignThreshold is the secondary-axis tolerance against the
	// neighbor's front edge and center line.
	CabinetAlignThreshold float64
	// GridStep is the fallback grid resolution when the caller supplies none.
	GridStep float64
	// CollisionMargin is added on top of the minimal push-out distance when
	// resolving an overlap.
	CollisionMargin float64
}

// DefaultSnapConfig returns the tuned production thresholds.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		WallSnapThreshold:     200,
		WallReleaseThreshold:  350,
		CornerSnapThreshold:   300,
		CabinetSnapThreshold:  200,
		BackAlignThreshold:    60,
		CabinetAlignThreshold: 90,
		GridStep:              50,
		CollisionMargin:       10,
	}
}

// Engine evaluates snap positions. It holds only configuration; every call
// is pure and stateless, so a single Engine is safe to share.
type Engine struct {
	cfg SnapConfig
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(cfg SnapConfig) *Engine {
	if cfg.GridStep <= 0 {
		cfg.GridStep = DefaultSnapConfig().GridStep
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's thresholds.
func (e *Engine) Config() SnapConfig {
	return e.cfg
}
