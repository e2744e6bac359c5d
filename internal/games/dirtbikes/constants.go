package dirtbikes

// World constants. Distances are world units, times are seconds.
const (
	TrackLength = 1200.0
	Lanes       = 5
	Tick        = 1.0 / 30.0
)

// Motion constants.
const (
	Gravity         = 36.0
	JumpVel         = 16.0
	Accel           = 28.0
	Brake           = 36.0
	Friction        = 10.0
	MaxSpeed        = 60.0
	EngineOffFactor = 0.25
	GroundEpsilon   = 0.001
)

// Track generation.
const (
	TrackStart      = 20.0
	TrackEndMargin  = 60.0
	ObstacleDensity = 0.008
	MinObstacleGap  = 4
)

// Contact rules.
const (
	ContactRange  = 0.9
	RockPenalty   = 12.0
	LogPenalty    = 9.0
	RampBoost     = 1.2
	SparkCooldown = 0.2
)

// Player control nudges, applied once per input event.
const (
	ThrottleNudge = 0.06
	BrakeNudge    = 0.08
)

// Bot behaviour.
const (
	HazardBrakeFactor = 0.2
	RampJumpFloor     = 0.65
	RampJumpBonus     = 0.2
)

// Camera and countdown.
const (
	CameraSmoothing = 0.12
	CountdownTotal  = 3.6
	ParticleGravity = 0.3
	ConfettiCount   = 25
)
