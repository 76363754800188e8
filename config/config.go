package config

import "github.com/go-gl/mathgl/mgl64"

// PlayerConfig contains the player ball's attribute bag and control strengths
type PlayerConfig struct {
	// Attribute bag handed to the physics adapter at spawn
	Radius         float64    `yaml:"radius"`
	Density        float64    `yaml:"density"`
	Friction       float64    `yaml:"friction"`
	Restitution    float64    `yaml:"restitution"`
	LinearDamping  float64    `yaml:"linear_damping"`
	AngularDamping float64    `yaml:"angular_damping"`
	CCD            bool       `yaml:"ccd"`
	Spawn          mgl64.Vec3 `yaml:"spawn"`

	// Control
	TorqueStrength float64 `yaml:"torque_strength"` // Grounded rolling torque (per second)
	AirControl     float64 `yaml:"air_control"`     // Airborne impulse (per second), weaker than ground
}

// PhysicsConfig contains physics adapter configuration values
type PhysicsConfig struct {
	Gravity              float64 `yaml:"gravity"` // Magnitude, applied along -Y
	FixedStep            float64 `yaml:"fixed_step"`
	MaxFrameTime         float64 `yaml:"max_frame_time"` // Elapsed time is clamped to this
	ContactSkin          float64 `yaml:"contact_skin"`   // Extra distance that still counts as touching
	RestitutionThreshold float64 `yaml:"restitution_threshold"`
	MaxCCDSubsteps       int     `yaml:"max_ccd_substeps"`

	// Broad-phase grid over the horizontal (X, Z) plane
	SpaceOriginX float64 `yaml:"space_origin_x"`
	SpaceOriginZ float64 `yaml:"space_origin_z"`
	SpaceWidth   int     `yaml:"space_width"`
	SpaceDepth   int     `yaml:"space_depth"`
	CellSize     int     `yaml:"cell_size"`
}

// OceanConfig contains submersion configuration values
type OceanConfig struct {
	SeaLevel         float64 `yaml:"sea_level"`
	Band             float64 `yaml:"band"`          // Exit only above SeaLevel+Band
	WaterDamping     float64 `yaml:"water_damping"` // Velocity multiplier per tick
	BuoyancyStrength float64 `yaml:"buoyancy_strength"`
	MaxBuoyancyDepth float64 `yaml:"max_buoyancy_depth"`
	FloorY           float64 `yaml:"floor_y"`
}

// RampConfig describes the analytic launch ramp
type RampConfig struct {
	Origin       mgl64.Vec3 `yaml:"origin"`
	Yaw          float64    `yaml:"yaw"`    // Radians, 0 = ramp runs along +X
	Length       float64    `yaml:"length"` // L
	Shape        float64    `yaml:"shape"`  // M, exit slope
	HalfWidth    float64    `yaml:"half_width"`
	Substeps     int        `yaml:"substeps"`
	MaxTicks     int        `yaml:"max_ticks"` // Watchdog: release if L is never reached
	MeshSegments int        `yaml:"mesh_segments"`
}

// GateConfig describes the trigger plane in front of the ramp
type GateConfig struct {
	Center mgl64.Vec3 `yaml:"center"`
	Yaw    float64    `yaml:"yaw"` // Radians, 0 = normal points along +X
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

// CourseConfig describes the static island geometry around the ramp
type CourseConfig struct {
	Name         string  `yaml:"name"`          // Tiled map under assets/courses, without extension
	IslandLength float64 `yaml:"island_length"` // Cliff top extends this far behind the ramp origin
	HalfDepth    float64 `yaml:"half_depth"`    // Island half extent along Z
}

// FlightConfig contains the fixed-wing model and attitude controller values
type FlightConfig struct {
	// Attitude controller (radians)
	PitchRate         float64 `yaml:"pitch_rate"` // Target change per tick while held
	RollRate          float64 `yaml:"roll_rate"`
	MaxPitch          float64 `yaml:"max_pitch"`
	MaxRoll           float64 `yaml:"max_roll"`
	AttitudeSmoothing float64 `yaml:"attitude_smoothing"` // Exponential rate (1/s)
	MinHeadingSpeed   float64 `yaml:"min_heading_speed"`

	// Aerodynamics
	MaxAngleOfAttack   float64 `yaml:"max_angle_of_attack"`
	StallAngle         float64 `yaml:"stall_angle"`
	PostStallDecay     float64 `yaml:"post_stall_decay"`
	MaxLiftCoefficient float64 `yaml:"max_lift_coefficient"`
	AirDensity         float64 `yaml:"air_density"`
	WingArea           float64 `yaml:"wing_area"`
	MinSpeed           float64 `yaml:"min_speed"`   // No lift below this
	StallSpeed         float64 `yaml:"stall_speed"` // Full lift above this
	ZeroLiftDrag       float64 `yaml:"zero_lift_drag"`
	InducedDrag        float64 `yaml:"induced_drag"`
}

// CameraModeConfig contains per-mode follow values
type CameraModeConfig struct {
	Distance       float64 `yaml:"distance"`
	Height         float64 `yaml:"height"`
	LookHeight     float64 `yaml:"look_height"`
	FOVMin         float64 `yaml:"fov_min"`
	FOVMax         float64 `yaml:"fov_max"`
	SpeedForMaxFOV float64 `yaml:"speed_for_max_fov"`
	Smoothing      float64 `yaml:"smoothing"` // Exponential rate (1/s)
}

// FreeRoamConfig contains orbit camera values
type FreeRoamConfig struct {
	OrbitSpeed float64 `yaml:"orbit_speed"` // Radians per second
	ZoomSpeed  float64 `yaml:"zoom_speed"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	MinPitch   float64 `yaml:"min_pitch"`
	MaxPitch   float64 `yaml:"max_pitch"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Default CameraModeConfig `yaml:"default"`
	Ramp    CameraModeConfig `yaml:"ramp"`
	Flight  CameraModeConfig `yaml:"flight"`
	Ocean   CameraModeConfig `yaml:"ocean"`

	RampThresholdX    float64 `yaml:"ramp_threshold_x"` // Default -> Ramp once player X exceeds this
	RampEaseDuration  float64 `yaml:"ramp_ease_duration"`
	RampStartHeight   float64 `yaml:"ramp_start_height"`
	RampStartDistance float64 `yaml:"ramp_start_distance"`

	HeadingSmoothing float64 `yaml:"heading_smoothing"`
	MinFollowSpeed   float64 `yaml:"min_follow_speed"` // Below this the previous heading is kept
	DefaultHeading   float64 `yaml:"default_heading"`

	FreeRoam FreeRoamConfig `yaml:"free_roam"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD    bool
	TuningPath string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Ocean OceanConfig
var Ramp RampConfig
var Gate GateConfig
var Course CourseConfig
var Flight FlightConfig
var Camera CameraConfig
var Debug DebugConfig
