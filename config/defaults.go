package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func init() {
	Reset()
}

// Reset restores every configuration section to its built-in values.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:              9.81,
		FixedStep:            1.0 / 60.0,
		MaxFrameTime:         0.05, // never integrate more than 3 frames worth at once
		ContactSkin:          0.02,
		RestitutionThreshold: 1.0, // no bounce below 1 m/s approach speed
		MaxCCDSubsteps:       8,

		SpaceOriginX: -200,
		SpaceOriginZ: -300,
		SpaceWidth:   600,
		SpaceDepth:   600,
		CellSize:     8,
	}

	Player = PlayerConfig{
		Radius:         0.5,
		Density:        1.0,
		Friction:       0.8,
		Restitution:    0.2,
		LinearDamping:  0.1,
		AngularDamping: 0.4,
		CCD:            true,
		Spawn:          mgl64.Vec3{-30, 12.6, 0},

		TorqueStrength: 1.5,
		AirControl:     0.8,
	}

	Ocean = OceanConfig{
		SeaLevel:         0,
		Band:             0.6,
		WaterDamping:     0.96,
		BuoyancyStrength: 15.0, // upward acceleration per metre of depth
		MaxBuoyancyDepth: 2.0,
		FloorY:           -20,
	}

	// The island cliff top sits at y=12; the curve dips ~8.7m and launches at slope M.
	Ramp = RampConfig{
		Origin:       mgl64.Vec3{0, 12, 0},
		Yaw:          0,
		Length:       30,
		Shape:        1.3,
		HalfWidth:    4,
		Substeps:     4,
		MaxTicks:     600,
		MeshSegments: 48,
	}

	Gate = GateConfig{
		Center: mgl64.Vec3{-0.25, 13, 0},
		Yaw:    0,
		Width:  8,
		Height: 6,
	}

	Course = CourseConfig{
		Name:         "island",
		IslandLength: 60,
		HalfDepth:    20,
	}

	Flight = FlightConfig{
		PitchRate:         0.02,
		RollRate:          0.03,
		MaxPitch:          0.6,
		MaxRoll:           0.9,
		AttitudeSmoothing: 4,
		MinHeadingSpeed:   0.5,

		MaxAngleOfAttack:   mgl64.DegToRad(15),
		StallAngle:         mgl64.DegToRad(12),
		PostStallDecay:     8,
		MaxLiftCoefficient: 1.2,
		AirDensity:         1.225,
		WingArea:           0.08,
		MinSpeed:           4,
		StallSpeed:         9,
		ZeroLiftDrag:       0.03,
		InducedDrag:        0.05,
	}

	Camera = CameraConfig{
		Default: CameraModeConfig{Distance: 8, Height: 3, LookHeight: 0.5, FOVMin: 60, FOVMax: 75, SpeedForMaxFOV: 20, Smoothing: 5},
		Ramp:    CameraModeConfig{Distance: 14, Height: 6, LookHeight: 0, FOVMin: 65, FOVMax: 90, SpeedForMaxFOV: 30, Smoothing: 6},
		Flight:  CameraModeConfig{Distance: 12, Height: 2.5, LookHeight: 0.5, FOVMin: 70, FOVMax: 95, SpeedForMaxFOV: 35, Smoothing: 4},
		Ocean:   CameraModeConfig{Distance: 6, Height: 5, LookHeight: 0, FOVMin: 55, FOVMax: 55, SpeedForMaxFOV: 1, Smoothing: 3},

		RampThresholdX:    0,
		RampEaseDuration:  1.5,
		RampStartHeight:   3,
		RampStartDistance: 8,

		HeadingSmoothing: 6,
		MinFollowSpeed:   0.5,
		DefaultHeading:   0,

		FreeRoam: FreeRoamConfig{
			OrbitSpeed: 1.5,
			ZoomSpeed:  6,
			MinRadius:  3,
			MaxRadius:  40,
			MinPitch:   -0.2,
			MaxPitch:   math.Pi / 2.4,
		},
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}
}
