package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the global sections so a YAML document only needs to
// name the values it changes.
type tuningFile struct {
	Player  *PlayerConfig  `yaml:"player"`
	Physics *PhysicsConfig `yaml:"physics"`
	Ocean   *OceanConfig   `yaml:"ocean"`
	Ramp    *RampConfig    `yaml:"ramp"`
	Gate    *GateConfig    `yaml:"gate"`
	Course  *CourseConfig  `yaml:"course"`
	Flight  *FlightConfig  `yaml:"flight"`
	Camera  *CameraConfig  `yaml:"camera"`
}

// ApplyTuning decodes YAML overrides on top of the current configuration.
func ApplyTuning(data []byte) error {
	doc := tuningFile{
		Player:  &Player,
		Physics: &Physics,
		Ocean:   &Ocean,
		Ramp:    &Ramp,
		Gate:    &Gate,
		Course:  &Course,
		Flight:  &Flight,
		Camera:  &Camera,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	return validate()
}

// LoadTuning reads a YAML overrides file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ApplyTuning(data)
}

func validate() error {
	if Ramp.Length <= 0 {
		return fmt.Errorf("ramp length must be positive, got %v", Ramp.Length)
	}
	if Ramp.Substeps < 1 {
		return fmt.Errorf("ramp substeps must be at least 1, got %d", Ramp.Substeps)
	}
	if Ocean.Band < 0 {
		return fmt.Errorf("ocean band must not be negative, got %v", Ocean.Band)
	}
	if Course.IslandLength <= 0 {
		return fmt.Errorf("course island length must be positive, got %v", Course.IslandLength)
	}
	if Player.Radius <= 0 {
		return fmt.Errorf("player radius must be positive, got %v", Player.Radius)
	}
	return nil
}
