package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyTuning(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  string
		validate func(t *testing.T)
	}{
		{
			name: "overrides only named values",
			content: `ramp:
  length: 40
  shape: 1.5
ocean:
  band: 1.2
camera:
  ramp:
    fov_max: 100
`,
			validate: func(t *testing.T) {
				if Ramp.Length != 40 || Ramp.Shape != 1.5 {
					t.Errorf("Ramp = %v/%v, want 40/1.5", Ramp.Length, Ramp.Shape)
				}
				if Ramp.Substeps != 4 {
					t.Errorf("Ramp.Substeps = %d, want default 4", Ramp.Substeps)
				}
				if Ocean.Band != 1.2 {
					t.Errorf("Ocean.Band = %v, want 1.2", Ocean.Band)
				}
				if Camera.Ramp.FOVMax != 100 || Camera.Ramp.FOVMin != 65 {
					t.Errorf("Camera.Ramp FOV = %v..%v, want 65..100", Camera.Ramp.FOVMin, Camera.Ramp.FOVMax)
				}
			},
		},
		{
			name: "vectors",
			content: `gate:
  center: [1, 2, 3]
`,
			validate: func(t *testing.T) {
				if Gate.Center.X() != 1 || Gate.Center.Y() != 2 || Gate.Center.Z() != 3 {
					t.Errorf("Gate.Center = %v", Gate.Center)
				}
			},
		},
		{
			name:    "invalid ramp length",
			content: "ramp:\n  length: 0\n",
			wantErr: "ramp length",
		},
		{
			name:    "invalid substeps",
			content: "ramp:\n  substeps: 0\n",
			wantErr: "substeps",
		},
		{
			name:    "malformed yaml",
			content: "ramp: [",
			wantErr: "parse tuning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := ApplyTuning([]byte(tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ApplyTuning() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyTuning() error = %v", err)
			}
			tt.validate(t)
		})
	}
}

func TestLoadTuning(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("flight:\n  stall_speed: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if Flight.StallSpeed != 11 {
		t.Errorf("Flight.StallSpeed = %v, want 11", Flight.StallSpeed)
	}

	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTuning() on a missing file succeeded")
	}
}

func TestStateLabels(t *testing.T) {
	if Submerged.String() != "submerged" || CameraFreeRoam.String() != "FreeRoam" {
		t.Errorf("labels = %q, %q", Submerged, CameraFreeRoam)
	}
}
