package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed all:courses
var courseFS embed.FS

// Course is the static layout of a run in world metres.
type Course struct {
	Name string

	Spawn mgl64.Vec3

	IslandMinX float64
	IslandTop  float64
	FloorY     float64

	RampOrigin    mgl64.Vec3
	RampYaw       float64
	RampLength    float64
	RampShape     float64
	RampHalfWidth float64

	GateCenter mgl64.Vec3
	GateYaw    float64
	GateWidth  float64
	GateHeight float64
}

// courseObject is the part of a Tiled object the course reads.
type courseObject struct {
	X, Y, Width, Height float64
	Properties          tiled.Properties
}

// LoadCourse reads an embedded course map by name.
func LoadCourse(name string) (*Course, error) {
	return LoadCourseFS(courseFS, path.Join("courses", name+".tmx"))
}

// ListCourses returns the names of the embedded course maps.
func ListCourses() []string {
	entries, err := fs.ReadDir(courseFS, "courses")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".tmx" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".tmx")])
	}
	return names
}

// LoadCourseFS parses a course map. The map is a side elevation: one tile is
// one metre, the "origin" point sits at world X=0 on sea level, and Tiled's
// Y axis points down.
func LoadCourseFS(fsys fs.FS, tmxPath string) (*Course, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("course %s: tile width must be positive", tmxPath)
	}
	scale := float64(levelMap.TileWidth)

	objects := map[string]courseObject{}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Course" {
			continue
		}
		for _, o := range og.Objects {
			objects[o.Name] = courseObject{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Properties: o.Properties}
		}
	}
	for _, name := range []string{"origin", "spawn", "island", "seafloor", "ramp", "gate"} {
		if _, ok := objects[name]; !ok {
			return nil, fmt.Errorf("course %s: missing %q object", tmxPath, name)
		}
	}

	origin := objects["origin"]
	toWorld := func(x, y, z float64) mgl64.Vec3 {
		return mgl64.Vec3{(x - origin.X) / scale, (origin.Y - y) / scale, z}
	}

	c := &Course{Name: path.Base(tmxPath)}

	spawn := objects["spawn"]
	c.Spawn = toWorld(spawn.X, spawn.Y, spawn.Properties.GetFloat("z"))

	island := objects["island"]
	c.IslandMinX = toWorld(island.X, 0, 0).X()
	c.IslandTop = toWorld(0, island.Y, 0).Y()
	c.FloorY = toWorld(0, objects["seafloor"].Y, 0).Y()

	ramp := objects["ramp"]
	c.RampOrigin = toWorld(ramp.X, ramp.Y, ramp.Properties.GetFloat("z"))
	c.RampYaw = ramp.Properties.GetFloat("yaw")
	c.RampLength = ramp.Properties.GetFloat("length")
	c.RampShape = ramp.Properties.GetFloat("shape")
	c.RampHalfWidth = ramp.Properties.GetFloat("halfWidth")
	if c.RampLength <= 0 {
		return nil, fmt.Errorf("course %s: ramp length must be positive", tmxPath)
	}

	gate := objects["gate"]
	c.GateCenter = toWorld(gate.X+gate.Width/2, gate.Y+gate.Height/2, gate.Properties.GetFloat("z"))
	c.GateYaw = gate.Properties.GetFloat("yaw")
	c.GateWidth = gate.Properties.GetFloat("width")
	c.GateHeight = gate.Height / scale

	return c, nil
}
