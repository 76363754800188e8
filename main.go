package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ballglide/assets"
	"github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/fonts"
	"github.com/automoto/ballglide/scenes"
	"github.com/automoto/ballglide/systems"
	"github.com/automoto/ballglide/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
	}
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file with tuning overrides")
	hud := flag.Bool("hud", true, "show the debug HUD")
	course := flag.String("course", config.Course.Name, "course map to load from assets/courses")
	skipTitle := flag.Bool("skip-title", false, "start the run without the title screen")
	flag.Parse()

	// Tuning overrides win over the course layout
	layout, err := assets.LoadCourse(*course)
	if err != nil {
		log.Fatalf("Failed to load course %s (available: %v): %v", *course, assets.ListCourses(), err)
	}
	config.Course.Name = *course
	factory.ApplyCourse(layout)

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning %s: %v", *tuning, err)
		}
		config.Debug.TuningPath = *tuning
	}
	config.Debug.ShowHUD = *hud

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}

	world := factory.NewPhysicsWorld()
	if err := world.Init(); err != nil {
		log.Fatalf("Failed to initialize physics: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("ballglide")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; the scene loads saved records on its first tick
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame()
	if *skipTitle {
		game.ChangeScene(scenes.NewGlideScene(world))
	} else {
		game.ChangeScene(scenes.NewTitleScene(game, world))
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
