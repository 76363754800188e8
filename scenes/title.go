package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ballglide/config"
	"github.com/automoto/ballglide/physics"
	"github.com/automoto/ballglide/systems"
	"github.com/automoto/ballglide/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene shows the saved records and starts a run
type TitleScene struct {
	sceneChanger SceneChanger
	engine       physics.Engine
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewTitleScene creates the title screen; starting a run hands engine to a
// new GlideScene.
func NewTitleScene(sc SceneChanger, engine physics.Engine) *TitleScene {
	return &TitleScene{sceneChanger: sc, engine: engine}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.titleUI.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ts.shouldStart = true
	}

	if ts.shouldStart {
		ts.sceneChanger.ChangeScene(NewGlideScene(ts.engine))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 35, 60, 255})

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.titleUI = ui.NewTitleUI(
		func() { ts.shouldStart = true },
		ts.resetRecords,
	)
	ts.titleUI.SetCourse(cfg.Course.Name)
	ts.refreshRecords()
}

func (ts *TitleScene) refreshRecords() {
	saved, err := systems.LoadRecords()
	if err != nil || saved == nil {
		ts.titleUI.SetRecords(ui.TitleRecords{})
		return
	}
	ts.titleUI.SetRecords(ui.TitleRecords{
		BestRampExitSpeed:    saved.BestRampExitSpeed,
		LongestFlightSeconds: saved.LongestFlightSeconds,
		RampRuns:             saved.RampRuns,
	})
}

func (ts *TitleScene) resetRecords() {
	_ = systems.SaveRecords(&systems.SavedRecords{})
	ts.refreshRecords()
}
