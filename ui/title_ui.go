package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleRecords is the saved run summary shown under the title.
type TitleRecords struct {
	BestRampExitSpeed    float64
	LongestFlightSeconds float64
	RampRuns             int
}

type TitleUI struct {
	UI *ebitenui.UI

	OnStart        func()
	OnResetRecords func()

	recordsLabel *widget.Label
	courseLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(onStart, onResetRecords func()) *TitleUI {
	ui := &TitleUI{
		OnStart:        onStart,
		OnResetRecords: onResetRecords,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 35, 60, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("BALLGLIDE", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.courseLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 210, 240, 255},
		}),
	)
	contentContainer.AddChild(ui.courseLabel)

	ui.recordsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	contentContainer.AddChild(ui.recordsLabel)

	contentContainer.AddChild(ui.buildButtons())

	hint := widget.NewLabel(
		widget.LabelOpts.Text("WASD roll  F fly  C free camera  arrows orbit", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Start", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		}),
	)
	container.AddChild(startButton)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Reset records", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnResetRecords != nil {
				ui.OnResetRecords()
			}
		}),
	)
	container.AddChild(resetButton)

	return container
}

func (ui *TitleUI) SetCourse(name string) {
	if ui.courseLabel != nil {
		ui.courseLabel.Label = "Course: " + name
	}
}

func (ui *TitleUI) SetRecords(r TitleRecords) {
	if ui.recordsLabel == nil {
		return
	}
	ui.recordsLabel.Label = r.String()
}

// String is the records line of the title screen. Any nonzero record counts
// as history.
func (r TitleRecords) String() string {
	if r.RampRuns == 0 && r.BestRampExitSpeed == 0 && r.LongestFlightSeconds == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Best exit %.1f m/s   Longest flight %.1f s   Runs %d",
		r.BestRampExitSpeed, r.LongestFlightSeconds, r.RampRuns)
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
