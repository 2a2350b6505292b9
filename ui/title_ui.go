package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/shuriken/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()
	OnQuit func()

	bestLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen with a Play and a Quit button.
func NewTitleUI(bestKills int, onPlay, onQuit func()) *TitleUI {
	tui := &TitleUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}

	tui.loadFonts()
	tui.buildUI(bestKills)

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	tui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	tui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (tui *TitleUI) buildUI(bestKills int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(
			fmt.Sprintf("Defeat %d monsters. Tap or click to throw.", cfg.Director.WinThreshold+1),
			&tui.smallFace, &widget.LabelColor{Idle: color.RGBA{200, 200, 200, 255}},
		),
	))

	tui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(bestText(bestKills), &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(tui.bestLabel)

	contentContainer.AddChild(tui.newButton("Play", func() {
		if tui.OnPlay != nil {
			tui.OnPlay()
		}
	}))
	contentContainer.AddChild(tui.newButton("Quit", func() {
		if tui.OnQuit != nil {
			tui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetBest refreshes the best score label.
func (tui *TitleUI) SetBest(bestKills int) {
	tui.bestLabel.Label = bestText(bestKills)
}

func bestText(bestKills int) string {
	if bestKills == 0 {
		return "No best score yet"
	}
	return fmt.Sprintf("Best: %d kills", bestKills)
}

func (tui *TitleUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 28),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
