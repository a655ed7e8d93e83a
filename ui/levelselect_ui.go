package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one row of the level list.
type LevelEntry struct {
	Name    string
	Cleared bool

	Attempts  int
	Deaths    int
	BestClear float64
}

// Summary is the stats column text of the row.
func (e LevelEntry) Summary() string {
	if e.Attempts == 0 {
		return "not played"
	}
	if !e.Cleared && e.BestClear == 0 {
		return fmt.Sprintf("%d attempts   %d deaths", e.Attempts, e.Deaths)
	}
	return fmt.Sprintf("%d attempts   %d deaths   best %.2fs", e.Attempts, e.Deaths, e.BestClear)
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnPlay   func(index int)
	OnGoBack func()

	entries  []LevelEntry
	markers  []*widget.Label
	selected int

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(entries []LevelEntry, onPlay func(index int), onGoBack func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnPlay:   onPlay,
		OnGoBack: onGoBack,
		entries:  entries,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.Select(0)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 20, 37, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
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
		widget.LabelOpts.Text("LEVELS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{254, 231, 97, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, entry := range ui.entries {
		contentContainer.AddChild(ui.buildRow(i, entry))
	}

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) buildRow(index int, entry LevelEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	marker := widget.NewLabel(
		widget.LabelOpts.Text("  ", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{254, 231, 97, 255},
		}),
	)
	ui.markers = append(ui.markers, marker)
	row.AddChild(marker)

	idle := color.RGBA{60, 60, 80, 255}
	if entry.Cleared {
		idle = color.RGBA{40, 100, 40, 255}
	}
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(entry.Name, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlay != nil {
				ui.OnPlay(index)
			}
		}),
	)
	row.AddChild(button)

	summary := widget.NewLabel(
		widget.LabelOpts.Text(entry.Summary(), &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 210, 255},
		}),
	)
	row.AddChild(summary)

	return row
}

func (ui *LevelSelectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

// Select moves the keyboard selection by delta rows, wrapping around.
func (ui *LevelSelectUI) Select(delta int) {
	n := len(ui.markers)
	if n == 0 {
		return
	}
	ui.selected = ((ui.selected+delta)%n + n) % n
	for i, m := range ui.markers {
		m.Label = "  "
		if i == ui.selected {
			m.Label = "> "
		}
	}
}

// Selected returns the index of the highlighted row.
func (ui *LevelSelectUI) Selected() int {
	return ui.selected
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
