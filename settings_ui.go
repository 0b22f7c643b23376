package main

import (
	"image/color"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// settingsUI is the Tab overlay: two persisted toggles and a close button,
// built from colored nine-slices so no theme fonts need to be loaded.
type settingsUI struct {
	ui *ebitenui.UI

	lowPowerBtn *widget.Button
	vibesBtn    *widget.Button
}

func onOff(label string, v bool) string {
	if v {
		return label + ": on"
	}
	return label + ": off"
}

func newSettingsUI(g *Game) *settingsUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	s := &settingsUI{}

	title := widget.NewText(
		widget.TextOpts.Text("Settings", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	s.lowPowerBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(onOff("Low power", g.lowPower), &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.lowPower = !g.lowPower
			if err := g.store.PutBool(settingLowPower, g.lowPower); err != nil {
				log.Printf("save low power setting: %v", err)
			}
			if text := s.lowPowerBtn.Text(); text != nil {
				text.Label = onOff("Low power", g.lowPower)
			}
		}),
	)

	s.vibesBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(onOff("Vibes", g.haptics.enabled), &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.haptics.enabled = !g.haptics.enabled
			if err := g.store.PutBool(settingVibes, g.haptics.enabled); err != nil {
				log.Printf("save vibes setting: %v", err)
			}
			if text := s.vibesBtn.Text(); text != nil {
				text.Label = onOff("Vibes", g.haptics.enabled)
			}
		}),
	)

	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.settingsOpen = false
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.profile.Width*g.zoom/2, g.profile.Height*g.zoom/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(s.lowPowerBtn)
	panel.AddChild(s.vibesBtn)
	panel.AddChild(closeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
	return s
}
