package castle

import (
	"image/color"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/canvas"
)

type palette struct {
	sky             color.Color
	star            color.Color
	ground          color.Color
	stone           color.Color
	stoneEdge       color.Color
	gate            color.Color
	armor           color.Color
	helmet          color.Color
	legs            color.Color
	shield          color.Color
	sword           color.Color
	dark            color.Color
	text            color.Color
	battLow, battOK color.Color
	battMid         color.Color
}

var colorPalette = palette{
	sky:       color.RGBA{R: 0x00, G: 0x15, B: 0x55, A: 0xff},
	star:      color.White,
	ground:    color.RGBA{R: 0x00, G: 0x55, B: 0x00, A: 0xff},
	stone:     color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	stoneEdge: color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	gate:      color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	armor:     color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	helmet:    color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	legs:      color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	shield:    color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	sword:     color.White,
	dark:      color.Black,
	text:      color.White,
	battLow:   color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	battMid:   color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	battOK:    color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
}

var bwPalette = palette{
	sky:       color.Black,
	star:      color.White,
	ground:    color.Gray{Y: 0x55},
	stone:     color.White,
	stoneEdge: color.Black,
	gate:      color.Black,
	armor:     color.White,
	helmet:    color.White,
	legs:      color.Gray{Y: 0x55},
	shield:    color.Black,
	sword:     color.White,
	dark:      color.Black,
	text:      color.White,
	battLow:   color.White,
	battMid:   color.White,
	battOK:    color.White,
}

func (f *Castle) pal() palette {
	if f.ctx.Profile.Color {
		return colorPalette
	}
	return bwPalette
}

func (f *Castle) Draw(cv *canvas.Canvas, now time.Time) {
	pal := f.pal()
	w := f.ctx.Profile.Width
	h := f.ctx.Profile.Height

	cv.FillRect(0, 0, w, h, pal.sky)
	f.drawStars(cv, pal)

	cv.FillRect(0, f.groundTop, w, h-f.groundTop, pal.ground)

	f.drawCastle(cv, pal)

	for i := range f.knights {
		f.drawKnight(cv, pal, &f.knights[i])
	}

	f.drawBattery(cv, pal)

	cv.Text(now.Format("15:04"), w/2, 5, canvas.TimeFace, pal.text, canvas.AlignCenter, 2)
	cv.Text(now.Format("Mon Jan 02"), w/2, 38, canvas.SmallFace, pal.text, canvas.AlignCenter, 1)
}

// drawStars fades each star with its twinkle phase. Dim stars collapse to
// a single pixel; the brightest get the full cross.
func (f *Castle) drawStars(cv *canvas.Canvas, pal palette) {
	count := numStars
	if f.lowPower() {
		count = numStars / 2
	}
	for i := 0; i < count; i++ {
		s := &f.stars[i]
		glow := anim.Sin(s.Phase, 2)
		cv.FillRect(s.X, s.Y, 1, 1, pal.star)
		if glow >= 1 {
			cv.FillRect(s.X-1, s.Y, 3, 1, pal.star)
			cv.FillRect(s.X, s.Y-1, 1, 3, pal.star)
		}
	}
}

func (f *Castle) drawCastle(cv *canvas.Canvas, pal palette) {
	centerX := f.ctx.Profile.Width / 2

	f.drawTower(cv, pal, centerX-30, towerHeight)
	f.drawTower(cv, pal, centerX+30, towerHeight)
	f.drawKeep(cv, pal)
}

func (f *Castle) drawTower(cv *canvas.Canvas, pal palette, centerX, height int) {
	baseY := f.groundTop
	half := towerWidth / 2

	cv.FillRect(centerX-half, baseY-height, towerWidth, height, pal.stone)
	cv.StrokeRect(centerX-half, baseY-height, towerWidth, height, 1, pal.stoneEdge)

	battlementY := baseY - height - battlementH
	for i := 0; i < 3; i++ {
		cv.FillRect(centerX-half+2+i*6, battlementY, 4, battlementH, pal.stone)
	}

	// Arrow slit window.
	cv.FillRect(centerX-3, baseY-height+15, 6, 10, pal.dark)
}

func (f *Castle) drawKeep(cv *canvas.Canvas, pal palette) {
	centerX := f.ctx.Profile.Width / 2
	baseY := f.groundTop
	keepWidth := 44
	keepX := centerX - keepWidth/2

	cv.FillRect(keepX, baseY-keepHeight, keepWidth, keepHeight, pal.stone)
	cv.StrokeRect(keepX, baseY-keepHeight, keepWidth, keepHeight, 1, pal.stoneEdge)

	battlementY := baseY - keepHeight - battlementH
	for i := 0; i < 6; i++ {
		cv.FillRect(keepX+3+i*7, battlementY, 4, battlementH, pal.stone)
	}

	// Arched gate with bars.
	cv.FillRect(centerX-8, baseY-25, 16, 25, pal.gate)
	cv.FillCircle(centerX, baseY-25, 8, pal.gate)
	for i := 0; i < 3; i++ {
		gx := centerX - 5 + i*5
		cv.Line(gx, baseY-22, gx, baseY, 1, pal.dark)
	}
}

func (f *Castle) drawKnight(cv *canvas.Canvas, pal palette, k *Knight) {
	x, y := k.X, f.knightY
	dir := k.Dir

	legOffset := 2
	if k.LegPhase >= 4 {
		legOffset = -2
	}

	// Body, helmet, visor.
	cv.FillRect(x+2, y+6, 8, 8, pal.armor)
	cv.FillCircle(x+6, y+3, 4, pal.helmet)
	cv.Line(x+4, y+3, x+8, y+3, 1, pal.dark)

	// Legs scissor with the walk cycle.
	cv.FillRect(x+2+legOffset, y+14, 3, 4, pal.legs)
	cv.FillRect(x+7-legOffset, y+14, 3, 4, pal.legs)

	// Shield on the leading side, sword trailing up.
	if dir == 1 {
		cv.FillRect(x, y+7, 3, 6, pal.shield)
		cv.Line(x+10, y+5, x+15, y+2, 1, pal.sword)
	} else {
		cv.FillRect(x+9, y+7, 3, 6, pal.shield)
		cv.Line(x+2, y+5, x-3, y+2, 1, pal.sword)
	}
}

func (f *Castle) drawBattery(cv *canvas.Canvas, pal palette) {
	w := f.ctx.Profile.Width
	level := f.ctx.Battery.Level
	x, y, bw, bh := w-28, 4, 22, 10

	cv.StrokeRect(x, y, bw, bh, 1, pal.text)
	cv.FillRect(x+bw, y+3, 2, 4, pal.text)

	fill := level * (bw - 4) / 100
	if fill < 2 {
		fill = 2
	}
	clr := pal.battOK
	switch {
	case level <= 20:
		clr = pal.battLow
	case level <= 50:
		clr = pal.battMid
	}
	cv.FillRect(x+2, y+2, fill, bh-4, clr)
}
