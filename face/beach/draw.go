package beach

import (
	"image/color"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/canvas"
)

type palette struct {
	sky, skyLow     color.Color
	sunGlow         color.Color
	sun, sunRays    color.Color
	oceanTop        color.Color
	oceanMid        color.Color
	oceanDeep       color.Color
	waveFront       color.Color
	waveMid         color.Color
	waveBack        color.Color
	sand, sandDark  color.Color
	gull            color.Color
	text            color.Color
	battLow, battOK color.Color
	battMid         color.Color
}

var colorPalette = palette{
	sky:       color.RGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff},
	skyLow:    color.RGBA{R: 0xaa, G: 0xff, B: 0xff, A: 0xff},
	sunGlow:   color.RGBA{R: 0xff, G: 0xaa, B: 0x55, A: 0xff},
	sun:       color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	sunRays:   color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	oceanTop:  color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	oceanMid:  color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	oceanDeep: color.RGBA{R: 0x00, G: 0x55, B: 0xaa, A: 0xff},
	waveFront: color.RGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff},
	waveMid:   color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	waveBack:  color.RGBA{R: 0x00, G: 0x55, B: 0xaa, A: 0xff},
	sand:      color.RGBA{R: 0xd2, G: 0xb4, B: 0x8c, A: 0xff},
	sandDark:  color.RGBA{R: 0xb4, G: 0x96, B: 0x6e, A: 0xff},
	gull:      color.White,
	text:      color.White,
	battLow:   color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	battMid:   color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	battOK:    color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
}

var bwPalette = palette{
	sky:       color.White,
	skyLow:    color.White,
	sunGlow:   color.White,
	sun:       color.White,
	sunRays:   color.Gray{Y: 0x55},
	oceanTop:  color.Black,
	oceanMid:  color.Black,
	oceanDeep: color.Black,
	waveFront: color.White,
	waveMid:   color.Gray{Y: 0xc0},
	waveBack:  color.Gray{Y: 0x55},
	sand:      color.Gray{Y: 0xc0},
	sandDark:  color.Gray{Y: 0x55},
	gull:      color.Black,
	text:      color.Black,
	battLow:   color.Black,
	battMid:   color.Black,
	battOK:    color.Black,
}

func (f *Beach) pal() palette {
	if f.ctx.Profile.Color {
		return colorPalette
	}
	return bwPalette
}

func (f *Beach) Draw(cv *canvas.Canvas, now time.Time) {
	pal := f.pal()
	w := f.ctx.Profile.Width
	h := f.ctx.Profile.Height

	// Sky with a lighter band at the horizon.
	cv.FillRect(0, 0, w, f.skyEnd, pal.sky)
	cv.FillRect(0, f.skyEnd-15, w, 15, pal.skyLow)

	f.drawSun(cv, pal)
	f.drawGulls(cv, pal)

	// Ocean bands, lighter near the horizon.
	cv.FillRect(0, f.skyEnd, w, 20, pal.oceanTop)
	cv.FillRect(0, f.skyEnd+20, w, 30, pal.oceanMid)
	cv.FillRect(0, f.skyEnd+50, w, f.sandTop-f.skyEnd-50, pal.oceanDeep)

	// Back to front.
	f.drawWave(cv, &f.waves[2], pal.waveBack)
	f.drawWave(cv, &f.waves[1], pal.waveMid)
	f.drawWave(cv, &f.waves[0], pal.waveFront)

	f.drawSand(cv, pal, h)
	f.drawBattery(cv, pal)

	timeY := f.skyEnd - 4
	cv.Text(now.Format("15:04"), w/2, timeY, canvas.TimeFace, pal.text, canvas.AlignCenter, 2)
	cv.Text(now.Format("Mon Jan 02"), w/2, timeY-14, canvas.SmallFace, pal.text, canvas.AlignCenter, 1)
}

func (f *Beach) drawSun(cv *canvas.Canvas, pal palette) {
	if f.ctx.Profile.Color {
		cv.FillCircle(f.sunX, f.sunY, 17, pal.sunGlow)
	}
	cv.FillCircle(f.sunX, f.sunY, 14, pal.sun)

	rays := 8
	if f.lowPower() {
		rays = 4
	}
	for i := 0; i < rays; i++ {
		a := i * 360 / rays
		x1 := f.sunX + anim.Sin(a, 18)
		y1 := f.sunY - anim.Cos(a, 18)
		x2 := f.sunX + anim.Sin(a, 24)
		y2 := f.sunY - anim.Cos(a, 24)
		cv.Line(x1, y1, x2, y2, 2, pal.sunRays)
	}
}

// drawWave renders one front as connected segments of a sine sampled
// across the screen, two full cycles wide.
func (f *Beach) drawWave(cv *canvas.Canvas, wave *Wave, clr color.Color) {
	w := f.ctx.Profile.Width
	amp := wave.Amplitude + f.surgeAmp()

	step := 6
	if f.lowPower() {
		step = 12
	}

	prevX := 0
	prevY := wave.BaseY + anim.Sin(wave.Phase, amp)
	for x := step; x <= w; x += step {
		a := wave.Phase + x*720/w
		y := wave.BaseY + anim.Sin(a, amp)
		cv.Line(prevX, prevY, x, y, 2, clr)
		prevX, prevY = x, y
	}
}

func (f *Beach) drawGulls(cv *canvas.Canvas, pal palette) {
	for i := range f.gulls {
		g := &f.gulls[i]
		bob := anim.Sin(g.Flap/2, 2)
		y := g.Y + bob
		wing := 2 + anim.Sin(g.Flap, 2)
		cv.Line(g.X-5, y, g.X, y-wing, 1, pal.gull)
		cv.Line(g.X, y-wing, g.X+5, y, 1, pal.gull)
	}
}

func (f *Beach) drawSand(cv *canvas.Canvas, pal palette, h int) {
	w := f.ctx.Profile.Width
	cv.FillRect(0, f.sandTop, w, h-f.sandTop, pal.sand)

	if f.lowPower() {
		return
	}
	for i := range f.dotX {
		cv.FillCircle(f.dotX[i], f.dotY[i], 1, pal.sandDark)
	}
}

func (f *Beach) drawBattery(cv *canvas.Canvas, pal palette) {
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
	case level <= 40:
		clr = pal.battMid
	}
	cv.FillRect(x+2, y+2, fill, bh-4, clr)
}
