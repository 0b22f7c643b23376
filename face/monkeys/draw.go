package monkeys

import (
	"image/color"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/canvas"
)

type palette struct {
	sky, skyLow     color.Color
	canopyDark      color.Color
	canopyLight     color.Color
	vine            color.Color
	branch          color.Color
	branchDark      color.Color
	ground          color.Color
	groundDark      color.Color
	fur, belly      color.Color
	dark            color.Color
	apple, bite     color.Color
	star            color.Color
	text            color.Color
	battLow, battOK color.Color
	battMid         color.Color
}

var colorPalette = palette{
	sky:         color.RGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff},
	skyLow:      color.RGBA{R: 0xaa, G: 0xff, B: 0xff, A: 0xff},
	canopyDark:  color.RGBA{R: 0x00, G: 0x55, B: 0x00, A: 0xff},
	canopyLight: color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	vine:        color.RGBA{R: 0x55, G: 0x55, B: 0x00, A: 0xff},
	branch:      color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	branchDark:  color.RGBA{R: 0x55, G: 0x00, B: 0x00, A: 0xff},
	ground:      color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	groundDark:  color.RGBA{R: 0x00, G: 0x55, B: 0x00, A: 0xff},
	fur:         color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	belly:       color.RGBA{R: 0xff, G: 0xaa, B: 0xaa, A: 0xff},
	dark:        color.Black,
	apple:       color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	bite:        color.RGBA{R: 0xff, G: 0xff, B: 0xaa, A: 0xff},
	star:        color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	text:        color.White,
	battLow:     color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	battMid:     color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	battOK:      color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
}

var bwPalette = palette{
	sky:         color.White,
	skyLow:      color.Gray{Y: 0xc0},
	canopyDark:  color.Black,
	canopyLight: color.Gray{Y: 0xc0},
	vine:        color.Gray{Y: 0x55},
	branch:      color.Gray{Y: 0x55},
	branchDark:  color.Black,
	ground:      color.Gray{Y: 0x55},
	groundDark:  color.Black,
	fur:         color.White,
	belly:       color.Gray{Y: 0xc0},
	dark:        color.Black,
	apple:       color.Gray{Y: 0x55},
	bite:        color.White,
	star:        color.Black,
	text:        color.Black,
	battLow:     color.Black,
	battMid:     color.Black,
	battOK:      color.Black,
}

func (f *Monkeys) pal() palette {
	if f.ctx.Profile.Color {
		return colorPalette
	}
	return bwPalette
}

func (f *Monkeys) Draw(cv *canvas.Canvas, now time.Time) {
	pal := f.pal()
	w := f.ctx.Profile.Width
	h := f.ctx.Profile.Height

	cv.FillRect(0, 0, w, f.canopyTop+20, pal.sky)
	cv.FillRect(0, f.canopyTop+20, w, f.groundY-f.canopyTop-20, pal.skyLow)

	f.drawCanopy(cv, pal)
	f.drawBranches(cv, pal)
	f.drawVines(cv, pal)

	for i := range f.monkeys {
		f.drawMonkey(cv, pal, &f.monkeys[i])
	}

	f.drawGround(cv, pal, h)
	f.drawBattery(cv, pal)

	timeY := 2
	dateY := 38
	if f.ctx.Profile.Round {
		timeY, dateY = 8, 44
	}
	cv.Text(now.Format("15:04"), w/2, timeY, canvas.TimeFace, pal.text, canvas.AlignCenter, 2)
	cv.Text(now.Format("Mon Jan 02"), w/2, dateY, canvas.SmallFace, pal.text, canvas.AlignCenter, 1)
}

func (f *Monkeys) drawCanopy(cv *canvas.Canvas, pal palette) {
	w := f.ctx.Profile.Width
	cv.FillRect(0, f.canopyTop-10, w, 35, pal.canopyDark)

	// Fewer leaf clusters under low power.
	step1, step2 := 30, 40
	if f.lowPower() {
		step1 += 12
		step2 += 12
	}
	for x := 0; x < w; x += step1 {
		cv.FillCircle(x, f.canopyTop+5, 18, pal.canopyDark)
	}
	for x := 15; x < w; x += step2 {
		cv.FillCircle(x, f.canopyTop-3, 10, pal.canopyLight)
	}
}

func (f *Monkeys) drawBranches(cv *canvas.Canvas, pal palette) {
	for i := range f.branches {
		b := &f.branches[i]
		cv.Line(b.Start.X, b.Start.Y+2, b.End.X, b.End.Y+2, b.Thickness+2, pal.branchDark)
		cv.Line(b.Start.X, b.Start.Y, b.End.X, b.End.Y, b.Thickness, pal.branch)
	}
}

func (f *Monkeys) drawVines(cv *canvas.Canvas, pal palette) {
	segments := 4
	if f.lowPower() {
		segments = 3
	}
	for v := range f.vines {
		vine := &f.vines[v]
		segLen := vine.Length / segments
		cur := vine.Top
		for j := 0; j < segments; j++ {
			sway := anim.Sin(vine.Phase+j*6, vine.Amount)
			next := anim.Point{X: cur.X + sway, Y: cur.Y + segLen}
			cv.Line(cur.X, cur.Y, next.X, next.Y, 2, pal.vine)
			cur = next
		}
		cv.FillCircle(vine.Top.X, vine.Top.Y+vine.Length/2, 3, pal.canopyLight)
	}
}

func (f *Monkeys) drawGround(cv *canvas.Canvas, pal palette, h int) {
	w := f.ctx.Profile.Width
	cv.FillRect(0, f.groundY, w, h-f.groundY, pal.ground)
	cv.FillRect(0, f.groundY, w, 4, pal.groundDark)

	tufts := 14
	if f.lowPower() {
		tufts = 10
	}
	for i := 0; i < tufts; i++ {
		x := 5 + i*w/tufts
		th := 4 + i%3
		cv.Line(x, f.groundY, x-2, f.groundY-th, 1, pal.canopyLight)
		cv.Line(x, f.groundY, x+2, f.groundY-th, 1, pal.canopyLight)
		cv.Line(x, f.groundY, x, f.groundY-th-1, 1, pal.canopyLight)
	}
}

func (f *Monkeys) drawBattery(cv *canvas.Canvas, pal palette) {
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

func (f *Monkeys) drawTail(cv *canvas.Canvas, pal palette, m *Monkey) {
	cur := anim.Point{X: m.Pos.X - m.Dir*3, Y: m.Pos.Y + 5}
	for i := 0; i < 3; i++ {
		curl := anim.Sin(m.TailPhase+i*8, 3)
		next := anim.Point{X: cur.X - m.Dir*3 + curl, Y: cur.Y + 3}
		cv.Line(cur.X, cur.Y, next.X, next.Y, 2, pal.fur)
		cur = next
	}
	cv.FillCircle(cur.X, cur.Y, 1, pal.fur)
}

func (f *Monkeys) drawMonkey(cv *canvas.Canvas, pal palette, m *Monkey) {
	x, y := m.Pos.X, m.Pos.Y
	dir := m.Dir
	if dir == 0 {
		dir = 1
	}

	hangingFromVine := m.Trick == TrickVineSwing || m.Trick == TrickClimbVine || m.Trick == TrickHangLook
	upsideDown := m.Trick == TrickTailHang

	inAir := false
	if m.Trick == TrickVineSwing {
		p := m.Clock.Progress()
		if p >= 35 && p < 65 {
			inAir = true
			hangingFromVine = false
		}
	}

	if !upsideDown {
		f.drawTail(cv, pal, m)
	}

	switch {
	case upsideDown:
		branch := &f.branches[anim.Clamp(m.BranchIndex, 0, numBranches-1)]
		gripY := (branch.Start.Y + branch.End.Y) / 2

		cv.FillRect(x-5, y-6, 10, 12, pal.fur)
		cv.FillRect(x-3, y-4, 6, 8, pal.belly)

		// Tail up to the branch.
		cv.Line(x-3, y-6, x-3, gripY, 3, pal.fur)
		cv.Line(x+3, y-6, x+3, gripY, 3, pal.fur)
		cv.FillCircle(x-3, gripY, 2, pal.fur)
		cv.FillCircle(x+3, gripY, 2, pal.fur)

		dangle := anim.Sin(m.LimbPhase, 3)
		cv.Line(x-5, y+4, x-7+dangle, y+12, 3, pal.fur)
		cv.Line(x+5, y+4, x+7-dangle, y+12, 3, pal.fur)
		cv.FillCircle(x-7+dangle, y+12, 2, pal.fur)
		cv.FillCircle(x+7-dangle, y+12, 2, pal.fur)

	case hangingFromVine:
		cv.Line(x, y-16, x, f.canopyTop+10, 3, pal.vine)

		cv.FillRect(x-5, y-5, 10, 12, pal.fur)
		cv.FillRect(x-3, y-2, 6, 8, pal.belly)

		cv.Line(x-4, y-5, x, y-16, 3, pal.fur)
		cv.Line(x+4, y-5, x, y-16, 3, pal.fur)
		cv.FillCircle(x, y-16, 3, pal.fur)

		legOffset := anim.Sin(m.Rotation, 6)
		cv.Line(x-3, y+7, x-5-legOffset, y+15, 3, pal.fur)
		cv.Line(x+3, y+7, x+5-legOffset, y+15, 3, pal.fur)
		cv.FillCircle(x-5-legOffset, y+15, 2, pal.fur)
		cv.FillCircle(x+5-legOffset, y+15, 2, pal.fur)

	case m.Trick == TrickSitMunch:
		cv.FillRect(x-5, y-3, 10, 10, pal.fur)
		cv.FillRect(x-3, y-1, 6, 7, pal.belly)

		cv.Line(x-4, y+7, x-6, y+5, 3, pal.fur)
		cv.Line(x+4, y+7, x+6, y+5, 3, pal.fur)
		cv.FillCircle(x-6, y+5, 2, pal.fur)
		cv.FillCircle(x+6, y+5, 2, pal.fur)

		munch := anim.Sin(m.LimbPhase, 4)
		appleX := x + dir*6
		appleY := y - 8 + munch

		cv.Line(x-dir*5, y, x-dir*8, y+5, 3, pal.fur)
		cv.FillCircle(x-dir*8, y+5, 2, pal.fur)
		cv.Line(x+dir*5, y-2, appleX, appleY+3, 3, pal.fur)
		cv.FillCircle(appleX, appleY+3, 2, pal.fur)

		// The apple shrinks bite by bite.
		radius := anim.Clamp(5-m.Bites, 0, 5)
		if radius > 1 {
			cv.FillCircle(appleX, appleY, radius, pal.apple)
			if m.Bites > 0 {
				cv.FillCircle(appleX-dir*2, appleY, m.Bites, pal.bite)
			}
			cv.Line(appleX, appleY-radius, appleX+1, appleY-radius-2, 1, pal.branch)
		}

	case m.Trick == TrickFight:
		tussling := false
		if p := m.Clock.Progress(); p >= 30 && p < 80 {
			tussling = true
		}

		cv.FillRect(x-5, y-5, 10, 12, pal.fur)
		cv.FillRect(x-3, y-2, 6, 8, pal.belly)

		if tussling {
			swing := anim.Sin(m.LimbPhase*3, 10)
			cv.Line(x-5, y-2, x-12+swing, y-8, 3, pal.fur)
			cv.Line(x+5, y-2, x+12-swing, y-8, 3, pal.fur)
			cv.FillCircle(x-12+swing, y-8, 2, pal.fur)
			cv.FillCircle(x+12-swing, y-8, 2, pal.fur)
		} else {
			cv.Line(x-5, y-2, x-10, y-6, 3, pal.fur)
			cv.Line(x+5, y-2, x+10, y-6, 3, pal.fur)
			cv.FillCircle(x-10, y-6, 2, pal.fur)
			cv.FillCircle(x+10, y-6, 2, pal.fur)
		}

		cv.Line(x-3, y+7, x-7, y+14, 3, pal.fur)
		cv.Line(x+3, y+7, x+7, y+14, 3, pal.fur)
		cv.FillCircle(x-7, y+14, 2, pal.fur)
		cv.FillCircle(x+7, y+14, 2, pal.fur)

	case m.Trick == TrickFalling:
		rotX := anim.Sin(m.Rotation, 3)
		rotY := anim.Cos(m.Rotation, 2)

		cv.FillRect(x-5+rotX, y-5+rotY, 10, 12, pal.fur)
		cv.FillRect(x-3+rotX, y-2+rotY, 6, 8, pal.belly)

		flail := anim.Sin(m.LimbPhase, 12)
		flail2 := anim.Cos(m.LimbPhase, 10)

		cv.Line(x-5, y-2, x-10+flail, y-8+flail2, 3, pal.fur)
		cv.Line(x+5, y-2, x+10-flail, y-6-flail2, 3, pal.fur)
		cv.FillCircle(x-10+flail, y-8+flail2, 2, pal.fur)
		cv.FillCircle(x+10-flail, y-6-flail2, 2, pal.fur)

		cv.Line(x-3, y+7, x-8-flail2, y+14+flail, 3, pal.fur)
		cv.Line(x+3, y+7, x+8+flail2, y+12-flail, 3, pal.fur)
		cv.FillCircle(x-8-flail2, y+14+flail, 2, pal.fur)
		cv.FillCircle(x+8+flail2, y+12-flail, 2, pal.fur)

		// Dizzy stars while dazed.
		if m.Clock.Progress() >= 60 {
			starPhase := m.Clock.Progress() * 18
			for i := 0; i < 3; i++ {
				a := anim.WrapDeg(starPhase + i*120)
				cv.FillCircle(x+anim.Sin(a, 12), y-18+anim.Cos(a, 5), 2, pal.star)
			}
		}

	default:
		cv.FillRect(x-5, y-5, 10, 12, pal.fur)
		cv.FillRect(x-3, y-2, 6, 8, pal.belly)

		spread := 5
		if inAir {
			spread = 8
		}
		cv.Line(x-5, y, x-spread, y-2, 3, pal.fur)
		cv.Line(x+5, y, x+spread, y-2, 3, pal.fur)
		cv.FillCircle(x-spread, y-2, 2, pal.fur)
		cv.FillCircle(x+spread, y-2, 2, pal.fur)

		cv.Line(x-3, y+7, x-spread+2, y+12, 3, pal.fur)
		cv.Line(x+3, y+7, x+spread-2, y+12, 3, pal.fur)
		cv.FillCircle(x-spread+2, y+12, 2, pal.fur)
		cv.FillCircle(x+spread-2, y+12, 2, pal.fur)
	}

	// Head.
	headY := y - 10
	faceOffset := 1
	eyeOffset := -2
	mouthOffset := 3
	if upsideDown {
		headY = y + 12
		faceOffset = -1
		eyeOffset = 2
		mouthOffset = -3
	}

	cv.FillCircle(x, headY, 7, pal.fur)
	cv.FillCircle(x+dir*2, headY+faceOffset, 5, pal.belly)
	cv.FillCircle(x-6, headY, 3, pal.fur)
	cv.FillCircle(x+6, headY, 3, pal.fur)
	cv.FillCircle(x-6, headY, 1, pal.belly)
	cv.FillCircle(x+6, headY, 1, pal.belly)

	cv.FillCircle(x+dir, headY+eyeOffset, 1, pal.dark)
	cv.FillCircle(x+dir*4, headY+eyeOffset, 1, pal.dark)
	cv.Line(x+dir, headY+mouthOffset, x+dir*4, headY+mouthOffset, 1, pal.dark)

	if upsideDown {
		f.drawTail(cv, pal, m)
	}
}
