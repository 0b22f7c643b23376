package swordfight

import (
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/canvas"
)

// Palette for the color watch. The B/W watch collapses everything to black
// and white with outlines for silhouette.
type palette struct {
	sky1, sky2, sky3 color.Color
	ground           color.Color
	leftPants        color.Color
	leftVest         color.Color
	rightPants       color.Color
	rightVest        color.Color
	leftSword        color.Color
	rightSword       color.Color
	skin             color.Color
	hair             color.Color
	belt             color.Color
	spark            color.Color
	timeText         color.Color
	dateText         color.Color
}

var colorPalette = palette{
	sky1:       color.RGBA{R: 0x00, G: 0x55, B: 0xaa, A: 0xff},
	sky2:       color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	sky3:       color.RGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff},
	ground:     color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	leftPants:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	leftVest:   color.RGBA{R: 0xff, G: 0xff, B: 0xaa, A: 0xff},
	rightPants: color.RGBA{R: 0x55, G: 0x00, B: 0x00, A: 0xff},
	rightVest:  color.RGBA{R: 0xaa, G: 0x00, B: 0x00, A: 0xff},
	leftSword:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	rightSword: color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	skin:       color.RGBA{R: 0xff, G: 0xaa, B: 0x55, A: 0xff},
	hair:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	belt:       color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	spark:      color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	timeText:   color.White,
	dateText:   color.White,
}

var bwPalette = palette{
	sky1:       color.White,
	sky2:       color.White,
	sky3:       color.White,
	ground:     color.Black,
	leftPants:  color.White,
	leftVest:   color.White,
	rightPants: color.Black,
	rightVest:  color.Black,
	leftSword:  color.White,
	rightSword: color.Black,
	skin:       color.White,
	hair:       color.Black,
	belt:       color.Black,
	spark:      color.White,
	timeText:   color.Black,
	dateText:   color.Black,
}

// Draw renders the whole scene. All animation state was settled in Tick;
// this only reads.
func (f *SwordFight) Draw(cv *canvas.Canvas, now time.Time) {
	pal := colorPalette
	outlined := false
	if !f.ctx.Profile.Color {
		pal = bwPalette
		outlined = true
	}

	f.drawBackground(cv, pal)
	f.drawFighter(cv, pal, f.right, false, outlined)
	f.drawFighter(cv, pal, f.left, true, false)
	f.drawSparks(cv, pal)

	w := f.ctx.Profile.Width
	cv.Text(now.Format("15:04"), w/2, 4, canvas.TimeFace, pal.timeText, canvas.AlignCenter, 2)
	cv.Text(fmt.Sprintf("%d%%", f.ctx.Battery.Level), w-4, 6, canvas.SmallFace, pal.timeText, canvas.AlignRight, 1)
	cv.Text(now.Format("Mon Jan 02"), w/2, f.groundY+2, canvas.SmallFace, pal.dateText, canvas.AlignCenter, 1)
}

func (f *SwordFight) drawBackground(cv *canvas.Canvas, pal palette) {
	w := f.ctx.Profile.Width
	h := f.ctx.Profile.Height
	band := 22
	cv.FillRect(0, 0, w, band, pal.sky1)
	cv.FillRect(0, band, w, band, pal.sky2)
	cv.FillRect(0, band*2, w, f.groundY-band*2, pal.sky3)
	cv.FillRect(0, f.groundY, w, h-f.groundY, pal.ground)
	cv.Line(0, f.groundY, w, f.groundY, 2, color.Black)
}

// lineOutlined draws a stroked segment with an optional thicker black
// underlay so white-on-white figures keep a silhouette on the B/W watch.
func lineOutlined(cv *canvas.Canvas, x1, y1, x2, y2, width int, clr color.Color, outline bool) {
	if outline {
		cv.Line(x1, y1, x2, y2, width+2, color.Black)
	}
	cv.Line(x1, y1, x2, y2, width, clr)
}

func (f *SwordFight) drawFighter(cv *canvas.Canvas, pal palette, fig *Fighter, isLeft, outlined bool) {
	x := fig.X + f.shakeX
	y := f.groundY + f.shakeY
	d := fig.Dir

	lean := fig.Lean * d
	stepFwd := fig.StepFwd * d
	stepBack := fig.StepBack * d
	crouch := fig.Crouch
	armRaise := fig.ArmRaise

	cx := x + lean
	cy := y + crouch

	pants := pal.rightPants
	vest := pal.rightVest
	sword := pal.rightSword
	if isLeft {
		pants = pal.leftPants
		vest = pal.leftVest
		sword = pal.leftSword
	}
	// Only the white-clad left fighter needs the outline treatment.
	outline := outlined && isLeft

	// Legs, baggy pants tapering to the ankle.
	hipY := cy - 30
	kneeY := cy - 12
	backFoot := x - stepBack
	frontFoot := x + stepFwd
	backKnee := x + (backFoot-x)/2 - 3*d
	frontKnee := x + stepFwd/2 + 5*d
	fkY := kneeY
	if fig.Pose == PoseThrust {
		fkY -= 6
	}

	lineOutlined(cv, cx-3*d, hipY, backKnee, kneeY, 11, pants, outline)
	lineOutlined(cv, backKnee, kneeY, backFoot, cy-2, 5, pants, outline)
	lineOutlined(cv, cx+3*d, hipY, frontKnee, fkY, 13, pants, outline)
	lineOutlined(cv, frontKnee, fkY, frontFoot, cy-2, 5, pants, outline)

	// Ankle wraps and pointed shoes.
	cv.Line(backFoot-3, cy-4, backFoot+3, cy-4, 1, pal.hair)
	cv.Line(frontFoot-3, cy-4, frontFoot+3, cy-4, 1, pal.hair)
	cv.FillRect(backFoot-2, cy-3, 7, 4, pal.hair)
	cv.FillRect(frontFoot-2, cy-3, 7, 4, pal.hair)

	// Torso: vest over a belted waist.
	shoulderY := cy - 52
	chestY := cy - 42
	waistY := cy - 32
	lineOutlined(cv, cx, shoulderY+2, cx, chestY, 10, vest, outline)
	lineOutlined(cv, cx, chestY, cx, waistY, 6, vest, outline)
	cv.Line(cx-5, waistY-1, cx+5, waistY-1, 3, pal.belt)
	if isLeft && f.ctx.Profile.Color {
		cv.Line(cx+4*d, waistY, cx+6*d, waistY+8, 3, pal.belt)
	}

	// Back arm, stretched for balance mid-thrust.
	backArmX := cx - 6*d
	if fig.Pose == PoseThrust {
		lineOutlined(cv, backArmX, shoulderY+5, backArmX-12*d, shoulderY+14, 4, pal.skin, outline)
		cv.FillCircle(backArmX-13*d, shoulderY+15, 3, pal.skin)
	} else {
		elbowX := backArmX - 4*d
		elbowY := shoulderY + 14
		lineOutlined(cv, backArmX, shoulderY+5, elbowX, elbowY, 4, pal.skin, outline)
		lineOutlined(cv, elbowX, elbowY, elbowX-2*d, waistY-2, 4, pal.skin, outline)
	}

	// Head with hair and headband.
	headX := cx
	headY := cy - 62
	cv.FillCircle(headX-3*d, headY-2, 6, pal.hair)
	cv.FillCircle(headX-6*d, headY+1, 4, pal.hair)
	cv.FillCircle(headX, headY, 7, pal.skin)
	cv.FillCircle(headX, headY-5, 5, pal.hair)
	if f.ctx.Profile.Color {
		band := pal.belt
		if !isLeft {
			band = pal.rightVest
		}
		cv.Line(headX-6, headY-2, headX+6, headY-2, 2, band)
		if isLeft {
			cv.Line(headX-6, headY-2, headX-10, headY+4, 2, band)
		}
	}
	cv.FillCircle(headX+2*d, headY-1, 1, pal.hair)
	lineOutlined(cv, headX, headY+6, cx, shoulderY+2, 3, pal.skin, outline)

	// Sword arm, from shoulder through elbow to hand.
	sarmX := cx + 6*d
	sarmY := shoulderY + 5 - armRaise
	sin := func(dist int) int { return anim.Sin(fig.SwordAng, dist) * d }
	cos := func(dist int) int { return anim.Cos(fig.SwordAng, dist) }

	elbowX := sarmX + sin(10)
	elbowY := sarmY - cos(10)
	lineOutlined(cv, sarmX, sarmY, elbowX, elbowY, 4, pal.skin, outline)

	handX := elbowX + sin(10)
	handY := elbowY - cos(10)
	lineOutlined(cv, elbowX, elbowY, handX, handY, 3, pal.skin, outline)
	cv.FillCircle(handX, handY, 3, pal.skin)

	// Blade, long enough to reach the opponent.
	const bladeLen = 50
	tipX := handX + sin(bladeLen)
	tipY := handY - cos(bladeLen)
	cv.Line(handX, handY, tipX, tipY, 3, sword)
	if f.ctx.Profile.Color {
		midX := handX + sin(bladeLen/2)
		midY := handY - cos(bladeLen/2)
		cv.Line(midX, midY, tipX, tipY, 1, color.White)
	}

	// Crossguard and pommel.
	gx1 := handX - cos(6)
	gy1 := handY - sin(6)
	gx2 := handX + cos(6)
	gy2 := handY + sin(6)
	cv.Line(gx1, gy1, gx2, gy2, 3, pal.hair)
	cv.FillCircle(handX-sin(4), handY+cos(4), 2, pal.hair)
}

func (f *SwordFight) drawSparks(cv *canvas.Canvas, pal palette) {
	if !f.sparkOn {
		return
	}
	colorProfile := f.ctx.Profile.Color

	// Outer ring of sparks flying outward as life decays.
	for i := 0; i < 16; i++ {
		a := (f.frame*44 + i*360/16) % 360
		dist := 4 + f.sparkLife*3
		sx := f.spark.X + anim.Sin(a, dist)
		sy := f.spark.Y + anim.Cos(a, dist)
		if colorProfile {
			cv.FillCircle(sx, sy, 3, pal.spark)
		} else {
			cv.FillCircle(sx, sy, 4, color.Black)
			cv.FillCircle(sx, sy, 3, color.White)
		}
	}

	// Inner ring, counter-rotating.
	for i := 0; i < 8; i++ {
		a := (f.frame*66 + i*360/8) % 360
		dist := 2 + f.sparkLife
		sx := f.spark.X + anim.Sin(a, dist)
		sy := f.spark.Y + anim.Cos(a, dist)
		if colorProfile {
			cv.FillCircle(sx, sy, 2, pal.spark)
		} else {
			cv.FillCircle(sx, sy, 3, color.Black)
			cv.FillCircle(sx, sy, 2, color.White)
		}
	}

	// Central flash.
	if colorProfile {
		cv.FillCircle(f.spark.X, f.spark.Y, 6, color.White)
		cv.FillCircle(f.spark.X, f.spark.Y, 4, pal.spark)
	} else {
		cv.FillCircle(f.spark.X, f.spark.Y, 6, color.Black)
		cv.FillCircle(f.spark.X, f.spark.Y, 5, color.White)
	}
}
