package garden

import (
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/canvas"
)

type palette struct {
	sky          color.Color
	pot          color.Color
	potRim       color.Color
	soil         color.Color
	stem         color.Color
	leaf         color.Color
	stemWilt     color.Color
	leafWilt     color.Color
	flower1      color.Color
	flower2      color.Color
	flower3      color.Color
	flowerCenter color.Color
	water        color.Color
	waterLow     color.Color
	seed         color.Color
	text         color.Color
}

var colorPalette = palette{
	sky:          color.RGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff},
	pot:          color.RGBA{R: 0x55, G: 0x00, B: 0x00, A: 0xff},
	potRim:       color.RGBA{R: 0xff, G: 0xaa, B: 0xaa, A: 0xff},
	soil:         color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	stem:         color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	leaf:         color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	stemWilt:     color.RGBA{R: 0xaa, G: 0xaa, B: 0x00, A: 0xff},
	leafWilt:     color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	flower1:      color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	flower2:      color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	flower3:      color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	flowerCenter: color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	water:        color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	waterLow:     color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	seed:         color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	text:         color.White,
}

var bwPalette = palette{
	sky:          color.White,
	pot:          color.Gray{Y: 0x55},
	potRim:       color.Gray{Y: 0xc0},
	soil:         color.Black,
	stem:         color.Black,
	leaf:         color.Black,
	stemWilt:     color.Gray{Y: 0xc0},
	leafWilt:     color.Gray{Y: 0xc0},
	flower1:      color.White,
	flower2:      color.White,
	flower3:      color.White,
	flowerCenter: color.Black,
	water:        color.Gray{Y: 0xc0},
	waterLow:     color.Black,
	seed:         color.Gray{Y: 0x55},
	text:         color.Black,
}

func (g *Garden) Draw(cv *canvas.Canvas, now time.Time) {
	pal := colorPalette
	if !g.ctx.Profile.Color {
		pal = bwPalette
	}

	w := g.ctx.Profile.Width
	h := g.ctx.Profile.Height
	centerX := w / 2
	yBase := h - 5

	cv.Fill(pal.sky)

	g.drawPot(cv, pal, centerX, yBase)
	g.drawPlant(cv, pal, centerX, yBase)
	g.drawDrops(cv, pal)
	g.drawWaterBar(cv, pal)
	g.drawGrowthDots(cv, pal, centerX)

	cv.Text(now.Format("15:04"), w/2, 2, canvas.TimeFace, pal.text, canvas.AlignCenter, 2)
	cv.Text(now.Format("Mon Jan 02"), w/2, 36, canvas.SmallFace, pal.text, canvas.AlignCenter, 1)
	cv.Text(fmt.Sprintf("%d%%", g.ctx.Battery.Level), w-4, 4, canvas.SmallFace, pal.text, canvas.AlignRight, 1)
}

func (g *Garden) drawPot(cv *canvas.Canvas, pal palette, cx, yBase int) {
	const potWidth, potHeight, rimHeight = 60, 25, 4
	potTop := yBase - potHeight
	potLeft := cx - potWidth/2

	// Tapered pot body, wider at the rim.
	cv.FillTrapezoid(potLeft, potLeft+potWidth, potTop+rimHeight,
		potLeft+8, potLeft+potWidth-8, yBase, pal.pot)
	cv.FillRect(potLeft-2, potTop, potWidth+4, rimHeight, pal.potRim)
	cv.FillRect(potLeft+2, potTop+rimHeight, potWidth-4, 8, pal.soil)
}

func (g *Garden) drawPlant(cv *canvas.Canvas, pal palette, cx, yBase int) {
	swayAmp := 2 + int(g.plant.Stage)
	if g.plant.Health() >= HealthThirsty {
		swayAmp /= 2
	}
	sway := anim.Sin(g.swayPhase, swayAmp)

	// Stage-up bounce.
	if g.growthAnim > 0 {
		d := g.growthAnim - 10
		if d < 0 {
			d = -d
		}
		sway = sway * (110 - d) / 100
	}

	switch g.plant.Stage {
	case StageSeed:
		g.drawSeed(cv, pal, cx, yBase)
	case StageSprout:
		g.drawSprout(cv, pal, cx, yBase, sway)
	case StageSmall:
		g.drawSmallPlant(cv, pal, cx, yBase, sway)
	case StageFull:
		g.drawFullPlant(cv, pal, cx, yBase, sway)
	case StageFlowering:
		g.drawFloweringPlant(cv, pal, cx, yBase, sway)
	}
}

func (g *Garden) drawSeed(cv *canvas.Canvas, pal palette, cx, yBase int) {
	seedY := yBase - 30
	cv.FillCircle(cx, seedY+4, 5, pal.seed)
	cv.FillCircle(cx, seedY, 3, pal.seed)
}

func (g *Garden) drawLeaf(cv *canvas.Canvas, pal palette, x, y, size, angle int, wilting bool) {
	clr := pal.leaf
	if wilting {
		clr = pal.leafWilt
	}
	h := size/2 + 1
	dx := 0
	tip := -2
	if angle > 0 {
		dx = size / 2
		tip = 2
	} else if angle < 0 {
		dx = -size / 2
	}
	cv.FillCircle(x+dx, y, h, clr)
	cv.FillCircle(x+dx+tip, y, h-1, clr)
}

func (g *Garden) stemColor(pal palette, wilting bool) color.Color {
	if wilting {
		return pal.stemWilt
	}
	return pal.stem
}

func (g *Garden) drawSprout(cv *canvas.Canvas, pal palette, cx, yBase, sway int) {
	wilting := g.plant.Health() >= HealthThirsty
	droop := 0
	if wilting {
		droop = g.wiltOffset
	}

	topX := cx + sway + droop
	topY := yBase - 28 - 20

	cv.Line(cx, yBase-28, topX, topY, 2, g.stemColor(pal, wilting))
	g.drawLeaf(cv, pal, topX-4, topY+3, 8, -45, wilting)
	g.drawLeaf(cv, pal, topX+4, topY+3, 8, 45, wilting)
}

// drawStem draws the main stem in segments so it curves with the sway.
func (g *Garden) drawStem(cv *canvas.Canvas, pal palette, cx, yBase, height, segments, width, sway, droop int, wilting bool) {
	clr := g.stemColor(pal, wilting)
	segH := height / segments
	prevX, prevY := cx, yBase-28
	for i := 1; i <= segments; i++ {
		newX := cx + (sway+droop)*i/segments
		newY := yBase - 28 - segH*i
		cv.Line(prevX, prevY, newX, newY, width, clr)
		prevX, prevY = newX, newY
	}
}

func (g *Garden) drawSmallPlant(cv *canvas.Canvas, pal palette, cx, yBase, sway int) {
	wilting := g.plant.Health() >= HealthThirsty
	droop := 0
	if wilting {
		droop = g.wiltOffset
	}

	const stemHeight = 35
	topX := cx + sway + droop
	topY := yBase - 28 - stemHeight

	g.drawStem(cv, pal, cx, yBase, stemHeight, 3, 3, sway, droop, wilting)

	flutter := anim.Sin(g.leafPhase, 2)
	g.drawLeaf(cv, pal, cx+sway/3-10, yBase-40, 12, -60, wilting)
	g.drawLeaf(cv, pal, cx+sway/3+10, yBase-45, 12, 60, wilting)
	g.drawLeaf(cv, pal, topX-8+flutter, topY+5, 14, -45, wilting)
	g.drawLeaf(cv, pal, topX+8-flutter, topY+5, 14, 45, wilting)
}

func (g *Garden) drawFlower(cv *canvas.Canvas, pal palette, x, y, size int, petals color.Color) {
	dist := size/2 + 2
	for i := 0; i < 5; i++ {
		a := 360 * i / 5
		cv.FillCircle(x+anim.Cos(a, dist), y+anim.Sin(a, dist), size/2, petals)
	}
	cv.FillCircle(x, y, size/3+1, pal.flowerCenter)
}

func (g *Garden) drawFullPlant(cv *canvas.Canvas, pal palette, cx, yBase, sway int) {
	wilting := g.plant.Health() >= HealthThirsty
	droop := 0
	if wilting {
		droop = g.wiltOffset
	}

	const stemHeight = 50
	topX := cx + sway + droop
	topY := yBase - 28 - stemHeight

	g.drawStem(cv, pal, cx, yBase, stemHeight, 4, 4, sway, droop, wilting)

	flutter := anim.Sin(g.leafPhase, 3)
	g.drawLeaf(cv, pal, cx-12, yBase-38, 14, -70, wilting)
	g.drawLeaf(cv, pal, cx+12, yBase-42, 14, 70, wilting)

	midX := cx + sway/2
	g.drawLeaf(cv, pal, midX-14+flutter, yBase-55, 16, -55, wilting)
	g.drawLeaf(cv, pal, midX+14-flutter, yBase-58, 16, 55, wilting)

	g.drawLeaf(cv, pal, topX-10+flutter, topY+8, 15, -40, wilting)
	g.drawLeaf(cv, pal, topX+10-flutter, topY+8, 15, 40, wilting)
	g.drawLeaf(cv, pal, topX, topY+2, 12, 0, wilting)
}

func (g *Garden) drawFloweringPlant(cv *canvas.Canvas, pal palette, cx, yBase, sway int) {
	g.drawFullPlant(cv, pal, cx, yBase, sway)

	wilting := g.plant.Health() >= HealthThirsty
	droop := 0
	if wilting {
		droop = g.wiltOffset
	}

	topX := cx + sway + droop
	topY := yBase - 28 - 50

	if wilting {
		cv.FillCircle(topX+5, topY-3, 5, pal.leafWilt)
		cv.FillCircle(topX-15, topY+12, 4, pal.leafWilt)
		return
	}
	g.drawFlower(cv, pal, topX, topY-8, 12, pal.flower1)
	g.drawFlower(cv, pal, topX-18, topY+10, 10, pal.flower2)
	g.drawFlower(cv, pal, topX+16, topY+6, 10, pal.flower3)
}

func (g *Garden) drawDrops(cv *canvas.Canvas, pal palette) {
	if !g.splashing {
		return
	}
	g.drops.Each(func(p *anim.Particle) {
		cv.FillCircle(p.X, p.Y, p.Size, pal.water)
	})
}

func (g *Garden) drawWaterBar(cv *canvas.Canvas, pal palette) {
	w := g.ctx.Profile.Width
	h := g.ctx.Profile.Height
	const barWidth, barHeight = 40, 8
	barX, barY := 8, h-14

	clr := pal.water
	if g.plant.WaterLevel < waterThirstyMin {
		clr = pal.waterLow
	}
	cv.FillCircle(barX+3, barY+4, 4, clr)
	cv.StrokeRect(barX+10, barY, barWidth, barHeight, 1, pal.text)
	if fill := g.plant.WaterLevel * (barWidth - 2) / 100; fill > 0 {
		cv.FillRect(barX+11, barY+1, fill, barHeight-2, clr)
	}

	// Shake prompt, blinking when the plant is parched.
	if g.plant.WaterLevel < waterHealthyMin {
		hint := "shake"
		if g.plant.WaterLevel < waterThirstyMin {
			hint = "SHAKE!"
		}
		if g.plant.WaterLevel >= waterThirstyMin || (g.swayPhase/45)%2 == 0 {
			cv.Text(hint, w-4, barY-2, canvas.SmallFace, pal.text, canvas.AlignRight, 1)
		}
	}
}

func (g *Garden) drawGrowthDots(cv *canvas.Canvas, pal palette, cx int) {
	if g.plant.Stage >= StageFlowering {
		return
	}
	const totalDots, spacing = 5, 8
	filled := g.plant.Growth * totalDots / growthToNextStage
	startX := cx - (totalDots-1)*spacing/2
	for i := 0; i < totalDots; i++ {
		x := startX + i*spacing
		if i < filled {
			cv.FillCircle(x, 58, 3, pal.leaf)
		} else {
			cv.StrokeCircle(x, 58, 2, 1, pal.text)
		}
	}
}
