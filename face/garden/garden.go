package garden

import (
	"log"
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/face"
)

const plantStoreKey = "garden/plant"

const (
	maxWaterDrops = 5
	splashFrames  = 20
)

func init() {
	face.Register("garden", New)
}

// Garden is the face state. The plant record is authoritative and
// persisted; everything else is transient animation.
type Garden struct {
	ctx   face.Context
	plant PlantState

	swayPhase  int
	leafPhase  int
	wiltOffset int
	growthAnim int

	splashing   bool
	splashFrame int
	drops       *anim.Pool

	now func() time.Time // injectable clock for tests
}

// New loads the persisted plant, applying however much decay accumulated
// while the watch was off. A missing or corrupt record starts a new seed.
func New(ctx face.Context) (face.Face, error) {
	g := &Garden{
		ctx:   ctx,
		drops: anim.NewPool(maxWaterDrops),
		now:   time.Now,
	}
	g.plant = g.loadPlant()
	return g, nil
}

func (g *Garden) loadPlant() PlantState {
	now := g.now()
	if g.ctx.Store == nil {
		return NewPlant(now)
	}
	data, ok, err := g.ctx.Store.Get(plantStoreKey)
	if err != nil {
		log.Printf("garden: load plant: %v", err)
		return NewPlant(now)
	}
	if !ok {
		return NewPlant(now)
	}
	plant, err := DecodePlant(data)
	if err != nil {
		log.Printf("garden: %v, starting fresh", err)
		return NewPlant(now)
	}
	plant.ApplyDecay(now)
	return plant
}

func (g *Garden) savePlant() {
	if g.ctx.Store == nil {
		return
	}
	if err := g.ctx.Store.Put(plantStoreKey, g.plant.Encode()); err != nil {
		log.Printf("garden: save plant: %v", err)
	}
}

func (g *Garden) Name() string { return "garden" }

// Tick advances the ambient animation: sway, wilt droop easing in and out,
// the growth bounce, and the splash particles.
func (g *Garden) Tick() {
	g.swayPhase = anim.WrapDeg(g.swayPhase + 1)
	g.leafPhase = anim.WrapDeg(g.leafPhase + 2)

	targetWilt := 0
	switch g.plant.Health() {
	case HealthThirsty:
		targetWilt = 6
	case HealthWilting:
		targetWilt = 14
	}
	g.wiltOffset = anim.Tween(g.wiltOffset, targetWilt, 1)

	if g.growthAnim > 0 {
		g.growthAnim--
	}

	if g.splashing {
		g.splashFrame++
		h := g.ctx.Profile.Height
		g.drops.Step(1, func(p *anim.Particle) bool {
			return p.Y <= h
		})
		if g.splashFrame >= splashFrames {
			g.splashing = false
		}
	}
}

// MinuteTick re-derives the expected water level from the last watering
// time and triggers rebirth when the tank has been dry long enough.
func (g *Garden) MinuteTick(now time.Time) {
	if g.plant.SyncDecay(now) {
		g.savePlant()
	}
	if g.plant.Dead() {
		g.plant.Rebirth(now)
		g.ctx.Haptics.LongPulse()
		g.savePlant()
	}
}

// Shake waters the plant.
func (g *Garden) Shake() {
	grew := g.plant.Water(g.now())
	if grew {
		g.growthAnim = 20
	}

	g.splashing = true
	g.splashFrame = 0
	g.startSplash()

	g.ctx.Haptics.ShortPulse()
	g.savePlant()
}

func (g *Garden) startSplash() {
	centerX := g.ctx.Profile.Width / 2
	plantTopY := g.ctx.Profile.Height - 60 - int(g.plant.Stage)*12

	g.drops.Spawn(maxWaterDrops, func(p *anim.Particle) {
		p.X = centerX + anim.RandRange(g.ctx.Rand, -20, 20)
		p.Y = plantTopY
		p.VX = anim.RandRange(g.ctx.Rand, -2, 2)
		p.VY = anim.RandRange(g.ctx.Rand, -4, -1)
		p.Size = anim.RandRange(g.ctx.Rand, 2, 4)
		p.Life = splashFrames
	})
}

// Unload persists the plant before the face goes away.
func (g *Garden) Unload() {
	g.savePlant()
}
