package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/watchfaces/canvas"
	"github.com/milk9111/watchfaces/face"
	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"

	_ "github.com/milk9111/watchfaces/face/beach"
	_ "github.com/milk9111/watchfaces/face/castle"
	_ "github.com/milk9111/watchfaces/face/garden"
	_ "github.com/milk9111/watchfaces/face/monkeys"
	_ "github.com/milk9111/watchfaces/face/swordfight"
)

const (
	settingLowPower = "settings/low_power"
	settingVibes    = "settings/vibes"
)

// bezelColor rings the round watch over its square corners.
var bezelColor = color.Gray{Y: 0x20}

// hapticsGate sits between the faces and the real output so the vibes
// toggle applies without rebuilding face contexts.
type hapticsGate struct {
	inner   host.Haptics
	enabled bool
}

func (g *hapticsGate) ShortPulse() {
	if g.enabled {
		g.inner.ShortPulse()
	}
}

func (g *hapticsGate) LongPulse() {
	if g.enabled {
		g.inner.LongPulse()
	}
}

// Game is the emulator shell: it owns the host services, drives the
// current face at its adaptive tick rate, and renders the offscreen watch
// image scaled into the window.
type Game struct {
	cfg     platform.Config
	profile platform.Profile

	store   *host.Store
	haptics *hapticsGate
	battery *host.Battery
	shake   *host.ShakeDetector
	watcher *platform.Watcher

	current face.Face
	names   []string

	offscreen *ebiten.Image
	zoom      int

	lastTick   time.Time
	lastMinute time.Time

	lowPower     bool
	settingsOpen bool
	settings     *settingsUI

	cursorX, cursorY int
}

func NewGame(cfg platform.Config, store *host.Store, haptics host.Haptics, watcher *platform.Watcher) (*Game, error) {
	profile := platform.NewProfile(cfg)

	zoom := cfg.Zoom
	if zoom < 1 {
		zoom = 3
	}

	g := &Game{
		cfg:       cfg,
		profile:   profile,
		store:     store,
		haptics:   &hapticsGate{inner: haptics, enabled: store.GetBool(settingVibes, true)},
		battery:   host.NewBattery(100),
		shake:     host.NewShakeDetector(),
		watcher:   watcher,
		names:     face.Names(),
		offscreen: ebiten.NewImage(profile.Width, profile.Height),
		zoom:      zoom,
		lowPower:  store.GetBool(settingLowPower, false),
	}
	g.settings = newSettingsUI(g)

	name := cfg.Face
	if name == "" && len(g.names) > 0 {
		name = g.names[0]
	}
	built, err := g.buildFace(name)
	if err != nil {
		return nil, err
	}
	g.current = built
	return g, nil
}

func (g *Game) buildFace(name string) (face.Face, error) {
	return face.New(name, face.Context{
		Profile: g.profile,
		Store:   g.store,
		Haptics: g.haptics,
		Battery: g.battery,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	})
}

func (g *Game) switchFace(name string) {
	if g.current != nil && g.current.Name() == name {
		return
	}
	built, err := g.buildFace(name)
	if err != nil {
		log.Printf("switch face: %v", err)
		return
	}
	if g.current != nil {
		g.current.Unload()
	}
	g.current = built
	ebiten.SetWindowTitle(fmt.Sprintf("watchfaces - %s", name))
}

func (g *Game) Update() error {
	g.drainConfigEvents()
	g.handleKeys()

	if g.settingsOpen {
		// The watch freezes behind the settings overlay.
		g.settings.ui.Update()
		return nil
	}
	if !ebiten.IsFocused() {
		return nil
	}

	g.sampleCursor()

	now := time.Now()
	interval := time.Duration(g.profile.Interval(g.effectiveLevel(), g.lowPower)) * time.Millisecond
	if g.lastTick.IsZero() || now.Sub(g.lastTick) >= interval {
		g.current.Tick()
		g.battery.Step()
		g.lastTick = now
	}

	if minute := now.Truncate(time.Minute); !minute.Equal(g.lastMinute) {
		g.current.MinuteTick(now)
		g.lastMinute = minute
	}
	return nil
}

// effectiveLevel is the battery level the tick throttle sees. A charging
// watch never throttles.
func (g *Game) effectiveLevel() int {
	if g.battery.Charging {
		return 100
	}
	return g.battery.Level
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.settingsOpen = !g.settingsOpen
	}
	if g.settingsOpen {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.current.Shake()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.battery.Adjust(-10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.battery.Adjust(10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.battery.ToggleCharging()
	}

	for i, name := range g.names {
		if i > 8 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.switchFace(name)
		}
	}
}

// sampleCursor feeds mouse movement to the shake detector as pseudo
// accelerometer readings, so flinging the cursor across the watch shakes
// it the way flicking a wrist would.
func (g *Game) sampleCursor() {
	x, y := ebiten.CursorPosition()
	dx, dy := x-g.cursorX, y-g.cursorY
	g.cursorX, g.cursorY = x, y

	if g.shake.Sample(dx*120, dy*120, 1000) {
		g.current.Shake()
	}
}

func (g *Game) drainConfigEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadConfig(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("config watch: %v", err)
			}
		default:
			return
		}
	}
}

// reloadConfig applies an edited config file in place. A shape change
// rebuilds the offscreen image and the current face for the new screen.
func (g *Game) reloadConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	cfg, err := platform.ParseConfig(data, g.cfg)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}

	g.cfg = cfg
	profile := platform.NewProfile(cfg)
	resized := profile.Width != g.profile.Width || profile.Height != g.profile.Height
	g.profile = profile

	if cfg.Zoom >= 1 {
		g.zoom = cfg.Zoom
	}
	ebiten.SetWindowSize(profile.Width*g.zoom, profile.Height*g.zoom)

	if resized {
		g.offscreen = ebiten.NewImage(profile.Width, profile.Height)
		name := g.current.Name()
		g.current.Unload()
		built, err := g.buildFace(name)
		if err != nil {
			log.Printf("reload config: rebuild face: %v", err)
			return
		}
		g.current = built
	}
	log.Printf("config reloaded from %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	cv := canvas.New(g.offscreen)
	g.current.Draw(cv, time.Now())

	if g.profile.Round {
		// Bezel ring over the square corners.
		w, h := cv.Size()
		cv.StrokeCircle(w/2, h/2, w/2-1, 3, bezelColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.zoom), float64(g.zoom))
	screen.DrawImage(g.offscreen, op)

	if g.settingsOpen {
		g.settings.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.profile.Width * g.zoom, g.profile.Height * g.zoom
}

// Shutdown flushes face state before exit.
func (g *Game) Shutdown() {
	if g.current != nil {
		g.current.Unload()
	}
}
