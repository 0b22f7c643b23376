// Package face defines the watchface contract and the registry the
// emulator selects faces from. A face owns all of its animation state and
// is only ever touched from the single update loop.
package face

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/milk9111/watchfaces/canvas"
	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"
)

// Context carries the host services a face is built over.
type Context struct {
	Profile platform.Profile
	Store   *host.Store
	Haptics host.Haptics
	Battery *host.Battery
	Rand    *rand.Rand
}

// Face is one watchface. Tick runs once per animation interval and must
// complete all state mutation before returning; Draw only reads.
type Face interface {
	Name() string

	// Tick advances the animation by one frame.
	Tick()

	// MinuteTick fires on minute boundaries with the current wall clock.
	MinuteTick(now time.Time)

	// Shake delivers a vigorous-shake event, already thresholded and
	// cooldown-limited by the host.
	Shake()

	// Draw renders the current state onto the watch canvas.
	Draw(cv *canvas.Canvas, now time.Time)

	// Unload persists state before the face is swapped out or the
	// emulator exits.
	Unload()
}

// Builder constructs a face for a context.
type Builder func(Context) (Face, error)

var builders = map[string]Builder{}

// Register adds a face to the registry. Called from face package inits;
// duplicate names are a programming error.
func Register(name string, b Builder) {
	if _, exists := builders[name]; exists {
		panic(fmt.Sprintf("face: duplicate registration for %q", name))
	}
	builders[name] = b
}

// New builds the named face.
func New(name string, ctx Context) (Face, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("face: unknown face %q (have %v)", name, Names())
	}
	return b(ctx)
}

// Names lists registered faces in stable order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
