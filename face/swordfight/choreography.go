package swordfight

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Move pairs one pose per fighter with a frame budget. Clash marks beats
// where the blades are meant to cross and a spark may spawn.
type Move struct {
	A     Pose
	B     Pose
	Dur   int
	Clash bool
}

// The routine ships as a tengo script so it can be tuned without touching
// the Go side. The script fills a `moves` array of [poseA, poseB, dur, clash].
const choreographyScript = `
moves := []

beat := func(a, b, dur, clash) {
	moves = append(moves, [a, b, dur, clash])
}

exchange := func(attacker_first, dur) {
	if attacker_first {
		beat("slash", "block_high", dur, true)
		beat("block_high", "slash", dur, true)
	} else {
		beat("block_high", "slash", dur, true)
		beat("slash", "block_high", dur, true)
	}
}

// Opening stance.
beat("ready", "ready", 16, false)

// Trade slashes against high blocks.
exchange(true, 10)
beat("ready", "ready", 6, false)

// Low-line thrusts against parries.
beat("thrust", "block_low", 10, true)
beat("block_low", "thrust", 10, true)

// Flurry.
exchange(true, 8)
beat("slash", "block_high", 8, true)
beat("ready", "ready", 6, false)

// Pressure from the left fighter.
beat("thrust", "block_low", 8, true)
beat("slash", "block_high", 8, true)
beat("thrust", "block_low", 8, true)

// Right fighter takes a hit and retreats.
beat("slash", "struck", 12, false)
beat("ready", "step_back", 8, false)
beat("ready", "ready", 8, false)

// Counter.
beat("block_high", "slash", 10, true)
beat("block_low", "thrust", 8, true)

// Left fighter takes a hit.
beat("struck", "slash", 12, false)
beat("step_back", "ready", 8, false)
beat("ready", "ready", 8, false)

// Final exchange and reset.
exchange(true, 8)
beat("thrust", "block_low", 8, true)
beat("block_low", "thrust", 8, true)
beat("ready", "ready", 12, false)
`

// fallbackMoves mirrors the script's routine so a script error never leaves
// the face without a duel.
var fallbackMoves = []Move{
	{PoseReady, PoseReady, 16, false},
	{PoseSlash, PoseBlockHigh, 10, true},
	{PoseBlockHigh, PoseSlash, 10, true},
	{PoseReady, PoseReady, 6, false},
	{PoseThrust, PoseBlockLow, 10, true},
	{PoseBlockLow, PoseThrust, 10, true},
	{PoseSlash, PoseBlockHigh, 8, true},
	{PoseBlockHigh, PoseSlash, 8, true},
	{PoseSlash, PoseBlockHigh, 8, true},
	{PoseReady, PoseReady, 6, false},
	{PoseThrust, PoseBlockLow, 8, true},
	{PoseSlash, PoseBlockHigh, 8, true},
	{PoseThrust, PoseBlockLow, 8, true},
	{PoseSlash, PoseStruck, 12, false},
	{PoseReady, PoseStepBack, 8, false},
	{PoseReady, PoseReady, 8, false},
	{PoseBlockHigh, PoseSlash, 10, true},
	{PoseBlockLow, PoseThrust, 8, true},
	{PoseStruck, PoseSlash, 12, false},
	{PoseStepBack, PoseReady, 8, false},
	{PoseReady, PoseReady, 8, false},
	{PoseSlash, PoseBlockHigh, 8, true},
	{PoseBlockHigh, PoseSlash, 8, true},
	{PoseThrust, PoseBlockLow, 8, true},
	{PoseBlockLow, PoseThrust, 8, true},
	{PoseReady, PoseReady, 12, false},
}

// LoadChoreography compiles and runs the routine script, falling back to
// the built-in table when the script misbehaves.
func LoadChoreography() []Move {
	moves, err := runChoreographyScript([]byte(choreographyScript))
	if err != nil {
		log.Printf("swordfight: choreography script error, using fallback: %v", err)
		return fallbackMoves
	}
	return moves
}

func runChoreographyScript(src []byte) ([]Move, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	raw := compiled.Get("moves")
	if raw == nil {
		return nil, fmt.Errorf("script defines no moves")
	}

	arr, ok := raw.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("moves is %T, want array", raw.Value())
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("moves is empty")
	}

	moves := make([]Move, 0, len(arr))
	for i, item := range arr {
		beat, ok := item.([]any)
		if !ok || len(beat) != 4 {
			return nil, fmt.Errorf("move %d: want [poseA, poseB, dur, clash]", i)
		}
		a, err := scriptPose(beat[0])
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		b, err := scriptPose(beat[1])
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		dur, ok := beat[2].(int64)
		if !ok || dur <= 0 {
			return nil, fmt.Errorf("move %d: bad duration %v", i, beat[2])
		}
		clash, ok := beat[3].(bool)
		if !ok {
			return nil, fmt.Errorf("move %d: bad clash flag %v", i, beat[3])
		}
		moves = append(moves, Move{A: a, B: b, Dur: int(dur), Clash: clash})
	}
	return moves, nil
}

func scriptPose(v any) (Pose, error) {
	name, ok := v.(string)
	if !ok {
		return PoseReady, fmt.Errorf("pose is %T, want string", v)
	}
	pose, ok := poseNames[name]
	if !ok {
		return PoseReady, fmt.Errorf("unknown pose %q", name)
	}
	return pose, nil
}
