package garden

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/watchfaces/face"
	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"
)

type pulseCounter struct {
	short int
	long  int
}

func (p *pulseCounter) ShortPulse() { p.short++ }
func (p *pulseCounter) LongPulse()  { p.long++ }

func testStore(t *testing.T) *host.Store {
	t.Helper()
	store, err := host.OpenStore(filepath.Join(t.TempDir(), "watch.db"))
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestFace(t *testing.T, store *host.Store) (*Garden, *pulseCounter) {
	t.Helper()
	pulses := &pulseCounter{}
	ctx := face.Context{
		Profile: platform.NewProfile(platform.Config{Shape: "rect", Color: true, TickMillis: 50, LowPowerTickMillis: 100}),
		Store:   store,
		Haptics: pulses,
		Battery: host.NewBattery(100),
		Rand:    rand.New(rand.NewSource(3)),
	}
	built, err := New(ctx)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return built.(*Garden), pulses
}

func TestPlantRecordRoundTrip(t *testing.T) {
	watered := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	p := PlantState{
		Stage:       StageSmall,
		WaterLevel:  64,
		Growth:      40,
		LastWatered: watered,
		TotalWaters: 123,
	}

	got, err := DecodePlant(p.Encode())
	if err != nil {
		t.Fatalf("DecodePlant() error: %v", err)
	}
	if got.Stage != p.Stage || got.WaterLevel != p.WaterLevel || got.Growth != p.Growth {
		t.Errorf("decoded %+v, want %+v", got, p)
	}
	if !got.LastWatered.Equal(watered) {
		t.Errorf("LastWatered = %v, want %v", got.LastWatered, watered)
	}
	if got.TotalWaters != 123 {
		t.Errorf("TotalWaters = %d, want 123", got.TotalWaters)
	}
}

func TestDecodeRejectsCorruptRecords(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"short", []byte{1, 2, 3}},
		{"bad version", append([]byte{99}, make([]byte, plantRecordLen-1)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePlant(tt.data); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestDecodeClampsOutOfRangeFields(t *testing.T) {
	p := PlantState{Stage: StageFull, WaterLevel: 80, LastWatered: time.Now()}
	data := p.Encode()
	data[1] = 200 // stage
	data[2] = 255 // water

	got, err := DecodePlant(data)
	if err != nil {
		t.Fatalf("DecodePlant() error: %v", err)
	}
	if got.Stage != StageFlowering {
		t.Errorf("Stage = %d, want clamp to flowering", got.Stage)
	}
	if got.WaterLevel != waterMax {
		t.Errorf("WaterLevel = %d, want clamp to %d", got.WaterLevel, waterMax)
	}
}

func TestOfflineDecay(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		water   int
		elapsed time.Duration
		want    int
	}{
		{"two intervals", 50, 3600 * time.Second, 26},
		{"partial interval keeps water", 50, 1799 * time.Second, 50},
		{"drains to zero, never below", 20, 10 * time.Hour, 0},
		{"no anchor no decay", 50, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlantState{Stage: StageSmall, WaterLevel: tt.water}
			if tt.elapsed > 0 {
				p.LastWatered = now.Add(-tt.elapsed)
			}
			p.ApplyDecay(now)
			if p.WaterLevel != tt.want {
				t.Errorf("WaterLevel = %d, want %d", p.WaterLevel, tt.want)
			}
		})
	}
}

func TestSyncDecayIsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	p := PlantState{Stage: StageSmall, WaterLevel: 90, LastWatered: now.Add(-2 * 1800 * time.Second)}

	if !p.SyncDecay(now) {
		t.Fatal("first sync reported no change")
	}
	want := waterMax - 2*waterDecayAmount
	if p.WaterLevel != want {
		t.Fatalf("WaterLevel = %d, want %d", p.WaterLevel, want)
	}

	// Re-running with the same clock must not drain further.
	if p.SyncDecay(now) {
		t.Error("second sync drained again")
	}
	if p.WaterLevel != want {
		t.Errorf("WaterLevel = %d after re-sync, want %d", p.WaterLevel, want)
	}
}

func TestWateringGrowthAndStageUp(t *testing.T) {
	now := time.Now()
	p := NewPlant(now)

	// 13 waterings at 8 growth each crosses the 100 threshold.
	grew := false
	for i := 0; i < 13; i++ {
		if p.Water(now) {
			grew = true
		}
	}
	if !grew {
		t.Fatal("plant never advanced a stage")
	}
	if p.Stage != StageSprout {
		t.Errorf("Stage = %d, want sprout", p.Stage)
	}
	if p.Growth != 0 {
		t.Errorf("Growth = %d after stage up, want 0", p.Growth)
	}
	if p.WaterLevel != waterMax {
		t.Errorf("WaterLevel = %d, want clamp at %d", p.WaterLevel, waterMax)
	}
	if p.TotalWaters != 13 {
		t.Errorf("TotalWaters = %d, want 13", p.TotalWaters)
	}
}

func TestWiltingPlantDoesNotGrow(t *testing.T) {
	now := time.Now()
	p := PlantState{Stage: StageSmall, WaterLevel: 5, LastWatered: now}

	p.Water(now)
	if p.Growth != 0 {
		t.Errorf("Growth = %d from watering a wilting plant, want 0", p.Growth)
	}
	if p.WaterLevel != 35 {
		t.Errorf("WaterLevel = %d, want 35", p.WaterLevel)
	}
}

func TestRebirth(t *testing.T) {
	now := time.Now()

	seed := PlantState{Stage: StageSeed, WaterLevel: 0}
	if seed.Dead() {
		t.Error("a seed cannot die")
	}

	p := PlantState{Stage: StageFlowering, WaterLevel: 0, TotalWaters: 77}
	if !p.Dead() {
		t.Fatal("dry flowering plant should be dead")
	}
	p.Rebirth(now)
	if p.Stage != StageSeed || p.WaterLevel != rebirthWaterLevel || p.Growth != 0 {
		t.Errorf("after rebirth: %+v", p)
	}
	if p.TotalWaters != 77 {
		t.Errorf("TotalWaters = %d, want kept at 77", p.TotalWaters)
	}
}

func TestShakeWatersAndSplashes(t *testing.T) {
	g, pulses := newTestFace(t, testStore(t))

	g.Shake()
	if pulses.short != 1 {
		t.Errorf("short pulses = %d, want 1", pulses.short)
	}
	if !g.splashing {
		t.Fatal("no splash after shake")
	}
	if got := g.drops.ActiveCount(); got != 5 {
		t.Errorf("active drops = %d, want 5", got)
	}

	// Gravity pulls the drops down and the splash ends on schedule.
	for i := 0; i < splashFrames; i++ {
		g.Tick()
	}
	if g.splashing {
		t.Error("splash still running past its window")
	}
}

func TestMinuteTickRebirthsDryPlant(t *testing.T) {
	g, pulses := newTestFace(t, testStore(t))
	now := time.Now()

	g.plant = PlantState{Stage: StageFull, WaterLevel: 0, LastWatered: now.Add(-20 * time.Hour)}
	g.MinuteTick(now)

	if g.plant.Stage != StageSeed {
		t.Errorf("Stage = %d after dry-out, want seed", g.plant.Stage)
	}
	if pulses.long != 1 {
		t.Errorf("long pulses = %d, want 1 for rebirth", pulses.long)
	}
}

func TestPlantPersistsAcrossRestart(t *testing.T) {
	store := testStore(t)
	g, _ := newTestFace(t, store)

	g.Shake()
	g.Shake()
	want := g.plant
	g.Unload()

	g2, _ := newTestFace(t, store)
	if g2.plant.TotalWaters != want.TotalWaters {
		t.Errorf("TotalWaters = %d after reload, want %d", g2.plant.TotalWaters, want.TotalWaters)
	}
	if g2.plant.Stage != want.Stage {
		t.Errorf("Stage = %d after reload, want %d", g2.plant.Stage, want.Stage)
	}
	// Reload applies decay; with a fresh LastWatered nothing drains.
	if g2.plant.WaterLevel != want.WaterLevel {
		t.Errorf("WaterLevel = %d after reload, want %d", g2.plant.WaterLevel, want.WaterLevel)
	}
}

func TestWiltOffsetEasesTowardTarget(t *testing.T) {
	g, _ := newTestFace(t, nil)
	g.plant.WaterLevel = 5 // wilting, target droop 14

	for i := 0; i < 14; i++ {
		g.Tick()
	}
	if g.wiltOffset != 14 {
		t.Errorf("wiltOffset = %d after 14 ticks, want 14", g.wiltOffset)
	}

	// Watering recovers the droop one pixel per tick.
	g.plant.WaterLevel = 90
	g.Tick()
	if g.wiltOffset != 13 {
		t.Errorf("wiltOffset = %d, want 13", g.wiltOffset)
	}
}
