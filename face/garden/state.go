// Package garden grows a virtual plant that must be watered by shaking the
// watch. The plant persists across restarts: water keeps draining on a wall
// clock schedule whether the watchface is running or not.
package garden

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/milk9111/watchfaces/anim"
)

// Growth stages, seed through flowering.
type Stage int

const (
	StageSeed Stage = iota
	StageSprout
	StageSmall
	StageFull
	StageFlowering
)

// Health bands derived from the water level.
type Health int

const (
	HealthThriving Health = iota
	HealthHealthy
	HealthThirsty
	HealthWilting
)

const (
	waterMax           = 100
	waterPerShake      = 30
	waterDecayInterval = 1800 * time.Second
	waterDecayAmount   = 12

	waterThrivingMin = 70
	waterHealthyMin  = 40
	waterThirstyMin  = 20

	growthPerWatering  = 8
	growthToNextStage  = 100
	rebirthWaterLevel  = 30
	newPlantWaterLevel = 50
)

// PlantState is the persisted record. LastWatered anchors offline decay;
// TotalWaters survives rebirth as a memorial to past lives.
type PlantState struct {
	Stage       Stage
	WaterLevel  int
	Growth      int
	LastWatered time.Time
	TotalWaters int
}

// NewPlant starts a fresh seed with half a tank of water.
func NewPlant(now time.Time) PlantState {
	return PlantState{
		Stage:       StageSeed,
		WaterLevel:  newPlantWaterLevel,
		LastWatered: now,
	}
}

// Health maps the water level onto the display bands.
func (p *PlantState) Health() Health {
	switch {
	case p.WaterLevel >= waterThrivingMin:
		return HealthThriving
	case p.WaterLevel >= waterHealthyMin:
		return HealthHealthy
	case p.WaterLevel >= waterThirstyMin:
		return HealthThirsty
	default:
		return HealthWilting
	}
}

// ApplyDecay drains water for the whole-interval count elapsed since the
// last watering. Called once on load to account for time spent off-wrist.
func (p *PlantState) ApplyDecay(now time.Time) {
	if p.LastWatered.IsZero() || !now.After(p.LastWatered) {
		return
	}
	intervals := int(now.Sub(p.LastWatered) / waterDecayInterval)
	p.WaterLevel = anim.Clamp(p.WaterLevel-intervals*waterDecayAmount, 0, waterMax)
}

// SyncDecay re-derives the expected water level from the last watering
// time and lowers the stored level to match. Unlike ApplyDecay it is
// idempotent, so the minute tick can call it repeatedly without
// compounding the drain.
func (p *PlantState) SyncDecay(now time.Time) bool {
	if p.LastWatered.IsZero() {
		return false
	}
	intervals := int(now.Sub(p.LastWatered) / waterDecayInterval)
	expected := anim.Clamp(waterMax-intervals*waterDecayAmount, 0, waterMax)
	if p.WaterLevel <= expected {
		return false
	}
	p.WaterLevel = expected
	return true
}

// Water handles one shake: fill the tank, advance growth when the plant is
// healthy enough to grow. Returns true when the plant reached a new stage.
func (p *PlantState) Water(now time.Time) bool {
	p.WaterLevel = anim.Clamp(p.WaterLevel+waterPerShake, 0, waterMax)
	p.LastWatered = now
	p.TotalWaters++

	if p.Health() > HealthHealthy || p.Stage >= StageFlowering {
		return false
	}
	p.Growth += growthPerWatering
	if p.Growth < growthToNextStage {
		return false
	}
	p.Growth = 0
	p.Stage++
	return true
}

// Dead reports whether the plant has fully dried out. A seed can't die;
// anything past it is reborn as a seed when the tank empties.
func (p *PlantState) Dead() bool {
	return p.WaterLevel == 0 && p.Stage > StageSeed
}

// Rebirth resets to a seed with a little starting water. TotalWaters is
// kept.
func (p *PlantState) Rebirth(now time.Time) {
	p.Stage = StageSeed
	p.WaterLevel = rebirthWaterLevel
	p.Growth = 0
	p.LastWatered = now
}

// Wire format: version byte then fixed-width fields, little endian.
const (
	plantRecordVersion = 1
	plantRecordLen     = 1 + 1 + 1 + 1 + 8 + 2
)

// Encode serializes the record.
func (p *PlantState) Encode() []byte {
	buf := make([]byte, plantRecordLen)
	buf[0] = plantRecordVersion
	buf[1] = byte(anim.Clamp(int(p.Stage), 0, int(StageFlowering)))
	buf[2] = byte(anim.Clamp(p.WaterLevel, 0, waterMax))
	buf[3] = byte(anim.Clamp(p.Growth, 0, growthToNextStage))
	binary.LittleEndian.PutUint64(buf[4:], uint64(p.LastWatered.Unix()))
	binary.LittleEndian.PutUint16(buf[12:], uint16(anim.Clamp(p.TotalWaters, 0, 65535)))
	return buf
}

// DecodePlant parses a stored record, clamping every field so a corrupt
// blob can only ever produce a valid plant.
func DecodePlant(data []byte) (PlantState, error) {
	if len(data) != plantRecordLen {
		return PlantState{}, fmt.Errorf("garden: plant record is %d bytes, want %d", len(data), plantRecordLen)
	}
	if data[0] != plantRecordVersion {
		return PlantState{}, fmt.Errorf("garden: unknown plant record version %d", data[0])
	}
	p := PlantState{
		Stage:       Stage(anim.Clamp(int(data[1]), 0, int(StageFlowering))),
		WaterLevel:  anim.Clamp(int(data[2]), 0, waterMax),
		Growth:      anim.Clamp(int(data[3]), 0, growthToNextStage),
		TotalWaters: int(binary.LittleEndian.Uint16(data[12:])),
	}
	if sec := int64(binary.LittleEndian.Uint64(data[4:])); sec > 0 {
		p.LastWatered = time.Unix(sec, 0)
	}
	return p, nil
}
