package host

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Haptics receives fire-and-forget vibration requests. On a desk there is
// no motor, so the emulator renders pulses as short buzz tones; faces
// rate-limit their own requests with cooldown counters.
type Haptics interface {
	ShortPulse()
	LongPulse()
}

// NopHaptics drops every pulse. Used when audio is disabled or the speaker
// fails to initialize.
type NopHaptics struct{}

func (NopHaptics) ShortPulse() {}
func (NopHaptics) LongPulse()  {}

const buzzerSampleRate = beep.SampleRate(44100)

// Buzzer synthesizes vibration pulses through the speaker.
type Buzzer struct{}

// NewBuzzer initializes the audio device. The returned error leaves the
// caller free to fall back to NopHaptics.
func NewBuzzer() (*Buzzer, error) {
	if err := speaker.Init(buzzerSampleRate, buzzerSampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Buzzer{}, nil
}

// ShortPulse plays a brief buzz, like a notification tap.
func (b *Buzzer) ShortPulse() {
	b.play(90 * time.Millisecond)
}

// LongPulse plays a longer buzz, used for the garden's rebirth event.
func (b *Buzzer) LongPulse() {
	b.play(350 * time.Millisecond)
}

func (b *Buzzer) play(d time.Duration) {
	speaker.Play(beep.Take(buzzerSampleRate.N(d), newBuzzTone(buzzerSampleRate, 140)))
}

// buzzTone approximates a vibration motor: a low sine with a couple of
// harmonics and a fast attack envelope.
type buzzTone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzTone(sr beep.SampleRate, freq float64) *buzzTone {
	return &buzzTone{sr: sr, freq: freq}
}

func (g *buzzTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzTone) Err() error {
	return nil
}
