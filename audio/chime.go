// Package audio plays short chimes as letters are planted. Sound is
// optional; initialization failure disables it without affecting the app.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays keystroke tones through the speaker.
type Chime struct {
	enabled bool
	volume  float64
}

// NewChime initializes the speaker. A speaker error returns a disabled
// Chime along with the error; the caller may keep using it silently.
func NewChime(volume float64) (*Chime, error) {
	if volume <= 0 {
		volume = 0.5
	}
	if volume > 1 {
		volume = 1
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{volume: volume}, err
	}
	return &Chime{enabled: true, volume: volume}, nil
}

// Enabled reports whether the speaker is live.
func (c *Chime) Enabled() bool {
	return c.enabled
}

// Letter plays a soft tick for an ordinary letter.
func (c *Chime) Letter() {
	c.play(660, 40*time.Millisecond)
}

// Anchor plays a brighter tone when the first letter is planted.
func (c *Chime) Anchor() {
	c.play(880, 70*time.Millisecond)
}

// Erase plays a low tick for a removed letter.
func (c *Chime) Erase() {
	c.play(440, 40*time.Millisecond)
}

func (c *Chime) play(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	buf := tone(freq, sampleRate.N(d), c.volume)
	speaker.Play(&bufferStreamer{buf: buf})
}

// Close shuts the speaker down.
func (c *Chime) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}

// tone renders a sine burst with a linear attack/release envelope so the
// chime starts and ends without clicks.
func tone(freq float64, samples int, volume float64) []float64 {
	buf := make([]float64, samples)
	phaseInc := freq / float64(sampleRate)
	phase := 0.0
	for i := range buf {
		buf[i] = math.Sin(2*math.Pi*phase) * volume
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	applyEnvelope(buf, 0.005, 0.02)
	return buf
}

// applyEnvelope ramps the buffer in over attackSec and out over releaseSec.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	for i := range buf {
		switch {
		case i < attack && attack > 0:
			buf[i] *= float64(i) / float64(attack)
		case i >= releaseStart && release > 0:
			buf[i] *= float64(total-i) / float64(release)
		}
	}
}

// bufferStreamer streams a mono buffer to both channels once.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}
