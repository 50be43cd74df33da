package audio

import (
	"math"
	"testing"
	"time"
)

func TestToneLengthAndAmplitude(t *testing.T) {
	samples := sampleRate.N(50 * time.Millisecond)
	buf := tone(660, samples, 0.5)
	if len(buf) != samples {
		t.Fatalf("expected %d samples, got %d", samples, len(buf))
	}
	for i, v := range buf {
		if math.Abs(v) > 0.5+1e-9 {
			t.Fatalf("sample %d exceeds volume: %f", i, v)
		}
	}
}

func TestEnvelopeRampsEnds(t *testing.T) {
	buf := make([]float64, 4410) // 100ms
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 0.005, 0.02)

	if buf[0] != 0 {
		t.Errorf("attack should start at zero, got %f", buf[0])
	}
	if last := buf[len(buf)-1]; last > 0.01 {
		t.Errorf("release should end near zero, got %f", last)
	}
	mid := buf[len(buf)/2]
	if mid != 1.0 {
		t.Errorf("sustain should be untouched, got %f", mid)
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	bs := &bufferStreamer{buf: []float64{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := bs.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("first stream: n=%d ok=%v", n, ok)
	}
	if out[0][0] != 0.1 || out[0][1] != 0.1 {
		t.Errorf("mono sample should feed both channels: %v", out[0])
	}

	n, ok = bs.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("second stream: n=%d ok=%v", n, ok)
	}

	n, ok = bs.Stream(out)
	if n != 0 || ok {
		t.Fatalf("drained streamer should stop: n=%d ok=%v", n, ok)
	}
}

func TestDisabledChimeIsSilent(t *testing.T) {
	c := &Chime{}
	// Must not panic with no speaker initialized.
	c.Letter()
	c.Anchor()
	c.Erase()
	c.Close()
	if c.Enabled() {
		t.Error("zero-value chime should be disabled")
	}
}
