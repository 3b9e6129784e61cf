package audio

import (
	"bytes"
	"testing"
)

func TestSynthesizeDeterministic(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		a := Synthesize(st)
		b := Synthesize(st)
		if !bytes.Equal(a, b) {
			t.Fatalf("%s renders differently on repeat", st)
		}
	}
}

func TestSynthesizeShape(t *testing.T) {
	cases := []struct {
		st  SoundType
		dur float64
	}{
		{SoundJump, 0.10},
		{SoundDoubleJump, 0.10},
		{SoundSlash, 0.15},
		{SoundHit, 0.30},
		{SoundPowerUp, 0.12},
		{SoundMilestone, 0.05},
	}
	for _, c := range cases {
		t.Run(c.st.String(), func(t *testing.T) {
			pcm := Synthesize(c.st)
			// 16-bit stereo: 4 bytes per sample
			want := int(c.dur*SampleRate) * 4
			if len(pcm) != want {
				t.Fatalf("pcm length %d, want %d", len(pcm), want)
			}
			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Fatalf("%s rendered silence", c.st)
			}
			// stereo channels carry the same mono signal
			for i := 0; i+3 < len(pcm); i += 4 {
				if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
					t.Fatalf("%s channels diverge at sample %d", c.st, i/4)
				}
			}
		})
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	if pcm := Synthesize(soundTypeCount); pcm != nil {
		t.Fatalf("unknown sound should render nil, got %d bytes", len(pcm))
	}
}

func TestEnvelopeEndsAtZero(t *testing.T) {
	buf := oscillator(waveSine, 440, 440, durationToSamples(0.1))
	applyEnvelope(buf, 0.01, 0.05)
	if buf[0] != 0 {
		t.Fatalf("attack should start from silence, got %v", buf[0])
	}
	tail := buf[len(buf)-1]
	if tail > 0.01 || tail < -0.01 {
		t.Fatalf("release should end near silence, got %v", tail)
	}
}

func TestOscillatorBounds(t *testing.T) {
	for _, wave := range []int{waveSine, waveSquare, waveNoise} {
		buf := oscillator(wave, 440, 880, 1000)
		for i, s := range buf {
			if s < -1 || s > 1 {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, s)
			}
		}
	}
}

func TestSoundCache(t *testing.T) {
	c := newSoundCache()
	a := c.get(SoundJump)
	b := c.get(SoundJump)
	if &a[0] != &b[0] {
		t.Fatalf("cache should return the same buffer on repeat")
	}
	if c.get(soundTypeCount) != nil {
		t.Fatalf("out-of-range sound should be nil")
	}

	c2 := newSoundCache()
	c2.preload()
	for st := SoundType(0); st < soundTypeCount; st++ {
		if !c2.ready[st] {
			t.Fatalf("preload skipped %s", st)
		}
	}
}
