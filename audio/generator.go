package audio

import (
	"math"
	"math/rand"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain.
type floatBuffer []float64

// oscillator generates raw waveform samples, sliding the frequency linearly
// from startFreq to endFreq over the buffer. Equal frequencies give a steady
// tone; noise ignores frequency entirely.
func oscillator(waveType int, startFreq, endFreq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	// Fixed seed keeps synthesis repeatable; the same sound always renders
	// to the same bytes.
	noise := rand.New(rand.NewSource(1))

	for i := 0; i < samples; i++ {
		t := 0.0
		if samples > 1 {
			t = float64(i) / float64(samples-1)
		}
		freq := startFreq + (endFreq-startFreq)*t

		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = noise.Float64()*2 - 1
		}

		phase += freq / float64(SampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * SampleRate)
	releaseSamples := int(releaseSec * SampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// durationToSamples converts seconds to sample count.
func durationToSamples(d float64) int {
	return int(d * SampleRate)
}

// --- Sound generators (unity gain) ---

func generateJumpSound() floatBuffer {
	samples := durationToSamples(0.10)
	buf := oscillator(waveSquare, 440, 540, samples)
	applyEnvelope(buf, 0.005, 0.06)
	return buf
}

func generateDoubleJumpSound() floatBuffer {
	samples := durationToSamples(0.10)
	buf := oscillator(waveSine, 660, 860, samples)
	applyEnvelope(buf, 0.005, 0.05)
	return buf
}

func generateSlashSound() floatBuffer {
	samples := durationToSamples(0.15)
	buf := oscillator(waveNoise, 0, 0, samples)
	applyEnvelope(buf, 0.005, 0.12)
	return buf
}

func generateHitSound() floatBuffer {
	samples := durationToSamples(0.30)
	buf := oscillator(waveNoise, 0, 0, samples)
	low := oscillator(waveSine, 110, 55, samples)
	for i := range buf {
		buf[i] = buf[i]*0.5 + low[i]*0.5
	}
	applyEnvelope(buf, 0.002, 0.22)
	return buf
}

func generatePowerUpSound() floatBuffer {
	samples := durationToSamples(0.12)
	buf := oscillator(waveSine, 554, 674, samples)
	applyEnvelope(buf, 0.005, 0.06)
	return buf
}

func generateMilestoneSound() floatBuffer {
	samples := durationToSamples(0.05)
	buf := oscillator(waveSine, 880, 880, samples)
	applyEnvelope(buf, 0.002, 0.02)
	return buf
}

// generateSound dispatches to the specific generator.
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundJump:
		return generateJumpSound()
	case SoundDoubleJump:
		return generateDoubleJumpSound()
	case SoundSlash:
		return generateSlashSound()
	case SoundHit:
		return generateHitSound()
	case SoundPowerUp:
		return generatePowerUpSound()
	case SoundMilestone:
		return generateMilestoneSound()
	default:
		return nil
	}
}

// Synthesize renders one sound as interleaved 16-bit little-endian stereo PCM
// at SampleRate, ready for playback. The output depends only on st.
func Synthesize(st SoundType) []byte {
	buf := generateSound(st)
	if buf == nil {
		return nil
	}
	out := make([]byte, len(buf)*4)
	for i, s := range buf {
		s *= 0.3 // headroom
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}
