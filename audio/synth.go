package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/swordfall/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, duration, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// Synthesize builds the streamer of one cue at the given master volume
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch c {
	case CueHit:
		// Low saw thud
		s = tone(90, parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, WaveSaw, rate)
	case CueBlock:
		s = newVolume(tone(220, parameter.BlockCueDuration, parameter.BlockCueAttack, parameter.BlockCueRelease, WaveSquare, rate), 0.5)
	case CueClash:
		// Metallic ring: fundamental plus inharmonic overtone
		s = beep.Mix(
			newVolume(tone(1244, parameter.ClashCueDuration, parameter.ClashCueAttack, parameter.ClashCueRingRelease, WaveSine, rate), 0.7),
			newVolume(tone(3371, parameter.ClashCueDuration, parameter.ClashCueAttack, parameter.ClashCueOvertoneRelease, WaveSine, rate), 0.3),
		)
	case CueKick:
		s = tone(0, parameter.KickCueDuration, parameter.KickCueAttack, parameter.KickCueRelease, WaveNoise, rate)
	case CueJump:
		s = newVolume(tone(330, parameter.JumpCueDuration, parameter.JumpCueAttack, parameter.JumpCueRelease, WaveSine, rate), 0.6)
	case CueStart:
		s = fanfare(rate, 392.00, 523.25)
	case CueVictory:
		s = fanfare(rate, 523.25, 659.25, 783.99, 1046.50)
	case CueDefeat:
		s = fanfare(rate, 392.00, 311.13, 261.63)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// fanfare plays square notes in sequence, the last one held
func fanfare(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		if i == len(freqs)-1 {
			notes[i] = tone(f, parameter.FanfareLastDuration, parameter.FanfareAttack, parameter.FanfareLastRelease, WaveSquare, rate)
			continue
		}
		notes[i] = tone(f, parameter.FanfareNoteDuration, parameter.FanfareAttack, parameter.FanfareNoteRelease, WaveSquare, rate)
	}
	return newVolume(beep.Seq(notes...), 0.4)
}
