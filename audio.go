package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"linebattle/game"
)

const (
	sampleRate          = 44100
	audioChannels       = 2
	audioBytesPerSample = 2
)

// soundID identifies a synthesized sound effect
type soundID int

const (
	soundBoundary   soundID = iota // wall rebound thud
	soundCollision                 // player-player bump
	soundCapture                   // line captured or stolen
	soundEliminated                // player knocked out
	soundEndAlert                  // final-seconds warning
	soundCount
)

// soundBank holds pre-rendered PCM tones for each simulation event. Effects
// are short enough that a fresh player per trigger is fine.
type soundBank struct {
	ctx   *audio.Context
	tones [soundCount][]byte
	muted bool
}

// newSoundBank synthesizes the effect tones. A muted bank skips audio
// context creation entirely.
func newSoundBank(muted bool) *soundBank {
	b := &soundBank{muted: muted}
	if muted {
		return b
	}

	b.ctx = audio.NewContext(sampleRate)
	b.tones[soundBoundary] = synthTone(110, 0.06, 0.35)
	b.tones[soundCollision] = synthTone(220, 0.09, 0.5)
	b.tones[soundCapture] = synthTone(880, 0.07, 0.4)
	b.tones[soundEliminated] = synthTone(160, 0.30, 0.5)
	b.tones[soundEndAlert] = synthTone(660, 0.40, 0.5)
	return b
}

// synthTone renders a decaying sine tone as 16-bit stereo PCM
func synthTone(freq, duration, volume float64) []byte {
	frames := int(duration * sampleRate)
	buf := make([]byte, frames*audioChannels*audioBytesPerSample)

	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		envelope := 1 - float64(i)/float64(frames)
		sample := int16(math.Sin(2*math.Pi*freq*t) * envelope * volume * 32000)

		base := i * audioChannels * audioBytesPerSample
		for ch := 0; ch < audioChannels; ch++ {
			off := base + ch*audioBytesPerSample
			buf[off] = byte(sample)
			buf[off+1] = byte(sample >> 8)
		}
	}
	return buf
}

// play fires one effect
func (b *soundBank) play(id soundID) {
	if b.muted || b.ctx == nil {
		return
	}
	b.ctx.NewPlayerFromBytes(b.tones[id]).Play()
}

// handle maps a simulation event to its effect
func (b *soundBank) handle(event game.Event) {
	switch event.Kind {
	case game.EventBoundaryBounce:
		b.play(soundBoundary)
	case game.EventPlayerCollision:
		b.play(soundCollision)
	case game.EventLineCaptured:
		b.play(soundCapture)
	case game.EventPlayerEliminated:
		b.play(soundEliminated)
	case game.EventEndgameAlert:
		b.play(soundEndAlert)
	}
}
