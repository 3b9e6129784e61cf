package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Manager owns the playback context and one player per sound. Players are
// rewound on replay, so a retrigger cuts off the previous instance.
type Manager struct {
	ctx     *audio.Context
	cache   *soundCache
	players [soundTypeCount]*audio.Player
	muted   bool
}

// NewManager creates the playback context and pre-renders every sound. ctx
// may be shared; pass nil to create a fresh context at SampleRate.
func NewManager(ctx *audio.Context) *Manager {
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	m := &Manager{
		ctx:   ctx,
		cache: newSoundCache(),
	}
	m.cache.preload()
	for st := SoundType(0); st < soundTypeCount; st++ {
		pcm := m.cache.get(st)
		if pcm == nil {
			continue
		}
		m.players[st] = m.ctx.NewPlayerFromBytes(pcm)
	}
	return m
}

// Play triggers one sound. No-op when muted or for unknown sounds.
func (m *Manager) Play(st SoundType) {
	if m.muted || st < 0 || st >= soundTypeCount {
		return
	}
	p := m.players[st]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// SetMuted toggles all playback.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
}

// Muted reports whether playback is disabled.
func (m *Manager) Muted() bool {
	return m.muted
}
