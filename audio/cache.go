package audio

import "sync"

// soundCache stores pre-rendered PCM per sound.
type soundCache struct {
	mu    sync.RWMutex
	store [soundTypeCount][]byte
	ready [soundTypeCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached PCM, rendering on first use.
func (c *soundCache) get(st SoundType) []byte {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready[st] {
		return c.store[st]
	}

	buf := Synthesize(st)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload renders every sound up front so playback never synthesizes.
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}
