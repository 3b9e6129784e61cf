package prefabs

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/dragon-runner/sim"
)

// Director is a scripted spawn-weight source. The script sees the current
// difficulty through globals and writes its weight table to the global `out`;
// anything it leaves out falls back to the stock weight. A script error
// downgrades the director to the stock table for the rest of the run.
type Director struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
	fallback sim.StaticWeights
	broken   bool
}

const directorScript = "spawn_weights.tengo"

// NewDirector compiles the spawn-weight script. A missing or broken script is
// not fatal; the director starts in fallback mode.
func NewDirector() *Director {
	d := &Director{fallback: sim.DefaultWeights()}

	src, err := LoadScript(directorScript)
	if err != nil {
		log.Printf("director: load %s: %v (using stock weights)", directorScript, err)
		d.broken = true
		return d
	}

	compiled, err := compileDirector(src)
	if err != nil {
		log.Printf("director: compile %s: %v (using stock weights)", directorScript, err)
		d.broken = true
		return d
	}

	d.compiled = compiled
	return d
}

func compileDirector(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("__elapsed", 0.0)
	_ = script.Add("__speed", 0.0)
	_ = script.Add("__dragon_mult", 1.0)
	_ = script.Add("out", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	return script.Compile()
}

// Reload recompiles the script from disk. Used by the debug watcher.
func (d *Director) Reload() error {
	src, err := LoadScript(directorScript)
	if err != nil {
		return fmt.Errorf("director: load %s: %w", directorScript, err)
	}
	compiled, err := compileDirector(src)
	if err != nil {
		return fmt.Errorf("director: compile %s: %w", directorScript, err)
	}

	d.mu.Lock()
	d.compiled = compiled
	d.broken = false
	d.mu.Unlock()
	return nil
}

// Weights implements sim.WeightSource.
func (d *Director) Weights(diff sim.Difficulty) map[sim.ObstacleKind]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.broken || d.compiled == nil {
		return d.fallback.Weights(diff)
	}

	c := d.compiled.Clone()
	if err := firstErr(
		c.Set("__elapsed", diff.Elapsed),
		c.Set("__speed", diff.Speed),
		c.Set("__dragon_mult", diff.DragonMult),
	); err != nil {
		d.breakWith(err)
		return d.fallback.Weights(diff)
	}
	if err := c.Run(); err != nil {
		d.breakWith(err)
		return d.fallback.Weights(diff)
	}

	raw, ok := c.Get("out").Value().(map[string]any)
	if !ok {
		d.breakWith(fmt.Errorf("script global out is not a map"))
		return d.fallback.Weights(diff)
	}

	weights := make(map[sim.ObstacleKind]float64, int(sim.ObstacleKindCount))
	for k := sim.ObstacleKind(0); k < sim.ObstacleKindCount; k++ {
		weights[k] = d.fallback[k]
		v, ok := raw[k.String()]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			weights[k] = n
		case int64:
			weights[k] = float64(n)
		case int:
			weights[k] = float64(n)
		}
	}
	return weights
}

func (d *Director) breakWith(err error) {
	log.Printf("director: %v (using stock weights)", err)
	d.broken = true
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
