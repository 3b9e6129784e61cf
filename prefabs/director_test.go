package prefabs

import (
	"testing"

	"github.com/milk9111/dragon-runner/sim"
)

func TestDirectorStockWeights(t *testing.T) {
	d := NewDirector()
	if d.broken {
		t.Fatalf("shipped script failed to compile")
	}

	w := d.Weights(sim.Difficulty{DragonMult: 1})
	if w[sim.ObstacleRock] != 0.25 {
		t.Fatalf("rock weight = %v, want 0.25", w[sim.ObstacleRock])
	}
	if w[sim.ObstacleDragonRed] != 0.125 {
		t.Fatalf("red dragon weight = %v, want 0.125", w[sim.ObstacleDragonRed])
	}
}

func TestDirectorReactsToElapsed(t *testing.T) {
	d := NewDirector()
	if d.broken {
		t.Fatalf("shipped script failed to compile")
	}

	early := d.Weights(sim.Difficulty{Elapsed: 10, DragonMult: 1})
	late := d.Weights(sim.Difficulty{Elapsed: 200, DragonMult: 1})
	if late[sim.ObstacleBoulder] <= early[sim.ObstacleBoulder] {
		t.Fatalf("late boulder weight %v should exceed early %v", late[sim.ObstacleBoulder], early[sim.ObstacleBoulder])
	}
}

func TestDirectorPartialScriptKeepsDefaults(t *testing.T) {
	compiled, err := compileDirector([]byte(`out["rock"] = 0.5`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	d := &Director{fallback: sim.DefaultWeights(), compiled: compiled}

	w := d.Weights(sim.Difficulty{DragonMult: 1})
	if w[sim.ObstacleRock] != 0.5 {
		t.Fatalf("rock weight = %v, want scripted 0.5", w[sim.ObstacleRock])
	}
	if w[sim.ObstacleBarrel] != 0.20 {
		t.Fatalf("barrel weight = %v, want stock 0.20", w[sim.ObstacleBarrel])
	}
}

func TestDirectorBrokenScriptFallsBack(t *testing.T) {
	if _, err := compileDirector([]byte(`out[ :=`)); err == nil {
		t.Fatalf("garbage script should not compile")
	}

	d := &Director{fallback: sim.DefaultWeights(), broken: true}
	w := d.Weights(sim.Difficulty{DragonMult: 1})
	for k, want := range sim.DefaultWeights() {
		if w[k] != want {
			t.Fatalf("fallback weight for %s = %v, want %v", k, w[k], want)
		}
	}
}
