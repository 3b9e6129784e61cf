package sim

// OutcomeKind classifies the resolution of one overlapping entity.
type OutcomeKind int

const (
	// OutcomePickup collects a power-up: apply it, remove the ticket, no damage.
	OutcomePickup OutcomeKind = iota
	// OutcomeShatter destroys the obstacle silently (invincible pass-through).
	OutcomeShatter
	// OutcomeHit defeats the player.
	OutcomeHit
)

// Resolution is one collision outcome produced by Test. Exactly one of
// Obstacle/Pickup is set.
type Resolution struct {
	Kind     OutcomeKind
	Obstacle *Obstacle
	Pickup   *PowerUp
}

// CollisionEngine performs the two-stage test: an axis-aligned bounding-box
// pre-check rejects the vast majority of pairs, and only overlapping pairs
// pay for the pixel-mask intersection.
type CollisionEngine struct {
	// MaskTests counts mask intersection tests performed, for
	// instrumentation. A pair whose boxes do not overlap never increments it.
	MaskTests int
}

func NewCollisionEngine() *CollisionEngine {
	return &CollisionEngine{}
}

// Test resolves the player against all live obstacles and pickups for one
// frame. Outcomes are independent per entity, so resolution order does not
// affect the final player state.
func (c *CollisionEngine) Test(p *Player, obstacles []*Obstacle, pickups []*PowerUp) []Resolution {
	var out []Resolution

	pBox := p.AABB()
	pMask := p.Mask()

	for _, pu := range pickups {
		box := pu.AABB()
		if !pBox.Intersects(&box) {
			continue
		}
		if !c.masksOverlap(pMask, pBox.X, pBox.Y, pu.Mask(), box.X, box.Y) {
			continue
		}
		out = append(out, Resolution{Kind: OutcomePickup, Pickup: pu})
	}

	for _, o := range obstacles {
		box := o.AABB()
		if !pBox.Intersects(&box) {
			continue
		}
		if !c.masksOverlap(pMask, pBox.X, pBox.Y, o.Mask(), box.X, box.Y) {
			continue
		}
		if p.Invincible() {
			out = append(out, Resolution{Kind: OutcomeShatter, Obstacle: o})
		} else {
			out = append(out, Resolution{Kind: OutcomeHit, Obstacle: o})
		}
	}
	return out
}

func (c *CollisionEngine) masksOverlap(a *Mask, ax, ay float64, b *Mask, bx, by float64) bool {
	c.MaskTests++
	return a.Overlaps(b, int(bx-ax), int(by-ay))
}
