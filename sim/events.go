package sim

// EventKind identifies a discrete simulation event that collaborators (audio,
// HUD) react to.
type EventKind int

const (
	EventJump EventKind = iota
	EventDoubleJump
	EventSlash
	EventHit
	EventPowerUp
	EventMilestone
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventDoubleJump:
		return "double_jump"
	case EventSlash:
		return "slash"
	case EventHit:
		return "hit"
	case EventPowerUp:
		return "powerup"
	case EventMilestone:
		return "milestone"
	default:
		return "?"
	}
}

// Events is a simple FIFO queue drained once per frame.
type Events struct {
	items []EventKind
}

// Push adds an event.
func (q *Events) Push(kind EventKind) {
	if q == nil {
		return
	}
	q.items = append(q.items, kind)
}

// Drain returns all events and clears the queue.
func (q *Events) Drain() []EventKind {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
