package jobs

// State is the lifecycle phase of a Repository.
//
// Seeding and Loaded are only held while Initialize runs; callers observe
// Uninitialized before it and Ready after it (Uninitialized again if no key
// could be derived).
type State int

const (
	StateUninitialized State = iota
	StateSeeding
	StateLoaded
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSeeding:
		return "seeding"
	case StateLoaded:
		return "loaded"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
