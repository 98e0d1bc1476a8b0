package session

import "wallpaper/internal/domain"

// Phase classifies a State for display purposes.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseResult:
		return "result"
	default:
		return "idle"
	}
}

// State is a snapshot of one user's session. Error and Image are never both set.
type State struct {
	Prompt    string
	Device    domain.DeviceProfile
	IsLoading bool
	Error     string
	Image     string
	// Generation numbers the most recently admitted request.
	Generation uint64
}

// NewState returns the state a session starts in.
func NewState() State {
	return State{Device: domain.DefaultDevice}
}

func (s State) Phase() Phase {
	switch {
	case s.IsLoading:
		return PhaseLoading
	case s.Error != "":
		return PhaseError
	case s.Image != "":
		return PhaseResult
	default:
		return PhaseIdle
	}
}

// AspectRatio is the ratio a generate issued now would request.
func (s State) AspectRatio() domain.AspectRatio {
	return domain.AspectRatioFor(s.Device)
}
