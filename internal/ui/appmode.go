package ui

// AppMode is the top-level application state.
type AppMode int

const (
	ModeLoading AppMode = iota // catalog fetch in flight
	ModeReady
	ModeFailed // catalog could not be loaded; any key exits
)

func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeReady:
		return "Ready"
	case ModeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
