package linker

// State describes what currently occupies the link path.
type State int

const (
	// StateMissing means nothing exists at the link path.
	StateMissing State = iota
	// StateInstalled means the link path is a symlink to the resolved executable.
	StateInstalled
	// StateForeign means the link path is a symlink to some other target.
	StateForeign
	// StateNotSymlink means the link path is a regular file or directory.
	StateNotSymlink
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateInstalled:
		return "installed"
	case StateForeign:
		return "foreign"
	case StateNotSymlink:
		return "not-symlink"
	default:
		return "unknown"
	}
}
