package types

// UserID represents a Slack user identifier (e.g., "U01ABCDEF")
type UserID string

// String returns the string representation of the user ID
func (x UserID) String() string {
	return string(x)
}

// Presence represents a user presence state reported by the Slack API.
// The API contract only guarantees "active" and "away"; any other value
// is preserved as-is and treated as non-active by the analyzer.
type Presence string

const (
	PresenceActive Presence = "active"
	PresenceAway   Presence = "away"
)

// IsActive checks if the presence state is "active"
func (p Presence) IsActive() bool {
	return p == PresenceActive
}

// IsAway checks if the presence state is "away"
func (p Presence) IsAway() bool {
	return p == PresenceAway
}

// String returns the string representation of the presence state
func (p Presence) String() string {
	return string(p)
}
