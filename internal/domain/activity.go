package domain

// Activity is an extracurricular offering with its live roster.
// Participants keep signup order and never contain the same email twice.
// MaxParticipants is advisory metadata; signup does not enforce it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a copy whose participant slice does not alias the
// original roster.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
