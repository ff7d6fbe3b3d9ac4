package model

// Activity is an extracurricular offering. The activity name is the registry
// key and is deliberately not duplicated as a field here.
type Activity struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule"`

	// MaxParticipants is advisory capacity: it is served to clients but no
	// rule rejects a signup against it.
	MaxParticipants int `json:"max_participants"`

	// Participants holds unique student emails in signup order.
	Participants []string `json:"participants"`
}

// Clone returns a deep copy so callers can hand out activities without
// sharing the participants slice with the live registry.
func (a *Activity) Clone() *Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
