package repo

import "mergington.edu/activities-backend/internal/model"

// seedActivities builds the initial Mergington High School offerings. Each
// call returns fresh slices so registries never share participant state.
func seedActivities() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball team for students of all skill levels",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Learn tennis techniques and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"alex@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Music Ensemble": {
			Description:     "Perform and collaborate with other student musicians",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop argumentation and public speaking skills through competitive debate",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific discoveries",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"ethan@mergington.edu", "grace@mergington.edu"},
		},
	}
}
