package store

import (
	"encoding/json"
	"fmt"
	"os"

	"example.com/activities/internal/domain"
)

// Seed is the initial dataset the store is constructed from.
type Seed map[string]domain.Activity

// LoadSeedFile reads a JSON seed file mapping activity name to record.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed returns the built-in school activity catalog.
func DefaultSeed() Seed {
	return Seed{
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in inter-school matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice basketball skills and participate in tournaments",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "mia@mergington.edu"},
		},
		"Art Club": {
			Description:     "Express creativity through painting, drawing, and mixed media",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lily@mergington.edu", "ethan@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in plays and develop acting and stagecraft skills",
			Schedule:        "Thursdays, 3:30 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"liam@mergington.edu", "isabella@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills through competitive debates",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"william@mergington.edu", "charlotte@mergington.edu"},
		},
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
	}
}
