// Package store provides the in-memory roster store.
package store

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// MemoryStore keeps all activities in memory. Mutations are guarded by a
// RWMutex so concurrent signup and removal on the same activity cannot
// lose updates. State resets to the seed on process restart.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// New constructs a store populated from the given seed. The seed is
// copied; callers may keep and reuse it.
func New(seed Seed) *MemoryStore {
	s := &MemoryStore{activities: make(map[string]domain.Activity, len(seed))}
	for name, activity := range seed {
		s.activities[name] = activity.Clone()
		observability.SetRosterSize(name, len(activity.Participants))
	}
	return s
}

// List implements domain.RosterRepository. Returned records are deep
// copies and never alias live rosters.
func (s *MemoryStore) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// AddParticipant appends email to the activity's roster, preserving
// signup order and rejecting duplicates. MaxParticipants is not
// enforced.
func (s *MemoryStore) AddParticipant(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, existing := range activity.Participants {
		if existing == email {
			return domain.ErrAlreadyRegistered
		}
	}

	activity.Participants = append(activity.Participants, email)
	s.activities[activityName] = activity

	observability.RecordSignup(activityName)
	observability.SetRosterSize(activityName, len(activity.Participants))
	return nil
}

// RemoveParticipant deletes email from the activity's roster, keeping
// the order of the remaining participants.
func (s *MemoryStore) RemoveParticipant(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	index := -1
	for i, existing := range activity.Participants {
		if existing == email {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.ErrParticipantNotFound
	}

	activity.Participants = append(activity.Participants[:index], activity.Participants[index+1:]...)
	s.activities[activityName] = activity

	observability.RecordRemoval(activityName)
	observability.SetRosterSize(activityName, len(activity.Participants))
	return nil
}
