// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the store.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when an email is not on the roster.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrAlreadyRegistered indicates the email is already on the roster.
	ErrAlreadyRegistered = errors.New("participant already signed up")
)

// RosterRepository captures roster storage operations.
type RosterRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// Service orchestrates signup workflows.
type Service struct {
	repo RosterRepository
}

// NewService constructs a Service.
func NewService(repo RosterRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns every activity keyed by name, rosters included.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup adds email to the named activity's roster and returns a
// confirmation message. Fails with ErrActivityNotFound or
// ErrAlreadyRegistered; no capacity check is performed.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// RemoveParticipant takes email off the named activity's roster and
// returns a confirmation message. Fails with ErrActivityNotFound or
// ErrParticipantNotFound.
func (s *Service) RemoveParticipant(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}
