// Package storage defines the Storage interface, the contract any
// database backend must satisfy to keep volunteer registrations.
//
// Handlers depend only on this interface, so tests can hand them an
// in-memory fake and main.go decides which backend is used.
package storage

import (
	"errors"

	"github.com/aanand-mishra/ong-site/internal/types"
)

// ErrNotFound is returned when no volunteer has the requested id.
var ErrNotFound = errors.New("volunteer not found")

// Storage is the database contract.
type Storage interface {
	// CreateVolunteer inserts a registration and returns the generated
	// primary-key ID.
	CreateVolunteer(volunteer types.Volunteer) (int64, error)

	// GetVolunteerByID fetches a single registration. Returns an error
	// wrapping ErrNotFound when there is none.
	GetVolunteerByID(id int64) (types.Volunteer, error)

	// GetVolunteers returns every registration, oldest first. Returns an
	// empty slice (not nil) when there are none.
	GetVolunteers() ([]types.Volunteer, error)

	// DeleteVolunteerByID removes a registration permanently.
	DeleteVolunteerByID(id int64) error
}
