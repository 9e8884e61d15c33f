package repository

import (
	"context"
	"errors"

	"hospital-booking-server/internal/models"
)

var (
	// ErrNotFound is returned when a lookup by key or filter matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository stores accounts. Users are append-only.
type UserRepository interface {
	Find(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// PatientFilter narrows a booking listing. The zero value matches every row.
type PatientFilter struct {
	Email string
}

// PatientRepository stores bookings.
type PatientRepository interface {
	Find(ctx context.Context, pid uint) (*models.Patient, error)
	// List returns rows ordered by pid together with the total number of matching rows.
	List(ctx context.Context, filter PatientFilter, offset, limit int) ([]models.Patient, int64, error)
	Insert(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, pid uint) error
}

// DoctorRepository stores registered doctors. Doctors are append-only.
type DoctorRepository interface {
	Insert(ctx context.Context, doctor *models.Doctor) error
	List(ctx context.Context) ([]models.Doctor, error)
	// FindByDeptOrName returns the first doctor, by did, whose dept or name equals query.
	FindByDeptOrName(ctx context.Context, query string) (*models.Doctor, error)
}

// AuditRepository reads the externally written trigr table.
type AuditRepository interface {
	List(ctx context.Context) ([]models.Trigger, error)
}

// SessionRepository stores login sessions.
type SessionRepository interface {
	Find(ctx context.Context, id string) (*models.Session, error)
	Insert(ctx context.Context, session *models.Session) error
	Revoke(ctx context.Context, id string) error
}

// Prober runs a trivial query to check that the store answers.
type Prober interface {
	Ping(ctx context.Context) error
}

// Repositories bundles every store the handlers need.
type Repositories struct {
	Users    UserRepository
	Patients PatientRepository
	Doctors  DoctorRepository
	Audit    AuditRepository
	Sessions SessionRepository
	Probe    Prober
}
