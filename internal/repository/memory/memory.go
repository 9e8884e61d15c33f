// Package memory keeps every repository in process memory. It backs the
// "memory" database driver and the handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/repository"
)

// Store holds all tables. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex

	users    []models.User
	patients map[uint]models.Patient
	doctors  []models.Doctor
	triggers []models.Trigger
	sessions map[string]models.Session

	nextUserID    uint
	nextPatientID uint
	nextDoctorID  uint

	// PingErr, when set, is returned by the probe.
	PingErr error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		patients: make(map[uint]models.Patient),
		sessions: make(map[string]models.Session),
	}
}

// Repositories exposes s through the repository interfaces.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:    (*users)(s),
		Patients: (*patients)(s),
		Doctors:  (*doctors)(s),
		Audit:    (*audit)(s),
		Sessions: (*sessions)(s),
		Probe:    (*probe)(s),
	}
}

// AddTrigger appends an audit row, standing in for the external writer.
func (s *Store) AddTrigger(t models.Trigger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.TID = uint(len(s.triggers) + 1)
	s.triggers = append(s.triggers, t)
}

// PatientCount returns the number of stored bookings.
func (s *Store) PatientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// UserCount returns the number of users with email.
func (s *Store) UserCount(email string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

type users Store

func (r *users) Find(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *users) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextUserID++
	user.ID = r.nextUserID
	r.users = append(r.users, *user)
	return nil
}

type patients Store

func (r *patients) Find(_ context.Context, pid uint) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patients[pid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *patients) List(_ context.Context, filter repository.PatientFilter, offset, limit int) ([]models.Patient, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Patient
	for _, p := range r.patients {
		if filter.Email != "" && p.Email != filter.Email {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PID < matched[j].PID })

	total := int64(len(matched))
	if offset < 0 || offset >= len(matched) {
		return nil, total, nil
	}
	end := len(matched)
	if limit >= 0 && limit < end-offset {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *patients) Insert(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextPatientID++
	patient.PID = r.nextPatientID
	r.patients[patient.PID] = *patient
	return nil
}

func (r *patients) Update(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.PID]; !ok {
		return repository.ErrNotFound
	}
	r.patients[patient.PID] = *patient
	return nil
}

func (r *patients) Delete(_ context.Context, pid uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[pid]; !ok {
		return repository.ErrNotFound
	}
	delete(r.patients, pid)
	return nil
}

type doctors Store

func (r *doctors) Insert(_ context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextDoctorID++
	doctor.DID = r.nextDoctorID
	r.doctors = append(r.doctors, *doctor)
	return nil
}

func (r *doctors) List(_ context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Doctor{}, r.doctors...), nil
}

func (r *doctors) FindByDeptOrName(_ context.Context, query string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.Dept == query || d.DoctorName == query {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

type audit Store

func (r *audit) List(_ context.Context) ([]models.Trigger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Trigger{}, r.triggers...), nil
}

type sessions Store

func (r *sessions) Find(_ context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *sessions) Insert(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessions) Revoke(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.IsRevoked = true
		r.sessions[id] = s
	}
	return nil
}

type probe Store

func (r *probe) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.PingErr
}
