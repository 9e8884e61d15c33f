package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/pagination"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/repository/memory"
)

func seededBookingHandler(t *testing.T, emails ...string) *BookingHandler {
	t.Helper()
	repos := memory.New().Repositories()
	for _, email := range emails {
		p := models.Patient{Email: email, Time: "10:00", Date: "2024-05-01", Number: "1234567890"}
		if err := repos.Patients.Insert(context.Background(), &p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewBookingHandler(repos, zerolog.Nop())
}

func TestListBookings_FiltersByEmailForNonDoctors(t *testing.T) {
	h := seededBookingHandler(t, "a@x.com", "b@x.com", "a@x.com")
	patient := &middleware.Identity{Email: "a@x.com", UserType: "Patient"}

	page, err := h.listBookings(context.Background(), patient, pagination.Params{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("expected 2 bookings, got %d", page.Total)
	}
	for _, p := range page.Items {
		if p.Email != "a@x.com" {
			t.Errorf("unexpected booking for %s", p.Email)
		}
	}
}

func TestListBookings_DoctorSeesEverything(t *testing.T) {
	h := seededBookingHandler(t, "a@x.com", "b@x.com", "c@x.com")
	doctor := &middleware.Identity{Email: "house@x.com", UserType: models.UserTypeDoctor}

	page, err := h.listBookings(context.Background(), doctor, pagination.Params{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 2 || !page.HasNext {
		t.Errorf("unexpected page %+v", page)
	}
	if page.Items[0].PID != 1 || page.Items[1].PID != 2 {
		t.Errorf("expected rows ordered by pid, got %d, %d", page.Items[0].PID, page.Items[1].PID)
	}
}

func TestListBookings_OutOfRange(t *testing.T) {
	h := seededBookingHandler(t, "a@x.com")
	doctor := &middleware.Identity{UserType: models.UserTypeDoctor}

	for _, n := range []int{0, -1, 2} {
		_, err := h.listBookings(context.Background(), doctor, pagination.Params{Page: n, PerPage: 10})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("page %d: expected ErrNotFound, got %v", n, err)
		}
	}
}

func TestListBookings_HugePageIsNotFound(t *testing.T) {
	h := seededBookingHandler(t, "a@x.com")
	doctor := &middleware.Identity{UserType: models.UserTypeDoctor}

	_, err := h.listBookings(context.Background(), doctor, pagination.Params{Page: 1000000000000000000, PerPage: 10})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
