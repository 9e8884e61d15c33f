package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/pagination"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/utils"
)

// BookingHandler handles appointment bookings.
type BookingHandler struct {
	Patients repository.PatientRepository
	Doctors  repository.DoctorRepository
	Log      zerolog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(repos *repository.Repositories, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{Patients: repos.Patients, Doctors: repos.Doctors, Log: logger}
}

// BookingRequest represents the booking form. Time and date map to non-null columns.
type BookingRequest struct {
	Email   string `form:"email" json:"email"`
	Name    string `form:"name" json:"name"`
	Gender  string `form:"gender" json:"gender"`
	Slot    string `form:"slot" json:"slot"`
	Disease string `form:"disease" json:"disease"`
	Time    string `form:"time" json:"time" validate:"required"`
	Date    string `form:"date" json:"date" validate:"required"`
	Dept    string `form:"dept" json:"dept"`
	Number  string `form:"number" json:"number"`
}

func (r *BookingRequest) apply(p *models.Patient) {
	p.Email = r.Email
	p.Name = r.Name
	p.Gender = r.Gender
	p.Slot = r.Slot
	p.Disease = r.Disease
	p.Time = r.Time
	p.Date = r.Date
	p.Dept = r.Dept
	p.Number = r.Number
}

// BookingForm returns the doctors a booking can be made with.
func (h *BookingHandler) BookingForm(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list doctors")
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}
	utils.Success(c, "Book an appointment", gin.H{"doctors": doctors})
}

// CreateBooking handles a booking form submission.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	ctx := c.Request.Context()
	doctors, err := h.Doctors.List(ctx)
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list doctors")
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}

	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if !models.ValidPhoneNumber(req.Number) {
		utils.Flash(c, http.StatusBadRequest, utils.CategoryWarning, "Please provide a 10-digit number", gin.H{"doctors": doctors})
		return
	}
	if err := utils.Validate(&req); err != nil {
		utils.BadRequest(c, "Validation failed: "+utils.FormatValidationError(err))
		return
	}

	var patient models.Patient
	req.apply(&patient)
	if err := h.Patients.Insert(ctx, &patient); err != nil {
		h.Log.Error().Err(err).Msg("failed to create booking")
		utils.InternalServerError(c, "Failed to create booking")
		return
	}

	utils.Flash(c, http.StatusCreated, utils.CategoryInfo, "Booking Confirmed", gin.H{
		"booking": patient,
		"doctors": doctors,
	})
}

// ListBookings returns one page of bookings visible to the current user.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginURL(c.Request.URL.RequestURI()))
		return
	}

	params := pagination.FromContext(c, pagination.DefaultPerPage)
	page, err := h.listBookings(c.Request.Context(), identity, params)
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(c, "Page not found")
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list bookings")
		utils.InternalServerError(c, "Failed to fetch bookings")
		return
	}

	utils.Success(c, "Bookings fetched successfully", page)
}

// listBookings shows doctors every booking and everyone else only the
// bookings made under their own email.
func (h *BookingHandler) listBookings(ctx context.Context, identity *middleware.Identity, params pagination.Params) (*pagination.Page[models.Patient], error) {
	if !params.Reachable() {
		return nil, repository.ErrNotFound
	}

	var filter repository.PatientFilter
	if !identity.IsDoctor() {
		filter.Email = identity.Email
	}

	items, total, err := h.Patients.List(ctx, filter, params.Offset(), params.PerPage)
	if err != nil {
		return nil, err
	}
	if params.OutOfRange(len(items)) {
		return nil, repository.ErrNotFound
	}
	return pagination.NewPage(items, params, total), nil
}

// EditForm returns the booking being edited.
func (h *BookingHandler) EditForm(c *gin.Context) {
	patient, ok := h.loadBooking(c)
	if !ok {
		return
	}
	utils.Success(c, "Edit booking", patient)
}

// UpdateBooking overwrites every field of a booking. An absent disease
// becomes an empty string; the phone number is not length-checked here.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	patient, ok := h.loadBooking(c)
	if !ok {
		return
	}

	var req BookingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	req.apply(patient)

	if err := h.Patients.Update(c.Request.Context(), patient); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Booking not found")
			return
		}
		h.Log.Error().Err(err).Uint("pid", patient.PID).Msg("failed to update booking")
		utils.InternalServerError(c, "Failed to update booking")
		return
	}

	h.Log.Info().Uint("pid", patient.PID).Msg("slot updated")
	utils.SeeOther(c, "/bookings")
}

// DeleteBooking removes a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	patient, ok := h.loadBooking(c)
	if !ok {
		return
	}

	if err := h.Patients.Delete(c.Request.Context(), patient.PID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Booking not found")
			return
		}
		h.Log.Error().Err(err).Uint("pid", patient.PID).Msg("failed to delete booking")
		utils.InternalServerError(c, "Failed to delete booking")
		return
	}

	h.Log.Info().Uint("pid", patient.PID).Msg("slot deleted")
	utils.SeeOther(c, "/bookings")
}

// loadBooking resolves the :pid parameter, answering 404 for a malformed or unknown pid.
func (h *BookingHandler) loadBooking(c *gin.Context) (*models.Patient, bool) {
	pid, err := strconv.ParseUint(c.Param("pid"), 10, 64)
	if err != nil {
		utils.NotFound(c, "Booking not found")
		return nil, false
	}

	patient, err := h.Patients.Find(c.Request.Context(), uint(pid))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Booking not found")
		} else {
			h.Log.Error().Err(err).Uint64("pid", pid).Msg("failed to load booking")
			utils.InternalServerError(c, "Database error")
		}
		return nil, false
	}
	return patient, true
}
