package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/utils"
)

// DoctorHandler handles doctor registration and lookup.
type DoctorHandler struct {
	Doctors repository.DoctorRepository
	Log     zerolog.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(repos *repository.Repositories, logger zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{Doctors: repos.Doctors, Log: logger}
}

// DoctorRequest represents the doctor registration form.
type DoctorRequest struct {
	Email      string `form:"email" json:"email"`
	DoctorName string `form:"doctorname" json:"doctorname"`
	Dept       string `form:"dept" json:"dept"`
}

// ListDoctors returns every registered doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list doctors")
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}
	utils.Success(c, "Doctors fetched successfully", gin.H{"doctors": doctors})
}

// RegisterDoctor stores a doctor. Duplicates are accepted.
func (h *DoctorHandler) RegisterDoctor(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	doctor := models.Doctor{
		Email:      req.Email,
		DoctorName: req.DoctorName,
		Dept:       req.Dept,
	}
	if err := h.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		h.Log.Error().Err(err).Msg("failed to register doctor")
		utils.InternalServerError(c, "Failed to register doctor")
		return
	}

	utils.Flash(c, http.StatusCreated, utils.CategoryPrimary, "Information is Stored", doctor)
}

// SearchForm describes the search form.
func (h *DoctorHandler) SearchForm(c *gin.Context) {
	utils.Success(c, "Search by department or doctor name", nil)
}

// Search looks up the first doctor whose department or name equals the query.
func (h *DoctorHandler) Search(c *gin.Context) {
	query := c.PostForm("search")
	if query == "" && c.ContentType() == gin.MIMEJSON {
		var body struct {
			Search string `json:"search"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.BadRequest(c, "Invalid request payload: "+err.Error())
			return
		}
		query = body.Search
	}

	doctor, err := h.Doctors.FindByDeptOrName(c.Request.Context(), query)
	switch {
	case err == nil:
		utils.Flash(c, http.StatusOK, utils.CategoryInfo, "Doctor is Available", gin.H{
			"available": true,
			"doctor":    doctor,
		})
	case errors.Is(err, repository.ErrNotFound):
		utils.Flash(c, http.StatusOK, utils.CategoryDanger, "Doctor is Not Available", gin.H{
			"available": false,
		})
	default:
		h.Log.Error().Err(err).Msg("doctor search failed")
		utils.InternalServerError(c, "Database error")
	}
}
