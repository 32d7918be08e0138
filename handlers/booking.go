package handlers

import (
	"net/http"
	"strconv"

	"geecurly/models"
	"geecurly/services/booking"
	"geecurly/utils"

	"github.com/gin-gonic/gin"
)

// BookingSvc is assigned during startup wiring.
var BookingSvc booking.BookingService

// GetAvailability returns the open slots for
// ?date=YYYY-MM-DD&staff_id=<id>&duration_minutes=<n>. A serviceId may be
// passed instead of duration_minutes to derive the length from the catalog.
func GetAvailability(c *gin.Context) {
	staffID := c.Query("staff_id")
	if staffID == "" {
		staffID = c.Query("staffId")
	}
	date := c.Query("date")
	if staffID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "staff_id and date are required")
		return
	}

	var slots []string
	var err error
	if serviceID := c.Query("serviceId"); serviceID != "" {
		slots, err = BookingSvc.GetAvailability(c.Request.Context(), staffID, serviceID, date)
	} else {
		minutes, convErr := strconv.Atoi(c.Query("duration_minutes"))
		if convErr != nil || minutes <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "duration_minutes must be a positive integer (or pass serviceId instead)")
			return
		}
		slots, err = BookingSvc.GetAvailabilityForDuration(c.Request.Context(), staffID, minutes, date)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// CreateBooking persists a new appointment after a conflict check.
func CreateBooking(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := BookingSvc.CreateBooking(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, created)
}

// ListBookings returns every booking, newest first.
func ListBookings(c *gin.Context) {
	bookings, err := BookingSvc.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, bookings)
}

// GetBooking returns one booking by its reference.
func GetBooking(c *gin.Context) {
	b, err := BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, b)
}

// UpdateBooking changes a booking's status or notes.
func UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := BookingSvc.UpdateBooking(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, updated)
}
