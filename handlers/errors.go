package handlers

import (
	"errors"
	"net/http"

	"geecurly/services/booking"
	"geecurly/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto HTTP statuses and the standard
// response envelope.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		notFoundErr   *booking.NotFoundError
		conflictErr   *booking.ConflictError
		transientErr  *booking.TransientError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Message)
	case errors.As(err, &transientErr):
		utils.JSONError(c, http.StatusServiceUnavailable, transientErr.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
