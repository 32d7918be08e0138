package handlers

import (
	"net/http"

	catalogRepo "geecurly/database/repository/catalog"
	"geecurly/models"
	"geecurly/utils"

	"github.com/gin-gonic/gin"
)

// CatalogRepo is assigned during startup wiring.
var CatalogRepo catalogRepo.CatalogRepository

// GetServices returns the active service catalog.
func GetServices(c *gin.Context) {
	services, err := CatalogRepo.GetServices()
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load services")
		return
	}
	views := make([]models.ServiceView, 0, len(services))
	for _, svc := range services {
		views = append(views, svc.View())
	}
	utils.JSONData(c, http.StatusOK, views)
}

// GetStaff returns the available staff roster, optionally filtered by the
// "specialty" query parameter.
func GetStaff(c *gin.Context) {
	var (
		staff []models.StaffMember
		err   error
	)
	if specialty := c.Query("specialty"); specialty != "" {
		staff, err = CatalogRepo.GetStaffBySpecialty(specialty)
	} else {
		staff, err = CatalogRepo.GetStaff()
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load staff")
		return
	}
	utils.JSONData(c, http.StatusOK, staff)
}
