package catalogRepo

import "geecurly/models"

// CatalogRepository provides read access to the services and staff reference
// data plus the startup seeding hook.
type CatalogRepository interface {
	GetServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	GetStaff() ([]models.StaffMember, error)
	GetStaffByID(id string) (*models.StaffMember, error)
	GetStaffBySpecialty(category string) ([]models.StaffMember, error)
	EnsureSeedData() error
}
