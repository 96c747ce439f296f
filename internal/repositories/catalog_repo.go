package repositories

import (
	"github.com/abdullahramzi/Namaa/internal/models"
)

// CatalogRepository defines data access for the three purchasable
// collections. The cart ledger only reads through GetListing; the write
// methods serve the admin dashboard.
type CatalogRepository interface {
	GetServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	CreateService(service *models.Service) error
	UpdateService(service *models.Service) error
	DeleteService(id string) error

	GetCourses() ([]models.Course, error)
	GetCourseByID(id string) (*models.Course, error)
	CreateCourse(course *models.Course) error
	UpdateCourse(course *models.Course) error
	DeleteCourse(id string) error

	GetProjects() ([]models.Project, error)
	GetProjectByID(id string) (*models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(project *models.Project) error
	DeleteProject(id string) error

	// GetListing returns the shared pricing/display block of any item,
	// regardless of kind.
	GetListing(kind models.ItemKind, id string) (*models.Listing, error)

	AddReview(kind models.ItemKind, itemID string, review models.Review) error
	UpdateReview(kind models.ItemKind, itemID, reviewID, status, reply string) error
}
