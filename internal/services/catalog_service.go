package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
)

// CatalogService handles business logic for the catalog: public reads with
// substring search, admin CRUD, and review submission/moderation.
type CatalogService struct {
	repo     repositories.CatalogRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewCatalogService creates a new CatalogService. A nil clock defaults to
// time.Now.
func NewCatalogService(repo repositories.CatalogRepository, now func() time.Time) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{
		repo:     repo,
		validate: validator.New(),
		now:      now,
	}
}

// matchesQuery reports whether the listing matches a case-insensitive
// substring query in either locale.
func matchesQuery(l *models.Listing, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.TitleEn), q) ||
		strings.Contains(l.TitleAr, query) ||
		strings.Contains(strings.ToLower(l.DescriptionEn), q) ||
		strings.Contains(l.DescriptionAr, query)
}

// ListServices returns services, filtered by an optional substring query.
func (s *CatalogService) ListServices(query string) ([]models.Service, error) {
	all, err := s.repo.GetServices()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}
	filtered := make([]models.Service, 0, len(all))
	for _, item := range all {
		if matchesQuery(&item.Listing, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetServiceByID retrieves a single service.
func (s *CatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.repo.GetServiceByID(id)
}

// CreateService validates and stores a new service.
func (s *CatalogService) CreateService(service *models.Service) error {
	if err := s.validate.Struct(service); err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}
	return s.repo.CreateService(service)
}

// UpdateService validates and replaces an existing service.
func (s *CatalogService) UpdateService(service *models.Service) error {
	if err := s.validate.Struct(service); err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}
	return s.repo.UpdateService(service)
}

// DeleteService removes a service.
func (s *CatalogService) DeleteService(id string) error {
	return s.repo.DeleteService(id)
}

// ListCourses returns courses, filtered by an optional substring query.
func (s *CatalogService) ListCourses(query string) ([]models.Course, error) {
	all, err := s.repo.GetCourses()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}
	filtered := make([]models.Course, 0, len(all))
	for _, item := range all {
		if matchesQuery(&item.Listing, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetCourseByID retrieves a single course.
func (s *CatalogService) GetCourseByID(id string) (*models.Course, error) {
	return s.repo.GetCourseByID(id)
}

// CreateCourse validates and stores a new course.
func (s *CatalogService) CreateCourse(course *models.Course) error {
	if err := s.validate.Struct(course); err != nil {
		return fmt.Errorf("invalid course: %w", err)
	}
	return s.repo.CreateCourse(course)
}

// UpdateCourse validates and replaces an existing course.
func (s *CatalogService) UpdateCourse(course *models.Course) error {
	if err := s.validate.Struct(course); err != nil {
		return fmt.Errorf("invalid course: %w", err)
	}
	return s.repo.UpdateCourse(course)
}

// DeleteCourse removes a course.
func (s *CatalogService) DeleteCourse(id string) error {
	return s.repo.DeleteCourse(id)
}

// ListProjects returns projects, filtered by an optional substring query.
func (s *CatalogService) ListProjects(query string) ([]models.Project, error) {
	all, err := s.repo.GetProjects()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}
	filtered := make([]models.Project, 0, len(all))
	for _, item := range all {
		if matchesQuery(&item.Listing, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetProjectByID retrieves a single project.
func (s *CatalogService) GetProjectByID(id string) (*models.Project, error) {
	return s.repo.GetProjectByID(id)
}

// CreateProject validates and stores a new project.
func (s *CatalogService) CreateProject(project *models.Project) error {
	if err := s.validate.Struct(project); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	return s.repo.CreateProject(project)
}

// UpdateProject validates and replaces an existing project.
func (s *CatalogService) UpdateProject(project *models.Project) error {
	if err := s.validate.Struct(project); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	return s.repo.UpdateProject(project)
}

// DeleteProject removes a project.
func (s *CatalogService) DeleteProject(id string) error {
	return s.repo.DeleteProject(id)
}

// GetListing returns the shared pricing/display block of any catalog item.
func (s *CatalogService) GetListing(kind models.ItemKind, id string) (*models.Listing, error) {
	if !models.ValidKinds[kind] {
		return nil, fmt.Errorf("unknown item kind: %s", kind)
	}
	return s.repo.GetListing(kind, id)
}

// SubmitReview validates a visitor review and attaches it to the item in
// pending state, awaiting moderation.
func (s *CatalogService) SubmitReview(kind models.ItemKind, itemID string, review models.Review) (*models.Review, error) {
	if !models.ValidKinds[kind] {
		return nil, fmt.Errorf("unknown item kind: %s", kind)
	}
	review.ID = uuid.New().String()
	review.Date = s.now().Format(dateLayout)
	review.Status = models.ReviewPending
	review.AdminReply = ""
	if err := s.validate.Struct(&review); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}
	if err := s.repo.AddReview(kind, itemID, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ModerateReview applies an admin action to a review: "approve", "reject",
// or "reply" with the given reply text.
func (s *CatalogService) ModerateReview(kind models.ItemKind, itemID, reviewID, action, reply string) error {
	if !models.ValidKinds[kind] {
		return fmt.Errorf("unknown item kind: %s", kind)
	}
	switch action {
	case "approve":
		return s.repo.UpdateReview(kind, itemID, reviewID, models.ReviewApproved, "")
	case "reject":
		return s.repo.UpdateReview(kind, itemID, reviewID, models.ReviewRejected, "")
	case "reply":
		if reply == "" {
			return fmt.Errorf("reply text is required")
		}
		return s.repo.UpdateReview(kind, itemID, reviewID, "", reply)
	default:
		return fmt.Errorf("invalid review action: %s", action)
	}
}
