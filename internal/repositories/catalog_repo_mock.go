package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
// It backs the storefront's mock catalog, seeded at startup.
type MockCatalogRepository struct {
	services map[string]models.Service
	courses  map[string]models.Course
	projects map[string]models.Project
	mu       sync.RWMutex
}

// NewMockCatalogRepository creates an empty in-memory catalog.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		services: make(map[string]models.Service),
		courses:  make(map[string]models.Course),
		projects: make(map[string]models.Project),
	}
}

// GetServices returns all services.
func (r *MockCatalogRepository) GetServices() ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		list = append(list, s)
	}
	return list, nil
}

// GetServiceByID returns a service by its ID.
func (r *MockCatalogRepository) GetServiceByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service with ID %s not found", id)
	}
	return &s, nil
}

// CreateService adds a new service, generating an ID when absent.
func (r *MockCatalogRepository) CreateService(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	r.services[service.ID] = *service
	return nil
}

// UpdateService replaces an existing service.
func (r *MockCatalogRepository) UpdateService(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[service.ID]; !ok {
		return fmt.Errorf("service with ID %s not found for update", service.ID)
	}
	r.services[service.ID] = *service
	return nil
}

// DeleteService removes a service by its ID.
func (r *MockCatalogRepository) DeleteService(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return fmt.Errorf("service with ID %s not found for deletion", id)
	}
	delete(r.services, id)
	return nil
}

// GetCourses returns all courses.
func (r *MockCatalogRepository) GetCourses() ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		list = append(list, c)
	}
	return list, nil
}

// GetCourseByID returns a course by its ID.
func (r *MockCatalogRepository) GetCourseByID(id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("course with ID %s not found", id)
	}
	return &c, nil
}

// CreateCourse adds a new course, generating an ID when absent.
func (r *MockCatalogRepository) CreateCourse(course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	r.courses[course.ID] = *course
	return nil
}

// UpdateCourse replaces an existing course.
func (r *MockCatalogRepository) UpdateCourse(course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[course.ID]; !ok {
		return fmt.Errorf("course with ID %s not found for update", course.ID)
	}
	r.courses[course.ID] = *course
	return nil
}

// DeleteCourse removes a course by its ID.
func (r *MockCatalogRepository) DeleteCourse(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return fmt.Errorf("course with ID %s not found for deletion", id)
	}
	delete(r.courses, id)
	return nil
}

// GetProjects returns all ready-made projects.
func (r *MockCatalogRepository) GetProjects() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p)
	}
	return list, nil
}

// GetProjectByID returns a project by its ID.
func (r *MockCatalogRepository) GetProjectByID(id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project with ID %s not found", id)
	}
	return &p, nil
}

// CreateProject adds a new project, generating an ID when absent.
func (r *MockCatalogRepository) CreateProject(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	r.projects[project.ID] = *project
	return nil
}

// UpdateProject replaces an existing project.
func (r *MockCatalogRepository) UpdateProject(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; !ok {
		return fmt.Errorf("project with ID %s not found for update", project.ID)
	}
	r.projects[project.ID] = *project
	return nil
}

// DeleteProject removes a project by its ID.
func (r *MockCatalogRepository) DeleteProject(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("project with ID %s not found for deletion", id)
	}
	delete(r.projects, id)
	return nil
}

// GetListing returns the shared listing block of an item of any kind.
func (r *MockCatalogRepository) GetListing(kind models.ItemKind, id string) (*models.Listing, error) {
	switch kind {
	case models.KindService:
		s, err := r.GetServiceByID(id)
		if err != nil {
			return nil, err
		}
		return &s.Listing, nil
	case models.KindCourse:
		c, err := r.GetCourseByID(id)
		if err != nil {
			return nil, err
		}
		return &c.Listing, nil
	case models.KindProject:
		p, err := r.GetProjectByID(id)
		if err != nil {
			return nil, err
		}
		return &p.Listing, nil
	default:
		return nil, fmt.Errorf("unknown item kind: %s", kind)
	}
}

// AddReview appends a review to the item of the given kind.
func (r *MockCatalogRepository) AddReview(kind models.ItemKind, itemID string, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case models.KindService:
		s, ok := r.services[itemID]
		if !ok {
			return fmt.Errorf("service with ID %s not found", itemID)
		}
		s.Reviews = append(s.Reviews, review)
		r.services[itemID] = s
	case models.KindCourse:
		c, ok := r.courses[itemID]
		if !ok {
			return fmt.Errorf("course with ID %s not found", itemID)
		}
		c.Reviews = append(c.Reviews, review)
		r.courses[itemID] = c
	case models.KindProject:
		p, ok := r.projects[itemID]
		if !ok {
			return fmt.Errorf("project with ID %s not found", itemID)
		}
		p.Reviews = append(p.Reviews, review)
		r.projects[itemID] = p
	default:
		return fmt.Errorf("unknown item kind: %s", kind)
	}
	return nil
}

// UpdateReview sets the moderation status and optional reply of one review.
func (r *MockCatalogRepository) UpdateReview(kind models.ItemKind, itemID, reviewID, status, reply string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	update := func(reviews []models.Review) bool {
		for i := range reviews {
			if reviews[i].ID == reviewID {
				if status != "" {
					reviews[i].Status = status
				}
				if reply != "" {
					reviews[i].AdminReply = reply
				}
				return true
			}
		}
		return false
	}

	var found bool
	switch kind {
	case models.KindService:
		s, ok := r.services[itemID]
		if !ok {
			return fmt.Errorf("service with ID %s not found", itemID)
		}
		found = update(s.Reviews)
		r.services[itemID] = s
	case models.KindCourse:
		c, ok := r.courses[itemID]
		if !ok {
			return fmt.Errorf("course with ID %s not found", itemID)
		}
		found = update(c.Reviews)
		r.courses[itemID] = c
	case models.KindProject:
		p, ok := r.projects[itemID]
		if !ok {
			return fmt.Errorf("project with ID %s not found", itemID)
		}
		found = update(p.Reviews)
		r.projects[itemID] = p
	default:
		return fmt.Errorf("unknown item kind: %s", kind)
	}
	if !found {
		return fmt.Errorf("review with ID %s not found", reviewID)
	}
	return nil
}
