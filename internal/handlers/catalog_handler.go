package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/services"
)

// CatalogHandler handles HTTP requests for services, courses, and ready-made
// projects, including visitor reviews and the admin CRUD surface.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	srv := router.Group("/services")
	srv.Get("/", h.HandleListServices)
	srv.Get("/:id", h.HandleGetService)
	srv.Post("/:id/reviews", h.handleSubmitReview(models.KindService))

	crs := router.Group("/courses")
	crs.Get("/", h.HandleListCourses)
	crs.Get("/:id", h.HandleGetCourse)
	crs.Post("/:id/reviews", h.handleSubmitReview(models.KindCourse))

	prj := router.Group("/projects")
	prj.Get("/", h.HandleListProjects)
	prj.Get("/:id", h.HandleGetProject)
	prj.Post("/:id/reviews", h.handleSubmitReview(models.KindProject))
}

// RegisterAdminRoutes registers the catalog management routes.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/services", h.HandleCreateService)
	router.Put("/services/:id", h.HandleUpdateService)
	router.Delete("/services/:id", h.HandleDeleteService)

	router.Post("/courses", h.HandleCreateCourse)
	router.Put("/courses/:id", h.HandleUpdateCourse)
	router.Delete("/courses/:id", h.HandleDeleteCourse)

	router.Post("/projects", h.HandleCreateProject)
	router.Put("/projects/:id", h.HandleUpdateProject)
	router.Delete("/projects/:id", h.HandleDeleteProject)

	router.Patch("/:kind/:itemId/reviews/:reviewId", h.HandleModerateReview)
}

func notFoundOrInternal(c *fiber.Ctx, err error, message string) error {
	if strings.Contains(err.Error(), "not found") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// HandleListServices lists services, optionally filtered by ?q=.
func (h *CatalogHandler) HandleListServices(c *fiber.Ctx) error {
	items, err := h.service.ListServices(c.Query("q"))
	if err != nil {
		log.Printf("Error listing services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve services",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetService retrieves a single service by its ID.
func (h *CatalogHandler) HandleGetService(c *fiber.Ctx) error {
	item, err := h.service.GetServiceByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Could not retrieve service")
	}
	return c.JSON(item)
}

// HandleCreateService creates a new service.
func (h *CatalogHandler) HandleCreateService(c *fiber.Ctx) error {
	var item models.Service
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateService(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create service",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateService replaces an existing service.
func (h *CatalogHandler) HandleUpdateService(c *fiber.Ctx) error {
	var item models.Service
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = c.Params("id")
	if err := h.service.UpdateService(&item); err != nil {
		return notFoundOrInternal(c, err, "Could not update service")
	}
	return c.JSON(item)
}

// HandleDeleteService removes a service.
func (h *CatalogHandler) HandleDeleteService(c *fiber.Ctx) error {
	if err := h.service.DeleteService(c.Params("id")); err != nil {
		return notFoundOrInternal(c, err, "Could not delete service")
	}
	return c.JSON(fiber.Map{"message": "Service deleted"})
}

// HandleListCourses lists courses, optionally filtered by ?q=.
func (h *CatalogHandler) HandleListCourses(c *fiber.Ctx) error {
	items, err := h.service.ListCourses(c.Query("q"))
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve courses",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetCourse retrieves a single course by its ID.
func (h *CatalogHandler) HandleGetCourse(c *fiber.Ctx) error {
	item, err := h.service.GetCourseByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Could not retrieve course")
	}
	return c.JSON(item)
}

// HandleCreateCourse creates a new course.
func (h *CatalogHandler) HandleCreateCourse(c *fiber.Ctx) error {
	var item models.Course
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateCourse(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create course",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateCourse replaces an existing course.
func (h *CatalogHandler) HandleUpdateCourse(c *fiber.Ctx) error {
	var item models.Course
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = c.Params("id")
	if err := h.service.UpdateCourse(&item); err != nil {
		return notFoundOrInternal(c, err, "Could not update course")
	}
	return c.JSON(item)
}

// HandleDeleteCourse removes a course.
func (h *CatalogHandler) HandleDeleteCourse(c *fiber.Ctx) error {
	if err := h.service.DeleteCourse(c.Params("id")); err != nil {
		return notFoundOrInternal(c, err, "Could not delete course")
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}

// HandleListProjects lists ready-made projects, optionally filtered by ?q=.
func (h *CatalogHandler) HandleListProjects(c *fiber.Ctx) error {
	items, err := h.service.ListProjects(c.Query("q"))
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve projects",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetProject retrieves a single project by its ID.
func (h *CatalogHandler) HandleGetProject(c *fiber.Ctx) error {
	item, err := h.service.GetProjectByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Could not retrieve project")
	}
	return c.JSON(item)
}

// HandleCreateProject creates a new project.
func (h *CatalogHandler) HandleCreateProject(c *fiber.Ctx) error {
	var item models.Project
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateProject(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create project",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateProject replaces an existing project.
func (h *CatalogHandler) HandleUpdateProject(c *fiber.Ctx) error {
	var item models.Project
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = c.Params("id")
	if err := h.service.UpdateProject(&item); err != nil {
		return notFoundOrInternal(c, err, "Could not update project")
	}
	return c.JSON(item)
}

// HandleDeleteProject removes a project.
func (h *CatalogHandler) HandleDeleteProject(c *fiber.Ctx) error {
	if err := h.service.DeleteProject(c.Params("id")); err != nil {
		return notFoundOrInternal(c, err, "Could not delete project")
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}

// handleSubmitReview accepts a visitor review for the item kind of the route
// it is registered under. Reviews start pending until moderated.
func (h *CatalogHandler) handleSubmitReview(kind models.ItemKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var review models.Review
		if err := c.BodyParser(&review); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
		saved, err := h.service.SubmitReview(kind, c.Params("id"), review)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				return notFoundOrInternal(c, err, "Could not submit review")
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not submit review",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// HandleModerateReview applies an admin action (approve, reject, reply) to a
// review. The kind route parameter uses the plural collection name.
func (h *CatalogHandler) HandleModerateReview(c *fiber.Ctx) error {
	kinds := map[string]models.ItemKind{
		"services": models.KindService,
		"courses":  models.KindCourse,
		"projects": models.KindProject,
	}
	kind, ok := kinds[c.Params("kind")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown catalog collection: " + c.Params("kind"),
		})
	}

	var req struct {
		Action string `json:"action"`
		Reply  string `json:"reply,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	err := h.service.ModerateReview(kind, c.Params("itemId"), c.Params("reviewId"), req.Action, req.Reply)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return notFoundOrInternal(c, err, "Could not moderate review")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not moderate review",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Review updated"})
}
