package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/services"
)

// ContentHandler handles site settings, static info pages, and blog
// endpoints.
type ContentHandler struct {
	service *services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// RegisterRoutes registers the public content routes.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/settings", h.HandleGetSettings)

	router.Get("/pages", h.HandleGetInfoPages)
	router.Get("/pages/:slug", h.HandleGetInfoPageBySlug)

	blog := router.Group("/blog")
	blog.Get("/categories", h.HandleGetBlogCategories)
	blog.Get("/posts", h.HandleGetBlogPosts)
	blog.Get("/posts/:id", h.HandleGetBlogPost)
}

// RegisterAdminRoutes registers the content management routes.
func (h *ContentHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Put("/settings", h.HandleUpdateSettings)

	router.Post("/pages", h.HandleCreateInfoPage)
	router.Put("/pages/:id", h.HandleUpdateInfoPage)
	router.Delete("/pages/:id", h.HandleDeleteInfoPage)

	router.Post("/blog/posts", h.HandleCreateBlogPost)
	router.Put("/blog/posts/:id", h.HandleUpdateBlogPost)
	router.Delete("/blog/posts/:id", h.HandleDeleteBlogPost)
}

// HandleGetSettings returns the site settings with the display exchange
// rate.
func (h *ContentHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		log.Printf("Error getting settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"settings":          settings,
		"exchange_rate_sar": models.ExchangeRateSAR,
	})
}

// HandleUpdateSettings replaces the site settings.
func (h *ContentHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.UpdateSettings(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(settings)
}

// HandleGetInfoPages returns all info pages.
func (h *ContentHandler) HandleGetInfoPages(c *fiber.Ctx) error {
	pages, err := h.service.GetInfoPages()
	if err != nil {
		log.Printf("Error getting info pages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve pages",
			"error":   err.Error(),
		})
	}
	return c.JSON(pages)
}

// HandleGetInfoPageBySlug returns the page published under the slug.
func (h *ContentHandler) HandleGetInfoPageBySlug(c *fiber.Ctx) error {
	page, err := h.service.GetInfoPageBySlug(c.Params("slug"))
	if err != nil {
		return notFoundOrInternal(c, err, "Could not retrieve page")
	}
	return c.JSON(page)
}

// HandleCreateInfoPage creates a new info page.
func (h *ContentHandler) HandleCreateInfoPage(c *fiber.Ctx) error {
	var page models.InfoPage
	if err := c.BodyParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateInfoPage(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create page",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

// HandleUpdateInfoPage replaces an existing info page.
func (h *ContentHandler) HandleUpdateInfoPage(c *fiber.Ctx) error {
	var page models.InfoPage
	if err := c.BodyParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	page.ID = c.Params("id")
	if err := h.service.UpdateInfoPage(&page); err != nil {
		return notFoundOrInternal(c, err, "Could not update page")
	}
	return c.JSON(page)
}

// HandleDeleteInfoPage removes an info page. System pages are protected.
func (h *ContentHandler) HandleDeleteInfoPage(c *fiber.Ctx) error {
	if err := h.service.DeleteInfoPage(c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "system page") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "System pages cannot be deleted",
				"error":   err.Error(),
			})
		}
		return notFoundOrInternal(c, err, "Could not delete page")
	}
	return c.JSON(fiber.Map{"message": "Page deleted"})
}

// HandleGetBlogCategories returns all blog categories.
func (h *ContentHandler) HandleGetBlogCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetBlogCategories()
	if err != nil {
		log.Printf("Error getting blog categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleGetBlogPosts returns all blog posts.
func (h *ContentHandler) HandleGetBlogPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetBlogPosts()
	if err != nil {
		log.Printf("Error getting blog posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetBlogPost returns a blog post by its ID.
func (h *ContentHandler) HandleGetBlogPost(c *fiber.Ctx) error {
	post, err := h.service.GetBlogPostByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Could not retrieve blog post")
	}
	return c.JSON(post)
}

// HandleCreateBlogPost creates a new blog post.
func (h *ContentHandler) HandleCreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateBlogPost(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create blog post",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdateBlogPost replaces an existing blog post.
func (h *ContentHandler) HandleUpdateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.ID = c.Params("id")
	if err := h.service.UpdateBlogPost(&post); err != nil {
		return notFoundOrInternal(c, err, "Could not update blog post")
	}
	return c.JSON(post)
}

// HandleDeleteBlogPost removes a blog post.
func (h *ContentHandler) HandleDeleteBlogPost(c *fiber.Ctx) error {
	if err := h.service.DeleteBlogPost(c.Params("id")); err != nil {
		return notFoundOrInternal(c, err, "Could not delete blog post")
	}
	return c.JSON(fiber.Map{"message": "Blog post deleted"})
}
