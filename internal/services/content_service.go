package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
)

// ContentService handles site settings, static info pages, and blog content.
type ContentService struct {
	repo     repositories.SettingsRepository
	validate *validator.Validate
}

// NewContentService creates a new ContentService.
func NewContentService(repo repositories.SettingsRepository) *ContentService {
	return &ContentService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetSettings returns the current site settings.
func (s *ContentService) GetSettings() (*models.SiteSettings, error) {
	return s.repo.GetSettings()
}

// UpdateSettings validates and replaces the site settings.
func (s *ContentService) UpdateSettings(settings *models.SiteSettings) error {
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return s.repo.UpdateSettings(settings)
}

// GetInfoPages returns all info pages.
func (s *ContentService) GetInfoPages() ([]models.InfoPage, error) {
	return s.repo.GetInfoPages()
}

// GetInfoPageBySlug returns the page published under slug.
func (s *ContentService) GetInfoPageBySlug(slug string) (*models.InfoPage, error) {
	return s.repo.GetInfoPageBySlug(slug)
}

// CreateInfoPage validates and stores a new info page.
func (s *ContentService) CreateInfoPage(page *models.InfoPage) error {
	if err := s.validate.Struct(page); err != nil {
		return fmt.Errorf("invalid info page: %w", err)
	}
	return s.repo.CreateInfoPage(page)
}

// UpdateInfoPage validates and replaces an existing info page.
func (s *ContentService) UpdateInfoPage(page *models.InfoPage) error {
	if err := s.validate.Struct(page); err != nil {
		return fmt.Errorf("invalid info page: %w", err)
	}
	return s.repo.UpdateInfoPage(page)
}

// DeleteInfoPage removes an info page. System pages cannot be deleted.
func (s *ContentService) DeleteInfoPage(id string) error {
	pages, err := s.repo.GetInfoPages()
	if err != nil {
		return err
	}
	for _, p := range pages {
		if p.ID == id && p.IsSystem {
			return fmt.Errorf("info page %s is a system page and cannot be deleted", id)
		}
	}
	return s.repo.DeleteInfoPage(id)
}

// GetBlogCategories returns all blog categories.
func (s *ContentService) GetBlogCategories() ([]models.BlogCategory, error) {
	return s.repo.GetBlogCategories()
}

// GetBlogPosts returns all blog posts.
func (s *ContentService) GetBlogPosts() ([]models.BlogPost, error) {
	return s.repo.GetBlogPosts()
}

// GetBlogPostByID returns a blog post by its ID.
func (s *ContentService) GetBlogPostByID(id string) (*models.BlogPost, error) {
	return s.repo.GetBlogPostByID(id)
}

// CreateBlogPost validates and stores a new blog post.
func (s *ContentService) CreateBlogPost(post *models.BlogPost) error {
	if err := s.validate.Struct(post); err != nil {
		return fmt.Errorf("invalid blog post: %w", err)
	}
	return s.repo.CreateBlogPost(post)
}

// UpdateBlogPost validates and replaces an existing blog post.
func (s *ContentService) UpdateBlogPost(post *models.BlogPost) error {
	if err := s.validate.Struct(post); err != nil {
		return fmt.Errorf("invalid blog post: %w", err)
	}
	return s.repo.UpdateBlogPost(post)
}

// DeleteBlogPost removes a blog post.
func (s *ContentService) DeleteBlogPost(id string) error {
	return s.repo.DeleteBlogPost(id)
}
