package repositories

import (
	"github.com/abdullahramzi/Namaa/internal/models"
)

// SettingsRepository defines data access for site settings, static info
// pages, and blog content managed from the admin dashboard.
type SettingsRepository interface {
	GetSettings() (*models.SiteSettings, error)
	UpdateSettings(settings *models.SiteSettings) error

	GetInfoPages() ([]models.InfoPage, error)
	GetInfoPageBySlug(slug string) (*models.InfoPage, error)
	CreateInfoPage(page *models.InfoPage) error
	UpdateInfoPage(page *models.InfoPage) error
	DeleteInfoPage(id string) error

	GetBlogCategories() ([]models.BlogCategory, error)
	GetBlogPosts() ([]models.BlogPost, error)
	GetBlogPostByID(id string) (*models.BlogPost, error)
	CreateBlogPost(post *models.BlogPost) error
	UpdateBlogPost(post *models.BlogPost) error
	DeleteBlogPost(id string) error
}
