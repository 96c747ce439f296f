package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
)

// MockSettingsRepository is an in-memory implementation of
// SettingsRepository.
type MockSettingsRepository struct {
	settings   models.SiteSettings
	pages      map[string]models.InfoPage
	categories map[string]models.BlogCategory
	posts      map[string]models.BlogPost
	mu         sync.RWMutex
}

// NewMockSettingsRepository creates a settings store seeded with the given
// defaults.
func NewMockSettingsRepository(defaults models.SiteSettings) *MockSettingsRepository {
	return &MockSettingsRepository{
		settings:   defaults,
		pages:      make(map[string]models.InfoPage),
		categories: make(map[string]models.BlogCategory),
		posts:      make(map[string]models.BlogPost),
	}
}

// GetSettings returns the current site settings.
func (r *MockSettingsRepository) GetSettings() (*models.SiteSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.settings
	return &s, nil
}

// UpdateSettings replaces the site settings.
func (r *MockSettingsRepository) UpdateSettings(settings *models.SiteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = *settings
	return nil
}

// GetInfoPages returns all info pages.
func (r *MockSettingsRepository) GetInfoPages() ([]models.InfoPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.InfoPage, 0, len(r.pages))
	for _, p := range r.pages {
		list = append(list, p)
	}
	return list, nil
}

// GetInfoPageBySlug returns the page published under slug.
func (r *MockSettingsRepository) GetInfoPageBySlug(slug string) (*models.InfoPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, fmt.Errorf("info page with slug %s not found", slug)
}

// CreateInfoPage adds a new info page, generating an ID when absent.
func (r *MockSettingsRepository) CreateInfoPage(page *models.InfoPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	r.pages[page.ID] = *page
	return nil
}

// UpdateInfoPage replaces an existing info page.
func (r *MockSettingsRepository) UpdateInfoPage(page *models.InfoPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[page.ID]; !ok {
		return fmt.Errorf("info page with ID %s not found for update", page.ID)
	}
	r.pages[page.ID] = *page
	return nil
}

// DeleteInfoPage removes an info page by its ID.
func (r *MockSettingsRepository) DeleteInfoPage(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[id]; !ok {
		return fmt.Errorf("info page with ID %s not found for deletion", id)
	}
	delete(r.pages, id)
	return nil
}

// GetBlogCategories returns all blog categories.
func (r *MockSettingsRepository) GetBlogCategories() ([]models.BlogCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.BlogCategory, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	return list, nil
}

// SeedBlogCategory inserts a category; used by startup seeding.
func (r *MockSettingsRepository) SeedBlogCategory(category models.BlogCategory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.ID] = category
}

// GetBlogPosts returns all blog posts.
func (r *MockSettingsRepository) GetBlogPosts() ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		list = append(list, p)
	}
	return list, nil
}

// GetBlogPostByID returns a blog post by its ID.
func (r *MockSettingsRepository) GetBlogPostByID(id string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("blog post with ID %s not found", id)
	}
	return &p, nil
}

// CreateBlogPost adds a new blog post, generating an ID when absent.
func (r *MockSettingsRepository) CreateBlogPost(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = *post
	return nil
}

// UpdateBlogPost replaces an existing blog post.
func (r *MockSettingsRepository) UpdateBlogPost(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return fmt.Errorf("blog post with ID %s not found for update", post.ID)
	}
	r.posts[post.ID] = *post
	return nil
}

// DeleteBlogPost removes a blog post by its ID.
func (r *MockSettingsRepository) DeleteBlogPost(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("blog post with ID %s not found for deletion", id)
	}
	delete(r.posts, id)
	return nil
}
