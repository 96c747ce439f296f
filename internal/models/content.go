package models

// ExchangeRateSAR converts USD-based catalog prices to SAR for display.
const ExchangeRateSAR = 3.75

// SiteSettings is the editable site-wide configuration surfaced to clients
// and managed from the admin dashboard.
type SiteSettings struct {
	AppNameEn     string `json:"app_name_en" validate:"required"`
	AppNameAr     string `json:"app_name_ar" validate:"required"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
	LogoURL       string `json:"logo_url"`
	HeroImageURL  string `json:"hero_image_url,omitempty"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	WhatsappNum   string `json:"whatsapp_number"`
	FacebookURL   string `json:"facebook_url,omitempty"`
	TwitterURL    string `json:"twitter_url,omitempty"`
	InstagramURL  string `json:"instagram_url,omitempty"`

	CityAr    string `json:"city_ar,omitempty"`
	CityEn    string `json:"city_en,omitempty"`
	CountryAr string `json:"country_ar,omitempty"`
	CountryEn string `json:"country_en,omitempty"`

	HeroTitleAr    string `json:"hero_title_ar,omitempty"`
	HeroTitleEn    string `json:"hero_title_en,omitempty"`
	HeroSubtitleAr string `json:"hero_subtitle_ar,omitempty"`
	HeroSubtitleEn string `json:"hero_subtitle_en,omitempty"`
	HeroBtn1TextAr string `json:"hero_btn1_text_ar,omitempty"`
	HeroBtn1TextEn string `json:"hero_btn1_text_en,omitempty"`
	HeroBtn1Link   string `json:"hero_btn1_link,omitempty"`
	HeroBtn2TextAr string `json:"hero_btn2_text_ar,omitempty"`
	HeroBtn2TextEn string `json:"hero_btn2_text_en,omitempty"`
	HeroBtn2Link   string `json:"hero_btn2_link,omitempty"`

	EnableServices     bool `json:"enable_services"`
	EnableCourses      bool `json:"enable_courses"`
	EnableProjects     bool `json:"enable_projects"`
	EnableBlog         bool `json:"enable_blog"`
	EnableAIConsultant bool `json:"enable_ai_consultant"`

	EnableAr  bool `json:"enable_ar"`
	EnableEn  bool `json:"enable_en"`
	EnableSAR bool `json:"enable_sar"`
	EnableUSD bool `json:"enable_usd"`
}

// InfoPage is a static content page (about, terms, privacy, ...). System
// pages cannot be deleted from the dashboard.
type InfoPage struct {
	ID        string `json:"id"`
	TitleEn   string `json:"title_en" validate:"required"`
	TitleAr   string `json:"title_ar" validate:"required"`
	ContentEn string `json:"content_en"`
	ContentAr string `json:"content_ar"`
	Slug      string `json:"slug" validate:"required"`
	IsSystem  bool   `json:"is_system"`
}

// BlogCategory groups blog posts and carries a display color.
type BlogCategory struct {
	ID      string `json:"id"`
	TitleEn string `json:"title_en" validate:"required"`
	TitleAr string `json:"title_ar" validate:"required"`
	Color   string `json:"color"`
}

// BlogPost is a bilingual article shown on the storefront blog.
type BlogPost struct {
	ID            string `json:"id"`
	TitleEn       string `json:"title_en" validate:"required"`
	TitleAr       string `json:"title_ar" validate:"required"`
	ContentEn     string `json:"content_en"`
	ContentAr     string `json:"content_ar"`
	ExcerptEn     string `json:"excerpt_en"`
	ExcerptAr     string `json:"excerpt_ar"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	AuthorName    string `json:"author_name"`
	PublishDate   string `json:"publish_date"`
	CategoryID    string `json:"category_id"`
	ReadTime      string `json:"read_time,omitempty"`
}
