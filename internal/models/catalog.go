package models

// ItemKind discriminates the three purchasable catalog collections.
// It is set explicitly when an item enters the cart and never inferred
// from the shape of the item.
type ItemKind string

const (
	KindService ItemKind = "service"
	KindCourse  ItemKind = "course"
	KindProject ItemKind = "project"
)

// ValidKinds maps every accepted item kind for quick membership checks.
var ValidKinds = map[ItemKind]bool{
	KindService: true,
	KindCourse:  true,
	KindProject: true,
}

// Review is a customer review attached to a catalog item. New reviews start
// in "pending" until an administrator approves or rejects them.
type Review struct {
	ID         string `json:"id"`
	UserName   string `json:"user_name" validate:"required,min=2,max=100"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=1000"`
	Date       string `json:"date"`
	Status     string `json:"status"` // "pending", "approved", "rejected"
	AdminReply string `json:"admin_reply,omitempty"`
}

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Listing holds the display and pricing fields shared by every purchasable
// item. A discount is active when DiscountPrice is set and today falls inside
// the [DiscountStartDate, DiscountEndDate] window; dates are local calendar
// days in YYYY-MM-DD form, open on either missing bound.
type Listing struct {
	ID                string   `json:"id" validate:"omitempty"`
	TitleEn           string   `json:"title_en" validate:"required,min=3,max=150"`
	TitleAr           string   `json:"title_ar" validate:"required,min=3,max=150"`
	DescriptionEn     string   `json:"description_en" validate:"omitempty,max=2000"`
	DescriptionAr     string   `json:"description_ar" validate:"omitempty,max=2000"`
	Category          string   `json:"category"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice     float64  `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	DiscountStartDate string   `json:"discount_start_date,omitempty"`
	DiscountEndDate   string   `json:"discount_end_date,omitempty"`
	ThumbnailURL      string   `json:"thumbnail_url,omitempty"`
	Icon              string   `json:"icon,omitempty"`
	PurchaseCount     int      `json:"purchase_count"`
	IsPopular         bool     `json:"is_popular,omitempty"`
	Rating            float64  `json:"rating"`
	Reviews           []Review `json:"reviews"`
}

// Service is a one-off business service offering.
type Service struct {
	Listing
	SEOKeywords []string `json:"seo_keywords,omitempty"`
}

// CourseLesson is a single lesson inside a course curriculum.
type CourseLesson struct {
	ID       string `json:"id"`
	Title    string `json:"title" validate:"required"`
	Duration string `json:"duration"`
	VideoURL string `json:"video_url,omitempty"`
}

// CourseFeature is a highlighted selling point shown on a course page.
type CourseFeature struct {
	ID   string `json:"id"`
	Icon string `json:"icon"`
	Text string `json:"text" validate:"required"`
}

// Course is a recorded training course with a lesson curriculum.
type Course struct {
	Listing
	ThumbnailColor string          `json:"thumbnail_color,omitempty"`
	IntroVideoURL  string          `json:"intro_video_url,omitempty"`
	Duration       string          `json:"duration"`
	Lessons        []CourseLesson  `json:"lessons"`
	LearningPoints []string        `json:"learning_points,omitempty"`
	Features       []CourseFeature `json:"features,omitempty"`
}

// Project is a ready-made project sold as a downloadable package.
type Project struct {
	Listing
	DemoURL     string   `json:"demo_url,omitempty"`
	DownloadURL string   `json:"download_url,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Features    []string `json:"features,omitempty"`
}
