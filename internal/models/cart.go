package models

// CartLine is one catalog item snapshotted into the active cart. UnitPrice is
// the effective price captured at add time (post-discount if a discount was
// active at that instant); ListPrice keeps the undiscounted price for
// strikethrough display. Neither changes after the line is created, even if
// the underlying catalog item does.
type CartLine struct {
	ID           string   `json:"id"`
	Kind         ItemKind `json:"kind"`
	TitleEn      string   `json:"title_en"`
	TitleAr      string   `json:"title_ar"`
	UnitPrice    float64  `json:"unit_price"`
	ListPrice    float64  `json:"list_price"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Icon         string   `json:"icon,omitempty"`
}

// Cart is the ordered collection of lines for the current session. IsOpen is
// a display flag for the cart drawer, not business state, and is not
// persisted alongside the lines.
type Cart struct {
	Lines  []CartLine `json:"lines"`
	IsOpen bool       `json:"is_open"`
}

// Count returns the number of lines in the cart.
func (c Cart) Count() int { return len(c.Lines) }

// CustomerInfo is the checkout form payload. Only name and phone are
// required; nothing beyond presence is validated.
type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}
