package service

import (
	"github.com/shopspring/decimal"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/pagination"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

// GlobalView is the site furniture with media URLs resolved.
type GlobalView struct {
	Banner string              `json:"banner,omitempty"`
	Navbar []domain.NavbarItem `json:"navbar"`
	Footer *FooterView         `json:"footer,omitempty"`
}

type FooterView struct {
	Sections     []domain.FooterSection `json:"sections"`
	PaymentCards []PaymentCardView      `json:"payment_cards"`
	Newsletter   *domain.Newsletter     `json:"newsletter,omitempty"`
}

type PaymentCardView struct {
	Name    string `json:"name,omitempty"`
	LogoURL string `json:"logo_url"`
}

// LandingView is the home page.
type LandingView struct {
	Global *GlobalView `json:"global"`
	Blocks []BlockView `json:"blocks"`
}

// BlockView carries exactly one payload matching Kind.
type BlockView struct {
	Kind       domain.BlockKind `json:"kind"`
	ImagesGrid *ImagesGridView  `json:"images_grid,omitempty"`
	ImageItem  *SectionView     `json:"image_item,omitempty"`
}

type ImagesGridView struct {
	Left  *SectionView  `json:"left,omitempty"`
	Right []SectionView `json:"right"`
}

// SectionView is an image section. Autoplay is set when the client should
// advance slides every AutoplayDelay seconds.
type SectionView struct {
	Headline      string          `json:"headline,omitempty"`
	Title         string          `json:"title,omitempty"`
	Images        []string        `json:"images"`
	Buttons       []domain.Button `json:"buttons"`
	Slideshow     bool            `json:"slideshow"`
	Autoplay      bool            `json:"autoplay"`
	AutoplayDelay int             `json:"autoplay_delay"`
}

// Swatch is a selectable color.
type Swatch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Code string `json:"color_code"`
}

// ProductCard is one product of a collection grid.
type ProductCard struct {
	ID             int                       `json:"id"`
	Name           string                    `json:"name"`
	Link           string                    `json:"link"`
	Price          decimal.Decimal           `json:"price"`
	PrimaryImage   string                    `json:"primary_image"`
	SecondaryImage string                    `json:"secondary_image,omitempty"`
	Swatches       []Swatch                  `json:"swatches"`
	MoreColors     int                       `json:"more_colors"`
	Sizes          []domain.SizeAvailability `json:"sizes"`
	InStock        bool                      `json:"in_stock"`
}

type PageLink struct {
	Number  int    `json:"number"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// CollectionView is one page of a gender's category.
type CollectionView struct {
	Global       *GlobalView     `json:"global"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Gender       string          `json:"gender"`
	CategorySlug string          `json:"category_slug"`
	Products     []ProductCard   `json:"products"`
	Empty        bool            `json:"empty"`
	Pagination   pagination.Meta `json:"pagination"`
	Pages        []PageLink      `json:"pages"`
	PrevURL      string          `json:"prev_url,omitempty"`
	NextURL      string          `json:"next_url,omitempty"`
}

// FAQItem is one collapsible entry under the product details.
type FAQItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SelectionView is the selection state with everything derived from it.
type SelectionView struct {
	ColorID       int               `json:"color_id"`
	SizeID        int               `json:"size_id,omitempty"`
	Quantity      int               `json:"quantity"`
	ShowSizeError bool              `json:"show_size_error"`
	Unavailable   bool              `json:"unavailable"`
	CanIncrement  bool              `json:"can_increment"`
	CanDecrement  bool              `json:"can_decrement"`
	Affordance    domain.Affordance `json:"affordance"`
	Price         decimal.Decimal   `json:"price"`
	CartLine      *domain.CartLine  `json:"cart_line,omitempty"`
}

// ProductView is the product detail page.
type ProductView struct {
	Global      *GlobalView               `json:"global"`
	Title       string                    `json:"title"`
	ID          int                       `json:"id"`
	Name        string                    `json:"name"`
	Path        string                    `json:"path"`
	Gender      string                    `json:"gender"`
	Category    *domain.Category          `json:"category,omitempty"`
	BasePrice   decimal.Decimal           `json:"base_price"`
	Colors      []Swatch                  `json:"colors"`
	Selection   SelectionView             `json:"selection"`
	Sizes       []domain.SizeAvailability `json:"sizes"`
	Images      []string                  `json:"images"`
	FAQ         []FAQItem                 `json:"faq"`
	ReviewCount int                       `json:"review_count"`
}
