package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Size is a shared size reference such as "S" or "XL".
type Size struct {
	ID           int    `json:"id"`
	DocumentID   string `json:"documentId,omitempty"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// Color is a shared color reference.
type Color struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ColorCode  string `json:"color_code"`
}

// Image is a media reference. URL may be relative to the CMS origin.
type Image struct {
	ID              int    `json:"id"`
	DocumentID      string `json:"documentId,omitempty"`
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
}

// SizeStock is one (size, stock) entry of a variant. A variant may list the
// same size more than once.
type SizeStock struct {
	ID            int   `json:"id"`
	StockQuantity int   `json:"stock_quantity"`
	Size          *Size `json:"size"`
}

// Variant is a color-specific purchasable version of a product.
type Variant struct {
	ID            int              `json:"id"`
	DocumentID    string           `json:"documentId,omitempty"`
	Slug          string           `json:"slug"`
	PriceOverride *decimal.Decimal `json:"price_override"`
	Color         *Color           `json:"color"`
	Images        []Image          `json:"images"`
	Sizes         []SizeStock      `json:"sizes"`
}

// TotalStock sums stock over every size entry.
func (v *Variant) TotalStock() int {
	if v == nil {
		return 0
	}
	total := 0
	for _, s := range v.Sizes {
		total += s.StockQuantity
	}
	return total
}

// InStock reports whether any size entry has stock.
func (v *Variant) InStock() bool {
	if v == nil {
		return false
	}
	for _, s := range v.Sizes {
		if s.StockQuantity > 0 {
			return true
		}
	}
	return false
}

// ColorID returns the variant's color id, or 0 when the color is missing.
func (v *Variant) ColorID() int {
	if v == nil || v.Color == nil {
		return 0
	}
	return v.Color.ID
}

// Category groups products. (Slug, Gender) addresses a collection page.
type Category struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
}

// Product is a catalog entry with its variants.
type Product struct {
	ID              int               `json:"id"`
	DocumentID      string            `json:"documentId,omitempty"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	BasePrice       decimal.Decimal   `json:"base_price"`
	ProductInfo     string            `json:"product_info,omitempty"`
	CareInstruction string            `json:"care_instruction,omitempty"`
	Category        *Category         `json:"category"`
	Variants        []Variant         `json:"product_variants"`
	Reviews         []json.RawMessage `json:"reviews"`
}

// Gender returns the product's gender, taken from its category.
func (p *Product) Gender() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Gender
}

// Path returns the product detail path: /products/<gender>-<slug>.
func (p *Product) Path() string {
	return "/products/" + ComposeSlug(p.Gender(), p.Slug)
}

// VariantForColor returns the first variant with colorID.
func (p *Product) VariantForColor(colorID int) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ColorID() == colorID {
			return &p.Variants[i]
		}
	}
	return nil
}

// FirstVariant returns the first variant, or nil when there is none.
func (p *Product) FirstVariant() *Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// ReviewCount returns the number of reviews.
func (p *Product) ReviewCount() int {
	return len(p.Reviews)
}
