package service

import (
	"context"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/client"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

// FAQ titles on the product page.
const (
	FAQProductInformation = "Product Information"
	FAQCareInstructions   = "Care Instructions"
)

// SelectionInput is a requested selection. Zero values leave the
// corresponding part of the default selection untouched.
type SelectionInput struct {
	ColorID   int  `json:"color_id" validate:"omitempty,min=1"`
	SizeID    int  `json:"size_id" validate:"omitempty,min=1"`
	Quantity  int  `json:"quantity" validate:"omitempty,min=1,max=99"`
	AddToCart bool `json:"add_to_cart"`
}

// Apply runs the input through the selection transitions in order: color,
// size, quantity, add to cart.
func (in SelectionInput) Apply(sel domain.Selection) (domain.Selection, *domain.CartLine) {
	if in.ColorID > 0 {
		sel = sel.SelectColor(in.ColorID)
	}
	if in.SizeID > 0 {
		sel = sel.SelectSize(in.SizeID)
	}
	if in.Quantity > 0 {
		sel = sel.SetQuantity(in.Quantity)
	}
	if in.AddToCart {
		return sel.AddToCart()
	}
	return sel, nil
}

// ProductPage composes the detail page of the product addressed by rawSlug
// ("<gender>-<product>") with in applied to the default selection.
func (s *PageService) ProductPage(ctx context.Context, rawSlug string, in SelectionInput) (*ProductView, error) {
	parsed, err := domain.ParseSlug(rawSlug)
	if err != nil {
		return nil, err
	}

	var product *domain.Product
	global := s.withGlobal(ctx, func(ctx context.Context) {
		product = s.content.Product(ctx, client.ProductQueryFor(parsed))
	})
	if product == nil {
		return nil, apperrors.NotFound("product", rawSlug)
	}

	sel, line := in.Apply(domain.NewSelection(product))
	view := s.productView(product, sel, line)
	view.Global = global
	return view, nil
}

// Select applies in to the product's default selection without composing
// the rest of the page.
func (s *PageService) Select(ctx context.Context, rawSlug string, in SelectionInput) (*SelectionView, error) {
	product, err := s.product(ctx, rawSlug)
	if err != nil {
		return nil, err
	}
	sel, line := in.Apply(domain.NewSelection(product))
	view := selectionView(sel, line)
	return &view, nil
}

func (s *PageService) product(ctx context.Context, rawSlug string) (*domain.Product, error) {
	parsed, err := domain.ParseSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	product := s.content.Product(ctx, client.ProductQueryFor(parsed))
	if product == nil {
		return nil, apperrors.NotFound("product", rawSlug)
	}
	return product, nil
}

func (s *PageService) productView(p *domain.Product, sel domain.Selection, line *domain.CartLine) *ProductView {
	view := &ProductView{
		Title:       p.Name,
		ID:          p.ID,
		Name:        p.Name,
		Path:        p.Path(),
		Gender:      p.Gender(),
		Category:    p.Category,
		BasePrice:   p.BasePrice,
		Colors:      []Swatch{},
		Selection:   selectionView(sel, line),
		Sizes:       sel.Sizes(),
		Images:      []string{},
		FAQ:         []FAQItem{},
		ReviewCount: p.ReviewCount(),
	}

	if c := sel.Color(); c != nil {
		view.Title = p.Name + " - " + c.Name
	}
	for _, c := range domain.DistinctColors(p.Variants) {
		view.Colors = append(view.Colors, swatch(c))
	}
	if v := sel.Variant(); v != nil {
		view.Images = s.media.ResolveAll(v.Images)
	}
	if p.ProductInfo != "" {
		view.FAQ = append(view.FAQ, FAQItem{Title: FAQProductInformation, Content: p.ProductInfo})
	}
	if p.CareInstruction != "" {
		view.FAQ = append(view.FAQ, FAQItem{Title: FAQCareInstructions, Content: p.CareInstruction})
	}
	return view
}

func selectionView(sel domain.Selection, line *domain.CartLine) SelectionView {
	return SelectionView{
		ColorID:       sel.ColorID,
		SizeID:        sel.SizeID,
		Quantity:      sel.Quantity,
		ShowSizeError: sel.ShowSizeError,
		Unavailable:   sel.Unavailable(),
		CanIncrement:  sel.CanIncrement(),
		CanDecrement:  sel.CanDecrement(),
		Affordance:    sel.Affordance(),
		Price:         sel.Price(),
		CartLine:      line,
	}
}
