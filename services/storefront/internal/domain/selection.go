package domain

import "github.com/shopspring/decimal"

// Affordance is the primary action offered for the current selection.
type Affordance string

const (
	AffordanceAddToCart Affordance = "add_to_cart"
	AffordanceNotifyMe  Affordance = "notify_me"
)

// CartLine is the line an add-to-cart would produce. It is not persisted.
type CartLine struct {
	ProductID int             `json:"product_id"`
	VariantID int             `json:"variant_id"`
	ColorID   int             `json:"color_id"`
	SizeID    int             `json:"size_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Selection is the color/size/quantity state of a product detail view.
// Transitions return a new value and never modify the receiver. SizeID 0
// means no size is selected.
type Selection struct {
	product *Product

	ColorID       int  `json:"color_id"`
	SizeID        int  `json:"size_id"`
	Quantity      int  `json:"quantity"`
	ShowSizeError bool `json:"show_size_error"`
}

// NewSelection pre-selects the color of the first variant.
func NewSelection(p *Product) Selection {
	s := Selection{product: p, Quantity: 1}
	if p != nil {
		s.ColorID = p.FirstVariant().ColorID()
	}
	return s
}

// Variant returns the variant of the selected color.
func (s Selection) Variant() *Variant {
	if s.product == nil {
		return nil
	}
	return s.product.VariantForColor(s.ColorID)
}

// SelectColor switches color and resets size and quantity. Colors the
// product does not offer are ignored.
func (s Selection) SelectColor(colorID int) Selection {
	if s.product == nil || s.product.VariantForColor(colorID) == nil {
		return s
	}
	s.ColorID = colorID
	s.SizeID = 0
	s.Quantity = 1
	return s
}

// SelectSize selects a size of the current variant and clears the size
// error. Sizes the variant does not list are ignored.
func (s Selection) SelectSize(sizeID int) Selection {
	if !HasSize(s.Variant(), sizeID) {
		return s
	}
	s.SizeID = sizeID
	s.ShowSizeError = false
	return s
}

// SetQuantity accepts n only when 1 <= n <= stock of the selected size.
func (s Selection) SetQuantity(n int) Selection {
	if n >= 1 && n <= s.SelectedSizeStock() {
		s.Quantity = n
	}
	return s
}

// Increment raises the quantity by one when stock allows.
func (s Selection) Increment() Selection { return s.SetQuantity(s.Quantity + 1) }

// Decrement lowers the quantity by one, never below 1.
func (s Selection) Decrement() Selection { return s.SetQuantity(s.Quantity - 1) }

// AddToCart returns the cart line for a complete, in-stock selection. With no
// size selected it raises the size error instead.
func (s Selection) AddToCart() (Selection, *CartLine) {
	if s.SizeID == 0 {
		s.ShowSizeError = true
		return s, nil
	}
	if s.Unavailable() || s.Quantity < 1 || s.Quantity > s.SelectedSizeStock() {
		return s, nil
	}

	s.ShowSizeError = false
	v := s.Variant()
	return s, &CartLine{
		ProductID: s.product.ID,
		VariantID: v.ID,
		ColorID:   s.ColorID,
		SizeID:    s.SizeID,
		Quantity:  s.Quantity,
		Price:     s.Price(),
	}
}

// Sizes returns the aggregated sizes of the selected variant.
func (s Selection) Sizes() []SizeAvailability {
	return AggregateSizes(s.Variant())
}

// SelectedSizeStock returns the summed stock of the selected size.
func (s Selection) SelectedSizeStock() int {
	if s.SizeID == 0 {
		return 0
	}
	return StockForSize(s.Variant(), s.SizeID)
}

// Unavailable reports a selected size with no stock.
func (s Selection) Unavailable() bool {
	return s.SizeID != 0 && s.SelectedSizeStock() == 0
}

// CanIncrement reports whether the quantity can go up by one.
func (s Selection) CanIncrement() bool {
	return s.SizeID != 0 && !s.Unavailable() && s.Quantity < s.SelectedSizeStock()
}

// CanDecrement reports whether the quantity can go down by one.
func (s Selection) CanDecrement() bool {
	return s.Quantity > 1
}

// Affordance returns notify_me for an unavailable size, add_to_cart otherwise.
func (s Selection) Affordance() Affordance {
	if s.Unavailable() {
		return AffordanceNotifyMe
	}
	return AffordanceAddToCart
}

// Price returns the effective price of the selected variant.
func (s Selection) Price() decimal.Decimal {
	return EffectivePrice(s.product, s.Variant())
}

// Color returns the selected color, if any.
func (s Selection) Color() *Color {
	if v := s.Variant(); v != nil {
		return v.Color
	}
	return nil
}
