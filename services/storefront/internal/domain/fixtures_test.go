package domain

import "github.com/shopspring/decimal"

var (
	sizeS = &Size{ID: 1, Name: "S", DisplayOrder: 1}
	sizeM = &Size{ID: 2, Name: "M", DisplayOrder: 2}
	sizeL = &Size{ID: 3, Name: "L", DisplayOrder: 3}

	red   = &Color{ID: 10, Name: "Red", Slug: "red", ColorCode: "#ff0000"}
	blue  = &Color{ID: 11, Name: "Blue", Slug: "blue", ColorCode: "#0000ff"}
	green = &Color{ID: 12, Name: "Green", Slug: "green", ColorCode: "#00ff00"}
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// teeProduct has a red variant with split S stock, a blue variant with an
// override price and a second red variant listed later.
func teeProduct() *Product {
	return &Product{
		ID:        1,
		Name:      "Classic Tee",
		Slug:      "classic-tee",
		BasePrice: decimal.RequireFromString("29.90"),
		Category:  &Category{ID: 5, Name: "T-Shirts", Slug: "t-shirts", Gender: GenderMen},
		Variants: []Variant{
			{
				ID:     100,
				Color:  red,
				Images: []Image{{ID: 1, URL: "/uploads/red-1.jpg"}, {ID: 2, URL: "/uploads/red-2.jpg"}},
				Sizes: []SizeStock{
					{ID: 1, StockQuantity: 2, Size: sizeS},
					{ID: 2, StockQuantity: 3, Size: sizeS},
					{ID: 3, StockQuantity: 0, Size: sizeM},
				},
			},
			{
				ID:            101,
				Color:         blue,
				PriceOverride: price("24.50"),
				Sizes: []SizeStock{
					{ID: 4, StockQuantity: 1, Size: sizeL},
					{ID: 5, StockQuantity: 4, Size: sizeS},
				},
			},
			{
				ID:    102,
				Color: red,
				Sizes: []SizeStock{{ID: 6, StockQuantity: 9, Size: sizeL}},
			},
		},
	}
}
