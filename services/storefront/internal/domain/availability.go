package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SizeAvailability is one size of a variant with its summed stock.
type SizeAvailability struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Stock        int    `json:"stock"`
	OutOfStock   bool   `json:"out_of_stock"`
}

// DistinctColors returns each color once, in the order variants first
// mention it. Variants without a color are skipped.
func DistinctColors(variants []Variant) []Color {
	colors := make([]Color, 0, len(variants))
	seen := make(map[int]bool, len(variants))
	for _, v := range variants {
		if v.Color == nil || seen[v.Color.ID] {
			continue
		}
		seen[v.Color.ID] = true
		colors = append(colors, *v.Color)
	}
	return colors
}

// AggregateSizes groups the size entries of v by size id, summing stock, and
// sorts the result by display order. Sizes with zero stock stay in the list
// flagged OutOfStock. Entries without a populated size are skipped.
func AggregateSizes(v *Variant) []SizeAvailability {
	if v == nil {
		return []SizeAvailability{}
	}

	sizes := make([]SizeAvailability, 0, len(v.Sizes))
	index := make(map[int]int, len(v.Sizes))
	for _, entry := range v.Sizes {
		if entry.Size == nil {
			continue
		}
		if i, ok := index[entry.Size.ID]; ok {
			sizes[i].Stock += entry.StockQuantity
			continue
		}
		index[entry.Size.ID] = len(sizes)
		sizes = append(sizes, SizeAvailability{
			ID:           entry.Size.ID,
			Name:         entry.Size.Name,
			DisplayOrder: entry.Size.DisplayOrder,
			Stock:        entry.StockQuantity,
		})
	}

	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].DisplayOrder < sizes[j].DisplayOrder
	})
	for i := range sizes {
		sizes[i].OutOfStock = sizes[i].Stock == 0
	}
	return sizes
}

// StockForSize returns the summed stock of sizeID in v.
func StockForSize(v *Variant, sizeID int) int {
	if v == nil {
		return 0
	}
	total := 0
	for _, entry := range v.Sizes {
		if entry.Size != nil && entry.Size.ID == sizeID {
			total += entry.StockQuantity
		}
	}
	return total
}

// HasSize reports whether v lists sizeID at least once.
func HasSize(v *Variant, sizeID int) bool {
	if v == nil {
		return false
	}
	for _, entry := range v.Sizes {
		if entry.Size != nil && entry.Size.ID == sizeID {
			return true
		}
	}
	return false
}

// EffectivePrice is the variant's price override when set, else the
// product's base price.
func EffectivePrice(p *Product, v *Variant) decimal.Decimal {
	if v != nil && v.PriceOverride != nil {
		return *v.PriceOverride
	}
	if p == nil {
		return decimal.Zero
	}
	return p.BasePrice
}
