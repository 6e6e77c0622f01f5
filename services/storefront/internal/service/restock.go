package service

import (
	"context"
	"log/slog"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/event"
)

// RestockInput asks to be told when a sold-out size returns.
type RestockInput struct {
	ColorID int    `json:"color_id" validate:"required,min=1"`
	SizeID  int    `json:"size_id" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email,max=254"`
}

// RequestRestock records interest in an out-of-stock size of the product
// addressed by rawSlug.
func (s *PageService) RequestRestock(ctx context.Context, rawSlug string, in RestockInput) error {
	if s.publisher == nil {
		return apperrors.ServiceUnavailable("restock notifications are not available")
	}

	product, err := s.product(ctx, rawSlug)
	if err != nil {
		return err
	}

	variant := product.VariantForColor(in.ColorID)
	if variant == nil {
		return apperrors.InvalidInput("color is not offered for this product")
	}
	if !domain.HasSize(variant, in.SizeID) {
		return apperrors.InvalidInput("size is not offered in this color")
	}
	if domain.StockForSize(variant, in.SizeID) > 0 {
		return apperrors.Conflict("size is in stock")
	}

	err = s.publisher.PublishRestockRequested(ctx, event.RestockRequestedData{
		ProductID:   product.ID,
		ProductSlug: product.Slug,
		Gender:      product.Gender(),
		VariantID:   variant.ID,
		ColorID:     in.ColorID,
		SizeID:      in.SizeID,
		Email:       in.Email,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "restock request not published",
			slog.Int("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		return apperrors.ServiceUnavailable("restock notifications are temporarily unavailable")
	}
	return nil
}
