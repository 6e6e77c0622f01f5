package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
)

func TestParseSlug_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedSlug
	}{
		{"men-t-shirts", ParsedSlug{Gender: "men", Slug: "t-shirts"}},
		{"women-classic-organic-tee", ParsedSlug{Gender: "women", Slug: "classic-organic-tee"}},
		{"unisex-hoodies", ParsedSlug{Gender: "unisex", Slug: "hoodies"}},
		{"MEN-T-Shirts", ParsedSlug{Gender: "men", Slug: "t-shirts"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSlug(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlug_Invalid(t *testing.T) {
	for _, input := range []string{"", "men", "kids-t-shirts", "boys-tee", "men-", "t-shirts-men"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSlug(input)
			require.Error(t, err)

			var slugErr *InvalidSlugError
			require.True(t, errors.As(err, &slugErr))
			assert.Equal(t, input, slugErr.Input)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}

func TestParseSlug_RoundTripsComposeSlug(t *testing.T) {
	for _, gender := range []string{GenderMen, GenderWomen, GenderUnisex} {
		for _, rest := range []string{"tee", "t-shirts", "classic-organic-tee"} {
			got, err := ParseSlug(ComposeSlug(gender, rest))
			require.NoError(t, err)
			assert.Equal(t, ParsedSlug{Gender: gender, Slug: rest}, got)
		}
	}
}

func TestComposeSlug(t *testing.T) {
	assert.Equal(t, "women-hoodies", ComposeSlug("Women", "hoodies"))
}
