package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
)

// Recognized genders.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

var genders = map[string]bool{
	GenderMen:    true,
	GenderWomen:  true,
	GenderUnisex: true,
}

// IsGender reports whether g is a recognized gender.
func IsGender(g string) bool {
	return genders[g]
}

// ParsedSlug is a path segment split into its gender and entity slug.
type ParsedSlug struct {
	Gender string `json:"gender"`
	Slug   string `json:"slug"`
}

// InvalidSlugError reports a path segment that is not <gender>-<slug>.
type InvalidSlugError struct {
	Input  string
	Reason string
}

func (e *InvalidSlugError) Error() string {
	return fmt.Sprintf("invalid slug %q: %s", e.Input, e.Reason)
}

func (e *InvalidSlugError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// ParseSlug splits "<gender>-<rest>" into gender and rest. Both parts are
// lowercased.
func ParseSlug(path string) (ParsedSlug, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(path)), "-")
	if len(parts) < 2 {
		return ParsedSlug{}, &InvalidSlugError{Input: path, Reason: `expected format "<gender>-<slug>"`}
	}

	gender := parts[0]
	if !IsGender(gender) {
		return ParsedSlug{}, &InvalidSlugError{Input: path, Reason: fmt.Sprintf("unknown gender %q", gender)}
	}

	rest := strings.Join(parts[1:], "-")
	if rest == "" {
		return ParsedSlug{}, &InvalidSlugError{Input: path, Reason: "empty slug after gender"}
	}

	return ParsedSlug{Gender: gender, Slug: rest}, nil
}

// ComposeSlug is the inverse of ParseSlug.
func ComposeSlug(gender, slug string) string {
	return strings.ToLower(gender) + "-" + slug
}
