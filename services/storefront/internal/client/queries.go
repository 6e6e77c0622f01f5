package client

import (
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/cmsquery"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/pagination"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

// Content endpoints.
const (
	PathGlobal      = "/api/global"
	PathLandingPage = "/api/landing-page"
	PathProducts    = "/api/products"
)

// CollectionQuery selects one page of a gender's category.
type CollectionQuery struct {
	CategorySlug string
	Gender       string
	Page         int
	PageSize     int
}

// Params returns the pagination parameters of q.
func (q CollectionQuery) Params() pagination.Params {
	return pagination.Params{Page: q.Page, PageSize: q.PageSize}
}

// Query renders the CMS query for q.
func (q CollectionQuery) Query() cmsquery.Query {
	return cmsquery.Query{
		Filters: []cmsquery.Filter{
			cmsquery.Eq("category.slug", q.CategorySlug),
			cmsquery.Eq("category.gender", q.Gender),
		},
		Page:     q.Page,
		PageSize: q.PageSize,
		Populate: cmsquery.Populate{
			"category": cmsquery.All(),
			"product_variants": cmsquery.Nested(cmsquery.Populate{
				"images": cmsquery.All(),
			}),
		},
	}
}

// ProductQuery selects a product by slug within a gender.
type ProductQuery struct {
	Slug   string
	Gender string
}

// ProductQueryFor builds the detail query for a parsed path slug.
func ProductQueryFor(s domain.ParsedSlug) ProductQuery {
	return ProductQuery{Slug: s.Slug, Gender: s.Gender}
}

// Query renders the CMS query for q.
func (q ProductQuery) Query() cmsquery.Query {
	return cmsquery.Query{
		Filters: []cmsquery.Filter{
			cmsquery.Eq("slug", q.Slug),
			cmsquery.Eq("category.gender", q.Gender),
		},
		PopulateAll: true,
	}
}

// ProductList is one page of a collection.
type ProductList struct {
	Products []domain.Product `json:"data"`
	Meta     pagination.Meta  `json:"pagination"`
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
	Meta struct {
		Pagination pagination.Meta `json:"pagination"`
	} `json:"meta"`
}

type singleEnvelope[T any] struct {
	Data *T `json:"data"`
}
