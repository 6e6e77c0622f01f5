package service

import (
	"context"
	"strconv"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/slug"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/client"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

// maxSwatches is the number of colors shown on a product card.
const maxSwatches = 4

// CollectionPage composes one page of the collection addressed by rawSlug
// ("<gender>-<category>"). An unparseable slug returns *domain.InvalidSlugError.
func (s *PageService) CollectionPage(ctx context.Context, rawSlug string, page int) (*CollectionView, error) {
	parsed, err := domain.ParseSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	q := client.CollectionQuery{
		CategorySlug: parsed.Slug,
		Gender:       parsed.Gender,
		Page:         page,
		PageSize:     s.pageSize,
	}

	var list client.ProductList
	global := s.withGlobal(ctx, func(ctx context.Context) {
		list = s.content.Collection(ctx, q)
	})

	view := &CollectionView{
		Global:       global,
		Title:        CollectionTitle(parsed),
		Gender:       parsed.Gender,
		CategorySlug: parsed.Slug,
		Products:     make([]ProductCard, 0, len(list.Products)),
		Empty:        len(list.Products) == 0,
		Pagination:   list.Meta,
		Pages:        pageLinks(list.Meta.Pages(), list.Meta.Page),
	}
	for i := range list.Products {
		p := &list.Products[i]
		if view.Description == "" && p.Category != nil {
			view.Description = p.Category.Description
		}
		view.Products = append(view.Products, s.productCard(p))
	}
	if list.Meta.HasPrev() {
		view.PrevURL = pageURL(list.Meta.Page - 1)
	}
	if list.Meta.HasNext() {
		view.NextURL = pageURL(list.Meta.Page + 1)
	}
	return view, nil
}

// CollectionTitle renders "Men's T Shirts" for men-t-shirts. Unisex
// collections are not possessive.
func CollectionTitle(p domain.ParsedSlug) string {
	if p.Gender == domain.GenderUnisex {
		return slug.Humanize(p.Gender) + " " + slug.Humanize(p.Slug)
	}
	return slug.Humanize(p.Gender) + "'s " + slug.Humanize(p.Slug)
}

func (s *PageService) productCard(p *domain.Product) ProductCard {
	card := ProductCard{
		ID:           p.ID,
		Name:         p.Name,
		Link:         p.Path(),
		Price:        p.BasePrice,
		PrimaryImage: PlaceholderImage,
		Swatches:     []Swatch{},
		Sizes:        []domain.SizeAvailability{},
	}

	first := p.FirstVariant()
	if first == nil {
		return card
	}

	if first.Color != nil {
		card.Name = p.Name + " - " + first.Color.Name
	}
	if len(first.Images) > 0 {
		card.PrimaryImage = s.media.Resolve(first.Images[0].URL)
	}
	if len(first.Images) > 1 {
		card.SecondaryImage = s.media.Resolve(first.Images[1].URL)
	}

	colors := domain.DistinctColors(p.Variants)
	for i, c := range colors {
		if i == maxSwatches {
			card.MoreColors = len(colors) - maxSwatches
			break
		}
		card.Swatches = append(card.Swatches, swatch(c))
	}

	card.Sizes = domain.AggregateSizes(first)
	for i := range p.Variants {
		if p.Variants[i].InStock() {
			card.InStock = true
			break
		}
	}
	return card
}

func swatch(c domain.Color) Swatch {
	s := Swatch{ID: c.ID, Name: c.Name, Slug: c.Slug, Code: c.ColorCode}
	if s.Slug == "" {
		s.Slug = slug.Generate(c.Name)
	}
	return s
}

func pageURL(n int) string {
	return "?page=" + strconv.Itoa(n)
}

func pageLinks(pages []int, current int) []PageLink {
	links := make([]PageLink, 0, len(pages))
	for _, n := range pages {
		links = append(links, PageLink{Number: n, URL: pageURL(n), Current: n == current})
	}
	return links
}
