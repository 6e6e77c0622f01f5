package service

import (
	"context"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
)

// LandingPage composes the home page. A missing landing page yields no
// blocks.
func (s *PageService) LandingPage(ctx context.Context) *LandingView {
	var page *domain.LandingPage
	global := s.withGlobal(ctx, func(ctx context.Context) {
		page = s.content.LandingPage(ctx)
	})

	view := &LandingView{Global: global, Blocks: []BlockView{}}
	if page == nil {
		return view
	}
	for _, b := range page.Blocks {
		if bv, ok := s.blockView(b); ok {
			view.Blocks = append(view.Blocks, bv)
		}
	}
	return view
}

func (s *PageService) blockView(b domain.Block) (BlockView, bool) {
	switch b.Kind {
	case domain.BlockImagesGrid:
		if b.ImagesGrid == nil {
			return BlockView{}, false
		}
		grid := &ImagesGridView{Right: make([]SectionView, 0, len(b.ImagesGrid.Right))}
		if b.ImagesGrid.Left != nil {
			left := s.sectionView(b.ImagesGrid.Left)
			grid.Left = &left
		}
		for i := range b.ImagesGrid.Right {
			grid.Right = append(grid.Right, s.sectionView(&b.ImagesGrid.Right[i]))
		}
		return BlockView{Kind: b.Kind, ImagesGrid: grid}, true
	case domain.BlockImageItem:
		if b.ImageItem == nil {
			return BlockView{}, false
		}
		item := s.sectionView(b.ImageItem)
		return BlockView{Kind: b.Kind, ImageItem: &item}, true
	default:
		s.logger.Debug("skipping unknown landing block", "kind", string(b.Kind))
		return BlockView{}, false
	}
}

func (s *PageService) sectionView(sec *domain.ImageSection) SectionView {
	buttons := sec.Buttons
	if buttons == nil {
		buttons = []domain.Button{}
	}
	return SectionView{
		Headline:      sec.Headline,
		Title:         sec.Title,
		Images:        s.media.ResolveAll(sec.Images),
		Buttons:       buttons,
		Slideshow:     sec.IsSlideshow,
		Autoplay:      sec.Autoplay(),
		AutoplayDelay: sec.AutoplayDelay,
	}
}

func (s *PageService) globalView(g *domain.Global) *GlobalView {
	if g == nil {
		return nil
	}

	view := &GlobalView{Navbar: []domain.NavbarItem{}}
	if g.Banner != nil {
		view.Banner = g.Banner.Content
	}
	if g.Navbar != nil && g.Navbar.Items != nil {
		view.Navbar = g.Navbar.Items
	}
	if g.Footer != nil {
		footer := &FooterView{
			Sections:     g.Footer.Sections,
			PaymentCards: make([]PaymentCardView, 0, len(g.Footer.PaymentCards)),
			Newsletter:   g.Footer.Newsletter,
		}
		if footer.Sections == nil {
			footer.Sections = []domain.FooterSection{}
		}
		for _, card := range g.Footer.PaymentCards {
			if card.Logo == nil {
				continue
			}
			footer.PaymentCards = append(footer.PaymentCards, PaymentCardView{
				Name:    card.Name,
				LogoURL: s.media.Resolve(card.Logo.URL),
			})
		}
		view.Footer = footer
	}
	return view
}
