package domain

import (
	"encoding/json"
	"fmt"
)

// BlockKind tags a landing-page block with its component UID.
type BlockKind string

const (
	BlockImagesGrid BlockKind = "landing-page.images-grid"
	BlockImageItem  BlockKind = "landing-page.image-item"
)

// Button is a call to action on a landing-page section.
type Button struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	IsExternal bool   `json:"is_external"`
}

// ImageSection is a headline/title pair over one image or a slideshow.
type ImageSection struct {
	ID            int      `json:"id"`
	Headline      string   `json:"headline"`
	Title         string   `json:"title"`
	AutoplayDelay int      `json:"autoplay_delay"`
	IsSlideshow   bool     `json:"is_slides_show"`
	Images        []Image  `json:"images"`
	Buttons       []Button `json:"buttons"`
}

// Autoplay reports whether the section should advance on its own: a
// slideshow with more than one image and a positive delay (in seconds).
func (s *ImageSection) Autoplay() bool {
	return s.IsSlideshow && len(s.Images) > 1 && s.AutoplayDelay > 0
}

// NextSlide returns the index that follows current, wrapping around.
func (s *ImageSection) NextSlide(current int) int {
	if len(s.Images) == 0 {
		return 0
	}
	return (current + 1) % len(s.Images)
}

// ImagesGrid is a large left section beside a column of right sections.
type ImagesGrid struct {
	ID    int            `json:"id"`
	Left  *ImageSection  `json:"left"`
	Right []ImageSection `json:"right"`
}

// Block is one landing-page block. Exactly one payload matching Kind is set;
// blocks of unknown kinds carry no payload.
type Block struct {
	Kind       BlockKind
	ImagesGrid *ImagesGrid
	ImageItem  *ImageSection
}

// UnmarshalJSON decodes a dynamic-zone entry tagged by __component.
func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		Component BlockKind `json:"__component"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("decode block: %w", err)
	}

	*b = Block{Kind: head.Component}
	switch head.Component {
	case BlockImagesGrid:
		b.ImagesGrid = &ImagesGrid{}
		if err := json.Unmarshal(data, b.ImagesGrid); err != nil {
			return fmt.Errorf("decode %s block: %w", head.Component, err)
		}
	case BlockImageItem:
		b.ImageItem = &ImageSection{}
		if err := json.Unmarshal(data, b.ImageItem); err != nil {
			return fmt.Errorf("decode %s block: %w", head.Component, err)
		}
	}
	return nil
}

// LandingPage is the ordered block sequence of the home page.
type LandingPage struct {
	ID         int     `json:"id"`
	DocumentID string  `json:"documentId,omitempty"`
	Blocks     []Block `json:"blocks"`
}
