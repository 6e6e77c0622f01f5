// Package populate locks the populate graph of each CMS endpoint family.
// Callers cannot customize field selection: whatever populate directive a
// request carries is replaced with the graph registered here.
package populate

import "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/cmsquery"

// Endpoint names an endpoint family with a fixed populate graph.
type Endpoint string

const (
	Global      Endpoint = "global"
	LandingPage Endpoint = "landing-page"
	Product     Endpoint = "product"
)

// Dynamic zone component UIDs used by landing-page blocks.
const (
	ComponentImagesGrid = "landing-page.images-grid"
	ComponentImageItem  = "landing-page.image-item"
)

func imageURL() *cmsquery.Node { return cmsquery.Fields("url") }

// imageSection covers the images and buttons of one landing-page section.
func imageSection() *cmsquery.Node {
	return cmsquery.Nested(cmsquery.Populate{
		"images":  imageURL(),
		"buttons": cmsquery.All(),
	})
}

var graphs = map[Endpoint]func() cmsquery.Populate{
	Global: func() cmsquery.Populate {
		return cmsquery.Populate{
			"banner": cmsquery.All(),
			"navbar": cmsquery.Nested(cmsquery.Populate{
				"items": cmsquery.Nested(cmsquery.Populate{
					"sections": cmsquery.Nested(cmsquery.Populate{
						"items": cmsquery.All(),
					}),
				}),
			}),
			"footer": cmsquery.Nested(cmsquery.Populate{
				"sections": cmsquery.Nested(cmsquery.Populate{
					"links": cmsquery.All(),
				}),
				"payment_cards": cmsquery.Nested(cmsquery.Populate{
					"logo": imageURL(),
				}),
				"newsletter": cmsquery.All(),
			}),
		}
	},
	LandingPage: func() cmsquery.Populate {
		return cmsquery.Populate{
			"blocks": {On: cmsquery.Populate{
				ComponentImagesGrid: cmsquery.Nested(cmsquery.Populate{
					"left":  imageSection(),
					"right": imageSection(),
				}),
				ComponentImageItem: imageSection(),
			}},
		}
	},
	Product: func() cmsquery.Populate {
		return cmsquery.Populate{
			"product_variants": cmsquery.Nested(cmsquery.Populate{
				"color":  cmsquery.All(),
				"images": imageURL(),
				"sizes": cmsquery.Nested(cmsquery.Populate{
					"size": cmsquery.All(),
				}),
			}),
			"reviews":  cmsquery.All(),
			"category": cmsquery.All(),
		}
	},
}

// Graph returns a fresh copy of the populate graph for endpoint.
func Graph(endpoint Endpoint) (cmsquery.Populate, bool) {
	build, ok := graphs[endpoint]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Endpoints lists every endpoint with a registered graph.
func Endpoints() []Endpoint {
	return []Endpoint{Global, LandingPage, Product}
}
