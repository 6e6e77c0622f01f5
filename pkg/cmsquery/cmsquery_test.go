package cmsquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate_EncodeLeaf(t *testing.T) {
	v := url.Values{}
	Populate{"banner": All(), "category": nil}.Encode(v)

	assert.Equal(t, "true", v.Get("populate[banner]"))
	assert.Equal(t, "true", v.Get("populate[category]"))
	assert.Len(t, v, 2)
}

func TestPopulate_EncodeNestedFields(t *testing.T) {
	v := url.Values{}
	Populate{
		"footer": Nested(Populate{
			"payment_cards": Nested(Populate{"logo": Fields("url")}),
			"links":         All(),
		}),
	}.Encode(v)

	assert.Equal(t, "url", v.Get("populate[footer][populate][payment_cards][populate][logo][fields][0]"))
	assert.Equal(t, "true", v.Get("populate[footer][populate][links]"))
	assert.Len(t, v, 2)
}

func TestPopulate_EncodeOn(t *testing.T) {
	v := url.Values{}
	Populate{
		"blocks": &Node{On: Populate{
			"landing-page.image-item": Nested(Populate{"images": Fields("url"), "buttons": All()}),
		}},
	}.Encode(v)

	assert.Equal(t, "url", v.Get("populate[blocks][on][landing-page.image-item][populate][images][fields][0]"))
	assert.Equal(t, "true", v.Get("populate[blocks][on][landing-page.image-item][populate][buttons]"))
}

func TestPopulate_EncodeMultipleFields(t *testing.T) {
	v := url.Values{}
	Populate{"image": Fields("url", "alternativeText")}.Encode(v)

	assert.Equal(t, "url", v.Get("populate[image][fields][0]"))
	assert.Equal(t, "alternativeText", v.Get("populate[image][fields][1]"))
}

func TestPopulate_EncodeDeterministic(t *testing.T) {
	p := Populate{"b": All(), "a": All(), "c": Nested(Populate{"z": All(), "y": All()})}
	first := url.Values{}
	p.Encode(first)
	for i := 0; i < 10; i++ {
		again := url.Values{}
		p.Encode(again)
		assert.Equal(t, first.Encode(), again.Encode())
	}
}

func TestPopulate_Lookup(t *testing.T) {
	p := Populate{
		"footer": Nested(Populate{
			"payment_cards": Nested(Populate{"logo": Fields("url")}),
		}),
	}

	n, ok := p.Lookup("footer.payment_cards.logo")
	require.True(t, ok)
	assert.Equal(t, []string{"url"}, n.Fields)

	_, ok = p.Lookup("footer.newsletter")
	assert.False(t, ok)
	_, ok = p.Lookup("footer.payment_cards.logo.formats")
	assert.False(t, ok)
}

func TestIsPopulateParam(t *testing.T) {
	assert.True(t, IsPopulateParam("populate"))
	assert.True(t, IsPopulateParam("populate[banner]"))
	assert.True(t, IsPopulateParam("populate[0]"))
	assert.False(t, IsPopulateParam("populated"))
	assert.False(t, IsPopulateParam("filters[populate]"))
}

func TestStripPopulate(t *testing.T) {
	v := url.Values{
		"populate":           {"*"},
		"populate[a]":        {"true"},
		"populate[b][c]":     {"true"},
		"filters[slug][$eq]": {"x"},
	}
	StripPopulate(v)

	assert.Equal(t, url.Values{"filters[slug][$eq]": {"x"}}, v)
}

func TestFilter_Key(t *testing.T) {
	assert.Equal(t, "filters[category][gender][$eq]", Eq("category.gender", "men").Key())
	assert.Equal(t, "filters[slug][$eq]", Filter{Path: "slug", Value: "x"}.Key())
	assert.Equal(t, "filters[name][$containsi]", Filter{Path: "name", Op: OpContains}.Key())
}

func TestQuery_Values(t *testing.T) {
	q := Query{
		Filters:  []Filter{Eq("category.slug", "t-shirts"), Eq("category.gender", "men")},
		Page:     2,
		PageSize: 24,
		Sort:     []string{"name:asc"},
		Populate: Populate{"category": All()},
	}
	v := q.Values()

	assert.Equal(t, "t-shirts", v.Get("filters[category][slug][$eq]"))
	assert.Equal(t, "men", v.Get("filters[category][gender][$eq]"))
	assert.Equal(t, "2", v.Get("pagination[page]"))
	assert.Equal(t, "24", v.Get("pagination[pageSize]"))
	assert.Equal(t, "name:asc", v.Get("sort[0]"))
	assert.Equal(t, "true", v.Get("populate[category]"))
}

func TestQuery_PopulateAll(t *testing.T) {
	v := Query{PopulateAll: true, Populate: Populate{"category": All()}}.Values()

	assert.Equal(t, "*", v.Get("populate"))
	assert.Empty(t, v.Get("populate[category]"))
	assert.Empty(t, v.Get("pagination[page]"))
}

func TestQuery_EncodeRoundTrips(t *testing.T) {
	q := Query{Filters: []Filter{Eq("slug", "basic-tee")}, PopulateAll: true}

	parsed, err := url.ParseQuery(q.Encode())
	require.NoError(t, err)
	assert.Equal(t, "basic-tee", parsed.Get("filters[slug][$eq]"))
	assert.Equal(t, "*", parsed.Get("populate"))
}
