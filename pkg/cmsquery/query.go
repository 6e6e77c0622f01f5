package cmsquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter operators understood by the CMS.
const (
	OpEq       = "$eq"
	OpNe       = "$ne"
	OpIn       = "$in"
	OpContains = "$containsi"
)

// Filter is one condition on a dotted attribute path, e.g. "category.gender".
type Filter struct {
	Path  string
	Op    string
	Value string
}

// Eq builds an equality filter.
func Eq(path, value string) Filter {
	return Filter{Path: path, Op: OpEq, Value: value}
}

// Key renders the bracketed query key: filters[category][gender][$eq].
func (f Filter) Key() string {
	var b strings.Builder
	b.WriteString("filters")
	for _, part := range strings.Split(f.Path, ".") {
		b.WriteString("[" + part + "]")
	}
	op := f.Op
	if op == "" {
		op = OpEq
	}
	b.WriteString("[" + op + "]")
	return b.String()
}

// Query is a collection query against the CMS REST API.
type Query struct {
	Filters  []Filter
	Page     int
	PageSize int
	Sort     []string
	Populate Populate
	// PopulateAll requests populate=* and takes precedence over Populate.
	PopulateAll bool
}

// Values renders the query as url.Values. Zero Page or PageSize omits the
// corresponding pagination key.
func (q Query) Values() url.Values {
	v := url.Values{}
	for _, f := range q.Filters {
		v.Add(f.Key(), f.Value)
	}
	if q.Page > 0 {
		v.Set("pagination[page]", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pagination[pageSize]", strconv.Itoa(q.PageSize))
	}
	for i, s := range q.Sort {
		v.Set("sort["+strconv.Itoa(i)+"]", s)
	}
	switch {
	case q.PopulateAll:
		v.Set("populate", "*")
	case len(q.Populate) > 0:
		q.Populate.Encode(v)
	}
	return v
}

// Encode renders the query string.
func (q Query) Encode() string {
	return q.Values().Encode()
}
