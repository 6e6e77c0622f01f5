// Package cmsquery builds query strings for the headless CMS REST API, which
// expresses nested filters, pagination and populate graphs with bracketed keys
// such as populate[footer][populate][links]=true.
package cmsquery

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Node selects one relation or component in a populate graph.
//
// A node with no Fields, Populate or On entries encodes as "true", meaning the
// relation is populated with all of its scalar fields.
type Node struct {
	// Fields restricts the populated entity to the listed attributes.
	Fields []string
	// Populate lists nested relations to populate below this node.
	Populate Populate
	// On selects per-component populate graphs for dynamic zones, keyed by
	// component UID such as "landing-page.image-item".
	On Populate
}

// Populate is a populate graph keyed by relation name.
type Populate map[string]*Node

// All populates a relation with every scalar field.
func All() *Node { return &Node{} }

// Fields populates a relation restricted to the given attributes.
func Fields(fields ...string) *Node { return &Node{Fields: fields} }

// Nested populates a relation together with its own child relations.
func Nested(children Populate) *Node { return &Node{Populate: children} }

// Lookup walks a dotted path such as "footer.payment_cards.logo" through
// Populate edges and returns the node at the end of it.
func (p Populate) Lookup(path string) (*Node, bool) {
	current := p
	var node *Node
	for _, part := range strings.Split(path, ".") {
		n, ok := current[part]
		if !ok || n == nil {
			return nil, false
		}
		node = n
		current = n.Populate
	}
	return node, node != nil
}

// Encode adds the graph to v under the "populate" key.
func (p Populate) Encode(v url.Values) {
	p.encode("populate", v)
}

func (p Populate) encode(prefix string, v url.Values) {
	for _, name := range sortedKeys(p) {
		p[name].encode(prefix+"["+name+"]", v)
	}
}

func (n *Node) encode(prefix string, v url.Values) {
	if n == nil || n.isLeaf() {
		v.Add(prefix, "true")
		return
	}
	for i, f := range n.Fields {
		v.Add(prefix+"[fields]["+strconv.Itoa(i)+"]", f)
	}
	if len(n.Populate) > 0 {
		n.Populate.encode(prefix+"[populate]", v)
	}
	if len(n.On) > 0 {
		n.On.encode(prefix+"[on]", v)
	}
}

func (n *Node) isLeaf() bool {
	return len(n.Fields) == 0 && len(n.Populate) == 0 && len(n.On) == 0
}

func sortedKeys(p Populate) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsPopulateParam reports whether a query key belongs to a populate directive:
// either "populate" itself or any bracketed "populate[...]" key.
func IsPopulateParam(key string) bool {
	return key == "populate" || strings.HasPrefix(key, "populate[")
}

// StripPopulate removes every populate directive from v.
func StripPopulate(v url.Values) {
	for key := range v {
		if IsPopulateParam(key) {
			v.Del(key)
		}
	}
}
