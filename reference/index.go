package reference

import (
	"github.com/google/btree"
)

type slugEntry struct {
	slug     string
	endpoint *Endpoint
}

// SlugIndex resolves endpoint slugs in logarithmic time and iterates
// them in lexical order. Duplicate slugs keep the last endpoint, same
// as anchored navigation would.
type SlugIndex struct {
	tree *btree.BTreeG[*slugEntry]
}

func NewSlugIndex(endpoints []*Endpoint) *SlugIndex {

	tree := btree.NewG(32, func(a, b *slugEntry) bool {
		return a.slug < b.slug
	})

	for _, endpoint := range endpoints {
		tree.ReplaceOrInsert(&slugEntry{
			slug:     Slug(endpoint),
			endpoint: endpoint,
		})
	}

	return &SlugIndex{tree: tree}
}

func (i *SlugIndex) Lookup(slug string) (*Endpoint, bool) {
	entry, exist := i.tree.Get(&slugEntry{slug: slug})
	if !exist {
		return nil, false
	}
	return entry.endpoint, true
}

func (i *SlugIndex) Ascend(f func(slug string, endpoint *Endpoint) bool) {
	i.tree.Ascend(func(entry *slugEntry) bool {
		return f(entry.slug, entry.endpoint)
	})
}

func (i *SlugIndex) Len() int {
	return i.tree.Len()
}
