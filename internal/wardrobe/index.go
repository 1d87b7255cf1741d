package wardrobe

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// index groups garment copies into named buckets along one dimension
// (season or type). Buckets keep the order in which they were created and
// each bucket keeps its garments in insertion order.
type index struct {
	key     func(types.Garment) string
	buckets *linkedhashmap.Map // string -> *arraylist.List of types.Garment
}

func newIndex(key func(types.Garment) string, names []string) *index {
	x := &index{
		key:     key,
		buckets: linkedhashmap.New(),
	}
	for _, name := range names {
		x.add(name)
	}
	return x
}

// add creates an empty bucket. It reports false if name is empty or a
// bucket with that name already exists.
func (x *index) add(name string) bool {
	if name == "" {
		return false
	}
	if _, found := x.buckets.Get(name); found {
		return false
	}
	x.buckets.Put(name, arraylist.New())
	return true
}

func (x *index) bucket(name string) (*arraylist.List, bool) {
	v, found := x.buckets.Get(name)
	if !found {
		return nil, false
	}
	return v.(*arraylist.List), true
}

// names returns the bucket names in creation order.
func (x *index) names() []string {
	keys := x.buckets.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	return names
}

// garments returns a copy of the bucket contents.
func (x *index) garments(name string) ([]types.Garment, bool) {
	b, ok := x.bucket(name)
	if !ok {
		return nil, false
	}
	out := make([]types.Garment, 0, b.Size())
	for _, v := range b.Values() {
		out = append(out, v.(types.Garment))
	}
	return out, true
}

// insert appends a copy of g to the bucket its key names. Garments whose
// key names no bucket are not indexed.
func (x *index) insert(g types.Garment) bool {
	b, ok := x.bucket(x.key(g))
	if !ok {
		return false
	}
	b.Add(g)
	return true
}

// removeName removes the first garment called name from every bucket and
// returns how many buckets held one.
func (x *index) removeName(name string) int {
	removed := 0
	x.buckets.Each(func(_ interface{}, v interface{}) {
		b := v.(*arraylist.List)
		i, _ := b.Find(func(_ int, g interface{}) bool {
			return g.(types.Garment).Name == name
		})
		if i >= 0 {
			b.Remove(i)
			removed++
		}
	})
	return removed
}
