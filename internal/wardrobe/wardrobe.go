// Package wardrobe keeps a collection of garments in a primary linked list
// and mirrors each garment into a season bucket and a type bucket.
//
// Buckets hold independent copies taken when a garment is added. Later
// edits to the primary record are not copied into the buckets, and sorting
// the primary list does not reorder them.
package wardrobe

import (
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/wardrobe/internal/dlist"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Wardrobe owns the primary garment list and the season and type indexes.
// It is not safe for concurrent use.
type Wardrobe struct {
	garments *dlist.List[types.Garment]
	seasons  *index
	kinds    *index
	log      zerolog.Logger
}

// Option configures a Wardrobe.
type Option func(*Wardrobe)

// WithLogger sets the logger used for mutation events.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Wardrobe) {
		w.log = log.With().Str("component", "wardrobe").Logger()
	}
}

// New creates an empty Wardrobe with one bucket per season and type named
// in cfg. It returns the validation error if cfg is malformed.
func New(cfg types.Config, opts ...Option) (*Wardrobe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Wardrobe{
		garments: dlist.New[types.Garment](),
		seasons:  newIndex(func(g types.Garment) string { return g.Season }, cfg.Seasons),
		kinds:    newIndex(func(g types.Garment) string { return g.Type }, cfg.Types),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func byName(a, b types.Garment) int {
	return strings.Compare(a.Name, b.Name)
}

func bySize(a, b types.Garment) int {
	return strings.Compare(a.Size, b.Size)
}

func named(name string) func(types.Garment) bool {
	return func(g types.Garment) bool { return g.Name == name }
}

func withFeature(feature string) func(types.Garment) bool {
	return func(g types.Garment) bool { return g.Feature == feature }
}

// mirror copies g into the season and type buckets it names. No bucket is
// created for an unknown season or type.
func (w *Wardrobe) mirror(g types.Garment) {
	inSeason := w.seasons.insert(g)
	inType := w.kinds.insert(g)
	w.log.Debug().
		Str("name", g.Name).
		Bool("season_bucket", inSeason).
		Bool("type_bucket", inType).
		Msg("mirrored garment")
}

// unmirror drops the first copy called name from every season bucket and
// every type bucket, whichever garment those copies came from.
func (w *Wardrobe) unmirror(name string) {
	seasons := w.seasons.removeName(name)
	kinds := w.kinds.removeName(name)
	w.log.Debug().
		Str("name", name).
		Int("season_buckets", seasons).
		Int("type_buckets", kinds).
		Msg("unmirrored garment")
}

// Add appends g to the primary list and mirrors it into its buckets.
func (w *Wardrobe) Add(g types.Garment) {
	w.garments.Append(g)
	w.mirror(g)
	w.log.Debug().Str("name", g.Name).Int("len", w.garments.Len()).Msg("garment added")
}

// Len returns the number of garments in the primary list.
func (w *Wardrobe) Len() int {
	return w.garments.Len()
}

// All returns the garments in primary list order. The wardrobe must not be
// modified while the sequence is being consumed.
func (w *Wardrobe) All() iter.Seq[types.Garment] {
	return w.garments.Values()
}

// FindByFeature returns the first garment tagged with feature.
func (w *Wardrobe) FindByFeature(feature string) (types.Garment, bool) {
	id, ok := w.garments.FindFirst(withFeature(feature))
	if !ok {
		return types.Garment{}, false
	}
	return w.garments.Value(id)
}

// FindByName returns the first garment called name.
func (w *Wardrobe) FindByName(name string) (types.Garment, bool) {
	id, ok := w.garments.FindFirst(named(name))
	if !ok {
		return types.Garment{}, false
	}
	return w.garments.Value(id)
}

// RemoveByName removes the first garment called name from the primary list
// and, independently, the first copy called name from every bucket. It
// reports whether the primary list held such a garment. When names repeat,
// the primary removal and the bucket removals may hit different garments.
func (w *Wardrobe) RemoveByName(name string) bool {
	id, found := w.garments.FindFirst(named(name))
	if found {
		w.garments.Remove(id)
	}
	w.unmirror(name)
	w.log.Debug().Str("name", name).Bool("found", found).Msg("remove by name")
	return found
}

// RemoveAt removes the garment at the 0-based position index and returns
// it. Nothing changes when index is past the end of the list.
func (w *Wardrobe) RemoveAt(index int) (types.Garment, bool) {
	id, ok := w.garments.At(index)
	if !ok {
		return types.Garment{}, false
	}
	g, _ := w.garments.Remove(id)
	w.unmirror(g.Name)
	w.log.Debug().Str("name", g.Name).Int("position", index).Msg("remove at position")
	return g, true
}

// EditByFeature applies patch to the first garment tagged with feature and
// returns the edited garment. Bucket copies keep their old values.
func (w *Wardrobe) EditByFeature(feature string, patch types.GarmentPatch) (types.Garment, bool) {
	id, ok := w.garments.FindFirst(withFeature(feature))
	if !ok {
		return types.Garment{}, false
	}
	g, _ := w.garments.Value(id)
	g = patch.Apply(g)
	w.garments.Set(id, g)
	w.log.Debug().Str("feature", feature).Str("name", g.Name).Msg("garment edited")
	return g, true
}

// SortByName orders the primary list by name with an in-place quicksort
// over its nodes. Garments with equal names may end up in any order.
func (w *Wardrobe) SortByName() {
	head := w.garments.Head()
	tail := head
	for next := w.garments.Next(tail); next != dlist.None; next = w.garments.Next(tail) {
		tail = next
	}
	dlist.Quicksort(w.garments, head, tail, byName)
	w.log.Debug().Int("len", w.garments.Len()).Msg("sorted by name")
}

// SortBySize rebuilds the primary list ordered by the size text. Buckets
// keep their insertion order.
func (w *Wardrobe) SortBySize() {
	sorted := slices.SortedFunc(w.garments.Values(), bySize)
	w.garments.Clear()
	for _, g := range sorted {
		w.garments.Append(g)
	}
	w.log.Debug().Int("len", len(sorted)).Msg("sorted by size")
}

// Seasons returns the season bucket names in creation order.
func (w *Wardrobe) Seasons() []string {
	return w.seasons.names()
}

// Types returns the type bucket names in creation order.
func (w *Wardrobe) Types() []string {
	return w.kinds.names()
}

// Season returns a copy of the named season bucket.
func (w *Wardrobe) Season(name string) ([]types.Garment, bool) {
	return w.seasons.garments(name)
}

// Type returns a copy of the named type bucket.
func (w *Wardrobe) Type(name string) ([]types.Garment, bool) {
	return w.kinds.garments(name)
}

// AddSeason creates an empty season bucket. Garments already in the
// wardrobe are not copied into it. It reports false if name is empty or
// already taken.
func (w *Wardrobe) AddSeason(name string) bool {
	return w.seasons.add(name)
}

// AddType creates an empty type bucket. See AddSeason.
func (w *Wardrobe) AddType(name string) bool {
	return w.kinds.add(name)
}
