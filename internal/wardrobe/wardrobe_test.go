package wardrobe

import (
	"bytes"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

var (
	jacket = types.Garment{Name: "Jacket", Season: "Winter", Type: "Coat", Color: "Black", Size: "M", Feature: "warm1"}
	shirt  = types.Garment{Name: "Shirt", Season: "Summer", Type: "Top", Color: "White", Size: "S", Feature: "light1"}
	boots  = types.Garment{Name: "Boots", Season: "Winter", Type: "Footwear", Color: "Brown", Size: "L", Feature: "grip"}
)

func strPtr(s string) *string { return &s }

func newTestWardrobe(t *testing.T, garments ...types.Garment) *Wardrobe {
	t.Helper()
	w, err := New(types.DefaultConfig())
	require.NoError(t, err)
	for _, g := range garments {
		w.Add(g)
	}
	return w
}

func names(w *Wardrobe) []string {
	var out []string
	for g := range w.All() {
		out = append(out, g.Name)
	}
	return out
}

func bucketNames(garments []types.Garment) []string {
	out := make([]string, 0, len(garments))
	for _, g := range garments {
		out = append(out, g.Name)
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(types.Config{Seasons: []string{"Winter", "Winter"}})
	assert.ErrorIs(t, err, types.ErrDuplicateBucket)
}

func TestAddMirrorsIntoBuckets(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt, boots)

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []string{"Jacket", "Shirt", "Boots"}, names(w))

	winter, ok := w.Season("Winter")
	require.True(t, ok)
	assert.Equal(t, []string{"Jacket", "Boots"}, bucketNames(winter))

	tops, ok := w.Type("Top")
	require.True(t, ok)
	assert.Equal(t, []types.Garment{shirt}, tops)
}

func TestAddWithUnknownBucketIsNotMirrored(t *testing.T) {
	rain := types.Garment{Name: "Poncho", Season: "Monsoon", Type: "Cape", Feature: "dry"}
	w := newTestWardrobe(t, rain)

	assert.Equal(t, 1, w.Len())
	_, ok := w.Season("Monsoon")
	assert.False(t, ok, "no bucket is auto-created")
	_, ok = w.Type("Cape")
	assert.False(t, ok)
	for _, season := range w.Seasons() {
		garments, _ := w.Season(season)
		assert.Empty(t, garments)
	}
}

func TestFindByFeature(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt)

	g, ok := w.FindByFeature("light1")
	require.True(t, ok)
	assert.Equal(t, shirt, g)

	_, ok = w.FindByFeature("missing")
	assert.False(t, ok)
}

func TestFindByName(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt)

	g, ok := w.FindByName("Jacket")
	require.True(t, ok)
	assert.Equal(t, jacket, g)

	_, ok = w.FindByName("jacket")
	assert.False(t, ok, "names are case-sensitive")
}

func TestSortByNameThenRemoveByName(t *testing.T) {
	w := newTestWardrobe(t, shirt, jacket)

	w.SortByName()
	assert.Equal(t, []string{"Jacket", "Shirt"}, names(w))

	assert.True(t, w.RemoveByName("Jacket"))
	assert.Equal(t, []string{"Shirt"}, names(w))

	winter, ok := w.Season("Winter")
	require.True(t, ok)
	assert.Empty(t, winter)
	coats, _ := w.Type("Coat")
	assert.Empty(t, coats)

	_, ok = w.FindByFeature("warm1")
	assert.False(t, ok)
}

func TestRemoveByNameMissingIsNoop(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt)

	assert.False(t, w.RemoveByName("Scarf"))
	assert.Equal(t, []string{"Jacket", "Shirt"}, names(w))
	winter, _ := w.Season("Winter")
	assert.Len(t, winter, 1)
}

func TestRemoveByNameWithDuplicateNames(t *testing.T) {
	summerHat := types.Garment{Name: "Hat", Season: "Summer", Type: "Accessory", Feature: "straw"}
	winterHat := types.Garment{Name: "Hat", Season: "Winter", Type: "Accessory", Feature: "wool"}
	w := newTestWardrobe(t, summerHat, winterHat)

	require.True(t, w.RemoveByName("Hat"))

	// The primary list drops the first Hat, but every bucket drops its own
	// first Hat: both season copies go while the accessory bucket keeps the
	// later one.
	remaining := slices.Collect(w.All())
	assert.Equal(t, []types.Garment{winterHat}, remaining)

	summer, _ := w.Season("Summer")
	winter, _ := w.Season("Winter")
	assert.Empty(t, summer)
	assert.Empty(t, winter, "winter copy removed although the winter hat is still in the primary list")

	accessories, _ := w.Type("Accessory")
	assert.Equal(t, []types.Garment{winterHat}, accessories)
}

func TestRemoveAt(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt, boots)

	g, ok := w.RemoveAt(1)
	require.True(t, ok)
	assert.Equal(t, shirt, g)
	assert.Equal(t, []string{"Jacket", "Boots"}, names(w))

	summer, _ := w.Season("Summer")
	assert.Empty(t, summer)

	g, ok = w.RemoveAt(0)
	require.True(t, ok)
	assert.Equal(t, jacket, g)
	assert.Equal(t, []string{"Boots"}, names(w))
}

func TestRemoveAtOutOfRange(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt)

	_, ok := w.RemoveAt(5)
	assert.False(t, ok)
	assert.Equal(t, 2, w.Len())

	_, ok = w.RemoveAt(2)
	assert.False(t, ok)
	_, ok = w.RemoveAt(-1)
	assert.False(t, ok)

	winter, _ := w.Season("Winter")
	assert.Len(t, winter, 1)
}

func TestEditByFeature(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt)

	g, ok := w.EditByFeature("light1", types.GarmentPatch{Color: strPtr("Blue")})
	require.True(t, ok)

	want := shirt
	want.Color = "Blue"
	assert.Equal(t, want, g)
	assert.Equal(t, []types.Garment{jacket, want}, slices.Collect(w.All()))
}

func TestEditByFeatureMissing(t *testing.T) {
	w := newTestWardrobe(t, jacket)

	_, ok := w.EditByFeature("nope", types.GarmentPatch{Color: strPtr("Blue")})
	assert.False(t, ok)
	assert.Equal(t, []types.Garment{jacket}, slices.Collect(w.All()))
}

func TestEditDoesNotResyncBuckets(t *testing.T) {
	w := newTestWardrobe(t, jacket)

	_, ok := w.EditByFeature("warm1", types.GarmentPatch{
		Name:   strPtr("Parka"),
		Season: strPtr("Autumn"),
	})
	require.True(t, ok)

	winter, _ := w.Season("Winter")
	assert.Equal(t, []types.Garment{jacket}, winter, "bucket keeps the copy taken at insertion")
	autumn, _ := w.Season("Autumn")
	assert.Empty(t, autumn)

	// Removing by the new name leaves the stale copy behind.
	require.True(t, w.RemoveByName("Parka"))
	assert.Equal(t, 0, w.Len())
	winter, _ = w.Season("Winter")
	assert.Equal(t, []types.Garment{jacket}, winter)
}

func TestSortByName(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "empty", input: nil, want: nil},
		{name: "single", input: []string{"Scarf"}, want: []string{"Scarf"}},
		{name: "mixed", input: []string{"Shirt", "Boots", "Jacket", "Apron"}, want: []string{"Apron", "Boots", "Jacket", "Shirt"}},
		{name: "duplicates", input: []string{"b", "a", "b"}, want: []string{"a", "b", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWardrobe(t)
			for _, n := range tt.input {
				w.Add(types.Garment{Name: n})
			}

			w.SortByName()

			assert.Equal(t, tt.want, names(w))
			got := names(w)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1], got[i])
			}
		})
	}
}

func TestSortByNameLeavesBucketsAlone(t *testing.T) {
	w := newTestWardrobe(t, jacket, boots)

	w.SortByName()

	assert.Equal(t, []string{"Boots", "Jacket"}, names(w))
	winter, _ := w.Season("Winter")
	assert.Equal(t, []string{"Jacket", "Boots"}, bucketNames(winter))
}

func TestSortBySize(t *testing.T) {
	w := newTestWardrobe(t, jacket, shirt, boots)

	w.SortBySize()

	// Size text order: "L" < "M" < "S".
	assert.Equal(t, []string{"Boots", "Jacket", "Shirt"}, names(w))
	assert.Equal(t, 3, w.Len())

	winter, _ := w.Season("Winter")
	assert.Equal(t, []string{"Jacket", "Boots"}, bucketNames(winter), "buckets keep insertion order")
}

func TestLenTracksAddsAndRemovals(t *testing.T) {
	w := newTestWardrobe(t)
	for i, n := range []string{"a", "b", "c", "d"} {
		w.Add(types.Garment{Name: n, Feature: n})
		assert.Equal(t, i+1, w.Len())
	}

	w.RemoveByName("b")
	w.RemoveByName("zzz")
	w.RemoveAt(0)
	w.RemoveAt(10)

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []string{"c", "d"}, names(w))
}

func TestAddSeasonAndType(t *testing.T) {
	w, err := New(types.Config{Seasons: []string{"Winter"}})
	require.NoError(t, err)
	w.Add(types.Garment{Name: "Vest", Season: "Rainy", Type: "Top"})

	assert.True(t, w.AddSeason("Rainy"))
	assert.False(t, w.AddSeason("Rainy"))
	assert.False(t, w.AddSeason(""))
	assert.True(t, w.AddType("Top"))

	assert.Equal(t, []string{"Winter", "Rainy"}, w.Seasons())
	assert.Equal(t, []string{"Top"}, w.Types())

	rainy, ok := w.Season("Rainy")
	require.True(t, ok)
	assert.Empty(t, rainy, "existing garments are not back-filled")

	w.Add(types.Garment{Name: "Mac", Season: "Rainy", Type: "Top"})
	rainy, _ = w.Season("Rainy")
	assert.Equal(t, []string{"Mac"}, bucketNames(rainy))
}

func TestBucketViewsAreCopies(t *testing.T) {
	w := newTestWardrobe(t, jacket)

	winter, _ := w.Season("Winter")
	winter[0].Name = "changed"

	again, _ := w.Season("Winter")
	assert.Equal(t, "Jacket", again[0].Name)
}

func TestWithLoggerRecordsMutations(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	w, err := New(types.DefaultConfig(), WithLogger(log))
	require.NoError(t, err)

	w.Add(jacket)
	w.FindByFeature("warm1")
	assert.Contains(t, buf.String(), `"message":"garment added"`)
	assert.Contains(t, buf.String(), `"component":"wardrobe"`)

	buf.Reset()
	w.FindByFeature("warm1")
	assert.Empty(t, buf.String(), "reads are not logged")
}
