package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestGarmentPatchApply(t *testing.T) {
	base := Garment{Name: "Shirt", Season: "Summer", Type: "Top", Color: "White", Size: "S", Feature: "light1"}

	tests := []struct {
		name  string
		patch GarmentPatch
		want  Garment
	}{
		{
			name:  "empty patch leaves garment unchanged",
			patch: GarmentPatch{},
			want:  base,
		},
		{
			name:  "color only",
			patch: GarmentPatch{Color: strPtr("Blue")},
			want:  Garment{Name: "Shirt", Season: "Summer", Type: "Top", Color: "Blue", Size: "S", Feature: "light1"},
		},
		{
			name: "all fields",
			patch: GarmentPatch{
				Name: strPtr("Tee"), Season: strPtr("Spring"), Type: strPtr("Shirt"),
				Color: strPtr("Red"), Size: strPtr("L"), Feature: strPtr("cotton"),
			},
			want: Garment{Name: "Tee", Season: "Spring", Type: "Shirt", Color: "Red", Size: "L", Feature: "cotton"},
		},
		{
			name:  "explicit empty string is written",
			patch: GarmentPatch{Size: strPtr("")},
			want:  Garment{Name: "Shirt", Season: "Summer", Type: "Top", Color: "White", Size: "", Feature: "light1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}

func TestGarmentPatchIsEmpty(t *testing.T) {
	assert.True(t, GarmentPatch{}.IsEmpty())
	assert.False(t, GarmentPatch{Feature: strPtr("x")}.IsEmpty())
}

func TestGarmentFieldsMatchFieldNames(t *testing.T) {
	g := Garment{Name: "a", Season: "b", Type: "c", Color: "d", Size: "e", Feature: "f"}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, g.Fields())
	assert.Len(t, FieldNames, len(g.Fields()))
}
