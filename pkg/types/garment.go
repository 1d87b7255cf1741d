package types

// Garment is one inventory record. Name doubles as the lookup key for
// edit and delete by name; Feature is the tag used by search and edit.
type Garment struct {
	Name    string `json:"name" yaml:"name"`
	Season  string `json:"season" yaml:"season"`
	Type    string `json:"type" yaml:"type"`
	Color   string `json:"color" yaml:"color"`
	Size    string `json:"size" yaml:"size"`
	Feature string `json:"feature" yaml:"feature"`
}

// Fields returns the garment attributes in display order, matching
// FieldNames.
func (g Garment) Fields() []string {
	return []string{g.Name, g.Season, g.Type, g.Color, g.Size, g.Feature}
}

// FieldNames lists the garment attribute labels in display order.
var FieldNames = []string{"Name", "Season", "Type", "Color", "Size", "Feature"}

// GarmentPatch describes an edit. Nil fields are left unchanged.
type GarmentPatch struct {
	Name    *string `json:"name,omitempty"`
	Season  *string `json:"season,omitempty"`
	Type    *string `json:"type,omitempty"`
	Color   *string `json:"color,omitempty"`
	Size    *string `json:"size,omitempty"`
	Feature *string `json:"feature,omitempty"`
}

// Apply returns g with every non-nil patch field written over it.
func (p GarmentPatch) Apply(g Garment) Garment {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&g.Name, p.Name)
	set(&g.Season, p.Season)
	set(&g.Type, p.Type)
	set(&g.Color, p.Color)
	set(&g.Size, p.Size)
	set(&g.Feature, p.Feature)
	return g
}

// IsEmpty reports whether the patch changes nothing.
func (p GarmentPatch) IsEmpty() bool {
	return p.Name == nil && p.Season == nil && p.Type == nil &&
		p.Color == nil && p.Size == nil && p.Feature == nil
}
