package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/internal/sqlite"
	"github.com/mesh-intelligence/wardrobe/internal/wardrobe"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// demoGarments seeds the demo wardrobe.
var demoGarments = []types.Garment{
	{Name: "Shirt", Season: "Summer", Type: "Top", Color: "White", Size: "S", Feature: "light1"},
	{Name: "Jacket", Season: "Winter", Type: "Coat", Color: "Black", Size: "M", Feature: "warm1"},
	{Name: "Sandals", Season: "Summer", Type: "Footwear", Color: "Tan", Size: "L", Feature: "open"},
	{Name: "Raincoat", Season: "Autumn", Type: "Coat", Color: "Yellow", Size: "XL", Feature: "waterproof"},
	{Name: "Jeans", Season: "Spring", Type: "Bottom", Color: "Blue", Size: "M", Feature: "denim"},
}

func newDemoCmd(a *app) *cobra.Command {
	var bySize bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Load sample garments, sort them and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wardrobe.New(a.cfg, wardrobe.WithLogger(a.log))
			if err != nil {
				return userError(err)
			}
			for _, g := range demoGarments {
				w.Add(g)
			}
			if bySize {
				w.SortBySize()
			} else {
				w.SortByName()
			}

			out := cmd.OutOrStdout()
			sum, err := sqlite.Summarize(cmd.Context(), w.All())
			if err != nil {
				return sysError(fmt.Errorf("build report: %w", err))
			}
			if a.jsonMode {
				return writeJSON(out, struct {
					Garments []types.Garment `json:"garments"`
					Report   *sqlite.Summary `json:"report"`
				}{slices.Collect(w.All()), sum})
			}

			if err := renderGarments(out, slices.Collect(w.All()), false); err != nil {
				return sysError(err)
			}
			fmt.Fprintln(out)
			return renderSummary(out, sum, false)
		},
	}
	cmd.Flags().BoolVar(&bySize, "by-size", false, "sort by size instead of name")
	return cmd
}
