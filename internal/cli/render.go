package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fbiville/markdown-table-formatter/pkg/markdown"

	"github.com/mesh-intelligence/wardrobe/internal/sqlite"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderGarments prints garments as a numbered table. Row numbers are the
// positions accepted by delete-by-position.
func renderGarments(w io.Writer, garments []types.Garment, asJSON bool) error {
	if asJSON {
		if garments == nil {
			garments = []types.Garment{}
		}
		return writeJSON(w, garments)
	}
	if len(garments) == 0 {
		_, err := fmt.Fprintln(w, "No garments.")
		return err
	}

	rows := make([][]string, 0, len(garments))
	for i, g := range garments {
		rows = append(rows, append([]string{strconv.Itoa(i)}, g.Fields()...))
	}
	columns := append([]string{"#"}, types.FieldNames...)
	table, err := markdown.NewTableFormatterBuilder().
		WithPrettyPrint().
		Build(columns...).
		Format(rows)
	if err != nil {
		return fmt.Errorf("format garments: %w", err)
	}
	_, err = fmt.Fprint(w, table)
	return err
}

// renderGarment prints one garment as labelled lines.
func renderGarment(w io.Writer, g types.Garment, asJSON bool) error {
	if asJSON {
		return writeJSON(w, g)
	}
	for i, label := range types.FieldNames {
		if _, err := fmt.Fprintf(w, "%s: %s\n", label, g.Fields()[i]); err != nil {
			return err
		}
	}
	return nil
}

// renderSummary prints the per-dimension counts of a report.
func renderSummary(w io.Writer, sum *sqlite.Summary, asJSON bool) error {
	if asJSON {
		return writeJSON(w, sum)
	}
	fmt.Fprintf(w, "Total garments: %d\n", sum.Total)

	sections := []struct {
		title  string
		counts []sqlite.Count
	}{
		{"Season", sum.BySeason},
		{"Type", sum.ByType},
		{"Color", sum.ByColor},
		{"Size", sum.BySize},
	}
	for _, s := range sections {
		if len(s.counts) == 0 {
			continue
		}
		rows := make([][]string, 0, len(s.counts))
		for _, c := range s.counts {
			rows = append(rows, []string{c.Value, strconv.Itoa(c.Count)})
		}
		table, err := markdown.NewTableFormatterBuilder().
			WithPrettyPrint().
			Build(s.title, "Count").
			Format(rows)
		if err != nil {
			return fmt.Errorf("format %s counts: %w", s.title, err)
		}
		fmt.Fprintf(w, "\n%s", table)
	}
	return nil
}

// bucketView is the JSON shape of one bucket.
type bucketView struct {
	Name     string          `json:"name"`
	Garments []types.Garment `json:"garments"`
}

// renderBuckets prints bucket names with the names of the garment copies
// they hold.
func renderBuckets(w io.Writer, title string, buckets []bucketView, asJSON bool) error {
	if asJSON {
		return writeJSON(w, map[string][]bucketView{title: buckets})
	}
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		names := ""
		for i, g := range b.Garments {
			if i > 0 {
				names += ", "
			}
			names += g.Name
		}
		rows = append(rows, []string{b.Name, strconv.Itoa(len(b.Garments)), names})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No %s buckets.\n", title)
		return err
	}
	table, err := markdown.NewTableFormatterBuilder().
		WithPrettyPrint().
		Build(title, "Count", "Garments").
		Format(rows)
	if err != nil {
		return fmt.Errorf("format %s buckets: %w", title, err)
	}
	_, err = fmt.Fprint(w, table)
	return err
}
