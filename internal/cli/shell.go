package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/internal/sqlite"
	"github.com/mesh-intelligence/wardrobe/internal/wardrobe"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage garments from an interactive menu",
		Long: `Shell opens the interactive menu. The inventory lives in memory for the
duration of the session and is discarded on exit.

Example:
  wardrobe shell
  wardrobe shell --json --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wardrobe.New(a.cfg, wardrobe.WithLogger(a.log))
			if err != nil {
				return userError(err)
			}
			s := newShell(w, cmd.InOrStdin(), cmd.OutOrStdout(), a.jsonMode, a.log)
			return s.run(cmd.Context())
		},
	}
}

// menu lists the shell options in display order.
var menu = []struct {
	key   string
	label string
}{
	{"1", "Add garment"},
	{"2", "Find garment by feature"},
	{"3", "Delete garment by position"},
	{"4", "Edit garment by feature"},
	{"5", "Sort garments by name (quicksort)"},
	{"6", "Show all garments"},
	{"7", "Sort garments by size"},
	{"8", "Delete garment by name"},
	{"9", "Show season and type buckets"},
	{"10", "Report"},
	{"0", "Exit"},
}

// shell reads menu choices and field values line by line and applies them
// to a Wardrobe.
type shell struct {
	w      *wardrobe.Wardrobe
	in     *bufio.Scanner
	out    io.Writer
	asJSON bool
	log    zerolog.Logger
}

func newShell(w *wardrobe.Wardrobe, in io.Reader, out io.Writer, asJSON bool, log zerolog.Logger) *shell {
	return &shell{
		w:      w,
		in:     bufio.NewScanner(in),
		out:    out,
		asJSON: asJSON,
		log:    log,
	}
}

// run loops until the user exits or input ends. Errors from a single
// action are printed and the loop continues.
func (s *shell) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		s.printMenu()
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return sysError(err)
		}

		choice = strings.TrimSpace(choice)
		if choice == "0" {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}

		err = s.dispatch(ctx, choice)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrOutOfRange),
			errors.Is(err, types.ErrEmptyField), errors.Is(err, types.ErrInvalidOption):
			fmt.Fprintf(s.out, "%v\n", err)
		default:
			s.log.Error().Err(err).Str("option", choice).Msg("shell action failed")
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *shell) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return s.add()
	case "2":
		return s.findByFeature()
	case "3":
		return s.removeAtPosition()
	case "4":
		return s.editByFeature()
	case "5":
		s.w.SortByName()
		fmt.Fprintln(s.out, "Garments sorted by name.")
		return nil
	case "6":
		return renderGarments(s.out, slices.Collect(s.w.All()), s.asJSON)
	case "7":
		s.w.SortBySize()
		fmt.Fprintln(s.out, "Garments sorted by size.")
		return nil
	case "8":
		return s.removeByName()
	case "9":
		return s.showBuckets()
	case "10":
		return s.report(ctx)
	default:
		return fmt.Errorf("%q: %w", choice, types.ErrInvalidOption)
	}
}

func (s *shell) printMenu() {
	fmt.Fprintln(s.out, "----- MENU -----")
	for _, item := range menu {
		fmt.Fprintf(s.out, "%s. %s\n", item.key, item.label)
	}
}

// prompt prints label and returns the next input line. It returns io.EOF
// once input is exhausted.
func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// promptRequired is prompt for a field that must not be blank.
func (s *shell) promptRequired(field string) (string, error) {
	v, err := s.prompt(fmt.Sprintf("Enter the garment %s: ", field))
	if err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%s: %w", field, types.ErrEmptyField)
	}
	return v, nil
}

func (s *shell) add() error {
	fmt.Fprintln(s.out, "----- ADD GARMENT -----")
	fields := make([]string, len(types.FieldNames))
	for i, name := range types.FieldNames {
		v, err := s.promptRequired(strings.ToLower(name))
		if err != nil {
			return err
		}
		fields[i] = v
	}

	g := types.Garment{
		Name:    fields[0],
		Season:  fields[1],
		Type:    fields[2],
		Color:   fields[3],
		Size:    fields[4],
		Feature: fields[5],
	}
	s.w.Add(g)
	fmt.Fprintln(s.out, "Garment added.")
	return nil
}

func (s *shell) findByFeature() error {
	feature, err := s.promptRequired("feature to search for")
	if err != nil {
		return err
	}
	g, ok := s.w.FindByFeature(feature)
	if !ok {
		return fmt.Errorf("no garment with feature %q: %w", feature, types.ErrNotFound)
	}
	fmt.Fprintln(s.out, "Garment found:")
	return renderGarment(s.out, g, s.asJSON)
}

func (s *shell) removeAtPosition() error {
	raw, err := s.prompt("Enter the position of the garment to delete: ")
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("position %q is not a number: %w", raw, types.ErrOutOfRange)
	}
	g, ok := s.w.RemoveAt(pos)
	if !ok {
		return fmt.Errorf("no garment at position %d: %w", pos, types.ErrOutOfRange)
	}
	fmt.Fprintln(s.out, "Garment deleted:")
	return renderGarment(s.out, g, s.asJSON)
}

func (s *shell) removeByName() error {
	name, err := s.promptRequired("name to delete")
	if err != nil {
		return err
	}
	if !s.w.RemoveByName(name) {
		return fmt.Errorf("no garment named %q: %w", name, types.ErrNotFound)
	}
	fmt.Fprintf(s.out, "Garment %q deleted.\n", name)
	return nil
}

// editByFeature shows the matching garment and asks for each field in
// turn. A blank answer keeps the current value.
func (s *shell) editByFeature() error {
	feature, err := s.promptRequired("feature of the garment to edit")
	if err != nil {
		return err
	}
	current, ok := s.w.FindByFeature(feature)
	if !ok {
		return fmt.Errorf("no garment with feature %q: %w", feature, types.ErrNotFound)
	}
	fmt.Fprintln(s.out, "Garment found:")
	if err := renderGarment(s.out, current, false); err != nil {
		return err
	}

	var patch types.GarmentPatch
	targets := []**string{&patch.Name, &patch.Season, &patch.Type, &patch.Color, &patch.Size, &patch.Feature}
	for i, name := range types.FieldNames {
		v, err := s.prompt(fmt.Sprintf("New %s [%s]: ", strings.ToLower(name), current.Fields()[i]))
		if err != nil {
			return err
		}
		if v = strings.TrimSpace(v); v != "" {
			*targets[i] = &v
		}
	}

	if patch.IsEmpty() {
		fmt.Fprintln(s.out, "Nothing changed.")
		return nil
	}
	g, _ := s.w.EditByFeature(feature, patch)
	fmt.Fprintln(s.out, "Garment updated:")
	return renderGarment(s.out, g, s.asJSON)
}

func (s *shell) showBuckets() error {
	collect := func(names []string, get func(string) ([]types.Garment, bool)) []bucketView {
		views := make([]bucketView, 0, len(names))
		for _, name := range names {
			garments, _ := get(name)
			views = append(views, bucketView{Name: name, Garments: garments})
		}
		return views
	}

	if err := renderBuckets(s.out, "Season", collect(s.w.Seasons(), s.w.Season), s.asJSON); err != nil {
		return err
	}
	return renderBuckets(s.out, "Type", collect(s.w.Types(), s.w.Type), s.asJSON)
}

func (s *shell) report(ctx context.Context) error {
	sum, err := sqlite.Summarize(ctx, s.w.All())
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	return renderSummary(s.out, sum, s.asJSON)
}
