package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/catalog"
	"github.com/katalvlaran/framefixtures/fixture"
	"github.com/katalvlaran/framefixtures/frame"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type renderOptions struct {
	catalogPath string
	name        string
	all         bool
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render [dsl]",
		Short: "Build a fixture and print it as a table",
		Long: `Builds the fixture described by a DSL argument, or by a named catalog
entry, and prints it with its row labels, column labels and dtypes.

Without --catalog, names resolve against the built-in catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog of named fixtures")
	cmd.Flags().StringVar(&opts.name, "name", "", "catalog fixture to render")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every catalog fixture")
	return cmd
}

func (a *app) render(cmd *cobra.Command, args []string, opts renderOptions) error {
	out := cmd.OutOrStdout()
	b := fixture.NewBuilder(fixture.WithLogger(a.logger))

	sources := 0
	for _, set := range []bool{len(args) == 1, opts.name != "", opts.all} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("render needs exactly one of a DSL argument, --name or --all")
	}

	if len(args) == 1 {
		f, err := b.Parse(args[0])
		if err != nil {
			return err
		}
		return writeFrame(out, args[0], f)
	}

	cat, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	if opts.name != "" {
		e, err := cat.Lookup(opts.name)
		if err != nil {
			return err
		}
		f, err := cat.Build(opts.name, catalog.WithBuilder(b), catalog.WithLogger(a.logger))
		if err != nil {
			return err
		}
		return writeFrame(out, e.Name+": "+e.DSL, f)
	}

	built, err := cat.BuildAll(cmd.Context(), catalog.WithBuilder(b), catalog.WithLogger(a.logger))
	if err != nil {
		return err
	}
	for _, bf := range built {
		if err := writeFrame(out, bf.Entry.Name+": "+bf.Entry.DSL, bf.Frame); err != nil {
			return err
		}
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin()
	}
	return catalog.Load(path)
}

func writeFrame(w io.Writer, title string, f *frame.Frame) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", headerStyle.Render(title), frameTable(f))
	return err
}

// frameTable lays f out with row labels in the first column and a dtype
// row at the bottom.
func frameTable(f *frame.Frame) string {
	rows, cols := f.Shape()
	headers := make([]string, 0, cols+1)
	headers = append(headers, f.Constructor().String())
	for c := range cols {
		headers = append(headers, array.Format(f.Columns().At(c)))
	}

	body := make([][]string, 0, rows+1)
	for r, rec := range f.Records() {
		row := make([]string, 0, cols+1)
		row = append(row, array.Format(f.Index().At(r)))
		for _, v := range rec {
			row = append(row, array.Format(v))
		}
		body = append(body, row)
	}
	dts := make([]string, 0, cols+1)
	dts = append(dts, "")
	for _, dt := range f.DTypes() {
		dts = append(dts, "<"+dt.String()+">")
	}
	body = append(body, dts)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || row == len(body)-1:
				return labelStyle
			}
			return cellStyle
		})
	return strings.TrimRight(t.String(), "\n")
}
