// Package main provides the visiblegrid command that prints the
// visible cells of spreadsheet files as aligned text tables.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-sheetgrid"
	"github.com/domonda/go-sheetgrid/csvsource"
	"github.com/domonda/go-sheetgrid/table"
	"github.com/domonda/go-sheetgrid/xlsbsource"
	"github.com/domonda/go-sheetgrid/xlsxsource"
)

type config struct {
	sheets           []string
	sheetIndices     []int
	showHiddenSheets bool
	showHiddenRows   bool
	showHiddenCols   bool
	usecols          string
	usecolNames      []string
	skiprows         []int
	header           int
	noHeader         bool
	nrows            int
	formatted        bool
	verbose          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	rootCmd := &cobra.Command{
		Use:   "visiblegrid [file]",
		Short: "Print the visible cells of spreadsheet sheets",
		Long: `visiblegrid loads an .xlsx, .xlsm, .xlsb or .csv file and prints
the cells of the selected sheets that are not hidden,
with hidden rows and columns removed and the rest renumbered.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], &cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringArrayVar(&cfg.sheets, "sheet", nil, "Sheet name to print, can be repeated")
	flags.IntSliceVar(&cfg.sheetIndices, "sheet-index", nil, "0-based index of a sheet to print, can be repeated")
	flags.BoolVar(&cfg.showHiddenSheets, "show-hidden-sheets", false, "Make hidden sheets selectable")
	flags.BoolVar(&cfg.showHiddenRows, "show-hidden-rows", false, "Keep hidden rows")
	flags.BoolVar(&cfg.showHiddenCols, "show-hidden-cols", false, "Keep hidden columns")
	flags.StringVar(&cfg.usecols, "usecols", "", "Columns to parse as letters like A:C,E")
	flags.StringSliceVar(&cfg.usecolNames, "usecols-name", nil, "Header names of the columns to print")
	flags.IntSliceVar(&cfg.skiprows, "skiprows", nil, "0-based sheet rows to skip")
	flags.IntVar(&cfg.header, "header", 0, "0-based index of the header row within the remaining rows")
	flags.BoolVar(&cfg.noHeader, "no-header", false, "Sheets have no header row")
	flags.IntVar(&cfg.nrows, "nrows", 0, "Maximum number of data rows per sheet")
	flags.BoolVar(&cfg.formatted, "formatted", false, "Print Excel formatted values instead of raw values")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log debug information")
	rootCmd.MarkFlagsMutuallyExclusive("usecols", "usecols-name")
	rootCmd.MarkFlagsMutuallyExclusive("header", "no-header")

	return rootCmd
}

func (cfg *config) options() sheetgrid.Options {
	opts := sheetgrid.DefaultOptions
	if cfg.showHiddenSheets {
		opts &^= sheetgrid.OptionHideSheets
	}
	if cfg.showHiddenRows {
		opts &^= sheetgrid.OptionHideRows
	}
	if cfg.showHiddenCols {
		opts &^= sheetgrid.OptionHideColumns
	}
	return opts
}

func (cfg *config) parseOptions() sheetgrid.ParseOptions {
	popts := sheetgrid.ParseOptions{
		SkipRows:  cfg.skiprows,
		HeaderRow: cfg.header,
		NumRows:   cfg.nrows,
	}
	if cfg.noHeader {
		popts.HeaderRow = table.NoHeaderRow
	}
	switch {
	case cfg.usecols != "":
		popts.UseCols = sheetgrid.ColumnLetters(cfg.usecols)
	case len(cfg.usecolNames) > 0:
		popts.UseCols = sheetgrid.ColumnNames(cfg.usecolNames...)
	}
	return popts
}

func (cfg *config) sheetRefs() []sheetgrid.SheetRef {
	refs := make([]sheetgrid.SheetRef, 0, len(cfg.sheets)+len(cfg.sheetIndices))
	for _, name := range cfg.sheets {
		refs = append(refs, sheetgrid.SheetNamed(name))
	}
	for _, index := range cfg.sheetIndices {
		refs = append(refs, sheetgrid.SheetAt(index))
	}
	return refs
}

func run(stdout, stderr io.Writer, filename string, cfg *config) error {
	log := logrus.New()
	log.SetOutput(stderr)
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	wb, err := load(filename, cfg.formatted)
	if err != nil {
		return fmt.Errorf("loading %s: %w", filename, err)
	}
	opts := cfg.options()
	log.WithFields(logrus.Fields{
		"file":    filename,
		"sheets":  len(wb.Sheets),
		"options": opts,
	}).Debug("Loaded workbook")

	var views []table.View
	if refs := cfg.sheetRefs(); len(refs) > 0 {
		views, err = sheetgrid.ParseSheets(wb, refs, opts, cfg.parseOptions())
	} else {
		views, err = sheetgrid.ParseAll(wb, opts, cfg.parseOptions())
	}
	if err != nil {
		return err
	}

	for i, view := range views {
		log.WithFields(logrus.Fields{
			"sheet":   view.Title(),
			"rows":    view.NumRows(),
			"columns": len(view.Columns()),
		}).Debug("Parsed sheet")
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		printView(stdout, view)
	}
	return nil
}

func load(filename string, formatted bool) (*sheetgrid.Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return xlsxsource.ReadFile(fs.File(filename), xlsxsource.ReadOptions{FormattedValues: formatted})
	case ".xlsb":
		return xlsbsource.ReadLocalFile(filename)
	case ".csv", ".tsv", ".txt":
		wb, _, err := csvsource.ReadFile(fs.File(filename), nil)
		return wb, err
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
}

func printView(w io.Writer, view table.View) {
	fmt.Fprintf(w, "# %s\n", view.Title())
	rows := table.ViewStrings(view, true)
	widths := table.StringColumnWidths(rows, len(view.Columns()))
	for _, row := range rows {
		var b strings.Builder
		for col, str := range row {
			if col > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(str)
			if col < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[col]-len([]rune(str))))
			}
		}
		fmt.Fprintln(w, b.String())
	}
}
