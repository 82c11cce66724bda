package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/regview/regview"
	"github.com/regview/regview/bits"
	"github.com/regview/regview/codec"
	"github.com/regview/regview/project"
	"github.com/regview/regview/register"
	"github.com/regview/regview/regmap"
	"github.com/regview/regview/sanitize"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to project JSON (built-in example when omitted)")
		regName     = flag.String("register", "", "Register to decode, by name or ID")
		value       = flag.String("value", "", "Hex value to decode instead of the stored one")
		list        = flag.Bool("list", false, "List registers and exit")
		showMap     = flag.Bool("map", false, "Print the address-ordered register map")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			project.SetLogger(logger)
		}
	}

	if *interactive {
		if err := runInteractive(*file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *regName, *value, *list, *showMap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, regName, value string, list, showMap bool) error {
	doc, err := loadDocument(file)
	if err != nil {
		return err
	}

	if list {
		fmt.Printf("Registers: %d\n\n", len(doc.Registers))
		for _, def := range doc.Registers {
			loc := "unplaced"
			if off, ok := def.PlacedAt(); ok {
				loc = fmt.Sprintf("0x%02X", off)
			}
			fmt.Printf("  %-12s %3d bits  %-9s %s\n", def.Name, def.Width, loc, def.Description)
		}
		return nil
	}

	if showMap {
		return printMap(doc)
	}

	if regName == "" {
		fmt.Fprintln(os.Stderr, "Usage: regview [-file project.json] -register <name> [-value 0x..]")
		fmt.Fprintln(os.Stderr, "       regview [-file project.json] -list")
		fmt.Fprintln(os.Stderr, "       regview [-file project.json] -map")
		fmt.Fprintln(os.Stderr, "       regview [-file project.json] -i  (interactive mode)")
		os.Exit(1)
	}

	def, ok := findRegister(doc, regName)
	if !ok {
		return fmt.Errorf("no register named %q", regName)
	}

	raw := doc.Values.Get(def.ID)
	if value != "" {
		raw, err = bits.ParseHex(value)
		if err != nil {
			return fmt.Errorf("parse value: %w", err)
		}
		raw = bits.Clamp(raw, def.Width)
	}

	return printRegister(def, raw)
}

func loadDocument(file string) (project.Document, error) {
	if file == "" {
		return project.ExampleDocument(), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return project.Document{}, fmt.Errorf("read file: %w", err)
	}

	doc, warnings, err := project.Import(data, sanitize.New(nil), regview.DefaultLimits())
	if err != nil {
		return project.Document{}, fmt.Errorf("import: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return doc, nil
}

func findRegister(doc project.Document, name string) (register.RegisterDef, bool) {
	if def, ok := doc.RegisterByID(name); ok {
		return def, true
	}
	for _, def := range doc.Registers {
		if strings.EqualFold(def.Name, name) {
			return def, true
		}
	}
	return register.RegisterDef{}, false
}

func printRegister(def register.RegisterDef, raw *big.Int) error {
	fmt.Printf("%s = %s (%d bits)\n", def.Name, bits.FormatHex(raw), def.Width)
	if def.Description != "" {
		fmt.Printf("%s\n", def.Description)
	}
	fmt.Println()

	for _, f := range def.Fields {
		fi := f.Info()
		fieldBits := bits.Extract(raw, fi.MSB, fi.LSB)
		decoded := codec.Decode(raw, f)
		fmt.Printf("  [%2d:%2d] %-12s %-10s = %s\n",
			fi.MSB, fi.LSB, fi.Name, bits.FormatHex(fieldBits), decoded)
	}
	return nil
}

func printMap(doc project.Document) error {
	rowWidth := 4
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols >= 120 {
		rowWidth = 8
	}

	layout := regmap.Compute(doc.Registers, regmap.Options{RowWidth: rowWidth, ShowGaps: true})
	if len(layout.Rows) == 0 {
		fmt.Println("No placed registers.")
		return nil
	}

	for _, row := range layout.Rows {
		fmt.Printf("0x%04X  ", row.Start)
		var cells []string
		for _, cell := range row.Cells {
			units := int(cell.End - cell.Start + 1)
			if cell.Entry == nil {
				cells = append(cells, fmt.Sprintf("%-*s", units*12, "--"))
				continue
			}
			name := cell.Entry.Def.Name
			if cell.TotalSpans > 1 {
				name = fmt.Sprintf("%s (%d/%d)", name, cell.Span+1, cell.TotalSpans)
			}
			if cell.Entry.HasOverlap {
				name += " !"
			}
			cells = append(cells, fmt.Sprintf("%-*s", units*12, name))
		}
		fmt.Println(strings.Join(cells, "| "))
	}

	for _, e := range layout.Entries {
		if e.HasOverlap {
			fmt.Printf("\n! %s overlaps another register in [0x%02X, 0x%02X]\n",
				e.Def.Name, e.Start, e.End)
		}
	}
	return nil
}
