package regmap

import (
	"sort"

	"github.com/regview/regview/register"
)

// The register map presents a set of offset-placed registers as fixed-width
// address rows. Registers may span several rows and may overlap each other in
// the address space; overlap is a display-level warning here, never a
// rejection, unlike field overlap inside one register.

// Options configures the map computation.
type Options struct {
	RowWidth     int  // address units per row
	AddrUnitBits int  // bits per address unit, commonly 8
	ShowGaps     bool // emit unoccupied rows/cells as placeholders
	Reverse      bool // reverse the final row order
}

func (o Options) withDefaults() Options {
	if o.RowWidth <= 0 {
		o.RowWidth = 4
	}
	if o.AddrUnitBits <= 0 {
		o.AddrUnitBits = 8
	}
	return o
}

// Entry is one placed register with its computed address-unit range.
// HasOverlap marks entries whose range intersects another register's.
type Entry struct {
	Def        register.RegisterDef
	Start      int64 // inclusive address units
	End        int64
	HasOverlap bool
}

// Segment is a slice of a cell's bit window: either a field (clamped to the
// window, IsPartial when it continues outside) or a reserved gap when Field
// is nil.
type Segment struct {
	Field     register.Field
	WidthBits int
	IsPartial bool
}

// Cell is one register's presence in one row, or a gap placeholder when
// Entry is nil. Span counts the register's cells across rows so renderers
// can show the total width only on the last one.
type Cell struct {
	Entry      *Entry
	Start      int64 // address units covered within the row
	End        int64
	Span       int
	TotalSpans int
	Segments   []Segment
}

// Row is one fixed-width address row.
type Row struct {
	Start int64
	End   int64
	Cells []Cell
}

// Layout is the computed register map.
type Layout struct {
	Rows    []Row
	Entries []*Entry
}

// Compute lays out the placed registers over the minimum-to-maximum covered
// address span. Registers without an offset are ignored.
func Compute(defs []register.RegisterDef, opts Options) Layout {
	opts = opts.withDefaults()

	entries := place(defs, opts.AddrUnitBits)
	markOverlaps(entries)
	if len(entries) == 0 {
		return Layout{Entries: entries}
	}

	firstRow := entries[0].Start / int64(opts.RowWidth)
	lastRow := entries[0].End / int64(opts.RowWidth)
	for _, e := range entries[1:] {
		if r := e.Start / int64(opts.RowWidth); r < firstRow {
			firstRow = r
		}
		if r := e.End / int64(opts.RowWidth); r > lastRow {
			lastRow = r
		}
	}

	var rows []Row
	for r := firstRow; r <= lastRow; r++ {
		row := buildRow(r, entries, opts)
		if row == nil {
			continue
		}
		rows = append(rows, *row)
	}

	if opts.Reverse {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return Layout{Rows: rows, Entries: entries}
}

// place converts offsets and widths into address-unit ranges, keeping input
// order.
func place(defs []register.RegisterDef, unitBits int) []*Entry {
	var entries []*Entry
	for _, def := range defs {
		off, ok := def.PlacedAt()
		if !ok || def.Width <= 0 {
			continue
		}
		units := int64((def.Width + unitBits - 1) / unitBits)
		entries = append(entries, &Entry{
			Def:   def,
			Start: off,
			End:   off + units - 1,
		})
	}
	return entries
}

// markOverlaps flags every entry whose address range intersects a different
// register's. Quadratic over the register count.
func markOverlaps(entries []*Entry) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.Start <= b.End && b.Start <= a.End {
				a.HasOverlap = true
				b.HasOverlap = true
			}
		}
	}
}

// buildRow assembles one address row, or nil when the row is unoccupied and
// gaps are suppressed.
func buildRow(rowIdx int64, entries []*Entry, opts Options) *Row {
	rw := int64(opts.RowWidth)
	rs := rowIdx * rw
	re := rs + rw - 1

	var occupants []*Entry
	for _, e := range entries {
		if e.Start <= re && e.End >= rs {
			occupants = append(occupants, e)
		}
	}
	if len(occupants) == 0 {
		if !opts.ShowGaps {
			return nil
		}
		return &Row{Start: rs, End: re, Cells: []Cell{{Start: rs, End: re}}}
	}

	row := &Row{Start: rs, End: re}
	for _, e := range occupants {
		cs, ce := e.Start, e.End
		if cs < rs {
			cs = rs
		}
		if ce > re {
			ce = re
		}
		firstRowOfEntry := e.Start / rw
		lastRowOfEntry := e.End / rw
		cell := Cell{
			Entry:      e,
			Start:      cs,
			End:        ce,
			Span:       int(rowIdx - firstRowOfEntry),
			TotalSpans: int(lastRowOfEntry - firstRowOfEntry + 1),
		}
		cell.Segments = segments(e, cs, ce, opts.AddrUnitBits)
		row.Cells = append(row.Cells, cell)
	}

	if opts.ShowGaps {
		row.Cells = append(row.Cells, gapCells(rs, re, occupants)...)
	}

	sort.SliceStable(row.Cells, func(i, j int) bool {
		return row.Cells[i].Start < row.Cells[j].Start
	})

	return row
}

// gapCells emits placeholder cells for the unit ranges of a row covered by
// no register.
func gapCells(rs, re int64, occupants []*Entry) []Cell {
	covered := make([]bool, re-rs+1)
	for _, e := range occupants {
		for u := max64(e.Start, rs); u <= min64(e.End, re); u++ {
			covered[u-rs] = true
		}
	}

	var cells []Cell
	for u := rs; u <= re; {
		if covered[u-rs] {
			u++
			continue
		}
		start := u
		for u <= re && !covered[u-rs] {
			u++
		}
		cells = append(cells, Cell{Start: start, End: u - 1})
	}
	return cells
}

// segments decomposes the slice of a register visible in one cell into
// MSB-first field segments interleaved with synthetic reserved gaps. The
// first address unit of a register holds its most significant bits.
func segments(e *Entry, cellStart, cellEnd int64, unitBits int) []Segment {
	width := e.Def.Width
	relStart := int(cellStart - e.Start)
	relEnd := int(cellEnd - e.Start)

	hi := width - 1 - relStart*unitBits
	lo := width - (relEnd+1)*unitBits
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		return nil
	}

	fields := e.Def.Fields
	owner := func(bit int) int {
		for i, f := range fields {
			fi := f.Info()
			if bit <= fi.MSB && bit >= fi.LSB {
				return i
			}
		}
		return -1
	}

	var out []Segment
	runStart := hi
	runOwner := owner(hi)
	flush := func(runEnd int) {
		seg := Segment{WidthBits: runStart - runEnd + 1}
		if runOwner >= 0 {
			f := fields[runOwner]
			fi := f.Info()
			seg.Field = f
			seg.IsPartial = fi.MSB > runStart || fi.LSB < runEnd
		}
		out = append(out, seg)
	}

	for bit := hi - 1; bit >= lo; bit-- {
		if o := owner(bit); o != runOwner {
			flush(bit + 1)
			runStart, runOwner = bit, o
		}
	}
	flush(lo)

	return out
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
