package regmap

import (
	"testing"

	"github.com/regview/regview/register"
)

func placedReg(id string, offset int64, width int, fields ...register.Field) register.RegisterDef {
	off := offset
	return register.RegisterDef{
		ID: id, Name: id, Width: width, Offset: &off, Fields: fields,
	}
}

func intField(name string, msb, lsb int) register.Integer {
	return register.Integer{FieldInfo: register.FieldInfo{ID: name, Name: name, MSB: msb, LSB: lsb}}
}

func TestCompute_OverlapDetection(t *testing.T) {
	// [0x00,0x03] and [0x02,0x05] share units 2 and 3.
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 32),
		placedReg("b", 0x02, 32),
		placedReg("c", 0x10, 8),
	}

	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	if len(l.Entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(l.Entries))
	}

	byID := map[string]*Entry{}
	for _, e := range l.Entries {
		byID[e.Def.ID] = e
	}

	if !byID["a"].HasOverlap || !byID["b"].HasOverlap {
		t.Error("overlapping registers must both be flagged")
	}
	if byID["c"].HasOverlap {
		t.Error("non-overlapping register must not be flagged")
	}
	if byID["a"].Start != 0 || byID["a"].End != 3 {
		t.Errorf("a range [%d,%d], want [0,3]", byID["a"].Start, byID["a"].End)
	}
	if byID["b"].Start != 2 || byID["b"].End != 5 {
		t.Errorf("b range [%d,%d], want [2,5]", byID["b"].Start, byID["b"].End)
	}
}

func TestCompute_AdjacentRegistersDoNotOverlap(t *testing.T) {
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 16),
		placedReg("b", 0x02, 16),
	}
	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	for _, e := range l.Entries {
		if e.HasOverlap {
			t.Errorf("register %s flagged for touching, not overlapping", e.Def.ID)
		}
	}
}

func TestCompute_RowPartitioning(t *testing.T) {
	// A 6-unit register starting at 0x02 crosses the 4-unit row boundary.
	defs := []register.RegisterDef{placedReg("a", 0x02, 48)}

	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	if len(l.Rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(l.Rows))
	}

	first, second := l.Rows[0], l.Rows[1]
	if first.Start != 0 || second.Start != 4 {
		t.Errorf("row starts %d, %d; want 0, 4", first.Start, second.Start)
	}

	c0 := first.Cells[0]
	if c0.Span != 0 || c0.TotalSpans != 2 {
		t.Errorf("first cell span %d/%d, want 0/2", c0.Span, c0.TotalSpans)
	}
	if c0.Start != 2 || c0.End != 3 {
		t.Errorf("first cell covers [%d,%d], want [2,3]", c0.Start, c0.End)
	}

	c1 := second.Cells[0]
	if c1.Span != 1 || c1.TotalSpans != 2 {
		t.Errorf("second cell span %d/%d, want 1/2", c1.Span, c1.TotalSpans)
	}
	if c1.Start != 4 || c1.End != 7 {
		t.Errorf("second cell covers [%d,%d], want [4,7]", c1.Start, c1.End)
	}
}

func TestCompute_GapRows(t *testing.T) {
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 8),
		placedReg("b", 0x0C, 8),
	}

	t.Run("suppressed", func(t *testing.T) {
		l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
		if len(l.Rows) != 2 {
			t.Fatalf("unoccupied rows should be omitted: got %d rows", len(l.Rows))
		}
		if l.Rows[0].Start != 0 || l.Rows[1].Start != 12 {
			t.Errorf("row starts %d, %d", l.Rows[0].Start, l.Rows[1].Start)
		}
	})

	t.Run("emitted", func(t *testing.T) {
		l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8, ShowGaps: true})
		if len(l.Rows) != 4 {
			t.Fatalf("want 4 rows including gaps, got %d", len(l.Rows))
		}
		gap := l.Rows[1]
		if len(gap.Cells) != 1 || gap.Cells[0].Entry != nil {
			t.Errorf("gap row should hold one placeholder cell: %+v", gap.Cells)
		}
	})
}

func TestCompute_GapCellsWithinRow(t *testing.T) {
	defs := []register.RegisterDef{placedReg("a", 0x01, 8)}

	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8, ShowGaps: true})
	if len(l.Rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(l.Rows))
	}

	cells := l.Rows[0].Cells
	if len(cells) != 3 {
		t.Fatalf("want gap, register, gap; got %d cells", len(cells))
	}
	if cells[0].Entry != nil || cells[0].Start != 0 || cells[0].End != 0 {
		t.Errorf("leading gap cell: %+v", cells[0])
	}
	if cells[1].Entry == nil || cells[1].Start != 1 {
		t.Errorf("register cell: %+v", cells[1])
	}
	if cells[2].Entry != nil || cells[2].Start != 2 || cells[2].End != 3 {
		t.Errorf("trailing gap cell: %+v", cells[2])
	}
}

func TestCompute_Segments(t *testing.T) {
	// 16-bit register with a flag at bit 15, a field at [11:4], rest reserved.
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 16,
			register.Flag{FieldInfo: register.FieldInfo{ID: "en", Name: "EN", MSB: 15, LSB: 15}},
			intField("VAL", 11, 4),
		),
	}

	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	cell := l.Rows[0].Cells[0]

	// Window is the whole register: EN, gap, VAL, gap.
	want := []struct {
		name    string
		width   int
		partial bool
	}{
		{"EN", 1, false},
		{"", 3, false},
		{"VAL", 8, false},
		{"", 4, false},
	}

	if len(cell.Segments) != len(want) {
		t.Fatalf("want %d segments, got %+v", len(want), cell.Segments)
	}
	for i, w := range want {
		seg := cell.Segments[i]
		name := ""
		if seg.Field != nil {
			name = seg.Field.Info().Name
		}
		if name != w.name || seg.WidthBits != w.width || seg.IsPartial != w.partial {
			t.Errorf("segment %d: %q width=%d partial=%v, want %q/%d/%v",
				i, name, seg.WidthBits, seg.IsPartial, w.name, w.width, w.partial)
		}
	}
}

func TestCompute_SegmentsClampedToCellWindow(t *testing.T) {
	// 32-bit register crossing a 2-unit row: each cell sees 16 bits, and the
	// field [23:8] is cut by both windows.
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 32, intField("MID", 23, 8)),
	}

	l := Compute(defs, Options{RowWidth: 2, AddrUnitBits: 8})
	if len(l.Rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(l.Rows))
	}

	// First cell: bits [31:16] = reserved [31:24] then MID's upper half.
	top := l.Rows[0].Cells[0].Segments
	if len(top) != 2 || top[0].Field != nil || top[1].Field == nil {
		t.Fatalf("top segments: %+v", top)
	}
	if top[1].WidthBits != 8 || !top[1].IsPartial {
		t.Errorf("top MID segment should be an 8-bit partial: %+v", top[1])
	}

	// Second cell: MID's lower half then reserved [7:0].
	bottom := l.Rows[1].Cells[0].Segments
	if len(bottom) != 2 || bottom[0].Field == nil || bottom[1].Field != nil {
		t.Fatalf("bottom segments: %+v", bottom)
	}
	if bottom[0].WidthBits != 8 || !bottom[0].IsPartial {
		t.Errorf("bottom MID segment should be an 8-bit partial: %+v", bottom[0])
	}
}

func TestCompute_Reverse(t *testing.T) {
	defs := []register.RegisterDef{
		placedReg("a", 0x00, 8),
		placedReg("b", 0x08, 8),
	}

	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8, Reverse: true})
	if len(l.Rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(l.Rows))
	}
	if l.Rows[0].Start != 8 || l.Rows[1].Start != 0 {
		t.Errorf("reversed row starts %d, %d; want 8, 0", l.Rows[0].Start, l.Rows[1].Start)
	}
}

func TestCompute_UnplacedRegistersIgnored(t *testing.T) {
	defs := []register.RegisterDef{
		{ID: "floating", Name: "floating", Width: 8},
		placedReg("a", 0x00, 8),
	}
	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	if len(l.Entries) != 1 || l.Entries[0].Def.ID != "a" {
		t.Errorf("unplaced register should be ignored: %+v", l.Entries)
	}
}

func TestCompute_Empty(t *testing.T) {
	l := Compute(nil, Options{})
	if len(l.Rows) != 0 || len(l.Entries) != 0 {
		t.Errorf("empty input should produce an empty layout: %+v", l)
	}
}

func TestCompute_SingleRegisterRowCount(t *testing.T) {
	// 10 units at row width 4 starting on a boundary: ceil(10/4) = 3 rows.
	defs := []register.RegisterDef{placedReg("a", 0x00, 80)}
	l := Compute(defs, Options{RowWidth: 4, AddrUnitBits: 8})
	if len(l.Rows) != 3 {
		t.Errorf("want 3 rows, got %d", len(l.Rows))
	}
}
