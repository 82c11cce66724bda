package grid

import "github.com/regview/regview/register"

// The bit grid presents one register as rows of bit cells, most significant
// bit first. Rows carry everything a renderer needs precomputed: the bit
// order, nibble groupings and the label/reserved spans, so rendering is a
// straight walk over the structure.

// BitRange is an inclusive [MSB:LSB] span of unassigned bits.
type BitRange struct {
	MSB int
	LSB int
}

// Width returns the number of bits in the range.
func (r BitRange) Width() int { return r.MSB - r.LSB + 1 }

// Nibble is a 4-bit grouping of a row's cells. Partial marks a group cut
// short by the register or row boundary.
type Nibble struct {
	Bits    []int
	Partial bool
}

// LabelSpan is a contiguous run of a row's bits belonging to one field.
// Partial marks a span whose field continues in an adjacent row.
type LabelSpan struct {
	Field   register.Field
	MSB     int
	LSB     int
	Partial bool
}

// Width returns the number of bits the span covers in its row.
func (s LabelSpan) Width() int { return s.MSB - s.LSB + 1 }

// Row is one display row of the bit grid.
type Row struct {
	MSB      int
	LSB      int
	Bits     []int // display order, MSB first
	Nibbles  []Nibble
	Labels   []LabelSpan
	Reserved []BitRange
}

// bitCellPx is the display budget per bit cell, matching the rendered cell
// including its border.
const bitCellPx = 28

// BitsPerRow picks the largest power-of-two-friendly bit count that fits the
// available width, never exceeding the register width: a register that fits
// on one row never wraps.
func BitsPerRow(containerWidthPx, registerWidth int) int {
	cells := containerWidthPx / bitCellPx

	best := 8
	for _, candidate := range []int{64, 32, 16, 8} {
		if candidate <= cells {
			best = candidate
			break
		}
	}

	if registerWidth > 0 && registerWidth <= best {
		return registerWidth
	}
	return best
}

// Compute lays out a register for the given display width.
func Compute(containerWidthPx, registerWidth int, fields []register.Field) []Row {
	return ComputeRows(BitsPerRow(containerWidthPx, registerWidth), registerWidth, fields)
}

// ComputeRows partitions the register's bits into rows of at most bitsPerRow
// bits, starting from the register MSB, and derives per-row spans.
func ComputeRows(bitsPerRow, registerWidth int, fields []register.Field) []Row {
	if registerWidth <= 0 {
		return nil
	}
	if bitsPerRow <= 0 {
		bitsPerRow = registerWidth
	}

	var rows []Row
	for msb := registerWidth - 1; msb >= 0; msb -= bitsPerRow {
		lsb := msb - bitsPerRow + 1
		if lsb < 0 {
			lsb = 0
		}

		row := Row{MSB: msb, LSB: lsb}
		for bit := msb; bit >= lsb; bit-- {
			row.Bits = append(row.Bits, bit)
		}
		row.Nibbles = nibbles(row.Bits)
		row.Labels, row.Reserved = spans(msb, lsb, fields)
		rows = append(rows, row)
	}
	return rows
}

// nibbles groups a row's bits by their absolute 4-bit nibble index.
func nibbles(rowBits []int) []Nibble {
	var out []Nibble
	for _, bit := range rowBits {
		idx := bit / 4
		if len(out) > 0 && out[len(out)-1].Bits[0]/4 == idx {
			last := &out[len(out)-1]
			last.Bits = append(last.Bits, bit)
			continue
		}
		out = append(out, Nibble{Bits: []int{bit}})
	}
	for i := range out {
		out[i].Partial = len(out[i].Bits) != 4
	}
	return out
}

// spans walks the row MSB to LSB splitting it into field-label runs and
// reserved gaps. When fields overlap (a state the validator reports but the
// grid must still draw), the first field in declaration order owns the bit.
func spans(msb, lsb int, fields []register.Field) ([]LabelSpan, []BitRange) {
	owner := func(bit int) int {
		for i, f := range fields {
			fi := f.Info()
			if bit <= fi.MSB && bit >= fi.LSB {
				return i
			}
		}
		return -1
	}

	var labels []LabelSpan
	var reserved []BitRange

	runStart := msb
	runOwner := owner(msb)
	flush := func(runEnd int) {
		if runOwner < 0 {
			reserved = append(reserved, BitRange{MSB: runStart, LSB: runEnd})
			return
		}
		f := fields[runOwner]
		fi := f.Info()
		labels = append(labels, LabelSpan{
			Field:   f,
			MSB:     runStart,
			LSB:     runEnd,
			Partial: fi.MSB > runStart || fi.LSB < runEnd,
		})
	}

	for bit := msb - 1; bit >= lsb; bit-- {
		if o := owner(bit); o != runOwner {
			flush(bit + 1)
			runStart, runOwner = bit, o
		}
	}
	flush(lsb)

	return labels, reserved
}
