package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/regview/regview"
	"github.com/regview/regview/bits"
	"github.com/regview/regview/codec"
	"github.com/regview/regview/grid"
	"github.com/regview/regview/project"
	"github.com/regview/regview/register"
	"github.com/regview/regview/regmap"
	"github.com/regview/regview/sanitize"
	"github.com/regview/regview/validate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	cursorBitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#90EE90"))

	setBitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	reservedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectRegister modelState = iota
	stateViewRegister
	stateEditField
	stateShowMap
)

type interactiveModel struct {
	err      error
	doc      project.Document
	filename string
	warnings []project.Warning

	state     modelState
	selected  int // register index
	fieldIdx  int // field cursor in view state
	cursorBit int // bit cursor in view state
	input     textinput.Model
	inputErr  string
	status    string
	cols      int
}

type loadedMsg struct {
	err      error
	doc      project.Document
	warnings []project.Warning
}

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectRegister,
		cols:     80,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	if m.filename == "" {
		return loadedMsg{doc: project.ExampleDocument()}
	}

	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	doc, warnings, err := project.Import(data, sanitize.New(nil), regview.DefaultLimits())
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{doc: doc, warnings: warnings}
}

func (m *interactiveModel) current() register.RegisterDef {
	return m.doc.Registers[m.selected]
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width

	case loadedMsg:
		m.err = msg.err
		m.doc = msg.doc
		m.warnings = msg.warnings
		if m.doc.Values == nil {
			m.doc.Values = register.ValueMap{}
		}

	case tea.KeyMsg:
		if m.state == stateEditField {
			return m.updateEdit(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *interactiveModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		switch m.state {
		case stateSelectRegister:
			if m.selected > 0 {
				m.selected--
			}
		case stateViewRegister:
			if m.fieldIdx > 0 {
				m.fieldIdx--
			}
		}

	case "down", "j":
		switch m.state {
		case stateSelectRegister:
			if m.selected < len(m.doc.Registers)-1 {
				m.selected++
			}
		case stateViewRegister:
			if m.fieldIdx < len(m.current().Fields)-1 {
				m.fieldIdx++
			}
		}

	case "left", "h":
		if m.state == stateViewRegister && m.cursorBit < m.current().Width-1 {
			m.cursorBit++
		}

	case "right", "l":
		if m.state == stateViewRegister && m.cursorBit > 0 {
			m.cursorBit--
		}

	case " ":
		if m.state == stateViewRegister {
			def := m.current()
			m.doc.Values.Set(def.ID, bits.Toggle(m.doc.Values.Get(def.ID), m.cursorBit))
			m.status = ""
		}

	case "enter":
		switch m.state {
		case stateSelectRegister:
			if len(m.doc.Registers) > 0 {
				m.state = stateViewRegister
				m.fieldIdx = 0
				m.cursorBit = 0
				m.status = ""
			}
		case stateViewRegister:
			if len(m.current().Fields) > 0 {
				m.openEditor()
			}
		case stateShowMap:
			m.state = stateSelectRegister
		}

	case "m":
		if m.state == stateSelectRegister {
			m.state = stateShowMap
		}

	case "ctrl+s":
		m.save()

	case "esc":
		switch m.state {
		case stateViewRegister, stateShowMap:
			m.state = stateSelectRegister
			m.status = ""
		}
	}

	return m, nil
}

func (m *interactiveModel) openEditor() {
	f := m.current().Fields[m.fieldIdx]

	ti := textinput.New()
	ti.Prompt = f.Info().Name + ": "
	ti.Width = 40
	switch f.Kind() {
	case register.KindFlag:
		ti.Placeholder = "0 | 1 | true | false"
	case register.KindFloat, register.KindFixedPoint:
		ti.Placeholder = "number"
	default:
		ti.Placeholder = "integer or 0x.. literal"
	}
	ti.Focus()

	m.input = ti
	m.inputErr = ""
	m.state = stateEditField
}

func (m *interactiveModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateViewRegister
		return m, nil

	case "enter":
		def := m.current()
		f := def.Fields[m.fieldIdx]
		text := m.input.Value()

		if msg := validate.FieldInput(text, f.Kind()); msg != "" {
			m.inputErr = msg
			return m, nil
		}

		fieldBits, err := codec.Encode(text, f)
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}

		raw := codec.Apply(m.doc.Values.Get(def.ID), f, fieldBits)
		m.doc.Values.Set(def.ID, bits.Clamp(raw, def.Width))
		m.state = stateViewRegister
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) save() {
	if m.filename == "" {
		m.status = "no file to save to (started with the built-in example)"
		return
	}
	data, err := project.Export(m.doc)
	if err == nil {
		err = os.WriteFile(m.filename, data, 0o644)
	}
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + m.filename
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.doc.Registers == nil && m.state == stateSelectRegister {
		return "Loading project..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("regview"))
	if m.filename != "" {
		b.WriteString(" " + m.filename)
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectRegister:
		m.viewSelect(&b)
	case stateViewRegister:
		m.viewRegister(&b)
	case stateEditField:
		m.viewRegister(&b)
		b.WriteString("\n" + m.input.View() + "\n")
		if m.inputErr != "" {
			b.WriteString(errorStyle.Render(m.inputErr) + "\n")
		}
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	case stateShowMap:
		m.viewMap(&b)
	}

	if m.status != "" {
		b.WriteString("\n" + warnStyle.Render(m.status))
	}
	return b.String()
}

func (m *interactiveModel) viewSelect(b *strings.Builder) {
	b.WriteString("Select a register:\n\n")
	for i, def := range m.doc.Registers {
		line := fmt.Sprintf("%-12s %3d bits  %s",
			def.Name, def.Width, bits.FormatHex(m.doc.Values.Get(def.ID)))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	for _, w := range m.warnings {
		b.WriteString("\n" + warnStyle.Render(w.String()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter open • m map • ctrl+s save • q quit"))
}

func (m *interactiveModel) viewRegister(b *strings.Builder) {
	def := m.current()
	raw := m.doc.Values.Get(def.ID)

	b.WriteString(fieldStyle.Render(def.Name))
	b.WriteString(fmt.Sprintf(" = %s\n\n", valueStyle.Render(bits.FormatHex(raw))))

	for _, row := range grid.Compute(m.cols*8, def.Width, def.Fields) {
		m.renderGridRow(b, row, raw)
	}

	b.WriteString("\n")
	for i, f := range def.Fields {
		fi := f.Info()
		fieldBits := bits.Extract(raw, fi.MSB, fi.LSB)
		line := fmt.Sprintf("[%2d:%2d] %-12s %-8s = %s",
			fi.MSB, fi.LSB, fi.Name, bits.FormatHex(fieldBits), codec.Decode(raw, f))
		if i == m.fieldIdx && m.state != stateEditField {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.state == stateViewRegister {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ field • enter edit • ←/→ bit • space toggle • esc back"))
	}
}

// renderGridRow draws one grid row as a bit-number line, a bit-value line and
// a field-label line, with a gap between nibbles.
func (m *interactiveModel) renderGridRow(b *strings.Builder, row grid.Row, raw *big.Int) {
	for _, nib := range row.Nibbles {
		for _, bit := range nib.Bits {
			b.WriteString(fmt.Sprintf("%3d", bit))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, nib := range row.Nibbles {
		for _, bit := range nib.Bits {
			cell := "  0"
			style := reservedStyle
			if raw.Bit(bit) == 1 {
				cell = "  1"
				style = setBitStyle
			}
			if bit == m.cursorBit {
				style = cursorBitStyle
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, nib := range row.Nibbles {
		for _, bit := range nib.Bits {
			label := " . "
			for _, span := range row.Labels {
				if bit <= span.MSB && bit >= span.LSB {
					name := span.Field.Info().Name
					pos := span.MSB - bit
					if pos < len(name) {
						label = " " + string(name[pos]) + " "
					} else {
						label = " - "
					}
					break
				}
			}
			b.WriteString(fieldStyle.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
}

func (m *interactiveModel) viewMap(b *strings.Builder) {
	layout := regmap.Compute(m.doc.Registers, regmap.Options{ShowGaps: true})
	if len(layout.Rows) == 0 {
		b.WriteString("No placed registers.\n")
	}

	for _, row := range layout.Rows {
		b.WriteString(fmt.Sprintf("0x%04X  ", row.Start))
		for _, cell := range row.Cells {
			units := int(cell.End - cell.Start + 1)
			if cell.Entry == nil {
				b.WriteString(reservedStyle.Render(fmt.Sprintf("%-*s", units*12, "--")))
				continue
			}
			name := cell.Entry.Def.Name
			if cell.TotalSpans > 1 {
				name = fmt.Sprintf("%s (%d/%d)", name, cell.Span+1, cell.TotalSpans)
			}
			style := fieldStyle
			if cell.Entry.HasOverlap {
				name += " !"
				style = warnStyle
			}
			b.WriteString(style.Render(fmt.Sprintf("%-*s", units*12, name)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter/esc back • q quit"))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
