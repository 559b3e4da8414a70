// Package tui implements the interactive batch settings editor: a
// two-pane view over the scene's material bindings and their candidate
// colors, with the same guarded add/remove operations the CLI exposes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chromabatch/chromabatch/internal/scene"
	"github.com/chromabatch/chromabatch/internal/settings"
)

// focusArea identifies which pane receives navigation keys.
type focusArea int

const (
	focusMaterials focusArea = iota
	focusColors
	focusInput
)

// Editor is the Bubble Tea model for editing a scene's batch settings.
type Editor struct {
	scene *scene.Scene
	input textinput.Model
	focus focusArea

	status string
	dirty  bool
	width  int
}

// NewEditor creates an editor over sc. The caller remains responsible for
// the scene's lifetime; the editor saves to the scene's own path.
func NewEditor(sc *scene.Scene) *Editor {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb or #rrggbbaa"
	ti.CharLimit = 9
	ti.Prompt = "color: "

	sc.Batch.ClampSelection()
	return &Editor{scene: sc, input: ti}
}

// Init implements tea.Model.
func (m *Editor) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

// updateInput handles keys while the hex input is focused.
func (m *Editor) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		c, err := settings.ParseHex(m.input.Value())
		if err != nil {
			m.status = fmt.Sprintf("invalid color %q", m.input.Value())
			return m, nil
		}
		if b := m.scene.Batch.Selected(); b != nil && len(b.Colors) > 0 {
			b.Colors[b.ActiveColor].Color = c
			m.dirty = true
			m.status = "color updated"
		}
		m.closeInput()
		return m, nil
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// updateNav handles keys while a pane is focused.
func (m *Editor) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bs := &m.scene.Batch
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focus == focusMaterials {
			m.focus = focusColors
		} else {
			m.focus = focusMaterials
		}

	case "up", "k":
		m.moveSelection(-1)

	case "down", "j":
		m.moveSelection(1)

	case "a":
		if m.focus == focusColors {
			if b := bs.Selected(); b != nil {
				b.AddColor(settings.White())
				m.dirty = true
				m.status = "color added"
			}
			break
		}
		if name, ok := m.nextUnboundMaterial(); ok {
			if _, err := bs.AddMaterial(name); err == nil {
				m.dirty = true
				m.status = fmt.Sprintf("added %q", name)
			}
		} else {
			m.status = "every scene material is already bound"
		}

	case "d", "x":
		m.removeSelected()

	case "e", "enter":
		if m.focus == focusColors {
			if b := bs.Selected(); b != nil && len(b.Colors) > 0 {
				m.input.SetValue(b.Colors[b.ActiveColor].Color.Hex())
				m.input.Focus()
				m.focus = focusInput
				return m, textinput.Blink
			}
		}

	case "s":
		if err := m.scene.Save(); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else {
			m.dirty = false
			m.status = "saved"
		}
	}

	return m, nil
}

// moveSelection shifts the focused pane's cursor by delta, clamped.
func (m *Editor) moveSelection(delta int) {
	bs := &m.scene.Batch
	if m.focus == focusMaterials {
		bs.Active += delta
		bs.ClampSelection()
		return
	}
	if b := bs.Selected(); b != nil {
		b.ActiveColor += delta
		b.ClampSelection()
	}
}

// removeSelected removes the selected color or binding, honoring the
// guard that a binding never drops below one color.
func (m *Editor) removeSelected() {
	bs := &m.scene.Batch
	if m.focus == focusColors {
		b := bs.Selected()
		if b == nil {
			return
		}
		if !b.CanRemoveColor() {
			m.status = "a material keeps at least one color"
			return
		}
		if err := b.RemoveColor(b.ActiveColor); err != nil {
			m.status = err.Error()
			return
		}
		m.dirty = true
		m.status = "color removed"
		return
	}

	if len(bs.Materials) == 0 {
		return
	}
	name := bs.Materials[bs.Active].Material
	if err := bs.RemoveMaterial(bs.Active); err != nil {
		m.status = err.Error()
		return
	}
	m.dirty = true
	m.status = fmt.Sprintf("removed %q", name)
}

// nextUnboundMaterial finds the first scene material without a binding,
// mirroring the original panel's enum of live materials.
func (m *Editor) nextUnboundMaterial() (string, bool) {
	for _, mat := range m.scene.Materials {
		if _, bound := m.scene.Batch.Binding(mat.Name); !bound {
			return mat.Name, true
		}
	}
	return "", false
}

// View implements tea.Model.
func (m *Editor) View() string {
	bs := &m.scene.Batch

	title := "Batch Material Color Picker"
	if m.dirty {
		title += " *"
	}

	left := m.materialsPane(bs)
	right := m.colorsPane(bs)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var footer string
	switch {
	case m.focus == focusInput:
		footer = m.input.View()
	case m.status != "":
		footer = styleStatus.Render(m.status)
	}

	help := styleHelp.Render(
		"tab: switch pane  a: add  d: remove  enter: edit color  s: save  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title), panes, footer, help)
}

// materialsPane renders the binding list.
func (m *Editor) materialsPane(bs *settings.BatchSettings) string {
	var sb strings.Builder
	sb.WriteString("Materials\n")

	if len(bs.Materials) == 0 {
		sb.WriteString(styleItem.Render("(none bound)"))
	}
	for i, b := range bs.Materials {
		line := fmt.Sprintf("%s (%d)", b.Material, len(b.Colors))
		if _, err := m.scene.LookupMaterial(b.Material); err != nil {
			line += " ?"
		}
		sb.WriteString(m.renderItem(line, m.focus == focusMaterials && i == bs.Active))
		sb.WriteByte('\n')
	}

	style := stylePane
	if m.focus == focusMaterials {
		style = stylePaneFocused
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

// colorsPane renders the selected binding's color list with swatches.
func (m *Editor) colorsPane(bs *settings.BatchSettings) string {
	var sb strings.Builder
	sb.WriteString("Colors\n")

	b := bs.Selected()
	if b == nil {
		sb.WriteString(styleItem.Render("(select a material)"))
	} else {
		for i, e := range b.Colors {
			hex := e.Color.Hex()
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex[:7])).Render("  ")
			line := swatch + " " + hex
			sb.WriteString(m.renderItem(line, m.focus != focusMaterials && i == b.ActiveColor))
			sb.WriteByte('\n')
		}
	}

	style := stylePane
	if m.focus != focusMaterials {
		style = stylePaneFocused
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderItem styles one list row.
func (m *Editor) renderItem(line string, selected bool) string {
	if selected {
		return styleItemSelected.Render("> " + line)
	}
	return styleItem.Render("  " + line)
}

// closeInput leaves hex-entry mode.
func (m *Editor) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.focus = focusColors
}

// Dirty reports whether the editor holds unsaved changes.
func (m *Editor) Dirty() bool {
	return m.dirty
}
