package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	panelTitle    = "API KEY MANAGEMENT"
	panelHelpText = "Configure your API keys for various services. Keys are stored securely and used for authentication with external services."
	panelNote     = "Note: API keys are stored in your environment configuration.\nFor production deployments, consider using environment variables or secure key management systems."

	statusTTL = 4 * time.Second
)

type apiKeysModel struct {
	ctx       context.Context
	panel     service.APIKeyPanel
	status    *StatusBoard
	buildInfo models.AppBuildInfo

	spinner spinner.Model
	input   textinput.Model

	idx           int
	editing       bool
	editName      string
	showBuildInfo bool
	statusSeq     int
}

func newAPIKeysModel(ctx context.Context, panel service.APIKeyPanel, status *StatusBoard, buildInfo models.AppBuildInfo) apiKeysModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.Prompt = ""
	in.EchoCharacter = '*'
	in.CharLimit = 0

	return apiKeysModel{
		ctx:       ctx,
		panel:     panel,
		status:    status,
		buildInfo: buildInfo,
		spinner:   sp,
		input:     in,
	}
}

func (m apiKeysModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdMount())
}

func (m apiKeysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case apiKeysLoadedMsg:
		m.clampIndex()
		return m, nil
	case apiKeysSavedMsg:
		cmd := m.scheduleStatusClear()
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.status.AddStatusMessage(humanizeClipboardError(msg.err), models.SeverityError)
		} else {
			m.status.AddStatusMessage("Copied "+msg.name+" to clipboard", models.SeverityInfo)
		}
		cmd := m.scheduleStatusClear()
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status.Clear()
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m apiKeysModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m.quit()
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.panel.Entries())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.edit):
		cmd := m.startEdit()
		return m, cmd
	case key.Matches(msg, keys.toggle):
		if entry, ok := m.current(); ok {
			m.panel.ToggleVisibility(entry.Name)
		}
	case key.Matches(msg, keys.copy):
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		if entry.Value == "" {
			m.status.AddStatusMessage(app.MsgNothingToCopy, models.SeverityInfo)
			cmd := m.scheduleStatusClear()
			return m, cmd
		}
		return m, cmdCopy(entry.Name, entry.Value)
	case key.Matches(msg, keys.save):
		return m, m.save()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m apiKeysModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.done):
		m.stopEdit()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.panel.ToggleVisibility(m.editName)
		m.syncEchoMode()
		return m, nil
	case key.Matches(msg, keys.save):
		cmd := m.save()
		if cmd != nil {
			m.stopEdit()
		}
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.panel.UpdateEntry(m.editName, value)
	}
	return m, cmd
}

func (m *apiKeysModel) startEdit() tea.Cmd {
	entry, ok := m.current()
	if !ok {
		return nil
	}

	m.editing = true
	m.editName = entry.Name
	m.input.Placeholder = "Enter your " + entry.Name
	m.input.SetValue(entry.Value)
	m.input.CursorEnd()
	m.syncEchoMode()
	return m.input.Focus()
}

func (m *apiKeysModel) stopEdit() {
	m.editing = false
	m.editName = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *apiKeysModel) syncEchoMode() {
	if m.panel.IsVisible(m.editName) {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

// save mirrors a disabled save button: nothing happens while a request is in
// flight.
func (m apiKeysModel) save() tea.Cmd {
	if m.panel.Loading() {
		return nil
	}
	return m.cmdSave()
}

func (m apiKeysModel) quit() (tea.Model, tea.Cmd) {
	m.panel.Unmount()
	return m, tea.Quit
}

func (m *apiKeysModel) scheduleStatusClear() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *apiKeysModel) clampIndex() {
	n := len(m.panel.Entries())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m apiKeysModel) current() (models.APIKeyEntry, bool) {
	entries := m.panel.Entries()
	if m.idx < 0 || m.idx >= len(entries) {
		return models.APIKeyEntry{}, false
	}
	return entries[m.idx], true
}

func (m apiKeysModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(helpStyle.Render(panelHelpText))
	b.WriteString("\n\n")

	if m.panel.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n\n")
	}

	for i, entry := range m.panel.Entries() {
		b.WriteString(m.viewEntry(i, entry))
		b.WriteString("\n")
	}

	if msg, ok := m.status.Latest(); ok {
		b.WriteString(severityStyle(msg.Severity).Render(string(msg.Severity) + ": " + msg.Message))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(panelNote))

	hotKeys := "↑/↓: select │ enter: edit │ space: show/hide │ c: copy │ ctrl+s: save │ i: about"
	if m.editing {
		hotKeys = "enter/esc: done │ tab: show/hide │ ctrl+s: save"
	}

	return renderPage(panelTitle, b.String(), hotKeys)
}

func (m apiKeysModel) viewEntry(i int, entry models.APIKeyEntry) string {
	var b strings.Builder

	if i == m.idx {
		b.WriteString("> ")
		b.WriteString(selectedStyle.Render(entry.Name))
	} else {
		b.WriteString("  ")
		b.WriteString(entry.Name)
	}
	if entry.Required {
		b.WriteString(" ")
		b.WriteString(badgeStyle.Render("[Required]"))
	}
	b.WriteString("\n    ")
	b.WriteString(helpStyle.Render(fitText(entry.Description, 72)))
	b.WriteString("\n    [ ")

	visible := m.panel.IsVisible(entry.Name)
	switch {
	case m.editing && entry.Name == m.editName:
		b.WriteString(m.input.View())
	case entry.Value == "":
		b.WriteString(helpStyle.Render("Enter your " + entry.Name))
	case visible:
		b.WriteString(entry.Value)
	default:
		b.WriteString(hiddenValue(entry.Value))
	}
	b.WriteString(" ]\n")

	if entry.Value != "" && !visible {
		b.WriteString("    Current: ")
		b.WriteString(utils.MaskKey(entry.Value))
		b.WriteString("\n")
	}

	return b.String()
}

func (m apiKeysModel) cmdMount() tea.Cmd {
	ctx := m.ctx
	panel := m.panel

	return func() tea.Msg {
		panel.Mount(ctx)
		return apiKeysLoadedMsg{}
	}
}

func (m apiKeysModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	panel := m.panel

	return func() tea.Msg {
		panel.Save(ctx)
		return apiKeysSavedMsg{}
	}
}

func cmdCopy(name, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{name: name, err: clipboard.WriteAll(value)}
	}
}
