package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seaglass-games/ronet/packet"
	"github.com/seaglass-games/ronet/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	pingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type decodedPacket struct {
	value  any
	name   string
	fields []string
	offset int
	tag    uint16
	ping   bool
}

type watchModel struct {
	err       error
	registry  *packet.Registry
	data      []byte
	packets   []decodedPacket
	visible   []int
	filter    textinput.Model
	selected  int
	showPings bool
	filtering bool
	height    int
}

type streamDecodedMsg struct {
	err     error
	packets []decodedPacket
}

func newWatchModel(registry *packet.Registry, data []byte) *watchModel {
	filter := textinput.New()
	filter.Placeholder = "packet name"
	filter.Prompt = "/"
	filter.Width = 32
	return &watchModel{
		registry: registry,
		data:     data,
		filter:   filter,
		height:   24,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return m.decodeStream
}

func (m *watchModel) decodeStream() tea.Msg {
	cur := wire.NewCursor(m.data)
	var packets []decodedPacket
	for cur.Remaining() > 0 {
		offset := cur.Position()
		decoded, err := m.registry.DecodeNext(cur)
		if err != nil {
			return streamDecodedMsg{err: fmt.Errorf("offset %d: %w", offset, err), packets: packets}
		}

		p := decodedPacket{
			value:  decoded,
			offset: offset,
			ping:   m.registry.IsPing(decoded),
		}
		if unknown, ok := decoded.(*packet.Unknown); ok {
			p.tag = unknown.Tag
			p.name = fmt.Sprintf("unknown (%d bytes)", len(unknown.Payload))
		} else {
			p.tag, _ = m.registry.Tag(decoded)
			p.name = typeName(decoded)
			p.fields = fieldLines(decoded)
		}
		packets = append(packets, p)
	}
	return streamDecodedMsg{packets: packets}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.refilter()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.refilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "p":
			m.showPings = !m.showPings
			m.refilter()

		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		}

	case streamDecodedMsg:
		m.packets = msg.packets
		m.err = msg.err
		m.refilter()
	}

	return m, nil
}

// refilter rebuilds the visible index list, keeping the selection in
// range.
func (m *watchModel) refilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, p := range m.packets {
		if p.ping && !m.showPings {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.name), needle) {
			continue
		}
		m.visible = append(m.visible, i)
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rowatch"))
	b.WriteString(fmt.Sprintf(" %d packets, %d bytes\n\n", len(m.packets), len(m.data)))

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("stream truncated: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	listHeight := m.height - 12
	if listHeight < 4 {
		listHeight = 4
	}
	start := 0
	if m.selected >= listHeight {
		start = m.selected - listHeight + 1
	}

	for row := start; row < len(m.visible) && row < start+listHeight; row++ {
		p := m.packets[m.visible[row]]
		line := fmt.Sprintf("%s %s %s",
			tagStyle.Render(fmt.Sprintf("0x%04X", p.tag)),
			nameStyle.Render(p.name),
			pingStyle.Render(pingMark(p)))
		if row == m.selected {
			b.WriteString(selectedStyle.Render("> "))
			b.WriteString(line)
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  nothing matches"))
		b.WriteString("\n")
	}

	if m.selected < len(m.visible) {
		p := m.packets[m.visible[m.selected]]
		b.WriteString("\n")
		b.WriteString(tagStyle.Render(fmt.Sprintf("offset %d", p.offset)))
		b.WriteString("\n")
		for _, line := range p.fields {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • / filter • p pings • q quit"))
	return b.String()
}

func pingMark(p decodedPacket) string {
	if p.ping {
		return "(keepalive)"
	}
	return ""
}

func runInteractive(registry *packet.Registry, data []byte) error {
	p := tea.NewProgram(newWatchModel(registry, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
