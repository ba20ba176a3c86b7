package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// lines taken by the header, the frame and the help line
	chromeHeight = 6
)

type keyMap struct {
	Confirm key.Binding
	Decline key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "remove block"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "q", "esc", "ctrl+c"),
			key.WithHelp("n/q", "keep file"),
		),
	}
}

// Block is what the confirmation view shows: the span about to be removed.
type Block struct {
	Path      string
	Marker    string
	StartLine int
	EndLine   int
	Text      string
}

// model is the Bubbletea model asking whether to remove a block.
type model struct {
	block     Block
	keys      keyMap
	viewport  viewport.Model
	width     int
	height    int
	confirmed bool
	done      bool
}

// initialModel creates the confirmation model with a default terminal size.
func initialModel(block Block) model {
	m := model{
		block: block,
		keys:  defaultKeyMap(),
	}
	return m.resize(defaultWidth, defaultHeight)
}

// resize fits the viewport to the terminal and re-renders the block, since
// numbered lines are clipped to the width.
func (m model) resize(width, height int) model {
	m.width = width
	m.height = height
	vpHeight := max(height-chromeHeight, 3)
	vpWidth := max(width-4, 20)
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(vpWidth, vpHeight)
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(numberLines(m.block.Text, m.block.StartLine, vpWidth))
	return m
}

// numberLines prefixes each line with its line number in the original file
// and clips it to maxWidth display cells.
func numberLines(text string, firstLine, maxWidth int) string {
	lines := strings.Split(text, "\n")
	last := firstLine + len(lines) - 1
	digits := len(fmt.Sprint(last))

	var sb strings.Builder
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		numbered := fmt.Sprintf("%*d │ %s", digits, firstLine+i, line)
		sb.WriteString(runewidth.Truncate(numbered, maxWidth, "…"))
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
