package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"

	RendererText  = "text"
	RendererBlock = "block"
)

// Renderer draws a grid to a writer
type Renderer interface {
	Display(w io.Writer, g *Grid, header string) error
	Clear(w io.Writer)
}

// NewRenderer returns the renderer registered under style
func NewRenderer(style string) (Renderer, error) {
	switch style {
	case RendererText, "":
		return &TextRenderer{}, nil
	case RendererBlock:
		return &TerminalRenderer{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownRenderer, "[NewRenderer] %q", style)
	}
}

// TextRenderer prints the plain digit dump, one generation after another
type TextRenderer struct{}

// Display writes the grid as digits. The header, if any, goes on its own line first.
func (r *TextRenderer) Display(w io.Writer, g *Grid, header string) error {
	if header != "" {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return errors.Wrap(err, "[TextRenderer.Display] failed to write header")
		}
	}
	if _, err := io.WriteString(w, g.RenderText()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Display] failed to write grid")
	}
	return nil
}

// Clear is a no-op; text output is an append-only stream
func (r *TextRenderer) Clear(io.Writer) {}

// TerminalRenderer draws live cells as styled blocks
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(w io.Writer, g *Grid, header string) error {
	var (
		lg        = lipgloss.NewRenderer(w)
		cellStyle = lg.NewStyle().Foreground(lipgloss.Color("42"))
		edgeStyle = lg.NewStyle().Foreground(lipgloss.Color("240"))
		headStyle = lg.NewStyle().Bold(true)
		sb        strings.Builder
	)

	if header != "" {
		sb.WriteString(headStyle.Render(header))
		sb.WriteByte('\n')
	}
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row*g.cols+col] == 0 {
				sb.WriteString(gridPosEmpty)
				continue
			}
			if row == 0 || col == 0 || row == g.rows-1 || col == g.cols-1 {
				sb.WriteString(edgeStyle.Render(gridPosBlock))
			} else {
				sb.WriteString(cellStyle.Render(gridPosBlock))
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) {
	_, _ = io.WriteString(w, clearScreen)
}
