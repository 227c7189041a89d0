package loop

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tomz197/ringballs/internal/draw"
	"github.com/tomz197/ringballs/internal/game"
	"github.com/tomz197/ringballs/internal/level"
)

const controlsHint = "SPACE reverse · ESC end · Q quit"

// styles are the lipgloss styles for the text screens, bound to one session's output.
type styles struct {
	bar    lipgloss.Style
	banner lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	hint   lipgloss.Style
}

// newStyles builds styles for w. The canvas already writes 24-bit colour, so the
// text uses the same profile regardless of what w looks like.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	return styles{
		bar: r.NewStyle().
			Foreground(lipgloss.Color("#FFFAFA")).
			Background(lipgloss.Color("#556B2F")),
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500")).
			Background(lipgloss.Color("#556B2F")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8FBC8F")).
			Padding(1, 3),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFAFA")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#8FBC8F")).
			Width(10),
		hint: r.NewStyle().
			Faint(true),
	}
}

// hud renders the status row shown above the field.
func (st styles) hud(state *State, now time.Time, width int) string {
	gs := state.Sim.State
	status := fmt.Sprintf(" level: %s  score: %d  prizes: %d  penalties: %d",
		gs.Level, gs.Score, gs.Hits[level.Prize], gs.Hits[level.Penalty])

	line := st.bar.Render(status)
	used := lipgloss.Width(status)

	if state.banner != "" && now.Before(state.bannerUntil) {
		banner := "  " + state.banner
		line += st.banner.Render(banner)
		used += lipgloss.Width(banner)
	}

	if hint := "  " + controlsHint + " "; used+lipgloss.Width(hint) <= width {
		line += st.bar.Render(strings.Repeat(" ", width-used-lipgloss.Width(hint)) + hint)
	} else if used < width {
		line += st.bar.Render(strings.Repeat(" ", width-used))
	}

	return line
}

// resultsTitle is the headline for how a session ended.
func resultsTitle(reason game.EndReason) string {
	switch reason {
	case game.EndKiller:
		return "A ball hit a killer!"
	case game.EndNegativeScore:
		return "Your score dropped below zero!"
	default:
		return "Game over"
	}
}

// resultsPanel renders the final results box.
func (st styles) resultsPanel(res game.Results) string {
	row := func(label string, value any) string {
		return st.label.Render(label) + fmt.Sprint(value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(resultsTitle(res.Reason)),
		"",
		row("level", res.Level),
		row("score", res.Score),
		row("prizes", res.Hits[level.Prize]),
		row("penalties", res.Hits[level.Penalty]),
		"",
		st.hint.Render("ENTER new game · Q quit"),
	)
	return st.panel.Render(body)
}

// drawResults writes the results panel centered on a termWidth x termHeight screen.
func drawResults(out *draw.ChunkWriter, st styles, res game.Results, termWidth, termHeight int) {
	panel := st.resultsPanel(res)
	col := max((termWidth-lipgloss.Width(panel))/2+1, 1)
	row := max((termHeight-lipgloss.Height(panel))/2+1, 1)

	for i, line := range strings.Split(panel, "\n") {
		out.MoveCursor(col, row+i)
		out.WriteString(line)
	}
}
