package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/alexanderramin/lanegrid/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// cellPixels is how many layout pixels one terminal cell stands for. At
// 100% zoom a week-view day (96px) becomes 12 cells wide.
const cellPixels = 8.0

var (
	styleBarText = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d2021"))
	styleOverlay = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d2021")).Background(ColorRed)
)

// OverlayLabel formats an overdue overlay's elapsed amount, e.g. "+2d" or "+5h".
func OverlayLabel(ov layout.Overlay) string {
	unit := "h"
	if ov.Granularity == layout.GranularityDays {
		unit = "d"
	}
	return fmt.Sprintf("+%d%s", ov.Amount(), unit)
}

// RenderGantt translates a layout result into terminal rows: a day header,
// then per group a label line, one line per lane with priority-colored bars
// (overdue portions highlighted and labelled), and a dim list of items that
// have no dates and therefore no geometry.
func RenderGantt(res layout.Result) string {
	cellsPerDay := int(math.Round(res.DayWidth / cellPixels))
	if cellsPerDay < 2 {
		cellsPerDay = 2
	}
	totalCells := cellsPerDay * len(res.Window.Days)

	var b strings.Builder
	b.WriteString(renderDayHeader(res, cellsPerDay))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(strings.Repeat("┄", totalCells)))
	b.WriteString("\n")

	for _, g := range res.Groups {
		b.WriteString(StyleHeader.Render(g.Label))
		b.WriteString("\n")
		for lane := 0; lane < g.LaneCount; lane++ {
			b.WriteString(renderLane(g, lane, res.DayWidth, cellsPerDay, totalCells))
			b.WriteString("\n")
		}
		for _, it := range g.Items {
			if it.Position == nil {
				b.WriteString(StyleDim.Render("· " + it.Item.Title + " (no dates)"))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderDayHeader(res layout.Result, cellsPerDay int) string {
	// With very narrow days only every other label fits.
	step := 1
	if cellsPerDay < 3 {
		step = 2
	}
	var b strings.Builder
	for i, d := range res.Window.Days {
		label := ""
		if i%step == 0 {
			label = d.Format("02")
		}
		width := cellsPerDay * step
		if i%step == 0 {
			if len(label) > width {
				label = label[:width]
			}
			b.WriteString(StyleDim.Render(fmt.Sprintf("%-*s", width, label)))
		}
	}
	return b.String()
}

// cellSpan converts a pixel extent into [from, to) cell indices.
func cellSpan(left, width, dayWidth float64, cellsPerDay, totalCells int) (int, int) {
	scale := float64(cellsPerDay) / dayWidth
	from := int(math.Round(left * scale))
	to := int(math.Round((left + width) * scale))
	if to <= from {
		to = from + 1
	}
	if from < 0 {
		from = 0
	}
	if to > totalCells {
		to = totalCells
	}
	return from, to
}

func renderLane(g layout.LaidGroup, lane int, dayWidth float64, cellsPerDay, totalCells int) string {
	var b strings.Builder
	cursor := 0
	for _, it := range g.Items {
		if it.Position == nil || it.Lane != lane {
			continue
		}
		from, to := cellSpan(it.Position.Left, it.Position.Width, dayWidth, cellsPerDay, totalCells)
		if from < cursor {
			from = cursor
		}
		if to <= from {
			continue
		}
		b.WriteString(strings.Repeat(" ", from-cursor))
		bar := renderBar(it, from, to, dayWidth, cellsPerDay, totalCells)
		b.WriteString(bar)
		// Overlay labels extend past the bar itself; measure what was
		// actually printed so the next bar in this lane stays aligned.
		cursor = from + lipgloss.Width(bar)
	}
	return b.String()
}

// fitCells truncates and pads s to exactly width terminal cells. Titles may
// be multi-byte, so truncation drops whole runes and padding goes by visible
// width, never byte length.
func fitCells(s string, width int) []rune {
	runes := []rune(s)
	for lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	for pad := width - lipgloss.Width(string(runes)); pad > 0; pad-- {
		runes = append(runes, ' ')
	}
	return runes
}

func renderBar(it layout.ItemLayout, from, to int, dayWidth float64, cellsPerDay, totalCells int) string {
	width := to - from
	runes := fitCells(" "+it.Item.Title, width)
	text := string(runes)

	barStyle := styleBarText.Background(barColor(it))
	if it.Overlay == nil {
		return barStyle.Render(text)
	}

	// Split the bar where the overdue overlay begins so the trailing
	// portion reads as elapsed overdue time.
	ovFrom, ovTo := cellSpan(it.Overlay.Left, it.Overlay.Width, dayWidth, cellsPerDay, totalCells)
	cut := ovFrom - from
	if cut < 0 {
		cut = 0
	}
	if cut > len(runes) {
		cut = len(runes)
	}
	end := ovTo - from
	if end > len(runes) {
		end = len(runes)
	}
	if end <= cut {
		return barStyle.Render(text) + " " + StyleRed.Render(OverlayLabel(*it.Overlay))
	}
	return barStyle.Render(string(runes[:cut])) +
		styleOverlay.Render(string(runes[cut:end])) +
		barStyle.Render(string(runes[end:])) +
		" " + StyleRed.Render(OverlayLabel(*it.Overlay))
}

func barColor(it layout.ItemLayout) lipgloss.Color {
	switch it.Item.Priority {
	case domain.PriorityUrgent:
		return ColorRed
	case domain.PriorityHigh:
		return ColorYellow
	case domain.PriorityLow:
		return ColorDim
	default:
		return ColorBlue
	}
}
