// Package render holds the shared terminal output helpers: styled titles,
// metric cards, tables, and simple text charts. It only formats strings; all
// decisions stay with the callers.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	subtitleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Faint(true)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).MarginRight(1)
	valueStyle    = lipgloss.NewStyle().Bold(true)
	upStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Title renders a page title.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Subtitle renders a section heading.
func Subtitle(s string) string {
	return subtitleStyle.Render(s)
}

// ErrorMessage renders a user-facing failure message with an optional hint.
func ErrorMessage(msg, hint string) string {
	out := errorStyle.Render("✗ " + msg)
	if hint != "" {
		out += "\n" + hintStyle.Render(hint)
	}
	return out
}

// Success renders a confirmation line.
func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// Metric is one labeled value with an optional delta like "+12%".
type Metric struct {
	Label string
	Value string
	Delta string
}

// MetricCards renders metrics as a horizontal row of bordered cards.
func MetricCards(metrics []Metric) string {
	cards := make([]string, 0, len(metrics))
	for _, m := range metrics {
		delta := m.Delta
		if strings.HasPrefix(delta, "-") {
			delta = downStyle.Render(delta)
		} else if delta != "" {
			delta = upStyle.Render(delta)
		}
		body := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
		if delta != "" {
			body += "  " + delta
		}
		cards = append(cards, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Table renders headers and rows with padded columns.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Sparkline renders values as a one-line block-rune chart.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - minV) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// BarChart renders labeled horizontal bars scaled to the largest value.
func BarChart(labels []string, values []float64, width int) string {
	if len(labels) == 0 || len(labels) != len(values) {
		return ""
	}
	if width < 1 {
		width = 40
	}

	maxV := values[0]
	labelWidth := len(labels[0])
	for i, v := range values {
		if v > maxV {
			maxV = v
		}
		if len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	var b strings.Builder
	for i, v := range values {
		barLen := 0
		if maxV > 0 {
			barLen = int(v / maxV * float64(width))
		}
		fmt.Fprintf(&b, "%s  %s %.0f\n",
			pad(labels[i], labelWidth),
			titleStyle.Render(strings.Repeat("█", barLen)),
			v)
	}
	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
