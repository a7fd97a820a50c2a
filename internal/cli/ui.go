package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors, compression
	colorBlue   = lipgloss.Color("75")  // Light blue - commands, tension
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleTableHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell    = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	styleTableNumber  = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Align(lipgloss.Right)
	styleTension      = styleTableNumber.Foreground(colorBlue)
	styleCompression  = styleTableNumber.Foreground(colorRed)
	styleTableBorders = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Solution Display
// =============================================================================

// statsLine summarises a solution on a single line.
func statsLine(sol *fdm.Solution, cached bool) string {
	parts := []string{
		fmt.Sprintf("%d free", sol.FreeCount),
		fmt.Sprintf("%d supports", sol.FixedCount()),
		fmt.Sprintf("%d branches", len(sol.Branches)),
	}
	if dropped := len(sol.Branches) - len(sol.Lines); dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d collapsed", dropped))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	return line + StyleDim.Render(" · ") + statusStyle.Render(status)
}

// printStats prints solution statistics on a single line.
func printStats(sol *fdm.Solution, cached bool) {
	fmt.Println(statsLine(sol, cached))
}

// nodeTable renders the equilibrium positions of every node.
func nodeTable(sol *fdm.Solution) string {
	rows := make([][]string, len(sol.Nodes))
	for i, n := range sol.Nodes {
		kind := "free"
		if n.Fixed {
			kind = "support"
		}
		rows[i] = []string{
			strconv.Itoa(n.Index), kind,
			formatNumber(n.Position.X), formatNumber(n.Position.Y), formatNumber(n.Position.Z),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorders).
		Headers("NODE", "KIND", "X", "Y", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col >= 2:
				return styleTableNumber
			}
			return styleTableCell
		}).
		Render()
}

// branchTable renders every branch with its force density, length and
// axial force. Tension and compression are coloured differently.
func branchTable(sol *fdm.Solution) string {
	rows := make([][]string, len(sol.Branches))
	for i, b := range sol.Branches {
		rows[i] = []string{
			strconv.Itoa(b.Index), strconv.Itoa(b.Start), strconv.Itoa(b.End),
			formatNumber(b.Density), formatNumber(sol.Lengths[i]), formatNumber(sol.Forces[i]),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorders).
		Headers("BRANCH", "START", "END", "Q", "LENGTH", "FORCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 5 && sol.Forces[row] > 0:
				return styleTension
			case col == 5 && sol.Forces[row] < 0:
				return styleCompression
			case col >= 3:
				return styleTableNumber
			}
			return styleTableCell
		}).
		Render()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
