package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Color palette. Every color the CLI prints comes from here.
var (
	// ColorFlame is the brand accent used for titles and highlights.
	ColorFlame = lipgloss.AdaptiveColor{Light: "#D9480F", Dark: "#FF8C42"}

	// ColorCyan is used for identifiable nouns: project names, paths, profiles.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks success.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks warnings and skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorRed marks failures.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFlame)
	StyleNoun    = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleError   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleDim     = lipgloss.NewStyle().Faint(true)

	// StyleCard frames summary blocks.
	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorFlame).
			Padding(0, 2)
)

// DisableColor renders every style without color or other escapes.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Checkmark returns a styled success mark followed by msg.
func Checkmark(msg string) string {
	return StyleSuccess.Render("✔") + " " + msg
}

// Cross returns a styled failure mark followed by msg.
func Cross(msg string) string {
	return StyleError.Render("✘") + " " + msg
}

// Bullet returns a styled warning bullet followed by msg.
func Bullet(msg string) string {
	return StyleWarn.Render("•") + " " + msg
}

// Table is a styled table.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table as a string.
func (t *Table) String() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorFlame).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(t.headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}
	return tbl.String()
}
