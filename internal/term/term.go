// Package term renders styled terminal output for the CLI.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Banner is the ASCII art printed at startup.
const Banner = `
 ____  _                      ____  _        _
/ ___|| |_ ___  __ _ _ __ ___/ ___|| |_ __ _| |_ ___
\___ \| __/ _ \/ _` + "`" + ` | '_ ` + "`" + ` _ \___ \| __/ _` + "`" + ` | __/ __|
 ___) | ||  __/ (_| | | | | | |__) | || (_| | |_\__ \
|____/ \__\___|\__,_|_| |_| |_|____/ \__\__,_|\__|___/
`

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("161"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("178"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	agentLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render(Banner))
}

// Header renders a section header with an underline matching its width.
func Header(text string) string {
	underline := strings.Repeat("═", len([]rune(text)))
	return headerStyle.Render(text) + "\n" + headerStyle.Render(underline)
}

// PrintHeader writes a section header with a leading blank line.
func PrintHeader(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s\n", Header(text))
}

// PrintError writes an error message.
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+text))
}

// PrintWarning writes a warning message.
func PrintWarning(w io.Writer, text string) {
	fmt.Fprintln(w, warningStyle.Render("Warning: "+text))
}

// PrintSuccess writes a success message.
func PrintSuccess(w io.Writer, text string) {
	fmt.Fprintln(w, successStyle.Render(text))
}

// PrintAgentMessage writes a reply prefixed with the agent label.
func PrintAgentMessage(w io.Writer, text string) {
	fmt.Fprintf(w, "%s%s\n", agentLabelStyle.Render("Agent > "), text)
}

// PrintUserPrompt writes the chat input prompt without a trailing newline.
func PrintUserPrompt(w io.Writer) {
	fmt.Fprint(w, userLabelStyle.Render("You > "))
}

// FormatHours formats hours with thousands separators and one decimal,
// e.g. 1234.56 -> "1,234.6".
func FormatHours(hours float64) string {
	return humanize.FormatFloat("#,###.#", hours)
}
