// Package input provides interactive terminal input utilities.
//
// The generator uses this package for the overwrite confirmation prompt
// and any other operator interaction.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stdin is swappable so tests can feed canned answers.
var stdin io.Reader = os.Stdin

// SetReader replaces the input source and returns a function restoring the
// previous one. Tests use this to drive prompts with canned answers.
func SetReader(r io.Reader) func() {
	old := stdin
	stdin = r
	return func() { stdin = old }
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true. Otherwise, returns false.
//
// Example:
//
//	if input.Confirm("Are you sure you want to continue?", false) {
//	    // User said yes
//	}
//	// Displays: Are you sure you want to continue? [y/N]: _
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(stdin)

	// Format prompt with [Y/n] or [y/N] hint
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " +
		hintStyle.Render(hint) + ": ")

	// Read input
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}

	// Trim whitespace and convert to lowercase
	line = strings.TrimSpace(strings.ToLower(line))

	// Empty input returns default
	if line == "" {
		return defaultYes
	}

	return line == "y" || line == "yes"
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(stdin)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}

	return line
}
