// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/durgas/budgetai/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// SuccessColor indicates positive balances and successful operations.
	SuccessColor = lipgloss.Color("#95E1D3") // Light teal
	// WarningColor indicates budgets running low.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates overspending or failures.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats positive amounts and confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats near-limit amounts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats negative amounts and failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BarStyle colors the filled portion of text bar charts.
	BarStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WalletIcon  = "💰"
	ChartIcon   = "📊"
	BulbIcon    = "💡"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(WalletIcon + " " + title)
}

// FormatMoney renders an amount as dollars, colored by sign: negative
// amounts are the overspent state and render red.
func FormatMoney(amount float64) string {
	text := fmt.Sprintf("$%.2f", amount)
	if amount < 0 {
		return ErrorStyle.Render(text)
	}
	return text
}

// FormatRemaining renders a remaining amount with traffic-light coloring
// against its budget: red when negative, yellow under 20% left, green
// otherwise.
func FormatRemaining(remaining, budget float64) string {
	text := fmt.Sprintf("$%.2f", remaining)
	switch {
	case remaining < 0:
		return ErrorStyle.Render(text)
	case budget > 0 && remaining < budget*0.2:
		return WarningStyle.Render(text)
	default:
		return SuccessStyle.Render(text)
	}
}

// FormatCategory renders a category name for display, replacing the
// underscore separators.
func FormatCategory(category model.Category) string {
	return strings.ReplaceAll(string(category), "_", " ")
}

// Bar renders a proportional text bar of the given width. The share is
// clamped to [0, 1], so overspent values fill the bar rather than overflow
// it.
func Bar(share float64, width int) string {
	if width <= 0 {
		return ""
	}
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	return BarStyle.Render(strings.Repeat("█", filled)) + SubtleStyle.Render(strings.Repeat("░", width-filled))
}
