// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7AA2F7")
	// SuccessColor indicates successful operations and positive amounts.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors and negative amounts.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1D3"))

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// RenderSuccess formats a success message with a checkmark.
func RenderSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// RenderWarning formats a warning message.
func RenderWarning(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}

// RenderError formats an error message.
func RenderError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// RenderInfo formats an informational message.
func RenderInfo(msg string) string {
	return InfoStyle.Render(msg)
}

// FormatMoney renders a signed amount with its currency, colored green for
// positive and red for negative values. Negative balances are a valid,
// ordinary state (credit accounts), not an error.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	text := amount.StringFixed(2) + " " + currency
	if amount.Sign() < 0 {
		return ErrorStyle.Render(text)
	}
	return SuccessStyle.Render(text)
}
