package progress

import "github.com/fatih/color"

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// Mark returns the success or failure symbol, coloured when supported.
func Mark(symbols Symbols, ok, supportsColor bool) string {
	if ok {
		if supportsColor {
			return okColor.Sprint(symbols.Checkmark)
		}
		return symbols.Checkmark
	}
	if supportsColor {
		return failColor.Sprint(symbols.Failure)
	}
	return symbols.Failure
}
