package config

import "github.com/logrusorgru/aurora"

// Color constants for logger prefixes
const (
	ColorGreen   = aurora.GreenFg
	ColorBlue    = aurora.BlueFg
	ColorMagenta = aurora.MagentaFg
	ColorCyan    = aurora.CyanFg
)
