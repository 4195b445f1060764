package grammars

import "github.com/gogpu/gg"

// Palette shared by the built-in figures.
var (
	Lime   = gg.Hex("#009E2F")
	Brown  = gg.Hex("#7F6A4F")
	Yellow = gg.Hex("#FDF900")
	Red    = gg.Hex("#E62937")
	Blue   = gg.Hex("#0079F1")
)
