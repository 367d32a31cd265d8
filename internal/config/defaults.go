// Package config provides configuration loading and defaults for crechestat.
package config

// DefaultConfigDir is the default location for crechestat configuration.
const DefaultConfigDir = "~/.config/crechestat"

// DefaultManagerNames are the operating organizations recognized as
// dedicated spreadsheet columns.
var DefaultManagerNames = []string{
	"Ville de Strasbourg",
	"AASBR",
	"AGES",
	"ALEF",
	"APEDI Alsace",
	"Fondation d'Auteuil",
	"Fossé des Treize",
}

// DefaultOpenAnswerLimit caps how many verbatim open answers are rendered
// per question in terminal reports.
const DefaultOpenAnswerLimit = 10

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
