// Package gamedata provides embedded game assets and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the word list, gallows stages and intro note at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
