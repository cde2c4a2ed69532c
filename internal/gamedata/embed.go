// Package gamedata provides the embedded world catalog: zones, enemies and quests.
package gamedata

import "embed"

// dataFS embeds all JSON catalog files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
