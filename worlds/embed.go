// Package worlds embeds the shipped world and room files.
package worlds

import "embed"

//go:embed *.json
var FS embed.FS

// Default is the world file loaded when no -world flag is given.
const Default = "world.json"
