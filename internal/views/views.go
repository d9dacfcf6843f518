// Package views contains the game's views (main menu, gameplay) and the
// entities simulated inside the gameplay view: the player ship, bullets,
// the asteroid, and the parallax backgrounds. Menu and gameplay live in one
// package because each transitions into the other.
package views

import (
	"time"

	"github.com/krotovic/stardrift/internal/config"
)

var (
	cfg  = config.Default()
	seed int64
)

// Configure installs the runtime configuration and RNG seed for all views.
// Called once from the CLI before any view is created; a zero seed means
// seed from the current time.
func Configure(c config.Config, s int64) {
	cfg = c
	seed = s
}

func resolveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
