package scenes

import (
	"github.com/digitorumflex/folio/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene          = (*LandingScene)(nil)
	_ game.Resizable = (*LandingScene)(nil)
)
