// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/katalvlaran/tapematrix/config"
	"github.com/katalvlaran/tapematrix/errlog"
	"github.com/katalvlaran/tapematrix/session"
)

// Deps is everything the menu needs from the outside.
type Deps struct {
	Session *session.Session
	Log     *errlog.Log
	Display config.Display
}
