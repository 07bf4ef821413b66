// Package layouts re-exports the page-level pieces from pkg/layout.
package layouts

import "gitlab.com/tinyland/lab/pulse-ui/pkg/layout"

type (
	Navigation  = layout.Navigation
	NavItem     = layout.NavItem
	NavKeyMap   = layout.NavKeyMap
	NavigateMsg = layout.NavigateMsg
	Grid        = layout.Grid
	Shell       = layout.Shell
)

var (
	NewNavigation    = layout.NewNavigation
	DefaultNavKeyMap = layout.DefaultNavKeyMap
	Split            = layout.Split
	Even             = layout.Even
	Offsets          = layout.Offsets
)
