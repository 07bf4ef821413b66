// Package atoms is the single import for the kit's smallest pieces. It
// re-exports the atom types, constants and helpers from pkg/components so
// callers can write atoms.Button{...} without knowing where it lives.
//
// Nothing here has behaviour of its own.
package atoms

import "gitlab.com/tinyland/lab/pulse-ui/pkg/components"

// Components.
type (
	Button      = components.Button
	Icon        = components.Icon
	Badge       = components.Badge
	ProgressBar = components.ProgressBar
	Sparkline   = components.Sparkline
	Card        = components.Card
	Divider     = components.Divider
)

// Prop types.
type (
	ButtonVariant = components.ButtonVariant
	IconName      = components.IconName
	IconSet       = components.IconSet
)

const (
	ButtonPrimary   = components.ButtonPrimary
	ButtonSecondary = components.ButtonSecondary
	ButtonGhost     = components.ButtonGhost
	ButtonDanger    = components.ButtonDanger
)

const (
	IconHeart     = components.IconHeart
	IconSleep     = components.IconSleep
	IconActivity  = components.IconActivity
	IconWeight    = components.IconWeight
	IconTrendUp   = components.IconTrendUp
	IconTrendDown = components.IconTrendDown
	IconTrendFlat = components.IconTrendFlat
	IconCheck     = components.IconCheck
	IconAlert     = components.IconAlert
	IconInfo      = components.IconInfo
	IconDot       = components.IconDot
)

const (
	IconsUnicode = components.IconsUnicode
	IconsASCII   = components.IconsASCII
)

const (
	Ellipsis              = components.Ellipsis
	DefaultProgressWidth  = components.DefaultProgressWidth
	DefaultSparklineWidth = components.DefaultSparklineWidth
)

// Helpers.
var (
	Heading    = components.Heading
	Caption    = components.Caption
	VisibleLen = components.VisibleLen
	Strip      = components.Strip
	Truncate   = components.Truncate
	PadRight   = components.PadRight
	PadCenter  = components.PadCenter
	Fit        = components.Fit
	Glyph      = components.Glyph
	GlyphIn    = components.GlyphIn
	IconNames  = components.IconNames
	TrendIcon  = components.TrendIcon
	BadgeFor   = components.BadgeFor
	Delta      = components.Delta
)
