package tokens

import (
	"errors"
	"fmt"
	"regexp"
)

// Role is a semantic colour name used by components instead of raw shades.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleOptimal    Role = "optimal"
	RoleGood       Role = "good"
	RoleAttention  Role = "attention"
	RoleConcern    Role = "concern"
	RoleBackground Role = "background"
	RoleForeground Role = "foreground"
	RoleMuted      Role = "muted"
	RoleAccent     Role = "accent"
)

// Semantic aliases. Each one names a palette constant, so pointing an alias
// at a shade that does not exist is a compile error.
const (
	ColorPrimary    = Brand500
	ColorOptimal    = Optimal500
	ColorGood       = Good500
	ColorAttention  = Attention500
	ColorConcern    = Concern500
	ColorBackground = Neutral50
	ColorForeground = Navy900
	ColorMuted      = Neutral500
	ColorAccent     = Navy500
)

// Ref points at one shade of one palette.
type Ref struct {
	Palette Palette `yaml:"palette" toml:"palette"`
	Shade   Shade   `yaml:"shade" toml:"shade"`
}

// String renders the ref as "palette.shade".
func (r Ref) String() string {
	return fmt.Sprintf("%s.%d", r.Palette, r.Shade)
}

// Hex resolves the ref against the palette table.
func (r Ref) Hex() (string, bool) {
	return Lookup(r.Palette, r.Shade)
}

var roleOrder = []Role{
	RolePrimary, RoleOptimal, RoleGood, RoleAttention, RoleConcern,
	RoleBackground, RoleForeground, RoleMuted, RoleAccent,
}

// semantic mirrors the Color* constants above as palette refs.
var semantic = map[Role]Ref{
	RolePrimary:    {Brand, Shade500},
	RoleOptimal:    {Optimal, Shade500},
	RoleGood:       {Good, Shade500},
	RoleAttention:  {Attention, Shade500},
	RoleConcern:    {Concern, Shade500},
	RoleBackground: {Neutral, Shade50},
	RoleForeground: {Navy, Shade900},
	RoleMuted:      {Neutral, Shade500},
	RoleAccent:     {Navy, Shade500},
}

var semanticHex = map[Role]string{
	RolePrimary:    ColorPrimary,
	RoleOptimal:    ColorOptimal,
	RoleGood:       ColorGood,
	RoleAttention:  ColorAttention,
	RoleConcern:    ColorConcern,
	RoleBackground: ColorBackground,
	RoleForeground: ColorForeground,
	RoleMuted:      ColorMuted,
	RoleAccent:     ColorAccent,
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Roles returns the semantic role names in declaration order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// Resolve returns the hex colour a role aliases.
func Resolve(r Role) (string, bool) {
	hex, ok := semanticHex[r]
	return hex, ok
}

// RefFor reports which palette shade a role aliases.
func RefFor(r Role) (Ref, bool) {
	ref, ok := semantic[r]
	return ref, ok
}

// Validate checks the token tables against each other: every colour in the
// ramps is #rrggbb, every role points at an existing shade, and the role's
// constant matches the shade it claims to alias.
func Validate() error {
	var errs []error

	for _, p := range paletteOrder {
		ramp := ramps[p]
		for i, hex := range ramp {
			if !IsHex(hex) {
				errs = append(errs, fmt.Errorf("tokens: %s.%d: invalid hex %q", p, shadeOrder[i], hex))
			}
		}
	}

	for _, role := range roleOrder {
		ref, ok := semantic[role]
		if !ok {
			errs = append(errs, fmt.Errorf("tokens: role %q has no palette ref", role))
			continue
		}
		want, ok := ref.Hex()
		if !ok {
			errs = append(errs, fmt.Errorf("tokens: role %q references missing shade %s", role, ref))
			continue
		}
		got, ok := semanticHex[role]
		if !ok {
			errs = append(errs, fmt.Errorf("tokens: role %q has no colour", role))
			continue
		}
		if got != want {
			errs = append(errs, fmt.Errorf("tokens: role %q is %s but %s is %s", role, got, ref, want))
		}
	}

	return errors.Join(errs...)
}

// IsHex reports whether s is a #rrggbb colour.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}
