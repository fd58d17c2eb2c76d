package domain

import (
	"fmt"
	"sort"

	"github.com/renato0307/swatch/internal/color"
)

// ColorRole names a palette entry
type ColorRole string

const (
	RoleBackground    ColorRole = "background"
	RoleCard          ColorRole = "card"
	RoleCardBorder    ColorRole = "card_border"
	RoleDanger        ColorRole = "danger"
	RolePrimary       ColorRole = "primary"
	RolePurple        ColorRole = "purple"
	RoleSecondary     ColorRole = "secondary"
	RoleSuccess       ColorRole = "success"
	RoleText          ColorRole = "text"
	RoleTextSecondary ColorRole = "text_secondary"
	RoleTextTertiary  ColorRole = "text_tertiary"
	RoleWarning       ColorRole = "warning"
)

// Roles lists every palette role in display order
var Roles = []ColorRole{
	RolePrimary,
	RoleSecondary,
	RoleBackground,
	RoleCard,
	RoleCardBorder,
	RoleText,
	RoleTextSecondary,
	RoleTextTertiary,
	RoleSuccess,
	RoleWarning,
	RoleDanger,
	RolePurple,
}

// CustomizableRoles are the roles a user may override
var CustomizableRoles = []ColorRole{RolePrimary, RoleSecondary}

// Palette maps each role to an opaque #RRGGBB color
type Palette map[ColorRole]string

// tint is a translucent overlay flattened onto a background
type tint struct {
	alpha float64
	over  string
}

type basePalette struct {
	opaque map[ColorRole]string
	tints  map[ColorRole]tint
}

var darkBase = basePalette{
	opaque: map[ColorRole]string{
		RolePrimary:    "#007AFF",
		RoleSecondary:  "#34C759",
		RoleBackground: "#000000",
		RoleText:       "#FFFFFF",
		RoleSuccess:    "#34C759",
		RoleWarning:    "#FF9500",
		RoleDanger:     "#FF3B30",
		RolePurple:     "#AF52DE",
	},
	tints: map[ColorRole]tint{
		RoleCard:          {over: "#FFFFFF", alpha: 0.1},
		RoleCardBorder:    {over: "#FFFFFF", alpha: 0.15},
		RoleTextSecondary: {over: "#FFFFFF", alpha: 0.6},
		RoleTextTertiary:  {over: "#FFFFFF", alpha: 0.4},
	},
}

var lightBase = basePalette{
	opaque: map[ColorRole]string{
		RolePrimary:    "#007AFF",
		RoleSecondary:  "#34C759",
		RoleBackground: "#F2F2F7",
		RoleText:       "#000000",
		RoleSuccess:    "#34C759",
		RoleWarning:    "#FF9500",
		RoleDanger:     "#FF3B30",
		RolePurple:     "#AF52DE",
	},
	tints: map[ColorRole]tint{
		RoleCard:          {over: "#000000", alpha: 0.05},
		RoleCardBorder:    {over: "#000000", alpha: 0.1},
		RoleTextSecondary: {over: "#000000", alpha: 0.6},
		RoleTextTertiary:  {over: "#000000", alpha: 0.4},
	},
}

// BasePalette returns the built-in palette for a mode with translucent
// roles composited over the mode's background
func BasePalette(darkMode bool) Palette {
	base := lightBase
	if darkMode {
		base = darkBase
	}

	p := make(Palette, len(Roles))
	for role, hex := range base.opaque {
		p[role] = hex
	}
	bg := base.opaque[RoleBackground]
	for role, t := range base.tints {
		flat, err := color.Over(t.over, bg, t.alpha)
		if err != nil {
			// static tables; unreachable unless they are edited badly
			panic(fmt.Sprintf("invalid base palette entry %s: %v", role, err))
		}
		p[role] = flat
	}
	return p
}

// Merge returns a copy of p with overrides applied on top
func (p Palette) Merge(overrides map[ColorRole]string) Palette {
	merged := make(Palette, len(p))
	for role, hex := range p {
		merged[role] = hex
	}
	for role, hex := range overrides {
		merged[role] = hex
	}
	return merged
}

// Get returns the color of a role
func (p Palette) Get(role ColorRole) (string, error) {
	hex, ok := p[role]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColorRole, role)
	}
	return hex, nil
}

// ParseColorRole validates a role name
func ParseColorRole(name string) (ColorRole, error) {
	for _, r := range Roles {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColorRole, name)
}

// IsCustomizable reports whether a role can be overridden by the user
func (r ColorRole) IsCustomizable() bool {
	for _, c := range CustomizableRoles {
		if c == r {
			return true
		}
	}
	return false
}

// SortedRoles returns the roles of p in display order, unknown roles last by name
func (p Palette) SortedRoles() []ColorRole {
	order := make(map[ColorRole]int, len(Roles))
	for i, r := range Roles {
		order[r] = i
	}

	roles := make([]ColorRole, 0, len(p))
	for r := range p {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool {
		oi, iKnown := order[roles[i]]
		oj, jKnown := order[roles[j]]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		}
		return roles[i] < roles[j]
	})
	return roles
}
