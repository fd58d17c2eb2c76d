package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/swatch/internal/color"
)

// ConvertCmd converts a hex color to HSL or an HSL triple to hex
type ConvertCmd struct {
	Value string `arg:"" help:"A hex color (#RRGGBB) or an HSL triple (h,s,l or hsl(h, s%, l%))"`
}

// Run executes the convert command
func (c *ConvertCmd) Run() error {
	out, err := convert(c.Value)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func convert(value string) (string, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		hsl, err := color.HexToHSL(value)
		if err != nil {
			return "", err
		}
		return hsl.String(), nil
	}

	hsl, err := parseHSL(value)
	if err != nil {
		return "", err
	}
	return hsl.Hex(), nil
}

// parseHSL accepts "h,s,l" with optional percent signs, spaces and an hsl() wrapper
func parseHSL(value string) (color.HSL, error) {
	inner := strings.TrimSpace(value)
	if strings.HasPrefix(strings.ToLower(inner), "hsl(") && strings.HasSuffix(inner, ")") {
		inner = inner[len("hsl(") : len(inner)-1]
	}

	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return color.HSL{}, fmt.Errorf("invalid HSL %q: expected h,s,l", value)
	}

	var components [3]float64
	for i, part := range parts {
		part = strings.TrimSuffix(strings.TrimSpace(part), "%")
		if i == 0 {
			part = strings.TrimSuffix(part, "°")
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return color.HSL{}, fmt.Errorf("invalid HSL %q: %w", value, err)
		}
		components[i] = v
	}

	return color.HSL{H: components[0], S: components[1], L: components[2]}, nil
}
