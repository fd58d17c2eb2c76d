package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swatch/internal/config"
)

func TestGetKeyGroups(t *testing.T) {
	groups := GetKeyGroups()
	require.Len(t, groups, len(AllKeyDefinitions))

	assert.Equal(t, config.GlobalKeyGroup, groups["help"])
	assert.Equal(t, keyGroupPicker, groups["confirm"])
	assert.Equal(t, keyGroupTheme, groups["edit"])
	for _, def := range AllKeyDefinitions {
		assert.NotEmpty(t, def.Group, "binding %s has no group", def.Name)
	}
}

func TestDefaultBindingsWrittenOutAreValid(t *testing.T) {
	explicit := config.KeyBindingsConfig{}
	for name, keys := range GetDefaultKeyBindings() {
		explicit[name] = config.KeyBindingValue(keys)
	}

	assert.NoError(t, explicit.Validate(GetKeyGroups()))
}

func TestCustomBindingClashesOnOneScreen(t *testing.T) {
	err := config.KeyBindingsConfig{"confirm": {"x"}, "hex_input": {"x"}}.Validate(GetKeyGroups())
	assert.ErrorContains(t, err, "key 'x' is assigned to both")

	err = config.KeyBindingsConfig{"quit": {"e"}, "edit": {"e"}}.Validate(GetKeyGroups())
	assert.ErrorContains(t, err, "key 'e' is assigned to both")

	assert.NoError(t, config.KeyBindingsConfig{"confirm": {"e"}, "edit": {"e"}}.Validate(GetKeyGroups()))
}
