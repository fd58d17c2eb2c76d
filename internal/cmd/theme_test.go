package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swatch/internal/domain"
	portsmocks "github.com/renato0307/swatch/internal/ports/mocks"
	"github.com/renato0307/swatch/internal/services"
)

func newStoredTheme(t *testing.T, colors string) (*services.ThemeService, *portsmocks.MockPreferenceRepository) {
	t.Helper()
	prefs := portsmocks.NewMockPreferenceRepository(t)
	if colors == "" {
		prefs.EXPECT().Get(mock.Anything, services.PrefUserColors).Return("", domain.ErrPreferenceNotFound)
	} else {
		prefs.EXPECT().Get(mock.Anything, services.PrefUserColors).Return(colors, nil)
	}
	prefs.EXPECT().Get(mock.Anything, services.PrefDarkMode).Return("", domain.ErrPreferenceNotFound)
	return services.NewThemeService(prefs), prefs
}

func TestPrintTheme(t *testing.T) {
	svc, _ := newStoredTheme(t, `{"secondary":"#5856D6"}`)
	require.NoError(t, svc.Load(context.Background()))

	var out bytes.Buffer
	require.NoError(t, printTheme(&out, svc))
	lines := out.String()

	assert.Contains(t, lines, "Mode: dark")
	assert.Regexp(t, `primary\s+#007AFF\s+default`, lines)
	assert.Regexp(t, `secondary\s+#5856D6\s+custom`, lines)
	assert.Regexp(t, `background\s+#000000\s+locked`, lines)
}

func TestSetColor(t *testing.T) {
	svc, prefs := newStoredTheme(t, "")
	prefs.EXPECT().Set(mock.Anything, services.PrefUserColors, `{"primary":"#FF2D55"}`).Return(nil).Once()

	require.NoError(t, setColor(context.Background(), svc, "primary", "#ff2d55"))

	primary, err := svc.Color(domain.RolePrimary)
	require.NoError(t, err)
	assert.Equal(t, "#FF2D55", primary)
}

func TestSetColor_Rejected(t *testing.T) {
	prefs := portsmocks.NewMockPreferenceRepository(t)
	svc := services.NewThemeService(prefs)

	err := setColor(context.Background(), svc, "background", "#111111")
	assert.ErrorIs(t, err, domain.ErrRoleNotCustomizable)

	err = setColor(context.Background(), svc, "accent", "#111111")
	assert.ErrorIs(t, err, domain.ErrUnknownColorRole)
}

func TestApplyDarkMode(t *testing.T) {
	svc, prefs := newStoredTheme(t, "")
	prefs.EXPECT().Set(mock.Anything, services.PrefDarkMode, "false").Return(nil).Once()

	darkMode, err := applyDarkMode(context.Background(), svc, "toggle")
	require.NoError(t, err)
	assert.False(t, darkMode)
	assert.False(t, svc.IsDarkMode())

	svc, prefs = newStoredTheme(t, "")
	prefs.EXPECT().Set(mock.Anything, services.PrefDarkMode, "true").Return(nil).Once()

	darkMode, err = applyDarkMode(context.Background(), svc, "on")
	require.NoError(t, err)
	assert.True(t, darkMode)
}
