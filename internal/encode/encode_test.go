package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

func TestGenerate(t *testing.T) {
	m, err := Default.Generate("https://example.com", style.QROptions{Level: style.ECQuartile})
	require.NoError(t, err)

	n := m.Size()
	assert.GreaterOrEqual(t, n, 21)
	// QR side lengths are 17 + 4*version.
	assert.Equal(t, 1, n%4)

	// The finder pattern is present: dark outer frame, light separator
	// ring, dark center.
	assert.True(t, m.Dark(0, 0))
	assert.True(t, m.Dark(0, 6))
	assert.True(t, m.Dark(6, 0))
	assert.False(t, m.Dark(1, 1))
	assert.True(t, m.Dark(3, 3))
}

func TestGenerate_EmptyData(t *testing.T) {
	_, err := Default.Generate("", style.QROptions{Level: style.ECQuartile})
	require.Error(t, err)

	ce, ok := style.AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, "data", ce.Field)
}

func TestGenerate_ForcedVersion(t *testing.T) {
	m, err := Default.Generate("hi", style.QROptions{Version: 5, Level: style.ECMedium})
	require.NoError(t, err)
	assert.Equal(t, 17+4*5, m.Size())
}

func TestGenerate_HigherLevelNeedsMoreModules(t *testing.T) {
	payload := "https://example.com/some/longer/path?with=query&and=params"

	low, err := Default.Generate(payload, style.QROptions{Level: style.ECLow})
	require.NoError(t, err)
	high, err := Default.Generate(payload, style.QROptions{Level: style.ECHigh})
	require.NoError(t, err)

	assert.LessOrEqual(t, low.Size(), high.Size())
}

func TestGenerate_DefaultsToQuartile(t *testing.T) {
	// An unknown level string falls back to Q rather than failing; the
	// options validator rejects it earlier in the pipeline.
	m, err := Default.Generate("hello", style.QROptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Size(), 21)
}
