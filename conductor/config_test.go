package conductor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 32.97, cfg.Bc20max)
	assert.Equal(t, 16.06, cfg.Tc0max)
	assert.Equal(t, 1.0e-6, cfg.RebcoThickness)
	assert.Equal(t, 100.0e-6, cfg.CopperThickness)
	assert.Equal(t, 50.0e-6, cfg.HastelloyThickness)
	assert.Equal(t, 6.4e-3, cfg.CrocoOD)
	assert.Equal(t, 0.5e-3, cfg.CrocoThick)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conductor.ini")
	ini := "[nb3sn]\nbc20max = 30.0\n\n[croco]\ncroco_od = 7.0e-3\n"
	require.NoError(t, os.WriteFile(path, []byte(ini), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Bc20max)
	assert.Equal(t, 7.0e-3, cfg.CrocoOD)
	// untouched keys keep their defaults
	assert.Equal(t, 16.06, cfg.Tc0max)
	assert.Equal(t, 0.5e-3, cfg.CrocoThick)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))

	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestTapeGeometry(t *testing.T) {
	g := Default().TapeGeometry()

	assert.Equal(t, 1.0e-6, g.RebcoThickness)
	assert.Equal(t, 100.0e-6, g.CopperThickness)
	assert.Equal(t, 50.0e-6, g.HastelloyThickness)
}
