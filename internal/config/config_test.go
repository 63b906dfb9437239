package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "hours_per_day": 4, "future_skills_category": "Data"}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.HoursPerDay)
	assert.Equal(t, "Data", cfg.FutureSkillsCategory)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)

	_, err := LoadConfig(path)

	assert.ErrorContains(t, err, "parse")
}

func TestValidate_UnknownFutureCategory(t *testing.T) {
	cfg := &Config{FutureSkillsCategory: "Blockchain Wizardry"}

	assert.ErrorContains(t, cfg.Validate(), "future_skills_category")
}

func TestValidate_NegativeHours(t *testing.T) {
	cfg := &Config{HoursPerDay: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 8081}

	merged := cfg.MergeWithDefaults(Config{Port: 8080, HoursPerDay: 3})

	assert.Equal(t, 8081, merged.Port)
	assert.Equal(t, 3, merged.HoursPerDay)
	assert.Equal(t, "Cloud", merged.FutureSkillsCategory)
}
