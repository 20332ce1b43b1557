package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog"}))

	cfg, err := p.SuiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, "http://localhost:5000/health", cfg.HealthURL)
	assert.Equal(t, time.Duration(0), p.timeout)
	assert.False(t, p.filters.IsDefined())
}

func TestReadFlags(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog",
		"-url", "http://staging:8080/api",
		"-run", "^receivables/",
		"-skip", "detail",
		"-timeout", "5s",
		"-debug",
		"-no-color",
	}))
	assert.Equal(t, 5*time.Second, p.timeout)
	assert.True(t, p.debug)
	assert.True(t, p.noColor)
	assert.True(t, p.filters.AsFilter(framework.NewStepID("receivables/create")))
	assert.False(t, p.filters.AsFilter(framework.NewStepID("receivables/detail")))

	cfg, err := p.SuiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://staging:8080/api", cfg.BaseURL)
	assert.Equal(t, "http://staging:8080/health", cfg.HealthURL)
}

func TestReadRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"prog", "-url", "localhost:5000"},
		{"prog", "-health-url", "ftp://x/health"},
		{"prog", "-run", "("},
		{"prog", "-nonsense"},
		{"prog", "extra"},
	} {
		var p commandParams
		assert.False(t, p.Read(args), "args: %v", args)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("base_url: http://from-file/api\nhealth_url: http://from-file/live\n"), 0600))

	var p commandParams
	require.True(t, p.Read([]string{"prog", "-config", path}))
	cfg, err := p.SuiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://from-file/api", cfg.BaseURL)
	assert.Equal(t, "http://from-file/live", cfg.HealthURL)

	p = commandParams{}
	require.True(t, p.Read([]string{"prog", "-config", path, "-url", "http://from-flag/api"}))
	cfg, err = p.SuiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag/api", cfg.BaseURL)
	assert.Equal(t, "http://from-file/live", cfg.HealthURL)
}

func TestBadConfigFile(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-config", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err := p.SuiteConfig()
	assert.Error(t, err)
}
