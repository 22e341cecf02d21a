package config

import (
	"Radiation-Safety-Question-Bank/internal/parser"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "temu.txt", cfg.Input.Path)
	assert.Equal(t, "auto", cfg.Input.Format)
	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.Equal(t, "questions.json", cfg.Output.Path)
	assert.Equal(t, parser.DefaultTitle, cfg.Bank.Title)
	assert.False(t, cfg.Server.Enabled)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "input:\n  path: bank.txt\n  encoding: gbk\noutput:\n  path: out.json\nserver:\n  port: \":9000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	t.Setenv("QBANK_OUTPUT_PATH", "env.json")
	t.Setenv("QBANK_BANK_TITLE", "环境变量标题")

	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--input", "flag.txt", "--serve"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag.txt", cfg.Input.Path)
	assert.Equal(t, "gbk", cfg.Input.Encoding)
	assert.Equal(t, "env.json", cfg.Output.Path)
	assert.Equal(t, "环境变量标题", cfg.Bank.Title)
	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.True(t, cfg.Server.Enabled)
	assert.False(t, cfg.Server.Watch)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--config", "nope.yaml"}))

	_, err := Load(flags)
	assert.Error(t, err)
}
