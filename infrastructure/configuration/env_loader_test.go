package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"wesion-bff/infrastructure/configuration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvFromFile(t *testing.T) {
	path := writeEnvFile(t, `
# comment line
PLAIN_VALUE=hello
QUOTED_VALUE="with spaces"
SINGLE_QUOTED='single'
EMPTY_KEYLESS_LINE
=no-key
`)
	for _, key := range []string{"PLAIN_VALUE", "QUOTED_VALUE", "SINGLE_QUOTED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	configuration.LoadEnvFromFile(path)

	assert.Equal(t, "hello", os.Getenv("PLAIN_VALUE"))
	assert.Equal(t, "with spaces", os.Getenv("QUOTED_VALUE"))
	assert.Equal(t, "single", os.Getenv("SINGLE_QUOTED"))
}

func TestLoadEnvFromFileKeepsExistingVariables(t *testing.T) {
	path := writeEnvFile(t, "HTTP_PORT=9999\n")
	t.Setenv("HTTP_PORT", "10002")

	configuration.LoadEnvFromFile(path)

	assert.Equal(t, "10002", os.Getenv("HTTP_PORT"), "the live environment outranks the file")
}

func TestLoadEnvFromFileIgnoresMissingFiles(t *testing.T) {
	assert.NotPanics(t, func() {
		configuration.LoadEnvFromFile(filepath.Join(t.TempDir(), "absent.env"))
	})
}
