package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "config.env")
	require.NoError(t, os.WriteFile(envFile, []byte(`
# comment
FOO_FROM_FILE=bar
QUOTED_VALUE="quoted"
ALREADY_SET=file-value
not a pair
`), 0o600))

	t.Setenv("ALREADY_SET", "env-value")
	os.Unsetenv("FOO_FROM_FILE")
	defer os.Unsetenv("FOO_FROM_FILE")
	defer os.Unsetenv("QUOTED_VALUE")

	LoadEnvFromFile(envFile, filepath.Join(dir, "missing.env"))

	require.Equal(t, "bar", os.Getenv("FOO_FROM_FILE"))
	require.Equal(t, "quoted", os.Getenv("QUOTED_VALUE"))
	require.Equal(t, "env-value", os.Getenv("ALREADY_SET"))
}
