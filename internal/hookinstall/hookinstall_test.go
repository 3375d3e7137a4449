// SPDX-License-Identifier: AGPL-3.0-or-later

package hookinstall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	assert.Equal(t, "#!/bin/sh\n# Installed by validate-commit.\nexec 'validate-commit' \"$1\"\n", Script("validate-commit"))
	assert.Contains(t, Script("/opt/it's here/vc"), `exec '/opt/it'\''s here/vc' "$1"`)
}

func TestInstall(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	path, err := Install(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".git", "hooks", "commit-msg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Script("validate-commit"), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o111)

	_, err = Install(root, Options{Binary: "/usr/local/bin/validate-commit"})
	require.ErrorIs(t, err, ErrHookExists)

	_, err = Install(root, Options{Binary: "/usr/local/bin/validate-commit", Force: true})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/usr/local/bin/validate-commit")
}

func TestInstall_NotARepository(t *testing.T) {
	_, err := Install(t.TempDir(), Options{})
	assert.Error(t, err)
}
