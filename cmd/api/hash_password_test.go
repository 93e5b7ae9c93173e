package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/platform/password"
)

func runHashPassword(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	hashPasswordCmd.SetOut(&out)
	hashPasswordCmd.SetErr(&out)
	hashPasswordCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		hashPasswordCmd.SetOut(nil)
		hashPasswordCmd.SetErr(nil)
		hashPasswordCmd.SetIn(nil)
	})

	err := hashPasswordCmd.RunE(hashPasswordCmd, args)
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword_FromArg(t *testing.T) {
	digest, err := runHashPassword(t, "", "abcdefhi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := password.NewHasher(password.DefaultParams()).Verify(digest, "abcdefhi")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_FromStdin(t *testing.T) {
	digest, err := runHashPassword(t, "abcdefhi\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := runHashPassword(t, "\n")
	assert.Error(t, err)
}
