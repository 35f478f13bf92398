package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassphrase_FromEnv(t *testing.T) {
	t.Setenv(PassphraseEnvVar, "banana")

	passphrase, err := getPassphrase("Master password: ")
	require.NoError(t, err)
	assert.Equal(t, []byte("banana"), passphrase)
}
