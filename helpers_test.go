package mpw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	robertName     = "Robert Lee Mitchell"
	robertPassword = "banana colored duckling"
	robertSite     = "masterpasswordapp.com"
)

func deriveTestKey(t *testing.T, fullName, masterPassword string) *MasterKey {
	t.Helper()
	key, err := DeriveMasterKey(fullName, []byte(masterPassword))
	require.NoError(t, err)
	t.Cleanup(func() { _ = key.Release() })
	return key
}

func deriveTestSeed(t *testing.T, key *MasterKey, siteName string, counter uint32) *SiteSeed {
	t.Helper()
	seed, err := DeriveSiteSeed(key, siteName, counter)
	require.NoError(t, err)
	t.Cleanup(func() { _ = seed.Release() })
	return seed
}

// secretBytes returns a copy of the bytes held by s.
func secretBytes(t *testing.T, s *secret) []byte {
	t.Helper()
	var out []byte
	require.NoError(t, s.view(func(b []byte) error {
		out = append([]byte(nil), b...)
		return nil
	}))
	return out
}
