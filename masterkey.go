package mpw

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"unicode/utf8"

	"golang.org/x/crypto/scrypt"
)

const (
	// keyScope prefixes every salt and site message.
	keyScope = "com.lyndir.masterpassword"

	// scrypt work factors are fixed by the scheme. Changing any of them
	// changes every password ever derived.
	scryptN = 32768
	scryptR = 8
	scryptP = 2

	// MasterKeySize is the length of a derived master key in bytes.
	MasterKeySize = 64

	// DerivationMemory is the scrypt working set of one master key
	// derivation, in bytes.
	DerivationMemory = 128 * scryptN * scryptR
)

// MasterKey is the root secret for one (full name, master password) pair.
// It must be released with Release once no more site seeds are needed.
type MasterKey struct {
	s secret
}

// DeriveMasterKey stretches masterPassword with scrypt, salted with the
// user's full name. An empty master password is accepted and gives a valid
// but weak key. The caller keeps ownership of masterPassword and is
// responsible for wiping it.
func DeriveMasterKey(fullName string, masterPassword []byte) (*MasterKey, error) {
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is empty", ErrInvalidInput)
	}
	if !utf8.ValidString(fullName) {
		return nil, fmt.Errorf("%w: full name is not valid UTF-8", ErrInvalidInput)
	}
	if uint64(len(fullName)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: full name is too long", ErrInvalidInput)
	}
	if !utf8.Valid(masterPassword) {
		return nil, fmt.Errorf("%w: master password is not valid UTF-8", ErrInvalidInput)
	}

	salt := scopedMessage(fullName, 0)
	defer Wipe(salt)

	key, err := scrypt.Key(masterPassword, salt, scryptN, scryptR, scryptP, MasterKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %v", ErrDerivation, err)
	}
	if len(key) != MasterKeySize {
		Wipe(key)
		return nil, fmt.Errorf("%w: scrypt returned %d bytes", ErrDerivation, len(key))
	}

	return newMasterKey(key), nil
}

func newMasterKey(b []byte) *MasterKey {
	k := &MasterKey{}
	k.s.init(b)
	runtime.SetFinalizer(k, func(k *MasterKey) { _ = k.s.release() })
	return k
}

// Release wipes the key. It must be called exactly once; later calls and
// any use of the key afterwards return ErrReleased.
func (k *MasterKey) Release() error {
	if k == nil {
		return ErrReleased
	}
	runtime.SetFinalizer(k, nil)
	return k.s.release()
}

func (k *MasterKey) String() string { return "mpw.MasterKey(redacted)" }
func (k *MasterKey) GoString() string { return k.String() }
func (k *MasterKey) LogValue() slog.Value { return slog.StringValue(k.String()) }

func (k *MasterKey) MarshalText() ([]byte, error) { return nil, errNoSerialize }
func (k *MasterKey) MarshalJSON() ([]byte, error) { return nil, errNoSerialize }

// scopedMessage builds keyScope || uint32be(len(name)) || name, with room
// for extra trailing bytes. Callers check that len(name) fits in 32 bits.
func scopedMessage(name string, extra int) []byte {
	b := make([]byte, 0, len(keyScope)+4+len(name)+extra)
	b = append(b, keyScope...)
	b = binary.BigEndian.AppendUint32(b, uint32(len(name)))
	b = append(b, name...)
	return b
}
