package mpw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"unicode/utf8"
)

const (
	// SiteSeedSize is the length of a site seed in bytes.
	SiteSeedSize = 32

	// DefaultCounter is the counter of a site whose password was never rotated.
	DefaultCounter uint32 = 1
)

// SiteSeed is the secret for one (master key, site name, counter) triple.
// It must be released with Release once the password has been rendered.
type SiteSeed struct {
	s secret
}

// DeriveSiteSeed computes HMAC-SHA256 over the scoped site name and counter,
// keyed with the master key. The master key is only read and can be reused
// for other sites, including from other goroutines.
func DeriveSiteSeed(key *MasterKey, siteName string, counter uint32) (*SiteSeed, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: master key is nil", ErrInvalidInput)
	}
	if siteName == "" {
		return nil, fmt.Errorf("%w: site name is empty", ErrInvalidInput)
	}
	if !utf8.ValidString(siteName) {
		return nil, fmt.Errorf("%w: site name is not valid UTF-8", ErrInvalidInput)
	}
	if uint64(len(siteName)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: site name is too long", ErrInvalidInput)
	}

	message := scopedMessage(siteName, 4)
	message = binary.BigEndian.AppendUint32(message, counter)
	defer Wipe(message)

	var seed []byte
	err := key.s.view(func(k []byte) error {
		var err error
		seed, err = computeHMAC(k, message)
		return err
	})
	switch {
	case errors.Is(err, ErrReleased):
		return nil, fmt.Errorf("master key: %w", err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrDerivation, err)
	}

	return newSiteSeed(seed), nil
}

func newSiteSeed(b []byte) *SiteSeed {
	s := &SiteSeed{}
	s.s.init(b)
	runtime.SetFinalizer(s, func(s *SiteSeed) { _ = s.s.release() })
	return s
}

// Release wipes the seed. It must be called exactly once; later calls and
// any use of the seed afterwards return ErrReleased.
func (s *SiteSeed) Release() error {
	if s == nil {
		return ErrReleased
	}
	runtime.SetFinalizer(s, nil)
	return s.s.release()
}

func (s *SiteSeed) String() string { return "mpw.SiteSeed(redacted)" }
func (s *SiteSeed) GoString() string { return s.String() }
func (s *SiteSeed) LogValue() slog.Value { return slog.StringValue(s.String()) }

func (s *SiteSeed) MarshalText() ([]byte, error) { return nil, errNoSerialize }
func (s *SiteSeed) MarshalJSON() ([]byte, error) { return nil, errNoSerialize }
