package mpw

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPassword_KnownPasswords(t *testing.T) {
	key := deriveTestKey(t, robertName, robertPassword)
	seed := deriveTestSeed(t, key, robertSite, DefaultCounter)

	tests := []struct {
		template Template
		want     string
	}{
		{TemplateMaximum, "W6@692^B1#&@gVdSdLZ@"},
		{TemplateLong, "Jejr5[RepuSosp"},
		{TemplateMedium, "Jej2$Quv"},
		{TemplateBasic, "WAo2xIg6"},
		{TemplateShort, "Jej2"},
		{TemplatePIN, "7662"},
		{TemplateName, "jejraquvo"},
		{TemplatePhrase, "jejr quv cabsibu tam"},
	}

	for _, tt := range tests {
		t.Run(tt.template.String(), func(t *testing.T) {
			got, err := RenderPassword(seed, tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPassword_EndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		password string
		site     string
		counter  uint32
		template Template
		want     string
	}{
		{"basic", "user", "banana", "example.com", 1, TemplateBasic, "bq25sZf1"},
		{"rotated counter", "user", "banana", "example.com", 2, TemplateBasic, "iDP8BhC0"},
		{"max counter", robertName, robertPassword, robertSite, 4294967295, TemplateLong, "XambHoqo6[Peni"},
		{"long", "Cosima Niehaus", "Correct Horse Battery Staple", "twitter.com", 5, TemplateLong, "Kiwe2^BecuRodw"},
		{"utf-8 inputs", "Ŕøbêrt", "banana", "ëxample.çom", 1, TemplateLong, "Kimu6^ZiceGuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := deriveTestKey(t, tt.fullName, tt.password)
			seed := deriveTestSeed(t, key, tt.site, tt.counter)

			got, err := RenderPassword(seed, tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPassword_Deterministic(t *testing.T) {
	seed := testSeed(t, 1)

	a, err := RenderPassword(seed, TemplateMaximum)
	require.NoError(t, err)
	b, err := RenderPassword(seed, TemplateMaximum)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRenderPassword_UsesTemplateAlphabets(t *testing.T) {
	for _, tmpl := range Templates() {
		t.Run(tmpl.String(), func(t *testing.T) {
			patterns := tmpl.Patterns()
			for i := 0; i < 64; i++ {
				seed := testSeed(t, i)
				b := secretBytes(t, &seed.s)
				pattern := patterns[int(b[0])%len(patterns)]

				got, err := RenderPassword(seed, tmpl)
				require.NoError(t, err)
				require.Len(t, got, len(pattern))

				for pos := 0; pos < len(pattern); pos++ {
					class := characterClasses[pattern[pos]]
					assert.True(t, strings.IndexByte(class, got[pos]) >= 0,
						"%q at %d not in class %q", got[pos], pos, pattern[pos])
				}
			}
		})
	}
}

func TestRenderPassword_DoesNotModifySeed(t *testing.T) {
	seed := testSeed(t, 3)
	before := secretBytes(t, &seed.s)

	for _, tmpl := range Templates() {
		_, err := RenderPassword(seed, tmpl)
		require.NoError(t, err)
	}

	assert.Equal(t, before, secretBytes(t, &seed.s))
}

func TestRenderPassword_UnknownTemplate(t *testing.T) {
	seed := testSeed(t, 0)

	for _, tmpl := range []Template{0, 1, 11, 90, 4294967295} {
		got, err := RenderPassword(seed, tmpl)
		assert.ErrorIs(t, err, ErrUnknownTemplate)
		assert.Empty(t, got)
	}
}

func TestRenderPassword_NilSeed(t *testing.T) {
	_, err := RenderPassword(nil, TemplateLong)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRenderPassword_UnknownTemplateCheckedFirst(t *testing.T) {
	_, err := RenderPassword(nil, Template(0))
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplates_FitInSeed(t *testing.T) {
	for _, tmpl := range Templates() {
		for _, pattern := range tmpl.Patterns() {
			// One byte selects the pattern, one byte per character after it.
			assert.LessOrEqual(t, len(pattern)+1, SiteSeedSize, "%s pattern %q", tmpl, pattern)
			for i := 0; i < len(pattern); i++ {
				_, ok := characterClasses[pattern[i]]
				assert.True(t, ok, "%s pattern %q uses undefined class %q", tmpl, pattern, pattern[i])
			}
		}
	}
}

func TestRenderPassword_RejectsSeedShorterThanPattern(t *testing.T) {
	short := newSiteSeed(make([]byte, 4))
	defer short.Release()

	_, err := RenderPassword(short, TemplateMaximum)
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := RenderPassword(short, TemplatePIN)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, got)
}

// testSeed builds a seed from sha256(n) without a key derivation.
func testSeed(t *testing.T, n int) *SiteSeed {
	t.Helper()
	sum := sha256.Sum256(binary.BigEndian.AppendUint64(nil, uint64(n)))
	seed := newSiteSeed(append([]byte(nil), sum[:]...))
	t.Cleanup(func() { _ = seed.Release() })
	return seed
}
