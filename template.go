package mpw

import (
	"fmt"
	"strings"
)

// Template selects the character-class patterns a password is rendered
// from. The numeric values are stable identifiers shared with other
// implementations.
type Template uint32

const (
	TemplatePIN     Template = 10
	TemplateBasic   Template = 20
	TemplateShort   Template = 30
	TemplateMedium  Template = 40
	TemplateLong    Template = 50
	TemplateMaximum Template = 60
	TemplateName    Template = 70
	TemplatePhrase  Template = 80
)

// Character classes. Every alphabet is part of the scheme.
var characterClasses = map[byte]string{
	'V': "AEIOU",
	'C': "BCDFGHJKLMNPQRSTVWXYZ",
	'v': "aeiou",
	'c': "bcdfghjklmnpqrstvwxyz",
	'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	'n': "0123456789",
	'o': "@&%?,=[]_:-+*$#!'^~;()/.",
	'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
	' ': " ",
}

var (
	maximumPatterns = []string{
		"anoxxxxxxxxxxxxxxxxx",
		"axxxxxxxxxxxxxxxxxno",
	}
	longPatterns = []string{
		"CvcvnoCvcvCvcv",
		"CvcvCvcvnoCvcv",
		"CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv",
		"CvccCvcvnoCvcv",
		"CvccCvcvCvcvno",
		"CvcvnoCvccCvcv",
		"CvcvCvccnoCvcv",
		"CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc",
		"CvcvCvcvnoCvcc",
		"CvcvCvcvCvccno",
		"CvccnoCvccCvcv",
		"CvccCvccnoCvcv",
		"CvccCvccCvcvno",
		"CvcvnoCvccCvcc",
		"CvcvCvccnoCvcc",
		"CvcvCvccCvccno",
		"CvccnoCvcvCvcc",
		"CvccCvcvnoCvcc",
		"CvccCvcvCvccno",
	}
	mediumPatterns = []string{
		"CvcnoCvc",
		"CvcCvcno",
	}
	shortPatterns = []string{
		"Cvcn",
	}
	basicPatterns = []string{
		"aaanaaan",
		"aannaaan",
		"aaannaaa",
	}
	pinPatterns = []string{
		"nnnn",
	}
	namePatterns = []string{
		"cvccvcvcv",
	}
	phrasePatterns = []string{
		"cvcc cvc cvccvcv cvc",
		"cvc cvccvcvcv cvcv",
		"cv cvccv cvc cvcvccv",
	}
)

// patterns returns the pattern table of t. The returned slice is shared
// and must not be modified.
func (t Template) patterns() ([]string, bool) {
	switch t {
	case TemplatePIN:
		return pinPatterns, true
	case TemplateBasic:
		return basicPatterns, true
	case TemplateShort:
		return shortPatterns, true
	case TemplateMedium:
		return mediumPatterns, true
	case TemplateLong:
		return longPatterns, true
	case TemplateMaximum:
		return maximumPatterns, true
	case TemplateName:
		return namePatterns, true
	case TemplatePhrase:
		return phrasePatterns, true
	}
	return nil, false
}

// Patterns returns a copy of the character-class patterns of t, or nil for
// an unknown template.
func (t Template) Patterns() []string {
	p, ok := t.patterns()
	if !ok {
		return nil
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// Valid reports whether t is one of the defined templates.
func (t Template) Valid() bool {
	_, ok := t.patterns()
	return ok
}

func (t Template) String() string {
	switch t {
	case TemplatePIN:
		return "pin"
	case TemplateBasic:
		return "basic"
	case TemplateShort:
		return "short"
	case TemplateMedium:
		return "medium"
	case TemplateLong:
		return "long"
	case TemplateMaximum:
		return "maximum"
	case TemplateName:
		return "name"
	case TemplatePhrase:
		return "phrase"
	}
	return fmt.Sprintf("Template(%d)", uint32(t))
}

// Code returns the one-letter code ParseTemplate accepts for t.
func (t Template) Code() string {
	switch t {
	case TemplatePIN:
		return "i"
	case TemplateBasic:
		return "b"
	case TemplateShort:
		return "s"
	case TemplateMedium:
		return "m"
	case TemplateLong:
		return "l"
	case TemplateMaximum:
		return "x"
	case TemplateName:
		return "n"
	case TemplatePhrase:
		return "p"
	}
	return ""
}

// Templates lists every defined template, strongest first.
func Templates() []Template {
	return []Template{
		TemplateMaximum,
		TemplateLong,
		TemplateMedium,
		TemplateBasic,
		TemplateShort,
		TemplatePIN,
		TemplateName,
		TemplatePhrase,
	}
}

// ParseTemplate accepts a template name ("long", "PIN") or the one-letter
// code used by the reference tool ("l", "i").
func ParseTemplate(s string) (Template, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "max", "maximum":
		return TemplateMaximum, nil
	case "l", "long":
		return TemplateLong, nil
	case "m", "med", "medium":
		return TemplateMedium, nil
	case "b", "basic":
		return TemplateBasic, nil
	case "s", "short":
		return TemplateShort, nil
	case "i", "pin":
		return TemplatePIN, nil
	case "n", "name":
		return TemplateName, nil
	case "p", "phrase":
		return TemplatePhrase, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
}
