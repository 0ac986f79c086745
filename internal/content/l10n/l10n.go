// Copyright (c) 2026 Manara. All rights reserved.

/*
Package l10n implements the trilingual text codec shared by every content kind.

Editors submit localized fields (title, paragraph) as a JSON-encoded object
carrying all three site locales. The codec is strict at write time: a field is
either fully localized or rejected. Read-side fallback to English is a
presentation concern handled by [LocalizedText.Resolve].
*/
package l10n

import (
	"encoding/json"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/manaracms/manara/internal/platform/apperr"
)

// Site locales, in the order they appear in envelopes and error details.
const (
	LocaleEn = "en"
	LocaleAr = "ar"
	LocaleFr = "fr"
)

// matcher resolves a requested BCP 47 tag against the supported site locales.
var matcher = language.NewMatcher([]language.Tag{
	language.English, // en, the fallback
	language.Arabic,
	language.French,
})

// LocalizedText is a mandatory-all-locales string triple.
//
// Whenever the structure is present, all three locales must be non-empty.
// Partial localization is invalid input, never a fallback case.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
	Fr string `json:"fr"`
}

// DecodeField parses a JSON-encoded localized field as submitted in a
// multipart form value.
//
// Failure modes:
//   - the raw value is not a JSON object: "Invalid format for <field>."
//   - any locale is absent or empty: per-locale field details.
//
// Whitespace-only values count as present. Decoded values are normalized to
// NFC so that byte comparison of visually identical Arabic or accented French
// input behaves predictably across clients.
func DecodeField(raw, fieldName string) (LocalizedText, error) {
	var text LocalizedText
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return LocalizedText{}, apperr.ValidationError("Invalid format for " + fieldName + ". Expected JSON.")
	}

	text.normalize()

	if err := text.Validate(fieldName); err != nil {
		return LocalizedText{}, err
	}
	return text, nil
}

// Validate checks that every locale carries a value.
//
// It is used directly for kinds that submit localized fields as structured
// JSON rather than an encoded form value.
func (text LocalizedText) Validate(fieldName string) error {
	var details []apperr.FieldError
	for _, locale := range []struct {
		code  string
		value string
	}{
		{LocaleEn, text.En},
		{LocaleAr, text.Ar},
		{LocaleFr, text.Fr},
	} {
		if locale.value == "" {
			details = append(details, apperr.FieldError{
				Field:   fieldName + "." + locale.code,
				Message: "Missing " + locale.code + " translation",
			})
		}
	}

	if len(details) > 0 {
		return apperr.ValidationError("All translations are required for "+fieldName, details...)
	}
	return nil
}

// Resolve returns the value for the requested locale, falling back to English
// when the locale is unsupported or unrecognized.
//
// lang accepts any BCP 47 tag ("ar", "fr-CA", "en-US, ar;q=0.8").
func (text LocalizedText) Resolve(lang string) string {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return text.En
	}

	_, index, _ := matcher.Match(tags...)
	switch index {
	case 1:
		return text.Ar
	case 2:
		return text.Fr
	default:
		return text.En
	}
}

// Normalized returns a copy with all locales in NFC form.
func (text LocalizedText) Normalized() LocalizedText {
	text.normalize()
	return text
}

func (text *LocalizedText) normalize() {
	text.En = norm.NFC.String(text.En)
	text.Ar = norm.NFC.String(text.Ar)
	text.Fr = norm.NFC.String(text.Fr)
}
