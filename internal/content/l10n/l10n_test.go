package l10n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/platform/apperr"
)

/*
TestDecodeField_Valid verifies a fully localized JSON value round-trips.
*/
func TestDecodeField_Valid(t *testing.T) {
	raw := `{"en":"Hello","ar":"مرحبا","fr":"Bonjour"}`

	text, err := l10n.DecodeField(raw, "title")
	require.NoError(t, err)

	assert.Equal(t, "Hello", text.En)
	assert.Equal(t, "مرحبا", text.Ar)
	assert.Equal(t, "Bonjour", text.Fr)
}

/*
TestDecodeField_NotJSON verifies a plain string is rejected with the
field-specific format message.
*/
func TestDecodeField_NotJSON(t *testing.T) {
	_, err := l10n.DecodeField("just a plain title", "title")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Invalid format for title. Expected JSON.", ae.Message)
}

/*
TestDecodeField_MissingLocales verifies per-locale details are reported for
every absent translation.
*/
func TestDecodeField_MissingLocales(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		missingFields []string
	}{
		{"missing_ar", `{"en":"Hello","fr":"Bonjour"}`, []string{"title.ar"}},
		{"empty_fr", `{"en":"Hello","ar":"مرحبا","fr":""}`, []string{"title.fr"}},
		{"all_missing", `{}`, []string{"title.en", "title.ar", "title.fr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l10n.DecodeField(tt.raw, "title")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "All translations are required for title", ae.Message)

			require.Len(t, ae.Details, len(tt.missingFields))
			for index, field := range tt.missingFields {
				assert.Equal(t, field, ae.Details[index].Field)
			}
		})
	}
}

/*
TestDecodeField_WhitespaceCountsAsPresent pins the rule that whitespace-only
translations are accepted. The codec checks presence, not usefulness.
*/
func TestDecodeField_WhitespaceCountsAsPresent(t *testing.T) {
	text, err := l10n.DecodeField(`{"en":"  ","ar":"مرحبا","fr":"Bonjour"}`, "paragraph")
	require.NoError(t, err)
	assert.Equal(t, "  ", text.En)
}

/*
TestDecodeField_NFCNormalization verifies decomposed accented input is stored
in composed form, so byte comparison behaves across clients.
*/
func TestDecodeField_NFCNormalization(t *testing.T) {
	// "é" as 'e' + combining acute accent (NFD)
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	text, err := l10n.DecodeField(`{"en":"hi","ar":"مرحبا","fr":"`+decomposed+`"}`, "title")
	require.NoError(t, err)
	assert.Equal(t, composed, text.Fr)
}

/*
TestResolve covers locale matching including region variants, quality lists,
and fallback to English.
*/
func TestResolve(t *testing.T) {
	text := l10n.LocalizedText{En: "Hello", Ar: "مرحبا", Fr: "Bonjour"}

	tests := []struct {
		name string
		lang string
		want string
	}{
		{"exact_en", "en", "Hello"},
		{"exact_ar", "ar", "مرحبا"},
		{"exact_fr", "fr", "Bonjour"},
		{"region_variant", "fr-CA", "Bonjour"},
		{"quality_list", "de, ar;q=0.8", "مرحبا"},
		{"unsupported", "ja", "Hello"},
		{"empty", "", "Hello"},
		{"garbage", ";;;", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Resolve(tt.lang))
		})
	}
}
