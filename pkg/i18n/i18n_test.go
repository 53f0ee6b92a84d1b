package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_AllLanguages(t *testing.T) {
	got := Resolve(LangChinese, "Morning Tai Chi", "太极晨练", "Tai Chi Pagi", "காலை தை சி")
	assert.Equal(t, "太极晨练", got)

	got = Resolve(LangMalay, "Morning Tai Chi", "太极晨练", "Tai Chi Pagi", "காலை தை சி")
	assert.Equal(t, "Tai Chi Pagi", got)

	got = Resolve(LangTamil, "Morning Tai Chi", "太极晨练", "Tai Chi Pagi", "காலை தை சி")
	assert.Equal(t, "காலை தை சி", got)

	got = Resolve(LangEnglish, "Morning Tai Chi", "太极晨练", "Tai Chi Pagi", "காலை தை சி")
	assert.Equal(t, "Morning Tai Chi", got)
}

func TestResolve_FallbackToBase(t *testing.T) {
	// 只有基础语言的内容，任何语言代码都必须返回基础值，不能返回空串
	for _, lang := range []string{LangEnglish, LangChinese, LangMalay, LangTamil, "fr", ""} {
		got := Resolve(lang, "Block 273 Void Deck", "", "", "")
		assert.Equal(t, "Block 273 Void Deck", got, "lang=%s", lang)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, LangChinese, Normalize("zh"))
	assert.Equal(t, LangMalay, Normalize("ms"))
	assert.Equal(t, LangTamil, Normalize("ta"))
	assert.Equal(t, LangEnglish, Normalize("en"))
	assert.Equal(t, LangEnglish, Normalize(""))
	assert.Equal(t, LangEnglish, Normalize("jp"))
}
