package gofurigana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKagomeKanaConverter_ToKatakana(t *testing.T) {
	conv, err := NewKagomeKanaConverter()
	require.NoError(t, err)

	assert.Equal(t, "ニホンゴ", conv.ToKatakana("日本語"))
	assert.Equal(t, "スモモモモモモモモノウチ", conv.ToKatakana("すもももももももものうち"))
}

func TestKagomeKanaConverter_KanaPassthrough(t *testing.T) {
	conv, err := NewKagomeKanaConverter()
	require.NoError(t, err)

	// Kana-only input must come back as katakana even when the analyzer
	// has nothing to resolve.
	assert.Equal(t, "ヒラガナ", conv.ToKatakana("ひらがな"))
	assert.Equal(t, "テスト", conv.ToKatakana("テスト"))
}
