package gofurigana

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// readingFeature is the index of the katakana reading in the IPA
// dictionary feature list.
const readingFeature = 7

// KagomeKanaConverter derives full katakana readings through the kagome
// morphological analyzer. Unlike FoldToKatakana it resolves kanji, so it
// is suitable for deriving dictionary lookup keys from raw expressions.
type KagomeKanaConverter struct {
	t *tokenizer.Tokenizer
}

func NewKagomeKanaConverter() (*KagomeKanaConverter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeKanaConverter{t: t}, nil
}

func (c *KagomeKanaConverter) ToKatakana(text string) string {
	var b strings.Builder
	for _, token := range c.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			b.WriteString(features[readingFeature])
		} else {
			b.WriteString(FoldToKatakana(token.Surface))
		}
	}
	return b.String()
}
