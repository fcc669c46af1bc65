package engine

import (
	"strings"
)

// Unicode blocks stripped by RemoveEmojis. Covers the pictographic planes
// plus the joiner and variation selectors that glue sequences together, so
// multi-codepoint emoji disappear whole instead of leaving fragments.
var emojiRanges = [...]struct{ lo, hi rune }{
	{0x200D, 0x200D},   // zero width joiner
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0xFE0E, 0xFE0F},   // variation selectors
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
}

// RemoveEmojis strips emoji codepoints from text. When nothing matches, the
// input string is returned as-is so callers can compare values to tell
// "nothing to do" apart from a rewrite.
func RemoveEmojis(text string) string {
	var b *strings.Builder
	for i, r := range text {
		if !isEmoji(r) {
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if b == nil {
			b = &strings.Builder{}
			b.Grow(len(text))
			b.WriteString(text[:i])
		}
	}
	if b == nil {
		return text
	}
	return b.String()
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}
