package engine

import (
	"regexp"
	"strings"
)

// headerWindowLines bounds how deep classification looks into a document.
// Inspecting only the first lines keeps the cost flat and avoids false
// positives on copyright mentions deep inside a file.
const headerWindowLines = 10

var (
	// A canonical header: a block comment anchored at the start of the
	// document (leading whitespace allowed) that carries "Copyright (c)"
	// with a four-digit year and is closed within the leading window. The
	// mention must land inside that same comment: no "*/" may occur before
	// it, or an unrelated leading comment would pass the test off the back
	// of a copyright string further down.
	wellFormedRe = regexp.MustCompile(`(?s)\A\s*/\*(?:[^*]|\*[^/])*?Copyright \(c\)\s*[0-9]{4}.*?\*/`)

	// First block comment in the document, non-greedy.
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// Bare word match; also hits copyright mentions inside string literals
	// or prose, which is accepted as a known false-positive source.
	copyrightWordRe = regexp.MustCompile(`\bCopyright\b`)
)

// Classify inspects the first lines of text and reports whether a header is
// present, and in what shape. The empty document is always NoHeader.
//
// A single-line "// Copyright (c) 2025" is deliberately classified as
// Malformed: only the block-comment form counts as well-formed.
func Classify(text string) HeaderState {
	if text == "" {
		return HeaderState{Kind: NoHeader}
	}
	window := leadingWindow(text)

	// A shebang line is transparent to classification: the header a prior
	// run placed below it must still count as well-formed.
	body := text[shebangEnd(text):]

	if wellFormedRe.MatchString(leadingWindow(body)) {
		// The shape test runs on the window, but the concrete span is the
		// first block comment in the whole document: the block may run a
		// little past the window.
		if loc := blockCommentRe.FindStringIndex(text); loc != nil {
			return HeaderState{Kind: WellFormed, Range: ByteRange{Start: loc[0], End: loc[1]}}
		}
	}

	if strings.Contains(window, "Copyright (c)") || copyrightWordRe.MatchString(window) {
		state := HeaderState{Kind: Malformed}
		if rng, ok := LocateMalformedRange(text); ok {
			state.Range = rng
		}
		return state
	}

	return HeaderState{Kind: NoHeader}
}

// LocateMalformedRange bounds the region occupied by a malformed header: the
// first line within the leading window that mentions the word Copyright,
// extended to the comment terminator its shape implies, plus any blank lines
// that immediately follow (so a repair leaves no orphaned gap).
//
// ok is false when the copyright-bearing line is not comment-shaped; callers
// must treat that as "do not repair" rather than guessing a boundary.
func LocateMalformedRange(text string) (ByteRange, bool) {
	offset := 0
	for line := 0; line < headerWindowLines && offset < len(text); line++ {
		lineEnd := len(text)
		next := len(text)
		if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
			lineEnd = offset + nl
			next = lineEnd + 1
		}
		if !copyrightWordRe.MatchString(text[offset:lineEnd]) {
			offset = next
			continue
		}

		trimmed := strings.TrimSpace(text[offset:lineEnd])
		var end int
		switch {
		case strings.HasPrefix(trimmed, "/*"):
			if close := strings.Index(text[offset:], "*/"); close >= 0 {
				end = offset + close + len("*/")
			} else {
				// Unterminated block comment: bound it to this line.
				end = lineEnd
			}
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "#"):
			end = lineEnd
		default:
			return ByteRange{}, false
		}

		return ByteRange{Start: offset, End: absorbBlankLines(text, end)}, true
	}
	return ByteRange{}, false
}

// shebangEnd returns the offset just past a leading shebang line, 0 when
// the document has none. Whitespace before the shebang is tolerated, the
// same way the insertion planner tolerates it, so a header placed below
// such a shebang still classifies from the right spot.
func shebangEnd(text string) int {
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\r' || text[i] == '\n') {
		i++
	}
	if !strings.HasPrefix(text[i:], "#!") {
		return 0
	}
	if nl := strings.IndexByte(text[i:], '\n'); nl >= 0 {
		return i + nl + 1
	}
	return len(text)
}

// leadingWindow returns the first headerWindowLines lines of text.
func leadingWindow(text string) string {
	seen := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		seen++
		if seen == headerWindowLines {
			return text[:i]
		}
	}
	return text
}

// absorbBlankLines advances end past the remainder of the current line when
// it holds only whitespace, and then past any consecutive blank lines.
func absorbBlankLines(text string, end int) int {
	for end < len(text) {
		nl := strings.IndexByte(text[end:], '\n')
		if nl < 0 {
			if strings.TrimSpace(text[end:]) == "" {
				return len(text)
			}
			return end
		}
		if strings.TrimSpace(text[end:end+nl]) != "" {
			return end
		}
		end += nl + 1
	}
	return end
}
