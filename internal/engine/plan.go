package engine

import (
	"strings"
)

// InsertionPoint fully determines how a rendered header is spliced into a
// document that has no usable header.
type InsertionPoint struct {
	// Offset is the byte offset of the anchor line; everything before it
	// (after any shebang) is leading blank space that the header replaces.
	Offset int
	// RequiresLeadingNewline asks for one blank line before the header.
	RequiresLeadingNewline bool
	// RequiresTrailingNewline asks for a separator between the header and
	// the content that follows it.
	RequiresTrailingNewline bool
	// AfterShebang reports that a shebang line must stay above the header.
	AfterShebang bool
	// ShebangEnd is the offset just past the shebang line terminator, 0
	// when AfterShebang is false.
	ShebangEnd int
}

// ComputeInsertionOffset walks the document from the top and picks the spot
// a new header belongs at. Blank lines are skipped, a shebang line is kept
// above the header, and the first ordinary line (code or comment alike) is
// the anchor the header precedes. The planner never tries to skip over
// license-looking comments; bounding any existing header is the classifier's
// job alone.
func ComputeInsertionOffset(text string) InsertionPoint {
	var point InsertionPoint
	offset := 0

	for offset < len(text) {
		lineEnd := len(text)
		next := len(text)
		if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
			lineEnd = offset + nl
			next = lineEnd + 1
		}
		trimmed := strings.TrimSpace(text[offset:lineEnd])

		switch {
		case trimmed == "":
			// Leading blank lines are part of the span the header replaces.
		case strings.HasPrefix(trimmed, "#!"):
			point.AfterShebang = true
			point.ShebangEnd = next
		default:
			point.Offset = offset
			point.RequiresLeadingNewline = point.AfterShebang
			point.RequiresTrailingNewline = true
			return point
		}
		offset = next
	}

	// Nothing but blank lines (and possibly a shebang).
	if point.AfterShebang {
		point.Offset = len(text)
		point.RequiresLeadingNewline = true
	} else {
		point.Offset = 0
	}
	return point
}

// InsertHeader splices a rendered header into text at the given point.
//
// With a shebang the result is shebang, one blank line, header, one blank
// line, content. Otherwise the header replaces the leading blank run
// [0, Offset) and a separating blank line is guaranteed between header and
// content unless one side already provides it.
func InsertHeader(text, header string, point InsertionPoint) string {
	if point.AfterShebang {
		var b strings.Builder
		shebang := text[:point.ShebangEnd]
		b.WriteString(shebang)
		if !strings.HasSuffix(shebang, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(header, "\n"))
		b.WriteString("\n")
		rest := text[point.Offset:]
		if rest != "" {
			b.WriteString("\n")
			b.WriteString(rest)
		}
		return b.String()
	}

	h := header
	if !strings.HasSuffix(h, "\n") {
		h += "\n"
	}
	rest := text[point.Offset:]
	if rest != "" && !strings.HasSuffix(h, "\n\n") && !strings.HasPrefix(rest, "\n") {
		h += "\n"
	}
	return h + rest
}
