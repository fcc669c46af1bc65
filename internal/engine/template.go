package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Placeholders understood by Render. A placeholder whose feature flag is off
// stays literally in the output.
const (
	placeholderYear       = "{year}"
	placeholderTimestamp  = "{timestamp}"
	placeholderUpdateTime = "{updatetime}"
)

// Render expands the template's placeholders against the supplied clock
// value: {year} always, {timestamp} when IncludeTimestamp is set and
// {updatetime} when IncludeUpdateTime is set.
func Render(template string, cfg Config, now time.Time) string {
	out := strings.ReplaceAll(template, placeholderYear, strconv.Itoa(now.Year()))
	if cfg.IncludeTimestamp {
		out = strings.ReplaceAll(out, placeholderTimestamp, FormatTimestamp(now, cfg.TimestampFormat))
	}
	if cfg.IncludeUpdateTime {
		out = strings.ReplaceAll(out, placeholderUpdateTime, FormatTimestamp(now, cfg.UpdateTimeFormat))
	}
	return out
}

// FormatTimestamp expands the tokens YYYY, MM, DD, HH, mm and ss in format
// using the local wall-clock fields of ts. Tokens are case-sensitive,
// matched longest first in a single left-to-right pass; everything else
// passes through unchanged.
func FormatTimestamp(ts time.Time, format string) string {
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); {
		rest := format[i:]
		switch {
		case strings.HasPrefix(rest, "YYYY"):
			b.WriteString(pad(ts.Year(), 4))
			i += 4
		case strings.HasPrefix(rest, "MM"):
			b.WriteString(pad(int(ts.Month()), 2))
			i += 2
		case strings.HasPrefix(rest, "DD"):
			b.WriteString(pad(ts.Day(), 2))
			i += 2
		case strings.HasPrefix(rest, "HH"):
			b.WriteString(pad(ts.Hour(), 2))
			i += 2
		case strings.HasPrefix(rest, "mm"):
			b.WriteString(pad(ts.Minute(), 2))
			i += 2
		case strings.HasPrefix(rest, "ss"):
			b.WriteString(pad(ts.Second(), 2))
			i += 2
		default:
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// Label of the header line that tracks the last edit time. The value runs
// from the label to the end of the line, stopping before any "*" that closes
// or continues the comment.
var lastUpdatedRe = regexp.MustCompile(`(?i)last updated:[^*\n\r]*`)

// UpdateTimestamp rewrites the Last Updated field inside the well-formed
// header at rng. It returns the edit to apply and ok=true when the header
// carries the label; a header without the label is a valid configuration and
// yields ok=false, as does a disabled IncludeUpdateTime flag.
func UpdateTimestamp(text string, rng ByteRange, cfg Config, now time.Time) (*Edit, bool) {
	if !cfg.IncludeUpdateTime {
		return nil, false
	}
	if rng.Start < 0 || rng.End > len(text) || rng.Start >= rng.End {
		return nil, false
	}
	region := text[rng.Start:rng.End]
	loc := lastUpdatedRe.FindStringIndex(region)
	if loc == nil {
		return nil, false
	}
	valueStart := rng.Start + loc[0] + len("Last Updated:")
	valueEnd := rng.Start + loc[1]
	// Keep whitespace that separates the value from a closing "*/" or a
	// continuation "*" out of the replaced span.
	for valueEnd > valueStart && (text[valueEnd-1] == ' ' || text[valueEnd-1] == '\t') {
		valueEnd--
	}
	return &Edit{
		Range:       ByteRange{Start: valueStart, End: valueEnd},
		Replacement: " " + FormatTimestamp(now, cfg.UpdateTimeFormat),
	}, true
}
