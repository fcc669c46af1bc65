// Package engine implements the header pipeline: classifying a document's
// leading region, planning where a new header goes, rendering templates and
// refreshing the Last Updated field of an existing header. Every function is
// pure; callers own reading the document and applying the resulting text.
package engine

import (
	"time"
)

// Config is the per-invocation configuration record. It is never mutated by
// the engine.
type Config struct {
	Template          string
	IncludeTimestamp  bool
	TimestampFormat   string
	IncludeUpdateTime bool
	UpdateTimeFormat  string
	Languages         []string
	FileExtensions    []string
	ExcludedFiles     []string
}

// Defaults applied when a field is absent from the loaded configuration.
const (
	DefaultTemplate   = "/* Copyright (c) {year} */\n\n"
	DefaultTimeFormat = "YYYY-MM-DD HH:mm:ss"
)

// DefaultConfig returns a Config with every field set to its documented
// default.
func DefaultConfig() Config {
	return Config{
		Template:         DefaultTemplate,
		TimestampFormat:  DefaultTimeFormat,
		UpdateTimeFormat: DefaultTimeFormat,
		Languages:        []string{"*"},
		FileExtensions:   []string{"*"},
	}
}

// ByteRange is a half-open [Start, End) span of byte offsets into a document.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int { return r.End - r.Start }

// HeaderKind is the three-way classification of a document's leading region.
type HeaderKind int

const (
	// NoHeader means no copyright mention was found in the leading window.
	NoHeader HeaderKind = iota
	// WellFormed means the document starts with a canonical block-comment
	// header of the form "/* ... Copyright (c) YYYY ... */".
	WellFormed
	// Malformed means the leading window mentions copyright but does not
	// match the well-formed shape.
	Malformed
)

func (k HeaderKind) String() string {
	switch k {
	case WellFormed:
		return "well-formed"
	case Malformed:
		return "malformed"
	default:
		return "none"
	}
}

// HeaderState is the classification result. Range is meaningful for
// WellFormed (the span of the block comment) and for Malformed when the
// malformed region could be bounded.
type HeaderState struct {
	Kind  HeaderKind
	Range ByteRange
}

// Edit describes a single splice: replace Range with Replacement.
type Edit struct {
	Range       ByteRange
	Replacement string
}

// Outcome is the terminal state of one pipeline invocation.
type Outcome int

const (
	// OutcomeNoop means the document needed no change.
	OutcomeNoop Outcome = iota
	// OutcomeInserted means a new header was inserted.
	OutcomeInserted
	// OutcomeReplaced means a malformed header was replaced.
	OutcomeReplaced
	// OutcomeTimestampUpdated means only the Last Updated field changed.
	OutcomeTimestampUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeTimestampUpdated:
		return "timestamp-updated"
	default:
		return "noop"
	}
}

// Result carries the rewritten document text and what happened to it. Text
// equals the input when Outcome is OutcomeNoop.
type Result struct {
	Text    string
	Outcome Outcome
}

// Apply runs the full classify-plan-render cycle on one document snapshot.
//
// A well-formed header is left alone unless IncludeUpdateTime asks for a
// Last Updated refresh. A malformed header is replaced by a freshly rendered
// template, except when its extent cannot be bounded; misjudging the repair
// boundary risks destroying content, so that case is a no-op while plain
// insertion stays permissive.
func Apply(text string, cfg Config, now time.Time) Result {
	state := Classify(text)
	switch state.Kind {
	case WellFormed:
		if !cfg.IncludeUpdateTime {
			return Result{Text: text, Outcome: OutcomeNoop}
		}
		edit, ok := UpdateTimestamp(text, state.Range, cfg, now)
		if !ok {
			return Result{Text: text, Outcome: OutcomeNoop}
		}
		updated := applyEdit(text, *edit)
		if updated == text {
			return Result{Text: text, Outcome: OutcomeNoop}
		}
		return Result{Text: updated, Outcome: OutcomeTimestampUpdated}

	case Malformed:
		rng, ok := LocateMalformedRange(text)
		if !ok {
			return Result{Text: text, Outcome: OutcomeNoop}
		}
		header := Render(cfg.Template, cfg, now)
		replaced := applyEdit(text, Edit{Range: rng, Replacement: header})
		return Result{Text: replaced, Outcome: OutcomeReplaced}

	default:
		point := ComputeInsertionOffset(text)
		header := Render(cfg.Template, cfg, now)
		return Result{Text: InsertHeader(text, header, point), Outcome: OutcomeInserted}
	}
}

func applyEdit(text string, e Edit) string {
	return text[:e.Range.Start] + e.Replacement + text[e.Range.End:]
}
