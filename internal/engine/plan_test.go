package engine

import (
	"testing"
)

func TestComputeInsertionOffset_EmptyText(t *testing.T) {
	p := ComputeInsertionOffset("")
	if p.Offset != 0 || p.AfterShebang {
		t.Fatalf("unexpected point: %+v", p)
	}
}

func TestComputeInsertionOffset_AnchorAtStart(t *testing.T) {
	p := ComputeInsertionOffset("function f(){}")
	if p.Offset != 0 {
		t.Fatalf("offset: got %d", p.Offset)
	}
	if !p.RequiresTrailingNewline {
		t.Fatalf("expected trailing separator")
	}
}

func TestComputeInsertionOffset_SkipsLeadingBlanks(t *testing.T) {
	text := "\n\n\nfoo\n"
	p := ComputeInsertionOffset(text)
	if text[p.Offset:] != "foo\n" {
		t.Fatalf("anchor should be the first non-blank line, got offset %d", p.Offset)
	}
}

func TestComputeInsertionOffset_Shebang(t *testing.T) {
	text := "#!/usr/bin/env node\nconsole.log(1)"
	p := ComputeInsertionOffset(text)
	if !p.AfterShebang {
		t.Fatalf("shebang not detected")
	}
	if text[:p.ShebangEnd] != "#!/usr/bin/env node\n" {
		t.Fatalf("shebang end wrong: %q", text[:p.ShebangEnd])
	}
	if text[p.Offset:] != "console.log(1)" {
		t.Fatalf("anchor wrong: %q", text[p.Offset:])
	}
}

func TestComputeInsertionOffset_BlanksAfterShebangDropped(t *testing.T) {
	text := "#!/bin/sh\n\n\n\necho hi\n"
	p := ComputeInsertionOffset(text)
	if !p.AfterShebang {
		t.Fatalf("shebang not detected")
	}
	if text[p.Offset:] != "echo hi\n" {
		t.Fatalf("anchor wrong: %q", text[p.Offset:])
	}
}

func TestComputeInsertionOffset_AllBlank(t *testing.T) {
	p := ComputeInsertionOffset("\n   \n\n")
	if p.Offset != 0 || p.AfterShebang {
		t.Fatalf("unexpected point: %+v", p)
	}
}

func TestInsertHeader_AtStart(t *testing.T) {
	p := ComputeInsertionOffset("function f(){}")
	got := InsertHeader("function f(){}", "/* H */\n\n", p)
	if got != "/* H */\n\nfunction f(){}" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestInsertHeader_TemplateWithoutBlankLine(t *testing.T) {
	// A separating blank line is added when neither side provides one.
	p := ComputeInsertionOffset("code\n")
	got := InsertHeader("code\n", "/* H */", p)
	if got != "/* H */\n\ncode\n" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestInsertHeader_ReplacesLeadingBlanks(t *testing.T) {
	text := "\n\nfoo\n"
	p := ComputeInsertionOffset(text)
	got := InsertHeader(text, "/* H */\n\n", p)
	if got != "/* H */\n\nfoo\n" {
		t.Fatalf("leading blanks should be deleted: %q", got)
	}
}

func TestInsertHeader_AfterShebang(t *testing.T) {
	text := "#!/usr/bin/env node\nconsole.log(1)"
	p := ComputeInsertionOffset(text)
	got := InsertHeader(text, "/* H */\n\n", p)
	want := "#!/usr/bin/env node\n\n/* H */\n\nconsole.log(1)"
	if got != want {
		t.Fatalf("shebang splice mismatch:\nGOT:  %q\nWANT: %q", got, want)
	}
}

func TestInsertHeader_ShebangNormalizesGap(t *testing.T) {
	// Exactly one blank line on each side of the header, no matter how many
	// blank lines followed the shebang before.
	text := "#!/bin/sh\n\n\n\necho hi\n"
	p := ComputeInsertionOffset(text)
	got := InsertHeader(text, "/* H */\n\n", p)
	want := "#!/bin/sh\n\n/* H */\n\necho hi\n"
	if got != want {
		t.Fatalf("gap not normalized:\nGOT:  %q\nWANT: %q", got, want)
	}
}

func TestInsertHeader_ShebangOnlyFile(t *testing.T) {
	text := "#!/bin/sh\n"
	p := ComputeInsertionOffset(text)
	got := InsertHeader(text, "/* H */\n\n", p)
	if got != "#!/bin/sh\n\n/* H */\n" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestInsertHeader_EmptyText(t *testing.T) {
	p := ComputeInsertionOffset("")
	got := InsertHeader("", "/* H */\n\n", p)
	if got != "/* H */\n\n" {
		t.Fatalf("unexpected result: %q", got)
	}
}
