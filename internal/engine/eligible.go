package engine

import (
	"regexp"
	"strings"
)

// IsEligible reports whether a file should be processed at all. Exclusion
// globs are checked first and win outright; after that the language and
// extension filters are a disjunction: matching either one is enough.
func IsEligible(fileName, languageID, fileExtension string, cfg Config) bool {
	for _, pattern := range cfg.ExcludedFiles {
		if MatchGlob(pattern, fileName) {
			return false
		}
	}
	if matchesFilter(cfg.Languages, languageID, false) {
		return true
	}
	return matchesFilter(cfg.FileExtensions, fileExtension, true)
}

func matchesFilter(values []string, candidate string, extension bool) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
		if extension {
			if strings.EqualFold(strings.TrimPrefix(v, "."), strings.TrimPrefix(candidate, ".")) {
				return true
			}
			continue
		}
		if v == candidate {
			return true
		}
	}
	return false
}

// MatchGlob matches a bare file name against a pattern where "*" matches any
// run of characters and "?" exactly one. Matching is anchored to the whole
// name and case-insensitive; every other character, regex metacharacters
// included, is literal.
func MatchGlob(pattern, name string) bool {
	re, err := compileGlob(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?i)\A`)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`\z`)
	return regexp.Compile(b.String())
}
