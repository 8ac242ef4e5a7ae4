package assessor

import (
	_ "embed"
	"strings"
)

// A deliberately small curated set of extremely common passwords. Extend
// per-assessor via Config.ExtraCommonPasswords rather than editing the file.
//
//go:embed data/common_passwords.txt
var commonPasswordsData string

// baseCommonPasswords is the shared embedded set, case-folded, read-only
// after initialization.
var baseCommonPasswords = parseWordList(commonPasswordsData)

func parseWordList(data string) map[string]struct{} {
	lines := strings.Split(data, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		set[foldCase(word)] = struct{}{}
	}
	return set
}

// dictionary is the common-password set an assessor consults. The base set
// is shared across assessors; extras belong to one assessor only.
type dictionary struct {
	base   map[string]struct{}
	extras map[string]struct{}
}

func newDictionary(extras []string) *dictionary {
	d := &dictionary{base: baseCommonPasswords}
	if len(extras) == 0 {
		return d
	}
	d.extras = make(map[string]struct{}, len(extras))
	for _, word := range extras {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		d.extras[foldCase(word)] = struct{}{}
	}
	return d
}

// contains reports exact membership. The argument must already be
// case-folded; matching is never substring or fuzzy.
func (d *dictionary) contains(folded string) bool {
	if _, ok := d.base[folded]; ok {
		return true
	}
	_, ok := d.extras[folded]
	return ok
}
