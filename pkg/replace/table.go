package replace

import "regexp"

// Source is a single key→value replacement mapping, as supplied by the
// caller. Keys are constrained to [A-Za-z0-9]+; anything else could never
// match a token.
type Source map[string]string

// Table is the merged key→value mapping used for token lookups. It is built
// once per Engine and never mutated afterwards.
type Table map[string]string

// keyPattern is the character set allowed in keys and prefixes.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsValidKey reports whether s is usable as a replacement key or prefix.
func IsValidKey(s string) bool {
	return keyPattern.MatchString(s)
}

// MergeSources folds the given sources into one Table. When a key appears in
// more than one source, the value from the first-listed source wins. An
// empty input yields an empty table, in which case every token will be
// reported as missing.
func MergeSources(sources ...Source) Table {
	table := make(Table)
	for _, src := range sources {
		for key, value := range src {
			if _, ok := table[key]; !ok {
				table[key] = value
			}
		}
	}
	return table
}

// Lookup returns the value for key and whether it is present.
func (t Table) Lookup(key string) (string, bool) {
	value, ok := t[key]
	return value, ok
}
