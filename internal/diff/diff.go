// Package diff computes ordered field-level differences between two
// snapshots of the same entity. Snapshots are plain key/value maps as
// produced by the persistence layer; the engine never touches storage.
//
// Equality is canonical: two values are equal when their canonical JSON
// renderings are textually identical, with time values normalized to a
// single RFC 3339 UTC form first. Map key order never matters. nil compares
// equal to a missing key, and different from 0, "" and false.
package diff

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Entry is one field-level before/after pair. Old is nil on creation, New is
// nil on deletion; values are carried verbatim, not re-serialized.
type Entry struct {
	Field string `json:"field"`
	Old   any    `json:"oldValue"`
	New   any    `json:"newValue"`
}

// Compute diffs two snapshots. A nil before means creation (one entry per
// key of after), a nil after means deletion (one entry per key of before),
// both nil yields nothing. On update, an entry is emitted only for keys
// whose canonical values differ.
//
// Ordering is deterministic: keys present in before come first in
// lexicographic order, then keys present only in after, also lexicographic.
func Compute(before, after map[string]any) []Entry {
	switch {
	case before == nil && after == nil:
		return nil
	case before == nil:
		entries := make([]Entry, 0, len(after))
		for _, key := range sortedKeys(after) {
			entries = append(entries, Entry{Field: key, New: after[key]})
		}
		return entries
	case after == nil:
		entries := make([]Entry, 0, len(before))
		for _, key := range sortedKeys(before) {
			entries = append(entries, Entry{Field: key, Old: before[key]})
		}
		return entries
	}

	var entries []Entry
	for _, key := range sortedKeys(before) {
		oldValue := before[key]
		newValue := after[key]
		if !Equal(oldValue, newValue) {
			entries = append(entries, Entry{Field: key, Old: oldValue, New: newValue})
		}
	}
	for _, key := range sortedKeys(after) {
		if _, shared := before[key]; shared {
			continue
		}
		newValue := after[key]
		if !Equal(nil, newValue) {
			entries = append(entries, Entry{Field: key, New: newValue})
		}
	}
	return entries
}

// Equal reports whether two values are structurally equal under the
// engine's canonical-form contract.
func Equal(a, b any) bool {
	return canonical(a) == canonical(b)
}

// canonical renders a value into its comparison form. encoding/json already
// emits map keys in sorted order, which gives key-order insensitivity for
// free; times are rewritten to RFC 3339 UTC beforehand so equal instants in
// different zones or representations compare equal.
func canonical(v any) string {
	encoded, err := json.Marshal(normalize(v))
	if err != nil {
		// Non-serializable values (channels, funcs) fall back to their Go
		// representation so Equal stays total.
		return fmt.Sprintf("%#v", v)
	}
	return string(encoded)
}

func normalize(v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case time.Time:
		return value.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if value == nil {
			return nil
		}
		return value.UTC().Format(time.RFC3339Nano)
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = normalize(item)
		}
		return out
	}

	// Typed nils (e.g. (*string)(nil) inside an any) must collapse to nil so
	// they compare equal to missing keys.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

func sortedKeys(snapshot map[string]any) []string {
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
