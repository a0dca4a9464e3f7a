// Package snapshot converts entity structs into the flat key/value maps the
// diff engine consumes. The persistence layer captures one snapshot before
// applying a mutation and one after, then hands both to the audit recorder.
package snapshot

import (
	"reflect"

	"github.com/fatih/structs"
)

// tagName makes snapshot keys follow the entity's json tags, so audit
// records show the same field names the API exposes. Fields tagged "-" are
// left out of snapshots entirely (passwords, computed columns).
const tagName = "json"

// Of renders an entity struct (or pointer to one) as a snapshot map.
// A nil entity yields a nil map, which the diff engine reads as an absent
// snapshot (creation or deletion).
func Of(entity any) map[string]any {
	if entity == nil {
		return nil
	}
	// A typed nil pointer inside the interface also means "no snapshot".
	if rv := reflect.ValueOf(entity); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}
	s := structs.New(entity)
	s.TagName = tagName
	return s.Map()
}
