package utils

import (
	"strings"

	"github.com/fatih/structs"
)

// FieldTagNames returns the tag values for the given tag key of the passed
// struct fields, skipping untagged fields and fields tagged with "-". Tag
// options after a comma are stripped.
func FieldTagNames(fields []*structs.Field, tag string) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		t := f.Tag(tag)
		if i := strings.IndexRune(t, ','); i >= 0 {
			t = t[:i]
		}
		if t != "" && t != "-" {
			names = append(names, t)
		}
	}
	return names
}
