package outcome

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// IsNil reports whether i is a nil interface or a nil pointer. Nil maps,
// slices and funcs are legitimate payloads and are not treated as missing.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// writeCanonical renders v in a form stable under reflect.DeepEqual:
// pointers and interfaces are followed instead of printing addresses, map
// entries are emitted in sorted order, and nil slices/maps stay distinct
// from empty ones. Payloads that DeepEqual deems equal render identically,
// which keeps Hash consistent with Equal.
func writeCanonical(w io.Writer, v reflect.Value, seen map[uintptr]struct{}) {
	if !v.IsValid() {
		_, _ = io.WriteString(w, "<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			_, _ = io.WriteString(w, "<nil>")
			return
		}
		p := v.Pointer()
		if _, ok := seen[p]; ok {
			_, _ = io.WriteString(w, "<cycle>")
			return
		}
		seen[p] = struct{}{}
		_, _ = io.WriteString(w, "&")
		writeCanonical(w, v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			_, _ = io.WriteString(w, "<nil>")
			return
		}
		writeCanonical(w, v.Elem(), seen)
	case reflect.Struct:
		_, _ = io.WriteString(w, "{")
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				_, _ = io.WriteString(w, " ")
			}
			writeCanonical(w, v.Field(i), seen)
		}
		_, _ = io.WriteString(w, "}")
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			_, _ = io.WriteString(w, "<nil>")
			return
		}
		_, _ = io.WriteString(w, "[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				_, _ = io.WriteString(w, " ")
			}
			writeCanonical(w, v.Index(i), seen)
		}
		_, _ = io.WriteString(w, "]")
	case reflect.Map:
		if v.IsNil() {
			_, _ = io.WriteString(w, "<nil>")
			return
		}
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var e strings.Builder
			writeCanonical(&e, iter.Key(), seen)
			e.WriteString(":")
			writeCanonical(&e, iter.Value(), seen)
			entries = append(entries, e.String())
		}
		sort.Strings(entries)
		_, _ = io.WriteString(w, "map[")
		_, _ = io.WriteString(w, strings.Join(entries, " "))
		_, _ = io.WriteString(w, "]")
	default:
		_, _ = fmt.Fprintf(w, "%v", v)
	}
}
