package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"beatmap-reader/internal/match"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// CustomData holds open-ended "customData" objects verbatim.
type CustomData map[string]any

// Flag is a boolean the game writes as 0/1. true/false are accepted as well.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	case "null":
	default:
		return fmt.Errorf("expected boolean or 0/1, got %s", data)
	}

	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}

	return []byte("0"), nil
}

// decodeStrict decodes data into v, which must be a pointer to a struct, and
// then checks that every required key of every nested record is present.
// Type errors come from encoding/json; presence errors are *FieldError.
// Keys matching a declared key only up to letter case are unknown keys and
// are removed first, since encoding/json would decode them into that field.
func decodeStrict(data []byte, v any) error {
	t := reflect.TypeOf(v)
	doc := gjson.ParseBytes(data)

	clean := data
	if gjson.ValidBytes(data) {
		var err error
		if clean, err = dropCaseVariants(data, doc, t); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(clean, v); err != nil {
		return err
	}

	return checkRequired(doc, t, "")
}

func dropCaseVariants(data []byte, doc gjson.Result, t reflect.Type) ([]byte, error) {
	var paths []string
	collectCaseVariants(doc, t, "", &paths)

	if len(paths) == 0 {
		return data, nil
	}

	out := data
	for _, path := range paths {
		var err error
		if out, err = sjson.DeleteBytes(out, path); err != nil {
			return nil, fmt.Errorf("drop key %s: %w", path, err)
		}
	}

	return out, nil
}

// collectCaseVariants appends the sjson path of every key in doc that equals
// a declared key of the same record under case folding but not exactly.
func collectCaseVariants(doc gjson.Result, t reflect.Type, path string, paths *[]string) {
	if !isRecord(t) {
		return
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if !doc.IsObject() {
			return
		}

		fields := declaredFields(t)

		doc.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			keyPath := joinPath(path, escapeKey(name))

			if ft, ok := fields[name]; ok {
				collectCaseVariants(value, ft, keyPath, paths)
				return true
			}

			for declared := range fields {
				if strings.EqualFold(name, declared) {
					*paths = append(*paths, keyPath)
					break
				}
			}

			return true
		})

	case reflect.Slice, reflect.Array:
		if !doc.IsArray() {
			return
		}

		for i, elem := range doc.Array() {
			collectCaseVariants(elem, t.Elem(), joinPath(path, strconv.Itoa(i)), paths)
		}
	}
}

func joinPath(path, part string) string {
	if path == "" {
		return part
	}

	return path + "." + part
}

// escapeKey escapes ASCII punctuation, which gjson and sjson paths treat
// as syntax.
func escapeKey(key string) string {
	var b strings.Builder

	for i := range len(key) {
		c := key[i]
		if c < 0x80 && c != '_' && c != '-' && !isAlnum(c) {
			b.WriteByte('\\')
		}

		b.WriteByte(c)
	}

	return b.String()
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// checkRequired walks t alongside doc. Types that decode themselves (enums,
// Flag) and dynamic values are leaves.
func checkRequired(doc gjson.Result, t reflect.Type, path string) error {
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		return checkRequired(doc, t.Elem(), path)

	case reflect.Struct:
		return checkObject(doc, t, path)

	case reflect.Slice, reflect.Array:
		if !isRecord(t.Elem()) {
			return nil
		}

		var (
			err error
			i   int
		)

		doc.ForEach(func(_, elem gjson.Result) bool {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			i++

			if elem.Type == gjson.Null {
				err = &FieldError{Path: elemPath, Reason: "null is not allowed"}
				return false
			}

			err = checkRequired(elem, t.Elem(), elemPath)

			return err == nil
		})

		return err

	default:
		return nil
	}
}

func checkObject(doc gjson.Result, t reflect.Type, path string) error {
	present := make(map[string]gjson.Result)
	doc.ForEach(func(key, value gjson.Result) bool {
		present[key.String()] = value
		return true
	})

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := f.Tag.Get("json")
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			if err := checkObject(doc, f.Type, path); err != nil {
				return err
			}

			continue
		}

		name, optional, skip := jsonKey(f.Name, tag)
		if skip {
			continue
		}

		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}

		value, ok := present[name]

		switch {
		case ok && value.Type != gjson.Null:
			if err := checkRequired(value, f.Type, fieldPath); err != nil {
				return err
			}
		case ok:
			// Only pointer fields take null.
			if f.Type.Kind() != reflect.Pointer {
				return &FieldError{Path: fieldPath, Reason: "null is not allowed"}
			}
		case !optional:
			return &FieldError{Path: fieldPath, Reason: "missing field", Suggestion: suggestKey(name, t, present)}
		}
	}

	return nil
}

// suggestKey returns the present key that t does not declare and that looks
// most like the missing key, if any. A key differing only by a leading
// underscore belongs to the other beatmap layout and is not offered.
func suggestKey(missing string, t reflect.Type, present map[string]gjson.Result) string {
	known := declaredFields(t)

	var unknown []string

	for key := range present {
		if _, ok := known[key]; ok || strings.TrimPrefix(key, "_") == strings.TrimPrefix(missing, "_") {
			continue
		}

		unknown = append(unknown, key)
	}

	suggestion, _ := match.Closest(missing, unknown, match.DefaultThreshold)

	return suggestion
}

// declaredFields maps every JSON key of struct t, including keys promoted
// from embedded structs, to its field type.
func declaredFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	addDeclaredFields(t, fields)

	return fields
}

func addDeclaredFields(t reflect.Type, fields map[string]reflect.Type) {
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("json")

		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			addDeclaredFields(f.Type, fields)
			continue
		}

		if name, _, skip := jsonKey(f.Name, tag); !skip && f.IsExported() {
			fields[name] = f.Type
		}
	}
}

// isRecord reports whether values of t need a presence walk.
func isRecord(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return false
	}

	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array:
		return isRecord(t.Elem())
	default:
		return false
	}
}

func jsonKey(fieldName, tag string) (name string, optional, skip bool) {
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = fieldName
	}

	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			optional = true
		}
	}

	return name, optional, false
}
