package schema_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatmap-reader/enum"
	"beatmap-reader/schema"
)

// newDoc returns a minimal new-layout document with overrides applied.
// A nil override value removes the key.
func newDoc(t *testing.T, overrides map[string]any) []byte {
	t.Helper()

	doc := map[string]any{
		"version":                           "3.2.0",
		"bpmEvents":                         []any{},
		"rotationEvents":                    []any{},
		"colorNotes":                        []any{},
		"bombNotes":                         []any{},
		"obstacles":                         []any{},
		"sliders":                           []any{},
		"burstSliders":                      []any{},
		"waypoints":                         []any{},
		"basicBeatmapEvents":                []any{},
		"colorBoostBeatmapEvents":           []any{},
		"lightColorEventBoxGroups":          []any{},
		"lightRotationEventBoxGroups":       []any{},
		"useNormalEventsAsCompatibleEvents": false,
	}

	return marshalWith(t, doc, overrides)
}

// oldDoc returns a minimal old-layout document with overrides applied.
func oldDoc(t *testing.T, overrides map[string]any) []byte {
	t.Helper()

	doc := map[string]any{
		"_version":   "2.6.0",
		"_notes":     []any{},
		"_obstacles": []any{},
		"_events":    []any{},
	}

	return marshalWith(t, doc, overrides)
}

func marshalWith(t *testing.T, doc, overrides map[string]any) []byte {
	t.Helper()

	for k, v := range overrides {
		if v == nil {
			delete(doc, k)
			continue
		}

		doc[k] = v
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	return data
}

func TestDetect_NewLayout(t *testing.T) {
	t.Parallel()

	data := newDoc(t, map[string]any{
		"colorNotes": []any{
			map[string]any{"b": 4.0, "x": 1, "y": 0, "c": 0, "d": 1, "a": 0},
		},
	})

	file, err := schema.Detect(data)
	require.NoError(t, err)
	require.Equal(t, schema.FormatNew, file.Format())

	nf, ok := file.(*schema.NewBeatmapFile)
	require.True(t, ok)
	require.Len(t, nf.ColorNotes, 1)
	assert.Equal(t, schema.ColorNote{B: 4, X: 1, Y: 0, C: enum.NoteColorRed, D: enum.DirectionDown, A: 0}, nf.ColorNotes[0])

	// optional keys default to empty
	assert.Empty(t, nf.LightTranslationEventBoxGroups)
	assert.Empty(t, nf.BasicEventTypesWithKeywords)
	assert.Empty(t, nf.CustomData)
}

func TestDetect_OldLayout(t *testing.T) {
	t.Parallel()

	data := oldDoc(t, map[string]any{
		"_notes": []any{
			map[string]any{"_time": 2.0, "_lineIndex": 0, "_lineLayer": 0, "_type": 3, "_cutDirection": 0},
		},
	})

	file, err := schema.Detect(data)
	require.NoError(t, err)
	require.Equal(t, schema.FormatOld, file.Format())

	of, ok := file.(*schema.OldBeatmapFile)
	require.True(t, ok)
	require.Len(t, of.Notes, 1)
	assert.Equal(t, schema.OldNoteKindBomb, of.Notes[0].Type)
	assert.Empty(t, of.Sliders)
	assert.Empty(t, of.Waypoints)
}

func TestDetect_PrefersNewWhenBothMatch(t *testing.T) {
	t.Parallel()

	// an old document that also carries every required new key
	data := newDoc(t, map[string]any{
		"_version": "2.0.0",
		"_notes": []any{
			map[string]any{"_time": 1.0, "_lineIndex": 1, "_lineLayer": 1, "_type": 0, "_cutDirection": 8},
		},
		"_obstacles": []any{},
		"_events":    []any{},
	})

	_, err := schema.DecodeOld(data)
	require.NoError(t, err, "document must satisfy the old layout too")

	file, err := schema.Detect(data)
	require.NoError(t, err)
	assert.Equal(t, schema.FormatNew, file.Format())
}

func TestDetect_NeitherLayoutReportsBoth(t *testing.T) {
	t.Parallel()

	_, err := schema.Detect([]byte(`{"version": "3.0.0", "_notes": []}`))
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrBeatmapParsing)

	var parseErr *schema.BeatmapParseError
	require.ErrorAs(t, err, &parseErr)
	require.Error(t, parseErr.AsNew)
	require.Error(t, parseErr.AsOld)
	assert.NotEqual(t, parseErr.AsNew.Error(), parseErr.AsOld.Error())

	assert.Equal(t, "bpmEvents: missing field", parseErr.AsNew.Error())
	assert.Equal(t, "_version: missing field", parseErr.AsOld.Error())
	assert.Contains(t, err.Error(), "new format: bpmEvents: missing field")
	assert.Contains(t, err.Error(), "old format: _version: missing field")
}

func TestDetect_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := schema.Detect([]byte(`{"version": `))

	var parseErr *schema.BeatmapParseError
	require.ErrorAs(t, err, &parseErr)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, parseErr.AsNew, &syntaxErr)
	assert.ErrorAs(t, parseErr.AsOld, &syntaxErr)
}

func TestDetect_StrictFailures(t *testing.T) {
	t.Parallel()

	note := func(overrides map[string]any) []any {
		n := map[string]any{"b": 1.0, "x": 0, "y": 0, "c": 1, "d": 0, "a": 0}
		for k, v := range overrides {
			if v == nil {
				delete(n, k)
				continue
			}

			n[k] = v
		}

		return []any{n}
	}

	tests := []struct {
		name      string
		overrides map[string]any
		wantPath  string
	}{
		{name: "nested key missing", overrides: map[string]any{"colorNotes": note(map[string]any{"d": nil})}, wantPath: "colorNotes[0].d"},
		{name: "list is null", overrides: map[string]any{"colorNotes": json.RawMessage(`null`)}, wantPath: "colorNotes"},
		{name: "element is null", overrides: map[string]any{"bombNotes": json.RawMessage(`[null]`)}, wantPath: "bombNotes[0]"},
		{name: "top-level key missing", overrides: map[string]any{"waypoints": nil}, wantPath: "waypoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := schema.DecodeNew(newDoc(t, tt.overrides))

			var fieldErr *schema.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantPath, fieldErr.Path)
		})
	}

	typeFailures := []struct {
		name      string
		overrides map[string]any
	}{
		{name: "fraction into integer", overrides: map[string]any{"colorNotes": note(map[string]any{"x": 1.5})}},
		{name: "string into number", overrides: map[string]any{"colorNotes": note(map[string]any{"b": "1"})}},
		{name: "undeclared enum code", overrides: map[string]any{"colorNotes": note(map[string]any{"d": 9})}},
		{name: "integer into plain bool", overrides: map[string]any{"useNormalEventsAsCompatibleEvents": 1}},
		{name: "flag out of range", overrides: map[string]any{
			"rotationEvents": []any{map[string]any{"b": 0, "e": 2, "r": 15}},
		}},
	}

	for _, tt := range typeFailures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := schema.DecodeNew(newDoc(t, tt.overrides))
			require.Error(t, err)
		})
	}
}

func TestDecodeNew_UndeclaredEnumCodeIsUnknownCode(t *testing.T) {
	t.Parallel()

	data := newDoc(t, map[string]any{
		"sliders": []any{map[string]any{
			"b": 1, "c": 0, "x": 0, "y": 0, "d": 0, "mu": 1, "tb": 2, "tx": 1, "ty": 1, "tc": 0, "tmu": 1, "m": 7,
		}},
	})

	_, err := schema.DecodeNew(data)
	require.ErrorIs(t, err, enum.ErrUnknownCode)
}

func TestDecodeNew_FlagsAcceptIntegersAndBooleans(t *testing.T) {
	t.Parallel()

	data := newDoc(t, map[string]any{
		"rotationEvents": []any{
			map[string]any{"b": 1, "e": 1, "r": 15},
			map[string]any{"b": 2, "e": false, "r": -15},
		},
	})

	nf, err := schema.DecodeNew(data)
	require.NoError(t, err)
	require.Len(t, nf.RotationEvents, 2)
	assert.True(t, bool(nf.RotationEvents[0].E))
	assert.False(t, bool(nf.RotationEvents[1].E))
}

func TestDecodeNew_IgnoresUnknownKeysAndKeepsCustomData(t *testing.T) {
	t.Parallel()

	data := newDoc(t, map[string]any{
		"someEditorKey": map[string]any{"x": 1},
		"customData": map[string]any{
			"time":      12.5,
			"bookmarks": []any{map[string]any{"b": 4, "n": "drop"}},
		},
		"basicEventTypesWithKeywords": map[string]any{"d": []any{}},
	})

	nf, err := schema.DecodeNew(data)
	require.NoError(t, err)
	assert.Equal(t, 12.5, nf.CustomData["time"])
	assert.Equal(t, []any{map[string]any{"b": 4.0, "n": "drop"}}, nf.CustomData["bookmarks"])
	assert.Equal(t, map[string]any{"d": []any{}}, nf.BasicEventTypesWithKeywords)
}

func TestDecodeNew_LightLanes(t *testing.T) {
	t.Parallel()

	filter := map[string]any{"c": 1, "f": 1, "p": 1, "t": 0, "r": 0, "n": 0, "s": 0, "l": 0, "d": 0}

	lane := map[string]any{
		"f": filter, "w": 1, "d": 1, "s": 45, "t": 2, "b": 1, "i": 0, "a": 1, "r": 1,
		"e": []any{map[string]any{"b": 0, "p": 0, "e": -1, "l": 0, "r": 90, "o": 1}},
	}

	data := newDoc(t, map[string]any{
		"lightRotationEventBoxGroups": []any{map[string]any{"b": 8, "g": 2, "e": []any{lane}}},
	})

	nf, err := schema.DecodeNew(data)
	require.NoError(t, err)
	require.Len(t, nf.LightRotationEventBoxGroups, 1)

	got := nf.LightRotationEventBoxGroups[0].E[0]
	assert.InDelta(t, 45.0, got.S, 0)
	assert.Equal(t, enum.AxisY, got.A)
	assert.True(t, bool(got.R))
	assert.True(t, bool(got.B))
	require.NotNil(t, got.I)
	assert.Equal(t, enum.EasingLinear, *got.I)
	assert.Equal(t, enum.BoxFilterKindSections, got.F.F)
	assert.Equal(t, enum.RotationDirectionClockwise, got.E[0].O)

	// a key of the embedded lane base is still required
	delete(filter, "c")

	data = newDoc(t, map[string]any{
		"lightRotationEventBoxGroups": []any{map[string]any{"b": 8, "g": 2, "e": []any{lane}}},
	})

	_, err = schema.DecodeNew(data)

	var fieldErr *schema.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "lightRotationEventBoxGroups[0].e[0].f.c", fieldErr.Path)
}

func TestDetect_StripsByteOrderMark(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xef, 0xbb, 0xbf}, oldDoc(t, nil)...)

	file, err := schema.Detect(data)
	require.NoError(t, err)
	assert.Equal(t, schema.FormatOld, file.Format())
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "new", schema.FormatNew.String())
	assert.Equal(t, "old", schema.FormatOld.String())
	assert.Equal(t, "unknown", schema.FormatUnknown.String())
}

func TestDetect_CaseVariantKeysAreIgnored(t *testing.T) {
	t.Parallel()

	const oldNote = `{"_time": 1, "_lineIndex": 0, "_lineLayer": 0, "_type": 0, "_cutDirection": 0%s}`

	tests := []struct {
		name  string
		extra string
	}{
		{name: "later variant does not overwrite", extra: `, "_CUTDIRECTION": 3`},
		{name: "variant of another type", extra: `, "_CutDirection": "x"`},
		{name: "variant before the declared key", extra: `, "_CutDirection": 5, "_cutDirection": 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := []byte(`{"_version": "2.6.0", "_notes": [` + fmt.Sprintf(oldNote, tt.extra) +
				`], "_obstacles": [], "_events": [], "_NOTES": "ignored"}`)

			file, err := schema.Detect(data)
			require.NoError(t, err)
			require.Equal(t, schema.FormatOld, file.Format())

			old := file.(*schema.OldBeatmapFile)
			require.Len(t, old.Notes, 1)
			assert.Equal(t, enum.DirectionUp, old.Notes[0].CutDirection)
		})
	}
}

func TestDecodeNew_CaseVariantInNestedRecord(t *testing.T) {
	t.Parallel()

	data := []byte(strings.Replace(string(newDoc(t, nil)), `"colorNotes":[]`,
		`"colorNotes":[{"b":1,"x":0,"y":0,"c":0,"d":1,"a":0,"D":5}]`, 1))

	file, err := schema.DecodeNew(data)
	require.NoError(t, err)
	require.Len(t, file.ColorNotes, 1)
	assert.Equal(t, enum.DirectionDown, file.ColorNotes[0].D)
}

func TestDecode_NullOnlyForNullableFields(t *testing.T) {
	t.Parallel()

	null := json.RawMessage(`null`)
	note := map[string]any{"_time": 1, "_lineIndex": 0, "_lineLayer": 0, "_type": 0, "_cutDirection": 0}

	rejected := []struct {
		name      string
		overrides map[string]any
		wantPath  string
	}{
		{name: "sliders", overrides: map[string]any{"_sliders": null}, wantPath: "_sliders"},
		{name: "waypoints", overrides: map[string]any{"_waypoints": null}, wantPath: "_waypoints"},
		{name: "file custom data", overrides: map[string]any{"customData": null}, wantPath: "customData"},
		{name: "note custom data", overrides: map[string]any{
			"_notes": []any{map[string]any{
				"_time": 1, "_lineIndex": 0, "_lineLayer": 0, "_type": 0, "_cutDirection": 0, "_customData": null,
			}},
		}, wantPath: "_notes[0]._customData"},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := schema.DecodeOld(oldDoc(t, tt.overrides))

			var fieldErr *schema.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantPath, fieldErr.Path)
			assert.Equal(t, "null is not allowed", fieldErr.Reason)
		})
	}

	for _, key := range []string{"lightTranslationEventBoxGroups", "basicEventTypesWithKeywords"} {
		_, err := schema.DecodeNew(newDoc(t, map[string]any{key: null}))

		var fieldErr *schema.FieldError
		require.ErrorAs(t, err, &fieldErr, key)
		assert.Equal(t, key, fieldErr.Path)
	}

	file, err := schema.DecodeOld(oldDoc(t, map[string]any{
		"_notes":  []any{note},
		"_events": []any{map[string]any{"_time": 0, "_type": 1, "_value": 1, "_floatValue": null}},
	}))
	require.NoError(t, err)
	assert.Nil(t, file.Events[0].FloatValue)
	assert.Nil(t, file.Notes[0].CustomData)
}
