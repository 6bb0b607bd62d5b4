// Package render writes normalized beatmaps, set metadata and diagnostics
// for people to read.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"beatmap-reader/beatmap"
	"beatmap-reader/internal/diagnostic"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatSpew Format = "spew"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatSpew}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown dump format %q (want yaml, json or spew)", s)
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// eventView tags an event with its kind so the variant survives encoding.
type eventView struct {
	Kind  string        `json:"kind"`
	Event beatmap.Event `json:"event"`
}

type beatmapView struct {
	*beatmap.Beatmap
	Events []eventView `json:"events"`
}

func viewOf(bm *beatmap.Beatmap) beatmapView {
	events := make([]eventView, 0, len(bm.Events))
	for _, e := range bm.Events {
		events = append(events, eventView{Kind: e.Kind().String(), Event: e})
	}

	return beatmapView{Beatmap: bm, Events: events}
}

// Beatmap writes bm in format f. Encoded events carry their kind.
func Beatmap(w io.Writer, bm *beatmap.Beatmap, f Format) error {
	if f == FormatSpew {
		spewConfig.Fdump(w, bm)

		return nil
	}

	return Value(w, viewOf(bm), f)
}

// Value writes v in format f. YAML output keeps the key order of the JSON
// encoding of v.
func Value(w io.Writer, v any, f Format) error {
	switch f {
	case FormatSpew:
		spewConfig.Fdump(w, v)

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unknown dump format %q", f)
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	// JSON is a YAML subset; decoding into a node preserves key order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to convert json to yaml: %w", err)
	}

	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	_, err = w.Write(buf.Bytes())

	return err
}

// blockStyle drops the flow and quoting styles inherited from JSON.
// Empty collections stay in flow style.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	if (n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode) && len(n.Content) == 0 {
		n.Style = yaml.FlowStyle
	}

	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Diagnostics writes one line per diagnostic of severity minSeverity or
// higher, most severe first, followed by a summary line.
func Diagnostics(w io.Writer, d *diagnostic.Diagnostics, minSeverity diagnostic.DiagnosticSeverity) error {
	for _, diag := range d.AtLeast(minSeverity) {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", diag.Severity, diag); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d error(s), %d warning(s), %d info(s)\n",
		len(d.Errors), len(d.Warnings), len(d.Infos))

	return err
}

// Counts writes the number of events per kind, in kind order.
func Counts(w io.Writer, bm *beatmap.Beatmap) error {
	counts := beatmap.CountByKind(bm.Events)
	for k := beatmap.EventKind(1); int(k) < beatmap.EventKindTotal; k++ {
		if counts[k] == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "%-14s %d\n", k, counts[k]); err != nil {
			return err
		}
	}

	return nil
}
