package enum

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrUnknownCode   = errors.New("unknown enumeration code")
	ErrUnknownSymbol = errors.New("unknown enumeration symbol")
)

// Code is the wire representation shared by every integer-coded enumeration.
type Code interface {
	~int8
}

// Entry binds one wire code to its symbolic name.
type Entry[E Code] struct {
	Code   E
	Symbol string
}

// Table is a fixed bidirectional code <-> symbol lookup for one enumeration.
type Table[E Code] struct {
	name    string
	symbols map[E]string
	codes   map[string]E
	order   []E
}

// NewTable builds a table from entries. Entries must have unique codes and symbols.
func NewTable[E Code](name string, entries ...Entry[E]) *Table[E] {
	t := &Table[E]{
		name:    name,
		symbols: make(map[E]string, len(entries)),
		codes:   make(map[string]E, len(entries)),
		order:   make([]E, 0, len(entries)),
	}

	for _, e := range entries {
		if _, dup := t.symbols[e.Code]; dup {
			panic(fmt.Sprintf("enum %s: duplicate code %d", name, e.Code))
		}

		if _, dup := t.codes[e.Symbol]; dup {
			panic(fmt.Sprintf("enum %s: duplicate symbol %q", name, e.Symbol))
		}

		t.symbols[e.Code] = e.Symbol
		t.codes[e.Symbol] = e.Code
		t.order = append(t.order, e.Code)
	}

	return t
}

// Name returns the enumeration name used in diagnostics.
func (t *Table[E]) Name() string {
	return t.name
}

// Has reports whether e is a declared member.
func (t *Table[E]) Has(e E) bool {
	_, ok := t.symbols[e]
	return ok
}

// Symbol returns the symbolic name of e, or "Name(code)" for undeclared codes.
func (t *Table[E]) Symbol(e E) string {
	if s, ok := t.symbols[e]; ok {
		return s
	}

	return fmt.Sprintf("%s(%d)", t.name, e)
}

// Values returns all members in declaration order.
func (t *Table[E]) Values() []E {
	return slices.Clone(t.order)
}

// Parse looks a member up by its symbolic name.
func (t *Table[E]) Parse(symbol string) (E, error) {
	if e, ok := t.codes[symbol]; ok {
		return e, nil
	}

	return 0, fmt.Errorf("%w: %s %q", ErrUnknownSymbol, t.name, symbol)
}

// FromCode looks a member up by its wire code.
func (t *Table[E]) FromCode(code int64) (E, error) {
	if code < math.MinInt8 || code > math.MaxInt8 || !t.Has(E(code)) {
		return 0, fmt.Errorf("%w: %s %d", ErrUnknownCode, t.name, code)
	}

	return E(code), nil
}

// Decode reads a JSON integer literal into dst. Anything other than a
// declared integer code is rejected; a JSON null leaves dst untouched.
func (t *Table[E]) Decode(data []byte, dst *E) error {
	if string(data) == "null" {
		return nil
	}

	var code int64
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%s: expected integer code, got %s", t.name, data)
	}

	e, err := t.FromCode(code)
	if err != nil {
		return err
	}

	*dst = e

	return nil
}
