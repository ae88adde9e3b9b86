package helper

import (
	"encoding/json"
	"strings"
)

/* =========================================================
   PatchField (tri-state): absent | null | value
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set reports whether the field was sent with a non-null value.
func (p PatchField[T]) Set() bool { return p.Present && p.Value != nil }

// Apply copies a sent non-null value into dst (NOT NULL columns).
func (p PatchField[T]) Apply(dst *T) {
	if p.Present && p.Value != nil {
		*dst = *p.Value
	}
}

// ApplyNullable copies the value (including an explicit null) into dst.
func (p PatchField[T]) ApplyNullable(dst **T) {
	if p.Present {
		*dst = p.Value
	}
}

// Ptr returns a PatchField holding v; mostly useful in tests.
func Ptr[T any](v T) PatchField[T] {
	return PatchField[T]{Present: true, Value: &v}
}

func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// TrimPatch normalizes a string patch in place; blank strings become null.
func TrimPatch(p *PatchField[string]) {
	if p.Present {
		p.Value = TrimPtr(p.Value)
	}
}
