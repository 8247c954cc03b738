// file: internals/helpers/patch_field.go
package helper

import "encoding/json"

// PatchField distinguishes absent | null | value in PATCH payloads, so partial
// updates never clobber fields the caller did not send.
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
