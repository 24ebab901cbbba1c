// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/spf13/pflag"
)

// JSONOutput is an embeddable struct that adds --json output support to
// a command's parameter struct. Embedding it provides the --json flag
// (via [FlagBinder]) and the [EmitJSON] method for conditional JSON
// output.
//
// Usage:
//
//	type listParams struct {
//	    cli.JSONOutput
//	    History bool `json:"-" flag:"history" desc:"show closed and cancelled tickets"`
//	}
//
//	// In Run:
//	if done, err := params.EmitJSON(tickets); done {
//	    return err
//	}
//	// ... text formatting ...
type JSONOutput struct {
	OutputJSON bool `json:"-"`
}

// AddFlags binds the --json flag, satisfying [FlagBinder].
func (j *JSONOutput) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&j.OutputJSON, "json", false, "output as JSON")
}

// EmitJSON writes result as indented JSON to stdout if --json is set.
// Returns (true, nil) on success, (true, err) on write failure, or
// (false, nil) when --json is not set and the caller should proceed
// with text formatting.
//
// Nil slices are normalized to empty slices before serialization, so
// callers never need to guard against null JSON output.
func (j *JSONOutput) EmitJSON(result any) (bool, error) {
	if !j.OutputJSON {
		return false, nil
	}
	return true, WriteJSON(normalizeNilSlice(result))
}

// WriteJSON marshals value as indented JSON and writes it to stdout.
// Most commands should use [JSONOutput.EmitJSON] instead, which handles
// the --json flag check and nil-slice normalization automatically.
func WriteJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that JSON serialization produces [] instead of
// null. Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
