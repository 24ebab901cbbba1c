// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"strings"
	"time"
)

// Time is a timestamp as the backend serializes it. The server emits
// local date-times without a zone offset ("2026-08-30T14:05:00") as
// well as full RFC 3339; both must parse. Zoneless values are taken as
// local time, matching how the original clients interpreted them.
type Time struct {
	time.Time
}

// wireTimeLayouts are tried in order when parsing.
var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON parses the backend's timestamp formats. A JSON null or
// empty string leaves the zero Time.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON emits RFC 3339, which the backend accepts.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
