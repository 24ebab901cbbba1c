// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"
)

func TestBindFlagsBasicTypes(t *testing.T) {
	type params struct {
		Name     string        `flag:"name"     desc:"a string"   default:"praia"`
		Count    int           `flag:"count,n"  desc:"an int"     default:"3"`
		SlotID   int64         `flag:"slot"     desc:"an int64"`
		Price    float64       `flag:"price"    desc:"a float"    default:"18.5"`
		Yes      bool          `flag:"yes,y"    desc:"a bool"`
		Interval time.Duration `flag:"interval" desc:"a duration" default:"15s"`
		Tags     []string      `flag:"tags"     desc:"a slice"`
		ignored  string
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse([]string{
		"--name", "barraca",
		"-n", "7",
		"--slot", "42",
		"--yes",
		"--tags", "a,b",
	}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Name != "barraca" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Count != 7 {
		t.Errorf("Count = %d", p.Count)
	}
	if p.SlotID != 42 {
		t.Errorf("SlotID = %d", p.SlotID)
	}
	if p.Price != 18.5 {
		t.Errorf("Price = %v, want default 18.5", p.Price)
	}
	if !p.Yes {
		t.Error("Yes = false")
	}
	if p.Interval != 15*time.Second {
		t.Errorf("Interval = %v, want default 15s", p.Interval)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "a" || p.Tags[1] != "b" {
		t.Errorf("Tags = %v", p.Tags)
	}
	_ = p.ignored
}

func TestBindFlagsJSONOutputEmbed(t *testing.T) {
	type params struct {
		JSONOutput
		History bool `flag:"history" desc:"include closed tickets"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse([]string{"--json", "--history"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want --json bound via FlagBinder")
	}
	if !p.History {
		t.Error("History = false")
	}
}

func TestBindFlagsRejectsNonPointer(t *testing.T) {
	type params struct{}
	defer func() {
		if recover() == nil {
			t.Fatal("FlagsFromParams with non-pointer should panic")
		}
	}()
	FlagsFromParams("test", params{})
}

func TestBindFlagsUnsupportedType(t *testing.T) {
	type params struct {
		Bad map[string]string `flag:"bad" desc:"unsupported"`
	}
	defer func() {
		if recover() == nil {
			t.Fatal("FlagsFromParams with unsupported field type should panic")
		}
	}()
	var p params
	FlagsFromParams("test", &p)
}
