// SPDX-License-Identifier: MPL-2.0

package config

import (
	"reflect"
	"testing"
)

func TestMerge_RecursiveOverride(t *testing.T) {
	base := Tree{"a": map[string]any{"x": 1, "y": 2}}
	override := Tree{"a": map[string]any{"y": 3}}

	got := Merge(base, override)
	want := Tree{"a": map[string]any{"x": 1, "y": 3}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMerge_ScalarReplacesMapping(t *testing.T) {
	base := Tree{"a": map[string]any{"x": 1}}
	override := Tree{"a": "flat"}

	got := Merge(base, override)
	if got["a"] != "flat" {
		t.Errorf("Merge() a = %v, want scalar override to win atomically", got["a"])
	}
}

func TestMerge_ListsReplaceNotConcat(t *testing.T) {
	base := Tree{"items": []any{"a", "b"}}
	override := Tree{"items": []any{"c"}}

	got := Merge(base, override)
	want := []any{"c"}

	if !reflect.DeepEqual(got["items"], want) {
		t.Errorf("Merge() items = %v, want %v (last writer wins, no append)", got["items"], want)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := Tree{"a": map[string]any{"x": 1}}
	override := Tree{"a": map[string]any{"y": 2}}

	_ = Merge(base, override)

	if _, ok := base["a"].(map[string]any)["y"]; ok {
		t.Error("Merge() mutated its base input")
	}
	if _, ok := override["a"].(map[string]any)["x"]; ok {
		t.Error("Merge() mutated its override input")
	}
}

func TestMerge_ResultDoesNotAliasInputs(t *testing.T) {
	base := Tree{"a": map[string]any{"x": 1}}

	got := Merge(base, Tree{})
	got["a"].(map[string]any)["x"] = 99

	if base["a"].(map[string]any)["x"] != 1 {
		t.Error("Merge() result aliases base tree")
	}
}
