package cmd

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{
		"name":  "dev",
		"empty": "",
		"num":   3.0,
	}
	if got := StringParam(params, "name", "x"); got != "dev" {
		t.Errorf("got %q", got)
	}
	if got := StringParam(params, "empty", "fallback"); got != "fallback" {
		t.Errorf("empty string should fall back, got %q", got)
	}
	if got := StringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	if got := StringParam(params, "num", "fallback"); got != "fallback" {
		t.Errorf("non-string should fall back, got %q", got)
	}
}

func TestNumberParam(t *testing.T) {
	params := map[string]interface{}{
		"timeout": 7.5,
		"name":    "dev",
	}
	if got := NumberParam(params, "timeout", 5); got != 7.5 {
		t.Errorf("got %v", got)
	}
	if got := NumberParam(params, "missing", 5); got != 5 {
		t.Errorf("got %v", got)
	}
	if got := NumberParam(params, "name", 5); got != 5 {
		t.Errorf("non-number should fall back, got %v", got)
	}
}
