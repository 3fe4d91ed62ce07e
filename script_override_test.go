// script_override_test.go - Script host test suite

package main

import "testing"

func TestCompileEmptyAndUnparseableYieldSentinel(t *testing.T) {
	host := NewScriptHost()
	defer host.Close()

	for _, src := range []string{"", "   \n\t ", "((((", "end end"} {
		s := host.Compile(src)
		if !s.Empty() {
			t.Errorf("Compile(%q) should yield the empty sentinel", src)
		}
		host.Execute(s) // must be a no-op, not a panic
	}

	if s := host.Compile("x = 1"); s.Empty() {
		t.Error("valid source compiled to the empty sentinel")
	}
}

func TestVariableRoundTrip(t *testing.T) {
	host := NewScriptHost()
	defer host.Close()

	host.SetVar("alphain", 0.5)
	if got := host.GetVar("alphain"); got != 0.5 {
		t.Errorf("GetVar = %v, want 0.5", got)
	}
	if got := host.GetVar("never_set"); got != 0 {
		t.Errorf("missing variable reads %v, want 0", got)
	}
}

func TestExecuteMutatesVariables(t *testing.T) {
	host := NewScriptHost()
	defer host.Close()

	host.SetVar("w", 640)
	host.SetVar("h", 360)
	s := host.Compile("alphaout = w / (w + h)")
	host.Execute(s)
	got := host.GetVar("alphaout")
	if got < 0.63 || got > 0.65 {
		t.Errorf("alphaout = %v, want 0.64", got)
	}
}

func TestRuntimeErrorIsSwallowed(t *testing.T) {
	host := NewScriptHost()
	defer host.Close()

	host.SetVar("beat", 1)
	s := host.Compile("beat = 0.5; error('boom')")
	host.Execute(s) // must not panic
	// The assignment before the error still landed; the error itself is
	// invisible to the caller.
	if got := host.GetVar("beat"); got != 0.5 {
		t.Errorf("beat = %v, want 0.5", got)
	}
}
