// script_override.go - Embedded script host for Pulse Engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

package main

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// ScriptHost wraps one Lua state. An effect that supports script overrides
// owns one host for its lifetime; control variables are bound as numeric
// globals before execution and read back after. Nothing here can fail hard:
// unparseable source compiles to an empty script, and runtime errors during
// execution leave the globals as they were.
type ScriptHost struct {
	state *lua.LState
}

// CompiledScript is a compiled chunk, or the empty sentinel when the source
// was blank or did not parse. Executing an empty script is a no-op.
type CompiledScript struct {
	fn *lua.LFunction
}

// Empty reports whether the script is the no-op sentinel.
func (s *CompiledScript) Empty() bool {
	return s == nil || s.fn == nil
}

func NewScriptHost() *ScriptHost {
	return &ScriptHost{
		state: lua.NewState(lua.Options{
			CallStackSize:       64,
			RegistrySize:        1024,
			SkipOpenLibs:        false,
			IncludeGoStackTrace: false,
		}),
	}
}

// Compile turns source text into a script. Blank or unparseable source
// yields the empty sentinel rather than an error.
func (h *ScriptHost) Compile(source string) *CompiledScript {
	if strings.TrimSpace(source) == "" {
		return &CompiledScript{}
	}
	fn, err := h.state.LoadString(source)
	if err != nil {
		return &CompiledScript{}
	}
	return &CompiledScript{fn: fn}
}

// Execute runs a compiled script. Runtime errors are swallowed; the worst
// observable outcome is that the script's variables keep their prior values.
func (h *ScriptHost) Execute(s *CompiledScript) {
	if s.Empty() {
		return
	}
	h.state.Push(s.fn)
	_ = h.state.PCall(0, 0, nil)
}

// SetVar binds a numeric global visible to scripts.
func (h *ScriptHost) SetVar(name string, v float64) {
	h.state.SetGlobal(name, lua.LNumber(v))
}

// GetVar reads a numeric global back. Non-numeric or missing globals read
// as zero.
func (h *ScriptHost) GetVar(name string) float64 {
	if n, ok := h.state.GetGlobal(name).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// Close releases the Lua state. Safe to call more than once.
func (h *ScriptHost) Close() {
	if h.state != nil {
		h.state.Close()
		h.state = nil
	}
}
