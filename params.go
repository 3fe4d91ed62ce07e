// params.go - Effect parameter store for Pulse Engine

package main

// Params is the per-effect parameter store. Values are keyed by the stable
// string identifiers presets use ("blendin", "use_code", ...) and read back
// with typed accessors that supply a default for missing keys. Effects keep
// a reference to their store, so a host can retune a running effect by
// writing into it between frames.
type Params struct {
	values map[string]any
}

func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

func (p *Params) SetInt(name string, v int)       { p.values[name] = v }
func (p *Params) SetBool(name string, v bool)     { p.values[name] = v }
func (p *Params) SetString(name string, v string) { p.values[name] = v }

// SetColor stores a packed 0xAARRGGBB colour.
func (p *Params) SetColor(name string, v uint32) { p.values[name] = v }

func (p *Params) Int(name string, def int) int {
	switch v := p.values[name].(type) {
	case int:
		return v
	case uint32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return def
}

func (p *Params) Bool(name string, def bool) bool {
	switch v := p.values[name].(type) {
	case bool:
		return v
	case int:
		return v != 0
	}
	return def
}

func (p *Params) String(name string, def string) string {
	if v, ok := p.values[name].(string); ok {
		return v
	}
	return def
}

func (p *Params) Color(name string, def uint32) uint32 {
	switch v := p.values[name].(type) {
	case uint32:
		return v
	case int:
		return uint32(v)
	}
	return def
}
