// preset.go - TOML preset loading for Pulse Engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// PresetError provides detailed error context for preset operations
type PresetError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *PresetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("preset %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("preset %s failed: %s", e.Operation, e.Details)
}

// PresetFile is the on-disk shape of a preset: output dimensions plus the
// root of the effect tree.
type PresetFile struct {
	Width  int        `toml:"width"`
	Height int        `toml:"height"`
	Root   PresetNode `toml:"root"`
}

// PresetNode describes one effect. An empty or "list" type is a nested
// effect list; anything else is looked up in the effect registry.
type PresetNode struct {
	Type     string         `toml:"type"`
	Params   map[string]any `toml:"params"`
	Children []PresetNode   `toml:"children"`
}

// EffectConstructor builds an effect from its populated parameter store.
type EffectConstructor func(params *Params) (RenderNode, error)

var effectRegistry = map[string]EffectConstructor{
	"clear": func(p *Params) (RenderNode, error) {
		return NewClearScreen(p), nil
	},
	"fadeout": func(p *Params) (RenderNode, error) {
		return NewFadeout(p), nil
	},
	"oscilloscope": func(p *Params) (RenderNode, error) {
		return NewOscilloscope(p), nil
	},
	"spectrum": func(p *Params) (RenderNode, error) {
		return NewSpectrumBars(p), nil
	},
	"buffersave": func(p *Params) (RenderNode, error) {
		return NewBufferSave(p), nil
	},
	"picture": func(p *Params) (RenderNode, error) {
		return NewPicture(p, p.String("file", ""))
	},
}

// RegisterEffect adds a constructor under a preset type name. Registering
// over an existing name replaces it.
func RegisterEffect(name string, ctor EffectConstructor) {
	effectRegistry[name] = ctor
}

func paramsFromMap(m map[string]any) *Params {
	p := NewParams()
	for k, v := range m {
		switch val := v.(type) {
		case int64:
			p.SetInt(k, int(val))
		case float64:
			p.SetInt(k, int(val))
		case bool:
			p.SetBool(k, val)
		case string:
			p.SetString(k, val)
		}
	}
	return p
}

// BuildTree turns a preset node into a live effect list. Children of
// unknown type are skipped with a warning rather than failing the whole
// preset; a constructor error (such as a missing picture file) is fatal.
func BuildTree(node PresetNode) (*EffectList, error) {
	if node.Type != "" && node.Type != "list" {
		return nil, &PresetError{
			Operation: "build",
			Details:   fmt.Sprintf("node type %q is not a list", node.Type),
		}
	}
	list := NewEffectList(paramsFromMap(node.Params))
	for _, child := range node.Children {
		if child.Type == "" || child.Type == "list" {
			sub, err := BuildTree(child)
			if err != nil {
				return nil, err
			}
			list.AddChild(sub)
			continue
		}
		ctor, ok := effectRegistry[child.Type]
		if !ok {
			fmt.Printf("Preset: skipping unknown effect type %q\n", child.Type)
			continue
		}
		fx, err := ctor(paramsFromMap(child.Params))
		if err != nil {
			return nil, &PresetError{
				Operation: "build",
				Details:   fmt.Sprintf("constructing %q", child.Type),
				Err:       err,
			}
		}
		list.AddChild(fx)
	}
	return list, nil
}

// LoadPreset reads a TOML preset file and builds its effect tree. The
// previous preset's global buffers are released first so image state never
// carries across presets.
func LoadPreset(path string) (*EffectList, int, int, error) {
	var file PresetFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, 0, 0, &PresetError{Operation: "load", Details: path, Err: err}
	}
	ClearGlobalBuffers()
	root, err := BuildTree(file.Root)
	if err != nil {
		return nil, 0, 0, err
	}
	return root, file.Width, file.Height, nil
}

// ParsePreset is LoadPreset over in-memory TOML source.
func ParsePreset(source string) (*EffectList, int, int, error) {
	var file PresetFile
	if _, err := toml.Decode(source, &file); err != nil {
		return nil, 0, 0, &PresetError{Operation: "parse", Details: "inline source", Err: err}
	}
	ClearGlobalBuffers()
	root, err := BuildTree(file.Root)
	if err != nil {
		return nil, 0, 0, err
	}
	return root, file.Width, file.Height, nil
}
