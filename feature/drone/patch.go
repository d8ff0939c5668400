package drone

import (
	"fmt"
	"math"
	"regexp"
)

// Mutable field names, shared by JSON payloads and table columns.
const (
	FieldStyle     = "style"
	FieldColor     = "color"
	FieldScale     = "scale"
	FieldAnimate   = "animate"
	FieldSimulator = "simulator"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Style     *string  `json:"style,omitempty"`
	Color     *string  `json:"color,omitempty"`
	Scale     *float64 `json:"scale,omitempty"`
	Animate   *bool    `json:"animate,omitempty"`
	Simulator *bool    `json:"simulator,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Style == nil && p.Color == nil && p.Scale == nil && p.Animate == nil && p.Simulator == nil
}

// Validate checks every present field against its domain.
func (p Patch) Validate() error {
	if p.Style != nil {
		switch *p.Style {
		case StyleNeon, StyleWire, StyleCrystal:
		default:
			return &ValidationError{Field: FieldStyle, Reason: fmt.Sprintf("%q is not one of neon, wire, crystal", *p.Style)}
		}
	}
	if p.Color != nil && !hexColor.MatchString(*p.Color) {
		return &ValidationError{Field: FieldColor, Reason: fmt.Sprintf("%q is not a #rgb or #rrggbb literal", *p.Color)}
	}
	if p.Scale != nil && (math.IsNaN(*p.Scale) || math.IsInf(*p.Scale, 0) || *p.Scale <= 0) {
		return &ValidationError{Field: FieldScale, Reason: "must be a positive number"}
	}
	return nil
}

// Fields returns the present fields keyed by name.
func (p Patch) Fields() map[string]any {
	fields := make(map[string]any, 5)
	if p.Style != nil {
		fields[FieldStyle] = *p.Style
	}
	if p.Color != nil {
		fields[FieldColor] = *p.Color
	}
	if p.Scale != nil {
		fields[FieldScale] = *p.Scale
	}
	if p.Animate != nil {
		fields[FieldAnimate] = *p.Animate
	}
	if p.Simulator != nil {
		fields[FieldSimulator] = *p.Simulator
	}
	return fields
}

// Apply merges the present fields into c. Identity fields are never touched.
func (p Patch) Apply(c *Config) {
	if p.Style != nil {
		c.Style = *p.Style
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Scale != nil {
		c.Scale = *p.Scale
	}
	if p.Animate != nil {
		c.Animate = *p.Animate
	}
	if p.Simulator != nil {
		c.Simulator = *p.Simulator
	}
}

// PatchFromMap builds a patch from a decoded JSON object.
// Unknown names and null values are ignored; a known name with a value of the
// wrong JSON type is a *ValidationError.
func PatchFromMap(m map[string]any) (Patch, error) {
	var p Patch
	for name, raw := range m {
		if raw == nil {
			continue
		}
		switch name {
		case FieldStyle, FieldColor:
			v, ok := raw.(string)
			if !ok {
				return Patch{}, typeError(name, "string", raw)
			}
			if name == FieldStyle {
				p.Style = &v
			} else {
				p.Color = &v
			}
		case FieldScale:
			v, ok := toFloat(raw)
			if !ok {
				return Patch{}, typeError(name, "number", raw)
			}
			p.Scale = &v
		case FieldAnimate, FieldSimulator:
			v, ok := raw.(bool)
			if !ok {
				return Patch{}, typeError(name, "boolean", raw)
			}
			if name == FieldAnimate {
				p.Animate = &v
			} else {
				p.Simulator = &v
			}
		}
	}
	return p, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func typeError(field, want string, got any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("expected %s, got %T", want, got)}
}
