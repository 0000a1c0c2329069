// internal/surface/decode.go
package surface

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

/*
 * Decoding engine JSON back into Condition and SurfaceRule values.
 *
 * Dispatch is on the "type" member. Each variant accepts exactly its own
 * field set: unknown keys fail with ErrUnknownField and absent keys with
 * ErrMissingField (only BlockState.Properties is optional). Errors carry the
 * JSON pointer of the offending node.
 *
 * Decoding is the inverse of marshaling: a decoded tree re-marshals to the
 * same bytes it was read from, given compact input in wire field order.
 */

// DecodeCondition parses a single condition node.
func DecodeCondition(data []byte) (Condition, error) {
	return decodeCondition(data, "")
}

// DecodeRule parses a surface rule tree.
func DecodeRule(data []byte) (SurfaceRule, error) {
	return decodeRule(data, "")
}

// object is one decoded JSON object with its members still raw.
type object map[string]json.RawMessage

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func fieldErr(path string, err error) error {
	return fmt.Errorf("%s: %w", pointer(path), err)
}

func parseObject(data []byte, path string) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fieldErr(path, err)
	}
	if obj == nil {
		return nil, fieldErr(path, ErrMissingField)
	}
	return obj, nil
}

func (o object) tag(path string) (string, error) {
	raw, ok := o["type"]
	if !ok {
		return "", fieldErr(path, ErrMissingDiscriminator)
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil || tag == "" {
		return "", fieldErr(path, ErrMissingDiscriminator)
	}
	return tag, nil
}

// expect checks the member set against a variant's fields. "type" is
// handled by the caller and always allowed here.
func (o object) expect(path string, required []string, optional ...string) error {
	allowed := make(map[string]bool, len(required)+len(optional)+1)
	allowed["type"] = true
	for _, f := range required {
		allowed[f] = true
	}
	for _, f := range optional {
		allowed[f] = true
	}

	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !allowed[k] {
			return fmt.Errorf("%s: %w %q", pointer(path), ErrUnknownField, k)
		}
	}
	for _, f := range required {
		if _, ok := o[f]; !ok {
			return fmt.Errorf("%s: %w %q", pointer(path), ErrMissingField, f)
		}
	}
	return nil
}

func (o object) decode(path, field string, v any) error {
	if err := json.Unmarshal(o[field], v); err != nil {
		return fieldErr(path+"/"+field, err)
	}
	return nil
}

func fields(names ...string) []string { return names }

// orNil drops v when err is set, for payload-free variants.
func orNil[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeCondition(data []byte, path string) (Condition, error) {
	o, err := parseObject(data, path)
	if err != nil {
		return nil, err
	}
	tag, err := o.tag(path)
	if err != nil {
		return nil, err
	}

	switch ConditionType(tag) {
	case ConditionAbovePreliminarySurface:
		return orNil[Condition](AbovePreliminarySurface, o.expect(path, nil))
	case ConditionHole:
		return orNil[Condition](Hole, o.expect(path, nil))
	case ConditionSteep:
		return orNil[Condition](Steep, o.expect(path, nil))
	case ConditionTemperature:
		return orNil[Condition](Temperature, o.expect(path, nil))

	case ConditionBiome:
		if err := o.expect(path, fields("biome_is")); err != nil {
			return nil, err
		}
		var c BiomeCondition
		if err := o.decode(path, "biome_is", &c.BiomeIs); err != nil {
			return nil, err
		}
		return c, nil

	case ConditionNoiseThreshold:
		if err := o.expect(path, fields("noise", "min_threshold", "max_threshold")); err != nil {
			return nil, err
		}
		var c NoiseThresholdCondition
		if err := o.decode(path, "noise", &c.Noise); err != nil {
			return nil, err
		}
		if err := o.decode(path, "min_threshold", &c.MinThreshold); err != nil {
			return nil, err
		}
		if err := o.decode(path, "max_threshold", &c.MaxThreshold); err != nil {
			return nil, err
		}
		return c, nil

	case ConditionNot:
		if err := o.expect(path, fields("invert")); err != nil {
			return nil, err
		}
		inner, err := decodeCondition(o["invert"], path+"/invert")
		if err != nil {
			return nil, err
		}
		return Not(inner), nil

	case ConditionStoneDepth:
		if err := o.expect(path, fields("surface_type", "offset", "add_surface_depth", "secondary_depth_range")); err != nil {
			return nil, err
		}
		var c StoneDepthCondition
		if err := o.decode(path, "surface_type", &c.SurfaceType); err != nil {
			return nil, err
		}
		if err := o.decode(path, "offset", &c.Offset); err != nil {
			return nil, err
		}
		if err := o.decode(path, "add_surface_depth", &c.AddSurfaceDepth); err != nil {
			return nil, err
		}
		if err := o.decode(path, "secondary_depth_range", &c.SecondaryDepthRange); err != nil {
			return nil, err
		}
		return c, nil

	case ConditionVerticalGradient:
		if err := o.expect(path, fields("random_name", "true_at_and_below", "false_at_and_above")); err != nil {
			return nil, err
		}
		var c VerticalGradientCondition
		if err := o.decode(path, "random_name", &c.RandomName); err != nil {
			return nil, err
		}
		if err := o.decode(path, "true_at_and_below", &c.TrueAtAndBelow); err != nil {
			return nil, err
		}
		if err := o.decode(path, "false_at_and_above", &c.FalseAtAndAbove); err != nil {
			return nil, err
		}
		return c, nil

	case ConditionWater:
		if err := o.expect(path, fields("offset", "surface_depth_multiplier", "add_stone_depth")); err != nil {
			return nil, err
		}
		var c WaterCondition
		if err := o.decode(path, "offset", &c.Offset); err != nil {
			return nil, err
		}
		if err := o.decode(path, "surface_depth_multiplier", &c.SurfaceDepthMultiplier); err != nil {
			return nil, err
		}
		if err := o.decode(path, "add_stone_depth", &c.AddStoneDepth); err != nil {
			return nil, err
		}
		return c, nil

	case ConditionYAbove:
		if err := o.expect(path, fields("anchor", "surface_depth_multiplier", "add_stone_depth")); err != nil {
			return nil, err
		}
		var c YAboveCondition
		if err := o.decode(path, "anchor", &c.Anchor); err != nil {
			return nil, err
		}
		if err := o.decode(path, "surface_depth_multiplier", &c.SurfaceDepthMultiplier); err != nil {
			return nil, err
		}
		if err := o.decode(path, "add_stone_depth", &c.AddStoneDepth); err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, fmt.Errorf("%s: %w %q", pointer(path+"/type"), ErrUnknownConditionType, tag)
}

func decodeRule(data []byte, path string) (SurfaceRule, error) {
	o, err := parseObject(data, path)
	if err != nil {
		return nil, err
	}
	tag, err := o.tag(path)
	if err != nil {
		return nil, err
	}

	switch RuleType(tag) {
	case RuleBadlands:
		return orNil[SurfaceRule](Badlands, o.expect(path, nil))

	case RuleBlock:
		if err := o.expect(path, fields("result_state")); err != nil {
			return nil, err
		}
		state, err := decodeBlockState(o["result_state"], path+"/result_state")
		if err != nil {
			return nil, err
		}
		return BlockSurfaceRule{ResultState: state}, nil

	case RuleCondition:
		if err := o.expect(path, fields("if_true", "then_run")); err != nil {
			return nil, err
		}
		cond, err := decodeCondition(o["if_true"], path+"/if_true")
		if err != nil {
			return nil, err
		}
		then, err := decodeRule(o["then_run"], path+"/then_run")
		if err != nil {
			return nil, err
		}
		// Built directly: If would not re-wrap a single child anyway, and a
		// decoded then_run sequence must stay a sequence.
		return ConditionSurfaceRule{IfTrue: cond, ThenRun: then}, nil

	case RuleSequence:
		if err := o.expect(path, fields("sequence")); err != nil {
			return nil, err
		}
		var raws []json.RawMessage
		if err := o.decode(path, "sequence", &raws); err != nil {
			return nil, err
		}
		seq := make([]SurfaceRule, 0, len(raws))
		for i, raw := range raws {
			r, err := decodeRule(raw, fmt.Sprintf("%s/sequence/%d", path, i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, r)
		}
		return SequenceSurfaceRule{Sequence: seq}, nil
	}

	return nil, fmt.Errorf("%s: %w %q", pointer(path+"/type"), ErrUnknownRuleType, tag)
}

func decodeBlockState(data []byte, path string) (BlockState, error) {
	o, err := parseObject(data, path)
	if err != nil {
		return BlockState{}, err
	}
	if _, ok := o["type"]; ok {
		return BlockState{}, fmt.Errorf("%s: %w %q", pointer(path), ErrUnknownField, "type")
	}
	if err := o.expect(path, fields("Name"), "Properties"); err != nil {
		return BlockState{}, err
	}
	var s BlockState
	if err := o.decode(path, "Name", &s.Name); err != nil {
		return BlockState{}, err
	}
	if _, ok := o["Properties"]; ok {
		if err := o.decode(path, "Properties", &s.Properties); err != nil {
			return BlockState{}, err
		}
		if s.Properties == nil {
			s.Properties = map[string]string{}
		}
	}
	return s, nil
}
