// internal/surface/rule.go
package surface

import "github.com/goccy/go-json"

/*
 * Surface rule variants and constructors.
 *
 * If is the one normalizing constructor: a single then-rule becomes then_run
 * directly, several are wrapped in an implicit sequence. The two shapes
 * serialize differently, so the length-1 case must never be wrapped.
 *
 * Sequence order is evaluation order (first match wins in the engine) and is
 * never sorted or deduplicated.
 */

// SurfaceRule is a decision node that places a block or delegates to children.
type SurfaceRule interface {
	RuleType() RuleType
	isSurfaceRule()
}

// BadlandsSurfaceRule places the badlands terracotta bands.
type BadlandsSurfaceRule struct{}

// Badlands is the shared badlands rule.
var Badlands = BadlandsSurfaceRule{}

// BlockState is the engine's block state reference. Field names follow the
// engine's capitalized convention.
type BlockState struct {
	Name string
	// Properties is omitted from the wire form when nil and written as {}
	// when empty.
	Properties map[string]string
}

// MarshalJSON implements json.Marshaler.
func (s BlockState) MarshalJSON() ([]byte, error) {
	if s.Properties == nil {
		return json.MarshalNoEscape(struct {
			Name string `json:"Name"`
		}{s.Name})
	}
	return json.MarshalNoEscape(struct {
		Name       string            `json:"Name"`
		Properties map[string]string `json:"Properties"`
	}{s.Name, s.Properties})
}

// BlockSurfaceRule places ResultState.
type BlockSurfaceRule struct {
	ResultState BlockState `json:"result_state"`
}

// Block builds a block rule without properties.
func Block(name string) BlockSurfaceRule {
	return BlockSurfaceRule{ResultState: BlockState{Name: name}}
}

// BlockWithProperties builds a block rule carrying block state properties.
// A nil map behaves like Block; an empty non-nil map is kept and written as {}.
func BlockWithProperties(name string, properties map[string]string) BlockSurfaceRule {
	var props map[string]string
	if properties != nil {
		props = make(map[string]string, len(properties))
		for k, v := range properties {
			props[k] = v
		}
	}
	return BlockSurfaceRule{ResultState: BlockState{Name: name, Properties: props}}
}

// ConditionSurfaceRule runs ThenRun when IfTrue matches.
type ConditionSurfaceRule struct {
	IfTrue  Condition   `json:"if_true"`
	ThenRun SurfaceRule `json:"then_run"`
}

// If builds a condition rule. With no extra rules, then becomes then_run as
// is; otherwise then and more are wrapped, in order, in a sequence.
func If(ifTrue Condition, then SurfaceRule, more ...SurfaceRule) ConditionSurfaceRule {
	if len(more) == 0 {
		return ConditionSurfaceRule{IfTrue: ifTrue, ThenRun: then}
	}
	rules := make([]SurfaceRule, 0, 1+len(more))
	rules = append(rules, then)
	rules = append(rules, more...)
	return ConditionSurfaceRule{IfTrue: ifTrue, ThenRun: SequenceSurfaceRule{Sequence: rules}}
}

// SequenceSurfaceRule runs the first child rule that produces a block.
type SequenceSurfaceRule struct {
	Sequence []SurfaceRule `json:"sequence"`
}

// Sequence builds a sequence rule in call order.
func Sequence(rules ...SurfaceRule) SequenceSurfaceRule {
	seq := make([]SurfaceRule, len(rules))
	copy(seq, rules)
	return SequenceSurfaceRule{Sequence: seq}
}

func (BadlandsSurfaceRule) RuleType() RuleType  { return RuleBadlands }
func (BlockSurfaceRule) RuleType() RuleType     { return RuleBlock }
func (ConditionSurfaceRule) RuleType() RuleType { return RuleCondition }
func (SequenceSurfaceRule) RuleType() RuleType  { return RuleSequence }

func (BadlandsSurfaceRule) isSurfaceRule()  {}
func (BlockSurfaceRule) isSurfaceRule()     {}
func (ConditionSurfaceRule) isSurfaceRule() {}
func (SequenceSurfaceRule) isSurfaceRule()  {}

func (r BadlandsSurfaceRule) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(r.RuleType()), struct{}{})
}

func (r BlockSurfaceRule) MarshalJSON() ([]byte, error) {
	type payload BlockSurfaceRule
	return marshalTagged(string(r.RuleType()), payload(r))
}

func (r ConditionSurfaceRule) MarshalJSON() ([]byte, error) {
	type payload ConditionSurfaceRule
	return marshalTagged(string(r.RuleType()), payload(r))
}

func (r SequenceSurfaceRule) MarshalJSON() ([]byte, error) {
	type payload SequenceSurfaceRule
	p := payload(r)
	if p.Sequence == nil {
		p.Sequence = []SurfaceRule{}
	}
	return marshalTagged(string(r.RuleType()), p)
}
