// Package surface models surface rule trees for the terrain generator's
// data loader.
//
// Conditions and surface rules are closed sum types: each variant is a plain
// value type implementing a sealed interface, and each marshals to a JSON
// object whose first member is the variant's "type" tag. Trees are assembled
// bottom-up with the constructors in this package and handed whole to a
// serializer (see internal/render).
//
// Constructors are permissive: they stamp tags and copy fields without range
// checks. Validate reports shape problems for callers that want them.
package surface

import "github.com/solatis/surfacegen/internal/enum"

// ConditionType is the discriminant of a Condition.
type ConditionType string

const (
	ConditionAbovePreliminarySurface ConditionType = "above_preliminary_surface"
	ConditionBiome                   ConditionType = "biome"
	ConditionHole                    ConditionType = "hole"
	ConditionNoiseThreshold          ConditionType = "noise_threshold"
	ConditionNot                     ConditionType = "not"
	ConditionSteep                   ConditionType = "steep"
	ConditionStoneDepth              ConditionType = "stone_depth"
	ConditionTemperature             ConditionType = "temperature"
	ConditionVerticalGradient        ConditionType = "vertical_gradient"
	ConditionWater                   ConditionType = "water"
	ConditionYAbove                  ConditionType = "y_above"
)

// ConditionTypes is the closed set of condition tags.
var ConditionTypes = enum.New(
	ConditionAbovePreliminarySurface,
	ConditionBiome,
	ConditionHole,
	ConditionNoiseThreshold,
	ConditionNot,
	ConditionSteep,
	ConditionStoneDepth,
	ConditionTemperature,
	ConditionVerticalGradient,
	ConditionWater,
	ConditionYAbove,
)

// RuleType is the discriminant of a SurfaceRule.
type RuleType string

const (
	RuleBadlands  RuleType = "badlands"
	RuleBlock     RuleType = "block"
	RuleCondition RuleType = "condition"
	RuleSequence  RuleType = "sequence"
)

// RuleTypes is the closed set of surface rule tags.
var RuleTypes = enum.New(
	RuleBadlands,
	RuleBlock,
	RuleCondition,
	RuleSequence,
)

// SurfaceType selects which surface a stone_depth condition measures from.
type SurfaceType string

const (
	SurfaceFloor   SurfaceType = "floor"
	SurfaceCeiling SurfaceType = "ceiling"
)

// SurfaceTypes is the closed set of stone_depth surface types.
var SurfaceTypes = enum.New(SurfaceFloor, SurfaceCeiling)

// MaxTreeDepth bounds nesting accepted by Validate.
// 64 levels is far beyond hand-written trees and keeps recursive walks shallow.
const MaxTreeDepth = 64
