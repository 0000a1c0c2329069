package surface

import "errors"

// Sentinel errors for decoding and linting surface trees.
var (
	// ErrMissingDiscriminator indicates a node without a string "type" field.
	ErrMissingDiscriminator = errors.New("node has no type discriminator")

	// ErrUnknownConditionType indicates a condition tag outside ConditionTypes.
	ErrUnknownConditionType = errors.New("unknown condition type")

	// ErrUnknownRuleType indicates a surface rule tag outside RuleTypes.
	ErrUnknownRuleType = errors.New("unknown surface rule type")

	// ErrUnknownField indicates a key the node's variant does not define.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingField indicates a field the node's variant requires.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidAnchor indicates a relative position with zero or several fields set.
	ErrInvalidAnchor = errors.New("relative position must set exactly one of above_bottom, below_top, absolute")

	// ErrEmptyBiomeList indicates a biome condition matching no biome.
	ErrEmptyBiomeList = errors.New("biome_is is empty")

	// ErrThresholdRange indicates min_threshold greater than max_threshold.
	ErrThresholdRange = errors.New("min_threshold exceeds max_threshold")

	// ErrUnknownNoise indicates a vanilla noise id outside BuiltinNoise.
	ErrUnknownNoise = errors.New("noise is not in the builtin catalog")

	// ErrEmptyBlockName indicates a block rule with an empty result_state.Name.
	ErrEmptyBlockName = errors.New("block name is empty")

	// ErrInvalidSurfaceType indicates a stone_depth surface_type outside SurfaceTypes.
	ErrInvalidSurfaceType = errors.New("invalid surface_type")

	// ErrMissingChild indicates a nil condition or rule inside a tree.
	ErrMissingChild = errors.New("missing child node")

	// ErrTreeTooDeep indicates nesting beyond MaxTreeDepth.
	ErrTreeTooDeep = errors.New("tree exceeds maximum depth")
)
