// internal/surface/condition.go
package surface

/*
 * Condition variants and constructors.
 *
 * Condition is sealed: only the eleven variant types below implement it.
 * Multi-field variants take their discriminating argument directly and the
 * remaining fields through an options struct whose zero value is the
 * default. No range or consistency checks happen here (see validate.go).
 *
 * Field order in each struct is the wire order after "type".
 */

// Condition is a predicate node evaluated by the engine.
type Condition interface {
	ConditionType() ConditionType
	isCondition()
}

// AbovePreliminarySurfaceCondition matches above the preliminary surface.
type AbovePreliminarySurfaceCondition struct{}

// HoleCondition matches where the surface depth is zero or less.
type HoleCondition struct{}

// SteepCondition matches steep slopes.
type SteepCondition struct{}

// TemperatureCondition matches where snow can form.
type TemperatureCondition struct{}

// Singleton conditions with no payload.
var (
	AbovePreliminarySurface = AbovePreliminarySurfaceCondition{}
	Hole                    = HoleCondition{}
	Steep                   = SteepCondition{}
	Temperature             = TemperatureCondition{}
)

// BiomeCondition matches when the current biome is any of BiomeIs.
type BiomeCondition struct {
	BiomeIs []string `json:"biome_is"`
}

// Biome builds a biome condition. At least one biome id is required by the
// signature; order is kept.
func Biome(first string, more ...string) BiomeCondition {
	ids := make([]string, 0, 1+len(more))
	ids = append(ids, first)
	ids = append(ids, more...)
	return BiomeCondition{BiomeIs: ids}
}

// NoiseThresholdCondition matches when Noise samples within the bounds.
type NoiseThresholdCondition struct {
	Noise        string  `json:"noise"`
	MinThreshold float64 `json:"min_threshold"`
	MaxThreshold float64 `json:"max_threshold"`
}

// NoiseThreshold builds a noise_threshold condition. min <= max is not checked.
func NoiseThreshold(noise string, min, max float64) NoiseThresholdCondition {
	return NoiseThresholdCondition{Noise: noise, MinThreshold: min, MaxThreshold: max}
}

// NotCondition negates Invert.
type NotCondition struct {
	Invert Condition `json:"invert"`
}

// Not builds a negation.
func Not(invert Condition) NotCondition {
	return NotCondition{Invert: invert}
}

// StoneDepthCondition matches by depth into stone from a floor or ceiling.
type StoneDepthCondition struct {
	SurfaceType         SurfaceType `json:"surface_type"`
	Offset              int         `json:"offset"`
	AddSurfaceDepth     bool        `json:"add_surface_depth"`
	SecondaryDepthRange int         `json:"secondary_depth_range"`
}

// StoneDepthOptions holds the non-discriminating stone_depth fields.
type StoneDepthOptions struct {
	Offset              int
	AddSurfaceDepth     bool
	SecondaryDepthRange int
}

// StoneDepth builds a stone_depth condition.
func StoneDepth(surfaceType SurfaceType, opts StoneDepthOptions) StoneDepthCondition {
	return StoneDepthCondition{
		SurfaceType:         surfaceType,
		Offset:              opts.Offset,
		AddSurfaceDepth:     opts.AddSurfaceDepth,
		SecondaryDepthRange: opts.SecondaryDepthRange,
	}
}

// VerticalGradientCondition fades from true to false between two heights,
// randomized by RandomName.
type VerticalGradientCondition struct {
	RandomName      string           `json:"random_name"`
	TrueAtAndBelow  RelativePosition `json:"true_at_and_below"`
	FalseAtAndAbove RelativePosition `json:"false_at_and_above"`
}

// VerticalGradientOptions holds the gradient bounds.
type VerticalGradientOptions struct {
	TrueAtAndBelow  RelativePosition
	FalseAtAndAbove RelativePosition
}

// VerticalGradient builds a vertical_gradient condition.
func VerticalGradient(randomName string, opts VerticalGradientOptions) VerticalGradientCondition {
	return VerticalGradientCondition{
		RandomName:      randomName,
		TrueAtAndBelow:  opts.TrueAtAndBelow,
		FalseAtAndAbove: opts.FalseAtAndAbove,
	}
}

// WaterCondition matches relative to the fluid level above the position.
type WaterCondition struct {
	Offset                 int  `json:"offset"`
	SurfaceDepthMultiplier int  `json:"surface_depth_multiplier"`
	AddStoneDepth          bool `json:"add_stone_depth"`
}

// WaterOptions holds the water fields.
type WaterOptions struct {
	Offset                 int
	SurfaceDepthMultiplier int
	AddStoneDepth          bool
}

// Water builds a water condition.
func Water(opts WaterOptions) WaterCondition {
	return WaterCondition{
		Offset:                 opts.Offset,
		SurfaceDepthMultiplier: opts.SurfaceDepthMultiplier,
		AddStoneDepth:          opts.AddStoneDepth,
	}
}

// YAboveCondition matches at or above Anchor.
type YAboveCondition struct {
	Anchor                 RelativePosition `json:"anchor"`
	SurfaceDepthMultiplier int              `json:"surface_depth_multiplier"`
	AddStoneDepth          bool             `json:"add_stone_depth"`
}

// YAboveOptions holds the y_above fields.
type YAboveOptions struct {
	Anchor                 RelativePosition
	SurfaceDepthMultiplier int
	AddStoneDepth          bool
}

// YAbove builds a y_above condition.
func YAbove(opts YAboveOptions) YAboveCondition {
	return YAboveCondition{
		Anchor:                 opts.Anchor,
		SurfaceDepthMultiplier: opts.SurfaceDepthMultiplier,
		AddStoneDepth:          opts.AddStoneDepth,
	}
}

func (AbovePreliminarySurfaceCondition) ConditionType() ConditionType {
	return ConditionAbovePreliminarySurface
}
func (BiomeCondition) ConditionType() ConditionType            { return ConditionBiome }
func (HoleCondition) ConditionType() ConditionType             { return ConditionHole }
func (NoiseThresholdCondition) ConditionType() ConditionType   { return ConditionNoiseThreshold }
func (NotCondition) ConditionType() ConditionType              { return ConditionNot }
func (SteepCondition) ConditionType() ConditionType            { return ConditionSteep }
func (StoneDepthCondition) ConditionType() ConditionType       { return ConditionStoneDepth }
func (TemperatureCondition) ConditionType() ConditionType      { return ConditionTemperature }
func (VerticalGradientCondition) ConditionType() ConditionType { return ConditionVerticalGradient }
func (WaterCondition) ConditionType() ConditionType            { return ConditionWater }
func (YAboveCondition) ConditionType() ConditionType           { return ConditionYAbove }

func (AbovePreliminarySurfaceCondition) isCondition() {}
func (BiomeCondition) isCondition()                   {}
func (HoleCondition) isCondition()                    {}
func (NoiseThresholdCondition) isCondition()          {}
func (NotCondition) isCondition()                     {}
func (SteepCondition) isCondition()                   {}
func (StoneDepthCondition) isCondition()              {}
func (TemperatureCondition) isCondition()             {}
func (VerticalGradientCondition) isCondition()        {}
func (WaterCondition) isCondition()                   {}
func (YAboveCondition) isCondition()                  {}

// MarshalJSON implementations: each converts to a method-less payload type
// and lets marshalTagged prepend the tag.

func (c AbovePreliminarySurfaceCondition) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(c.ConditionType()), struct{}{})
}

func (c BiomeCondition) MarshalJSON() ([]byte, error) {
	type payload BiomeCondition
	p := payload(c)
	if p.BiomeIs == nil {
		p.BiomeIs = []string{}
	}
	return marshalTagged(string(c.ConditionType()), p)
}

func (c HoleCondition) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(c.ConditionType()), struct{}{})
}

func (c NoiseThresholdCondition) MarshalJSON() ([]byte, error) {
	type payload NoiseThresholdCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}

func (c NotCondition) MarshalJSON() ([]byte, error) {
	type payload NotCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}

func (c SteepCondition) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(c.ConditionType()), struct{}{})
}

func (c StoneDepthCondition) MarshalJSON() ([]byte, error) {
	type payload StoneDepthCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}

func (c TemperatureCondition) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(c.ConditionType()), struct{}{})
}

func (c VerticalGradientCondition) MarshalJSON() ([]byte, error) {
	type payload VerticalGradientCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}

func (c WaterCondition) MarshalJSON() ([]byte, error) {
	type payload WaterCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}

func (c YAboveCondition) MarshalJSON() ([]byte, error) {
	type payload YAboveCondition
	return marshalTagged(string(c.ConditionType()), payload(c))
}
