package surface

// Common stone_depth and water conditions. Values are plain structs, so
// sharing them across trees never aliases mutable state.
var (
	// OnFloor matches the topmost floor layer.
	OnFloor = StoneDepth(SurfaceFloor, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     false,
		SecondaryDepthRange: 0,
	})

	// UnderFloor matches the floor down to the surface depth.
	UnderFloor = StoneDepth(SurfaceFloor, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     true,
		SecondaryDepthRange: 0,
	})

	// DeepUnderFloor extends UnderFloor by a secondary range of 6.
	DeepUnderFloor = StoneDepth(SurfaceFloor, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     true,
		SecondaryDepthRange: 6,
	})

	// VeryDeepUnderFloor extends UnderFloor by a secondary range of 30.
	VeryDeepUnderFloor = StoneDepth(SurfaceFloor, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     true,
		SecondaryDepthRange: 30,
	})

	// OnCeiling matches the lowest ceiling layer.
	OnCeiling = StoneDepth(SurfaceCeiling, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     false,
		SecondaryDepthRange: 0,
	})

	// UnderCeiling matches the ceiling up to the surface depth.
	UnderCeiling = StoneDepth(SurfaceCeiling, StoneDepthOptions{
		Offset:              0,
		AddSurfaceDepth:     true,
		SecondaryDepthRange: 0,
	})

	// AboveWater matches positions no lower than one block under the fluid level.
	AboveWater = Water(WaterOptions{
		Offset:                 -1,
		SurfaceDepthMultiplier: 0,
		AddStoneDepth:          false,
	})
)

// Preset is a named, shared condition.
type Preset struct {
	Name      string
	Condition Condition
}

var presetTable = []Preset{
	{Name: "on_floor", Condition: OnFloor},
	{Name: "under_floor", Condition: UnderFloor},
	{Name: "deep_under_floor", Condition: DeepUnderFloor},
	{Name: "very_deep_under_floor", Condition: VeryDeepUnderFloor},
	{Name: "on_ceiling", Condition: OnCeiling},
	{Name: "under_ceiling", Condition: UnderCeiling},
	{Name: "above_water", Condition: AboveWater},
}

// Presets returns the preset table in declaration order. The slice is a copy.
func Presets() []Preset {
	out := make([]Preset, len(presetTable))
	copy(out, presetTable)
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Condition, bool) {
	for _, p := range presetTable {
		if p.Name == name {
			return p.Condition, true
		}
	}
	return nil, false
}
