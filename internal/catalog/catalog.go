// Package catalog holds named example surface trees assembled from the
// builder in internal/surface.
package catalog

import (
	"errors"
	"fmt"

	"github.com/solatis/surfacegen/internal/surface"
)

// ErrUnknownTree indicates a name with no catalog entry.
var ErrUnknownTree = errors.New("unknown tree")

// Default is the tree printed when none is named.
const Default = "fungal_forest"

type entry struct {
	name  string
	build func() surface.SurfaceRule
}

// Trees are rebuilt on every call so callers never share slices.
var entries = []entry{
	{name: "fungal_forest", build: FungalForest},
	{name: "mycelial_caves", build: MycelialCaves},
}

// Names lists the catalog in declaration order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Build returns the named tree.
func Build(name string) (surface.SurfaceRule, error) {
	for _, e := range entries {
		if e.name == name {
			return e.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTree, name)
}

// FungalForest covers the fungal forest biome: mycelial sand on dry floors,
// sand on and under the floor, sandstone deeper down.
func FungalForest() surface.SurfaceRule {
	return surface.If(
		surface.Biome("wwizardry:fungal_forest"),
		surface.Sequence(
			surface.If(
				surface.AboveWater,
				surface.If(
					surface.OnFloor,
					surface.Block("wwizardry:mycelial_sand"),
				),
			),
			surface.If(
				surface.OnFloor,
				surface.Block("sand"),
			),
			surface.If(
				surface.UnderFloor,
				surface.Block("sand"),
			),
			surface.If(
				surface.DeepUnderFloor,
				surface.Block("sandstone"),
			),
		),
	)
}

// MycelialCaves decorates cave biomes: glowing caps on ceilings above a
// noise band, moss on flat floors, and a deepslate fade near the bottom.
func MycelialCaves() surface.SurfaceRule {
	return surface.If(
		surface.Biome("wwizardry:mycelial_caves", "wwizardry:glowing_hollow"),
		surface.If(
			surface.Not(surface.Hole),
			surface.If(
				surface.OnCeiling,
				surface.If(
					surface.NoiseThreshold("cave_layer", -0.2, 0.4),
					surface.BlockWithProperties("wwizardry:glowcap_block", map[string]string{
						"up":   "true",
						"down": "false",
					}),
				),
				surface.Block("minecraft:mushroom_stem"),
			),
			surface.If(
				surface.OnFloor,
				surface.If(
					surface.Not(surface.Steep),
					surface.Block("minecraft:moss_block"),
				),
				surface.Block("minecraft:tuff"),
			),
		),
		surface.If(
			surface.YAbove(surface.YAboveOptions{
				Anchor:                 surface.Absolute(48),
				SurfaceDepthMultiplier: 1,
				AddStoneDepth:          true,
			}),
			surface.Badlands,
		),
		surface.If(
			surface.VerticalGradient("wwizardry:caves_deepslate", surface.VerticalGradientOptions{
				TrueAtAndBelow:  surface.AboveBottom(0),
				FalseAtAndAbove: surface.Absolute(8),
			}),
			surface.BlockWithProperties("minecraft:deepslate", map[string]string{
				"axis": "y",
			}),
		),
	)
}
