package surface

import (
	"strings"

	"github.com/solatis/surfacegen/internal/enum"
)

// BuiltinNoise lists the engine's builtin noise ids usable in noise_threshold.
// Constructors do not enforce membership; Validate does for vanilla ids.
var BuiltinNoise = enum.New(
	"badlands_pillar_roof",
	"noodle_thickness",
	"badlands_surface",
	"spaghetti_3d_2",
	"spaghetti_roughness",
	"cave_cheese",
	"iceberg_surface",
	"iceberg_pillar",
	"spaghetti_3d_thickness",
	"iceberg_pillar_roof",
	"spaghetti_3d_1",
	"noodle",
	"erosion",
	"temperature",
	"soul_sand_layer",
	"ridge",
	"spaghetti_roughness_modulator",
	"powder_snow",
	"aquifer_lava",
	"ice",
	"aquifer_fluid_level_floodedness",
	"patch",
	"spaghetti_3d_rarity",
	"continentalness_large",
	"ore_gap",
	"surface_secondary",
	"ore_vein_b",
	"calcite",
	"pillar_thickness",
	"ore_vein_a",
	"cave_entrance",
	"netherrack",
	"jagged",
	"gravel",
	"nether_wart",
	"offset",
	"noodle_ridge_b",
	"spaghetti_2d_modulator",
	"badlands_pillar",
	"ore_veininess",
	"vegetation",
	"spaghetti_2d",
	"aquifer_barrier",
	"vegetation_large",
	"spaghetti_2d_elevation",
	"packed_ice",
	"spaghetti_2d_thickness",
	"continentalness",
	"gravel_layer",
	"pillar",
	"noodle_ridge_a",
	"surface_swamp",
	"cave_layer",
	"erosion_large",
	"aquifer_fluid_level_spread",
	"clay_bands_offset",
	"temperature_large",
	"pillar_rareness",
	"nether_state_selector",
	"surface",
)

// vanillaNamespace is the engine's own namespace; ids without one default to it.
const vanillaNamespace = "minecraft:"

// IsBuiltinNoise reports whether id names a builtin noise, with or without
// the vanilla namespace.
func IsBuiltinNoise(id string) bool {
	return BuiltinNoise.Has(strings.TrimPrefix(id, vanillaNamespace))
}

// knownNoise accepts builtin ids and anything in a non-vanilla namespace,
// which data packs are free to define.
func knownNoise(id string) bool {
	if IsBuiltinNoise(id) {
		return true
	}
	if strings.HasPrefix(id, vanillaNamespace) {
		return false
	}
	return strings.Contains(id, ":")
}
