package surface

import "testing"

func TestPresets_Values(t *testing.T) {
	tests := []struct {
		name string
		got  Condition
		want StoneDepthCondition
	}{
		{"on_floor", OnFloor, StoneDepthCondition{SurfaceType: SurfaceFloor}},
		{"under_floor", UnderFloor, StoneDepthCondition{SurfaceType: SurfaceFloor, AddSurfaceDepth: true}},
		{"deep_under_floor", DeepUnderFloor, StoneDepthCondition{SurfaceType: SurfaceFloor, AddSurfaceDepth: true, SecondaryDepthRange: 6}},
		{"very_deep_under_floor", VeryDeepUnderFloor, StoneDepthCondition{SurfaceType: SurfaceFloor, AddSurfaceDepth: true, SecondaryDepthRange: 30}},
		{"on_ceiling", OnCeiling, StoneDepthCondition{SurfaceType: SurfaceCeiling}},
		{"under_ceiling", UnderCeiling, StoneDepthCondition{SurfaceType: SurfaceCeiling, AddSurfaceDepth: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %#v, want %#v", tt.name, tt.got, tt.want)
			}
			c, ok := LookupPreset(tt.name)
			if !ok || c != tt.got {
				t.Errorf("LookupPreset(%q) = %#v, %v", tt.name, c, ok)
			}
		})
	}

	if AboveWater != (WaterCondition{Offset: -1}) {
		t.Errorf("AboveWater = %#v", AboveWater)
	}
}

func TestPresets_OnFloorJSON(t *testing.T) {
	want := `{"type":"stone_depth","surface_type":"floor","offset":0,"add_surface_depth":false,"secondary_depth_range":0}`
	if got := mustJSON(t, OnFloor); got != want {
		t.Errorf("OnFloor = %s, want %s", got, want)
	}
}

func TestPresets_Table(t *testing.T) {
	presets := Presets()
	if len(presets) != 7 {
		t.Fatalf("Presets() returned %d entries, want 7", len(presets))
	}
	if presets[0].Name != "on_floor" || presets[6].Name != "above_water" {
		t.Errorf("unexpected order: first %q, last %q", presets[0].Name, presets[6].Name)
	}

	presets[0] = Preset{Name: "clobbered"}
	if Presets()[0].Name != "on_floor" {
		t.Error("Presets() exposed the shared table")
	}

	if _, ok := LookupPreset("nowhere"); ok {
		t.Error("LookupPreset(unknown) ok = true")
	}
}
