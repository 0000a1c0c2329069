package catalog

import (
	"errors"
	"testing"

	"github.com/solatis/surfacegen/internal/render"
	"github.com/solatis/surfacegen/internal/surface"
)

const (
	onFloor        = `{"type":"stone_depth","surface_type":"floor","offset":0,"add_surface_depth":false,"secondary_depth_range":0}`
	underFloor     = `{"type":"stone_depth","surface_type":"floor","offset":0,"add_surface_depth":true,"secondary_depth_range":0}`
	deepUnderFloor = `{"type":"stone_depth","surface_type":"floor","offset":0,"add_surface_depth":true,"secondary_depth_range":6}`
	aboveWater     = `{"type":"water","offset":-1,"surface_depth_multiplier":0,"add_stone_depth":false}`
)

func block(name string) string {
	return `{"type":"block","result_state":{"Name":"` + name + `"}}`
}

func cond(ifTrue, thenRun string) string {
	return `{"type":"condition","if_true":` + ifTrue + `,"then_run":` + thenRun + `}`
}

func TestFungalForest(t *testing.T) {
	want := cond(`{"type":"biome","biome_is":["wwizardry:fungal_forest"]}`,
		`{"type":"sequence","sequence":[`+
			cond(aboveWater, cond(onFloor, block("wwizardry:mycelial_sand")))+","+
			cond(onFloor, block("sand"))+","+
			cond(underFloor, block("sand"))+","+
			cond(deepUnderFloor, block("sandstone"))+
			`]}`)

	got, err := render.JSON(FungalForest())
	if err != nil {
		t.Fatalf("render.JSON() error = %v", err)
	}
	if string(got) != want {
		t.Errorf("FungalForest() =\n%s\nwant:\n%s", got, want)
	}
}

func TestCatalog_BuildAll(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != Default {
		t.Fatalf("Names() = %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			tree, err := Build(name)
			if err != nil {
				t.Fatalf("Build(%q) error = %v", name, err)
			}
			if err := surface.Validate(tree); err != nil {
				t.Errorf("Validate(%s) error = %v", name, err)
			}

			data, err := render.JSON(tree)
			if err != nil {
				t.Fatalf("render.JSON() error = %v", err)
			}
			back, err := surface.DecodeRule(data)
			if err != nil {
				t.Fatalf("DecodeRule() error = %v", err)
			}
			again, err := render.JSON(back)
			if err != nil {
				t.Fatal(err)
			}
			if string(again) != string(data) {
				t.Errorf("decode round trip changed %s", name)
			}
		})
	}
}

func TestBuild_Unknown(t *testing.T) {
	if _, err := Build("nether_wastes"); !errors.Is(err, ErrUnknownTree) {
		t.Errorf("Build(unknown) error = %v, want ErrUnknownTree", err)
	}
}

func TestBuild_FreshTrees(t *testing.T) {
	a, _ := Build(Default)
	b, _ := Build(Default)
	seqA := a.(surface.ConditionSurfaceRule).ThenRun.(surface.SequenceSurfaceRule)
	seqA.Sequence[0] = surface.Badlands
	seqB := b.(surface.ConditionSurfaceRule).ThenRun.(surface.SequenceSurfaceRule)
	if seqB.Sequence[0] == surface.Badlands {
		t.Error("Build() returned shared slices")
	}
}
