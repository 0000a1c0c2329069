package render

import (
	"bytes"
	"testing"

	"github.com/solatis/surfacegen/internal/surface"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestProtoValue(t *testing.T) {
	pv, err := ProtoValue(surface.If(surface.Biome("x"), surface.Block("sand")))
	if err != nil {
		t.Fatalf("ProtoValue() error = %v", err)
	}
	fields := pv.GetStructValue().GetFields()
	if fields["type"].GetStringValue() != "condition" {
		t.Errorf("type = %v", fields["type"])
	}
	biomes := fields["if_true"].GetStructValue().GetFields()["biome_is"].GetListValue().GetValues()
	if len(biomes) != 1 || biomes[0].GetStringValue() != "x" {
		t.Errorf("biome_is = %v", biomes)
	}
}

func TestProto_Deterministic(t *testing.T) {
	tree := surface.If(surface.DeepUnderFloor, surface.BlockWithProperties("log", map[string]string{"axis": "y", "waterlogged": "false"}))

	first, err := Proto(tree)
	if err != nil {
		t.Fatalf("Proto() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Proto(tree)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Proto() output is not deterministic")
		}
	}

	var back structpb.Value
	if err := proto.Unmarshal(first, &back); err != nil {
		t.Fatalf("proto.Unmarshal() error = %v", err)
	}
	depth := back.GetStructValue().GetFields()["if_true"].GetStructValue().GetFields()["secondary_depth_range"]
	if depth.GetNumberValue() != 6 {
		t.Errorf("secondary_depth_range = %v, want 6", depth)
	}
}
