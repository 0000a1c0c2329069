package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/solatis/surfacegen/internal/surface"
)

const endToEnd = `{
    "type": "condition",
    "if_true": {
        "type": "biome",
        "biome_is": [
            "x"
        ]
    },
    "then_run": {
        "type": "condition",
        "if_true": {
            "type": "stone_depth",
            "surface_type": "floor",
            "offset": 0,
            "add_surface_depth": false,
            "secondary_depth_range": 0
        },
        "then_run": {
            "type": "block",
            "result_state": {
                "Name": "sand"
            }
        }
    }
}`

func endToEndTree() surface.SurfaceRule {
	return surface.If(surface.Biome("x"), surface.If(surface.OnFloor, surface.Block("sand")))
}

func TestJSON_EndToEnd(t *testing.T) {
	got, err := JSON(endToEndTree(), WithIndent(4))
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if string(got) != endToEnd {
		t.Errorf("JSON() =\n%s\nwant:\n%s", got, endToEnd)
	}
}

func TestJSON_Indent(t *testing.T) {
	tree := surface.Block("a")
	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{"compact", 0, `{"type":"block","result_state":{"Name":"a"}}`},
		{"negative clamps to compact", -3, `{"type":"block","result_state":{"Name":"a"}}`},
		{"two", 2, "{\n  \"type\": \"block\",\n  \"result_state\": {\n    \"Name\": \"a\"\n  }\n}"},
		{"clamped to ten", 25, "{\n" + strings.Repeat(" ", 10) + "\"type\": \"block\",\n" + strings.Repeat(" ", 10) + "\"result_state\": {\n" + strings.Repeat(" ", 20) + "\"Name\": \"a\"\n" + strings.Repeat(" ", 10) + "}\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSON(tree, WithIndent(tt.indent))
			if err != nil {
				t.Fatalf("JSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("JSON() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestJSON_EmptyContainers(t *testing.T) {
	got, err := JSON(surface.If(surface.BiomeCondition{}, surface.Sequence()), WithIndent(2))
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"type\": \"condition\",\n  \"if_true\": {\n    \"type\": \"biome\",\n    \"biome_is\": []\n  },\n  \"then_run\": {\n    \"type\": \"sequence\",\n    \"sequence\": []\n  }\n}"
	if string(got) != want {
		t.Errorf("JSON() =\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON_Replacer(t *testing.T) {
	var keys []string
	dropNames := func(key string, v any) (any, bool) {
		keys = append(keys, key)
		if key == "Name" {
			return nil, false
		}
		if s, ok := v.(string); ok && s == "biome" {
			return "BIOME", true
		}
		return v, true
	}

	got, err := JSON(endToEndTree(), WithReplacer(dropNames))
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := `{"type":"condition","if_true":{"type":"BIOME","biome_is":["x"]},"then_run":{"type":"condition","if_true":{"type":"stone_depth","surface_type":"floor","offset":0,"add_surface_depth":false,"secondary_depth_range":0},"then_run":{"type":"block","result_state":{}}}}`
	if string(got) != want {
		t.Errorf("JSON() = %s\nwant %s", got, want)
	}
	if keys[0] != "" || keys[1] != "type" {
		t.Errorf("replacer visit order starts %q, want root then type", keys[:2])
	}

	dropArray := func(key string, v any) (any, bool) { return v, key != "0" }
	got, err = JSON(surface.Biome("a", "b"), WithReplacer(dropArray))
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if string(got) != `{"type":"biome","biome_is":[null,"b"]}` {
		t.Errorf("dropped array element = %s", got)
	}

	if _, err := JSON(surface.Badlands, WithReplacer(func(string, any) (any, bool) { return nil, false })); err == nil {
		t.Error("dropping the root error = nil")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, surface.Badlands); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != "{\"type\":\"badlands\"}\n" {
		t.Errorf("Write() = %q", buf.String())
	}
}

func TestJSON_ErrorPropagates(t *testing.T) {
	if _, err := JSON(surface.If(surface.YAbove(surface.YAboveOptions{}), surface.Badlands)); err == nil {
		t.Error("JSON(unset anchor) error = nil")
	}
}

// Property-based test: parsing rendered output and rendering it again
// with the same indent is byte-identical.
func TestJSON_PropertyRoundTripStable(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("parse and re-render is stable", prop.ForAll(
		func(indent int, depth int, name string, min float64, props map[string]string) bool {
			var rule surface.SurfaceRule = surface.BlockWithProperties(name, props)
			for i := 0; i < depth; i++ {
				switch i % 3 {
				case 0:
					rule = surface.If(surface.NoiseThreshold("surface", min, min+1), rule)
				case 1:
					rule = surface.If(surface.DeepUnderFloor, rule, surface.Badlands)
				default:
					rule = surface.If(surface.Biome(name, "b<&>"), rule)
				}
			}

			first, err := JSON(rule, WithIndent(indent))
			if err != nil {
				return false
			}
			tree, err := Parse(first)
			if err != nil {
				return false
			}
			second, err := JSON(tree, WithIndent(indent))
			if err != nil {
				return false
			}
			return bytes.Equal(first, second)
		},
		gen.IntRange(0, 12),
		gen.IntRange(0, 6),
		gen.AnyString(),
		gen.Float64Range(-10, 10),
		gen.MapOf(gen.AlphaString(), gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`{"b":1,"a":[true,null,"s",2.50]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("Parse() = %T, want Object", v)
	}
	if got := strings.Join(obj.Keys(), ","); got != "b,a" {
		t.Errorf("Keys() = %s, want b,a", got)
	}
	arr, _ := obj.Get("a")
	if n := arr.([]any)[3]; n != json.Number("2.50") {
		t.Errorf("number literal = %#v, want 2.50", n)
	}
	if _, ok := obj.Get("missing"); ok {
		t.Error("Get(missing) ok = true")
	}

	out, err := JSON(v)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if string(out) != `{"b":1,"a":[true,null,"s",2.50]}` {
		t.Errorf("re-render = %s", out)
	}

	for _, bad := range []string{``, `{`, `{"a":1} {}`} {
		if _, err := Parse([]byte(bad)); err == nil {
			t.Errorf("Parse(%q) error = nil", bad)
		}
	}
}

func TestPlain(t *testing.T) {
	v, err := Parse([]byte(`{"n":3,"o":{"k":[1.5]}}`))
	if err != nil {
		t.Fatal(err)
	}
	plain := Plain(v).(map[string]any)
	if plain["n"] != float64(3) {
		t.Errorf("n = %#v", plain["n"])
	}
	inner := plain["o"].(map[string]any)["k"].([]any)
	if inner[0] != 1.5 {
		t.Errorf("k[0] = %#v", inner[0])
	}
}
