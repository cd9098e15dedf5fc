package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/ugraph/pkg/graph"
)

func twoNodeGraph(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g, err := graph.NewFromPairs([]string{"A", "B"}, [][2]string{{"A", "B"}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func marshalString[N comparable](t *testing.T, g *graph.Graph[N], opts Options[N]) string {
	t.Helper()
	out, err := Marshal(g, opts)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestMarshalFlat(t *testing.T) {
	got := marshalString(t, twoNodeGraph(t), Options[string]{})
	want := "graph {\n  \"A\" [];\n  \"B\" [];\n  \"A\" -- \"B\" [];\n}\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalName(t *testing.T) {
	got := marshalString(t, graph.New[string](), Options[string]{Name: "my graph"})
	want := "graph \"my graph\" {\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalGraphStyle(t *testing.T) {
	got := marshalString(t, graph.New[string](), Options[string]{
		GraphStyle: Attrs{"rankdir": "TB", "bgcolor": "white"},
	})
	// Keys render in sorted order, one statement per line.
	want := "graph {\n  \"bgcolor\"=\"white\";\n  \"rankdir\"=\"TB\";\n}\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalNodeAndLinkStyles(t *testing.T) {
	g := twoNodeGraph(t)
	got := marshalString(t, g, Options[string]{
		NodeStyles: map[string]Style{"A": Attrs{"color": "red", "shape": "box"}},
		LinkStyles: map[graph.Link[string]]Style{graph.MustLink("A", "B"): Raw("style=dashed")},
	})

	if !strings.Contains(got, `"A" ["color"="red", "shape"="box"];`) {
		t.Errorf("missing styled node line in:\n%s", got)
	}
	if !strings.Contains(got, `"A" -- "B" [style=dashed];`) {
		t.Errorf("raw link style not passed through in:\n%s", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "plain", in: "abc", want: `"abc"`},
		{name: "quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "number", in: 42, want: `"42"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

type rawID string

func (r rawID) EscapeDOT() string { return string(r) }

func TestEscapeOverride(t *testing.T) {
	if got := Escape(rawID("node_1")); got != "node_1" {
		t.Errorf("Escaper override ignored, got %s", got)
	}
}

func TestMarshalLayered(t *testing.T) {
	g, err := graph.NewFromPairs(
		[]int{1, 2, 3, 4},
		[][2]int{{1, 2}, {2, 3}, {2, 4}},
	)
	if err != nil {
		t.Fatal(err)
	}

	got := marshalString(t, g, Options[int]{Layers: [][]int{{1}, {2}, {3, 4}}})

	for _, want := range []string{
		"  { rank=same;\n    \"1\" [];\n  }\n",
		"  { rank=same;\n    \"3\" [];\n    \"4\" [];\n  }\n",
		`"1" -- "2" [];`,
		`"2" -- "3" [];`,
		`"2" -- "4" [];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "--"); n != 3 {
		t.Errorf("expected every link exactly once, got %d link lines:\n%s", n, got)
	}
}

func TestMarshalLayeredLeftoverNodes(t *testing.T) {
	g, err := graph.NewFromPairs(
		[]string{"a", "b", "x", "y"},
		[][2]string{{"a", "b"}, {"x", "y"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	got := marshalString(t, g, Options[string]{Layers: [][]string{{"a"}, {"b"}}})

	// x and y sit outside every layer: flat node lines, flat link line.
	for _, want := range []string{`  "x" [];`, `  "y" [];`, `"x" -- "y" [];`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "--"); n != 2 {
		t.Errorf("expected 2 link lines, got %d:\n%s", n, got)
	}
}

func TestMarshalLayeredSkipsUnknownNodes(t *testing.T) {
	g := twoNodeGraph(t)
	got := marshalString(t, g, Options[string]{Layers: [][]string{{"A", "ghost"}, {"B"}}})

	if strings.Contains(got, "ghost") {
		t.Errorf("layer member that is not a graph node leaked into output:\n%s", got)
	}
}

func TestMarshalOverlappingLayers(t *testing.T) {
	g := twoNodeGraph(t)
	_, err := Marshal(g, Options[string]{Layers: [][]string{{"A", "B"}, {"B"}}})
	if err == nil || !strings.Contains(err.Error(), "layers must be disjoint") {
		t.Fatalf("expected ErrOverlappingLayers, got %v", err)
	}
}

func TestMarshalSpanningDefaults(t *testing.T) {
	g, err := graph.NewFromPairs(
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	s := g.MinimalSpanning("a")

	out, err := MarshalSpanning(s, Options[string]{})
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)

	for _, want := range []string{
		`"rankdir"="TB"`,
		`"newrank"="false"`,
		`"a" ["color"="red"];`,
		"rank=same",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestMarshalSpanningCallerStyleWins(t *testing.T) {
	g, err := graph.NewFromPairs([]string{"a", "b"}, [][2]string{{"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}
	s := g.MinimalSpanning("a")

	out, err := MarshalSpanning(s, Options[string]{
		NodeStyles: map[string]Style{"a": Attrs{"color": "blue"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(out), `"a" ["color"="blue"];`) {
		t.Errorf("caller node style was overridden:\n%s", out)
	}
	if strings.Contains(string(out), "red") {
		t.Errorf("default start style applied over caller style:\n%s", out)
	}
}
