package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/java/parser"
)

var cycle = map[string]string{
	"/src/p/A.java": "package p;\npublic class A {\n    B b;\n}",
	"/src/p/B.java": "package p;\npublic class B {\n    A a;\n}",
}

func TestLineGraphEncoder(t *testing.T) {
	res := sliceOf(t, cycle, "p.A#b")

	var buf bytes.Buffer
	require.NoError(t, NewLineGraphEncoder(&buf).Encode(res))
	assert.Equal(t, strings.Join([]string{
		"node\tfield\tp.A#b\tvisited",
		"node\ttype\tp.B\tvisited",
		"edge\tp.A#b\tp.B",
		"unit\tp.A\t1",
		"unit\tp.B\t0",
	}, "\n")+"\n", buf.String())
}

func TestJSONGraphEncoder(t *testing.T) {
	res := sliceOf(t, cycle, "p.A#b")

	var buf bytes.Buffer
	require.NoError(t, NewJSONGraphEncoder(&buf).Encode(res))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res.RunID.String(), got["runId"])
	assert.Equal(t, []any{"p.A#b"}, got["seeds"])

	nodes := got["nodes"].([]any)
	require.Len(t, nodes, 2)
	first := nodes[0].(map[string]any)
	assert.Equal(t, "p.A#b", first["key"])
	assert.Equal(t, "field", first["kind"])
	assert.Equal(t, "file:///src/p/A.java", first["file"])
	assert.Equal(t, float64(3), first["line"])

	assert.Equal(t, []any{map[string]any{"from": "p.A#b", "to": "p.B"}}, got["edges"])
	assert.NotContains(t, got, "unresolved")
}

func TestYAMLGraphEncoder(t *testing.T) {
	res := sliceOf(t, cycle, "p.A#b")

	var buf bytes.Buffer
	require.NoError(t, NewYAMLGraphEncoder(&buf).Encode(res))

	var got struct {
		RunID string `yaml:"runId"`
		Units []struct {
			Name    string   `yaml:"name"`
			File    string   `yaml:"file"`
			Members []string `yaml:"members"`
		} `yaml:"units"`
		Edges []struct {
			From string `yaml:"from"`
			To   string `yaml:"to"`
		} `yaml:"edges"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res.RunID.String(), got.RunID)
	require.Len(t, got.Units, 2)
	assert.Equal(t, "p.A", got.Units[0].Name)
	assert.Equal(t, "file:///src/p/A.java", got.Units[0].File)
	assert.Equal(t, []string{"p.A#b"}, got.Units[0].Members)
	require.Len(t, got.Edges, 1)
	assert.Equal(t, "p.B", got.Edges[0].To)
}

func TestNewGraphEncoder(t *testing.T) {
	for _, name := range GraphFormats {
		enc, err := NewGraphEncoder(name, &bytes.Buffer{})
		require.NoError(t, err, name)
		assert.NotNil(t, enc)
	}
	_, err := NewGraphEncoder("xml", &bytes.Buffer{})
	assert.Error(t, err)
}

const declSource = `package p;

public class A {
    private int x;
    A() {}
    public String name() { return ""; }
}`

func TestLineDeclEncoder(t *testing.T) {
	unit, err := java.UnitFromSource([]byte(declSource), parser.WithFile("A.java"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewLineDeclEncoder(&buf).Encode(unit))
	assert.Equal(t, strings.Join([]string{
		"class\tp.A\tpublic\t-",
		"field\tp.A#x\tprivate\tint",
		"constructor\tp.A#<init>()\t-\t-",
		"method\tp.A#name()\tpublic\tString",
	}, "\n")+"\n", buf.String())
}

func TestJSONDeclEncoder(t *testing.T) {
	unit, err := java.UnitFromSource([]byte(declSource), parser.WithFile("/src/p/A.java"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONDeclEncoder(&buf).Encode(unit))

	var got struct {
		File  string `json:"file"`
		Decls []struct {
			Key  string `json:"key"`
			Kind string `json:"kind"`
			Line int    `json:"line"`
		} `json:"declarations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "file:///src/p/A.java", got.File)
	require.Len(t, got.Decls, 4)
	assert.Equal(t, "p.A#name()", got.Decls[3].Key)
	assert.Equal(t, "method", got.Decls[3].Kind)
	assert.Equal(t, 6, got.Decls[3].Line)
}

func TestASTJSONEncoder(t *testing.T) {
	tree, err := parser.Parse([]byte("class A {}"))
	require.NoError(t, err)
	defer tree.Close()

	var buf bytes.Buffer
	require.NoError(t, NewASTJSONEncoder(&buf).Encode(tree.Root()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "program", got["kind"])
	assert.NotEmpty(t, got["children"])
}
