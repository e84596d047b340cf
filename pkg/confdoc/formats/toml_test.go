package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

func TestTOML_Parse(t *testing.T) {
	text := `motd = "hi"
max-players = 20
ratio = 0.5
pvp = true
id = "42"

[world]
seed = -3841836736254238123
name = "overworld"

[world.border]
size = 6000
`
	m, err := Parse(FormatTOML, text)
	require.NoError(t, err)

	assert.Equal(t, []string{"motd", "max-players", "ratio", "pvp", "id", "world"}, m.Keys())
	assert.Equal(t, map[string]any{
		"motd":        "hi",
		"max-players": int64(20),
		"ratio":       0.5,
		"pvp":         true,
		"id":          "42",
		"world": map[string]any{
			"seed":   int64(-3841836736254238123),
			"name":   "overworld",
			"border": map[string]any{"size": int64(6000)},
		},
	}, m.ToAny())

	world, _ := m.Get("world")
	assert.Equal(t, []string{"seed", "name", "border"}, world.(*confdoc.Map).Keys())
}

func TestTOML_ParseDottedAndInlineTables(t *testing.T) {
	m, err := Parse(FormatTOML, "world.seed = 1\nrcon = { port = 25575, enabled = false }\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"world": map[string]any{"seed": int64(1)},
		"rcon":  map[string]any{"port": int64(25575), "enabled": false},
	}, m.ToAny())
}

func TestTOML_ParseEmptyTable(t *testing.T) {
	m, err := Parse(FormatTOML, "[world]\n")
	require.NoError(t, err)
	world, ok := m.Get("world")
	require.True(t, ok)
	assert.Equal(t, 0, world.(*confdoc.Map).Len())
}

func TestTOML_ParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantLine    int
		wantMessage string
	}{
		{"syntax", "motd = \"hi\"\nport = \n", 2, ""},
		{"duplicate key", "a = 1\na = 2\n", 0, ""},
		{"array", "ops = [\"steve\"]\n", 0, "ops: arrays are not supported"},
		{"array of tables", "[[worlds]]\nname = \"a\"\n", 0, "worlds: arrays are not supported"},
		{"datetime", "start = 1979-05-27T07:32:00Z\n", 0, "start: time.Time values are not supported"},
		{"infinity", "ratio = inf\n", 0, "ratio: non-finite numbers are not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(FormatTOML, tt.text)
			require.Error(t, err)

			var perr *confdoc.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "toml", perr.Format)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, perr.Line)
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, perr.Message)
			}
		})
	}
}

func TestTOML_Serialize(t *testing.T) {
	world := confdoc.NewMap()
	world.Set("seed", confdoc.Int(123))
	world.Set("hardcore", confdoc.Bool(false))
	m := confdoc.NewMap()
	m.Set("world", world)
	m.Set("motd", confdoc.String("hi"))
	m.Set("owner", confdoc.Null{})

	out, err := Serialize(FormatTOML, m)
	require.NoError(t, err)
	assert.Equal(t, "motd = \"hi\"\n\n[world]\nseed = 123\nhardcore = false\n", out)
}

func TestTOML_SerializeNestedTablesAndQuoting(t *testing.T) {
	border := confdoc.NewMap()
	border.Set("size", confdoc.Float(6000.5))
	world := confdoc.NewMap()
	world.Set("border", border)
	m := confdoc.NewMap()
	m.Set("server name", confdoc.String("a \"quoted\"\tname"))
	m.Set("ratio", confdoc.Float(1e21))
	m.Set("world", world)

	out, err := Serialize(FormatTOML, m)
	require.NoError(t, err)
	assert.Equal(t, `"server name" = "a \"quoted\"\tname"
ratio = 1000000000000000000000.0

[world]

[world.border]
size = 6000.5
`, out)

	back, err := Parse(FormatTOML, out)
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}
