package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

func TestProperties_ParseInfersScalarTypes(t *testing.T) {
	m, err := Parse(FormatProperties, "server-name=Survival\nhardcore=true\nmax-players=20\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"server-name", "hardcore", "max-players"}, m.Keys())
	assert.Equal(t, map[string]any{
		"server-name": "Survival",
		"hardcore":    true,
		"max-players": int64(20),
	}, m.ToAny())
}

func TestProperties_ParseSyntaxVariants(t *testing.T) {
	text := "# Minecraft server properties\n" +
		"! another comment\n" +
		"motd = A Minecraft Server\n" +
		"level-seed=\n" +
		"spawn:16\n" +
		"owner null\n" +
		"ratio=0.75\n" +
		"greeting=\\u00A7aWelcome\n" +
		"resource-pack=https\\://example.com/pack.zip\n"

	m, err := Parse(FormatProperties, text)
	require.NoError(t, err)

	assert.Equal(t, []string{"motd", "level-seed", "spawn", "owner", "ratio", "greeting", "resource-pack"}, m.Keys())
	assert.Equal(t, map[string]any{
		"motd":          "A Minecraft Server",
		"level-seed":    "",
		"spawn":         int64(16),
		"owner":         nil,
		"ratio":         0.75,
		"greeting":      "§aWelcome",
		"resource-pack": "https://example.com/pack.zip",
	}, m.ToAny())
}

func TestProperties_DuplicateKeyLastWins(t *testing.T) {
	m, err := Parse(FormatProperties, "a=1\nb=2\na=3\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, confdoc.Int(3), v)
}

func TestProperties_ParseError(t *testing.T) {
	_, err := Parse(FormatProperties, "a=1\nb=\\uZZZZ\n")
	require.Error(t, err)

	var perr *confdoc.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "properties", perr.Format)
	assert.Greater(t, perr.Line, 0)
	assert.NotEmpty(t, perr.Message)
}

func TestProperties_Serialize(t *testing.T) {
	m := confdoc.NewMap()
	m.Set("server-name", confdoc.String("Survival"))
	m.Set("hardcore", confdoc.Bool(true))
	m.Set("max-players", confdoc.Int(20))
	m.Set("ratio", confdoc.Float(0.5))
	m.Set("owner", confdoc.Null{})
	m.Set("level-seed", confdoc.String(""))

	out, err := Serialize(FormatProperties, m)
	require.NoError(t, err)
	assert.Equal(t, "server-name=Survival\n"+
		"hardcore=true\n"+
		"max-players=20\n"+
		"ratio=0.5\n"+
		"owner=null\n"+
		"level-seed=\n", out)
}

func TestProperties_SerializeEscaping(t *testing.T) {
	m := confdoc.NewMap()
	m.Set("key with=odd:chars", confdoc.String("value"))
	m.Set("#hash", confdoc.String("  padded"))
	m.Set("path", confdoc.String(`C:\games\mc`))
	m.Set("multi", confdoc.String("line1\nline2"))

	out, err := Serialize(FormatProperties, m)
	require.NoError(t, err)
	assert.Equal(t, "key\\ with\\=odd\\:chars=value\n"+
		"\\#hash=\\ \\ padded\n"+
		"path=C:\\\\games\\\\mc\n"+
		"multi=line1\\nline2\n", out)

	back, err := Parse(FormatProperties, out)
	require.NoError(t, err)
	assert.Equal(t, m.ToAny(), back.ToAny())
}

func TestProperties_SerializeFlattensNestedMaps(t *testing.T) {
	world := confdoc.NewMap()
	world.Set("seed", confdoc.Int(123))
	m := confdoc.NewMap()
	m.Set("motd", confdoc.String("hi"))
	m.Set("world", world)

	out, err := Serialize(FormatProperties, m)
	require.NoError(t, err)
	assert.Equal(t, "motd=hi\nworld.seed=123\n", out)
}

func TestProperties_SerializeErrors(t *testing.T) {
	t.Run("flattened key collides", func(t *testing.T) {
		world := confdoc.NewMap()
		world.Set("seed", confdoc.Int(1))
		m := confdoc.NewMap()
		m.Set("world.seed", confdoc.Int(2))
		m.Set("world", world)

		_, err := Serialize(FormatProperties, m)
		var serr *confdoc.SerializeError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "world.seed", serr.Key)
	})

	t.Run("empty section", func(t *testing.T) {
		m := confdoc.NewMap()
		m.Set("world", confdoc.NewMap())

		_, err := Serialize(FormatProperties, m)
		var serr *confdoc.SerializeError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "world", serr.Key)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		m := confdoc.NewMap()
		m.Set("motd", confdoc.String("bad\xff"))

		out, err := Serialize(FormatProperties, m)
		assert.Empty(t, out)
		var serr *confdoc.SerializeError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "motd", serr.Key)
	})
}
