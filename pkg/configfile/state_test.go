package configfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/confdoc/formats"
)

func loaded(t *testing.T, path, content string) *State {
	t.Helper()
	st := NewState(path)
	st.Load(content)
	require.NoError(t, st.Error)
	require.Equal(t, ViewForm, st.ViewMode)
	return st
}

func TestLoad_Properties(t *testing.T) {
	st := loaded(t, "server.properties", "server-name=Survival\nhardcore=true\nmax-players=20\n")

	assert.True(t, st.Loaded)
	assert.Equal(t, formats.FormatProperties, st.Format)
	require.Len(t, st.Sections, 1)
	assert.True(t, st.Sections[0].General)
	assert.Len(t, st.Sections[0].Entries, 3)

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, "server-name=Survival\nhardcore=true\nmax-players=20\n", content)
}

func TestLoad_MalformedFallsBackToRaw(t *testing.T) {
	input := `{"world": {"seed": 123, "hardcore": false}, "motd": "hi"`
	st := NewState("config.json")
	st.Load(input)

	assert.True(t, st.Loaded)
	assert.Equal(t, ViewRaw, st.ViewMode)
	assert.Equal(t, input, st.RawContent)
	assert.Empty(t, st.Sections)

	var perr *confdoc.ParseError
	require.True(t, errors.As(st.Error, &perr))
	assert.Equal(t, "json", perr.Format)

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, input, content)
}

func TestLoad_UnsupportedFormatFallsBackToRaw(t *testing.T) {
	st := NewState("bukkit.conf")
	st.Load("settings { a = 1 }")

	assert.Equal(t, ViewRaw, st.ViewMode)
	assert.Equal(t, formats.FormatUnknown, st.Format)
	assert.ErrorIs(t, st.Error, confdoc.ErrUnsupportedFormat)
	assert.Equal(t, "settings { a = 1 }", st.RawContent)
}

func TestLoad_ReloadClearsError(t *testing.T) {
	st := NewState("ops.yml")
	st.Load("ops:\n  - steve\n")
	require.Error(t, st.Error)

	st.Load("ops: steve\n")
	assert.NoError(t, st.Error)
	assert.Equal(t, ViewForm, st.ViewMode)
}

func TestContent_ReinfersEditedStrings(t *testing.T) {
	st := loaded(t, "server.properties", "view-distance=5\n")
	e, ok := st.Lookup("", "view-distance")
	require.True(t, ok)
	e.RawValue = "10"
	e.Type = confdoc.TypeString

	m, err := confdoc.ToConfigMap(st.Sections)
	require.NoError(t, err)
	v, _ := m.Get("view-distance")
	assert.Equal(t, confdoc.Int(10), v)
}

func TestSetViewMode(t *testing.T) {
	st := loaded(t, "config.yml", "motd: hi\nworld:\n  seed: 1\n")

	require.NoError(t, st.SetViewMode(ViewRaw))
	assert.Equal(t, ViewRaw, st.ViewMode)
	assert.Equal(t, "motd: hi\nworld:\n  seed: 1\n", st.RawContent)

	st.RawContent = "motd: bye\n"
	require.NoError(t, st.SetViewMode(ViewForm))
	assert.Equal(t, ViewForm, st.ViewMode)
	e, ok := st.Lookup("", "motd")
	require.True(t, ok)
	assert.Equal(t, "bye", e.RawValue)
}

func TestSetViewMode_RefusesUnparseableRaw(t *testing.T) {
	st := loaded(t, "config.yml", "motd: hi\n")
	require.NoError(t, st.SetViewMode(ViewRaw))
	st.RawContent = "motd: [unterminated\n"

	err := st.SetViewMode(ViewForm)
	require.Error(t, err)
	assert.Equal(t, ViewRaw, st.ViewMode)
	assert.Equal(t, err, st.Error)
	assert.Equal(t, "motd: [unterminated\n", st.RawContent)
}

func TestSetViewMode_UnknownFormatStaysRaw(t *testing.T) {
	st := NewState("notes.txt")
	st.Load("hello")

	err := st.SetViewMode(ViewForm)
	assert.ErrorIs(t, err, confdoc.ErrUnsupportedFormat)
	assert.Equal(t, ViewRaw, st.ViewMode)
}

func TestSetViewMode_Invalid(t *testing.T) {
	st := loaded(t, "config.yml", "a: 1\n")
	assert.ErrorIs(t, st.SetViewMode("table"), ErrInvalidViewMode)

	_, err := ParseViewMode("table")
	assert.ErrorIs(t, err, ErrInvalidViewMode)
	mode, err := ParseViewMode(" RAW ")
	require.NoError(t, err)
	assert.Equal(t, ViewRaw, mode)
}

func TestReset(t *testing.T) {
	st := loaded(t, "config.yml", "a: 1\n")
	st.Reset()

	assert.Equal(t, State{Path: "config.yml", ViewMode: ViewForm}, *st)
}

func TestSet(t *testing.T) {
	st := loaded(t, "config.yml", "motd: hi\nworld:\n  seed: 1\n  name: overworld\n")

	require.NoError(t, st.Set("", "motd", "Welcome", ""))
	require.NoError(t, st.Set("world", "seed", "42", ""))
	require.NoError(t, st.Set("world", "hardcore", "true", ""))
	require.NoError(t, st.Set("general", "max-players", "20", ""))
	require.NoError(t, st.Set("rcon", "port", "25575", confdoc.TypeNumber))

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, `motd: Welcome
max-players: 20
world:
  seed: 42
  name: overworld
  hardcore: true
rcon:
  port: 25575
`, content)

	e, ok := st.Lookup("world", "hardcore")
	require.True(t, ok)
	assert.Equal(t, confdoc.TypeBoolean, e.Type)
}

func TestSet_KeepsExistingTypeUnlessGiven(t *testing.T) {
	st := loaded(t, "config.json", `{"id": "42"}`)

	require.NoError(t, st.Set("", "id", "43", ""))
	e, _ := st.Lookup("", "id")
	assert.Equal(t, confdoc.TypeString, e.Type)

	require.NoError(t, st.Set("", "id", "44", confdoc.TypeNumber))
	e, _ = st.Lookup("", "id")
	assert.Equal(t, confdoc.TypeNumber, e.Type)
}

func TestSet_BooleanRejectsOtherText(t *testing.T) {
	st := loaded(t, "server.properties", "hardcore=true\n")

	err := st.Set("", "hardcore", "yes", "")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, st.Set("", "hardcore", "1", confdoc.TypeBoolean), ErrInvalidValue)

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, "hardcore=true\n", content)

	require.NoError(t, st.Set("", "hardcore", " false ", ""))
	content, err = st.Content()
	require.NoError(t, err)
	assert.Equal(t, "hardcore=false\n", content)
}

func TestSet_NullEntryTakesInferredType(t *testing.T) {
	st := loaded(t, "config.yml", "owner: null\nslots: null\n")

	require.NoError(t, st.Set("", "owner", "alice", ""))
	require.NoError(t, st.Set("", "slots", "8", ""))

	e, _ := st.Lookup("", "owner")
	assert.Equal(t, confdoc.TypeString, e.Type)
	e, _ = st.Lookup("", "slots")
	assert.Equal(t, confdoc.TypeNumber, e.Type)

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, "owner: alice\nslots: 8\n", content)

	assert.ErrorIs(t, st.Set("", "owner", "bob", confdoc.TypeNull), ErrInvalidValue)
	require.NoError(t, st.Set("", "owner", "null", confdoc.TypeNull))
	e, _ = st.Lookup("", "owner")
	assert.Equal(t, confdoc.TypeNull, e.Type)
}

func TestSet_CreatesGeneralFirst(t *testing.T) {
	st := loaded(t, "config.toml", "[world]\nseed = 1\n")
	require.Len(t, st.Sections, 1)

	require.NoError(t, st.Set("", "motd", "hi", ""))
	require.Len(t, st.Sections, 2)
	assert.True(t, st.Sections[0].General)
}

func TestSet_NestedObjectEntry(t *testing.T) {
	st := loaded(t, "config.json", `{"world": {"border": {"size": 100}}}`)

	require.NoError(t, st.Set("world", "border.size", "200", ""))
	e, ok := st.Lookup("world", "border.size")
	require.True(t, ok)
	assert.Equal(t, "200", e.RawValue)

	err := st.Set("world", "border", "x", "")
	assert.ErrorIs(t, err, ErrObjectEntry)
}

func TestSet_Errors(t *testing.T) {
	st := loaded(t, "config.yml", "a: 1\n")

	assert.ErrorIs(t, st.Set("", "  ", "x", ""), ErrBlankKey)
	assert.Error(t, st.Set("", "a", "x", "list"))
	assert.Error(t, st.Set("", "a", "x", confdoc.TypeObject))

	var berr *confdoc.BuildError
	require.ErrorAs(t, st.Set("", "a", "abc", confdoc.TypeNumber), &berr)
	e, _ := st.Lookup("", "a")
	assert.Equal(t, "1", e.RawValue)

	raw := NewState("x.conf")
	raw.Load("whatever")
	assert.ErrorIs(t, raw.Set("", "a", "1", ""), ErrRawMode)
	_, err := raw.Unset("", "a")
	assert.ErrorIs(t, err, ErrRawMode)
}

func TestUnset(t *testing.T) {
	st := loaded(t, "config.json", `{"motd": "hi", "world": {"seed": 1, "border": {"size": 100}}}`)

	removed, err := st.Unset("", "motd")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = st.Unset("world", "border.size")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = st.Unset("nether", "seed")
	require.NoError(t, err)
	assert.False(t, removed)

	content, err := st.Content()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"world\": {\n    \"seed\": 1,\n    \"border\": {}\n  }\n}\n", content)
}

func TestResolve(t *testing.T) {
	st := loaded(t, "config.yml", "world.name: literal\nworld:\n  seed: 1\nworld_border:\n  size: 5\n")

	tests := []struct {
		path        string
		wantSection string
		wantKey     string
	}{
		{"world.name", "", "world.name"},
		{"world.seed", "world", "seed"},
		{"world_border.size", "world_border", "size"},
		{"motd", "", "motd"},
		{"nether.seed", "", "nether.seed"},
	}
	for _, tt := range tests {
		section, key := st.Resolve(tt.path)
		assert.Equal(t, tt.wantSection, section, tt.path)
		assert.Equal(t, tt.wantKey, key, tt.path)
	}
}
