package envvar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtsetup/internal/shellenv"
)

func TestScopeString(t *testing.T) {
	assert.Equal(t, "process", Process.String())
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "scope(9)", Scope(9).String())
}

func TestMapStore(t *testing.T) {
	m := NewMapStore()
	_, ok := m.Get(Process, "K")
	assert.False(t, ok)

	require.NoError(t, m.Set(Process, "K", "p"))
	require.NoError(t, m.Set(User, "K", "u"))

	v, ok := m.Get(Process, "K")
	assert.True(t, ok)
	assert.Equal(t, "p", v)
	v, _ = m.Get(User, "K")
	assert.Equal(t, "u", v)

	assert.Equal(t, []Write{
		{Scope: Process, Key: "K", Value: "p"},
		{Scope: User, Key: "K", Value: "u"},
	}, m.Writes())
}

func TestDotenvStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg", "env")
	s := NewDotenvStore(path, nil, dir)

	_, ok := s.Lookup("QuantowerRoot")
	assert.False(t, ok)

	root := filepath.Join(dir, "Quantower")
	require.NoError(t, s.Store("QuantowerRoot", root))
	require.NoError(t, s.Store("Other", "1"))

	v, ok := s.Lookup("QuantowerRoot")
	assert.True(t, ok)
	assert.Equal(t, root, v)

	vals, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"QuantowerRoot": root, "Other": "1"}, vals)
	assert.Equal(t, path, s.Location())
}

func TestDotenvStoreWiresProfile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".config", "qtsetup", "env")
	s := NewDotenvStore(path, &shellenv.ZshShell{}, home)

	require.NoError(t, s.Store("QuantowerRoot", "/opt/q"))
	require.NoError(t, s.Store("QuantowerRoot", "/opt/q2"))

	data, err := os.ReadFile(filepath.Join(home, ".zprofile"))
	require.NoError(t, err)
	assert.Equal(t, shellenv.SourceBlock(path), string(data))

	v, _ := s.Lookup("QuantowerRoot")
	assert.Equal(t, "/opt/q2", v)
}

func TestDotenvStoreWritesLiteralValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	s := NewDotenvStore(path, nil, "")

	value := "/opt/Quant!ower $HOME \\x"
	require.NoError(t, s.Store("QuantowerRoot", value))
	require.NoError(t, s.Store("A", "1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A='1'\nQuantowerRoot='/opt/Quant!ower $HOME \\x'\n", string(data))

	v, ok := s.Lookup("QuantowerRoot")
	assert.True(t, ok)
	assert.Equal(t, value, v)
}

func TestDotenvStoreRejectsUnquotableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	s := NewDotenvStore(path, nil, "")
	for _, v := range []string{"it's", "a\nb", `C:\`} {
		assert.Error(t, s.Store("K", v), v)
	}
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOSStoreProcessScope(t *testing.T) {
	t.Setenv("QTSETUP_TEST_VAR", "before")

	s := NewOSStoreWith(NewDotenvStore(filepath.Join(t.TempDir(), "env"), nil, ""))
	v, ok := s.Get(Process, "QTSETUP_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "before", v)

	require.NoError(t, s.Set(Process, "QTSETUP_TEST_VAR", "after"))
	assert.Equal(t, "after", os.Getenv("QTSETUP_TEST_VAR"))

	_, ok = s.Get(User, "QTSETUP_TEST_VAR")
	assert.False(t, ok, "process write must not leak into user scope")
}

func TestOSStoreUserScope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	s := NewOSStoreWith(NewDotenvStore(path, nil, ""))

	require.NoError(t, s.Set(User, "QuantowerRoot", "/opt/q"))
	v, ok := s.Get(User, "QuantowerRoot")
	assert.True(t, ok)
	assert.Equal(t, "/opt/q", v)
	assert.Equal(t, path, s.UserLocation())

	assert.Error(t, s.Set(Scope(7), "K", "v"))
}

func TestUnavailableStore(t *testing.T) {
	s := NewOSStoreWith(unavailableStore{err: os.ErrNotExist})
	assert.ErrorIs(t, s.Set(User, "K", "v"), os.ErrNotExist)
	_, ok := s.Get(User, "K")
	assert.False(t, ok)
}
