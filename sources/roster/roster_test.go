package roster

import (
	"os"
	"path/filepath"
	"testing"

	"okakbot/sources/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.txt")
	writeFile(t, path, "# comment\n \n@Alice\n  bob  \n@\n#another\n")

	entries, err := ReadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "bob"}, entries)
}

func TestReadListMissingFile(t *testing.T) {
	entries, err := ReadList(filepath.Join(t.TempDir(), "absent.txt"))
	assert.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ReadList("")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadListDirectoryIsError(t *testing.T) {
	_, err := ReadList(t.TempDir())
	assert.Error(t, err)
}

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Handle with at sign", input: "@Alice", expected: "alice"},
		{name: "Padded", input: "  Bob ", expected: "bob"},
		{name: "Numeric id", input: "123456", expected: "123456"},
		{name: "Cyrillic", input: "@ОКАК", expected: "окак"},
		{name: "Only at sign", input: "@", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEntry(tt.input))
		})
	}
}

func TestUserSet(t *testing.T) {
	set := NewUserSet([]string{"@Alice", " "}, []string{"alice", "Carol"})

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("alice"))
	assert.True(t, set.Contains("carol"))
	assert.False(t, set.Contains("Alice"))
	assert.False(t, set.Contains(""))
}

func newTestRoster(config *RosterConfig) *Roster {
	return NewRoster(config, tracing.NewDiscardLogger())
}

func TestRosterListsMergeStaticAndFile(t *testing.T) {
	dir := t.TempDir()
	ignored := filepath.Join(dir, "ignored.txt")
	writeFile(t, ignored, "# comment\n \n@Alice\n")

	r := newTestRoster(&RosterConfig{
		IgnoredUsers:     []string{"@Dave"},
		IgnoredUsersFile: ignored,
		SpecialUsersFile: filepath.Join(dir, "absent.txt"),
	})

	assert.Equal(t, NewUserSet([]string{"alice", "dave"}), r.IgnoredUsers())
	assert.Empty(t, r.SpecialUsers())
}

func TestRosterReloadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	special := filepath.Join(dir, "special.txt")
	writeFile(t, special, "alice\n")

	r := newTestRoster(&RosterConfig{SpecialUsersFile: special})
	assert.True(t, r.SpecialUsers().Contains("alice"))

	writeFile(t, special, "bob\n")
	assert.False(t, r.SpecialUsers().Contains("alice"))
	assert.True(t, r.SpecialUsers().Contains("bob"))

	require.NoError(t, os.Remove(special))
	assert.Empty(t, r.SpecialUsers())
}

func TestRosterSpecialPhrases(t *testing.T) {
	dir := t.TempDir()
	phrases := filepath.Join(dir, "phrases.txt")

	r := newTestRoster(&RosterConfig{SpecialPhrasesFile: phrases, FallbackPhrase: "fallback"})
	assert.Equal(t, []string{"fallback"}, r.SpecialPhrases())

	writeFile(t, phrases, "# header\nОкак, Привет\n@Hello There\n")
	assert.Equal(t, []string{"Окак, Привет", "Hello There"}, r.SpecialPhrases())
}

func TestRosterSpecialImages(t *testing.T) {
	dir := t.TempDir()
	images := filepath.Join(dir, "images")
	require.NoError(t, os.Mkdir(images, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(images, "nested.png"), 0o755))
	for _, name := range []string{"b.PNG", "a.jpg", "notes.txt", "c.webp"} {
		writeFile(t, filepath.Join(images, name), "x")
	}

	config := NewRosterConfig(configurationWithImages(images))
	r := newTestRoster(config)

	assert.Equal(t, []string{
		filepath.Join(images, "a.jpg"),
		filepath.Join(images, "b.PNG"),
		filepath.Join(images, "c.webp"),
	}, r.SpecialImages())

	config.SpecialImagesDir = filepath.Join(dir, "absent")
	assert.Empty(t, r.SpecialImages())
}
