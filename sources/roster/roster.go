package roster

import (
	"errors"
	"io/fs"
	"okakbot/sources/tracing"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Roster exposes the ignored users, special users, special phrases and
// special images. Nothing is cached: every call goes back to disk, so edits
// to the backing files apply to the very next message.
type Roster struct {
	config *RosterConfig
	log    *tracing.Logger
}

func NewRoster(config *RosterConfig, log *tracing.Logger) *Roster {
	return &Roster{config: config, log: log}
}

func (x *Roster) IgnoredUsers() UserSet {
	return NewUserSet(x.config.IgnoredUsers, x.read("ignored_users", x.config.IgnoredUsersFile))
}

func (x *Roster) SpecialUsers() UserSet {
	return NewUserSet(x.config.SpecialUsers, x.read("special_users", x.config.SpecialUsersFile))
}

// SpecialPhrases keeps the phrases' case. It never returns an empty list:
// without configured phrases the fallback phrase is the only candidate.
func (x *Roster) SpecialPhrases() []string {
	phrases := make([]string, 0, len(x.config.SpecialPhrases))
	for _, phrase := range x.config.SpecialPhrases {
		if phrase = stripHandle(strings.TrimSpace(phrase)); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	phrases = append(phrases, x.read("special_phrases", x.config.SpecialPhrasesFile)...)

	if len(phrases) == 0 {
		return []string{x.config.FallbackPhrase}
	}
	return phrases
}

// SpecialImages lists files directly inside the image directory whose
// extension is allowed, sorted by path.
func (x *Roster) SpecialImages() []string {
	dir := x.config.SpecialImagesDir
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			x.log.W("Failed to scan special images", tracing.ListPath, dir, tracing.InnerError, err)
		}
		return nil
	}

	var images []string
	for _, entry := range entries {
		if _, ok := x.config.ImageExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			images = append(images, path)
		}
	}

	sort.Strings(images)
	return images
}

func (x *Roster) read(name, path string) []string {
	entries, err := ReadList(path)
	if err != nil {
		x.log.W("Failed to read list, treating it as empty", tracing.ListName, name, tracing.ListPath, path, tracing.InnerError, err)
		return nil
	}

	x.log.D("List loaded", tracing.ListName, name, tracing.ListPath, path, tracing.ListSize, len(entries))
	return entries
}
