package roster

import (
	"okakbot/sources/configuration"
	"strings"
)

type RosterConfig struct {
	IgnoredUsers       []string
	SpecialUsers       []string
	SpecialPhrases     []string
	IgnoredUsersFile   string
	SpecialUsersFile   string
	SpecialPhrasesFile string
	SpecialImagesDir   string
	ImageExtensions    map[string]struct{}
	FallbackPhrase     string
}

func NewRosterConfig(config *configuration.Config) *RosterConfig {
	extensions := make(map[string]struct{}, len(config.Lists.ImageExtensions))
	for _, ext := range config.Lists.ImageExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = struct{}{}
	}

	return &RosterConfig{
		IgnoredUsers:       config.Lists.IgnoredUsers,
		SpecialUsers:       config.Lists.SpecialUsers,
		SpecialPhrases:     config.Lists.SpecialPhrases,
		IgnoredUsersFile:   config.Lists.IgnoredUsersFile,
		SpecialUsersFile:   config.Lists.SpecialUsersFile,
		SpecialPhrasesFile: config.Lists.SpecialPhrasesFile,
		SpecialImagesDir:   config.Lists.SpecialImagesDir,
		ImageExtensions:    extensions,
		FallbackPhrase:     config.Responder.FallbackPhrase,
	}
}
