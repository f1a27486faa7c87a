package roster

import (
	"okakbot/sources/configuration"
	"testing"

	"github.com/stretchr/testify/assert"
)

func configurationWithImages(dir string) *configuration.Config {
	config := configuration.Defaults()
	config.Lists.SpecialImagesDir = dir
	return &config
}

func TestNewRosterConfigNormalizesExtensions(t *testing.T) {
	config := configuration.Defaults()
	config.Lists.ImageExtensions = []string{"JPG", " .Png ", ""}

	rc := NewRosterConfig(&config)

	assert.Equal(t, map[string]struct{}{".jpg": {}, ".png": {}}, rc.ImageExtensions)
	assert.Equal(t, config.Responder.FallbackPhrase, rc.FallbackPhrase)
}
