package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a profile from path. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON. The profile is not validated here.
func LoadFile(path string) (UserProfile, error) {
	var p UserProfile

	log.Debug().Str("path", path).Msg("Attempting to load profile file")
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read profile file")
		return p, fmt.Errorf("%w: %w", ErrProfileRead, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(fileBytes, &p)
	default:
		err = json.Unmarshal(fileBytes, &p)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to parse profile file")
		return UserProfile{}, fmt.Errorf("%w: %w", ErrProfileParse, err)
	}

	log.Debug().Str("path", path).Int("interests", len(p.Interests)).Int("skills", len(p.Skills)).Msg("Loaded profile file")
	return p, nil
}
