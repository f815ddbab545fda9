package directory

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/propdesk/messaging-service/internal/model"
)

// Directory maps property and bid ids to the names shown in the conversation list.
type Directory struct {
	Properties map[string]string `yaml:"properties" json:"properties"`
	Bids       map[string]string `yaml:"bids" json:"bids"`
}

// Load reads the directory from a yaml or json file. An empty path or a missing file yields
// an empty directory, so every conversation falls back to a generated name.
func Load(path string) (*Directory, error) {
	dir := &Directory{}
	if path == "" {
		return dir, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return dir, nil
	}

	if err := cleanenv.ReadConfig(path, dir); err != nil {
		return nil, fmt.Errorf("failed to read directory file %s: %w", path, err)
	}

	return dir, nil
}

func (d *Directory) ResolveName(kind model.ConversationKind, id string) string {
	var names map[string]string
	switch kind {
	case model.PropertyConversation:
		names = d.Properties
	case model.BidConversation:
		names = d.Bids
	}

	if name, ok := names[id]; ok && name != "" {
		return name
	}

	return kind.Label() + " " + id
}
