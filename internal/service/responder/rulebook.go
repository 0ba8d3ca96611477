package responder

import (
	"errors"
	"fmt"
	"os"

	"github.com/sandevgo/relaybot/internal/service/intent"
	"gopkg.in/yaml.v3"
)

// Rulebook is the optional replies.yaml in the runtime directory.
//
//	keywords:
//	  greeting: [hello, hi, ahoy]
//	replies:
//	  greeting: "Ahoy! What can I do for you?"
type Rulebook struct {
	Keywords intent.Rules `yaml:"keywords"`
	Replies  Replies      `yaml:"replies"`
}

func DefaultRulebook() Rulebook {
	return Rulebook{
		Keywords: intent.DefaultRules(),
		Replies:  DefaultReplies(),
	}
}

// LoadRulebook reads path and fills anything it leaves out with defaults.
// A missing file is not an error.
func LoadRulebook(path string) (Rulebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultRulebook(), nil
		}
		return DefaultRulebook(), fmt.Errorf("read rulebook: %w", err)
	}

	var rb Rulebook
	if err := yaml.Unmarshal(data, &rb); err != nil {
		return DefaultRulebook(), fmt.Errorf("parse rulebook %s: %w", path, err)
	}

	return Rulebook{
		Keywords: rb.Keywords.Merge(intent.DefaultRules()),
		Replies:  rb.Replies.Merge(DefaultReplies()),
	}, nil
}

// WriteRulebook saves rb as YAML to path unless the file already exists.
func WriteRulebook(path string, rb Rulebook) error {
	data, err := yaml.Marshal(rb)
	if err != nil {
		return fmt.Errorf("marshal rulebook: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create rulebook: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write rulebook: %w", err)
	}
	return nil
}
