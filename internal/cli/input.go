package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sigstudio/pkg/model"
)

// signatureFile accepts either a full signature document or a bare contact.
type signatureFile struct {
	Contact  *model.ContactData `json:"contact" yaml:"contact"`
	Template string             `json:"template" yaml:"template"`
	Size     string             `json:"size" yaml:"size"`
	Image    string             `json:"image" yaml:"image"`
}

// readSignature loads a JSON or YAML file; "-" reads stdin as YAML, which
// also accepts JSON.
func readSignature(path string, stdin io.Reader) (model.Signature, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.Signature{}, fmt.Errorf("read contact file: %w", err)
	}
	return decodeSignature(data, strings.ToLower(filepath.Ext(path)))
}

func decodeSignature(data []byte, ext string) (model.Signature, error) {
	unmarshal := yaml.Unmarshal
	if ext == ".json" {
		unmarshal = json.Unmarshal
	}

	var doc signatureFile
	if err := unmarshal(data, &doc); err != nil {
		return model.Signature{}, fmt.Errorf("decode contact file: %w", err)
	}

	sig := model.Signature{Image: doc.Image}
	if doc.Contact != nil {
		sig.Contact = *doc.Contact
	} else {
		var contact model.ContactData
		if err := unmarshal(data, &contact); err != nil {
			return model.Signature{}, fmt.Errorf("decode contact: %w", err)
		}
		sig.Contact = contact
	}

	if doc.Template != "" {
		kind, err := model.ParseTemplateKind(doc.Template)
		if err != nil {
			return model.Signature{}, err
		}
		sig.Template = kind
	}
	if doc.Size != "" {
		size, err := model.ParseSizeProfile(doc.Size)
		if err != nil {
			return model.Signature{}, err
		}
		sig.Size = size
	}
	if sig.Contact.IsZero() && sig.Image == "" {
		return sig, errors.New("contact file has no contact fields")
	}
	return sig, nil
}
