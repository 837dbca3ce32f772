package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a documentation file. Files ending in .json are decoded as JSON,
// everything else as YAML.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML document. Class order follows the mapping order.
func ParseYAML(data []byte) (*Registry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(root.Content) == 0 {
		return NewRegistry(nil, nil), nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidDocument)
	}

	var names []string
	var raw []map[string]any
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i].Value, doc.Content[i+1]
		switch key {
		case "classes":
			switch value.Kind {
			case yaml.MappingNode:
				for j := 0; j+1 < len(value.Content); j += 2 {
					names = append(names, value.Content[j].Value)
				}
			case yaml.SequenceNode:
				for _, n := range value.Content {
					names = append(names, n.Value)
				}
			default:
				return nil, fmt.Errorf("%w: classes must be a mapping or a list", ErrInvalidDocument)
			}
		case "classitems":
			if err := value.Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: classitems: %v", ErrInvalidDocument, err)
			}
		}
	}

	items, err := decodeClassItems(raw)
	if err != nil {
		return nil, err
	}
	return NewRegistry(names, items), nil
}

// ParseJSON decodes a YUIDoc data.json document.
func ParseJSON(data []byte) (*Registry, error) {
	var doc struct {
		Classes    json.RawMessage  `json:"classes"`
		ClassItems []map[string]any `json:"classitems"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	names, err := objectKeys(doc.Classes)
	if err != nil {
		return nil, err
	}

	items, err := decodeClassItems(doc.ClassItems)
	if err != nil {
		return nil, err
	}
	return NewRegistry(names, items), nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: classes: %v", ErrInvalidDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: classes must be an object", ErrInvalidDocument)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: classes: %v", ErrInvalidDocument, err)
		}
		key, _ := tok.(string)
		keys = append(keys, key)

		// Skip the value; only the presence of the key matters.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("%w: classes.%s: %v", ErrInvalidDocument, key, err)
		}
	}
	return keys, nil
}

func decodeClassItems(raw []map[string]any) ([]ClassItem, error) {
	items := make([]ClassItem, 0, len(raw))
	for i, record := range raw {
		var item ClassItem
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &item,
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(record); err != nil {
			return nil, fmt.Errorf("%w: classitems[%d]: %v", ErrInvalidDocument, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
