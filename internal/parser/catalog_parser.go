package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"catalogtree/converter/internal/domain"

	log "github.com/sirupsen/logrus"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// object keeps JSON object members in source order. Values stay raw until
// the level that needs them decodes them.
type object = orderedmap.OrderedMap[string, json.RawMessage]

// ParseCatalog decodes the patched source text and extracts the
// section → type → subtype structure below the "catalog" key.
func ParseCatalog(text string) (*domain.SourceCatalog, error) {
	data := []byte(text)

	// Syntax check over the whole input, trailing data included
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	root, err := decodeObject(raw, "top-level value")
	if err != nil {
		return nil, err
	}

	value, ok := root.Get("catalog")
	if !ok {
		return nil, fmt.Errorf("%w: missing \"catalog\" key", domain.ErrShape)
	}

	sections, err := decodeObject(value, `"catalog"`)
	if err != nil {
		return nil, err
	}

	catalog := &domain.SourceCatalog{
		Sections: make([]domain.SourceSection, 0, sections.Len()),
	}

	for pair := sections.Oldest(); pair != nil; pair = pair.Next() {
		section, err := parseSection(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		catalog.Sections = append(catalog.Sections, section)
	}

	log.Debugf("Parsed catalog with %d sections", len(catalog.Sections))
	return catalog, nil
}

func parseSection(name string, raw json.RawMessage) (domain.SourceSection, error) {
	body, err := decodeObject(raw, fmt.Sprintf("section %q", name))
	if err != nil {
		return domain.SourceSection{}, err
	}

	section := domain.SourceSection{
		Name:  name,
		Types: make([]domain.SourceType, 0, body.Len()),
	}

	for pair := body.Oldest(); pair != nil; pair = pair.Next() {
		typ := domain.SourceType{Name: pair.Key}

		if kindOf(pair.Value) != "an array" {
			log.Debugf("Type %q in section %q has no subtype list (%s)", pair.Key, name, kindOf(pair.Value))
			section.Types = append(section.Types, typ)
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(pair.Value, &items); err != nil {
			return domain.SourceSection{}, fmt.Errorf("%w: section %q, type %q: %v", domain.ErrShape, name, pair.Key, err)
		}

		typ.Subtypes = make([]string, 0, len(items))
		for i, item := range items {
			var subtype string
			if kindOf(item) != "a string" || json.Unmarshal(item, &subtype) != nil {
				return domain.SourceSection{}, fmt.Errorf("%w: section %q, type %q: subtype #%d is %s, want string",
					domain.ErrShape, name, pair.Key, i+1, kindOf(item))
			}
			typ.Subtypes = append(typ.Subtypes, subtype)
		}

		section.Types = append(section.Types, typ)
	}

	return section, nil
}

// decodeObject decodes raw into an insertion-ordered map. A repeated key
// keeps its first position and its last value.
func decodeObject(raw json.RawMessage, what string) (*object, error) {
	if kind := kindOf(raw); kind != "an object" {
		return nil, fmt.Errorf("%w: %s is %s, want object", domain.ErrShape, what, kind)
	}

	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrShape, what, err)
	}
	return obj, nil
}

func kindOf(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}

	switch trimmed[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}
