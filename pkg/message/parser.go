package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds message templates as language -> nested keys -> template.
type Catalog map[string]map[string]any

// Parser decodes catalog file content.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)
	// SupportsFileExtension reports whether the parser handles ext. The
	// extension may or may not carry a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns the parser registered for the extension of name, or
// nil when none is.
func ParserForFile(name string) Parser {
	ext := path.Ext(name)
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if ext != "" && p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser decodes YAML catalogs.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return toCatalog(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser decodes JSON catalogs.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return toCatalog(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func toCatalog(data map[string]any) (Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalog)
	}

	cat := make(Catalog, len(data))
	for lang, val := range data {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		cat[lang] = messages
	}
	return cat, nil
}
