package message

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Source loads a Catalog.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Catalog, error)

func (f SourceFunc) Load(ctx context.Context) (Catalog, error) { return f(ctx) }

// MapSource serves an in-memory catalog.
func MapSource(cat Catalog) Source {
	return SourceFunc(func(context.Context) (Catalog, error) {
		return cat, nil
	})
}

// FileSource reads a single YAML or JSON catalog file from disk. The parser
// is chosen by the file extension.
func FileSource(name string) Source {
	return SourceFunc(func(ctx context.Context) (Catalog, error) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		parser := ParserForFile(name)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
		}

		content, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		return parser.Parse(ctx, content)
	})
}

// FSSource merges every YAML and JSON file directly inside dir of fsys.
// Files are read in lexical order, so a later file overrides keys of an
// earlier one for the same language. Subdirectories and unsupported files
// are ignored.
func FSSource(fsys fs.FS, dir string) Source {
	return SourceFunc(func(ctx context.Context) (Catalog, error) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadDir, err)
		}

		cat := make(Catalog)
		found := false
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			parser := ParserForFile(entry.Name())
			if parser == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, errors.Join(ErrLoadingCancelled, err)
			}

			name := path.Join(dir, entry.Name())
			content, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
			}
			fileCat, err := parser.Parse(ctx, content)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			for lang, messages := range fileCat {
				if cat[lang] == nil {
					cat[lang] = make(map[string]any, len(messages))
				}
				maps.Copy(cat[lang], messages)
			}
			found = true
		}

		if !found {
			return nil, fmt.Errorf("%w in %q", ErrNoCatalogFilesFound, dir)
		}
		return cat, nil
	})
}
