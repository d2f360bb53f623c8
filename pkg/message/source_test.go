package message_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/dmitrymomot/xssguard/pkg/message"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml", func(t *testing.T) {
		t.Parallel()
		cat, err := message.FileSource("testdata/catalog/en.yaml").Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, cat, "en")
		assert.Equal(t, "Hello, %{name}!", cat["en"]["greeting"])
		assert.Contains(t, cat["en"], "page")
	})

	t.Run("loads json", func(t *testing.T) {
		t.Parallel()
		cat, err := message.FileSource("testdata/single.json").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hallo, %{name}!", cat["de"]["greeting"])
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := message.FileSource("testdata/catalog/README.txt").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrUnsupportedFile)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := message.FileSource("testdata/nope.yaml").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrFailedToReadFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := message.FileSource("testdata/broken.yaml").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrFailedToParse)
	})

	t.Run("language without a map", func(t *testing.T) {
		t.Parallel()
		_, err := message.FileSource("testdata/flat.yaml").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrInvalidCatalog)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := message.FileSource("testdata/catalog/en.yaml").Load(ctx)
		assert.ErrorIs(t, err, message.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	t.Run("merges files in lexical order", func(t *testing.T) {
		t.Parallel()
		cat, err := message.FSSource(os.DirFS("testdata"), "catalog").Load(context.Background())
		require.NoError(t, err)

		assert.Len(t, cat, 2)
		assert.Equal(t, "Hallo, %{name}!", cat["de"]["greeting"])
		assert.Equal(t, "Hi, %{name}!", cat["en"]["greeting"], "override.yml is read after en.yaml")
		assert.Contains(t, cat["en"], "page", "keys missing from the override survive")
	})

	t.Run("no catalog files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"msgs/README.md":     {Data: []byte("# messages")},
			"msgs/nested/a.yaml": {Data: []byte("en:\n  a: b\n")},
		}
		_, err := message.FSSource(fsys, "msgs").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrNoCatalogFilesFound)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := message.FSSource(fstest.MapFS{}, "msgs").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrFailedToReadDir)
	})

	t.Run("bad file fails the load", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"msgs/a.json": {Data: []byte(`{"en": {"a": "b"}}`)},
			"msgs/b.json": {Data: []byte(`{"en": `)},
		}
		_, err := message.FSSource(fsys, "msgs").Load(context.Background())
		assert.ErrorIs(t, err, message.ErrFailedToParse)
		assert.Contains(t, err.Error(), "msgs/b.json")
	})
}

func TestParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, message.YAMLParser{}, message.ParserForFile("en.yaml"))
	assert.IsType(t, message.YAMLParser{}, message.ParserForFile("en.YML"))
	assert.IsType(t, message.JSONParser{}, message.ParserForFile("dir/en.json"))
	assert.Nil(t, message.ParserForFile("en.toml"))
	assert.Nil(t, message.ParserForFile("yaml"))
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	want := message.Catalog{"en": {"a": "b"}}
	got, err := message.MapSource(want).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
