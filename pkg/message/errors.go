package message

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown message format")
	ErrNilSource     = errors.New("message source is nil")

	ErrParsingCancelled = errors.New("catalog parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse catalog content")
	ErrInvalidCatalog   = errors.New("invalid catalog structure")

	ErrLoadingCancelled    = errors.New("loading catalog cancelled")
	ErrUnsupportedFile     = errors.New("unsupported catalog file extension")
	ErrFailedToReadFile    = errors.New("failed to read catalog file")
	ErrFailedToReadDir     = errors.New("failed to read catalog directory")
	ErrNoCatalogFilesFound = errors.New("no catalog files found")
)
