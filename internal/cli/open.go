package cli

import (
	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/slot"
	"github.com/utsavhq/utsav/internal/store"
)

// Error codes surfaced in JSON output.
const (
	ErrCodeOpenFailed = "E001" // database could not be opened
	ErrCodeNotFound   = "E002" // no event matches the id
	ErrCodeRejected   = "E003" // mutation rejected by the store
	ErrCodeBadInput   = "E004" // invalid flag or argument values
)

// openStore opens the durable slot at dbPath, loads the vendor catalog
// (the built-in one unless catalogPath is set), and constructs the event
// store. The returned cleanup closes the slot.
func openStore(opts *RootOptions, dbPath, catalogPath string) (*store.Store, func(), error) {
	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to load vendor catalog", err)
		}
		cat = loaded
	}

	sl, err := slot.Open(dbPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	notFound := store.Permissive
	if opts.Strict {
		notFound = store.Strict
	}

	st, err := store.New(sl, cat, store.Options{NotFound: notFound})
	if err != nil {
		sl.Close()
		return nil, nil, WrapExitError(ExitCommandError, "failed to load events", err)
	}

	return st, func() { sl.Close() }, nil
}
