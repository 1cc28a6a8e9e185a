// Package blob abstracts the object storage that holds project images.
// Stored objects are addressed by the public URL returned on save; callers
// never see paths or keys.
package blob

import (
	"context"
	"io"
)

// Store saves uploaded files and deletes them by the URL it handed out.
// Delete is best-effort from the caller's point of view: failures are logged
// by the caller, never propagated to HTTP responses.
type Store interface {
	// Save stores the file contents and returns a retrievable URL.
	// name is the client-supplied filename, used only for its extension.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Delete removes the object behind a previously returned URL.
	// URLs that were not issued by this store are ignored.
	Delete(ctx context.Context, url string) error
}
