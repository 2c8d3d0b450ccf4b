package ports

import (
	"context"

	"agrilease/internal/core/domain/model/kernel"
)

// FileUpload is a named blob handed to the Uploader.
type FileUpload struct {
	Name    string
	Content []byte
}

// Uploader stores files with an external media service and returns their
// URLs. Unlike notification and audit, upload is synchronous and its
// failures propagate: a lease without its agreement attachments must not
// be created.
type Uploader interface {
	Upload(ctx context.Context, scope string, entityID kernel.UUID, files []FileUpload) ([]string, error)
}
