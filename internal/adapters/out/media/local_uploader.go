// Package media stores uploaded files. The local uploader writes to a
// directory on disk and serves URLs under a configured public base; a
// bucket-backed implementation would replace it behind the same port.
package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// LocalUploader implements ports.Uploader on the local filesystem.
type LocalUploader struct {
	rootDir string
	baseURL string
}

// NewLocalUploader creates an uploader that writes under rootDir and
// returns URLs under baseURL.
func NewLocalUploader(rootDir, baseURL string) (*LocalUploader, error) {
	if rootDir == "" {
		return nil, errs.NewValueIsRequiredError("rootDir")
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &LocalUploader{
		rootDir: rootDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes each file under <rootDir>/<scope>/<entityID>/ and returns
// the corresponding URLs. Any write failure aborts the whole upload.
func (u *LocalUploader) Upload(
	ctx context.Context,
	scope string,
	entityID kernel.UUID,
	files []ports.FileUpload,
) ([]string, error) {
	if scope == "" {
		return nil, errs.NewValueIsRequiredError("scope")
	}
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	dir := filepath.Join(u.rootDir, scope, entityID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(file.Name)
		if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
			return nil, errs.NewValueIsInvalidErrorWithCause("fileName",
				fmt.Errorf("%q is not a usable file name", file.Name))
		}

		if err := os.WriteFile(filepath.Join(dir, name), file.Content, 0o644); err != nil {
			return nil, fmt.Errorf("write upload %s: %w", name, err)
		}

		urls = append(urls, fmt.Sprintf("%s/%s/%s/%s", u.baseURL, scope, entityID, name))
	}

	return urls, nil
}
