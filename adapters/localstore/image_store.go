package localstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jobeserver/demo/domain/image"
	"github.com/jobeserver/demo/pkg/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

type Options struct {
	Path      string
	CreateDir bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Path:      c.ImagePath,
		CreateDir: c.ImageCreateDir,
	}
}

type ImageStore struct {
	path      string
	createDir bool
}

func NewImageStore(opts Options) *ImageStore {
	return &ImageStore{
		path:      filepath.Clean(opts.Path),
		createDir: opts.CreateDir,
	}
}

func (s *ImageStore) Path() string {
	return s.path
}

// Save writes data to a sibling temp file and renames it over the target,
// so the last rename wins and the target never holds a partial write.
func (s *ImageStore) Save(ctx context.Context, data []byte) (int64, error) {
	dir := filepath.Dir(s.path)

	if s.createDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, errors.Wrapf(err, "create directory %s", dir)
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0, errors.Wrap(image.ErrDirNotFound, dir)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	suffix, err := gonanoid.New(12)
	if err != nil {
		return 0, errors.Wrap(err, "generate temp name")
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(s.path)+"."+suffix+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, errors.Wrap(err, "create temp file")
	}

	n, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, errors.Wrap(err, "write temp file")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, errors.Wrapf(err, "replace %s", s.path)
	}

	return int64(n), nil
}
