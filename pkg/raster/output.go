package raster

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// WritePNG encodes src once and realizes it at every destination path.
// The first destination receives the encoded file; each further destination
// becomes a relative symlink to it, never a second encode. Parent
// directories are created as needed and existing files are replaced.
func WritePNG(src *pixel.Pixmap, destinations []string) error {
	if len(destinations) == 0 {
		return errors.New(errors.ErrCodeOutputFailed, "no destinations given")
	}

	primary := destinations[0]
	if err := os.MkdirAll(filepath.Dir(primary), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "create directory for %s", primary)
	}
	f, err := os.Create(primary)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "create %s", primary)
	}
	if err := png.Encode(f, src.NRGBA()); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "encode %s", primary)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "close %s", primary)
	}

	for _, dest := range destinations[1:] {
		if err := linkTo(primary, dest); err != nil {
			return err
		}
	}
	return nil
}

// linkTo creates dest as a relative symlink to target.
func linkTo(target, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "create directory for %s", dest)
	}
	rel, err := filepath.Rel(filepath.Dir(dest), target)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "relativize %s -> %s", dest, target)
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "replace %s", dest)
	}
	if err := os.Symlink(rel, dest); err != nil {
		return errors.Wrap(errors.ErrCodeOutputFailed, err, "link %s -> %s", dest, rel)
	}
	return nil
}
