package profilecss

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// Publisher persists the final stylesheet.
type Publisher interface {
	Publish(path string, text string) error
}

// FilePublisher writes the stylesheet to the local filesystem, creating the
// output directory when needed and replacing any previous file.
type FilePublisher struct {
	Perm os.FileMode // 0 means 0644
}

// Publish writes text to a temporary file next to path and renames it into place,
// so readers never see a half-written stylesheet.
func (p FilePublisher) Publish(path string, text string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, removeIfExists(tmp.Name()))
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		err = multierr.Append(fmt.Errorf("write %s: %w", tmp.Name(), err), tmp.Close())
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	perm := p.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

func removeIfExists(name string) error {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}
