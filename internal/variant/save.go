package variant

import (
	"fmt"
	"path"

	"userbrush/internal/container"
)

// Save writes the original configuration and every collected asset to
// subfolder/<location>/ in w. It does not Commit w.
func (b *Brush) Save(w container.Writer, subfolder string) error {
	dir := path.Join(subfolder, b.location)

	if err := writeFile(w, path.Join(dir, ConfigFile), b.configData); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFile, err)
	}
	for _, rel := range b.Assets() {
		if err := writeFile(w, path.Join(dir, rel), b.files[rel]); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}
	return nil
}

// Pack saves b into a new folder or .zip at dest and publishes it.
func (b *Brush) Pack(dest, subfolder string) error {
	w, err := container.NewWriter(dest)
	if err != nil {
		return err
	}
	if err := b.Save(w, subfolder); err != nil {
		w.Abort()
		return err
	}
	return w.Commit()
}

func writeFile(w container.Writer, rel string, data []byte) error {
	out, err := w.Create(rel)
	if err != nil {
		return err
	}
	_, werr := out.Write(data)
	cerr := out.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
