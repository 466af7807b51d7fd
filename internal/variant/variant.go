// Package variant loads user brush variants from folders or archives,
// exports brush descriptors as editable configurations, and repackages
// loaded variants.
package variant

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"userbrush/internal/brush"
	"userbrush/internal/brushcfg"
	"userbrush/internal/container"
	"userbrush/internal/mapping"
	"userbrush/internal/registry"
)

// ConfigFile is the name of the configuration file inside a bundle.
const ConfigFile = brushcfg.FileName

var (
	// ErrNoConfig is returned when a bundle has no Brush.cfg.
	ErrNoConfig = errors.New("no " + ConfigFile + " found")
	// ErrMissingIcon is returned when the declared button icon cannot be loaded.
	ErrMissingIcon = errors.New("icon texture could not be loaded")
)

// LoadError ties a load failure to the bundle it came from.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load brush at %s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Brush is a loaded user variant. It owns the raw configuration and the
// bytes of every asset read while loading, for repackaging.
type Brush struct {
	Descriptor *brush.Descriptor
	Properties *brushcfg.Properties
	// Warnings lists non-fatal problems met while loading.
	Warnings []string

	location      string
	configData    []byte
	files         map[string][]byte
	embedInSketch bool
}

// Location is the bundle name used when the variant is repackaged.
func (b *Brush) Location() string { return b.location }

// ShowInGUI reports whether the variant should be listed in brush pickers.
func (b *Brush) ShowInGUI() bool { return !b.Descriptor.HiddenInGUI }

// EmbedInSketch reports whether the variant may be saved inside sketches.
func (b *Brush) EmbedInSketch() bool { return b.embedInSketch }

// ConfigData returns the configuration exactly as read.
func (b *Brush) ConfigData() []byte { return b.configData }

// Assets returns the paths of the collected assets, sorted.
func (b *Brush) Assets() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Asset returns the collected bytes for rel.
func (b *Brush) Asset(rel string) ([]byte, bool) {
	p, err := container.CleanPath(rel)
	if err != nil {
		return nil, false
	}
	data, ok := b.files[p]
	return data, ok
}

func (b *Brush) warn(format string, args ...any) {
	b.Warnings = append(b.Warnings, fmt.Sprintf(format, args...))
}

// Create loads the variant in sourcePath, which is either a folder holding
// Brush.cfg or an archive containing it at any depth. Variants loaded this
// way are always shown in the GUI.
func Create(sourcePath string, reg *registry.Registry) (*Brush, error) {
	c, err := container.Open(sourcePath)
	if err != nil {
		return nil, &LoadError{Location: sourcePath, Err: err}
	}
	defer c.Close()

	location := c.Name()
	if c.IsArchive() {
		configPath, ok := c.Find(ConfigFile)
		if !ok {
			return nil, &LoadError{Location: sourcePath, Err: ErrNoConfig}
		}
		if err := c.SetRoot(path.Dir(configPath)); err != nil {
			return nil, &LoadError{Location: sourcePath, Err: err}
		}
	}
	return Load(c, location, reg, true)
}

// CreateFromSketch loads a variant embedded in a sketch archive below
// subfolder. Its visibility follows the variant's copy restrictions.
func CreateFromSketch(sketchPath, subfolder string, reg *registry.Registry) (*Brush, error) {
	c, err := container.Open(sketchPath)
	if err != nil {
		return nil, &LoadError{Location: sketchPath, Err: err}
	}
	defer c.Close()

	if err := c.SetRoot(subfolder); err != nil {
		return nil, &LoadError{Location: sketchPath, Err: err}
	}
	configPath, ok := c.Find(ConfigFile)
	if !ok {
		return nil, &LoadError{Location: sketchPath, Err: ErrNoConfig}
	}
	dir := path.Dir(configPath)
	if err := c.SetRoot(dir); err != nil {
		return nil, &LoadError{Location: sketchPath, Err: err}
	}
	location := path.Base(dir)
	if dir == "." {
		location = c.Name()
	}
	return Load(c, location, reg, false)
}

// Load reads the variant at the current root of c. The registry is only
// read; callers that keep the result should Register its descriptor.
func Load(c container.Container, location string, reg *registry.Registry, forceInGUI bool) (*Brush, error) {
	b := &Brush{location: location, files: make(map[string][]byte)}
	if err := b.initialize(c, reg, forceInGUI); err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	return b, nil
}

func (b *Brush) initialize(c container.Container, reg *registry.Registry, forceInGUI bool) error {
	if !c.Exists(ConfigFile) {
		return ErrNoConfig
	}

	data, err := container.ReadFile(c, ConfigFile)
	if err != nil {
		return err
	}
	props, warnings, err := brushcfg.Parse(data)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", ConfigFile, err)
	}
	if len(warnings) > 0 {
		return &brushcfg.ValidationError{Warnings: warnings}
	}

	base, err := reg.Resolve(props.VariantOf)
	if err != nil {
		return err
	}
	if err := reg.CheckUnique(props.GUID); err != nil {
		return err
	}

	desc := registry.Derive(base, props.GUID, props.Name)
	desc.HiddenInGUI = !forceInGUI && props.CopyRestrictions != brushcfg.EmbedAndShare
	b.embedInSketch = props.CopyRestrictions != brushcfg.DoNotEmbed
	b.configData = data
	b.Properties = props
	b.Descriptor = desc

	if props.ButtonIcon != "" {
		icon, err := b.loadTexture(c, props.ButtonIcon)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMissingIcon, props.ButtonIcon, err)
		}
		desc.ButtonTexture = icon
	}

	b.Warnings = append(b.Warnings, mapping.Apply(props, desc)...)
	b.applyMaterial(c, reg, props.Material)
	return nil
}
