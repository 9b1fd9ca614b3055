package scanf

import (
	"context"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CatalogEntry is one named format in a catalog or catalog file.
type CatalogEntry struct {
	Name        string `yaml:"name"`
	Format      string `yaml:"format"`
	Description string `yaml:"description,omitempty"`
}

// catalogFile is the YAML document shape for format catalog files:
//
//	version: 1
//	formats:
//	  - name: point
//	    format: "%(x)d,%(y)d"
//	    description: cartesian point
type catalogFile struct {
	Version int            `yaml:"version"`
	Formats []CatalogEntry `yaml:"formats"`
}

// Catalog is a registry of named formats. Every format is compiled on
// registration through the owning engine, so a catalog load surfaces
// bad formats immediately rather than at first scan.
type Catalog struct {
	mu       sync.RWMutex
	engine   *Engine
	entries  map[string]CatalogEntry
	compiled map[string]*Pattern
}

// NewCatalog creates an empty catalog backed by the given engine.
func NewCatalog(engine *Engine) *Catalog {
	return &Catalog{
		engine:   engine,
		entries:  make(map[string]CatalogEntry),
		compiled: make(map[string]*Pattern),
	}
}

// Register compiles a format and stores it under name.
// Returns an error if the name is empty, already taken, or the format
// does not compile.
func (c *Catalog) Register(name, format, description string) error {
	if name == "" {
		return NewEmptyFormatNameError()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; exists {
		return NewFormatExistsError(name)
	}

	p, err := c.engine.Compile(format)
	if err != nil {
		return err
	}

	c.entries[name] = CatalogEntry{Name: name, Format: format, Description: description}
	c.compiled[name] = p
	c.engine.logger.Debug(LogMsgFormatRegister,
		zap.String(LogFieldName, name),
		zap.String(LogFieldFormat, format),
	)
	return nil
}

// MustRegister registers a format and panics on error.
func (c *Catalog) MustRegister(name, format, description string) {
	if err := c.Register(name, format, description); err != nil {
		panic(err)
	}
}

// Lookup returns the compiled pattern for a registered name.
func (c *Catalog) Lookup(name string) (*Pattern, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.compiled[name]
	if !ok {
		return nil, NewFormatNotFoundError(name)
	}
	return p, nil
}

// Scan extracts from input using a registered format by name.
func (c *Catalog) Scan(name, input string) (*Result, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return p.Extract(input)
}

// Get retrieves the catalog entry for a name.
func (c *Catalog) Get(name string) (CatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[name]
	return entry, ok
}

// Unregister removes a named format. Returns true if it existed.
func (c *Catalog) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; !ok {
		return false
	}
	delete(c.entries, name)
	delete(c.compiled, name)
	return true
}

// List returns all registered format names in sorted order.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered formats.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Load registers every format from a YAML catalog document.
// Registration stops at the first bad entry.
func (c *Catalog) Load(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return NewCatalogParseError("", err)
	}
	for _, entry := range file.Formats {
		if err := c.Register(entry.Name, entry.Format, entry.Description); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads and loads a YAML catalog file.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewCatalogReadError(path, err)
	}
	if err := c.Load(data); err != nil {
		return err
	}
	c.engine.logger.Debug(LogMsgCatalogLoaded,
		zap.String(LogFieldPath, path),
		zap.Int(LogFieldEntries, c.Len()),
	)
	return nil
}

// LoadStore registers every format held by a FormatStore.
func (c *Catalog) LoadStore(ctx context.Context, store FormatStore) error {
	stored, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, f := range stored {
		if err := c.Register(f.Name, f.Format, f.Description); err != nil {
			return err
		}
	}
	return nil
}
