package books

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// SystemRef selects a definition and a separator variant.
type SystemRef struct {
	System    string `yaml:"system" json:"system"`
	Separator string `yaml:"separator,omitempty" json:"separator,omitempty"`
}

// DefaultSystemRefs lists the systems of DefaultRegistry: full names and
// Bible team abbreviations, each with a space, a non-breaking space and the
// placeholder separator.
func DefaultSystemRefs() []SystemRef {
	return []SystemRef{
		{System: FullName, Separator: "space"},
		{System: FullName, Separator: "nbsp"},
		{System: FullName, Separator: "placeholder"},
		{System: TeamAbbr, Separator: "space"},
		{System: TeamAbbr, Separator: "nbsp"},
		{System: TeamAbbr, Separator: "placeholder"},
	}
}

// Catalog holds naming system definitions: the built-in ones plus any loaded
// from YAML files. It builds Systems and Registries from them.
// Safe for concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
	dir         string
	watcher     *fsnotify.Watcher
	stopChan    chan struct{}
	onChange    func(event string, def *Definition)
	logger      *slog.Logger
}

// NewCatalog creates a catalog holding the built-in definitions.
func NewCatalog() *Catalog {
	c := &Catalog{
		definitions: make(map[string]*Definition),
		logger:      slog.Default(),
	}
	for _, def := range builtinDefinitions() {
		c.definitions[def.ID] = def
	}
	return c
}

// SetLogger sets the logger used for reload failures.
func (c *Catalog) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

// Register adds a definition. Built-in definitions and definitions loaded from
// another file cannot be replaced.
func (c *Catalog) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.definitions[def.ID]; ok {
		if existing.origin == "" || existing.origin != def.origin {
			return fmt.Errorf("definition %q already registered", def.ID)
		}
	}
	c.definitions[def.ID] = def
	return nil
}

// Unregister removes a loaded definition. Built-in definitions cannot be
// removed.
func (c *Catalog) Unregister(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.definitions[id]
	if !ok {
		return fmt.Errorf("definition %q not found", id)
	}
	if existing.origin == "" {
		return fmt.Errorf("definition %q is built in", id)
	}
	delete(c.definitions, id)
	return nil
}

// Get returns a definition by id.
func (c *Catalog) Get(id string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.definitions[id]
	return def, ok
}

// List returns all definition ids in sorted order.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.definitions))
	for id := range c.definitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of definitions.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.definitions)
}

// System builds the naming system id with the given separator.
func (c *Catalog) System(id string, sep Separator) (*System, error) {
	c.mu.RLock()
	chain, err := c.chain(id)
	c.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	builder := NewBuilder(id).Separator(sep)
	language := ""
	for _, def := range chain {
		if def.Language != "" {
			language = def.Language
		}
		builder.Override(def.changes)
		if def.StripPeriods {
			builder.StripPeriods()
		}
	}
	if language != "" {
		builder.Language(language)
	}
	return builder.Build()
}

// chain returns the definitions from the root base to id. Must be called
// under read lock.
func (c *Catalog) chain(id string) ([]*Definition, error) {
	var chain []*Definition
	seen := make(map[string]bool)
	for current := id; current != ""; {
		if seen[current] {
			return nil, fmt.Errorf("definition %q: base cycle through %q", id, current)
		}
		seen[current] = true
		def, ok := c.definitions[current]
		if !ok {
			if current == id {
				return nil, fmt.Errorf("definition %q not found", id)
			}
			return nil, fmt.Errorf("definition %q: base %q not found", id, current)
		}
		chain = append(chain, def)
		current = def.Base
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Registry builds a registry from the referenced systems, in order.
func (c *Catalog) Registry(refs []SystemRef) (*Registry, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("registry needs at least one naming system")
	}
	systems := make([]*System, 0, len(refs))
	for _, ref := range refs {
		sep, err := ParseSeparator(ref.Separator)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", ref.System, err)
		}
		system, err := c.System(ref.System, sep)
		if err != nil {
			return nil, err
		}
		systems = append(systems, system)
	}
	return NewRegistry(systems...), nil
}

// LoadDirectory loads all YAML definition files from a directory.
func (c *Catalog) LoadDirectory(dir string) error {
	c.mu.Lock()
	c.dir = dir
	c.mu.Unlock()

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", entry.Name(), err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading definitions: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads a single definition file. Reloading the same file replaces
// the definition it registered before.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	def.origin = filepath.Clean(path)

	if err := c.Register(&def); err != nil {
		return fmt.Errorf("registering definition: %w", err)
	}
	return nil
}

// Reload drops every loaded definition and loads the configured directory
// again.
func (c *Catalog) Reload() error {
	c.mu.Lock()
	dir := c.dir
	if dir == "" {
		c.mu.Unlock()
		return fmt.Errorf("no directory configured for reload")
	}
	for id, def := range c.definitions {
		if def.origin != "" {
			delete(c.definitions, id)
		}
	}
	c.mu.Unlock()

	return c.LoadDirectory(dir)
}

// SetOnChange sets a callback invoked after the watched directory changed.
// def is nil for removals.
func (c *Catalog) SetOnChange(fn func(event string, def *Definition)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Watch starts watching the definition directory for changes.
func (c *Catalog) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching directory %s: %w", c.dir, err)
	}

	c.watcher = watcher
	c.stopChan = make(chan struct{})
	go c.watchLoop(watcher, c.stopChan)
	return nil
}

func (c *Catalog) watchLoop(watcher *fsnotify.Watcher, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isYAML(event.Name) {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				c.handleFileChange(event.Name, "create")
			case event.Op&fsnotify.Write == fsnotify.Write:
				c.handleFileChange(event.Name, "modify")
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				c.handleFileRemove(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.log().Warn("naming system watcher error", "error", err)
		}
	}
}

func (c *Catalog) handleFileChange(path, event string) {
	if err := c.LoadFile(path); err != nil {
		c.log().Warn("reloading naming system definition failed", "path", path, "error", err)
		return
	}

	c.mu.RLock()
	onChange := c.onChange
	var loaded *Definition
	for _, def := range c.definitions {
		if def.origin == filepath.Clean(path) {
			loaded = def
			break
		}
	}
	c.mu.RUnlock()

	c.log().Debug("naming system definition loaded", "path", path, "event", event)
	if onChange != nil && loaded != nil {
		onChange(event, loaded)
	}
}

func (c *Catalog) handleFileRemove(path string) {
	// Files do not map back to ids once gone, so reload everything.
	if err := c.Reload(); err != nil {
		c.log().Warn("reloading naming system definitions failed", "path", path, "error", err)
	}

	c.mu.RLock()
	onChange := c.onChange
	c.mu.RUnlock()
	if onChange != nil {
		onChange("remove", nil)
	}
}

// StopWatch stops watching the definition directory.
func (c *Catalog) StopWatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopChan != nil {
		close(c.stopChan)
		c.stopChan = nil
	}
	if c.watcher != nil {
		c.watcher.Close()
		c.watcher = nil
	}
}

func (c *Catalog) log() *slog.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
