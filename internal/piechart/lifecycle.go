package piechart

import (
	"fmt"
	"log/slog"
	"sync"
)

// Surface is the drawing target a chart instance is bound to.
type Surface interface {
	Size() (width, height int)
	Paint(content []byte)
	Clear()
}

// Library is an external charting library: it constructs an instance that
// paints cfg onto surface.
type Library interface {
	New(surface Surface, cfg *Config) (Instance, error)
}

// Instance is a library-owned chart bound to a surface.
type Instance interface {
	// Destroy releases the instance. It is fire-and-forget.
	Destroy()
}

// Chart owns at most one chart instance for a surface. Every Update replaces
// the instance wholesale; the previous one is destroyed first.
// A Chart is safe for concurrent use.
type Chart struct {
	mu       sync.Mutex
	lib      Library
	surface  Surface
	instance Instance
	input    Input
	config   *Config
}

// NewChart returns an unmounted chart drawing with lib onto surface.
func NewChart(lib Library, surface Surface) *Chart {
	return &Chart{lib: lib, surface: surface}
}

// Update mounts the chart with in, or remounts it if already mounted.
// Invalid input is rejected before the current instance is touched.
func (c *Chart) Update(in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	in = in.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.destroyLocked()

	cfg := NewConfig(in, Colors(in.Len()))
	instance, err := c.lib.New(c.surface, cfg)
	if err != nil {
		return fmt.Errorf("creating chart instance: %w", err)
	}
	c.instance = instance
	c.input = in
	c.config = cfg
	slog.Debug("chart mounted", "categories", in.Len())
	return nil
}

// Unmount destroys the current instance, if any.
func (c *Chart) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyLocked()
}

func (c *Chart) destroyLocked() {
	if c.instance == nil {
		return
	}
	c.instance.Destroy()
	c.instance = nil
	c.config = nil
	c.input = Input{}
	slog.Debug("chart destroyed")
}

// Mounted reports whether an instance currently exists.
func (c *Chart) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instance != nil
}

// Instance returns the current instance, or nil when unmounted.
func (c *Chart) Instance() Instance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instance
}

// Input returns a copy of the mounted input.
func (c *Chart) Input() Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input.Clone()
}

// Config returns the mounted configuration, or nil when unmounted.
func (c *Chart) Config() *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Snapshot returns the mounted input and its config read together, so both
// always come from the same mount. The config is nil when unmounted.
func (c *Chart) Snapshot() (Input, *Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input.Clone(), c.config
}

// Render mounts in onto surface with lib, hands the mounted config to use
// while the painted result is on the surface, and destroys the instance
// before returning.
func Render(lib Library, surface Surface, in Input, use func(cfg *Config) error) error {
	chart := NewChart(lib, surface)
	defer chart.Unmount()
	if err := chart.Update(in); err != nil {
		return err
	}
	if use == nil {
		return nil
	}
	return use(chart.Config())
}
