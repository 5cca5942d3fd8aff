// Package canvas holds the paint-by-cell state machine: configuration, fill
// progress, touch handling and background image bookkeeping. A Canvas is not
// safe for concurrent use; every method must run on the UI loop.
package canvas

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"

	"paint-canvas/internal/core"
	"paint-canvas/internal/imagesrc"
	"paint-canvas/internal/puzzle"
	"paint-canvas/internal/render"

	"github.com/sirupsen/logrus"
)

// ImageSource resolves background references asynchronously.
type ImageSource interface {
	Request(uri string) uint64
	Results() <-chan imagesrc.Result
}

// State is the input state machine position.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Options wires a Canvas to its collaborators. All fields are optional.
type Options struct {
	Images        ImageSource
	Log           logrus.FieldLogger
	OnCellPainted func(core.CellPainted)
}

// Canvas is one paint-by-cell surface.
type Canvas struct {
	gridSize int
	viewport core.Size
	cellSize float64

	targets  map[core.CellKey]string
	selected string

	imageURI     string
	imageGen     uint64
	imagePending bool
	background   *image.RGBA

	filled      map[core.CellKey]struct{}
	state       State
	lastTouched core.CellKey
	hasLast     bool

	dirty bool

	images    ImageSource
	log       logrus.FieldLogger
	onPainted func(core.CellPainted)
}

// New returns a canvas with the default grid size and brush color.
func New(opts Options) *Canvas {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Canvas{
		gridSize:  puzzle.DefaultGridSize,
		targets:   map[core.CellKey]string{},
		selected:  core.NormalizeHex(core.DefaultSelectedColorHex),
		filled:    map[core.CellKey]struct{}{},
		dirty:     true,
		images:    opts.Images,
		log:       log,
		onPainted: opts.OnCellPainted,
	}
}

// Apply replaces the whole configuration, in the order a host sets props.
func (c *Canvas) Apply(cfg puzzle.Config) error {
	if err := c.SetGridSize(cfg.GridSize); err != nil {
		return err
	}
	c.SetCells(cfg.Cells)
	c.SetSelectedColor(cfg.SelectedColorHex)
	if cfg.ImageURI != c.imageURI {
		c.SetImageSource(cfg.ImageURI)
	}
	return nil
}

// SetGridSize changes the side length of the grid. Fills are kept even when
// they no longer fit; pair with SetCells to start over.
func (c *Canvas) SetGridSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", n)
	}
	c.gridSize = n
	c.recomputeCellSize()
	c.dirty = true
	return nil
}

// SetCells replaces the target colors and clears all fills. For duplicate
// coordinates the last entry wins.
func (c *Canvas) SetCells(cells []core.Cell) {
	c.targets = make(map[core.CellKey]string, len(cells))
	for _, cell := range cells {
		target := core.NormalizeHex(cell.TargetColorHex)
		if target == "" {
			target = core.FallbackColorHex
		}
		c.targets[cell.Key()] = target
	}
	c.filled = map[core.CellKey]struct{}{}
	c.dirty = true
}

// SetSelectedColor changes the brush. It only affects future paint attempts.
func (c *Canvas) SetSelectedColor(hex string) {
	c.selected = core.NormalizeHex(hex)
}

// SetImageSource starts loading a new background. The current background
// stays visible until the load completes; an empty uri removes it at once.
func (c *Canvas) SetImageSource(uri string) {
	c.imageURI = uri
	if uri == "" {
		c.imagePending = false
		c.background = nil
		c.dirty = true
	}
	if c.images == nil {
		if uri != "" {
			c.log.WithField("uri", uri).Warn("no image source configured, background disabled")
			c.background = nil
			c.dirty = true
		}
		return
	}
	c.imageGen = c.images.Request(uri)
	c.imagePending = uri != ""
}

// OnViewportResize records the drawing surface size.
func (c *Canvas) OnViewportResize(w, h int) {
	c.viewport = core.Size{W: w, H: h}
	c.recomputeCellSize()
	c.dirty = true
}

func (c *Canvas) recomputeCellSize() {
	if c.gridSize <= 0 || c.viewport.W <= 0 {
		c.cellSize = 0
		return
	}
	c.cellSize = float64(c.viewport.W) / float64(c.gridSize)
}

// CellAt maps a viewport point to a grid cell. The boolean is false when the
// point falls outside the grid.
func (c *Canvas) CellAt(x, y float64) (core.CellKey, bool) {
	if c.cellSize <= 0 {
		return core.CellKey{}, false
	}
	col := math.Floor(x / c.cellSize)
	row := math.Floor(y / c.cellSize)
	limit := float64(c.gridSize)
	// NaN fails every comparison, so it is rejected here too.
	if !(col >= 0 && col < limit && row >= 0 && row < limit) {
		return core.CellKey{}, false
	}
	return core.CellKey{Row: int(row), Col: int(col)}, true
}

// TouchStart begins a gesture and processes its first sample.
func (c *Canvas) TouchStart(x, y float64) {
	c.state = Dragging
	c.hasLast = false
	c.sample(x, y)
}

// TouchMove processes a drag sample. Samples outside a gesture are ignored.
func (c *Canvas) TouchMove(x, y float64) {
	if c.state != Dragging {
		return
	}
	c.sample(x, y)
}

// TouchEnd finishes the gesture.
func (c *Canvas) TouchEnd() {
	c.state = Idle
	c.hasLast = false
}

// TouchCancel aborts the gesture. Paint already committed stays.
func (c *Canvas) TouchCancel() { c.TouchEnd() }

func (c *Canvas) sample(x, y float64) {
	key, ok := c.CellAt(x, y)
	if !ok {
		return
	}
	if c.hasLast && key == c.lastTouched {
		return
	}
	c.lastTouched = key
	c.hasLast = true
	c.attempt(key)
}

// attempt evaluates painting key with the selected color.
func (c *Canvas) attempt(key core.CellKey) {
	if _, done := c.filled[key]; done {
		return
	}
	target, ok := c.targets[key]
	correct := ok && target == c.selected
	if correct {
		c.filled[key] = struct{}{}
		c.dirty = true
	}
	if c.onPainted != nil {
		c.onPainted(core.CellPainted{Row: key.Row, Col: key.Col, Correct: correct})
	}
}

// Pump applies any finished background loads without blocking.
func (c *Canvas) Pump() {
	if c.images == nil {
		return
	}
	for {
		select {
		case res := <-c.images.Results():
			c.applyImage(res)
		default:
			return
		}
	}
}

// AwaitImage blocks until the latest requested background has been applied.
func (c *Canvas) AwaitImage(ctx context.Context) error {
	if c.images == nil {
		return nil
	}
	for c.imagePending {
		select {
		case res := <-c.images.Results():
			c.applyImage(res)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *Canvas) applyImage(res imagesrc.Result) {
	fields := logrus.Fields{"uri": res.URI, "generation": res.Generation}
	if res.Generation != c.imageGen {
		c.log.WithFields(fields).Debug("discarding stale background")
		return
	}
	c.imagePending = false
	c.dirty = true
	if res.Err != nil || res.Image == nil {
		err := res.Err
		if err == nil {
			err = errors.New("loader returned no image")
		}
		c.log.WithFields(fields).WithError(err).Warn("background image unavailable")
		c.background = nil
		return
	}
	c.background = res.Image
}

// Close releases the background and cancels any in-flight load.
func (c *Canvas) Close() {
	if c.images != nil && c.imagePending {
		c.imageGen = c.images.Request("")
	}
	c.imagePending = false
	c.background = nil
	c.state = Idle
	c.hasLast = false
}

// TakeRedraw reports whether the visible state changed since the last call.
func (c *Canvas) TakeRedraw() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Scene snapshots what the renderer needs for one frame.
func (c *Canvas) Scene() render.Scene {
	filled := c.Filled()
	cells := make([]core.Cell, len(filled))
	for i, key := range filled {
		cells[i] = core.Cell{Row: key.Row, Col: key.Col, TargetColorHex: c.targets[key]}
	}
	sc := render.Scene{
		Size:     c.viewport,
		GridSize: c.gridSize,
		CellSize: c.cellSize,
		Filled:   cells,
	}
	if c.background != nil {
		sc.Background = c.background
	}
	return sc
}

// Filled returns the filled cells in row-major order.
func (c *Canvas) Filled() []core.CellKey {
	keys := make([]core.CellKey, 0, len(c.filled))
	for k := range c.filled {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})
	return keys
}

// IsFilled reports whether key has been painted correctly.
func (c *Canvas) IsFilled(key core.CellKey) bool {
	_, ok := c.filled[key]
	return ok
}

// Progress returns the number of filled cells and the number of target cells.
func (c *Canvas) Progress() (filled, total int) { return len(c.filled), len(c.targets) }

// Complete reports whether every target cell has been filled.
func (c *Canvas) Complete() bool {
	return len(c.targets) > 0 && len(c.filled) == len(c.targets)
}

// Palette returns the distinct target colors in sorted order.
func (c *Canvas) Palette() []string {
	seen := map[string]struct{}{}
	for _, hex := range c.targets {
		seen[hex] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for hex := range seen {
		out = append(out, hex)
	}
	sort.Strings(out)
	return out
}

// Target returns the target color of key.
func (c *Canvas) Target(key core.CellKey) (string, bool) {
	hex, ok := c.targets[key]
	return hex, ok
}

func (c *Canvas) GridSize() int { return c.gridSize }
func (c *Canvas) CellSize() float64 { return c.cellSize }
func (c *Canvas) Viewport() core.Size { return c.viewport }
func (c *Canvas) SelectedColor() string { return c.selected }
func (c *Canvas) ImageURI() string { return c.imageURI }
func (c *Canvas) ImagePending() bool { return c.imagePending }
func (c *Canvas) Background() *image.RGBA { return c.background }
func (c *Canvas) State() State { return c.state }
func (c *Canvas) LastTouched() (core.CellKey, bool) { return c.lastTouched, c.hasLast }
