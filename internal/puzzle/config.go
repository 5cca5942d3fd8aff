package puzzle

import (
	"encoding/json"
	"math"

	"paint-canvas/internal/core"
)

// DefaultGridSize is the side length used when a puzzle omits or mangles it.
const DefaultGridSize = 60

// Config is the data-only configuration a host hands to the canvas.
type Config struct {
	GridSize         int
	Cells            []core.Cell
	SelectedColorHex string
	ImageURI         string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:         DefaultGridSize,
		SelectedColorHex: core.DefaultSelectedColorHex,
	}
}

// FromMap populates a Config from loosely typed data such as decoded YAML,
// TOML or JSON. Unknown keys are ignored and malformed values fall back to
// defaults instead of failing.
func FromMap(m map[string]any) Config {
	c := DefaultConfig()
	if m == nil {
		return c
	}
	if v, ok := m["gridSize"]; ok {
		if n, ok := asInt(v); ok && n > 0 {
			c.GridSize = n
		}
	}
	if v, ok := m["cells"]; ok {
		c.Cells = CoerceCells(v)
	}
	if v, ok := m["selectedColorHex"].(string); ok {
		c.SelectedColorHex = v
	}
	if v, ok := m["imageUri"].(string); ok {
		c.ImageURI = v
	}
	return c
}

// CoerceCells converts a loosely typed cell list into cells. Entries with a
// missing or wrong-typed row or col get 0; a missing or wrong-typed color gets
// core.FallbackColorHex. Anything that is not a list yields no cells.
func CoerceCells(v any) []core.Cell {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []map[string]any:
		items = make([]any, len(list))
		for i := range list {
			items[i] = list[i]
		}
	case []core.Cell:
		return append([]core.Cell(nil), list...)
	default:
		return nil
	}
	cells := make([]core.Cell, 0, len(items))
	for _, item := range items {
		cells = append(cells, coerceCell(item))
	}
	return cells
}

func coerceCell(v any) core.Cell {
	cell := core.Cell{TargetColorHex: core.FallbackColorHex}
	m, ok := v.(map[string]any)
	if !ok {
		return cell
	}
	if n, ok := asInt(m["row"]); ok {
		cell.Row = n
	}
	if n, ok := asInt(m["col"]); ok {
		cell.Col = n
	}
	if s, ok := m["targetColorHex"].(string); ok && s != "" {
		cell.TargetColorHex = s
	}
	return cell
}

// asInt accepts any numeric representation the decoders produce and
// truncates fractional values toward zero.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
