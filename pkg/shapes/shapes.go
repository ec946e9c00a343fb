// Package shapes holds the dimensional parameter sets of cross-section
// shapes. Each shape declares its parameter symbols in order, so the
// positional parameter lists of cross-section records can be mapped to and
// from symbolic dictionaries.
package shapes

import (
	"fmt"

	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// Parameters is one shape's dimension set.
type Parameters interface {
	// Shape returns the shape classification the parameters belong to.
	Shape() xmi.Shape
	// Keys returns the parameter symbols in their positional order.
	Keys() []string
	// Map renders the dimensions as a symbol-keyed dictionary.
	Map() map[string]float64
	// Validate checks the dimensional constraints.
	Validate() error
}

func positive(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %g", name, value)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Circular is a solid round section.
type Circular struct {
	D float64
}

func (Circular) Shape() xmi.Shape          { return xmi.ShapeCircular }
func (Circular) Keys() []string            { return []string{"D"} }
func (c Circular) Map() map[string]float64 { return map[string]float64{"D": c.D} }
func (c Circular) Validate() error         { return positive("D", c.D) }

// Rectangular is a solid rectangular section.
type Rectangular struct {
	H float64
	B float64
}

func (Rectangular) Shape() xmi.Shape { return xmi.ShapeRectangular }
func (Rectangular) Keys() []string   { return []string{"H", "B"} }
func (r Rectangular) Map() map[string]float64 {
	return map[string]float64{"H": r.H, "B": r.B}
}
func (r Rectangular) Validate() error {
	return firstError(positive("H", r.H), positive("B", r.B))
}

// LShape is an angle section: height, width, flange and web thickness.
type LShape struct {
	H  float64
	B  float64
	T  float64
	Tw float64
}

func (LShape) Shape() xmi.Shape { return xmi.ShapeLShape }
func (LShape) Keys() []string   { return []string{"H", "B", "T", "t"} }
func (l LShape) Map() map[string]float64 {
	return map[string]float64{"H": l.H, "B": l.B, "T": l.T, "t": l.Tw}
}
func (l LShape) Validate() error {
	return firstError(
		positive("H", l.H), positive("B", l.B),
		positive("T", l.T), positive("t", l.Tw),
	)
}

// TShape is a tee section: depth, width, flange/web thickness and root
// radius.
type TShape struct {
	D  float64
	B  float64
	T  float64
	Tw float64
	R  float64
}

func (TShape) Shape() xmi.Shape { return xmi.ShapeTShape }
func (TShape) Keys() []string   { return []string{"D", "B", "T", "t", "r"} }
func (t TShape) Map() map[string]float64 {
	return map[string]float64{"D": t.D, "B": t.B, "T": t.T, "t": t.Tw, "r": t.R}
}
func (t TShape) Validate() error {
	return firstError(
		positive("D", t.D), positive("B", t.B),
		positive("T", t.T), positive("t", t.Tw),
	)
}

// CShape is a channel section with independent flange thicknesses.
type CShape struct {
	H  float64
	B  float64
	T1 float64
	T2 float64
	Tw float64
}

func (CShape) Shape() xmi.Shape { return xmi.ShapeCShape }
func (CShape) Keys() []string   { return []string{"H", "B", "T1", "T2", "t"} }
func (c CShape) Map() map[string]float64 {
	return map[string]float64{"H": c.H, "B": c.B, "T1": c.T1, "T2": c.T2, "t": c.Tw}
}
func (c CShape) Validate() error {
	return firstError(
		positive("H", c.H), positive("B", c.B),
		positive("T1", c.T1), positive("T2", c.T2), positive("t", c.Tw),
	)
}

// IShape is an I/H section: depth, width, flange/web thickness and root
// radius.
type IShape struct {
	D  float64
	B  float64
	T  float64
	Tw float64
	R  float64
}

func (IShape) Shape() xmi.Shape { return xmi.ShapeIShape }
func (IShape) Keys() []string   { return []string{"D", "B", "T", "t", "r"} }
func (i IShape) Map() map[string]float64 {
	return map[string]float64{"D": i.D, "B": i.B, "T": i.T, "t": i.Tw, "r": i.R}
}
func (i IShape) Validate() error {
	return firstError(
		positive("D", i.D), positive("B", i.B),
		positive("T", i.T), positive("t", i.Tw),
	)
}

// SquareHollow is a square hollow section.
type SquareHollow struct {
	H  float64
	Tw float64
}

func (SquareHollow) Shape() xmi.Shape { return xmi.ShapeSquareHollow }
func (SquareHollow) Keys() []string   { return []string{"H", "t"} }
func (s SquareHollow) Map() map[string]float64 {
	return map[string]float64{"H": s.H, "t": s.Tw}
}
func (s SquareHollow) Validate() error {
	return firstError(positive("H", s.H), positive("t", s.Tw))
}

// RectangularHollow is a rectangular hollow section.
type RectangularHollow struct {
	H  float64
	B  float64
	Tw float64
}

func (RectangularHollow) Shape() xmi.Shape { return xmi.ShapeRectangularHollow }
func (RectangularHollow) Keys() []string   { return []string{"H", "B", "t"} }
func (r RectangularHollow) Map() map[string]float64 {
	return map[string]float64{"H": r.H, "B": r.B, "t": r.Tw}
}
func (r RectangularHollow) Validate() error {
	return firstError(positive("H", r.H), positive("B", r.B), positive("t", r.Tw))
}

// Custom carries the parameters of shapes the schema does not model,
// preserving values without interpreting them.
type Custom struct {
	Shape_ xmi.Shape
	Values map[string]float64
	Order  []string
}

func (c Custom) Shape() xmi.Shape { return c.Shape_ }
func (c Custom) Keys() []string   { return c.Order }
func (c Custom) Map() map[string]float64 {
	values := make(map[string]float64, len(c.Values))
	for key, value := range c.Values {
		values[key] = value
	}
	return values
}
func (c Custom) Validate() error {
	for key, value := range c.Values {
		if value < 0 {
			return fmt.Errorf("%s must be non-negative, got %g", key, value)
		}
	}
	return nil
}
