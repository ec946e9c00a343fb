package xmi

import (
	"errors"
	"fmt"
	"math"
)

// Point3D is a coordinate triple. Points constructed through a Model's
// point factory are deduplicated, so coincident coordinates authored
// independently share one instance.
type Point3D struct {
	BaseEntity
	X float64
	Y float64
	Z float64
}

// EqualsWithinTolerance reports whether every coordinate of the two points
// differs by at most tol.
func (p *Point3D) EqualsWithinTolerance(other *Point3D, tol float64) bool {
	if other == nil {
		return false
	}
	return math.Abs(p.X-other.X) <= tol &&
		math.Abs(p.Y-other.Y) <= tol &&
		math.Abs(p.Z-other.Z) <= tol
}

func (p *Point3D) encode() map[string]any {
	record := encodeBase(&p.BaseEntity)
	record["X"] = p.X
	record["Y"] = p.Y
	record["Z"] = p.Z
	return record
}

func newPoint3D(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiPoint3D", DomainGeometry)
	x, err := requiredFloat(obj, "X")
	if err != nil {
		errs = append(errs, err)
	}
	y, err := requiredFloat(obj, "Y")
	if err != nil {
		errs = append(errs, err)
	}
	z, err := requiredFloat(obj, "Z")
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &Point3D{
		BaseEntity: base,
		X:          x,
		Y:          y,
		Z:          z,
	}, nil
}

// makePoint resolves a nested point value: an already constructed Point3D is
// accepted directly, a map is built through the point factory when one is
// available so deduplication applies transitively.
func makePoint(value any, points PointFactory) (*Point3D, []error) {
	switch v := value.(type) {
	case *Point3D:
		return v, nil
	case map[string]any:
		x, errX := requiredFloat(v, "X")
		y, errY := requiredFloat(v, "Y")
		z, errZ := requiredFloat(v, "Z")
		var errs []error
		for _, err := range []error{errX, errY, errZ} {
			if err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return nil, errs
		}
		if points != nil {
			return points(x, y, z), nil
		}
		ent, errs := newPoint3D(v, nil)
		if len(errs) > 0 {
			return nil, errs
		}
		return ent.(*Point3D), nil
	default:
		return nil, []error{errors.New("Point data must be a dict")}
	}
}

// requirePoint reads a mandatory nested point field.
func requirePoint(obj map[string]any, wireName string, points PointFactory) (*Point3D, []error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return nil, []error{fmt.Errorf("Missing attribute: %s", nativeName(wireName))}
	}
	return makePoint(value, points)
}

// Line3D is a straight segment between two points.
type Line3D struct {
	BaseEntity
	StartPoint *Point3D
	EndPoint   *Point3D
}

func (l *Line3D) encode() map[string]any {
	record := encodeBase(&l.BaseEntity)
	record["StartPoint"] = l.StartPoint.encode()
	record["EndPoint"] = l.EndPoint.encode()
	return record
}

func newLine3D(obj map[string]any, points PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiLine3D", DomainGeometry)
	start, startErrs := requirePoint(obj, "StartPoint", points)
	errs = append(errs, startErrs...)
	end, endErrs := requirePoint(obj, "EndPoint", points)
	errs = append(errs, endErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Line3D{
		BaseEntity: base,
		StartPoint: start,
		EndPoint:   end,
	}, nil
}

// Arc3D is a circular arc through a start, end and center point.
type Arc3D struct {
	BaseEntity
	StartPoint  *Point3D
	EndPoint    *Point3D
	CenterPoint *Point3D
	Radius      *float64 `validate:"omitempty,gte=0"`
}

func (a *Arc3D) encode() map[string]any {
	record := encodeBase(&a.BaseEntity)
	record["StartPoint"] = a.StartPoint.encode()
	record["EndPoint"] = a.EndPoint.encode()
	record["CenterPoint"] = a.CenterPoint.encode()
	if a.Radius != nil {
		record["Radius"] = *a.Radius
	}
	return record
}

func newArc3D(obj map[string]any, points PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiArc3D", DomainGeometry)
	start, startErrs := requirePoint(obj, "StartPoint", points)
	errs = append(errs, startErrs...)
	end, endErrs := requirePoint(obj, "EndPoint", points)
	errs = append(errs, endErrs...)
	center, centerErrs := requirePoint(obj, "CenterPoint", points)
	errs = append(errs, centerErrs...)
	radius, err := floatField(obj, "Radius")
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	arc := &Arc3D{
		BaseEntity:  base,
		StartPoint:  start,
		EndPoint:    end,
		CenterPoint: center,
		Radius:      radius,
	}
	if errs := collectValidationErrors(validate.Struct(arc)); len(errs) > 0 {
		return nil, errs
	}
	return arc, nil
}
