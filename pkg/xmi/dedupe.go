package xmi

import "math"

// DefaultTolerance is the coordinate tolerance used when a caller does not
// override it.
const DefaultTolerance = 1e-10

// pointKey is the quantized coordinate bucket a point lives in. The
// tolerance is part of the key so caches queried with different tolerances
// never collide.
type pointKey struct {
	x, y, z int64
	tol     float64
}

// quantize uses round-half-to-even so a coordinate sitting exactly on a
// bucket boundary (x = 0.5*tol) lands in the same bucket as the origin it is
// within tolerance of.
func quantize(x, y, z, tol float64) pointKey {
	return pointKey{
		x:   int64(math.RoundToEven(x / tol)),
		y:   int64(math.RoundToEven(y / tol)),
		z:   int64(math.RoundToEven(z / tol)),
		tol: tol,
	}
}

// PointCache collapses coordinate triples that are equal within tolerance
// into a single shared Point3D instance. It is private per-Model state: a
// cache lives exactly as long as the Model that owns it and is never shared
// across models.
//
// Equality is bucket-local: two coordinates close to a bucket boundary may
// quantize apart even though they are within tolerance of each other. That
// is the accepted tradeoff of tolerance bucketing.
type PointCache struct {
	points    map[pointKey]*Point3D
	tolerance float64
	newID     func() string
}

func newPointCache(tolerance float64, newID func() string) *PointCache {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &PointCache{
		points:    make(map[pointKey]*Point3D),
		tolerance: tolerance,
		newID:     newID,
	}
}

// CreatePoint returns the shared point for the coordinate triple at the
// cache's default tolerance, constructing it on first use.
func (c *PointCache) CreatePoint(x, y, z float64) *Point3D {
	return c.CreatePointWithTolerance(x, y, z, c.tolerance)
}

// CreatePointWithTolerance is CreatePoint with a per-call tolerance.
func (c *PointCache) CreatePointWithTolerance(x, y, z, tol float64) *Point3D {
	key := quantize(x, y, z, tol)
	if cached, ok := c.points[key]; ok {
		probe := Point3D{X: x, Y: y, Z: z}
		if cached.EqualsWithinTolerance(&probe, tol) {
			return cached
		}
	}
	point := &Point3D{
		BaseEntity: BaseEntity{
			ID:         c.newID(),
			EntityType: "XmiPoint3D",
			Domain:     DomainGeometry,
		},
		X: x,
		Y: y,
		Z: z,
	}
	point.Name = point.ID
	c.points[key] = point
	return point
}

// Register seeds the cache with an already constructed point, so later
// coordinate triples matching a loaded Point3D entity reuse it. An occupied
// bucket is left alone; the earlier point wins.
func (c *PointCache) Register(point *Point3D) {
	key := quantize(point.X, point.Y, point.Z, c.tolerance)
	if _, ok := c.points[key]; !ok {
		c.points[key] = point
	}
}
