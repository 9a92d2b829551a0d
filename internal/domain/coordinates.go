package domain

// Immutable position on the delivery plane, in kilometers.
type Point struct {
	X float64
	Y float64
}

// DepotID is the reserved location ID for the depot in route sequences.
// Customer IDs are strictly positive, so the two never collide.
const DepotID = 0
