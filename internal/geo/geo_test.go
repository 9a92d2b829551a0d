package geo

import (
	"math"
	"testing"

	"delivery-scheduler/internal/domain"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		p1   domain.Point
		p2   domain.Point
		want float64
	}{
		{"same point", domain.Point{X: 3, Y: 4}, domain.Point{X: 3, Y: 4}, 0},
		{"axis aligned", domain.Point{}, domain.Point{X: 0, Y: 10}, 10},
		{"pythagorean", domain.Point{}, domain.Point{X: 3, Y: 4}, 5},
		{"negative coordinates", domain.Point{X: -3, Y: 0}, domain.Point{X: 0, Y: 4}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.p1, tc.p2)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Distance(%v, %v) = %g, want %g", tc.p1, tc.p2, got, tc.want)
			}
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	p1 := domain.Point{X: 1.5, Y: -2.25}
	p2 := domain.Point{X: -7, Y: 12}

	if got, want := Distance(p1, p2), Distance(p2, p1); got != want {
		t.Fatalf("Distance not symmetric: %g vs %g", got, want)
	}
}

func TestTravelTime(t *testing.T) {
	// 60 km/h means one minute per kilometer.
	if got := TravelTime(10, 60); math.Abs(got-10) > 1e-9 {
		t.Fatalf("TravelTime(10, 60) = %g, want 10", got)
	}

	if got := TravelTime(30, 90); math.Abs(got-20) > 1e-9 {
		t.Fatalf("TravelTime(30, 90) = %g, want 20", got)
	}

	if got := TravelTime(0, 60); got != 0 {
		t.Fatalf("TravelTime(0, 60) = %g, want 0", got)
	}
}
