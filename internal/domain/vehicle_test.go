package domain

import "testing"

func TestVehicleAccumulators(t *testing.T) {
	depot := Point{}
	v := NewVehicle(1, depot)

	if !v.AtDepot() {
		t.Fatal("new vehicle should start at the depot")
	}
	if len(v.Route) != 1 || v.Route[0] != DepotID {
		t.Fatalf("route = %v, want [0]", v.Route)
	}

	c := &Customer{CustomerID: 7, Location: Point{X: 0, Y: 10}, WeightKg: 10}
	v.Serve(c, 10, 20)

	if v.AtDepot() {
		t.Fatal("vehicle should be at customer 7")
	}
	if v.LoadKg != 10 || v.ElapsedMin != 20 || v.DistanceKm != 10 {
		t.Fatalf("after serve: load=%g time=%g dist=%g, want 10/20/10", v.LoadKg, v.ElapsedMin, v.DistanceKm)
	}
	if v.AtID != 7 || v.At != c.Location {
		t.Fatalf("after serve: at=%d %v, want 7 %v", v.AtID, v.At, c.Location)
	}

	v.Reload(depot, 10, 10, 20)

	if !v.AtDepot() {
		t.Fatal("vehicle should be back at the depot after reload")
	}
	if v.LoadKg != 0 {
		t.Fatalf("reload should empty the vehicle, load=%g", v.LoadKg)
	}
	if v.ElapsedMin != 50 || v.DistanceKm != 20 {
		t.Fatalf("after reload: time=%g dist=%g, want 50/20", v.ElapsedMin, v.DistanceKm)
	}

	c2 := &Customer{CustomerID: 9, Location: Point{X: 0, Y: 20}, WeightKg: 5}
	v.Serve(c2, 20, 80)
	v.CloseRoute(depot, 20, 20)

	if !v.AtDepot() {
		t.Fatal("vehicle should end at the depot")
	}
	// CloseRoute charges travel only and keeps the load on record.
	if v.LoadKg != 5 {
		t.Fatalf("closure should not empty the vehicle, load=%g", v.LoadKg)
	}
	if v.ElapsedMin != 100 || v.DistanceKm != 60 {
		t.Fatalf("after closure: time=%g dist=%g, want 100/60", v.ElapsedMin, v.DistanceKm)
	}

	wantRoute := []int{0, 7, 0, 9, 0}
	if len(v.Route) != len(wantRoute) {
		t.Fatalf("route = %v, want %v", v.Route, wantRoute)
	}
	for i := range wantRoute {
		if v.Route[i] != wantRoute[i] {
			t.Fatalf("route = %v, want %v", v.Route, wantRoute)
		}
	}
}
