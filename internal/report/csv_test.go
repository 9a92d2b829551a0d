package report

import (
	"bytes"
	"strings"
	"testing"

	"delivery-scheduler/internal/domain"
)

func TestWriteDeliveriesCSVSortsRows(t *testing.T) {
	// Deliberately unsorted input: the writer orders by day, vehicle,
	// then arrival time.
	deliveries := []domain.DeliveryRecord{
		{Day: 2, VehicleID: 1, CustomerID: 5, ArrivalMin: 12.5, DepartureMin: 22.5, LegDistanceKm: 7.21},
		{Day: 1, VehicleID: 2, CustomerID: 3, ArrivalMin: 30, DepartureMin: 40, LegDistanceKm: 30},
		{Day: 1, VehicleID: 1, CustomerID: 2, ArrivalMin: 50, DepartureMin: 60, LegDistanceKm: 20},
		{Day: 1, VehicleID: 1, CustomerID: 1, ArrivalMin: 10, DepartureMin: 20, LegDistanceKm: 10},
	}

	var buf bytes.Buffer
	if err := WriteDeliveriesCSV(&buf, deliveries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"day,vehicle,customer,arrival_min,departure_min,leg_distance_km",
		"1,1,1,10.0,20.0,10.00",
		"1,1,2,50.0,60.0,20.00",
		"1,2,3,30.0,40.0,30.00",
		"2,1,5,12.5,22.5,7.21",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteMetricsCSV(t *testing.T) {
	metrics := []domain.DailyMetric{
		{Day: 1, VehicleID: 2, DistanceKm: 0, TimeMin: 0},
		{Day: 1, VehicleID: 1, DistanceKm: 60, TimeMin: 100},
	}

	var buf bytes.Buffer
	if err := WriteMetricsCSV(&buf, metrics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"day,vehicle,distance_km,time_min",
		"1,1,60.00,100.0",
		"1,2,0.00,0.0",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteRoutesCSV(t *testing.T) {
	routes := []domain.RouteTrace{
		{
			Day:       1,
			VehicleID: 1,
			Stops:     []int{0, 1, 0},
			Points:    []domain.Point{{}, {X: 0, Y: 10}, {}},
		},
	}

	var buf bytes.Buffer
	if err := WriteRoutesCSV(&buf, routes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"day,vehicle,seq,location,x,y",
		"1,1,0,0,0.00,0.00",
		"1,1,1,1,0.00,10.00",
		"1,1,2,0,0.00,0.00",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteRoutesCSVRejectsMismatchedTrace(t *testing.T) {
	routes := []domain.RouteTrace{
		{Day: 1, VehicleID: 1, Stops: []int{0, 1}, Points: []domain.Point{{}}},
	}

	if err := WriteRoutesCSV(&bytes.Buffer{}, routes); err == nil {
		t.Fatal("expected error for trace with mismatched stops and points")
	}
}
