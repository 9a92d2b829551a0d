package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"delivery-scheduler/internal/domain"
)

// WriteDeliveriesCSV renders delivery records as CSV, sorted by day,
// vehicle and arrival time — the order the delivery table is read in.
// Input slices are never mutated.
func WriteDeliveriesCSV(w io.Writer, deliveries []domain.DeliveryRecord) error {
	rows := append([]domain.DeliveryRecord(nil), deliveries...)
	slices.SortFunc(rows, func(a, b domain.DeliveryRecord) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		if a.VehicleID != b.VehicleID {
			return a.VehicleID - b.VehicleID
		}
		if a.ArrivalMin < b.ArrivalMin {
			return -1
		}
		if a.ArrivalMin > b.ArrivalMin {
			return 1
		}
		return 0
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "vehicle", "customer", "arrival_min", "departure_min", "leg_distance_km"}); err != nil {
		return fmt.Errorf("write deliveries csv: header: %w", err)
	}

	for _, d := range rows {
		record := []string{
			strconv.Itoa(d.Day),
			strconv.Itoa(d.VehicleID),
			strconv.Itoa(d.CustomerID),
			formatFloat(d.ArrivalMin, 1),
			formatFloat(d.DepartureMin, 1),
			formatFloat(d.LegDistanceKm, 2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write deliveries csv: customer %d: %w", d.CustomerID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write deliveries csv: flush: %w", err)
	}
	return nil
}

// WriteMetricsCSV renders daily metrics as CSV, sorted by day then
// vehicle.
func WriteMetricsCSV(w io.Writer, metrics []domain.DailyMetric) error {
	rows := append([]domain.DailyMetric(nil), metrics...)
	slices.SortFunc(rows, func(a, b domain.DailyMetric) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.VehicleID - b.VehicleID
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "vehicle", "distance_km", "time_min"}); err != nil {
		return fmt.Errorf("write metrics csv: header: %w", err)
	}

	for _, m := range rows {
		record := []string{
			strconv.Itoa(m.Day),
			strconv.Itoa(m.VehicleID),
			formatFloat(m.DistanceKm, 2),
			formatFloat(m.TimeMin, 1),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write metrics csv: day %d vehicle %d: %w", m.Day, m.VehicleID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write metrics csv: flush: %w", err)
	}
	return nil
}

// WriteRoutesCSV renders route traces as one row per visited stop,
// with coordinates, so the route polylines can be plotted externally.
func WriteRoutesCSV(w io.Writer, routes []domain.RouteTrace) error {
	rows := append([]domain.RouteTrace(nil), routes...)
	slices.SortFunc(rows, func(a, b domain.RouteTrace) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.VehicleID - b.VehicleID
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "vehicle", "seq", "location", "x", "y"}); err != nil {
		return fmt.Errorf("write routes csv: header: %w", err)
	}

	for _, r := range rows {
		if len(r.Stops) != len(r.Points) {
			return fmt.Errorf("write routes csv: day %d vehicle %d: %d stops but %d points",
				r.Day, r.VehicleID, len(r.Stops), len(r.Points))
		}
		for i, stop := range r.Stops {
			record := []string{
				strconv.Itoa(r.Day),
				strconv.Itoa(r.VehicleID),
				strconv.Itoa(i),
				strconv.Itoa(stop),
				formatFloat(r.Points[i].X, 2),
				formatFloat(r.Points[i].Y, 2),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write routes csv: day %d vehicle %d seq %d: %w", r.Day, r.VehicleID, i, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write routes csv: flush: %w", err)
	}
	return nil
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
