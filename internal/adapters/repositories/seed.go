package repositories

import (
	"encoding/json"
	"fmt"
	"os"
)

type CustomerSeed struct {
	CustomerID int     `json:"customer_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	WeightKg   float64 `json:"weight_kg"`
}

// loadSeedFile parses and validates a customer seed file. Both the
// SQLite and Postgres seeders share this so validation cannot drift
// between drivers.
func loadSeedFile(jsonPath string) ([]CustomerSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed customers: read %q: %w", jsonPath, err)
	}

	var data []CustomerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed customers: parse json: %w", err)
	}

	rows := make([]CustomerSeed, 0, len(data))
	seen := make(map[int]struct{}, len(data))
	for i, item := range data {
		if item.CustomerID <= 0 {
			return nil, fmt.Errorf("seed customers: invalid customer_id at index %d: %d", i+1, item.CustomerID)
		}
		if _, ok := seen[item.CustomerID]; ok {
			return nil, fmt.Errorf("seed customers: duplicate customer_id at index %d: %d", i+1, item.CustomerID)
		}
		if item.WeightKg <= 0 {
			return nil, fmt.Errorf("seed customers: customer_id=%d weight_kg must be positive: %g", item.CustomerID, item.WeightKg)
		}

		seen[item.CustomerID] = struct{}{}
		rows = append(rows, item)
	}

	return rows, nil
}
