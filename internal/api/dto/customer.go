package dto

type CustomerResponse struct {
	CustomerID int     `json:"customer_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	WeightKg   float64 `json:"weight_kg"`
}

type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}
