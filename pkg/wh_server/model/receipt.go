package model

// ChamberAllocationValidity is how long a chamber allocation of an inward aawak stays valid.
const ChamberAllocationValidity = 6 // months

// InwardAawak is a warehouse-rent receipt for goods arriving into storage.
type InwardAawak struct {
	ID        string `json:"id"`         // Eg: AAWAK-0001-2025-0001
	LotNumber string `json:"lot_number"` // Counter portion of ID, printed on physical receipts.
	Firm      string `json:"firm"`

	Customer   string  `json:"customer"`
	Commodity  string  `json:"commodity"`
	Warehouse  string  `json:"warehouse"`
	InwardDate Date    `json:"inward_date"`
	Bags       int64   `json:"bags"`
	NetWeight  Decimal `json:"net_weight"` // Kilograms.

	ChamberAllocations []ChamberAllocation `json:"chamber_allocations"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

type ChamberAllocation struct {
	Floor          string  `json:"floor"`
	Chamber        string  `json:"chamber"`
	Bags           int64   `json:"bags"`
	AllocationDate *Date   `json:"allocation_date,omitempty"`
	ValidTo        *Date   `json:"valid_to,omitempty"`
	Weight         Decimal `json:"weight"`
}

// OutwardJawak is a warehouse-rent receipt for goods leaving storage.
type OutwardJawak struct {
	ID        string `json:"id"` // Eg: JAWAK-0001-2025-0001
	LotNumber string `json:"lot_number"`
	Firm      string `json:"firm"`

	InwardAawak string  `json:"inward_aawak"` // Aawak the goods were stored under. Optional.
	Customer    string  `json:"customer"`
	Commodity   string  `json:"commodity"`
	Warehouse   string  `json:"warehouse"`
	OutwardDate Date    `json:"outward_date"`
	Bags        int64   `json:"bags"`
	NetWeight   Decimal `json:"net_weight"`
	RentAmount  Decimal `json:"rent_amount"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
}
