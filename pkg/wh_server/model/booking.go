package model

type BookingStatus string
type BookingType string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	BookingTypeInward  BookingType = "Inward / Purchase"
	BookingTypeOutward BookingType = "Outward / Sales"
)

// Firm is an organizational unit owning its own document numbering.
type Firm struct {
	ID        string `json:"id"`         // Unique ID of the firm. (Eg: FIRM-0001)
	Name      string `json:"name"`       // Display name of the firm.
	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the firm was created.
	CreatedBy string `json:"created_by"` // User who created the firm.
}

// Booking (Sauda) is a commitment to trade a quantity of a commodity. Its ExpectedQuantity is the
// ceiling for the outwards dispatched against it.
type Booking struct {
	ID      string        `json:"id"`      // Unique ID of the booking. (Eg: SAUDA-0001-2025-0001)
	Version int64         `json:"version"` // Version of the booking.
	Firm    string        `json:"firm"`    // Firm the booking belongs to. Empty for legacy bookings.
	Type    BookingType   `json:"booking_type"`
	Status  BookingStatus `json:"status"`

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`

	ExpectedQuantity Decimal `json:"expected_quantity"` // Kilograms.
	Rate             Decimal `json:"rate"`              // Price per kilogram.
	TotalAmount      Decimal `json:"total_amount"`
	BookingAmount    Decimal `json:"booking_amount"`

	BookingDate     Date  `json:"booking_date"`
	DeliveryEndDate *Date `json:"delivery_end_date,omitempty"`
	PaymentEndDate  *Date `json:"payment_end_date,omitempty"`

	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the booking was created.
	CreatedBy string `json:"created_by"` // User who created the booking.
	UpdatedAt int64  `json:"updated_at"` // Unix Time (in second) when the booking was last updated.
	UpdatedBy string `json:"updated_by"` // User who last updated the booking.
}
