package domain

import "time"

// OrderStatus is the server-owned lifecycle of an order. The client
// only mirrors it; transitions happen on the backend.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderExpired   OrderStatus = "EXPIRED"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderCancelled || s == OrderExpired
}

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

type Address struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string
	Country      string
	Phone        string
}

type OrderItem struct {
	ProductID string
	Name      string
	ImageURL  string
	UnitPrice Money
	Quantity  int
	Subtotal  Money
}

type Order struct {
	ID              string
	OrderNumber     string
	Items           []OrderItem
	ShippingAddress Address
	PaymentMethod   PaymentMethod
	Status          OrderStatus
	Totals          CartTotals
	Notes           string
	TrackingNumber  string

	// ExpiresAt is when a PENDING order lapses server-side, 30 minutes
	// after creation. Display only.
	ExpiresAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
