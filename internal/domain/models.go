package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PayOnline PaymentMethod = "online"
	PayUPI    PaymentMethod = "upi"
	PayCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayOnline, PayUPI, PayCash:
		return true
	}
	return false
}

// Prices are stored in the smallest currency unit to keep money arithmetic exact.
type MenuItem struct {
	ID          string    `json:"id"`
	CafeID      string    `json:"cafeId"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Cafe struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	OwnerEmail string     `json:"ownerEmail"`
	Address    string     `json:"address"`
	Phone      string     `json:"phone"`
	Menu       []MenuItem `json:"menu,omitempty"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// OrderLine is a menu item snapshot captured at order time. Later menu edits
// must never change the name or price recorded here.
type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

type Order struct {
	ID            string        `json:"id"`
	CafeID        string        `json:"cafeId"`
	Items         []OrderLine   `json:"items"`
	TotalAmount   int64         `json:"totalAmount"`
	CustomerName  string        `json:"customerName"`
	TableNumber   string        `json:"tableNumber"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CafeName      string        `json:"cafeName,omitempty"`
	CafeAddress   string        `json:"cafeAddress,omitempty"`
	CafePhone     string        `json:"cafePhone,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type OrderEvent struct {
	Type          string        `json:"type"`
	OrderID       string        `json:"order_id"`
	CafeID        string        `json:"cafe_id"`
	Status        OrderStatus   `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	TotalAmount   int64         `json:"total_amount,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

type MenuQR struct {
	URL    string `json:"url"`
	QRCode string `json:"qrCode"`
}

type PopularItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name,omitempty"`
	Count      int64  `json:"count"`
}
