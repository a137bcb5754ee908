package entity

import "strconv"

// TableSession is the explicit per-visit context constructed from the
// table QR deep link. It replaces ambient per-tab storage: handlers
// receive the session instead of reading table and customer state ad hoc.
type TableSession struct {
	TableID  string    `json:"tableId"`
	Customer *Customer `json:"customer,omitempty"` // nil for guest visits
}

// GuestName is the display name recorded on orders without a registered
// customer.
const GuestName = "عميل زائر"

// CustomerName resolves the name to stamp on an order.
func (s *TableSession) CustomerName() string {
	if s.Customer != nil && s.Customer.Name != "" {
		return s.Customer.Name
	}

	return GuestName
}

// ValidTableNumber checks a table identifier from a QR deep link:
// a whole number between 1 and max inclusive.
func ValidTableNumber(tableID string, max int) bool {
	n, err := strconv.Atoi(tableID)
	if err != nil {
		return false
	}

	return n >= 1 && n <= max
}
