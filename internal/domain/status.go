package domain

import "strings"

// Order status labels as they appear in the Shopee order export. The status
// column is open-ended; anything outside these labels is treated as an
// opaque string.
const (
	StatusCancelled        = "Dibatalkan"
	StatusCompleted        = "Selesai"
	StatusAwaitingShipment = "Perlu Dikirim"
	StatusShipped          = "Dikirim"
)

var pendingStatuses = map[string]bool{
	strings.ToLower(StatusAwaitingShipment): true,
	strings.ToLower(StatusShipped):          true,
}

// IsCancelled reports whether an order status marks the order as cancelled.
func IsCancelled(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusCancelled)
}

// IsCompleted reports whether the order has been completed and its payout
// released.
func IsCompleted(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusCompleted)
}

// IsPending reports whether the order is still in flight (awaiting shipment
// or shipped) and its payout not yet released.
func IsPending(status string) bool {
	return pendingStatuses[strings.ToLower(strings.TrimSpace(status))]
}
