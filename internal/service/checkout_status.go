package service

// CheckoutStatus tracks where a checkout attempt stands. CART_REVIEW is
// the resting state; both terminal placements clear the pending snapshot.
type CheckoutStatus string

const (
	StatusCartReview              CheckoutStatus = "CART_REVIEW"
	StatusSnapshotBuilt           CheckoutStatus = "SNAPSHOT_BUILT"
	StatusAwaitingExternalPayment CheckoutStatus = "AWAITING_EXTERNAL_PAYMENT"
	StatusOrderPlacedUnpaid       CheckoutStatus = "ORDER_PLACED_UNPAID"
	StatusOrderPlacedPaid         CheckoutStatus = "ORDER_PLACED_PAID"
	StatusPaymentCanceled         CheckoutStatus = "PAYMENT_CANCELED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == StatusOrderPlacedPaid || s == StatusOrderPlacedUnpaid
}

func (s CheckoutStatus) String() string {
	return string(s)
}
