package valueobjects

// PaymentStatus is the review state of a payment proof.
type PaymentStatus string

const (
	StatusSubmitted PaymentStatus = "submitted"
	StatusApproved  PaymentStatus = "approved"
	StatusRejected  PaymentStatus = "rejected"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

var ValidStatuses = map[PaymentStatus]bool{
	StatusSubmitted: true,
	StatusApproved:  true,
	StatusRejected:  true,
}
