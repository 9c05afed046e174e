package domain

// Booking is the payload submitted by the booking form.
type Booking struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	BillingAddress string `json:"billingAddress" validate:"required"`

	PropertyID string `json:"propertyId,omitempty"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Guests     *int   `json:"guests,omitempty"`
}

// Receipt is what a PaymentProcessor hands back for an accepted booking.
type Receipt struct {
	BookingID          string
	ConfirmationNumber string
	TransactionID      string
}

type Confirmation struct {
	BookingID          string `json:"bookingId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	Message            string `json:"message"`
}
