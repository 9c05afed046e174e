// Package payment holds PaymentProcessor implementations.
package payment

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"property_booking/internal/domain"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Simulated stands in for a payment gateway: it waits a fixed delay and
// issues synthetic identifiers. Nothing is charged.
type Simulated struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay, now: time.Now}
}

func (s *Simulated) Charge(ctx context.Context, b domain.Booking) (domain.Receipt, error) {
	if !sleepCtx(ctx, s.delay) {
		return domain.Receipt{}, ctx.Err()
	}

	bookingSuffix, err := randomSuffix(6)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("booking id: %w", err)
	}
	confirmation, err := randomSuffix(8)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("confirmation number: %w", err)
	}

	return domain.Receipt{
		BookingID:          "BK" + strconv.FormatInt(s.now().UnixMilli(), 10) + bookingSuffix,
		ConfirmationNumber: "ALX" + confirmation,
		TransactionID:      uuid.NewString(),
	}, nil
}

// randomSuffix returns n characters drawn from [A-Z0-9].
func randomSuffix(n int) (string, error) {
	limit := big.NewInt(int64(len(suffixAlphabet)))
	b := make([]byte, n)
	for i := range b {
		k, err := crand.Int(crand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = suffixAlphabet[k.Int64()]
	}
	return string(b), nil
}

// sleepCtx waits for d or returns false early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
