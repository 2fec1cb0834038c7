package domain

// Balance is the two-bucket balance of a single account: funds freely
// available and funds held by an open dispute. The total is always
// derived from the two buckets, never stored.
//
// Every mutating operation is checked and atomic: on error the Balance
// is left exactly as it was.
type Balance struct {
	available Amount
	held      Amount
}

func (b *Balance) Available() Amount {
	return b.available
}

func (b *Balance) Held() Amount {
	return b.held
}

func (b *Balance) Total() Amount {
	return b.available + b.held
}

// Credit adds amount to the available bucket. It also verifies that the
// derived total stays representable, so the invariant total = available
// + held can never overflow later.
func (b *Balance) Credit(amount Amount) error {
	available, err := b.available.Add(amount)
	if err != nil {
		return err
	}
	if _, err := available.Add(b.held); err != nil {
		return err
	}

	b.available = available

	return nil
}

// Debit removes amount from the available bucket.
func (b *Balance) Debit(amount Amount) error {
	available, err := b.available.Sub(amount)
	if err != nil {
		return err
	}

	b.available = available

	return nil
}

// Hold moves amount from available to held.
func (b *Balance) Hold(amount Amount) error {
	available, err := b.available.Sub(amount)
	if err != nil {
		return err
	}
	held, err := b.held.Add(amount)
	if err != nil {
		return err
	}

	b.available = available
	b.held = held

	return nil
}

// Release moves amount from held back to available.
func (b *Balance) Release(amount Amount) error {
	held, err := b.held.Sub(amount)
	if err != nil {
		return ErrInsufficientHeldFunds
	}
	available, err := b.available.Add(amount)
	if err != nil {
		return err
	}

	b.available = available
	b.held = held

	return nil
}

// RemoveHeld removes amount from the held bucket entirely; the funds
// leave the account and are not returned to available.
func (b *Balance) RemoveHeld(amount Amount) error {
	held, err := b.held.Sub(amount)
	if err != nil {
		return ErrInsufficientHeldFunds
	}

	b.held = held

	return nil
}
