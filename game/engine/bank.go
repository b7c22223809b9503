package engine

// Bank is a non-negative coin ledger. Every player owns one; ship and dock
// payouts move coins through it rather than setting balances directly.
// Operations that would leave the balance negative are rejected, not
// clamped.
type Bank struct {
	balance int
}

// NewBank creates a ledger with the given opening balance.
// A negative opening balance is treated as zero.
func NewBank(balance int) Bank {
	if balance < 0 {
		balance = 0
	}
	return Bank{balance: balance}
}

// Balance returns the current balance
func (b *Bank) Balance() int {
	return b.balance
}

// CanCredit reports whether Credit would accept the amount
func (b *Bank) CanCredit(amount int) bool {
	return amount >= 0
}

// CanDebit reports whether Debit would accept the amount
func (b *Bank) CanDebit(amount int) bool {
	if amount < 0 {
		return false
	}
	return b.balance >= amount
}

// Credit adds amount to the balance and returns the new balance.
// There is no upper bound.
func (b *Bank) Credit(amount int) (int, error) {
	if amount < 0 {
		return b.balance, ErrInvalidAmount
	}
	b.balance += amount
	return b.balance, nil
}

// Debit subtracts amount from the balance and returns the new balance
func (b *Bank) Debit(amount int) (int, error) {
	if amount < 0 {
		return b.balance, ErrInvalidAmount
	}
	if amount > b.balance {
		return b.balance, ErrInsufficientFunds
	}
	b.balance -= amount
	return b.balance, nil
}
