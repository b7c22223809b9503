package engine

import (
	"errors"
	"testing"
)

func TestBank_NewBankClampsNegative(t *testing.T) {
	b := NewBank(-10)
	if b.Balance() != 0 {
		t.Errorf("Expected negative opening balance to clamp to 0, got %d", b.Balance())
	}
}

func TestBank_CreditAndDebit(t *testing.T) {
	b := NewBank(5)

	balance, err := b.Credit(3)
	if err != nil {
		t.Fatalf("Credit failed: %v", err)
	}
	if balance != 8 {
		t.Errorf("Expected balance 8 after credit, got %d", balance)
	}

	balance, err = b.Debit(6)
	if err != nil {
		t.Fatalf("Debit failed: %v", err)
	}
	if balance != 2 {
		t.Errorf("Expected balance 2 after debit, got %d", balance)
	}
}

func TestBank_CreditRejectsNegativeAmount(t *testing.T) {
	b := NewBank(5)
	if _, err := b.Credit(-1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
	if b.Balance() != 5 {
		t.Errorf("Expected balance unchanged at 5, got %d", b.Balance())
	}
}

func TestBank_DebitGuards(t *testing.T) {
	tests := []struct {
		name    string
		opening int
		amount  int
		wantErr error
	}{
		{"negative amount", 5, -1, ErrInvalidAmount},
		{"overdraft", 5, 6, ErrInsufficientFunds},
		{"exact balance allowed", 5, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBank(tt.opening)
			_, err := b.Debit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil && b.Balance() != tt.opening {
				t.Errorf("Expected failed debit to leave balance at %d, got %d", tt.opening, b.Balance())
			}
		})
	}
}

func TestBank_CanCreditCanDebitArePure(t *testing.T) {
	b := NewBank(5)
	if !b.CanCredit(0) {
		t.Error("Expected CanCredit(0) to be true")
	}
	if b.CanCredit(-1) {
		t.Error("Expected CanCredit(-1) to be false")
	}
	if !b.CanDebit(5) {
		t.Error("Expected CanDebit(5) to be true at balance 5")
	}
	if b.CanDebit(6) {
		t.Error("Expected CanDebit(6) to be false at balance 5")
	}
	if b.Balance() != 5 {
		t.Errorf("Expected predicates to leave balance at 5, got %d", b.Balance())
	}
}
