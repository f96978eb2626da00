// Package ledger holds the banking domain: accounts, transactions, and the
// in-memory account service that mediates all mutations against them.
package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"banking-ledger/money"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// AccountTypes lists every valid account type.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeChecking, AccountTypeSavings}
}

func (t AccountType) valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	}
	return false
}

// Account is a customer's balance-holding entity. The balance never goes
// negative, and deposits/withdrawals only succeed while the account is
// active. Mutate accounts through their methods or the AccountService;
// the fields themselves are not exported.
type Account struct {
	id          string
	customerID  string
	accountType AccountType
	balance     money.Money
	active      bool
}

// NewAccount creates an active account with a fresh generated id.
func NewAccount(customerID string, accountType AccountType, initialBalance money.Money) (*Account, error) {
	return RestoreAccount(uuid.NewString(), customerID, accountType, initialBalance, true)
}

// RestoreAccount rebuilds an account with an explicit identity and active
// flag, e.g. when rehydrating state owned elsewhere.
func RestoreAccount(id, customerID string, accountType AccountType, balance money.Money, active bool) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: account id must not be blank", money.ErrInvalidArgument)
	}
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id must not be blank", money.ErrInvalidArgument)
	}
	if !accountType.valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", money.ErrInvalidArgument, accountType)
	}
	if balance.IsZero() {
		return nil, fmt.Errorf("%w: balance is required", money.ErrInvalidArgument)
	}
	return &Account{
		id:          id,
		customerID:  customerID,
		accountType: accountType,
		balance:     balance,
		active:      active,
	}, nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() string { return a.id }

// CustomerID returns the owning customer's identifier.
func (a *Account) CustomerID() string { return a.customerID }

// Type returns the account type.
func (a *Account) Type() AccountType { return a.accountType }

// Balance returns the current balance.
func (a *Account) Balance() money.Money { return a.balance }

// IsActive reports whether the account accepts deposits and withdrawals.
func (a *Account) IsActive() bool { return a.active }

// Deposit adds a strictly positive amount to the balance. The amount must
// carry the account's currency and the account must be active; on any
// failure the balance is left untouched.
func (a *Account) Deposit(amount money.Money) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !a.active {
		return fmt.Errorf("%w: account %s", ErrAccountInactive, a.id)
	}
	balance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

// Withdraw removes a strictly positive amount from the balance. Beyond the
// checks Deposit makes, the amount must not exceed the current balance;
// withdrawing the exact balance is allowed and leaves it at zero.
func (a *Account) Withdraw(amount money.Money) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !a.active {
		return fmt.Errorf("%w: account %s", ErrAccountInactive, a.id)
	}
	exceeds, err := amount.GreaterThan(a.balance)
	if err != nil {
		return err
	}
	if exceeds {
		return fmt.Errorf("%w: cannot withdraw %s from balance %s", ErrInsufficientFunds, amount, a.balance)
	}
	balance, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

// Activate marks the account active. Idempotent.
func (a *Account) Activate() { a.active = true }

// Deactivate marks the account inactive without touching the balance.
// Idempotent.
func (a *Account) Deactivate() { a.active = false }

// Equal reports full-state equality: id, customer, type, balance, and
// active flag must all match. Two snapshots of the same account at
// different balances therefore compare unequal. This is a deliberate
// contract and must not be reduced to identity-only comparison.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	return a.id == other.id &&
		a.customerID == other.customerID &&
		a.accountType == other.accountType &&
		a.balance.Equal(other.balance) &&
		a.active == other.active
}

func (a *Account) String() string {
	return fmt.Sprintf("Account{id='%s', customerId='%s', type=%s, balance=%s, active=%t}",
		a.id, a.customerID, a.accountType, a.balance, a.active)
}

func validateAmount(amount money.Money) error {
	if amount.IsZero() {
		return fmt.Errorf("%w: amount is required", money.ErrInvalidArgument)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", money.ErrInvalidArgument, amount)
	}
	return nil
}
