package ledger

import (
	"fmt"
	"sync"

	"banking-ledger/money"
)

// AccountService owns the collection of accounts and mediates every
// mutation against it. A single mutex serializes all operations, so the
// insufficient-funds check and the balance update of a withdrawal are
// atomic together. Enumeration follows insertion order for determinism.
//
// The service is an explicit value handed to callers, never ambient
// global state. It keeps no transaction log.
type AccountService struct {
	mu       sync.Mutex
	accounts map[string]*Account
	order    []string
}

// NewAccountService creates an empty in-memory service. State is lost on
// process exit; there is no durability layer.
func NewAccountService() *AccountService {
	return &AccountService{accounts: make(map[string]*Account)}
}

// CreateAccount constructs a new active account with a fresh identity and
// registers it. Validation failures surface as ErrInvalidArgument.
func (s *AccountService) CreateAccount(customerID string, accountType AccountType, initialBalance money.Money) (*Account, error) {
	account, err := NewAccount(customerID, accountType, initialBalance)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.id] = account
	s.order = append(s.order, account.id)
	return account, nil
}

// GetAccount returns the stored account for id, or ErrAccountNotFound.
func (s *AccountService) GetAccount(id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id)
}

// GetAccountsByCustomer returns the customer's accounts in insertion order.
// A customer with no accounts yields an empty slice, not an error.
func (s *AccountService) GetAccountsByCustomer(customerID string) []*Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]*Account, 0)
	for _, id := range s.order {
		if account := s.accounts[id]; account.customerID == customerID {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// GetAllAccounts returns every stored account in insertion order.
func (s *AccountService) GetAllAccounts() []*Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]*Account, 0, len(s.order))
	for _, id := range s.order {
		accounts = append(accounts, s.accounts[id])
	}
	return accounts
}

// ActivateAccount marks the account active, or returns ErrAccountNotFound.
func (s *AccountService) ActivateAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.lookup(id)
	if err != nil {
		return err
	}
	account.Activate()
	return nil
}

// DeactivateAccount marks the account inactive, or returns
// ErrAccountNotFound. The balance is unaffected.
func (s *AccountService) DeactivateAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.lookup(id)
	if err != nil {
		return err
	}
	account.Deactivate()
	return nil
}

// GetBalance returns the account's current balance, or ErrAccountNotFound.
func (s *AccountService) GetBalance(id string) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.lookup(id)
	if err != nil {
		return money.Money{}, err
	}
	return account.balance, nil
}

// Deposit adds amount to the account's balance and returns the new balance.
// Lookup, validation, and update run in one critical section.
func (s *AccountService) Deposit(id string, amount money.Money) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.lookup(id)
	if err != nil {
		return money.Money{}, err
	}
	if err := account.Deposit(amount); err != nil {
		return money.Money{}, err
	}
	return account.balance, nil
}

// Withdraw removes amount from the account's balance and returns the new
// balance. The funds check and the update are atomic under the service
// lock, so concurrent withdrawals cannot both pass the check and overdraw.
func (s *AccountService) Withdraw(id string, amount money.Money) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.lookup(id)
	if err != nil {
		return money.Money{}, err
	}
	if err := account.Withdraw(amount); err != nil {
		return money.Money{}, err
	}
	return account.balance, nil
}

// lookup must be called with the mutex held.
func (s *AccountService) lookup(id string) (*Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return account, nil
}
