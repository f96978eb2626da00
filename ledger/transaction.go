package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"banking-ledger/money"
)

// TransactionType classifies a ledger event.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

func (t TransactionType) valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is an immutable record of a single ledger event. It carries a
// generated id and its construction instant, so two transactions built from
// identical inputs are still distinct facts. The service does not store
// transactions; producing and persisting them is the integrating layer's
// decision.
type Transaction struct {
	id               string
	accountID        string
	txType           TransactionType
	amount           money.Money
	timestamp        time.Time
	description      string
	relatedAccountID string
}

// NewTransaction records an event against a single account. The description
// may be empty; accountID, type, and amount are required.
func NewTransaction(accountID string, txType TransactionType, amount money.Money, description string) (*Transaction, error) {
	return newTransaction(accountID, txType, amount, description, "")
}

// NewTransfer records a transfer event with the counterparty account set.
func NewTransfer(accountID string, amount money.Money, description, relatedAccountID string) (*Transaction, error) {
	return newTransaction(accountID, TransactionTypeTransfer, amount, description, relatedAccountID)
}

func newTransaction(accountID string, txType TransactionType, amount money.Money, description, relatedAccountID string) (*Transaction, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("%w: account id must not be blank", money.ErrInvalidArgument)
	}
	if !txType.valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", money.ErrInvalidArgument, txType)
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", money.ErrInvalidArgument)
	}
	return &Transaction{
		id:               uuid.NewString(),
		accountID:        accountID,
		txType:           txType,
		amount:           amount,
		timestamp:        time.Now(),
		description:      description,
		relatedAccountID: relatedAccountID,
	}, nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() string { return t.id }

// AccountID returns the primary account the event applies to.
func (t *Transaction) AccountID() string { return t.accountID }

// Type returns the event classification.
func (t *Transaction) Type() TransactionType { return t.txType }

// Amount returns the monetary amount moved.
func (t *Transaction) Amount() money.Money { return t.amount }

// Timestamp returns the construction instant, fixed for the record's life.
func (t *Transaction) Timestamp() time.Time { return t.timestamp }

// Description returns the free-text note, empty when none was supplied.
func (t *Transaction) Description() string { return t.description }

// RelatedAccountID returns the counterparty account for transfers, empty
// otherwise.
func (t *Transaction) RelatedAccountID() string { return t.relatedAccountID }

// Equal compares every field including the generated id and timestamp.
// Transactions built from identical inputs are therefore never equal;
// a fact equals only itself.
func (t *Transaction) Equal(other *Transaction) bool {
	if other == nil {
		return false
	}
	return t.id == other.id &&
		t.accountID == other.accountID &&
		t.txType == other.txType &&
		t.amount.Equal(other.amount) &&
		t.timestamp.Equal(other.timestamp) &&
		t.description == other.description &&
		t.relatedAccountID == other.relatedAccountID
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction{id='%s', accountId='%s', type=%s, amount=%s, timestamp=%s, description='%s'}",
		t.id, t.accountID, t.txType, t.amount, t.timestamp, t.description)
}
