package ledger

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-ledger/money"
)

const testCustomerID = "12345"

func usd(t *testing.T, amount string) money.Money {
	t.Helper()
	m, err := money.New(decimal.RequireFromString(amount), "USD")
	require.NoError(t, err)
	return m
}

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	account, err := NewAccount(testCustomerID, AccountTypeSavings, usd(t, "100.00"))
	require.NoError(t, err)
	return account
}

func TestNewAccount(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		account := newTestAccount(t)
		assert.NotEmpty(t, account.ID())
		assert.Equal(t, testCustomerID, account.CustomerID())
		assert.Equal(t, AccountTypeSavings, account.Type())
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
		assert.True(t, account.IsActive())
	})

	t.Run("fresh identities are unique", func(t *testing.T) {
		a := newTestAccount(t)
		b := newTestAccount(t)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("invalid customer id", func(t *testing.T) {
		for _, customerID := range []string{"", " ", "  "} {
			_, err := NewAccount(customerID, AccountTypeSavings, usd(t, "100.00"))
			assert.ErrorIs(t, err, money.ErrInvalidArgument)
		}
	})

	t.Run("unknown account type", func(t *testing.T) {
		_, err := NewAccount(testCustomerID, AccountType("MONEY_MARKET"), usd(t, "100.00"))
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})

	t.Run("missing balance", func(t *testing.T) {
		_, err := NewAccount(testCustomerID, AccountTypeSavings, money.Money{})
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("explicit identity", func(t *testing.T) {
		account, err := RestoreAccount("acc-1", testCustomerID, AccountTypeChecking, usd(t, "50"), false)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID())
		assert.False(t, account.IsActive())
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := RestoreAccount(" ", testCustomerID, AccountTypeChecking, usd(t, "50"), true)
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})
}

func TestDeposit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		account := newTestAccount(t)
		require.NoError(t, account.Deposit(usd(t, "50.00")))
		assert.True(t, account.Balance().Equal(usd(t, "150.00")))
	})

	t.Run("negative amount", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Deposit(usd(t, "-50.00"))
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
	})

	t.Run("zero amount", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Deposit(usd(t, "0"))
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})

	t.Run("missing amount", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Deposit(money.Money{})
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		account := newTestAccount(t)
		eur, err := money.New(decimal.NewFromInt(50), "EUR")
		require.NoError(t, err)
		err = account.Deposit(eur)
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
	})

	t.Run("inactive account", func(t *testing.T) {
		account := newTestAccount(t)
		account.Deactivate()
		err := account.Deposit(usd(t, "50.00"))
		assert.ErrorIs(t, err, ErrAccountInactive)
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		account := newTestAccount(t)
		require.NoError(t, account.Withdraw(usd(t, "50.00")))
		assert.True(t, account.Balance().Equal(usd(t, "50.00")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Withdraw(usd(t, "150.00"))
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
	})

	t.Run("exact balance leaves zero", func(t *testing.T) {
		account := newTestAccount(t)
		require.NoError(t, account.Withdraw(usd(t, "100.00")))
		assert.True(t, account.Balance().Equal(usd(t, "0")))
	})

	t.Run("negative amount", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Withdraw(usd(t, "-50.00"))
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})

	t.Run("zero amount", func(t *testing.T) {
		account := newTestAccount(t)
		err := account.Withdraw(usd(t, "0"))
		assert.ErrorIs(t, err, money.ErrInvalidArgument)
	})

	t.Run("inactive account", func(t *testing.T) {
		account := newTestAccount(t)
		account.Deactivate()
		err := account.Withdraw(usd(t, "50.00"))
		assert.ErrorIs(t, err, ErrAccountInactive)
		assert.True(t, account.Balance().Equal(usd(t, "100.00")))
	})
}

func TestActivateDeactivate(t *testing.T) {
	account := newTestAccount(t)

	account.Deactivate()
	assert.False(t, account.IsActive())

	account.Deactivate() // idempotent
	assert.False(t, account.IsActive())

	account.Activate()
	assert.True(t, account.IsActive())
	assert.True(t, account.Balance().Equal(usd(t, "100.00")))

	account.Activate() // idempotent
	assert.True(t, account.IsActive())
}

func TestAccountEqual(t *testing.T) {
	account := newTestAccount(t)

	t.Run("full-state equality", func(t *testing.T) {
		same, err := RestoreAccount(account.ID(), testCustomerID, AccountTypeSavings, usd(t, "100.00"), true)
		require.NoError(t, err)
		assert.True(t, account.Equal(same))
	})

	t.Run("fresh identity is not equal", func(t *testing.T) {
		other := newTestAccount(t)
		assert.False(t, account.Equal(other))
	})

	t.Run("differing balance is not equal", func(t *testing.T) {
		same, err := RestoreAccount(account.ID(), testCustomerID, AccountTypeSavings, usd(t, "99.00"), true)
		require.NoError(t, err)
		assert.False(t, account.Equal(same))
	})

	t.Run("differing active flag is not equal", func(t *testing.T) {
		same, err := RestoreAccount(account.ID(), testCustomerID, AccountTypeSavings, usd(t, "100.00"), false)
		require.NoError(t, err)
		assert.False(t, account.Equal(same))
	})

	t.Run("nil is not equal", func(t *testing.T) {
		assert.False(t, account.Equal(nil))
	})
}

func TestAccountString(t *testing.T) {
	account := newTestAccount(t)
	expected := fmt.Sprintf("Account{id='%s', customerId='%s', type=%s, balance=%s, active=%t}",
		account.ID(), testCustomerID, AccountTypeSavings, usd(t, "100.00"), true)
	assert.Equal(t, expected, account.String())
}
