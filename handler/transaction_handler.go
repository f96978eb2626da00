package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banking-ledger/ledger"
	"banking-ledger/money"
)

// MovementRequest defines the expected JSON body for a deposit or
// withdrawal against a single account.
type MovementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// TransactionResponse is the JSON rendering of a recorded ledger event.
// The core keeps no transaction log; the record is built here and handed
// to the caller, who decides whether to persist it.
type TransactionResponse struct {
	TransactionID    string          `json:"transaction_id"`
	AccountID        string          `json:"account_id"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Timestamp        time.Time       `json:"timestamp"`
	Description      string          `json:"description"`
	RelatedAccountID string          `json:"related_account_id,omitempty"`
}

// TransactionHandler holds dependencies for deposit/withdrawal handlers.
type TransactionHandler struct {
	service *ledger.AccountService
	logger  *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service *ledger.AccountService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{service: service, logger: logger}
}

// DepositHandler handles depositing funds into an account and returns the
// resulting transaction record.
//
// Method: POST
// Path: /accounts/{account_id}/deposit
// Success: 200 OK
// Error: 400 Bad Request (invalid JSON, non-positive amount, currency mismatch)
// Error: 404 Not Found (if account does not exist)
// Error: 409 Conflict (if account is deactivated)
func (h *TransactionHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ledger.TransactionTypeDeposit)
}

// WithdrawHandler handles withdrawing funds from an account and returns
// the resulting transaction record.
//
// Method: POST
// Path: /accounts/{account_id}/withdraw
// Success: 200 OK
// Error: 400 Bad Request (invalid JSON, non-positive amount, currency mismatch)
// Error: 404 Not Found (if account does not exist)
// Error: 409 Conflict (if account is deactivated)
// Error: 422 Unprocessable Entity (for insufficient funds)
func (h *TransactionHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ledger.TransactionTypeWithdrawal)
}

func (h *TransactionHandler) move(w http.ResponseWriter, r *http.Request, txType ledger.TransactionType) {
	accountID := mux.Vars(r)["account_id"]

	var req MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := money.New(req.Amount, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}

	if txType == ledger.TransactionTypeDeposit {
		_, err = h.service.Deposit(accountID, amount)
	} else {
		_, err = h.service.Withdraw(accountID, amount)
	}
	if err != nil {
		h.logger.Warn("movement rejected",
			zap.String("account_id", accountID),
			zap.String("type", string(txType)),
			zap.Error(err))
		writeError(w, err)
		return
	}

	tx, err := ledger.NewTransaction(accountID, txType, amount, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("movement applied",
		zap.String("transaction_id", tx.ID()),
		zap.String("account_id", accountID),
		zap.String("type", string(txType)),
		zap.String("amount", amount.String()))
	writeJSON(w, http.StatusOK, transactionResponse(tx))
}

func transactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    tx.ID(),
		AccountID:        tx.AccountID(),
		Type:             string(tx.Type()),
		Amount:           tx.Amount().Amount(),
		Currency:         tx.Amount().Currency(),
		Timestamp:        tx.Timestamp(),
		Description:      tx.Description(),
		RelatedAccountID: tx.RelatedAccountID(),
	}
}
