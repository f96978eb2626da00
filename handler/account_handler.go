package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banking-ledger/ledger"
	"banking-ledger/money"
)

// CreateAccountRequest defines the expected JSON body for creating an account.
type CreateAccountRequest struct {
	CustomerID     string          `json:"customer_id"`
	AccountType    string          `json:"account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
}

// AccountResponse is the JSON rendering of an account.
type AccountResponse struct {
	AccountID   string          `json:"account_id"`
	CustomerID  string          `json:"customer_id"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Active      bool            `json:"active"`
}

// BalanceResponse is the JSON rendering of a balance query.
type BalanceResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	service *ledger.AccountService
	logger  *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *ledger.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{service: service, logger: logger}
}

// CreateAccountHandler handles the creation of a new bank account.
// It expects a JSON body with "customer_id", "account_type",
// "initial_balance", and "currency".
//
// Method: POST
// Path: /accounts
// Success: 201 Created
// Error: 400 Bad Request (for invalid JSON or validation failure)
func (h *AccountHandler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	balance, err := money.New(req.InitialBalance, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}

	account, err := h.service.CreateAccount(req.CustomerID, ledger.AccountType(req.AccountType), balance)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("account created",
		zap.String("account_id", account.ID()),
		zap.String("customer_id", account.CustomerID()),
		zap.String("account_type", string(account.Type())))
	writeJSON(w, http.StatusCreated, accountResponse(account))
}

// GetAccountHandler handles retrieving a specific account.
// It expects an "account_id" as a URL path parameter.
//
// Method: GET
// Path: /accounts/{account_id}
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetAccount(mux.Vars(r)["account_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accountResponse(account))
}

// ListAccountsHandler handles retrieving every account, in creation order.
//
// Method: GET
// Path: /accounts
// Success: 200 OK
func (h *AccountHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, accountResponses(h.service.GetAllAccounts()))
}

// ListCustomerAccountsHandler handles retrieving all accounts belonging to
// a customer, in creation order. A customer with no accounts yields an
// empty list, not an error.
//
// Method: GET
// Path: /customers/{customer_id}/accounts
// Success: 200 OK
func (h *AccountHandler) ListCustomerAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts := h.service.GetAccountsByCustomer(mux.Vars(r)["customer_id"])
	writeJSON(w, http.StatusOK, accountResponses(accounts))
}

// GetBalanceHandler handles retrieving an account's current balance.
//
// Method: GET
// Path: /accounts/{account_id}/balance
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.GetBalance(mux.Vars(r)["account_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BalanceResponse{Amount: balance.Amount(), Currency: balance.Currency()})
}

// ActivateAccountHandler handles reactivating an account. Idempotent.
//
// Method: POST
// Path: /accounts/{account_id}/activate
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) ActivateAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]
	if err := h.service.ActivateAccount(id); err != nil {
		writeError(w, err)
		return
	}
	h.logger.Info("account activated", zap.String("account_id", id))
	w.WriteHeader(http.StatusOK)
}

// DeactivateAccountHandler handles deactivating an account. Idempotent;
// the balance is unaffected.
//
// Method: POST
// Path: /accounts/{account_id}/deactivate
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) DeactivateAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]
	if err := h.service.DeactivateAccount(id); err != nil {
		writeError(w, err)
		return
	}
	h.logger.Info("account deactivated", zap.String("account_id", id))
	w.WriteHeader(http.StatusOK)
}

func accountResponse(account *ledger.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.ID(),
		CustomerID:  account.CustomerID(),
		AccountType: string(account.Type()),
		Balance:     account.Balance().Amount(),
		Currency:    account.Balance().Currency(),
		Active:      account.IsActive(),
	}
}

func accountResponses(accounts []*ledger.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, accountResponse(account))
	}
	return responses
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("writing JSON response", zap.Error(err))
	}
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, money.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, ledger.ErrAccountNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrAccountInactive):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}
