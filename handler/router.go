package handler

import "github.com/gorilla/mux"

// NewRouter wires every endpoint onto a mux router.
func NewRouter(accounts *AccountHandler, transactions *TransactionHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/accounts", accounts.CreateAccountHandler).Methods("POST")
	r.HandleFunc("/accounts", accounts.ListAccountsHandler).Methods("GET")
	r.HandleFunc("/accounts/{account_id}", accounts.GetAccountHandler).Methods("GET")
	r.HandleFunc("/accounts/{account_id}/balance", accounts.GetBalanceHandler).Methods("GET")
	r.HandleFunc("/accounts/{account_id}/activate", accounts.ActivateAccountHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/deactivate", accounts.DeactivateAccountHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/deposit", transactions.DepositHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/withdraw", transactions.WithdrawHandler).Methods("POST")
	r.HandleFunc("/customers/{customer_id}/accounts", accounts.ListCustomerAccountsHandler).Methods("GET")
	return r
}
