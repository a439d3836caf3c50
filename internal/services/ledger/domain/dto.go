package domain

// BalanceInput asks for an account balance
type BalanceInput struct {
	AccountID string `json:"account_id" validate:"required,min=1,max=128" example:"acct-7f3a"`
}

// BalanceOutput carries the current balance
type BalanceOutput struct {
	AccountID string `json:"account_id" example:"acct-7f3a"`
	Balance   int    `json:"balance"    example:"42"`
}

// CreditInput tops up an account
type CreditInput struct {
	AccountID string `json:"account_id" validate:"required,min=1,max=128" example:"acct-7f3a"`
	Amount    int    `json:"amount"     validate:"required,min=1" example:"100"`
}
