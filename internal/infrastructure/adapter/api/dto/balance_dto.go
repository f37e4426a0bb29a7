package dto

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// MoneyResponse represents the user after a balance top-up
type MoneyResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Money    string `json:"money"`
}
