package entity

// BalanceResponse is a wallet snapshot for operators
type BalanceResponse struct {
	UserID             string `json:"userId"`
	Balance            string `json:"balance"`
	DedicatedAccountID string `json:"dedicatedAccountId,omitempty"`
}

// UserToBalanceResponse renders a user's wallet with two decimal places
func UserToBalanceResponse(user *User) BalanceResponse {
	response := BalanceResponse{
		UserID:  user.ID,
		Balance: user.GetBalance(),
	}
	if user.HasDedicatedAccount() {
		response.DedicatedAccountID = *user.DedicatedAccountID
	}
	return response
}
