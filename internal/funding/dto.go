package funding

// TopUpRequest captures user-provided data to recharge the wallet.
// Amount is in major units (rupees).
type TopUpRequest struct {
	Amount string `json:"amount"`
}

// WithdrawRequest captures withdrawal details. Amount is in major units.
type WithdrawRequest struct {
	Amount string `json:"amount"`
}

// TopUpResponse points the client at the opened payment session.
type TopUpResponse struct {
	SessionID   string `json:"session_id"`
	State       string `json:"state"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
	Description string `json:"description"`
}

// WithdrawResponse describes the recorded withdrawal.
type WithdrawResponse struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
}
