package models

type TicketType string

const (
	TicketTypeManual TicketType = "manual"
	TicketTypeRandom TicketType = "random"
)

// TicketForm holds the raw values of the purchase form as typed by the user.
type TicketForm struct {
	TicketType string `json:"ticketType"`
	Numbers    string `json:"numbers"`
	BetCount   string `json:"betCount"`
}

type TicketRequest struct {
	TicketType TicketType `json:"ticketType"`
	Numbers    []int      `json:"numbers,omitempty"`
	BetCount   int        `json:"betCount"`
}

type RechargeRequest struct {
	Amount float64 `json:"amount"`
}

// BalanceResponse is returned by every balance-changing endpoint.
type BalanceResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	UserBalance *float64 `json:"userBalance,omitempty"`
}
