// Package messages holds every user-visible string of the client. The
// catalog has a single locale.
package messages

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	TicketNumbersRequired = "TicketNumbersRequired"
	TicketNumbersCount    = "TicketNumbersCount"
	TicketNumberRange     = "TicketNumberRange"
	TicketNumbersRepeat   = "TicketNumbersRepeat"
	BetCountRange         = "BetCountRange"
	UsernameLength        = "UsernameLength"
	PasswordLength        = "PasswordLength"
	PhoneInvalid          = "PhoneInvalid"
	RechargeAmount        = "RechargeAmount"

	NetworkError      = "NetworkError"
	RequestInProgress = "RequestInProgress"

	LoginSucceeded    = "LoginSucceeded"
	RegisterSucceeded = "RegisterSucceeded"
	DrawCompleted     = "DrawCompleted"
	OperationDone     = "OperationDone"

	LoadingDefault  = "LoadingDefault"
	LoadingLogin    = "LoadingLogin"
	LoadingRegister = "LoadingRegister"
	LoadingTicket   = "LoadingTicket"
	LoadingDraw     = "LoadingDraw"
	LoadingRecharge = "LoadingRecharge"

	Greeting    = "Greeting"
	LogoutLabel = "LogoutLabel"
	DrawTitle   = "DrawTitle"
	WinnersHead = "WinnersHead"
	NoWinner    = "NoWinner"
)

var catalog = []*i18n.Message{
	{ID: TicketNumbersRequired, Other: "Please enter ticket numbers"},
	{ID: TicketNumbersCount, Other: "You must enter 7 numbers"},
	{ID: TicketNumberRange, Other: "Numbers must be between 1 and 36"},
	{ID: TicketNumbersRepeat, Other: "Numbers must not repeat"},
	{ID: BetCountRange, Other: "Bet count must be between 1 and 100"},
	{ID: UsernameLength, Other: "Username must be 3-20 characters long"},
	{ID: PasswordLength, Other: "Password must be at least 6 characters"},
	{ID: PhoneInvalid, Other: "Please enter a valid mobile number"},
	{ID: RechargeAmount, Other: "Recharge amount must be a positive number"},

	{ID: NetworkError, Other: "Network error, please retry later"},
	{ID: RequestInProgress, Other: "A request is already in progress"},

	{ID: LoginSucceeded, Other: "Login successful!"},
	{ID: RegisterSucceeded, Other: "Registration successful! Redirecting to the login page..."},
	{ID: DrawCompleted, Other: "Draw completed"},
	{ID: OperationDone, Other: "Done"},

	{ID: LoadingDefault, Other: "Loading..."},
	{ID: LoadingLogin, Other: "Logging in..."},
	{ID: LoadingRegister, Other: "Registering..."},
	{ID: LoadingTicket, Other: "Placing ticket..."},
	{ID: LoadingDraw, Other: "Drawing..."},
	{ID: LoadingRecharge, Other: "Recharging..."},

	{ID: Greeting, Other: "Welcome, {{.Username}}"},
	{ID: LogoutLabel, Other: "Logout"},
	{ID: DrawTitle, Other: "Draw result"},
	{ID: WinnersHead, Other: "Winners"},
	{ID: NoWinner, Other: "No jackpot winner this round"},
}

var localizer *i18n.Localizer

func init() {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, catalog...); err != nil {
		panic("messages: invalid catalog: " + err.Error())
	}
	localizer = i18n.NewLocalizer(bundle, language.English.String())
}

func Localize(messageID string, templateData map[string]interface{}) string {
	return localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
}

func Text(messageID string) string {
	return Localize(messageID, nil)
}
