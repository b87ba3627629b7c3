package ui

import (
	"bytes"
	"fmt"
	"html/template"

	"lottery-miniapp-client/internal/messages"
	"lottery-miniapp-client/internal/models"
)

func RenderUserMenu(user models.User) UserMenuView {
	return UserMenuView{
		Greeting:    messages.Localize(messages.Greeting, map[string]interface{}{"Username": user.Username}),
		Balance:     models.FormatCurrency(user.Balance),
		LogoutLabel: messages.Text(messages.LogoutLabel),
	}
}

// RenderDrawResult lays out the winning numbers as balls in draw order,
// followed by the winners or the no-winner message.
func RenderDrawResult(result models.DrawResult) DrawResultView {
	view := DrawResultView{
		Title: messages.Text(messages.DrawTitle),
		Balls: result.Numbers(),
	}

	if len(result.Winners) == 0 {
		view.NoWinner = messages.Text(messages.NoWinner)
		return view
	}

	view.WinnersHead = messages.Text(messages.WinnersHead)
	view.Winners = make([]WinnerView, 0, len(result.Winners))
	for _, w := range result.Winners {
		view.Winners = append(view.Winners, WinnerView{
			Username:   w.Username,
			PrizeLevel: w.PrizeLevel,
			Label:      fmt.Sprintf("%s - %s", w.Username, w.PrizeLevel),
		})
	}
	return view
}

var fragments = template.Must(template.New("fragments").Parse(`
{{define "user_menu"}}<div class="user-info"><span>{{.Greeting}}</span><span class="balance user-balance">{{.Balance}}</span><button class="btn-logout" data-action="logout">{{.LogoutLabel}}</button></div>{{end}}
{{define "draw_result"}}<div class="draw-result-content"><h3>{{.Title}}</h3><div class="winning-numbers">{{range .Balls}}<span class="winning-ball">{{.}}</span>{{end}}</div>{{if .Winners}}<div class="winners-list"><h4>{{.WinnersHead}}</h4><ul>{{range .Winners}}<li>{{.Label}}</li>{{end}}</ul></div>{{else}}<p class="no-winner">{{.NoWinner}}</p>{{end}}</div>{{end}}
`))

// UserMenuHTML renders the view as an escaped HTML fragment.
func UserMenuHTML(v UserMenuView) (string, error) {
	return execute("user_menu", v)
}

func DrawResultHTML(v DrawResultView) (string, error) {
	return execute("draw_result", v)
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
