package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lottery-miniapp-client/internal/messages"
	"lottery-miniapp-client/internal/models"
	"lottery-miniapp-client/internal/ui"
	"lottery-miniapp-client/internal/validation"
)

func (e *InteractionEngine) Login(ctx context.Context, req models.LoginRequest) Result {
	return e.run(ctx, WorkflowLogin, messages.Text(messages.LoadingLogin), nil, func(ctx context.Context) Result {
		resp, err := e.api.Login(ctx, req)
		if err != nil {
			return e.transportFailed(WorkflowLogin, err)
		}
		if !resp.Success {
			return e.fail(WorkflowLogin, resp.Message)
		}
		if resp.User == nil {
			return e.transportFailed(WorkflowLogin, fmt.Errorf("%w: login succeeded without a user", ErrMalformedResponse))
		}

		session := models.Session{Token: resp.Token, User: *resp.User}
		if err := e.sessions.Save(ctx, session); err != nil {
			return e.transportFailed(WorkflowLogin, fmt.Errorf("failed to save session: %w", err))
		}

		result := e.succeed(WorkflowLogin, messages.Text(messages.LoginSucceeded))
		e.updateUserInterface(session.User)
		e.navigateAfter(e.loginRedirect, PageMain)
		return result
	})
}

// Register sends every form field. The session is stored only when the
// server returns a profile.
func (e *InteractionEngine) Register(ctx context.Context, req *models.RegisterRequest) Result {
	validate := func() error { return validation.ValidateRegistration(req) }

	return e.run(ctx, WorkflowRegister, messages.Text(messages.LoadingRegister), validate, func(ctx context.Context) Result {
		resp, err := e.api.Register(ctx, req)
		if err != nil {
			return e.transportFailed(WorkflowRegister, err)
		}
		if !resp.Success {
			return e.fail(WorkflowRegister, resp.Message)
		}

		result := e.succeed(WorkflowRegister, messages.Text(messages.RegisterSucceeded))
		if resp.User != nil {
			session := models.Session{Token: resp.Token, User: *resp.User}
			if err := e.sessions.Save(ctx, session); err != nil {
				e.log.Error().Err(err).Msg("failed to save registered session")
			}
			e.updateUserInterface(session.User)
		}
		e.navigateAfter(e.registerRedirect, PageLogin)
		return result
	})
}

func (e *InteractionEngine) BuyTicket(ctx context.Context, form models.TicketForm) Result {
	validate := func() error { return validation.ValidateTicket(form) }

	return e.run(ctx, WorkflowBuyTicket, messages.Text(messages.LoadingTicket), validate, func(ctx context.Context) Result {
		req, err := ticketRequest(form)
		if err != nil {
			return e.transportFailed(WorkflowBuyTicket, err)
		}

		resp, err := e.api.BuyTicket(ctx, e.token(ctx), req)
		if err != nil {
			return e.transportFailed(WorkflowBuyTicket, err)
		}
		if !resp.Success {
			return e.fail(WorkflowBuyTicket, resp.Message)
		}

		result := e.succeed(WorkflowBuyTicket, successText(resp.Message))
		if resp.UserBalance != nil {
			e.setBalance(ctx, *resp.UserBalance)
		}
		e.surface.ResetTicketForm()
		return result
	})
}

// Draw rolls the balls while the request is in flight and freezes them when
// any answer, or none, arrives.
func (e *InteractionEngine) Draw(ctx context.Context) Result {
	return e.run(ctx, WorkflowDraw, messages.Text(messages.LoadingDraw), nil, func(ctx context.Context) Result {
		e.animation.Start()
		resp, err := e.api.Draw(ctx, e.token(ctx))
		e.animation.Stop()

		if err != nil {
			return e.transportFailed(WorkflowDraw, err)
		}
		if !resp.Success {
			return e.fail(WorkflowDraw, resp.Message)
		}

		e.surface.ShowDrawResult(ui.RenderDrawResult(resp.DrawResult))
		msg := resp.Message
		if msg == "" {
			msg = messages.Text(messages.DrawCompleted)
		}
		return e.succeed(WorkflowDraw, msg)
	})
}

func (e *InteractionEngine) Recharge(ctx context.Context, rawAmount string) Result {
	var amount float64
	validate := func() error {
		var err error
		amount, err = validation.ValidateRechargeAmount(rawAmount)
		return err
	}

	return e.run(ctx, WorkflowRecharge, messages.Text(messages.LoadingRecharge), validate, func(ctx context.Context) Result {
		resp, err := e.api.Recharge(ctx, e.token(ctx), models.RechargeRequest{Amount: amount})
		if err != nil {
			return e.transportFailed(WorkflowRecharge, err)
		}
		if !resp.Success {
			return e.fail(WorkflowRecharge, resp.Message)
		}

		result := e.succeed(WorkflowRecharge, successText(resp.Message))
		if resp.UserBalance != nil {
			e.setBalance(ctx, *resp.UserBalance)
		}
		return result
	})
}

// Logout drops the session and reloads the page.
func (e *InteractionEngine) Logout(ctx context.Context) Result {
	if err := e.sessions.Clear(ctx); err != nil {
		e.log.Error().Err(err).Msg("failed to clear session")
	}
	e.surface.Reload()
	return Result{Workflow: WorkflowLogout, Outcome: OutcomeSucceeded}
}

// FillRandomNumbers writes a fresh random selection into the numbers field.
func (e *InteractionEngine) FillRandomNumbers() Result {
	numbers, err := models.GenerateRandomNumbers()
	if err != nil {
		e.log.Error().Err(err).Msg("failed to generate numbers")
		return Result{Workflow: WorkflowRandomNumbers, Outcome: OutcomeFailed}
	}

	value := models.FormatNumbers(numbers)
	e.surface.FillNumbers(value)
	return Result{Workflow: WorkflowRandomNumbers, Outcome: OutcomeSucceeded, Message: value}
}

// OnNumberInput strips non-digits from a keystroke and flags values out of
// range without changing them.
func (e *InteractionEngine) OnNumberInput(field, raw string) Result {
	value, flagged := validation.SanitizeNumberInput(raw)
	e.surface.SetNumberInput(ui.NumberInputView{Field: field, Value: value, Flagged: flagged})

	if flagged {
		msg := messages.Text(messages.TicketNumberRange)
		e.notifier.Error(msg)
		return Result{Workflow: WorkflowNumberInput, Outcome: OutcomeRejected, Message: msg}
	}
	return Result{Workflow: WorkflowNumberInput, Outcome: OutcomeSucceeded, Message: value}
}

func successText(msg string) string {
	if msg == "" {
		return messages.Text(messages.OperationDone)
	}
	return msg
}

func ticketRequest(form models.TicketForm) (models.TicketRequest, error) {
	betCount, err := strconv.Atoi(strings.TrimSpace(form.BetCount))
	if err != nil {
		return models.TicketRequest{}, fmt.Errorf("bet count: %w", err)
	}

	req := models.TicketRequest{
		TicketType: models.TicketType(form.TicketType),
		BetCount:   betCount,
	}
	if req.TicketType == models.TicketTypeManual {
		numbers, err := models.ParseNumbers(form.Numbers)
		if err != nil {
			return models.TicketRequest{}, fmt.Errorf("numbers: %w", err)
		}
		req.Numbers = numbers
	}
	return req, nil
}
