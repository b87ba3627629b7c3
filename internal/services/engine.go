package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/sync/semaphore"

	"lottery-miniapp-client/internal/logger"
	"lottery-miniapp-client/internal/messages"
	"lottery-miniapp-client/internal/models"
	"lottery-miniapp-client/internal/ui"
)

type Workflow string

const (
	WorkflowLogin         Workflow = "login"
	WorkflowRegister      Workflow = "register"
	WorkflowBuyTicket     Workflow = "buy_ticket"
	WorkflowDraw          Workflow = "draw"
	WorkflowRecharge      Workflow = "recharge"
	WorkflowLogout        Workflow = "logout"
	WorkflowRandomNumbers Workflow = "random_numbers"
	WorkflowNumberInput   Workflow = "number_input"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type Outcome string

const (
	OutcomeRejected        Outcome = "rejected"
	OutcomeBusy            Outcome = "busy"
	OutcomeSucceeded       Outcome = "succeeded"
	OutcomeFailed          Outcome = "failed"
	OutcomeTransportFailed Outcome = "transport_failed"
)

const (
	PageMain  = "/main"
	PageLogin = "/login"
)

// Result is what a workflow reports back to the event source. Message is the
// text of the notification it showed, if any.
type Result struct {
	Workflow Workflow `json:"workflow"`
	Outcome  Outcome  `json:"outcome"`
	Message  string   `json:"message"`
}

type Transition struct {
	Workflow Workflow
	From     State
	To       State
}

type EngineOptions struct {
	Scheduler             ui.Scheduler
	Logger                *log.Logger
	NotificationDwell     time.Duration
	NotificationExit      time.Duration
	LoginRedirectDelay    time.Duration
	RegisterRedirectDelay time.Duration
	AnimationInterval     time.Duration
	OnTransition          func(Transition)
}

// InteractionEngine turns UI events into validated API calls and renders
// their outcome to a Surface. Each workflow runs at most once at a time.
type InteractionEngine struct {
	api       LotteryAPI
	sessions  *SessionStore
	surface   ui.Surface
	scheduler ui.Scheduler
	log       *log.Logger

	notifier  *ui.Notifier
	loading   *ui.LoadingOverlay
	animation *ui.DrawAnimation

	loginRedirect    time.Duration
	registerRedirect time.Duration
	onTransition     func(Transition)

	guards map[Workflow]*semaphore.Weighted

	mu       sync.Mutex
	redirect ui.Timer
	closed   bool
}

func NewInteractionEngine(api LotteryAPI, sessions *SessionStore, surface ui.Surface, opts EngineOptions) *InteractionEngine {
	if opts.Scheduler == nil {
		opts.Scheduler = ui.RealScheduler
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.LoginRedirectDelay <= 0 {
		opts.LoginRedirectDelay = time.Second
	}
	if opts.RegisterRedirectDelay <= 0 {
		opts.RegisterRedirectDelay = 3 * time.Second
	}

	guards := make(map[Workflow]*semaphore.Weighted)
	for _, wf := range []Workflow{WorkflowLogin, WorkflowRegister, WorkflowBuyTicket, WorkflowDraw, WorkflowRecharge} {
		guards[wf] = semaphore.NewWeighted(1)
	}

	return &InteractionEngine{
		api:              api,
		sessions:         sessions,
		surface:          surface,
		scheduler:        opts.Scheduler,
		log:              opts.Logger,
		notifier:         ui.NewNotifier(surface, opts.Scheduler, opts.NotificationDwell, opts.NotificationExit),
		loading:          ui.NewLoadingOverlay(surface),
		animation:        ui.NewDrawAnimation(surface, models.NumbersPerTicket, opts.AnimationInterval),
		loginRedirect:    opts.LoginRedirectDelay,
		registerRedirect: opts.RegisterRedirectDelay,
		onTransition:     opts.OnTransition,
		guards:           guards,
	}
}

// Startup restores a persisted session and renders the matching audience.
func (e *InteractionEngine) Startup(ctx context.Context) (*models.Session, error) {
	session, err := e.sessions.CheckLoginStatus(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to restore session")
		e.surface.SetAudience(false)
		return nil, err
	}

	if session == nil {
		e.surface.SetAudience(false)
		return nil, nil
	}

	e.updateUserInterface(session.User)
	return session, nil
}

func (e *InteractionEngine) Session(ctx context.Context) (*models.Session, error) {
	session, err := e.sessions.Current(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil, nil
	}
	return session, err
}

// Close cancels pending timers and stops the animation.
func (e *InteractionEngine) Close() {
	e.mu.Lock()
	e.closed = true
	if e.redirect != nil {
		e.redirect.Stop()
		e.redirect = nil
	}
	e.mu.Unlock()

	e.animation.Stop()
	e.notifier.Close()
}

func (e *InteractionEngine) updateUserInterface(user models.User) {
	e.surface.RenderUserMenu(ui.RenderUserMenu(user))
	e.surface.SetAudience(true)
}

func (e *InteractionEngine) setBalance(ctx context.Context, balance float64) {
	if _, err := e.sessions.UpdateBalance(ctx, balance); err != nil {
		e.log.Warn().Err(err).Float64("balance", balance).Msg("failed to persist balance")
	}
	e.surface.SetBalance(models.FormatCurrency(balance))
}

func (e *InteractionEngine) navigateAfter(d time.Duration, path string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if e.redirect != nil {
		e.redirect.Stop()
	}
	e.redirect = e.scheduler.AfterFunc(d, func() { e.surface.Navigate(path) })
}

func (e *InteractionEngine) token(ctx context.Context) string {
	session, err := e.sessions.Current(ctx)
	if err != nil {
		return ""
	}
	return session.Token
}

// run drives one workflow through its states. validate may be nil; submit
// runs with the loading overlay held.
func (e *InteractionEngine) run(
	ctx context.Context,
	wf Workflow,
	loadingMsg string,
	validate func() error,
	submit func(ctx context.Context) Result,
) Result {
	guard := e.guards[wf]
	if !guard.TryAcquire(1) {
		msg := messages.Text(messages.RequestInProgress)
		e.notifier.Error(msg)
		e.log.Debug().Str("workflow", string(wf)).Msg("rejected while in flight")
		return Result{Workflow: wf, Outcome: OutcomeBusy, Message: msg}
	}
	defer guard.Release(1)

	e.transition(wf, StateIdle, StateValidating)
	if validate != nil {
		if err := validate(); err != nil {
			msg := err.Error()
			e.notifier.Error(msg)
			e.transition(wf, StateValidating, StateIdle)
			return Result{Workflow: wf, Outcome: OutcomeRejected, Message: msg}
		}
	}

	e.transition(wf, StateValidating, StateSubmitting)
	result := func() Result {
		release := e.loading.Acquire(loadingMsg)
		defer release()
		return submit(ctx)
	}()

	final := StateFailed
	if result.Outcome == OutcomeSucceeded {
		final = StateSucceeded
	}
	e.transition(wf, StateSubmitting, final)
	e.transition(wf, final, StateIdle)

	return result
}

func (e *InteractionEngine) transition(wf Workflow, from, to State) {
	e.log.Debug().Str("workflow", string(wf)).Str("from", string(from)).Str("to", string(to)).Msg("workflow transition")
	if e.onTransition != nil {
		e.onTransition(Transition{Workflow: wf, From: from, To: to})
	}
}

func (e *InteractionEngine) succeed(wf Workflow, msg string) Result {
	e.notifier.Success(msg)
	return Result{Workflow: wf, Outcome: OutcomeSucceeded, Message: msg}
}

// fail shows the server's message verbatim.
func (e *InteractionEngine) fail(wf Workflow, msg string) Result {
	if msg == "" {
		msg = messages.Text(messages.NetworkError)
	}
	e.notifier.Error(msg)
	return Result{Workflow: wf, Outcome: OutcomeFailed, Message: msg}
}

// transportFailed keeps err in the log and shows the generic message.
func (e *InteractionEngine) transportFailed(wf Workflow, err error) Result {
	e.log.Error().Err(err).Str("workflow", string(wf)).Msg("request failed")
	msg := messages.Text(messages.NetworkError)
	e.notifier.Error(msg)
	return Result{Workflow: wf, Outcome: OutcomeTransportFailed, Message: msg}
}
