package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/theme"
)

// PullRequestWaiter blocks until a pull request is merged or closed
type PullRequestWaiter interface {
	Wait(ctx context.Context, number int, onPoll func(*domain.RawPullRequest)) (domain.PullRequestState, error)
}

// PollMsg carries the latest snapshot of the pull request
type PollMsg struct {
	PullRequest *domain.RawPullRequest
}

// DoneMsg is sent once the waiter returns
type DoneMsg struct {
	Err   error
	State domain.PullRequestState
}

// WaitModel renders a spinner while a pull request is polled
type WaitModel struct {
	aborted bool
	cancel  context.CancelFunc
	ctx     context.Context
	done    bool
	err     error
	latest  *domain.RawPullRequest
	number  int
	polls   chan *domain.RawPullRequest
	spinner spinner.Model
	state   domain.PullRequestState
	waiter  PullRequestWaiter
}

// NewWaitModel creates a model waiting for pull request number
func NewWaitModel(ctx context.Context, waiter PullRequestWaiter, number int) *WaitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	ctx, cancel := context.WithCancel(ctx)
	return &WaitModel{
		cancel:  cancel,
		ctx:     ctx,
		number:  number,
		polls:   make(chan *domain.RawPullRequest, 1),
		spinner: s,
		waiter:  waiter,
	}
}

func (m *WaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitCmd(), m.listenCmd())
}

// waitCmd runs the waiter and closes the poll channel once it returns
func (m *WaitModel) waitCmd() tea.Cmd {
	return func() tea.Msg {
		defer close(m.polls)
		state, err := m.waiter.Wait(m.ctx, m.number, func(pr *domain.RawPullRequest) {
			select {
			case m.polls <- pr:
			case <-m.ctx.Done():
			}
		})
		return DoneMsg{Err: err, State: state}
	}
}

func (m *WaitModel) listenCmd() tea.Cmd {
	return func() tea.Msg {
		pr, ok := <-m.polls
		if !ok {
			return nil
		}
		return PollMsg{PullRequest: pr}
	}
}

func (m *WaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" || msg.String() == "esc" {
			logging.Logger.Info("Wait aborted by user", "pr", m.number)
			m.aborted = true
			m.done = true
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case PollMsg:
		m.latest = msg.PullRequest
		return m, m.listenCmd()

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		m.state = msg.State
		m.cancel()
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *WaitModel) View() string {
	if m.done {
		return ""
	}

	status := "fetching"
	if m.latest != nil {
		status = fmt.Sprintf("%s, CI %s", m.latest.State, ciLabel(m.latest.LatestCIState()))
	}
	title := theme.MutedStyle.Render(fmt.Sprintf("Waiting for pull request #%d", m.number))
	if m.latest != nil && m.latest.Title != "" {
		title = fmt.Sprintf("%s %s", title, theme.NormalStyle.Render(m.latest.Title))
	}
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), title, theme.MutedStyle.Render("("+status+")"))
}

// Result returns the terminal state. Aborting returns domain.ErrUserAborted.
func (m *WaitModel) Result() (domain.PullRequestState, error) {
	if m.aborted {
		return "", domain.ErrUserAborted
	}
	return m.state, m.err
}

func ciLabel(state domain.CIState) string {
	switch state {
	case domain.CIStateSuccess:
		return theme.SuccessStyle.Render("passing")
	case domain.CIStateFailure:
		return theme.FailureStyle.Render("failing")
	case domain.CIStatePending:
		return theme.PendingStyle.Render("pending")
	default:
		return "unknown"
	}
}
