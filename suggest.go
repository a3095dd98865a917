package shophub

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is how long the Suggester waits after the last keystroke
// before querying.
const DefaultDebounce = 300 * time.Millisecond

const defaultSuggestTimeout = 5 * time.Second

// SuggestQuerier is the lookup the Suggester runs debounced input against.
// *Client satisfies it.
type SuggestQuerier interface {
	Suggest(ctx context.Context, term string) ([]Suggestion, error)
}

// SuggestState is a snapshot of the suggestion dropdown.
type SuggestState struct {
	// Term is the input the state corresponds to.
	Term string
	// Suggestions are the current hits, best rated first.
	Suggestions []Suggestion
	// Open reports whether the dropdown should be visible.
	Open bool
	// Err is the failure of the last lookup, nil on success.
	Err error
}

// Suggester drives the search-as-you-type pipeline: it debounces raw input,
// queries suggestions for the settled term, and discards responses that
// arrive after newer input.
//
// Every input bumps a sequence token; a response is applied only if its
// token still matches, so out-of-order completions can never clobber the
// state for what the user currently sees.
type Suggester struct {
	querier  SuggestQuerier
	onUpdate func(SuggestState)
	logger   *zap.Logger
	history  *History
	debounce time.Duration
	timeout  time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	state  SuggestState
	closed bool
}

// SuggesterOption configures a Suggester.
type SuggesterOption func(*Suggester)

// WithDebounce overrides the debounce interval. Zero fires immediately,
// which tests use to avoid real waits.
func WithDebounce(d time.Duration) SuggesterOption {
	return func(s *Suggester) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithQueryTimeout bounds each suggestion lookup.
func WithQueryTimeout(d time.Duration) SuggesterOption {
	return func(s *Suggester) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithHistory records committed searches into the given history.
func WithHistory(h *History) SuggesterOption {
	return func(s *Suggester) {
		s.history = h
	}
}

// WithSuggesterLogger attaches a logger for lookup failures.
func WithSuggesterLogger(logger *zap.Logger) SuggesterOption {
	return func(s *Suggester) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSuggester creates a Suggester. onUpdate is invoked, without any lock
// held, every time the dropdown state changes; it may be nil.
func NewSuggester(querier SuggestQuerier, onUpdate func(SuggestState), opts ...SuggesterOption) *Suggester {
	s := &Suggester{
		querier:  querier,
		onUpdate: onUpdate,
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
		timeout:  defaultSuggestTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Input feeds a keystroke's worth of text into the pipeline. A blank term
// closes the dropdown at once and cancels any pending lookup; anything else
// schedules a lookup after the debounce interval, replacing whatever was
// pending.
func (s *Suggester) Input(term string) {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelPendingLocked()
	s.seq++

	if term == "" {
		s.state = SuggestState{}
		st := s.state
		s.mu.Unlock()
		s.notify(st)
		return
	}

	token := s.seq
	s.state.Term = term
	s.timer = time.AfterFunc(s.debounce, func() {
		s.lookup(term, token)
	})
	s.mu.Unlock()
}

// Commit ends the typing session: the pending lookup is cancelled, the
// dropdown closes, and the term lands in the attached history. Use it when
// the user submits the search or picks a suggestion.
func (s *Suggester) Commit(term string) {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelPendingLocked()
	s.seq++
	s.state = SuggestState{Term: term}
	st := s.state
	s.mu.Unlock()

	if term != "" && s.history != nil {
		s.history.Add(term)
	}
	s.notify(st)
}

// State returns the current dropdown snapshot.
func (s *Suggester) State() SuggestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels any pending lookup and makes further input a no-op.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.closed = true
}

// lookup runs on the debounce timer's goroutine.
func (s *Suggester) lookup(term string, token uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	suggestions, err := s.querier.Suggest(ctx, term)

	s.mu.Lock()
	// A newer input or a commit moved the sequence on; this response is
	// for a term the user no longer sees.
	if s.closed || token != s.seq {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.logger.Warn("suggestion lookup failed", zap.String("term", term), zap.Error(err))
		s.state = SuggestState{Term: term, Err: err}
	} else {
		s.state = SuggestState{
			Term:        term,
			Suggestions: suggestions,
			Open:        len(suggestions) > 0,
		}
	}
	st := s.state
	s.mu.Unlock()
	s.notify(st)
}

func (s *Suggester) cancelPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Suggester) notify(st SuggestState) {
	if s.onUpdate != nil {
		s.onUpdate(st)
	}
}
