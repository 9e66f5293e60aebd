// Package form implements the user entry form: field values, field-level
// errors, the remote name check and the append-only user table.
//
// A Form is safe for concurrent use. Remote calls are made without holding
// the form's lock, so SetName, SetLocation and Reset stay responsive while a
// submission is being validated.
package form

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vcrobe/userform/signals"
)

// Outcome tells the caller how a Submit call ended.
type Outcome int

const (
	// OutcomeRejected means the call did not start: another submission is in
	// flight or the form is closed.
	OutcomeRejected Outcome = iota
	// OutcomeInvalid means local validation failed and no remote call was made.
	OutcomeInvalid
	// OutcomeNameTaken means the remote check refused the name.
	OutcomeNameTaken
	// OutcomeUnavailable means the remote check itself failed.
	OutcomeUnavailable
	// OutcomeAccepted means the entry was appended to the user table.
	OutcomeAccepted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNameTaken:
		return "name_taken"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Form is the form state machine.
type Form struct {
	locations LocationSource
	names     NameChecker
	log       *zap.SugaredLogger

	mu       sync.Mutex
	state    State
	lastID   uint64 // last submission id handed out
	inflight uint64 // id of the pending submission, 0 when idle
	cancel   context.CancelFunc
	closed   bool

	loadOnce sync.Once
	changes  *signals.Signal[uint64]
}

// New creates a Form backed by the given collaborators. A nil logger
// disables logging.
func New(locations LocationSource, names NameChecker, log *zap.SugaredLogger) *Form {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Form{
		locations: locations,
		names:     names,
		log:       log,
		state:     initialState(),
		changes:   signals.NewSignal[uint64](0),
	}
}

// Changes returns a signal carrying a revision number that is bumped after
// every state change. Subscribers should read Snapshot for the new state.
func (f *Form) Changes() *signals.Signal[uint64] {
	return f.changes
}

// Snapshot returns the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetName assigns the name field. Errors are left untouched.
func (f *Form) SetName(value string) {
	f.update(func(s State) State {
		s.Fields.Name = value
		return s
	})
}

// SetLocation assigns the location field. Errors are left untouched.
func (f *Form) SetLocation(value string) {
	f.update(func(s State) State {
		s.Fields.Location = value
		return s
	})
}

// Reset clears the fields and errors. The user table and the location
// options are kept, and a pending submission still completes.
func (f *Form) Reset() {
	f.update(applyReset)
}

// LoadLocations fetches the location options. Only the first call reaches
// the LocationSource; later calls return nil immediately. A failure leaves
// the options as they were and is logged; the error is returned for callers
// that want it, but the form never shows it.
func (f *Form) LoadLocations(ctx context.Context) error {
	var err error
	f.loadOnce.Do(func() {
		err = f.loadLocations(ctx)
	})
	return err
}

func (f *Form) loadLocations(ctx context.Context) error {
	locations, err := f.locations.GetLocations(ctx)
	if err != nil {
		f.log.Errorw("failed to load locations", "error", err)
		return fmt.Errorf("load locations: %w", err)
	}

	f.update(func(s State) State {
		return applyLocations(s, locations)
	})
	f.log.Debugw("locations loaded", "count", len(locations))
	return nil
}

// Submit validates the current fields and, when they are complete, checks
// the name remotely and appends the entry to the user table.
//
// The name and location are captured before the remote call; later edits do
// not change what gets committed. While a check is pending further Submit
// calls are rejected with ErrSubmissionInFlight and change nothing.
//
// A nil error is returned for every outcome the user can fix (missing
// fields, taken name). A failing remote check yields OutcomeUnavailable and
// an error wrapping ErrNameCheckUnavailable.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return OutcomeRejected, ErrClosed
	}
	if f.state.Phase == PhaseValidating {
		f.mu.Unlock()
		return OutcomeRejected, ErrSubmissionInFlight
	}

	entry := f.state.Fields
	if errs := validateLocal(entry); !errs.Empty() {
		f.state = applyValidationError(f.state, errs)
		f.mu.Unlock()
		f.publish()
		return OutcomeInvalid, nil
	}

	f.lastID++
	id := f.lastID
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	f.inflight = id
	f.cancel = cancel
	f.state = beginValidation(f.state)
	f.mu.Unlock()
	f.publish()

	valid, err := f.names.IsNameValid(ctx, entry.Name)

	f.mu.Lock()
	if f.inflight != id {
		// Closed while waiting; the form is gone, drop the result.
		f.mu.Unlock()
		return OutcomeRejected, ErrClosed
	}
	f.inflight = 0
	f.cancel = nil
	f.state = endValidation(f.state)

	var outcome Outcome
	switch {
	case err != nil:
		f.state = applyServiceFailure(f.state)
		outcome = OutcomeUnavailable
	case !valid:
		f.state = applySubmitFailure(f.state)
		outcome = OutcomeNameTaken
	default:
		f.state = applySubmitSuccess(f.state, UserRecord(entry))
		outcome = OutcomeAccepted
	}
	f.mu.Unlock()
	f.publish()

	if err != nil {
		f.log.Errorw("name check failed", "submission", id, "error", err)
		return outcome, fmt.Errorf("%w: %w", ErrNameCheckUnavailable, err)
	}
	f.log.Debugw("submission settled", "submission", id, "outcome", outcome.String())
	return outcome, nil
}

// Close tears the form down: a pending name check is cancelled and its
// result discarded, and further submissions return ErrClosed. Close is
// idempotent.
func (f *Form) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	cancel := f.cancel
	f.cancel = nil
	f.inflight = 0
	f.state = endValidation(f.state)
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	f.publish()
}

func (f *Form) update(fn func(State) State) {
	f.mu.Lock()
	f.state = fn(f.state)
	f.mu.Unlock()
	f.publish()
}

// publish must be called without f.mu held: subscribers read Snapshot.
func (f *Form) publish() {
	f.changes.Update(func(rev uint64) uint64 { return rev + 1 })
}
