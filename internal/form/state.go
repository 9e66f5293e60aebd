package form

import "slices"

// User-visible field error messages.
const (
	MsgNameRequired         = "please enter a name"
	MsgLocationRequired     = "please enter a location"
	MsgNameTaken            = "name is already taken, please try another"
	MsgNameCheckUnavailable = "name validation is unavailable, please try again"
)

// Phase is the submission state of the form.
type Phase int

const (
	// PhaseIdle accepts a new submission.
	PhaseIdle Phase = iota
	// PhaseValidating waits on the remote name check.
	PhaseValidating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	default:
		return "unknown"
	}
}

// Field identifies a form input.
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldLocation
)

// Fields holds the current input values.
type Fields struct {
	Name     string
	Location string
}

// UserRecord is an accepted entry of the user table.
type UserRecord struct {
	Name     string
	Location string
}

// FieldErrors holds at most one field-level message. The zero value has no
// errors; other values come from NameError and LocationError, so both
// fields can never carry a message at the same time.
type FieldErrors struct {
	field   Field
	message string
}

// NoErrors returns an error set with no messages.
func NoErrors() FieldErrors { return FieldErrors{} }

// NameError returns an error set with msg on the name field only.
func NameError(msg string) FieldErrors { return fieldError(FieldName, msg) }

// LocationError returns an error set with msg on the location field only.
func LocationError(msg string) FieldErrors { return fieldError(FieldLocation, msg) }

func fieldError(f Field, msg string) FieldErrors {
	if msg == "" {
		return FieldErrors{}
	}
	return FieldErrors{field: f, message: msg}
}

// Name returns the name field's message, or "".
func (e FieldErrors) Name() string { return e.For(FieldName) }

// Location returns the location field's message, or "".
func (e FieldErrors) Location() string { return e.For(FieldLocation) }

// For returns the message attached to f, or "".
func (e FieldErrors) For(f Field) string {
	if e.field != f {
		return ""
	}
	return e.message
}

// Field reports which field carries the message, FieldNone when empty.
func (e FieldErrors) Field() Field { return e.field }

// Empty reports whether no field has a message.
func (e FieldErrors) Empty() bool { return e.field == FieldNone }

// State is a point-in-time value of the whole form. Slices inside a State
// are never written after the State is published, so copies may share them.
type State struct {
	Fields    Fields
	Errors    FieldErrors
	Phase     Phase
	Locations []string
	Users     []UserRecord
}

// Loading reports whether a remote name check is in flight.
func (s State) Loading() bool { return s.Phase == PhaseValidating }

func initialState() State {
	return State{Locations: []string{""}}
}

// validateLocal builds the complete error set for fields from scratch.
// The name check wins when both fields are empty.
func validateLocal(f Fields) FieldErrors {
	switch {
	case f.Name == "":
		return NameError(MsgNameRequired)
	case f.Location == "":
		return LocationError(MsgLocationRequired)
	default:
		return NoErrors()
	}
}

func applyValidationError(s State, errs FieldErrors) State {
	s.Errors = errs
	return s
}

func beginValidation(s State) State {
	s.Phase = PhaseValidating
	return s
}

func endValidation(s State) State {
	s.Phase = PhaseIdle
	return s
}

// applySubmitSuccess appends rec and clears the inputs for the next entry.
// Clip forces append onto a fresh array so earlier snapshots keep their view.
func applySubmitSuccess(s State, rec UserRecord) State {
	s.Errors = NoErrors()
	s.Users = append(slices.Clip(s.Users), rec)
	s.Fields = Fields{}
	return s
}

// applySubmitFailure flags a taken name. Inputs stay as they are.
func applySubmitFailure(s State) State {
	s.Errors = NameError(MsgNameTaken)
	return s
}

func applyServiceFailure(s State) State {
	s.Errors = NameError(MsgNameCheckUnavailable)
	return s
}

func applyReset(s State) State {
	s.Fields = Fields{}
	s.Errors = NoErrors()
	return s
}

// applyLocations installs the placeholder followed by the service's list.
func applyLocations(s State, locations []string) State {
	s.Locations = append([]string{""}, locations...)
	return s
}
