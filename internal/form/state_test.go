package form

import "testing"

func TestFieldErrors_AtMostOneField(t *testing.T) {
	cases := []struct {
		name         string
		errs         FieldErrors
		wantName     string
		wantLocation string
		wantEmpty    bool
	}{
		{"none", NoErrors(), "", "", true},
		{"name", NameError(MsgNameRequired), MsgNameRequired, "", false},
		{"location", LocationError(MsgLocationRequired), "", MsgLocationRequired, false},
		{"empty message is no error", NameError(""), "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.errs.Name(); got != tc.wantName {
				t.Errorf("Name() = %q, want %q", got, tc.wantName)
			}
			if got := tc.errs.Location(); got != tc.wantLocation {
				t.Errorf("Location() = %q, want %q", got, tc.wantLocation)
			}
			if got := tc.errs.Empty(); got != tc.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, tc.wantEmpty)
			}
		})
	}
}

func TestValidateLocal_BuildsWholeErrorSet(t *testing.T) {
	cases := []struct {
		fields Fields
		want   FieldErrors
	}{
		{Fields{}, NameError(MsgNameRequired)},
		{Fields{Location: "Remote"}, NameError(MsgNameRequired)},
		{Fields{Name: "Alice"}, LocationError(MsgLocationRequired)},
		{Fields{Name: "Alice", Location: "Remote"}, NoErrors()},
	}

	for _, tc := range cases {
		if got := validateLocal(tc.fields); got != tc.want {
			t.Errorf("validateLocal(%+v) = %+v, want %+v", tc.fields, got, tc.want)
		}
	}
}

func TestApplyValidationError_ReplacesPriorError(t *testing.T) {
	s := applyValidationError(initialState(), NameError(MsgNameRequired))
	s = applyValidationError(s, LocationError(MsgLocationRequired))

	if s.Errors.Name() != "" {
		t.Errorf("Name error should be cleared, got %q", s.Errors.Name())
	}
	if s.Errors.Location() != MsgLocationRequired {
		t.Errorf("Expected location error, got %q", s.Errors.Location())
	}
}

func TestApplySubmitSuccess_DoesNotAliasEarlierSnapshots(t *testing.T) {
	s := initialState()
	s = applySubmitSuccess(s, UserRecord{Name: "A", Location: "X"})
	s = applySubmitSuccess(s, UserRecord{Name: "B", Location: "X"})
	before := s

	after := applySubmitSuccess(s, UserRecord{Name: "C", Location: "Y"})
	sibling := applySubmitSuccess(s, UserRecord{Name: "D", Location: "Z"})

	if len(before.Users) != 2 {
		t.Fatalf("Earlier snapshot changed length: %d", len(before.Users))
	}
	if after.Users[2].Name != "C" || sibling.Users[2].Name != "D" {
		t.Errorf("Appends from the same base must not share storage: %v / %v", after.Users, sibling.Users)
	}
}

func TestApplySubmitSuccess_ClearsFieldsAndErrors(t *testing.T) {
	s := initialState()
	s.Fields = Fields{Name: "Alice", Location: "Remote"}
	s.Errors = NameError(MsgNameTaken)

	s = applySubmitSuccess(s, UserRecord{Name: "Alice", Location: "Remote"})

	if s.Fields != (Fields{}) {
		t.Errorf("Fields should be reset, got %+v", s.Fields)
	}
	if !s.Errors.Empty() {
		t.Errorf("Errors should be cleared, got %+v", s.Errors)
	}
}

func TestApplyLocations_PrefixesPlaceholder(t *testing.T) {
	s := applyLocations(initialState(), []string{"NY", "LA"})
	want := []string{"", "NY", "LA"}
	if len(s.Locations) != len(want) {
		t.Fatalf("Expected %v, got %v", want, s.Locations)
	}
	for i := range want {
		if s.Locations[i] != want[i] {
			t.Errorf("Locations[%d] = %q, want %q", i, s.Locations[i], want[i])
		}
	}
}

func TestPhase_Loading(t *testing.T) {
	s := initialState()
	if s.Loading() {
		t.Error("Initial state must not be loading")
	}
	if !beginValidation(s).Loading() {
		t.Error("Validating state must be loading")
	}
	if endValidation(beginValidation(s)).Loading() {
		t.Error("State after validation must not be loading")
	}
}
