package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseBorrow,
				Kind:       KindTypeMismatch,
				StoredType: "main.big",
				WantType:   "int64",
				Detail:     "cell holds a different payload",
			},
			contains: []string{"[borrow]", "type_mismatch", "stored main.big", "requested int64", "different payload"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseExtract,
				Kind:  KindReleased,
			},
			contains: []string{"[extract]", "released"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseClose,
				Kind:   KindLeak,
				Detail: "2 live storage(s)",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[close]", "leak", "2 live storage(s)", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseStore,
		Kind:  KindUnsupported,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := TypeMismatch(PhaseBorrow, "main.big", "int64")

	if !errors.Is(err, &Error{Phase: PhaseBorrow, Kind: KindTypeMismatch}) {
		t.Error("expected match on same Phase and Kind")
	}
	if errors.Is(err, &Error{Phase: PhaseAdopt, Kind: KindTypeMismatch}) {
		t.Error("unexpected match on different Phase")
	}
	if errors.Is(err, &Error{Phase: PhaseBorrow, Kind: KindReleased}) {
		t.Error("unexpected match on different Kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseAdopt, KindTypeMismatch).
		StoredType("[20]int32").
		WantType("int32").
		Detail("adopted with wrong element count: %d", 20).
		Cause(cause).
		Build()

	if err.Phase != PhaseAdopt || err.Kind != KindTypeMismatch {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.StoredType != "[20]int32" || err.WantType != "int32" {
		t.Fatalf("unexpected types: %q/%q", err.StoredType, err.WantType)
	}
	if err.Detail != "adopted with wrong element count: 20" {
		t.Fatalf("unexpected detail: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not propagated")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := Released(PhaseExtract, "int"); err.Kind != KindReleased {
		t.Errorf("Released kind = %s", err.Kind)
	}
	if err := Unsupported(PhaseStore, "inline payload holds Go pointers"); err.Kind != KindUnsupported {
		t.Errorf("Unsupported kind = %s", err.Kind)
	}
	if err := Leak(3); !strings.Contains(err.Error(), "3 live storage(s)") {
		t.Errorf("Leak message = %q", err.Error())
	}
	if err := InvalidInput(PhaseStore, "nil cell"); err.Phase != PhaseStore {
		t.Errorf("InvalidInput phase = %s", err.Phase)
	}
}
