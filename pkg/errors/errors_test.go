package errors

import (
	"strings"
	"testing"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errors []*Error
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *Error)      { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func withHandler(t *testing.T, h ErrorHandler, p Policy) {
	t.Helper()
	prevPolicy := CurrentPolicy()
	SetHandler(h)
	SetPolicy(p)
	t.Cleanup(func() {
		SetHandler(nil)
		SetPolicy(prevPolicy)
	})
}

func TestErrorFormatting(t *testing.T) {
	err := Config("calendar.SetValue", "multiple value passed to single-mode calendar")
	got := err.Error()
	if !strings.Contains(got, "calendar.SetValue") || !strings.Contains(got, "[config]") {
		t.Errorf("Error() = %q", got)
	}
}

func TestStateConstructor(t *testing.T) {
	err := State("calendar.HandleCellClick", "%s value stored in single-mode calendar", "multiple")
	if err.Kind != KindState {
		t.Errorf("Kind = %v, want KindState", err.Kind)
	}
	if !strings.Contains(err.Error(), "[state]") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Timestamp.IsZero() {
		t.Error("constructor must stamp the error")
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConfig, "config"},
		{KindState, "state"},
		{KindPanic, "panic"},
		{KindUnknown, "unknown"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestReport_PolicyLog(t *testing.T) {
	h := &recordingHandler{}
	withHandler(t, h, PolicyLog)

	Report(Config("op", "boom"))
	if len(h.errors) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("Report must stamp the error")
	}
}

func TestReport_PolicyIgnore(t *testing.T) {
	h := &recordingHandler{}
	withHandler(t, h, PolicyIgnore)

	Report(Config("op", "boom"))
	if len(h.errors) != 0 {
		t.Errorf("PolicyIgnore delivered %d errors", len(h.errors))
	}
}

func TestReport_PolicyPanic(t *testing.T) {
	h := &recordingHandler{}
	withHandler(t, h, PolicyPanic)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic under PolicyPanic")
		}
		if _, ok := r.(*Error); !ok {
			t.Errorf("panic value is %T, want *Error", r)
		}
	}()
	Report(Config("op", "boom"))
}

func TestReport_Nil(t *testing.T) {
	h := &recordingHandler{}
	withHandler(t, h, PolicyLog)

	Report(nil)
	if len(h.errors) != 0 {
		t.Error("nil report must be a no-op")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	h := &recordingHandler{}
	withHandler(t, h, PolicyLog)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	if h.panics[0].Op != "test.op" || h.panics[0].Value != "kaboom" {
		t.Errorf("panic = %+v", h.panics[0])
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}
