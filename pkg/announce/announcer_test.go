package announce_test

import (
	"testing"

	"github.com/go-headless/headless/pkg/announce"
)

func TestAnnounce_FIFODelivery(t *testing.T) {
	a := announce.New()

	var got []string
	a.Subscribe(func(ann announce.Announcement) {
		got = append(got, ann.Message)
	})

	a.Announce("first", announce.Polite, 0)
	a.Announce("second", announce.Assertive, 0)
	a.Announce("third", announce.Polite, 5000)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("delivered %d announcements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAnnounce_LogRecordsMetadata(t *testing.T) {
	a := announce.New()
	a.Announce("cleared", announce.Polite, 5000)

	log := a.Log()
	if len(log) != 1 {
		t.Fatalf("log length = %d, want 1", len(log))
	}
	if log[0].Politeness != announce.Polite || log[0].DurationMS != 5000 {
		t.Errorf("log entry = %+v", log[0])
	}
}

func TestSubscribe_Unregister(t *testing.T) {
	a := announce.New()

	calls := 0
	unsub := a.Subscribe(func(announce.Announcement) { calls++ })

	a.Announce("one", announce.Polite, 0)
	unsub()
	a.Announce("two", announce.Polite, 0)

	if calls != 1 {
		t.Errorf("listener called %d times after unsubscribe, want 1", calls)
	}
}

func TestReset_KeepsListeners(t *testing.T) {
	a := announce.New()
	calls := 0
	a.Subscribe(func(announce.Announcement) { calls++ })

	a.Announce("one", announce.Polite, 0)
	a.Reset()
	if len(a.Log()) != 0 {
		t.Error("Reset should clear the log")
	}

	a.Announce("two", announce.Polite, 0)
	if calls != 2 {
		t.Errorf("listener called %d times, want 2", calls)
	}
}

func TestDefault_IsShared(t *testing.T) {
	if announce.Default() != announce.Default() {
		t.Error("Default must return the same instance")
	}
}
