package signals

import "testing"

func TestSignal_SetNotifiesSubscribers(t *testing.T) {
	s := NewSignal(1)

	calls := 0
	s.Subscribe(func() { calls++ })
	s.Subscribe(func() { calls++ })

	s.Set(2)

	if got := s.Get(); got != 2 {
		t.Errorf("Expected value 2, got %d", got)
	}
	if calls != 2 {
		t.Errorf("Expected 2 notifications, got %d", calls)
	}
}

func TestSignal_UnsubscribeRemovesOnlyThatSubscriber(t *testing.T) {
	s := NewSignal("a")

	var first, second, third int
	s.Subscribe(func() { first++ })
	unsubscribe := s.Subscribe(func() { second++ })
	s.Subscribe(func() { third++ })

	unsubscribe()
	unsubscribe()
	s.Set("b")

	if first != 1 || second != 0 || third != 1 {
		t.Errorf("Expected notifications 1/0/1, got %d/%d/%d", first, second, third)
	}
	if n := s.Subscribers(); n != 2 {
		t.Errorf("Expected 2 subscribers, got %d", n)
	}
}

func TestSignal_UpdateIsReadModifyWrite(t *testing.T) {
	s := NewSignal[uint64](0)
	for i := 0; i < 5; i++ {
		s.Update(func(v uint64) uint64 { return v + 1 })
	}
	if got := s.Get(); got != 5 {
		t.Errorf("Expected 5 after five updates, got %d", got)
	}
}

func TestSignal_SubscriberMayReadValue(t *testing.T) {
	s := NewSignal(0)

	var seen int
	s.Subscribe(func() { seen = s.Get() })
	s.Set(42)

	if seen != 42 {
		t.Errorf("Subscriber should observe the new value, saw %d", seen)
	}
}
