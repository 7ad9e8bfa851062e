package notify

import "testing"

func TestPushAssignsUniqueIDs(t *testing.T) {
	c := NewCenter()
	a := c.Push(KindStreak, "Streak!", "3 days in a row")
	b := c.Push(KindMission, "Mission complete", "Earn 40 XP today")

	if a.ID == "" || b.ID == "" {
		t.Fatal("IDs should be assigned")
	}
	if a.ID == b.ID {
		t.Error("IDs should be unique")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if got := c.Active()[0].Title; got != "Streak!" {
		t.Errorf("oldest first: got %q", got)
	}
}

func TestDismissIdempotent(t *testing.T) {
	c := NewCenter()
	n := c.Push(KindLesson, "Unlocked", "Hotel Reservations")

	c.Dismiss(n.ID)
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	// Second dismissal of the same ID is a no-op.
	c.Dismiss(n.ID)
	c.Dismiss("never-existed")
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestDismissMiddle(t *testing.T) {
	c := NewCenter()
	c.Push(KindXP, "a", "a")
	mid := c.Push(KindXP, "b", "b")
	c.Push(KindXP, "c", "c")

	c.Dismiss(mid.ID)
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	for _, n := range c.Active() {
		if n.ID == mid.ID {
			t.Error("dismissed notification still active")
		}
	}
}

func TestKindIcons(t *testing.T) {
	for _, k := range []Kind{KindStreak, KindMission, KindLesson, KindXP, Kind("other")} {
		if k.Icon() == "" {
			t.Errorf("Icon(%s) is empty", k)
		}
	}
}
