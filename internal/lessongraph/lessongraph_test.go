package lessongraph

import "testing"

func TestSeedShape(t *testing.T) {
	lessons := Seed()
	if len(lessons) == 0 {
		t.Fatal("seed is empty")
	}
	if lessons[0].Status != StatusAvailable {
		t.Errorf("first lesson status = %s, want available", lessons[0].Status)
	}
	for _, l := range lessons[1:] {
		if l.Status != StatusLocked {
			t.Errorf("lesson %s status = %s, want locked", l.ID, l.Status)
		}
	}
}

func TestCompleteUnlocksSuccessor(t *testing.T) {
	lessons := Seed()

	res := Complete(lessons, "1")
	if !res.Completed {
		t.Fatal("lesson 1 should complete")
	}
	if res.Unlocked != lessons[1].Title {
		t.Errorf("Unlocked = %q, want %q", res.Unlocked, lessons[1].Title)
	}
	if lessons[0].Status != StatusCompleted {
		t.Errorf("lesson 1 status = %s", lessons[0].Status)
	}
	if lessons[1].Status != StatusAvailable {
		t.Errorf("lesson 2 status = %s, want available", lessons[1].Status)
	}
	// Lessons beyond the successor are untouched.
	for _, l := range lessons[2:] {
		if l.Status != StatusLocked {
			t.Errorf("lesson %s status = %s, want locked", l.ID, l.Status)
		}
	}
}

func TestCompleteIdempotent(t *testing.T) {
	lessons := Seed()
	Complete(lessons, "1")

	res := Complete(lessons, "1")
	if res.Completed || res.Unlocked != "" {
		t.Errorf("re-completion = %+v, want no-op", res)
	}
}

func TestCompleteDoesNotRelockSuccessor(t *testing.T) {
	lessons := Seed()
	Complete(lessons, "1")
	Complete(lessons, "2")

	// Completing lesson 1 again must not touch lesson 2's completed status.
	Complete(lessons, "1")
	if lessons[1].Status != StatusCompleted {
		t.Errorf("lesson 2 status = %s, want completed", lessons[1].Status)
	}
}

func TestCompleteOutOfOrderSuccessorAlreadyAvailable(t *testing.T) {
	lessons := Seed()
	lessons[1].Status = StatusAvailable

	res := Complete(lessons, "1")
	if res.Unlocked != "" {
		t.Errorf("Unlocked = %q, want empty when successor was not locked", res.Unlocked)
	}
}

func TestCompleteLastLesson(t *testing.T) {
	lessons := Seed()
	last := lessons[len(lessons)-1].ID

	res := Complete(lessons, last)
	if !res.Completed || res.Unlocked != "" {
		t.Errorf("last lesson result = %+v", res)
	}
}

func TestCompleteUnknownID(t *testing.T) {
	lessons := Seed()
	if res := Complete(lessons, "nope"); res.Completed || res.Unlocked != "" {
		t.Errorf("unknown ID result = %+v, want zero", res)
	}
}

func TestRestore(t *testing.T) {
	lessons := Seed()
	Restore(lessons, []string{"1", "2"})

	if lessons[0].Status != StatusCompleted || lessons[1].Status != StatusCompleted {
		t.Error("restored lessons should be completed")
	}
	if lessons[2].Status != StatusAvailable {
		t.Errorf("lesson 3 status = %s, want available", lessons[2].Status)
	}
	if lessons[3].Status != StatusLocked {
		t.Errorf("lesson 4 status = %s, want locked", lessons[3].Status)
	}
}
