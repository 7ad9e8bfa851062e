// Package lessongraph maintains the linear lesson sequence and its
// lock/unlock/completion state. Statuses only move forward: locked →
// available → completed.
package lessongraph

// Status is a lesson's place in the unlock progression.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusAvailable Status = "available"
	StatusCompleted Status = "completed"
)

// Type is the lesson flavor, used for presentation and countdown length.
type Type string

const (
	TypeRegular  Type = "regular"
	TypeBoss     Type = "boss"
	TypeStory    Type = "story"
	TypeRoleplay Type = "roleplay"
)

// Lesson is one node in the linear lesson path.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Type        Type
}

// Seed returns the initial lesson path. The first lesson starts available,
// everything after it locked.
func Seed() []Lesson {
	return []Lesson{
		{ID: "1", Title: "Check-in and Security", Description: "Essential airport vocabulary.", Status: StatusAvailable, Type: TypeRegular},
		{ID: "2", Title: "Hotel Reservations", Description: "How to ask for services.", Status: StatusLocked, Type: TypeRegular},
		{ID: "3", Title: "Restaurants of the World", Description: "Master the art of ordering food.", Status: StatusLocked, Type: TypeRegular},
		{ID: "4", Title: "Tourist Survivor", Description: "Prove you can get around on your own.", Status: StatusLocked, Type: TypeBoss},
		{ID: "5", Title: "A Night at the Theater", Description: "Follow a story and fill in the dialogue.", Status: StatusLocked, Type: TypeStory},
		{ID: "6", Title: "Small Talk with Locals", Description: "Hold your own in casual conversation.", Status: StatusLocked, Type: TypeRoleplay},
	}
}

// Restore replays a set of completed lesson IDs onto a freshly seeded path,
// re-deriving completion and unlock state after a reload.
func Restore(lessons []Lesson, completedIDs []string) {
	for _, id := range completedIDs {
		Complete(lessons, id)
	}
}

// Result describes what changed during a Complete call.
type Result struct {
	Completed bool   // the named lesson transitioned to completed
	Unlocked  string // title of the successor promoted from locked, if any
}

// Complete marks the matching lesson completed and, when its immediate
// successor is locked, promotes it to available. Re-completing an
// already-completed lesson is a no-op: no status change and no unlock, so
// double invocation never re-announces the successor.
func Complete(lessons []Lesson, lessonID string) Result {
	idx := -1
	for i := range lessons {
		if lessons[i].ID == lessonID {
			idx = i
			break
		}
	}
	if idx < 0 || lessons[idx].Status == StatusCompleted {
		return Result{}
	}

	lessons[idx].Status = StatusCompleted
	res := Result{Completed: true}

	if next := idx + 1; next < len(lessons) && lessons[next].Status == StatusLocked {
		lessons[next].Status = StatusAvailable
		res.Unlocked = lessons[next].Title
	}
	return res
}
