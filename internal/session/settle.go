package session

import (
	"time"

	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/missions"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/rewards"
)

// Results summarizes a settled lesson attempt for the summary screen and
// notification emitter.
type Results struct {
	Total   int
	Correct int
	Perfect bool
	Expert  bool

	Outcome rewards.Outcome
	Streak  int

	// FirstCompletion is false when the lesson had been completed before;
	// repeats still earn rewards but never re-unlock successors.
	FirstCompletion bool
	UnlockedLesson  *lessongraph.Lesson

	CompletedMissions []profile.Mission
	NewAchievements   []string

	// DailyGoalReached is set only on the attempt that crosses the goal,
	// so the celebration fires once per day.
	DailyGoalReached bool
}

// Settle applies the finished attempt to the profile and lesson graph in one
// pass: reward ledger, streak, mission progress, lesson completion and
// successor unlock, activity history, achievements. Only valid from Completed;
// the session returns to Idle afterwards.
func (s *State) Settle(p *profile.Profile, lessons []lessongraph.Lesson, now time.Time) (*Results, error) {
	if s.Phase != PhaseCompleted {
		return nil, ErrWrongPhase
	}

	total := len(s.Exercises)
	out := rewards.Compute(s.Correct, total, s.Expert)
	goalMetBefore := p.DailyGoal > 0 && p.DailyXP >= p.DailyGoal
	rewards.Apply(p, out)
	goalMetAfter := p.DailyGoal > 0 && p.DailyXP >= p.DailyGoal

	perfect := total > 0 && s.Correct == total
	res := &Results{
		Total:            total,
		Correct:          s.Correct,
		Perfect:          perfect,
		Expert:           s.Expert,
		Outcome:          out,
		Streak:           p.Streak,
		FirstCompletion:  !p.HasCompleted(s.LessonID),
		DailyGoalReached: goalMetAfter && !goalMetBefore,
	}

	graph := lessongraph.Complete(lessons, s.LessonID)
	if res.FirstCompletion && graph.Unlocked != "" {
		for i := range lessons {
			if lessons[i].Title == graph.Unlocked {
				res.UnlockedLesson = &lessons[i]
				break
			}
		}
	}
	p.MarkCompleted(s.LessonID)

	res.CompletedMissions = missions.AdvanceLessonComplete(p, out.XP, perfect)
	p.RecordActivity(profile.DateKey(now), out.XP)
	res.NewAchievements = p.RefreshAchievements()

	s.Abandon()
	return res, nil
}
