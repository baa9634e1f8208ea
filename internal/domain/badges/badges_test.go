package badges_test

import (
	"testing"
	"time"

	badges "github.com/MyuRay/ONE-FIT-HERO/internal/domain/badges"
	. "github.com/smartystreets/goconvey/convey"
)

func statusByID(statuses []badges.Status, id string) badges.Status {
	for _, st := range statuses {
		if st.ID == id {
			return st
		}
	}
	return badges.Status{}
}

func TestEvaluator_Progress(t *testing.T) {
	Convey("Given an evaluator over the default registry", t, func() {
		eval := badges.NewEvaluator()

		Convey("When the streak reaches seven days", func() {
			statuses := eval.Evaluate(badges.State{ConsecutiveDays: 7})

			Convey("Then the 7-day badge unlocks with full progress", func() {
				st := statusByID(statuses, "consecutive-7")
				So(st.Unlocked, ShouldBeTrue)
				So(st.Progress, ShouldEqual, 7)
				So(st.MaxProgress, ShouldEqual, 7)
			})

			Convey("And the 14-day badge shows partial progress", func() {
				st := statusByID(statuses, "consecutive-14")
				So(st.Unlocked, ShouldBeFalse)
				So(st.Progress, ShouldEqual, 7)
				So(st.MaxProgress, ShouldEqual, 14)
			})
		})

		Convey("When the streak later breaks", func() {
			eval.Evaluate(badges.State{ConsecutiveDays: 7})
			statuses := eval.Evaluate(badges.State{ConsecutiveDays: 0})

			Convey("Then progress badges recompute and lock again", func() {
				st := statusByID(statuses, "consecutive-7")
				So(st.Unlocked, ShouldBeFalse)
				So(st.Progress, ShouldEqual, 0)
			})
		})

		Convey("When total workouts and score cross thresholds", func() {
			statuses := eval.Evaluate(badges.State{TotalWorkouts: 52, TotalScore: 10500})

			Convey("Then the matching milestones unlock", func() {
				So(statusByID(statuses, "workouts-10").Unlocked, ShouldBeTrue)
				So(statusByID(statuses, "workouts-50").Unlocked, ShouldBeTrue)
				So(statusByID(statuses, "workouts-100").Unlocked, ShouldBeFalse)
				So(statusByID(statuses, "score-10000").Unlocked, ShouldBeTrue)
				So(statusByID(statuses, "score-50000").Unlocked, ShouldBeFalse)
			})
		})
	})
}

func TestEvaluator_Achievements(t *testing.T) {
	Convey("Given an evaluator with a fixed clock", t, func() {
		now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		eval := badges.NewEvaluator(badges.WithClock(func() time.Time { return now }))

		Convey("When the identity holds first place", func() {
			statuses := eval.Evaluate(badges.State{Rank: 1})

			Convey("Then both weekly achievements unlock with a grant time", func() {
				champion := statusByID(statuses, "weekly-champion")
				So(champion.Unlocked, ShouldBeTrue)
				So(champion.GrantedAt, ShouldEqual, now)
				So(statusByID(statuses, "weekly-top3").Unlocked, ShouldBeTrue)
			})
		})

		Convey("When the rank later drops out of the top three", func() {
			eval.Evaluate(badges.State{Rank: 1})
			statuses := eval.Evaluate(badges.State{Rank: 8})

			Convey("Then the grants survive", func() {
				So(statusByID(statuses, "weekly-champion").Unlocked, ShouldBeTrue)
				So(statusByID(statuses, "weekly-top3").Unlocked, ShouldBeTrue)
			})

			Convey("And the original grant time is kept", func() {
				So(statusByID(statuses, "weekly-champion").GrantedAt, ShouldEqual, now)
			})
		})

		Convey("When the identity is unranked", func() {
			statuses := eval.Evaluate(badges.State{Rank: 0})

			Convey("Then no weekly achievement unlocks", func() {
				So(statusByID(statuses, "weekly-champion").Unlocked, ShouldBeFalse)
				So(statusByID(statuses, "weekly-top3").Unlocked, ShouldBeFalse)
			})
		})

		Convey("When contributions exist for one trainer", func() {
			statuses := eval.Evaluate(badges.State{
				Contributions: []badges.Contribution{
					{TrainerID: "trainer-1", Amount: 500},
					{TrainerID: "trainer-2", Amount: 0},
					{TrainerID: "trainer-3", Amount: 0},
				},
			})

			Convey("Then the contribution hero unlocks but not the supporter", func() {
				So(statusByID(statuses, "contribution-hero").Unlocked, ShouldBeTrue)
				So(statusByID(statuses, "trainer-supporter").Unlocked, ShouldBeFalse)
			})
		})

		Convey("When every trainer received a contribution", func() {
			statuses := eval.Evaluate(badges.State{
				Contributions: []badges.Contribution{
					{TrainerID: "trainer-1", Amount: 10},
					{TrainerID: "trainer-2", Amount: 20},
					{TrainerID: "trainer-3", Amount: 30},
				},
			})

			Convey("Then the trainer supporter unlocks", func() {
				So(statusByID(statuses, "trainer-supporter").Unlocked, ShouldBeTrue)
			})
		})

		Convey("When all contributions are zero", func() {
			statuses := eval.Evaluate(badges.State{
				Contributions: []badges.Contribution{
					{TrainerID: "trainer-1", Amount: 0},
					{TrainerID: "trainer-2", Amount: 0},
					{TrainerID: "trainer-3", Amount: 0},
				},
			})

			Convey("Then neither contribution achievement unlocks", func() {
				So(statusByID(statuses, "contribution-hero").Unlocked, ShouldBeFalse)
				So(statusByID(statuses, "trainer-supporter").Unlocked, ShouldBeFalse)
			})
		})
	})
}

func TestEvaluator_NewlyGranted(t *testing.T) {
	Convey("Given an evaluator with an advancing clock", t, func() {
		now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		eval := badges.NewEvaluator(badges.WithClock(func() time.Time { return now }))

		Convey("When an achievement is granted", func() {
			before := now.Add(-time.Second)
			eval.Evaluate(badges.State{Rank: 1})

			Convey("Then it is reported as newly granted", func() {
				So(eval.NewlyGranted(before), ShouldContain, "weekly-champion")
				So(eval.Granted("weekly-champion"), ShouldBeTrue)
			})

			Convey("And a later cutoff excludes it", func() {
				So(eval.NewlyGranted(now), ShouldBeEmpty)
			})
		})
	})
}

func TestDefaultRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		defs := badges.DefaultRegistry()

		Convey("Then it holds fifteen unique badges", func() {
			So(defs, ShouldHaveLength, 15)
			seen := make(map[string]bool)
			for _, d := range defs {
				So(seen[d.ID], ShouldBeFalse)
				seen[d.ID] = true
			}
		})

		Convey("And every definition has exactly one variant shape", func() {
			for _, d := range defs {
				switch d.Kind {
				case badges.KindProgress:
					So(d.Threshold, ShouldBeGreaterThan, 0)
					So(d.Condition, ShouldBeNil)
				case badges.KindAchievement:
					So(d.Condition, ShouldNotBeNil)
					So(d.Threshold, ShouldEqual, 0)
				}
			}
		})
	})
}
