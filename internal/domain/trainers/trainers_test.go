package trainers_test

import (
	"context"
	"testing"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	trainers "github.com/MyuRay/ONE-FIT-HERO/internal/domain/trainers"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAccumulator(t *testing.T) {
	Convey("Given an accumulator over the default catalog", t, func() {
		acc := trainers.NewAccumulator(trainers.DefaultCatalog())
		ctx := context.Background()

		Convey("When listing the catalog", func() {
			list := acc.List()

			Convey("Then all three trainers appear in catalog order", func() {
				So(list, ShouldHaveLength, 3)
				So(list[0].ID, ShouldEqual, "trainer-1")
				So(list[1].ID, ShouldEqual, "trainer-2")
				So(list[2].ID, ShouldEqual, "trainer-3")
			})
		})

		Convey("When applying a session", func() {
			before, _ := acc.Get("trainer-1")
			err := acc.Apply(ctx, model.WorkoutSession{
				ID:           "s1",
				TrainerID:    "trainer-1",
				UserScore:    100,
				TrainerScore: 150,
			})

			Convey("Then both totals grow by the session awards", func() {
				So(err, ShouldBeNil)
				after, _ := acc.Get("trainer-1")
				So(after.UserScore, ShouldEqual, before.UserScore+100)
				So(after.TrainerScore, ShouldEqual, before.TrainerScore+150)
			})

			Convey("And other trainers are untouched", func() {
				So(err, ShouldBeNil)
				other, _ := acc.Get("trainer-2")
				catalog := trainers.DefaultCatalog()
				So(other.UserScore, ShouldEqual, catalog[1].UserScore)
			})
		})

		Convey("When applying a session for an unknown trainer", func() {
			err := acc.Apply(ctx, model.WorkoutSession{ID: "s1", TrainerID: "trainer-99"})

			Convey("Then it returns the unknown trainer sentinel", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown trainer")
			})
		})

		Convey("When boosting stats", func() {
			before, _ := acc.Get("trainer-2")
			So(acc.BoostStats(ctx, "trainer-2"), ShouldBeNil)

			Convey("Then each attribute rises by one", func() {
				after, _ := acc.Get("trainer-2")
				So(after.Power, ShouldEqual, before.Power+1)
				So(after.Spirit, ShouldEqual, before.Spirit+1)
				So(after.Flexibility, ShouldEqual, before.Flexibility+1)
			})
		})

		Convey("When drift is added", func() {
			acc.AddDrift("trainer-1", 25)

			Convey("Then the live view shows the overlay", func() {
				live := acc.ListLive()
				authoritative := acc.List()
				So(live[0].TrainerScore, ShouldEqual, authoritative[0].TrainerScore+25)
			})

			Convey("And the authoritative totals are untouched", func() {
				catalog := trainers.DefaultCatalog()
				got, _ := acc.Get("trainer-1")
				So(got.TrainerScore, ShouldEqual, catalog[0].TrainerScore)
			})
		})

		Convey("When drift is non-positive", func() {
			live := acc.ListLive()
			acc.AddDrift("trainer-1", 0)
			acc.AddDrift("trainer-1", -5)

			Convey("Then nothing changes", func() {
				So(acc.ListLive()[0].TrainerScore, ShouldEqual, live[0].TrainerScore)
			})
		})

		Convey("When checking known trainers", func() {
			So(acc.Known("trainer-3"), ShouldBeTrue)
			So(acc.Known("trainer-9"), ShouldBeFalse)
		})
	})
}
