package workout_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	workout "github.com/MyuRay/ONE-FIT-HERO/internal/domain/workout"
	. "github.com/smartystreets/goconvey/convey"
)

// drainTicks sends n ticks and waits briefly for the runner to absorb
// them. The tick channel is unbuffered so a completed send means the
// runner's loop has picked the tick up.
func drainTicks(ticks chan<- time.Time, n int) {
	for i := 0; i < n; i++ {
		ticks <- time.Now()
	}
	// One extra scheduling point so the last tick is fully applied.
	time.Sleep(10 * time.Millisecond)
}

func TestRunner(t *testing.T) {
	Convey("Given a runner driven by a manual tick source", t, func() {
		ticks := make(chan time.Time)
		runner := workout.NewRunner("trainer-1", model.DifficultyBeginner,
			workout.WithTickSource(ticks, nil),
			workout.WithRand(rand.New(rand.NewSource(1))),
		)
		ctx, cancel := context.WithCancel(context.Background())
		go runner.Run(ctx)
		Reset(func() {
			cancel()
		})

		Convey("When ticks arrive while idle", func() {
			drainTicks(ticks, 3)

			Convey("Then elapsed time accumulates but no accrual does", func() {
				So(runner.Elapsed(), ShouldEqual, 3)
				snap, err := runner.Stop(context.Background())
				So(err, ShouldBeNil)
				So(snap.RawAccrual, ShouldEqual, 0)
			})
		})

		Convey("When playback is playing", func() {
			So(runner.SetPlayback(workout.PlaybackPlaying), ShouldBeNil)
			drainTicks(ticks, 4)

			Convey("Then accrual accumulates alongside elapsed time", func() {
				snap, err := runner.Stop(context.Background())
				So(err, ShouldBeNil)
				So(snap.ElapsedSeconds, ShouldEqual, 4)
				So(snap.RawAccrual, ShouldBeGreaterThanOrEqualTo, 4)
				So(snap.RawAccrual, ShouldBeLessThanOrEqualTo, 20)
			})
		})

		Convey("When the runner is paused", func() {
			drainTicks(ticks, 2)
			runner.Pause()
			drainTicks(ticks, 3)

			Convey("Then paused ticks do not advance the clock", func() {
				So(runner.Elapsed(), ShouldEqual, 2)
			})

			Convey("And resuming continues the count", func() {
				runner.Resume()
				drainTicks(ticks, 1)
				So(runner.Elapsed(), ShouldEqual, 3)
			})
		})

		Convey("When an invalid playback state is set", func() {
			err := runner.SetPlayback(workout.PlaybackState("rewinding"))

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the runner is stopped", func() {
			drainTicks(ticks, 2)
			snap, err := runner.Stop(context.Background())

			Convey("Then the snapshot is frozen", func() {
				So(err, ShouldBeNil)
				So(snap.TrainerID, ShouldEqual, "trainer-1")
				So(snap.Difficulty, ShouldEqual, model.DifficultyBeginner)
				So(snap.ElapsedSeconds, ShouldEqual, 2)
			})

			Convey("And stopping again returns the same snapshot", func() {
				So(err, ShouldBeNil)
				again, err := runner.Stop(context.Background())
				So(err, ShouldBeNil)
				So(again, ShouldResemble, snap)
			})
		})
	})
}

func TestConstantRate(t *testing.T) {
	Convey("Given constant rate sources", t, func() {
		ctx := context.Background()

		Convey("Then a value in range passes through", func() {
			So(workout.NewConstantRate(85).Rate(ctx), ShouldEqual, 85)
		})

		Convey("And out-of-range values clamp to [0,100]", func() {
			So(workout.NewConstantRate(150).Rate(ctx), ShouldEqual, 100)
			So(workout.NewConstantRate(-5).Rate(ctx), ShouldEqual, 0)
		})
	})
}
