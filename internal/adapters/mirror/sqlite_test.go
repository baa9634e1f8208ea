package mirror_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	mirror "github.com/MyuRay/ONE-FIT-HERO/internal/adapters/mirror"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/daily"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteSink(t *testing.T) {
	Convey("Given a SQLite sink on a fresh database", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "mirror.db")
		sink, err := mirror.NewSQLiteSink(ctx, path)
		So(err, ShouldBeNil)
		Reset(func() {
			_ = sink.Close()
		})

		ts := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

		Convey("When writing a session", func() {
			err := sink.WriteSession(ctx, model.WorkoutSession{
				ID:         "s1",
				Identity:   "alice",
				TrainerID:  "trainer-1",
				Difficulty: model.DifficultyBeginner,
				UserScore:  16,
				Timestamp:  ts,
				Date:       model.DayOf(ts),
			})

			Convey("Then the write succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("And repeating the same id is ignored, not an error", func() {
				So(err, ShouldBeNil)
				So(sink.WriteSession(ctx, model.WorkoutSession{
					ID:        "s1",
					Identity:  "alice",
					TrainerID: "trainer-1",
					Timestamp: ts,
					Date:      model.DayOf(ts),
				}), ShouldBeNil)
			})
		})

		Convey("When writing a daily badge", func() {
			err := sink.WriteBadge(ctx, daily.Badge{
				ID:        "b1",
				Identity:  "alice",
				Date:      model.DayOf(ts),
				Timestamp: ts,
			})

			Convey("Then the write succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("And a second badge for the same identity and date is ignored", func() {
				So(err, ShouldBeNil)
				So(sink.WriteBadge(ctx, daily.Badge{
					ID:        "b2",
					Identity:  "alice",
					Date:      model.DayOf(ts),
					Timestamp: ts,
				}), ShouldBeNil)
			})
		})

		Convey("When writing an exchange record", func() {
			err := sink.WriteExchange(ctx, model.ExchangeRecord{
				ID:        "e1",
				ItemID:    "goods-1",
				ItemName:  "Gym Towel",
				TokenCost: 8000,
				Timestamp: ts,
			})

			Convey("Then the write succeeds", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}
