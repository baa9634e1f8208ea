package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	service "github.com/MyuRay/ONE-FIT-HERO/internal/app"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	os.Exit(m.Run())
}

// newTestService starts a service with deterministic options and no
// background drift so assertions see stable state.
func newTestService(opts ...service.Option) (*service.Service, func()) {
	base := []service.Option{
		service.WithDriftEnabled(false),
		service.WithSeedDemoData(false),
		service.WithClock(func() time.Time {
			return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		}),
	}
	svc := service.New(append(base, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc, svc.Stop
}

func TestService_CompleteSession(t *testing.T) {
	Convey("Given a started service with a connected identity", t, func() {
		svc, stop := newTestService()
		Reset(stop)
		ctx := context.Background()
		svc.Connect(ctx, "alice")

		input := service.SessionInput{
			TrainerID:        "trainer-1",
			Difficulty:       model.DifficultyBeginner,
			ElapsedSeconds:   120,
			ReproductionRate: 100,
			RawAccrual:       10,
		}

		Convey("When completing a two-minute beginner session at full rate", func() {
			result, err := svc.CompleteSession(ctx, input)

			Convey("Then the awards match the calorie table", func() {
				So(err, ShouldBeNil)
				So(result.UserScore, ShouldEqual, 16)
				So(result.TokensEarned, ShouldEqual, 16)
				So(result.CaloriesBurned, ShouldEqual, 16)
				So(result.DailyBadgeGranted, ShouldBeTrue)
			})

			Convey("And the token balance grew by the award", func() {
				So(err, ShouldBeNil)
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 25016)
			})

			Convey("And the trainer totals absorbed the session", func() {
				So(err, ShouldBeNil)
				for _, tr := range svc.Trainers(ctx) {
					if tr.ID == "trainer-1" {
						So(tr.UserScore, ShouldEqual, 15230+16)
						So(tr.TrainerScore, ShouldEqual, 18500+10)
					}
				}
			})

			Convey("And the identity appears on the leaderboard", func() {
				So(err, ShouldBeNil)
				So(svc.Rank(ctx, "alice"), ShouldBeGreaterThan, 0)
			})

			Convey("And the streak starts at one", func() {
				So(err, ShouldBeNil)
				So(svc.Streak(ctx), ShouldEqual, 1)
			})
		})

		Convey("When completing a second session the same day", func() {
			_, err := svc.CompleteSession(ctx, input)
			So(err, ShouldBeNil)
			_, err = svc.CompleteSession(ctx, input)

			Convey("Then it is rejected as already completed", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "already completed today")
			})

			Convey("And no extra tokens were credited", func() {
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 25016)
			})
		})

		Convey("When no identity is connected", func() {
			svc.Disconnect(ctx)
			_, err := svc.CompleteSession(ctx, input)

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "identity required")
			})
		})

		Convey("When the trainer is unknown", func() {
			bad := input
			bad.TrainerID = "trainer-99"
			_, err := svc.CompleteSession(ctx, bad)

			Convey("Then it is rejected and the day stays claimable", func() {
				So(err, ShouldNotBeNil)
				_, err := svc.CompleteSession(ctx, input)
				So(err, ShouldBeNil)
			})
		})

		Convey("When the scoring input is invalid", func() {
			bad := input
			bad.ReproductionRate = 150
			_, err := svc.CompleteSession(ctx, bad)

			Convey("Then the claim is rolled back and the day stays claimable", func() {
				So(err, ShouldNotBeNil)
				_, err := svc.CompleteSession(ctx, input)
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestService_Workout(t *testing.T) {
	Convey("Given a started service with a connected identity", t, func() {
		svc, stop := newTestService()
		Reset(stop)
		ctx := context.Background()
		svc.Connect(ctx, "alice")

		Convey("When starting a workout", func() {
			err := svc.StartWorkout(ctx, "trainer-2", model.DifficultyIntermediate)

			Convey("Then it succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("And a second start is refused while one is active", func() {
				So(err, ShouldBeNil)
				So(svc.StartWorkout(ctx, "trainer-1", model.DifficultyBeginner), ShouldNotBeNil)
			})

			Convey("And stopping completes a session", func() {
				So(err, ShouldBeNil)
				So(svc.SetPlayback(ctx, "playing"), ShouldBeNil)
				result, err := svc.StopWorkout(ctx)
				So(err, ShouldBeNil)
				So(result.UserScore, ShouldBeGreaterThanOrEqualTo, 1)
				So(result.TokensEarned, ShouldEqual, result.UserScore)
			})

			Convey("And abandoning discards it without completing", func() {
				So(err, ShouldBeNil)
				before := svc.TokenAmount(ctx).Amount
				So(svc.AbandonWorkout(ctx), ShouldBeNil)

				So(svc.TokenAmount(ctx).Amount, ShouldEqual, before)
				So(svc.Stats(ctx)["sessions"], ShouldEqual, 0)
				So(svc.Streak(ctx), ShouldEqual, 0)

				_, stopErr := svc.StopWorkout(ctx)
				So(stopErr, ShouldNotBeNil)

				Convey("And the day stays claimable", func() {
					So(svc.StartWorkout(ctx, "trainer-1", model.DifficultyBeginner), ShouldBeNil)
					result, err := svc.StopWorkout(ctx)
					So(err, ShouldBeNil)
					So(result.DailyBadgeGranted, ShouldBeTrue)
				})
			})
		})

		Convey("When controlling a workout that does not exist", func() {
			Convey("Then pause, resume, playback, stop and abandon are refused", func() {
				So(svc.PauseWorkout(ctx), ShouldNotBeNil)
				So(svc.ResumeWorkout(ctx), ShouldNotBeNil)
				So(svc.SetPlayback(ctx, "playing"), ShouldNotBeNil)
				_, err := svc.StopWorkout(ctx)
				So(err, ShouldNotBeNil)
				So(svc.AbandonWorkout(ctx), ShouldNotBeNil)
			})
		})

		Convey("When starting without an identity", func() {
			svc.Disconnect(ctx)
			err := svc.StartWorkout(ctx, "trainer-1", model.DifficultyBeginner)

			Convey("Then it is refused", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestService_TokensAndExchange(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, stop := newTestService()
		Reset(stop)
		ctx := context.Background()
		svc.Connect(ctx, "alice")

		Convey("Then the balance starts at the default seed", func() {
			So(svc.TokenAmount(ctx).Amount, ShouldEqual, 25000)
		})

		Convey("When granting and spending tokens", func() {
			So(svc.AddTokens(ctx, 1000), ShouldBeNil)
			So(svc.SpendTokens(ctx, 500), ShouldBeNil)

			Convey("Then the balance reflects both movements", func() {
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 25500)
			})
		})

		Convey("When spending beyond the balance", func() {
			err := svc.SpendTokens(ctx, 30000)

			Convey("Then the spend is refused and the balance is intact", func() {
				So(err, ShouldNotBeNil)
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 25000)
			})
		})

		Convey("When exchanging a catalog item", func() {
			rec, err := svc.ExchangeItem(ctx, "lottery-1")

			Convey("Then the record and balance line up", func() {
				So(err, ShouldBeNil)
				So(rec.TokenCost, ShouldEqual, 10000)
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 15000)
				So(svc.ExchangeHistory(ctx), ShouldHaveLength, 1)
			})
		})

		Convey("When exchanging an unaffordable item", func() {
			So(svc.SpendTokens(ctx, 24000), ShouldBeNil)
			_, err := svc.ExchangeItem(ctx, "goods-1")

			Convey("Then nothing changes", func() {
				So(err, ShouldNotBeNil)
				So(svc.TokenAmount(ctx).Amount, ShouldEqual, 1000)
				So(svc.ExchangeHistory(ctx), ShouldBeEmpty)
			})
		})

		Convey("When listing the catalog", func() {
			So(svc.ExchangeItems(ctx), ShouldHaveLength, 15)
		})
	})
}

func TestService_SeededState(t *testing.T) {
	Convey("Given a service started with demo data", t, func() {
		svc, stop := newTestService(service.WithSeedDemoData(true))
		Reset(stop)
		ctx := context.Background()

		Convey("Then the leaderboard carries seeds and session history", func() {
			rankings := svc.Rankings(ctx, 100)
			So(len(rankings), ShouldBeGreaterThanOrEqualTo, 8)

			Convey("And the top entry is the highest pure seed", func() {
				// The 54200 and 48900 seeds are suppressed because real
				// sessions exist for those addresses.
				So(rankings[0].Address, ShouldEqual, "0xfedcba0987654321fedcba0987654321fedcba09")
				So(rankings[0].Score, ShouldEqual, 42100)
				So(rankings[0].HasPrizeTicket, ShouldBeTrue)
			})
		})

		Convey("Then the demo identity holds a six-day streak", func() {
			svc.Connect(ctx, model.DefaultIdentity)
			So(svc.Streak(ctx), ShouldEqual, 6)
		})

		Convey("Then seeded identities never get seed rows on top of sessions", func() {
			// 0xabcdef... has two demo sessions, so its score must come
			// from them, not from its 54200 seed.
			rank := svc.Rank(ctx, "0xabcdef1234567890abcdef1234567890abcdef12")
			So(rank, ShouldBeGreaterThan, 0)
			for _, e := range svc.Rankings(ctx, 100) {
				if e.Address == "0xabcdef1234567890abcdef1234567890abcdef12" {
					So(e.Score, ShouldEqual, 2200+2800+3600+4200)
					So(e.TotalWorkouts, ShouldEqual, 2)
				}
			}
		})

		Convey("Then prize tickets cover exactly the top three", func() {
			for _, e := range svc.Rankings(ctx, 100) {
				So(e.HasPrizeTicket, ShouldEqual, e.Rank <= 3)
			}
		})
	})
}

func TestService_Badges(t *testing.T) {
	Convey("Given a started service with demo data and the demo identity", t, func() {
		svc, stop := newTestService(service.WithSeedDemoData(true))
		Reset(stop)
		ctx := context.Background()
		svc.Connect(ctx, model.DefaultIdentity)

		Convey("When completing today's session", func() {
			_, err := svc.CompleteSession(ctx, service.SessionInput{
				TrainerID:        "trainer-3",
				Difficulty:       model.DifficultyBeginner,
				ElapsedSeconds:   300,
				ReproductionRate: 100,
				RawAccrual:       5,
			})

			Convey("Then the streak reaches seven and the badge unlocks", func() {
				So(err, ShouldBeNil)
				So(svc.Streak(ctx), ShouldEqual, 7)
				for _, b := range svc.Badges(ctx) {
					if b.ID == "consecutive-7" {
						So(b.Unlocked, ShouldBeTrue)
						So(b.Progress, ShouldEqual, 7)
					}
				}
			})

			Convey("And contributing to all three trainers unlocks the supporter", func() {
				So(err, ShouldBeNil)
				for _, b := range svc.Badges(ctx) {
					if b.ID == "trainer-supporter" {
						So(b.Unlocked, ShouldBeTrue)
					}
				}
			})
		})

		Convey("When reading badges without any new session", func() {
			badges := svc.Badges(ctx)

			Convey("Then the full registry is evaluated", func() {
				So(badges, ShouldHaveLength, 15)
			})

			Convey("And the contribution hero reflects the demo history", func() {
				for _, b := range badges {
					if b.ID == "contribution-hero" {
						So(b.Unlocked, ShouldBeTrue)
					}
				}
			})

			Convey("And the score badges count the same score the leaderboard ranks by", func() {
				leaderboardScore := 0
				for _, entry := range svc.Rankings(ctx, 0) {
					if entry.Address == model.DefaultIdentity {
						leaderboardScore = entry.Score
					}
				}
				So(leaderboardScore, ShouldEqual, 24750)
				for _, b := range badges {
					if b.ID == "score-10000" {
						So(b.Unlocked, ShouldBeTrue)
						So(b.Progress, ShouldEqual, leaderboardScore)
					}
					if b.ID == "score-50000" {
						So(b.Unlocked, ShouldBeFalse)
						So(b.Progress, ShouldEqual, leaderboardScore)
					}
				}
			})
		})
	})
}

func TestService_Stats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, stop := newTestService(service.WithSeedDemoData(true))
		Reset(stop)
		ctx := context.Background()

		Convey("When reading the stats snapshot", func() {
			stats := svc.Stats(ctx)

			Convey("Then it reports the seeded session count", func() {
				So(stats["sessions"], ShouldEqual, 6)
				So(stats["token_balance"], ShouldEqual, 25000)
				So(stats["started"], ShouldEqual, true)
			})
		})
	})
}
