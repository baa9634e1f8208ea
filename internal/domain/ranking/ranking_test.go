package ranking_test

import (
	"testing"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	ranking "github.com/MyuRay/ONE-FIT-HERO/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func sess(identity string, user, trainer int) model.WorkoutSession {
	return model.WorkoutSession{
		Identity:     identity,
		UserScore:    user,
		TrainerScore: trainer,
	}
}

func TestBuild(t *testing.T) {
	Convey("Given sessions for several identities", t, func() {
		sessions := []model.WorkoutSession{
			sess("alice", 100, 50),
			sess("bob", 300, 150),
			sess("alice", 200, 50),
		}

		Convey("When building the leaderboard", func() {
			entries := ranking.Build(sessions, nil, "alice")

			Convey("Then scores aggregate user plus trainer awards", func() {
				So(entries[0].Identity, ShouldEqual, "bob")
				So(entries[0].Score, ShouldEqual, 450)
				So(entries[1].Identity, ShouldEqual, "alice")
				So(entries[1].Score, ShouldEqual, 400)
			})

			Convey("And ranks are a dense 1..N permutation", func() {
				for i, e := range entries {
					So(e.Rank, ShouldEqual, i+1)
				}
			})

			Convey("And the top three carry prize tickets", func() {
				for _, e := range entries {
					So(e.HasPrizeTicket, ShouldEqual, e.Rank <= 3)
				}
			})
		})

		Convey("When two identities tie on score", func() {
			tied := []model.WorkoutSession{
				sess("first", 100, 0),
				sess("second", 100, 0),
			}
			entries := ranking.Build(tied, nil, "first")

			Convey("Then first-seen order breaks the tie", func() {
				So(entries[0].Identity, ShouldEqual, "first")
				So(entries[1].Identity, ShouldEqual, "second")
			})

			Convey("And rebuilding yields identical output", func() {
				again := ranking.Build(tied, nil, "first")
				So(again, ShouldResemble, entries)
			})
		})

		Convey("When seeds are provided", func() {
			seeds := []ranking.Seed{
				{Identity: "alice", TotalWorkouts: 99, Score: 99999},
				{Identity: "carol", TotalWorkouts: 10, Score: 500},
			}
			entries := ranking.Build(sessions, seeds, "alice")

			Convey("Then a seed never overrides real session data", func() {
				var alice ranking.Entry
				for _, e := range entries {
					if e.Identity == "alice" {
						alice = e
					}
				}
				So(alice.Score, ShouldEqual, 400)
				So(alice.TotalWorkouts, ShouldEqual, 2)
			})

			Convey("And a seed fills in an absent identity", func() {
				var carol ranking.Entry
				for _, e := range entries {
					if e.Identity == "carol" {
						carol = e
					}
				}
				So(carol.Score, ShouldEqual, 500)
				So(carol.TotalWorkouts, ShouldEqual, 10)
			})
		})

		Convey("When the current identity has no sessions", func() {
			entries := ranking.Build(sessions, nil, "dave")

			Convey("Then it still appears with zero score", func() {
				rank := ranking.RankOf(entries, "dave")
				So(rank, ShouldBeGreaterThan, 0)
				So(entries[rank-1].Score, ShouldEqual, 0)
			})
		})

		Convey("When the current identity is empty", func() {
			entries := ranking.Build(nil, nil, "")

			Convey("Then the default demo identity is present", func() {
				So(ranking.RankOf(entries, model.DefaultIdentity), ShouldEqual, 1)
			})
		})
	})
}

func TestRankOf(t *testing.T) {
	Convey("Given a built leaderboard", t, func() {
		entries := ranking.Build([]model.WorkoutSession{sess("alice", 10, 0)}, nil, "alice")

		Convey("Then RankOf finds a present identity", func() {
			So(ranking.RankOf(entries, "alice"), ShouldEqual, 1)
		})

		Convey("And returns zero for an absent one", func() {
			So(ranking.RankOf(entries, "nobody"), ShouldEqual, 0)
		})
	})
}

func TestDefaultSeeds(t *testing.T) {
	Convey("Given the default seed population", t, func() {
		seeds := ranking.DefaultSeeds()

		Convey("Then seven identities are seeded in descending score order", func() {
			So(seeds, ShouldHaveLength, 7)
			for i := 1; i < len(seeds); i++ {
				So(seeds[i].Score, ShouldBeLessThan, seeds[i-1].Score)
			}
		})
	})
}
