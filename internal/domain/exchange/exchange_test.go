package exchange_test

import (
	"context"
	"testing"
	"time"

	exchange "github.com/MyuRay/ONE-FIT-HERO/internal/domain/exchange"
	tokens "github.com/MyuRay/ONE-FIT-HERO/internal/domain/tokens"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMarket_Exchange(t *testing.T) {
	Convey("Given a market and a funded wallet", t, func() {
		now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		market := exchange.NewMarket(exchange.WithClock(func() time.Time { return now }))
		wallet := tokens.NewLedger(tokens.WithInitialBalance(25000))
		ctx := context.Background()

		Convey("When exchanging an affordable catalog item", func() {
			rec, err := market.Exchange(ctx, "lottery-1", wallet)

			Convey("Then the record carries the item and cost", func() {
				So(err, ShouldBeNil)
				So(rec.ItemID, ShouldEqual, "lottery-1")
				So(rec.TokenCost, ShouldEqual, 10000)
				So(rec.ID, ShouldNotBeEmpty)
				So(rec.Timestamp, ShouldEqual, now)
			})

			Convey("And the balance drops by the cost", func() {
				So(err, ShouldBeNil)
				So(wallet.Balance(), ShouldEqual, 15000)
			})

			Convey("And the exchange lands in history", func() {
				So(err, ShouldBeNil)
				So(market.History(), ShouldHaveLength, 1)
			})
		})

		Convey("When the balance does not cover the cost", func() {
			short := tokens.NewLedger(tokens.WithInitialBalance(5000))
			_, err := market.Exchange(ctx, "goods-1", short)

			Convey("Then the exchange fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "insufficient balance")
			})

			Convey("And neither balance nor history changed", func() {
				So(short.Balance(), ShouldEqual, 5000)
				So(market.History(), ShouldBeEmpty)
			})
		})

		Convey("When the item is unknown", func() {
			_, err := market.Exchange(ctx, "goods-999", wallet)

			Convey("Then it fails without touching the wallet", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown item")
				So(wallet.Balance(), ShouldEqual, 25000)
			})
		})

		Convey("When the item is unavailable", func() {
			market := exchange.NewMarket(exchange.WithItems([]exchange.Item{
				{ID: "sold-out", Name: "Sold Out", Type: exchange.TypeGoods, TokenCost: 100, Available: false},
			}))
			_, err := market.Exchange(ctx, "sold-out", wallet)

			Convey("Then it fails and the wallet is untouched", func() {
				So(err, ShouldNotBeNil)
				So(wallet.Balance(), ShouldEqual, 25000)
			})
		})

		Convey("When several exchanges succeed", func() {
			_, err1 := market.Exchange(ctx, "goods-1", wallet)
			_, err2 := market.Exchange(ctx, "lottery-1", wallet)

			Convey("Then history preserves completion order", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				hist := market.History()
				So(hist, ShouldHaveLength, 2)
				So(hist[0].ItemID, ShouldEqual, "goods-1")
				So(hist[1].ItemID, ShouldEqual, "lottery-1")
			})
		})
	})
}

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		items := exchange.DefaultCatalog()

		Convey("Then it holds fifteen items with positive costs", func() {
			So(items, ShouldHaveLength, 15)
			for _, it := range items {
				So(it.TokenCost, ShouldBeGreaterThan, 0)
				So(it.ID, ShouldNotBeEmpty)
			}
		})

		Convey("And both item types are represented", func() {
			var lottery, goods int
			for _, it := range items {
				switch it.Type {
				case exchange.TypeLotteryTicket:
					lottery++
				case exchange.TypeGoods:
					goods++
				}
			}
			So(lottery, ShouldBeGreaterThan, 0)
			So(goods, ShouldBeGreaterThan, 0)
		})
	})
}
