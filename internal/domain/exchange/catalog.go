package exchange

// DefaultCatalog returns the fixed exchangeable item catalog: event
// lottery tickets and sponsor goods.
func DefaultCatalog() []Item {
	return []Item{
		// Lottery tickets
		{
			ID:          "lottery-1",
			Name:        "ONE Championship Event Ticket Lottery",
			Description: "Participate in the lottery for the next event ticket",
			Type:        TypeLotteryTicket,
			TokenCost:   10000,
			Available:   true,
		},
		{
			ID:          "lottery-2",
			Name:        "Backstage Pass Lottery",
			Description: "Participate in the lottery for athlete meet & greet event",
			Type:        TypeLotteryTicket,
			TokenCost:   15000,
			Available:   true,
		},
		{
			ID:          "lottery-3",
			Name:        "ONE Championship Official T-shirt Lottery",
			Description: "Participate in the lottery for limited edition official T-shirt",
			Type:        TypeLotteryTicket,
			TokenCost:   5000,
			Available:   true,
		},
		{
			ID:          "lottery-4",
			Name:        "Training Gloves Lottery",
			Description: "Participate in the lottery for professional training gloves",
			Type:        TypeLotteryTicket,
			TokenCost:   3000,
			Available:   true,
		},
		{
			ID:          "lottery-5",
			Name:        "PPV Lottery",
			Description: "Participate in the lottery for PPV access",
			Type:        TypeLotteryTicket,
			TokenCost:   8000,
			Available:   true,
		},
		// Sponsor goods and discount coupons
		{
			ID:          "goods-1",
			Name:        "Sponsor A Gym Pass 20% OFF",
			Description: "20% discount coupon valid at designated gym chains",
			Type:        TypeGoods,
			TokenCost:   8000,
			Available:   true,
		},
		{
			ID:          "goods-2",
			Name:        "Sponsor B Supplement Discount 15% OFF",
			Description: "15% discount on protein and supplement purchases",
			Type:        TypeGoods,
			TokenCost:   6000,
			Available:   true,
		},
		{
			ID:          "goods-3",
			Name:        "Sponsor C Sportswear Discount 25% OFF",
			Description: "25% discount at sportswear brand stores",
			Type:        TypeGoods,
			TokenCost:   10000,
			Available:   true,
		},
		{
			ID:          "goods-4",
			Name:        "ONE Championship Official Towel",
			Description: "Premium towel from ONE Championship official brand",
			Type:        TypeGoods,
			TokenCost:   3500,
			Available:   true,
		},
		{
			ID:          "goods-5",
			Name:        "ONE Championship Official Mug",
			Description: "Limited edition ONE Championship mug",
			Type:        TypeGoods,
			TokenCost:   2500,
			Available:   true,
		},
		{
			ID:          "goods-6",
			Name:        "Sponsor D Training Equipment Discount 30% OFF",
			Description: "30% discount on fitness equipment purchases",
			Type:        TypeGoods,
			TokenCost:   12000,
			Available:   true,
		},
		{
			ID:          "goods-7",
			Name:        "ONE Championship Limited Sticker Set",
			Description: "Collector's item! Limited edition 5-piece sticker set",
			Type:        TypeGoods,
			TokenCost:   2000,
			Available:   true,
		},
		{
			ID:          "goods-8",
			Name:        "Sponsor E Nutrition App Premium Plan",
			Description: "3-month premium plan access",
			Type:        TypeGoods,
			TokenCost:   4500,
			Available:   true,
		},
		{
			ID:          "goods-9",
			Name:        "ONE Championship Official Bottle",
			Description: "Stainless steel official water bottle",
			Type:        TypeGoods,
			TokenCost:   4000,
			Available:   true,
		},
		{
			ID:          "goods-10",
			Name:        "Sponsor F Yoga Studio Trial Pass",
			Description: "One free trial session at designated yoga studio",
			Type:        TypeGoods,
			TokenCost:   5000,
			Available:   true,
		},
	}
}
