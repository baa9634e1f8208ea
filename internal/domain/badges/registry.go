package badges

// DefaultRegistry returns the fixed badge catalog.
func DefaultRegistry() []Definition {
	return []Definition{
		// Consecutive-day streaks
		{
			ID: "consecutive-7", Name: "7-Day Streak Challenge",
			Description: "Complete workouts 7 days in a row",
			Emoji:       "🔥", Rarity: RarityCommon,
			Kind: KindProgress, Metric: MetricConsecutiveDays, Threshold: 7,
		},
		{
			ID: "consecutive-14", Name: "14-Day Streak Master",
			Description: "Complete workouts 14 days in a row",
			Emoji:       "⚡", Rarity: RarityRare,
			Kind: KindProgress, Metric: MetricConsecutiveDays, Threshold: 14,
		},
		{
			ID: "consecutive-30", Name: "30-Day Streak King",
			Description: "Complete workouts 30 days in a row",
			Emoji:       "👑", Rarity: RarityEpic,
			Kind: KindProgress, Metric: MetricConsecutiveDays, Threshold: 30,
		},
		{
			ID: "consecutive-60", Name: "60-Day Streak Legend",
			Description: "Complete workouts 60 days in a row",
			Emoji:       "🏆", Rarity: RarityLegendary,
			Kind: KindProgress, Metric: MetricConsecutiveDays, Threshold: 60,
		},

		// Weekly ranking achievements
		{
			ID: "weekly-champion", Name: "Weekly Champion",
			Description: "Reach 1st place on the weekly ranking",
			Emoji:       "🥇", Rarity: RarityEpic,
			Kind:        KindAchievement,
			Condition:   func(s State) bool { return s.Rank == 1 },
		},
		{
			ID: "weekly-top3", Name: "Weekly Top 3",
			Description: "Reach the top 3 of the weekly ranking",
			Emoji:       "🥉", Rarity: RarityRare,
			Kind:        KindAchievement,
			Condition:   func(s State) bool { return s.Rank >= 1 && s.Rank <= 3 },
		},

		// Cumulative workout counts
		{
			ID: "workouts-10", Name: "Training Novice",
			Description: "Complete 10 workouts in total",
			Emoji:       "💪", Rarity: RarityCommon,
			Kind: KindProgress, Metric: MetricTotalWorkouts, Threshold: 10,
		},
		{
			ID: "workouts-50", Name: "Training Veteran",
			Description: "Complete 50 workouts in total",
			Emoji:       "💥", Rarity: RarityRare,
			Kind: KindProgress, Metric: MetricTotalWorkouts, Threshold: 50,
		},
		{
			ID: "workouts-100", Name: "Training Master",
			Description: "Complete 100 workouts in total",
			Emoji:       "🎯", Rarity: RarityEpic,
			Kind: KindProgress, Metric: MetricTotalWorkouts, Threshold: 100,
		},
		{
			ID: "workouts-500", Name: "Training Legend",
			Description: "Complete 500 workouts in total",
			Emoji:       "🌟", Rarity: RarityLegendary,
			Kind: KindProgress, Metric: MetricTotalWorkouts, Threshold: 500,
		},

		// Cumulative score milestones
		{
			ID: "score-10000", Name: "Score Milestone",
			Description: "Reach 10,000pt cumulative score",
			Emoji:       "⭐", Rarity: RarityCommon,
			Kind: KindProgress, Metric: MetricTotalScore, Threshold: 10000,
		},
		{
			ID: "score-50000", Name: "Score Champion",
			Description: "Reach 50,000pt cumulative score",
			Emoji:       "✨", Rarity: RarityRare,
			Kind: KindProgress, Metric: MetricTotalScore, Threshold: 50000,
		},
		{
			ID: "score-100000", Name: "Score Legend",
			Description: "Reach 100,000pt cumulative score",
			Emoji:       "💫", Rarity: RarityEpic,
			Kind: KindProgress, Metric: MetricTotalScore, Threshold: 100000,
		},

		// Contribution achievements
		{
			ID: "contribution-hero", Name: "Contribution Hero",
			Description: "Top contributor to a trainer's support score",
			Emoji:       "🦸", Rarity: RarityEpic,
			Kind:        KindAchievement,
			Condition: func(s State) bool {
				_, ok := topContributorTrainer(s)
				return ok
			},
		},
		{
			ID: "trainer-supporter", Name: "Trainer Supporter",
			Description: "Contribute to every trainer in the catalog",
			Emoji:       "🤝", Rarity: RarityRare,
			Kind:        KindAchievement,
			Condition:   contributedToAll,
		},
	}
}
