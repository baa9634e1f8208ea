package trainers

import "github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"

// DefaultCatalog returns the fixed trainer personas created at process
// start. Cumulative scores are seeded with demo history; they are only
// ever increased afterwards.
func DefaultCatalog() []model.Trainer {
	return []model.Trainer{
		{
			ID:           "trainer-1",
			Name:         "Rodtang Jitmuangnon",
			Power:        85,
			Spirit:       90,
			Flexibility:  75,
			Description:  "Muay Thai champion. Excels in power and spirit.",
			UserScore:    15230,
			TrainerScore: 18500,
		},
		{
			ID:           "trainer-2",
			Name:         "Angela Lee",
			Power:        80,
			Spirit:       95,
			Flexibility:  85,
			Description:  "MMA champion. Has well-balanced abilities.",
			UserScore:    12850,
			TrainerScore: 16200,
		},
		{
			ID:           "trainer-3",
			Name:         "Chatri Sityodtong",
			Power:        75,
			Spirit:       100,
			Flexibility:  80,
			Description:  "Founder of ONE Championship. Has extremely high spirit.",
			UserScore:    9800,
			TrainerScore: 14500,
		},
	}
}
