package teenpattitable

// GameStats carries aggregate counters across settled games. Counters are
// updated incrementally on each settlement, never recomputed from the
// full history.
type GameStats struct {
	TotalGames      int              `json:"total_games"`
	TotalWins       int              `json:"total_wins"`
	TotalAmountWon  int64            `json:"total_amount_won"`
	TotalAmountLost int64            `json:"total_amount_lost"`
	AveragePot      float64          `json:"average_pot"`
	FavoriteHand    HandRank         `json:"favorite_hand"` // most frequent winning rank
	HandRankCounts  map[HandRank]int `json:"hand_rank_counts,omitempty"`
}

func NewGameStats() *GameStats {
	return &GameStats{
		FavoriteHand:   HandRank_HighCard,
		HandRankCounts: make(map[HandRank]int),
	}
}

// ApplyResult folds one settlement into the counters. pot is the raw pot
// before the blind bonus (the running average tracks wagered amounts, not
// payouts). winningRank is UnsetValue when the winning hand was never
// recorded.
func (gs *GameStats) ApplyResult(result *GameResult, pot int64, losingBets int64, winningRank HandRank) {
	gs.AveragePot = ((gs.AveragePot * float64(gs.TotalGames)) + float64(pot)) / float64(gs.TotalGames+1)
	gs.TotalGames++
	gs.TotalWins++
	gs.TotalAmountWon += result.PotAmount
	gs.TotalAmountLost += losingBets

	if winningRank == HandRank(UnsetValue) {
		return
	}
	if gs.HandRankCounts == nil {
		gs.HandRankCounts = make(map[HandRank]int)
	}
	gs.HandRankCounts[winningRank]++
	if gs.HandRankCounts[winningRank] >= gs.HandRankCounts[gs.FavoriteHand] {
		gs.FavoriteHand = winningRank
	}
}
