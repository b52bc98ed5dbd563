package schema

// EnrichedGameResult adds presentation data to a GameScoreResult.
type EnrichedGameResult struct {
	Rank int `json:"rank"`
	GameScoreResult
}

// EnrichGames adds rank to a list of game results. The input is assumed
// to be sorted best-first already.
func EnrichGames(results []GameScoreResult) []EnrichedGameResult {
	output := make([]EnrichedGameResult, len(results))
	for i, r := range results {
		output[i] = EnrichedGameResult{
			Rank:            i + 1,
			GameScoreResult: r,
		}
	}
	return output
}
