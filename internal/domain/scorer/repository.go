package scorer

import "context"

type Repository interface {
	ListByLeagueSeason(ctx context.Context, leagueID int64, season int) ([]Scorer, error)
}
