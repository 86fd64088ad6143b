package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/team"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

// DefaultSearchSupplementThreshold is the local-match count below which a
// search also queries the provider.
const DefaultSearchSupplementThreshold = 5

// providerSearchMinLength matches the provider's own minimum; shorter
// queries are answered from the catalog alone.
const providerSearchMinLength = 3

type TeamService struct {
	provider            Provider
	catalog             team.Repository
	players             player.Repository
	cache               *cache.Store
	logger              *logging.Logger
	supplementThreshold int
}

func NewTeamService(provider Provider, catalog team.Repository, players player.Repository, cacheStore *cache.Store, logger *logging.Logger, supplementThreshold int) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if supplementThreshold <= 0 {
		supplementThreshold = DefaultSearchSupplementThreshold
	}
	return &TeamService{
		provider:            provider,
		catalog:             catalog,
		players:             players,
		cache:               cacheStore,
		logger:              logger,
		supplementThreshold: supplementThreshold,
	}
}

// Search matches teams by name. Catalog hits always come back; when they are
// scarce the provider supplements the result. Duplicates collapse on team id
// with the catalog entry winning, and names starting with the query rank
// ahead of names merely containing it, each block keeping its original
// relative order.
func (s *TeamService) Search(ctx context.Context, query string, limit int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	local, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search teams in catalog: %w", err)
	}

	merged := local
	if s.provider != nil && len(local) < s.supplementThreshold && len(query) >= providerSearchMinLength {
		remote, err := loadCached(ctx, s.cache, "teams:search:"+strings.ToLower(query), func(ctx context.Context) ([]team.Team, error) {
			return s.provider.SearchTeams(ctx, query)
		})
		if err != nil {
			s.logger.WarnContext(ctx, "team search supplement failed, serving catalog matches only", "query", query, "error", err)
		} else {
			merged = mergeTeams(local, remote)
		}
	}

	ranked := rankTeamsByPrefix(merged, query)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// Squad returns a team roster: provider first, seed catalog as fallback.
func (s *TeamService) Squad(ctx context.Context, teamID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Squad")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	if s.provider != nil {
		squad, err := loadCached(ctx, s.cache, "teams:squad:"+strconv.FormatInt(teamID, 10), func(ctx context.Context) ([]player.Player, error) {
			return s.provider.TeamSquad(ctx, teamID)
		})
		if err == nil && len(squad) > 0 {
			return squad, nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "team squad from provider failed, serving catalog", "team_id", teamID, "error", err)
		}
	}

	squad, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list squad from catalog: %w", err)
	}

	return squad, nil
}

func mergeTeams(local, remote []team.Team) []team.Team {
	seen := make(map[int64]struct{}, len(local)+len(remote))
	out := make([]team.Team, 0, len(local)+len(remote))
	for _, item := range local {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	for _, item := range remote {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// rankTeamsByPrefix stable-partitions teams whose name starts with the query
// ahead of the rest. Comparison is case-insensitive.
func rankTeamsByPrefix(teams []team.Team, query string) []team.Team {
	needle := strings.ToLower(strings.TrimSpace(query))
	prefixed := make([]team.Team, 0, len(teams))
	contained := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		if strings.HasPrefix(strings.ToLower(item.Name), needle) {
			prefixed = append(prefixed, item)
		} else {
			contained = append(contained, item)
		}
	}
	return append(prefixed, contained...)
}
