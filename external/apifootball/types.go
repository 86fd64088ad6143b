package apifootball

import (
	"encoding/json"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// envelope is the common wrapper every endpoint returns. The provider
// serializes "errors" as an empty array when there are none and as an
// object keyed by parameter name when there are, so it is kept raw and
// flattened on demand.
type envelope[T any] struct {
	Get      string          `json:"get"`
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Paging   paging          `json:"paging"`
	Response []T             `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

func (e envelope[T]) errorMessages() []string {
	raw := []byte(e.Errors)
	if len(raw) == 0 {
		return nil
	}

	var asMap map[string]string
	if err := sonic.Unmarshal(raw, &asMap); err == nil {
		out := make([]string, 0, len(asMap))
		for key, value := range asMap {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			out = append(out, key+": "+value)
		}
		return out
	}

	var asList []string
	if err := sonic.Unmarshal(raw, &asList); err == nil {
		out := make([]string, 0, len(asList))
		for _, value := range asList {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			out = append(out, value)
		}
		return out
	}

	return nil
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
		Logo    string `json:"logo"`
		Flag    string `json:"flag"`
		Season  int    `json:"season"`
		Round   string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home fixtureTeamRef `json:"home"`
		Away fixtureTeamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type fixtureTeamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type teamItem struct {
	Team struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Code    string `json:"code"`
		Country string `json:"country"`
		Founded int    `json:"founded"`
		Logo    string `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		City string `json:"city"`
	} `json:"venue"`
}

type squadItem struct {
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"team"`
	Players []squadPlayer `json:"players"`
}

type squadPlayer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Number   *int   `json:"number"`
	Position string `json:"position"`
	Photo    string `json:"photo"`
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Flag string `json:"flag"`
	} `json:"country"`
	Seasons []leagueSeason `json:"seasons"`
}

type leagueSeason struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type standingsItem struct {
	League struct {
		ID        int64             `json:"id"`
		Name      string            `json:"name"`
		Country   string            `json:"country"`
		Season    int               `json:"season"`
		Standings [][]standingEntry `json:"standings"`
	} `json:"league"`
}

type standingEntry struct {
	Rank int `json:"rank"`
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"team"`
	Points      int    `json:"points"`
	GoalsDiff   int    `json:"goalsDiff"`
	Group       string `json:"group"`
	Form        string `json:"form"`
	Description string `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type scorerItem struct {
	Player struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Nationality string `json:"nationality"`
		Photo       string `json:"photo"`
	} `json:"player"`
	Statistics []scorerStatistic `json:"statistics"`
}

type scorerStatistic struct {
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"team"`
	Games struct {
		Appearences int `json:"appearences"`
	} `json:"games"`
	Goals struct {
		Total   *int `json:"total"`
		Assists *int `json:"assists"`
	} `json:"goals"`
	Penalty struct {
		Scored *int `json:"scored"`
	} `json:"penalty"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	Player struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Assist struct {
		ID   *int64 `json:"id"`
		Name string `json:"name"`
	} `json:"assist"`
	Type     string `json:"type"`
	Detail   string `json:"detail"`
	Comments string `json:"comments"`
}
