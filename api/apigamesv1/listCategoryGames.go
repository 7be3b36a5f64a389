package apigamesv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/database"
)

// listCategoryGames returns the games holding a category value. The
// default is an exact match on the index; ?search=true scans for
// values containing the pattern instead.
func listCategoryGames(ctx context.Context, r *http.Request) (*database.QueryResult, error) {

	s := GetServicer(ctx)

	c, err := urlCategory(ctx)
	if err != nil {
		return nil, err
	}

	q := r.URL.Query()
	value := q.Get("value")
	if value == "" {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("query parameter 'value' is required")
	}

	if q.Get("search") == "true" {
		return s.SearchGamesBy(c, value, searchMode(r)), nil
	}

	return s.MatchGamesBy(c, value), nil
}
