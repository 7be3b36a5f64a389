package apigamesv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/games"
)

// searchMode reads the 'case' query parameter. Searches are case
// insensitive unless the client opts in.
func searchMode(r *http.Request) games.SearchMode {
	if r.URL.Query().Get("case") == "sensitive" {
		return games.CaseSensitive
	}
	return games.NotCaseSensitive
}

func urlCategory(ctx context.Context) (games.Category, error) {

	name := box.GetUrlParameter(ctx, "categoryName")

	c, ok := games.ParseCategory(name)
	if !ok {
		box.GetResponse(ctx).WriteHeader(http.StatusNotFound)
		return c, fmt.Errorf("category '%s' not found", name)
	}

	return c, nil
}
