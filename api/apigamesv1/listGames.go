package apigamesv1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/database"
)

func listGames(ctx context.Context, r *http.Request) (*database.QueryResult, error) {

	s := GetServicer(ctx)
	q := r.URL.Query()

	if ids := q.Get("ids"); ids != "" {
		uids := []uint32{}
		for _, raw := range strings.Split(ids, ",") {
			uid, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
			if err != nil {
				box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
				return nil, fmt.Errorf("bad game id '%s'", raw)
			}
			uids = append(uids, uint32(uid))
		}
		return s.GetGamesByIDs(uids), nil
	}

	filter := &database.GameFilter{
		Name:    q.Get("name"),
		Engine:  q.Get("engine"),
		Runtime: q.Get("runtime"),
		Genre:   q.Get("genre"),
		Tag:     q.Get("tag"),
		Year:    q.Get("year"),
		Dev:     q.Get("dev"),
		Pub:     q.Get("pub"),
		Status:  q.Get("status"),
	}

	if filter.IsEmpty() {
		return s.GetAllGames(), nil
	}

	return s.SearchGames(filter, searchMode(r)), nil
}
