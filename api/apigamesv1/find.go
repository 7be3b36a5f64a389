package apigamesv1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/SierraSoftworks/connor"
	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/gamedb/games"
	"github.com/fulldump/gamedb/utils"
)

// find streams matching games as NDJSON, one document per line. The
// filter is matched against the JSON form of each game.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := &struct {
		Filter map[string]interface{} `json:"filter"`
		Skip   int64                  `json:"skip"`
		Limit  int64                  `json:"limit"`
	}{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  100,
	}
	if len(requestBody) > 0 {
		err = jsonv2.Unmarshal(requestBody, params)
		if err != nil {
			box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
			return fmt.Errorf("decode filter: %w", err)
		}
	}

	hasFilter := len(params.Filter) > 0

	s := GetServicer(ctx)

	skip := params.Skip
	limit := params.Limit
	for _, game := range s.GetAllGames().IntoInner() {

		if limit == 0 {
			break
		}

		if hasFilter {
			doc := map[string]interface{}{}
			err := utils.Remarshal(game, &doc)
			if err != nil {
				return fmt.Errorf("encode game %d: %w", game.UID, err)
			}

			match, err := connor.Match(params.Filter, doc)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		writeGame(w, game)
	}

	return nil
}

func writeGame(w http.ResponseWriter, game *games.Game) {
	json.NewEncoder(w).Encode(game)
}
