package apigamesv1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/games"
)

func getSteamGame(ctx context.Context) (*games.Game, error) {

	s := GetServicer(ctx)

	steamID := box.GetUrlParameter(ctx, "steamId")

	id, err := strconv.Atoi(steamID)
	if err != nil {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("bad steam id '%s'", steamID)
	}

	return s.GetGameBySteamID(id)
}
