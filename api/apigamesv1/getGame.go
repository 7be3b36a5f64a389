package apigamesv1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/games"
)

func getGame(ctx context.Context) (*games.Game, error) {

	s := GetServicer(ctx)

	gameID := box.GetUrlParameter(ctx, "gameId")

	uid, err := strconv.ParseUint(gameID, 10, 32)
	if err != nil {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("bad game id '%s'", gameID)
	}

	return s.GetGameByID(uint32(uid))
}
