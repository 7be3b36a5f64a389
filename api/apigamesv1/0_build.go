package apigamesv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/service"
)

func BuildV1Games(v1 *box.R, s service.Servicer) *box.R {

	games := v1.Resource("/games").
		WithActions(
			box.Get(listGames),
			box.ActionPost(find),
		)

	v1.Resource("/status").
		WithActions(
			box.Get(getStatus),
			box.ActionPost(reload),
		)

	v1.Resource("/games/{gameId}").
		WithActions(
			box.Get(getGame),
		)

	v1.Resource("/steam/{steamId}").
		WithActions(
			box.Get(getSteamGame),
		)

	v1.Resource("/categories").
		WithActions(
			box.Get(listCategories),
		)

	v1.Resource("/categories/{categoryName}").
		WithActions(
			box.Get(getCategory),
		)

	v1.Resource("/categories/{categoryName}/games").
		WithActions(
			box.Get(listCategoryGames),
		)

	return games
}
