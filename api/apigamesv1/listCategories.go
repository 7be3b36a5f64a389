package apigamesv1

import (
	"github.com/fulldump/gamedb/games"
)

func listCategories() []games.Category {
	return games.Categories
}
