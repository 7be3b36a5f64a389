package apigamesv1

import (
	"context"
	"net/http"
)

// getCategory lists the distinct values of one category. With
// ?with_ids=true each value comes with the uids of the games holding
// it.
func getCategory(ctx context.Context, r *http.Request) (interface{}, error) {

	s := GetServicer(ctx)

	c, err := urlCategory(ctx)
	if err != nil {
		return nil, err
	}

	if r.URL.Query().Get("with_ids") == "true" {
		return s.ListCategoryWithIDs(c), nil
	}

	return s.ListCategory(c), nil
}
