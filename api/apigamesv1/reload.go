package apigamesv1

import (
	"context"
	"fmt"
)

// reload re-reads the source file. Readers keep the previous data until
// the swap.
func reload(ctx context.Context) (statusResponse, error) {

	s := GetServicer(ctx)

	err := s.Reload()
	if err != nil {
		return statusResponse{}, fmt.Errorf("reload: %w", err)
	}

	return getStatus(ctx), nil
}
