package apigamesv1

import (
	"context"
)

type statusResponse struct {
	Status     string `json:"status"`
	Games      int    `json:"games"`
	ErrorLines []int  `json:"error_lines,omitempty"`
}

func getStatus(ctx context.Context) statusResponse {

	s := GetServicer(ctx)

	return statusResponse{
		Status:     s.GetStatus(),
		Games:      s.CountGames(),
		ErrorLines: s.ErrorLines(),
	}
}
