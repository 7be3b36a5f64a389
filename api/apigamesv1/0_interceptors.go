package apigamesv1

import (
	"context"

	"github.com/fulldump/gamedb/service"
)

const ContextServicerKey = "8d1a52c6-4f3a-11ef-a0b4-2b1caa7f4f77"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
