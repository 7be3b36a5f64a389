package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/gamedb/api/apigamesv1"
	"github.com/fulldump/gamedb/service"
	"github.com/fulldump/gamedb/statics"
)

func Build(s service.Servicer, staticsDir, version string) *box.B {

	b := box.NewBox()

	// Every handler under /v1 pulls the servicer out of the context,
	// so the injector has to cover the whole subtree.
	v1 := b.Resource("/v1").
		WithInterceptors(
			injectServicer(s),
		)
	apigamesv1.BuildV1Games(v1, s)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apigamesv1.SetServicer(ctx, s))
		}
	}
}
