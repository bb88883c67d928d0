package context

import (
	"context"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
)

func GetAuthUser(ctx context.Context) (*model.AuthUser, bool) {
	v := ctx.Value(constant.AuthUserKey)
	if v == nil {
		return nil, false
	}
	user, ok := v.(*model.AuthUser)
	return user, ok && user != nil
}

func WithAuthUser(ctx context.Context, user *model.AuthUser) context.Context {
	return context.WithValue(ctx, constant.AuthUserKey, user)
}
