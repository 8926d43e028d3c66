package migration

import (
	"context"

	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/pkg/xcontext"
)

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Follow{},
		&entity.Activity{},
	)
}
