package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/internal/repository"
)

// SampleUser creates a new user in database with randomized fields. The
// sample user can be overwritten by non-zero fields of init.
//
// This function returns the sample user.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Base:            entity.Base{ID: uuid.NewString()},
		Username:        uuid.NewString(),
		FullName:        "Sample User",
		Bio:             "sample bio",
		ProfileImageURL: "https://example.com/avatar.png",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
