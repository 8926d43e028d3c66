package testutil

import (
	"context"

	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:            entity.Base{ID: "user1"},
		Username:        "alice",
		FullName:        "Alice Nguyen",
		Bio:             "coffee first",
		ProfileImageURL: "https://example.com/alice.png",
	}

	User2 = entity.User{
		Base:            entity.Base{ID: "user2"},
		Username:        "bob",
		FullName:        "Bob Tran",
		ProfileImageURL: "https://example.com/bob.png",
	}

	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Username: "carol",
		FullName: "Carol Pham",
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}
