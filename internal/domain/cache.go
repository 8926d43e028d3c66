package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/pkg/xcontext"
	"github.com/strandsapp/backend/pkg/xredis"
)

func profileKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func followersKey(userID string) string {
	return fmt.Sprintf("followers:%s", userID)
}

func followingKey(userID string) string {
	return fmt.Sprintf("following:%s", userID)
}

// patchFollowerCount adjusts the followers counter of an existing cached
// profile in place and refreshes its TTL. It runs after the follow
// transaction has committed; every failure here is absorbed, the cache will
// self-heal at the latest when the entry expires.
//
// Only the profile counter is patched. Follower and following list caches
// are left to expire on their own: a counter patch is one small write,
// recomputing full lists on every edge change is not.
func (d *userDomain) patchFollowerCount(ctx context.Context, userID string, delta int64) {
	var profile model.Profile
	err := d.redisClient.GetObj(ctx, profileKey(userID), &profile)
	if err != nil {
		if !errors.Is(err, xredis.Nil) {
			xcontext.Logger(ctx).Warnf("Cannot read cached profile of %s: %v", userID, err)
		}

		// A cache miss is not an error; the next read-through recomputes
		// authoritative counts.
		return
	}

	profile.Followers += delta
	if profile.Followers < 0 {
		profile.Followers = 0
	}

	ttl := xcontext.Configs(ctx).Cache.ProfileTTL
	if err := d.redisClient.SetObj(ctx, profileKey(userID), profile, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot patch cached profile of %s: %v", userID, err)
	}
}
