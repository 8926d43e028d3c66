package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/internal/repository"
	"github.com/strandsapp/backend/pkg/errorx"
	"github.com/strandsapp/backend/pkg/xcontext"
	"github.com/strandsapp/backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	followedMessage   = "Followed"
	unfollowedMessage = "Unfollowed"
	cachedDataMessage = "this is cached data"
)

type UserDomain interface {
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetFollowers(context.Context, *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowing(context.Context, *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
	FollowUser(context.Context, *model.FollowUserRequest) (*model.FollowUserResponse, error)
	CheckFollow(context.Context, *model.CheckFollowRequest) (*model.CheckFollowResponse, error)
}

type userDomain struct {
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
	activityRepo repository.ActivityRepository
	redisClient  xredis.Client
}

func NewUserDomain(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	activityRepo repository.ActivityRepository,
	redisClient xredis.Client,
) *userDomain {
	return &userDomain{
		userRepo:     userRepo,
		followRepo:   followRepo,
		activityRepo: activityRepo,
		redisClient:  redisClient,
	}
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	var cached model.Profile
	err = d.redisClient.GetObj(ctx, profileKey(user.ID), &cached)
	if err == nil {
		return &model.GetUserResponse{Message: cachedDataMessage, User: cached}, nil
	}

	// Any cache failure, including a decode failure of a stale payload, is
	// treated as a miss and recomputed from the database.
	if !errors.Is(err, xredis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot read profile cache of %s: %v", user.ID, err)
	}

	profile, err := d.computeProfile(ctx, user, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	ttl := xcontext.Configs(ctx).Cache.ProfileTTL
	if err := d.redisClient.SetObj(ctx, profileKey(user.ID), profile, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache profile of %s: %v", user.ID, err)
	}

	return &model.GetUserResponse{User: profile}, nil
}

func (d *userDomain) computeProfile(
	ctx context.Context, user *entity.User, callerID string,
) (model.Profile, error) {
	following, err := d.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following of %s: %v", user.ID, err)
		return model.Profile{}, errorx.Unknown
	}

	followers, err := d.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers of %s: %v", user.ID, err)
		return model.Profile{}, errorx.Unknown
	}

	isFollowing, err := d.isFollowing(ctx, callerID, user.ID)
	if err != nil {
		return model.Profile{}, err
	}

	return model.Profile{
		UserID:          user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		Bio:             user.Bio,
		ProfileImageURL: user.ProfileImageURL,
		Following:       following,
		Followers:       followers,
		IsFollowing:     isFollowing,
	}, nil
}

func (d *userDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	user, err := d.getUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	var cached []model.UserListEntry
	err = d.redisClient.GetObj(ctx, followersKey(user.ID), &cached)
	if err == nil {
		return &model.GetFollowersResponse{Message: cachedDataMessage, Followers: cached}, nil
	}

	if !errors.Is(err, xredis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot read followers cache of %s: %v", user.ID, err)
	}

	followers, err := d.followRepo.GetFollowerUsers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers of %s: %v", user.ID, err)
		return nil, errorx.Unknown
	}

	if len(followers) == 0 {
		return &model.GetFollowersResponse{Message: "No followers found."}, nil
	}

	entries, err := d.convertUserList(ctx, followers)
	if err != nil {
		return nil, err
	}

	ttl := xcontext.Configs(ctx).Cache.ProfileTTL
	if err := d.redisClient.SetObj(ctx, followersKey(user.ID), entries, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache followers of %s: %v", user.ID, err)
	}

	return &model.GetFollowersResponse{Followers: entries}, nil
}

func (d *userDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	user, err := d.getUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	var cached []model.UserListEntry
	err = d.redisClient.GetObj(ctx, followingKey(user.ID), &cached)
	if err == nil {
		return &model.GetFollowingResponse{Message: cachedDataMessage, Following: cached}, nil
	}

	if !errors.Is(err, xredis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot read following cache of %s: %v", user.ID, err)
	}

	following, err := d.followRepo.GetFollowingUsers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following of %s: %v", user.ID, err)
		return nil, errorx.Unknown
	}

	if len(following) == 0 {
		return &model.GetFollowingResponse{Message: "No followers found."}, nil
	}

	entries, err := d.convertUserList(ctx, following)
	if err != nil {
		return nil, err
	}

	ttl := xcontext.Configs(ctx).Cache.ProfileTTL
	if err := d.redisClient.SetObj(ctx, followingKey(user.ID), entries, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache following of %s: %v", user.ID, err)
	}

	return &model.GetFollowingResponse{Following: entries}, nil
}

// convertUserList marks every entry with whether the requesting caller
// follows that user. The result is cached under a key scoped to the target
// user only, so the embedded flag can be stale for other callers within the
// TTL window. That approximation is accepted; keying per caller would
// multiply cache cardinality by the user count.
func (d *userDomain) convertUserList(
	ctx context.Context, users []entity.User,
) ([]model.UserListEntry, error) {
	followingIDs, err := d.followRepo.GetFollowingIDs(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following ids of caller: %v", err)
		return nil, errorx.Unknown
	}

	followingSet := map[string]struct{}{}
	for _, id := range followingIDs {
		followingSet[id] = struct{}{}
	}

	entries := []model.UserListEntry{}
	for i := range users {
		_, isFollowing := followingSet[users[i].ID]
		entries = append(entries, model.ConvertUserListEntry(&users[i], isFollowing))
	}

	return entries, nil
}

// FollowUser toggles the follow edge from the caller to the target user.
// The edge and its companion follows-activity are written in one database
// transaction; the cached follower counter of the target is patched after
// the commit and only on a best-effort basis.
func (d *userDomain) FollowUser(
	ctx context.Context, req *model.FollowUserRequest,
) (*model.FollowUserResponse, error) {
	callerID := xcontext.RequestUserID(ctx)

	target, err := d.getUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if target.ID == callerID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow yourself")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	_, err = d.followRepo.Get(ctx, callerID, target.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check follow of (%s, %s): %v", callerID, target.ID, err)
		return nil, errorx.Unknown
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := d.follow(ctx, callerID, target.ID); err != nil {
			return nil, err
		}

		ctx = xcontext.WithCommitDBTransaction(ctx)
		d.patchFollowerCount(ctx, target.ID, 1)
		return &model.FollowUserResponse{Message: followedMessage}, nil
	}

	if err := d.unfollow(ctx, callerID, target.ID); err != nil {
		return nil, err
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)
	d.patchFollowerCount(ctx, target.ID, -1)
	return &model.FollowUserResponse{Message: unfollowedMessage}, nil
}

func (d *userDomain) follow(ctx context.Context, callerID, targetID string) error {
	err := d.followRepo.Create(ctx, &entity.Follow{
		FollowerUserID: callerID,
		FollowedUserID: targetID,
	})
	if err != nil {
		// A concurrent toggle may have created the edge after our presence
		// check. If the edge now exists, the desired end state already
		// holds and the loser resolves to a no-op success.
		if _, checkErr := d.followRepo.Get(ctx, callerID, targetID); checkErr == nil {
			xcontext.Logger(ctx).Warnf(
				"Concurrent follow of (%s, %s) resolved as already followed", callerID, targetID)
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot create follow of (%s, %s): %v", callerID, targetID, err)
		return errorx.Unknown
	}

	_, err = d.activityRepo.GetByEvent(ctx, callerID, targetID, entity.Follows, "")
	if err == nil {
		// Residual record from a prior inconsistent state; keep it.
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check follow activity of (%s, %s): %v", callerID, targetID, err)
		return errorx.Unknown
	}

	err = d.activityRepo.Create(ctx, &entity.Activity{
		ID:            uuid.NewString(),
		SenderID:      callerID,
		ReceiverID:    targetID,
		ActivityType:  entity.Follows,
		ActivityTitle: "Followed you",
	})
	if err != nil {
		// The unique event index may reject a duplicate created by a
		// concurrent follow; that still satisfies the one-record invariant.
		if _, checkErr := d.activityRepo.GetByEvent(ctx, callerID, targetID, entity.Follows, ""); checkErr == nil {
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot create follow activity of (%s, %s): %v", callerID, targetID, err)
		return errorx.Unknown
	}

	return nil
}

func (d *userDomain) unfollow(ctx context.Context, callerID, targetID string) error {
	if err := d.followRepo.Delete(ctx, callerID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A concurrent toggle already removed the edge.
			xcontext.Logger(ctx).Warnf(
				"Concurrent unfollow of (%s, %s) resolved as already unfollowed", callerID, targetID)
		} else {
			xcontext.Logger(ctx).Errorf("Cannot delete follow of (%s, %s): %v", callerID, targetID, err)
			return errorx.Unknown
		}
	}

	err := d.activityRepo.DeleteByEvent(ctx, callerID, targetID, entity.Follows, "")
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot delete follow activity of (%s, %s): %v", callerID, targetID, err)
		return errorx.Unknown
	}

	return nil
}

func (d *userDomain) CheckFollow(
	ctx context.Context, req *model.CheckFollowRequest,
) (*model.CheckFollowResponse, error) {
	user, err := d.getUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	isFollowing, err := d.isFollowing(ctx, xcontext.RequestUserID(ctx), user.ID)
	if err != nil {
		return nil, err
	}

	if !isFollowing {
		return &model.CheckFollowResponse{Message: "Not following", IsFollowing: false}, nil
	}

	return &model.CheckFollowResponse{Message: "Following", IsFollowing: true}, nil
}

func (d *userDomain) getUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := d.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user %s: %v", username, err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func (d *userDomain) isFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}

	_, err := d.followRepo.Get(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot check follow of (%s, %s): %v", followerID, followedID, err)
		return false, errorx.Unknown
	}

	return true, nil
}
