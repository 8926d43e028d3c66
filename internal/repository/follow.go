package repository

import (
	"context"
	"errors"

	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Get(ctx context.Context, followerID, followedID string) (*entity.Follow, error)
	Create(ctx context.Context, data *entity.Follow) error
	Delete(ctx context.Context, followerID, followedID string) error
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	GetFollowerUsers(ctx context.Context, userID string) ([]entity.User, error)
	GetFollowingUsers(ctx context.Context, userID string) ([]entity.User, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Get(ctx context.Context, followerID, followedID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_user_id=? AND followed_user_id=?", followerID, followedID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_user_id=? AND followed_user_id=?", followerID, followedID).
		Delete(&entity.Follow{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("followed_user_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("follower_user_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *followRepository) GetFollowerUsers(ctx context.Context, userID string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Model(&entity.User{}).
		Joins("join follows on follows.follower_user_id=users.id").
		Where("follows.followed_user_id=?", userID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowingUsers(ctx context.Context, userID string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Model(&entity.User{}).
		Joins("join follows on follows.followed_user_id=users.id").
		Where("follows.follower_user_id=?", userID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("follower_user_id=?", userID).
		Pluck("followed_user_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
