package repository

import (
	"context"
	"errors"

	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, data *entity.Activity) error
	GetByEvent(ctx context.Context, senderID, receiverID string,
		activityType entity.ActivityType, postID string) (*entity.Activity, error)
	DeleteByEvent(ctx context.Context, senderID, receiverID string,
		activityType entity.ActivityType, postID string) error
	GetListByReceiverID(ctx context.Context, receiverID string) ([]entity.Activity, error)
	MarkAllReadByReceiverID(ctx context.Context, receiverID string) error
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, data *entity.Activity) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityRepository) GetByEvent(
	ctx context.Context, senderID, receiverID string,
	activityType entity.ActivityType, postID string,
) (*entity.Activity, error) {
	var result entity.Activity
	err := xcontext.DB(ctx).
		Where("sender_id=? AND receiver_id=? AND activity_type=? AND post_id=?",
			senderID, receiverID, activityType, postID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *activityRepository) DeleteByEvent(
	ctx context.Context, senderID, receiverID string,
	activityType entity.ActivityType, postID string,
) error {
	tx := xcontext.DB(ctx).
		Where("sender_id=? AND receiver_id=? AND activity_type=? AND post_id=?",
			senderID, receiverID, activityType, postID).
		Delete(&entity.Activity{})

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

func (r *activityRepository) GetListByReceiverID(
	ctx context.Context, receiverID string,
) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).
		Where("receiver_id=?", receiverID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) MarkAllReadByReceiverID(ctx context.Context, receiverID string) error {
	return xcontext.DB(ctx).
		Model(&entity.Activity{}).
		Where("receiver_id=? AND is_read=?", receiverID, false).
		Update("is_read", true).Error
}
