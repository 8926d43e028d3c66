package domain

import (
	"context"
	"time"

	"github.com/strandsapp/backend/internal/domain/notification"
	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/internal/repository"
	"github.com/strandsapp/backend/pkg/dateutil"
	"github.com/strandsapp/backend/pkg/errorx"
	"github.com/strandsapp/backend/pkg/xcontext"
)

type ActivityDomain interface {
	GetList(context.Context, *model.GetActivitiesRequest) (*model.GetActivitiesResponse, error)
	MarkAllRead(context.Context, *model.MarkAllActivitiesReadRequest) (*model.MarkAllActivitiesReadResponse, error)
}

type activityDomain struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	presenter    *notification.Presenter
}

func NewActivityDomain(
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	presenter *notification.Presenter,
) *activityDomain {
	return &activityDomain{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		presenter:    presenter,
	}
}

// GetList reads straight through to the activity store; notifications are
// not cached.
func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetActivitiesRequest,
) (*model.GetActivitiesResponse, error) {
	receiverID := xcontext.RequestUserID(ctx)
	activities, err := d.activityRepo.GetListByReceiverID(ctx, receiverID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities of %s: %v", receiverID, err)
		return nil, errorx.Unknown
	}

	senderIDs := []string{}
	for i := range activities {
		senderIDs = append(senderIDs, activities[i].SenderID)
	}

	senders, err := d.userRepo.GetByIDs(ctx, senderIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity senders: %v", err)
		return nil, errorx.Unknown
	}

	senderMap := map[string]*entity.User{}
	for i := range senders {
		senderMap[senders[i].ID] = &senders[i]
	}

	now := time.Now()
	clientActivities := []model.Activity{}
	for i := range activities {
		sender := senderMap[activities[i].SenderID]
		rendered := d.presenter.Render(ctx, &activities[i], sender, now)

		timeAgo := ""
		if rendered != "" {
			timeAgo = dateutil.RelativeAge(activities[i].CreatedAt, now)
		}

		clientActivities = append(clientActivities,
			model.ConvertActivity(&activities[i], sender, rendered, timeAgo))
	}

	return &model.GetActivitiesResponse{Activities: clientActivities}, nil
}

func (d *activityDomain) MarkAllRead(
	ctx context.Context, req *model.MarkAllActivitiesReadRequest,
) (*model.MarkAllActivitiesReadResponse, error) {
	receiverID := xcontext.RequestUserID(ctx)
	if err := d.activityRepo.MarkAllReadByReceiverID(ctx, receiverID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark activities of %s as read: %v", receiverID, err)
		return nil, errorx.Unknown
	}

	return &model.MarkAllActivitiesReadResponse{Message: "Marked all activities as read"}, nil
}
