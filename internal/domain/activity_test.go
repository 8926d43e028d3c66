package domain

import (
	"testing"
	"time"

	"github.com/strandsapp/backend/internal/domain/notification"
	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/internal/repository"
	"github.com/strandsapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_activityDomain_FullScenario(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	activityRepo := repository.NewActivityRepository()
	activityDomain := &activityDomain{
		activityRepo: activityRepo,
		userRepo:     repository.NewUserRepository(),
		presenter:    notification.NewPresenter(),
	}

	// No activities yet.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := activityDomain.GetList(ctxUser2, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Activities)

	err = activityRepo.Create(ctx, &entity.Activity{
		ID:            "activity1",
		SenderID:      testutil.User1.ID,
		ReceiverID:    testutil.User2.ID,
		ActivityType:  entity.Follows,
		ActivityTitle: "Followed you",
	})
	require.NoError(t, err)

	err = activityRepo.Create(ctx, &entity.Activity{
		ID:              "activity2",
		SenderID:        testutil.User3.ID,
		ReceiverID:      testutil.User2.ID,
		ActivityType:    entity.Likes,
		ActivityTitle:   "Liked your post",
		ActivityMessage: "good morning",
		PostID:          "post1",
	})
	require.NoError(t, err)

	resp, err = activityDomain.GetList(ctxUser2, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)

	byType := map[string]model.Activity{}
	for _, activity := range resp.Activities {
		byType[activity.ActivityType] = activity
	}

	follows := byType[string(entity.Follows)]
	require.Equal(t, testutil.User1.Username, follows.Username)
	require.Equal(t, "alice started following you. just now", follows.Rendered)
	require.Equal(t, "just now", follows.TimeAgo)
	require.False(t, follows.IsRead)

	likes := byType[string(entity.Likes)]
	require.Equal(t, testutil.User3.Username, likes.Username)
	require.Equal(t, `carol liked your post: "good morning". just now`, likes.Rendered)
	require.Equal(t, "post1", likes.PostID)

	// Mark everything read.
	markResp, err := activityDomain.MarkAllRead(ctxUser2, &model.MarkAllActivitiesReadRequest{})
	require.NoError(t, err)
	require.Equal(t, "Marked all activities as read", markResp.Message)

	resp, err = activityDomain.GetList(ctxUser2, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	for _, activity := range resp.Activities {
		require.True(t, activity.IsRead)
	}
}

func Test_activityDomain_GetList_UnknownType(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	activityRepo := repository.NewActivityRepository()
	activityDomain := &activityDomain{
		activityRepo: activityRepo,
		userRepo:     repository.NewUserRepository(),
		presenter:    notification.NewPresenter(),
	}

	err := activityRepo.Create(ctx, &entity.Activity{
		ID:           "activity1",
		SenderID:     testutil.User1.ID,
		ReceiverID:   testutil.User2.ID,
		ActivityType: entity.ActivityType("pokes"),
	})
	require.NoError(t, err)

	// Unknown types are returned with empty rendered and age fields rather
	// than failing the whole listing.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := activityDomain.GetList(ctxUser2, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	require.Empty(t, resp.Activities[0].Rendered)
	require.Empty(t, resp.Activities[0].TimeAgo)
	require.Equal(t, "pokes", resp.Activities[0].ActivityType)
}

func Test_activityDomain_GetList_Ordering(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	activityRepo := repository.NewActivityRepository()
	activityDomain := &activityDomain{
		activityRepo: activityRepo,
		userRepo:     repository.NewUserRepository(),
		presenter:    notification.NewPresenter(),
	}

	old := time.Now().Add(-2 * time.Hour)
	err := activityRepo.Create(ctx, &entity.Activity{
		ID:            "old-activity",
		CreatedAt:     old,
		SenderID:      testutil.User1.ID,
		ReceiverID:    testutil.User2.ID,
		ActivityType:  entity.Follows,
		ActivityTitle: "Followed you",
	})
	require.NoError(t, err)

	err = activityRepo.Create(ctx, &entity.Activity{
		ID:              "new-activity",
		SenderID:        testutil.User3.ID,
		ReceiverID:      testutil.User2.ID,
		ActivityType:    entity.Reposts,
		ActivityMessage: "hello",
		PostID:          "post1",
	})
	require.NoError(t, err)

	// Newest first.
	ctxUser2 := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := activityDomain.GetList(ctxUser2, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)
	require.Equal(t, string(entity.Reposts), resp.Activities[0].ActivityType)
	require.Equal(t, string(entity.Follows), resp.Activities[1].ActivityType)
	require.Equal(t, "2 hours ago", resp.Activities[1].TimeAgo)
}
