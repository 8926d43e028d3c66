package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync"
	"github.com/strandsapp/backend/internal/entity"
	"github.com/strandsapp/backend/pkg/dateutil"
	"github.com/strandsapp/backend/pkg/xcontext"
)

// Presenter turns Activity records into one-line notification summaries.
// It holds no request state; the only mutable field tracks which unknown
// activity types have already been logged.
type Presenter struct {
	unknownTypes *xsync.MapOf[string, struct{}]
}

func NewPresenter() *Presenter {
	return &Presenter{unknownTypes: xsync.NewMapOf[struct{}]()}
}

// Render combines the sender identity, a type-specific phrase, the quoted
// activity message where the type refers to a post, and the relative age
// label. An unrecognized activity type renders an empty string; it is
// logged the first time it is seen and silently skipped afterwards.
func (p *Presenter) Render(
	ctx context.Context, activity *entity.Activity, sender *entity.User, now time.Time,
) string {
	username := ""
	if sender != nil {
		username = sender.Username
	}

	age := dateutil.RelativeAge(activity.CreatedAt, now)

	switch activity.ActivityType {
	case entity.Follows:
		return fmt.Sprintf("%s started following you. %s", username, age)
	case entity.Likes:
		return fmt.Sprintf("%s liked your post: %q. %s", username, activity.ActivityMessage, age)
	case entity.Replies:
		return fmt.Sprintf("%s commented on your post: %q. %s", username, activity.ActivityMessage, age)
	case entity.Mentions:
		return fmt.Sprintf("%s mentioned you on their post: %q. %s", username, activity.ActivityMessage, age)
	case entity.Reposts:
		return fmt.Sprintf("%s reposted your post: %q. %s", username, activity.ActivityMessage, age)
	default:
		if _, seen := p.unknownTypes.LoadOrStore(string(activity.ActivityType), struct{}{}); !seen {
			xcontext.Logger(ctx).Warnf("Unknown activity type %s", activity.ActivityType)
		}
		return ""
	}
}
