package authenticator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/strandsapp/backend/config"
	"github.com/strandsapp/backend/internal/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_TokenEngine_GenerateAndVerify(t *testing.T) {
	engine := NewTokenEngine[model.AccessToken](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Username: "alice"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
	require.Equal(t, "alice", obj.Username)

	// A token signed with another secret is rejected.
	otherEngine := NewTokenEngine[model.AccessToken](config.TokenConfigs{
		Secret:     "other-secret",
		Expiration: time.Minute,
	})
	_, err = otherEngine.Verify(token)
	require.Error(t, err)

	// An expired token is rejected.
	expiredEngine := NewTokenEngine[model.AccessToken](config.TokenConfigs{
		Secret:     "secret",
		Expiration: -time.Minute,
	})
	expired, err := expiredEngine.Generate("user1", model.AccessToken{ID: "user1"})
	require.NoError(t, err)
	_, err = engine.Verify(expired)
	require.Error(t, err)
}

func Test_TokenEngine_ConcurrentGenerate(t *testing.T) {
	engine := NewTokenEngine[model.AccessToken](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	// Token ids come from a counter shared across goroutines; concurrent
	// generation must never hand out the same id twice.
	tokens := make([]string, 100)
	eg := errgroup.Group{}
	for i := range tokens {
		i := i
		eg.Go(func() error {
			token, err := engine.Generate("user1", model.AccessToken{ID: "user1"})
			tokens[i] = token
			return err
		})
	}
	require.NoError(t, eg.Wait())

	ids := map[string]struct{}{}
	for _, token := range tokens {
		var claims standardClaims[model.AccessToken]
		_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)
		ids[claims.ID] = struct{}{}
	}
	require.Len(t, ids, len(tokens))
}
