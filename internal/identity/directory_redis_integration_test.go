//go:build integration

package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"credlens/internal/identity"
	platformredis "credlens/internal/platform/redis"
	id "credlens/pkg/domain"
	"credlens/pkg/testutil/containers"
)

type RedisDirectorySuite struct {
	suite.Suite
	redis     *containers.RedisContainer
	directory *identity.RedisDirectory
}

func TestRedisDirectorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisDirectorySuite))
}

func (s *RedisDirectorySuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.directory = identity.NewRedis(&platformredis.Client{Client: s.redis.Client})
}

func (s *RedisDirectorySuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisDirectorySuite) TestLookupUnenrolledUser() {
	_, err := s.directory.Lookup(context.Background(), id.NewUserID())
	s.ErrorIs(err, identity.ErrNoBVN)
}

func (s *RedisDirectorySuite) TestEnrollAndLookup() {
	ctx := context.Background()
	userID := id.NewUserID()

	s.Require().NoError(s.directory.Enroll(ctx, userID, id.BVN("22233344455")))

	bvn, err := s.directory.Lookup(ctx, userID)
	s.Require().NoError(err)
	s.Equal(id.BVN("22233344455"), bvn)
}

func (s *RedisDirectorySuite) TestEnrollReplaces() {
	ctx := context.Background()
	userID := id.NewUserID()

	s.Require().NoError(s.directory.Enroll(ctx, userID, id.BVN("22233344455")))
	s.Require().NoError(s.directory.Enroll(ctx, userID, id.BVN("99988877766")))

	bvn, err := s.directory.Lookup(ctx, userID)
	s.Require().NoError(err)
	s.Equal(id.BVN("99988877766"), bvn)
}

func (s *RedisDirectorySuite) TestUsersAreIsolated() {
	ctx := context.Background()
	first, second := id.NewUserID(), id.NewUserID()

	s.Require().NoError(s.directory.Enroll(ctx, first, id.BVN("22233344455")))

	_, err := s.directory.Lookup(ctx, second)
	s.ErrorIs(err, identity.ErrNoBVN)
}
