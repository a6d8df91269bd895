//go:build integration

package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lawmate/internal/directory"
	"lawmate/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *directory.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = directory.NewRedisCache(s.redis.Client)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestSetThenGet() {
	ctx := context.Background()
	s.cache.Set(ctx, "directory:lawyers", []byte(`[{"id":"1"}]`), time.Minute)

	value, ok := s.cache.Get(ctx, "directory:lawyers")
	s.Require().True(ok)
	s.JSONEq(`[{"id":"1"}]`, string(value))
}

func (s *RedisCacheSuite) TestMissReadsAsAbsent() {
	_, ok := s.cache.Get(context.Background(), "directory:nope")
	s.False(ok)
}

func (s *RedisCacheSuite) TestEntriesExpire() {
	ctx := context.Background()
	s.cache.Set(ctx, "directory:mokhtars", []byte(`[]`), 100*time.Millisecond)

	_, ok := s.cache.Get(ctx, "directory:mokhtars")
	s.Require().True(ok)

	time.Sleep(300 * time.Millisecond)

	_, ok = s.cache.Get(ctx, "directory:mokhtars")
	s.False(ok)
}
