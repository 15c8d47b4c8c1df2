package database

import (
	"context"
	"fmt"

	"eventaggregator/config"

	"github.com/valkey-io/valkey-go"
)

// Valkey database indexes. Only the user index is in use; the rest are
// reserved so existing deployments keep their numbering.
const (
	GENERAL_CACHE_INDEX = iota
	SESSION_CACHE_INDEX
	USER_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		log.Warn("cache address or port is empty, user cache disabled")
		return nil
	}

	log.Info("initializing cache database", "address", address, "port", port)

	client, err := valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    USER_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create user valkey client", err)
	}

	s.Cache.User = client

	return nil
}

// FlushAllCaches clears the user cache database. Used by the seed command.
func (s *DB) FlushAllCaches(ctx context.Context) error {
	if s.Cache.User == nil {
		return nil
	}

	cmd := s.Cache.User.B().Flushdb().Build()
	if err := s.Cache.User.Do(ctx, cmd).Error(); err != nil {
		return s.log.Function("FlushAllCaches").Err("failed to flush user cache", err)
	}
	return nil
}
