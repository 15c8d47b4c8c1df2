package database

import (
	"testing"

	"eventaggregator/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheConstants(t *testing.T) {
	assert.Equal(t, 0, GENERAL_CACHE_INDEX)
	assert.Equal(t, 1, SESSION_CACHE_INDEX)
	assert.Equal(t, 2, USER_CACHE_INDEX)
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DatabaseHost:     "localhost",
		DatabasePort:     5432,
		DatabaseUser:     "events",
		DatabasePassword: "secret",
		DatabaseName:     "eventaggregator",
	})

	assert.Equal(
		t,
		"host=localhost port=5432 user=events password=secret dbname=eventaggregator sslmode=disable TimeZone=UTC",
		dsn,
	)
}

func TestInitializeCacheDB_DisabledWithoutAddress(t *testing.T) {
	db := &DB{log: logger.New("test")}

	err := db.initializeCacheDB(config.Config{})
	require.NoError(t, err)
	assert.Nil(t, db.Cache.User)
}

func TestInitializePostgresDB_RequiresHost(t *testing.T) {
	db := &DB{log: logger.New("test")}

	err := db.initializePostgresDB(nil, config.Config{DatabaseName: "x", DatabaseUser: "y"})
	assert.Error(t, err)
	assert.Nil(t, db.SQL)
}

func TestCacheBuilder_KeyWithHash(t *testing.T) {
	cb := NewCacheBuilder(nil, "alice").WithHash("user_exists")
	assert.Equal(t, "user_exists:alice", cb.Key())
}

func TestCacheBuilder_SetRequiresValue(t *testing.T) {
	err := NewCacheBuilder(nil, "alice").Set()
	assert.EqualError(t, err, "value is required")
}
