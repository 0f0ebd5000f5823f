package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/order-tracking/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host:     "db",
		Port:     5433,
		User:     "tracker",
		Password: "secret",
		DBName:   "orders",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5433 user=tracker password=secret dbname=orders sslmode=disable", dsn)
}
