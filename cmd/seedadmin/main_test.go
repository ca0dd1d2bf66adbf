package main

import (
	"testing"
	"time"

	"licensing/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInput(t *testing.T) {
	input, err := seedInput(&config.SeedAdminConfig{
		Username:    "root",
		Email:       "admin@example.com",
		Password:    "Bootstrap123!",
		NationalID:  "MW-0001",
		DateOfBirth: "1980-01-02",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(1980, time.January, 2, 0, 0, 0, 0, time.UTC), input.DateOfBirth)
	assert.Equal(t, "root", input.Username)
}

func TestSeedInput_Invalid(t *testing.T) {
	_, err := seedInput(nil)
	require.Error(t, err)

	_, err = seedInput(&config.SeedAdminConfig{Email: "admin@example.com", Password: "x", DateOfBirth: "02/01/1980"})
	require.Error(t, err)
}
