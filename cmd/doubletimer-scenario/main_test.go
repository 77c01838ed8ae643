package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
)

func TestSelectScenarios(t *testing.T) {
	all := []*loader.Scenario{
		{ID: "SC-SW-001"},
		{ID: "SC-TIMER-002"},
		{ID: "SC-TIMER-003"},
	}

	got, err := selectScenarios(all, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = selectScenarios(all, "SC-TIMER-*")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SC-TIMER-002", got[0].ID)

	got, err = selectScenarios(all, "SC-NONE-*")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = selectScenarios(all, "[")
	assert.Error(t, err)
}

func TestBundledScenariosLoad(t *testing.T) {
	scenarios, err := loader.LoadDirectory("../../internal/scenario/testdata")
	require.NoError(t, err)
	assert.NotEmpty(t, scenarios)
}
