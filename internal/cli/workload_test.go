package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestReadWorkload(t *testing.T) {
	processes, err := readWorkload(strings.NewReader("1,8,0,1\n2,4,1,2\n"))
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: 1, Burst: 8, Arrival: 0, Priority: 1},
		{ID: 2, Burst: 4, Arrival: 1, Priority: 2},
	}, processes)
}

func TestReadWorkloadPriorityColumnIsOptional(t *testing.T) {
	processes, err := readWorkload(strings.NewReader("3,2,5\n"))
	require.NoError(t, err)

	assert.Equal(t, []core.Process{{ID: 3, Burst: 2, Arrival: 5}}, processes)
}

func TestReadWorkloadRejectsShortRows(t *testing.T) {
	_, err := readWorkload(strings.NewReader("1,8\n"))
	require.ErrorIs(t, err, ErrInvalidWorkload)
}

func TestReadWorkloadRejectsNonNumericCells(t *testing.T) {
	_, err := readWorkload(strings.NewReader("1,eight,0\n"))
	require.ErrorIs(t, err, ErrInvalidWorkload)
}

func TestLoadWorkloadFromFile(t *testing.T) {
	processes, err := LoadWorkload("testdata/workload.csv")
	require.NoError(t, err)

	require.Len(t, processes, 10)
	assert.Equal(t, core.Process{ID: 1, Burst: 8, Arrival: 0, Priority: 1}, processes[0])
	assert.Equal(t, core.Process{ID: 10, Burst: 4, Arrival: 9, Priority: 1}, processes[9])
	require.NoError(t, core.Validate(processes))
}

func TestLoadWorkloadMissingFile(t *testing.T) {
	_, err := LoadWorkload("testdata/nope.csv")
	require.Error(t, err)
}
