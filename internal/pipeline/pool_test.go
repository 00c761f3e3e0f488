package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesChunksInOrder(t *testing.T) {
	const numChunks = 20
	plan := Plan{Table: "test", NumChunks: numChunks}

	build := func(k, n int) ([]byte, error) {
		require.Equal(t, numChunks, n)
		return []byte(fmt.Sprintf("chunk-%02d", k)), nil
	}

	var got []string
	sink := func(data []byte) error {
		got = append(got, string(data))
		return nil
	}

	require.NoError(t, Run(context.Background(), plan, 6, build, sink))
	require.Len(t, got, numChunks)
	for i, s := range got {
		require.Equal(t, fmt.Sprintf("chunk-%02d", i+1), s)
	}
}

func TestRunPropagatesBuilderError(t *testing.T) {
	plan := Plan{Table: "test", NumChunks: 5}
	wantErr := errors.New("boom")

	build := func(k, n int) ([]byte, error) {
		if k == 3 {
			return nil, wantErr
		}
		return []byte{byte(k)}, nil
	}

	err := Run(context.Background(), plan, 4, build, func([]byte) error { return nil })
	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
}

func TestRunPropagatesSinkError(t *testing.T) {
	plan := Plan{Table: "test", NumChunks: 3}
	wantErr := errors.New("disk full")

	build := func(k, n int) ([]byte, error) { return []byte{byte(k)}, nil }
	sink := func(data []byte) error {
		if data[0] == 2 {
			return wantErr
		}
		return nil
	}

	err := Run(context.Background(), plan, 2, build, sink)
	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
}

func TestNumChunksScalesWithRowCountAndAvgSize(t *testing.T) {
	require.Equal(t, 1, NumChunks("nation", 25))
	big := NumChunks("lineitem", 600_000_000)
	require.Greater(t, big, 1)
}

func TestPlanTableSkipsAutoChunkingWhenPartitionExplicit(t *testing.T) {
	p := PlanTable("lineitem", 600_000_000, 2, 4)
	require.Equal(t, 1, p.NumChunks)

	p2 := PlanTable("lineitem", 600_000_000, 1, 1)
	require.Greater(t, p2.NumChunks, 1)
}
