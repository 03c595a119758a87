package epea

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapf-matching-epea/internal/core"
)

func rows(pairs ...[2]int) core.OSFTable {
	table := make(core.OSFTable, 0, len(pairs))
	for _, p := range pairs {
		table = append(table, core.OSFRow{Directions: []core.Direction{core.Direction(p[0])}, DeltaF: p[1]})
	}
	return table
}

func TestOperatorFinderSingleAgentExactMatch(t *testing.T) {
	tables := []core.OSFTable{rows([2]int{int(core.East), 0}, [2]int{int(core.Wait), 1}, [2]int{int(core.West), 2})}

	f := NewOperatorFinder(0, tables)
	f.Find()

	require.Len(t, f.Tuples(), 1)
	require.Equal(t, 1, f.NextTargetValue())
}

func TestOperatorFinderTwoAgentsSumsToTarget(t *testing.T) {
	a := rows([2]int{int(core.East), 0}, [2]int{int(core.Wait), 1})
	b := rows([2]int{int(core.North), 0}, [2]int{int(core.Wait), 1})

	f := NewOperatorFinder(1, []core.OSFTable{a, b})
	f.Find()

	// Target 1 is reachable only as (East=0, Wait=1) or (Wait=1, North=0).
	require.Len(t, f.Tuples(), 2)
	for _, directions := range ExpandJointActions(f.Tuples()) {
		require.Len(t, directions, 2)
	}
}

func TestOperatorFinderNextTargetValueExceedsTarget(t *testing.T) {
	a := rows([2]int{int(core.East), 0}, [2]int{int(core.Wait), 3})
	f := NewOperatorFinder(0, []core.OSFTable{a})
	f.Find()

	require.Greater(t, f.NextTargetValue(), 0)
}

func TestOperatorFinderEmptyTableIsUnreachable(t *testing.T) {
	f := NewOperatorFinder(0, []core.OSFTable{{}})
	f.Find()

	require.Empty(t, f.Tuples())
	require.Equal(t, core.Unreachable, f.NextTargetValue())
}

func TestCartesianProductSizeIsProductOfBundleSizes(t *testing.T) {
	tuple := []Bundle{
		{core.North, core.East},
		{core.South},
	}
	out := cartesianProduct(tuple)
	require.Len(t, out, 2)
}
