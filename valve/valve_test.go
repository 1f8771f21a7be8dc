package valve_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timebound/core"
	"github.com/katalvlaran/timebound/distance"
	"github.com/katalvlaran/timebound/partition"
	"github.com/katalvlaran/timebound/search"
	"github.com/katalvlaran/timebound/valve"
)

var strategies = []search.Pruning{search.MemoAndBound, search.MemoOnly, search.BoundOnly, search.NoPruning}

func mustNetwork(t testing.TB, nodes []core.Node) *core.Network {
	t.Helper()
	net, err := core.NewNetwork(nodes)
	require.NoError(t, err)

	return net
}

func chain(t testing.TB) *core.Network {
	return mustNetwork(t, []core.Node{
		{ID: "AA", Links: []string{"BB"}},
		{ID: "BB", Rate: 13, Links: []string{"AA", "CC"}},
		{ID: "CC", Rate: 2, Links: []string{"BB"}},
	})
}

// sample is the ten-valve cave from the day 16 example.
func sample(t testing.TB) *core.Network {
	return mustNetwork(t, []core.Node{
		{ID: "AA", Rate: 0, Links: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Links: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Links: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Links: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Links: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Links: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Links: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Links: []string{"GG"}},
		{ID: "II", Rate: 0, Links: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Links: []string{"II"}},
	})
}

// randomCave builds an undirected cave of n nodes with random rates; node 0 is "AA".
func randomCave(t testing.TB, rng *rand.Rand, n int) *core.Network {
	t.Helper()
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i].ID = fmt.Sprintf("N%d", i)
		if rng.Intn(3) > 0 {
			nodes[i].Rate = 1 + rng.Intn(25)
		}
	}
	nodes[0].ID = "AA"
	link := func(a, b int) {
		nodes[a].Links = append(nodes[a].Links, nodes[b].ID)
		nodes[b].Links = append(nodes[b].Links, nodes[a].ID)
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for k := 0; k < n/2; k++ {
		if a, b := rng.Intn(n), rng.Intn(n); a != b {
			link(a, b)
		}
	}

	return mustNetwork(t, nodes)
}

func TestSolve_Chain(t *testing.T) {
	for _, pr := range strategies {
		t.Run(pr.String(), func(t *testing.T) {
			res, err := valve.Solve(chain(t), valve.WithMinutes(6), valve.WithPruning(pr))
			require.NoError(t, err)
			// BB opened with 4 minutes left (52), CC with 2 left (4).
			assert.Equal(t, 56, res.Released)
		})
	}
}

func TestSolve_Sample(t *testing.T) {
	res, err := valve.Solve(sample(t))
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Released)
	assert.Positive(t, res.Stats.Expanded)
	assert.Positive(t, res.Stats.CacheHits+res.Stats.Pruned)
}

func TestSolvePair_Sample(t *testing.T) {
	res, err := valve.SolvePair(context.Background(), sample(t), valve.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 1707, res.Released)
	assert.Equal(t, 64, res.Splits)

	// The winning split uses every eligible node exactly once.
	all := append(append([]string{}, res.First...), res.Second...)
	assert.ElementsMatch(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, all)
	assert.Positive(t, res.Stats.Expanded)
}

func TestPlanner_SolveSubset(t *testing.T) {
	pl, err := valve.NewPlanner(sample(t))
	require.NoError(t, err)

	full, err := pl.SolveSubset(pl.Eligible(), 30)
	require.NoError(t, err)
	assert.Equal(t, 1651, full.Released)

	res, err := pl.Solve()
	require.NoError(t, err)
	assert.Equal(t, full, res)

	none, err := pl.SolveSubset(0, 30)
	require.NoError(t, err)
	assert.Zero(t, none.Released)
}

func TestSolve_Boundaries(t *testing.T) {
	res, err := valve.Solve(sample(t), valve.WithMinutes(0))
	require.NoError(t, err)
	assert.Zero(t, res.Released)

	// One minute is only enough to open a valve that yields nothing afterwards.
	res, err = valve.Solve(chain(t), valve.WithMinutes(2))
	require.NoError(t, err)
	assert.Zero(t, res.Released)

	lone := mustNetwork(t, []core.Node{{ID: "AA"}})
	res, err = valve.Solve(lone)
	require.NoError(t, err)
	assert.Zero(t, res.Released)

	pair, err := valve.SolvePair(context.Background(), lone)
	require.NoError(t, err)
	assert.Zero(t, pair.Released)
	assert.Equal(t, 1, pair.Splits)
}

func TestSolve_StartWithRate(t *testing.T) {
	// Opening the start node costs one minute and no travel.
	net := mustNetwork(t, []core.Node{{ID: "AA", Rate: 5}})
	res, err := valve.Solve(net, valve.WithMinutes(4))
	require.NoError(t, err)
	assert.Equal(t, 15, res.Released)
}

func TestSolve_UnreachableNodeIgnored(t *testing.T) {
	net := mustNetwork(t, []core.Node{
		{ID: "AA", Links: []string{"BB"}},
		{ID: "BB", Rate: 3},
		{ID: "ZZ", Rate: 100},
	})
	res, err := valve.Solve(net, valve.WithMinutes(5))
	require.NoError(t, err)
	assert.Equal(t, 9, res.Released)
}

func TestSolve_Errors(t *testing.T) {
	_, err := valve.Solve(nil)
	assert.ErrorIs(t, err, valve.ErrNilNetwork)

	net := chain(t)
	_, err = valve.Solve(net, valve.WithStart("QQ"))
	assert.ErrorIs(t, err, valve.ErrStartNotFound)

	for name, opt := range map[string]valve.Option{
		"start":        valve.WithStart(""),
		"minutes":      valve.WithMinutes(-1),
		"pair minutes": valve.WithPairMinutes(-3),
		"huge minutes": valve.WithMinutes(math.MaxInt32 + 1),
		"workers":      valve.WithWorkers(0),
		"pruning":      valve.WithPruning(search.Pruning(9)),
	} {
		_, err = valve.Solve(net, opt)
		assert.ErrorIs(t, err, valve.ErrOptionViolation, name)
	}

	_, err = valve.Solve(net, valve.WithDistanceMethod(distance.Method(7)))
	assert.ErrorIs(t, err, distance.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = valve.SolvePair(ctx, sample(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolvePair_TooManyNodes(t *testing.T) {
	nodes := make([]core.Node, partition.MaxElements+1)
	for i := range nodes {
		nodes[i] = core.Node{ID: fmt.Sprintf("N%02d", i), Rate: 1}
	}
	nodes[0].ID = "AA"
	_, err := valve.SolvePair(context.Background(), mustNetwork(t, nodes))
	assert.ErrorIs(t, err, partition.ErrTooManyElements)
}

func TestSolve_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for i := 0; i < 25; i++ {
		net := randomCave(t, rng, 4+rng.Intn(5))
		minutes := 1 + rng.Intn(14)

		want, err := valve.Solve(net, valve.WithMinutes(minutes), valve.WithPruning(search.NoPruning))
		require.NoError(t, err)
		for _, pr := range strategies[:3] {
			got, err := valve.Solve(net, valve.WithMinutes(minutes), valve.WithPruning(pr),
				valve.WithDistanceMethod(distance.BreadthFirst))
			require.NoError(t, err)
			assert.Equal(t, want.Released, got.Released, "case %d, %v", i, pr)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := valve.Solve(sample(t))
	require.NoError(t, err)
	b, err := valve.Solve(sample(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	pa, err := valve.SolvePair(context.Background(), sample(t), valve.WithWorkers(1))
	require.NoError(t, err)
	pb, err := valve.SolvePair(context.Background(), sample(t), valve.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

// optimum explores every action sequence below s.
func optimum(p *valve.Problem, s valve.State) int {
	best := p.Idle(s)
	for _, c := range p.Successors(s, nil) {
		best = max(best, optimum(p, c))
	}

	return best
}

func TestProblem_BoundIsAdmissible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		net := randomCave(t, rng, 2+rng.Intn(3))
		dist, err := distance.AllPairs(net)
		require.NoError(t, err)
		allowed := core.Mask(rng.Uint64())
		p := valve.NewProblem(net, dist, allowed)

		var walk func(s valve.State)
		walk = func(s valve.State) {
			assert.GreaterOrEqual(t, p.Bound(s), optimum(p, s), "case %d state %+v", i, s)
			for _, c := range p.Successors(s, nil) {
				walk(c)
			}
		}
		walk(p.Root(0, 1+rng.Intn(6)))
	}
}

func TestProblem_SuccessorsRespectAllowed(t *testing.T) {
	net := sample(t)
	dist, err := distance.AllPairs(net)
	require.NoError(t, err)

	// Ranks follow Eligible(): BB, CC, DD, EE, HH, JJ.
	p := valve.NewProblem(net, dist, core.Bit(2)|core.Bit(5))
	start, _ := net.Index("AA")
	children := p.Successors(p.Root(start, 30), nil)
	require.Len(t, children, 2)

	dd, _ := net.Index("DD")
	jj, _ := net.Index("JJ")
	assert.Equal(t, valve.State{Remaining: 28, At: dd, Open: core.Bit(2), Rate: 20}, children[0])
	assert.Equal(t, valve.State{Remaining: 27, At: jj, Open: core.Bit(5), Rate: 21}, children[1])

	// Key ignores the accumulators.
	c := children[0]
	c.Released, c.Rate = 99, 1
	assert.Equal(t, p.Key(children[0]), p.Key(c))
}
