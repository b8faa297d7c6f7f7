package vars_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/var_ive_go/vars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGettable_GetRunsWrappedAction(t *testing.T) {
	ctx := context.Background()

	calls := 0
	g := vars.NewGettable(func(context.Context) (int, error) {
		calls++
		return 42, nil
	})

	v, err := g.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestGettable_GetPropagatesFailure(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("boom")
	g := vars.NewGettable(func(context.Context) (int, error) {
		return 0, boom
	})

	_, err := g.Get(ctx)
	require.ErrorIs(t, err, boom)
}

func TestMap_TransformsResult(t *testing.T) {
	ctx := context.Background()

	g := vars.Map(strconv.Itoa, vars.Pure(7))
	v, err := g.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestMap_FunctorLaws(t *testing.T) {
	ctx := context.Background()

	cell := 3
	g := vars.NewGettable(func(context.Context) (int, error) {
		return cell, nil
	})

	// identity
	mapped, err := vars.Map(func(x int) int { return x }, g).Get(ctx)
	require.NoError(t, err)
	plain, err := g.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, plain, mapped)

	// composition
	double := func(x int) int { return x * 2 }
	show := strconv.Itoa
	nested, err := vars.Map(show, vars.Map(double, g)).Get(ctx)
	require.NoError(t, err)
	fused, err := vars.Map(func(x int) string { return show(double(x)) }, g).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, fused, nested)
}

func TestPure_YieldsConstantWithoutEffects(t *testing.T) {
	ctx := context.Background()

	g := vars.Pure("constant")
	for i := 0; i < 3; i++ {
		v, err := g.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "constant", v)
	}
}

func TestApply_RunsFunctionActionFirst(t *testing.T) {
	ctx := context.Background()

	var order []string
	gf := vars.NewGettable(func(context.Context) (func(int) int, error) {
		order = append(order, "fn")
		return func(x int) int { return x + 1 }, nil
	})
	ga := vars.NewGettable(func(context.Context) (int, error) {
		order = append(order, "arg")
		return 41, nil
	})

	v, err := vars.Apply(gf, ga).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, []string{"fn", "arg"}, order)
}

func TestApply_FailFastSkipsArgumentAction(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("boom")
	gf := vars.NewGettable(func(context.Context) (func(int) int, error) {
		return nil, boom
	})
	argRan := false
	ga := vars.NewGettable(func(context.Context) (int, error) {
		argRan = true
		return 0, nil
	})

	_, err := vars.Apply(gf, ga).Get(ctx)
	require.ErrorIs(t, err, boom)
	assert.False(t, argRan, "argument action must not run after a failed function action")
}
