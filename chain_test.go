package fault

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChain_ReturnsNewInstance(t *testing.T) {
	original := New("E", "m")
	cause := stderrors.New("boom")

	chained := Chain(original, cause)

	require.NotSame(t, original, chained)
	require.Same(t, cause, chained.Cause().(error))
}

func TestChain_PreservesFields(t *testing.T) {
	ts := time.Date(2025, 8, 29, 21, 42, 0, 0, time.UTC)
	ctx := Context{"host": "db-1"}
	original := New("DatabaseError", "connection refused",
		WithCode("DB_CONN"),
		WithSeverity(SeverityError),
		WithTimestamp(ts),
		WithContext(ctx),
		WithCauseNote("legacy"),
	)

	chained := Chain(original, "cause")

	require.Equal(t, "DatabaseError", chained.ErrorType())
	require.Equal(t, "connection refused", chained.Message())
	require.Equal(t, "DB_CONN", chained.Code())
	require.Equal(t, SeverityError, chained.Severity())
	require.Equal(t, ts, chained.Timestamp())
	require.Equal(t, "legacy", chained.CauseNote())

	// Context travels by reference, not copy.
	ctx["attempt"] = 2
	require.Equal(t, 2, chained.Context().Get("attempt"))
}

func TestChain_OriginalUntouched(t *testing.T) {
	original := New("E", "m")
	_ = Chain(original, stderrors.New("boom"))

	require.Nil(t, original.Cause())
	require.Nil(t, original.Unwrap())
}

func TestChain_PreservesConcreteType(t *testing.T) {
	verr := NewValidation("email", "malformed address")
	chained := Chain(verr, stderrors.New("read failed"))

	// The compiler already guarantees *ValidationError; check the runtime
	// type through the interface as well.
	var iface Error = chained
	rebuilt, ok := iface.(*ValidationError)
	require.True(t, ok)
	require.Equal(t, "email", rebuilt.Field)
	require.Equal(t, TypeValidation, rebuilt.ErrorType())
}

func TestChain_PreservesMessageOverride(t *testing.T) {
	terr := NewTimeout("query stalled", 5*time.Second)
	require.Equal(t, "query stalled (limit 5s)", terr.Message())

	chained := Chain(terr, stderrors.New("deadline exceeded"))
	require.Equal(t, "query stalled (limit 5s)", chained.Message())
	require.Equal(t, "TimeoutError: query stalled (limit 5s)", chained.Error())
	require.Equal(t, 5*time.Second, chained.Limit)
}

func TestChain_AcceptsAnyCause(t *testing.T) {
	tests := []struct {
		name  string
		cause any
	}{
		{"nil", nil},
		{"string", "disk died"},
		{"map", map[string]any{"code": 500}},
		{"struct", struct{ N int }{N: 1}},
		{"plain error", stderrors.New("boom")},
		{"structured error", New("Inner", "inner failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := New("E", "m")
			var chained *Base
			require.NotPanics(t, func() {
				chained = Chain(original, tt.cause)
			})
			require.Equal(t, tt.cause, chained.Cause())
		})
	}
}

func TestChain_SelfReference(t *testing.T) {
	original := New("E", "m")

	var chained *Base
	require.NotPanics(t, func() {
		chained = Chain(original, original)
	})

	require.Same(t, original, chained.Cause().(*Base))
	require.Same(t, original, chained.Unwrap().(*Base))

	// The link terminates at the original, whose own link is unset, so
	// standard traversal stays finite.
	require.True(t, Is(chained, original))
}

func TestChain_NilCauseStored(t *testing.T) {
	chained := Chain(New("E", "m"), nil)
	require.Nil(t, chained.Cause())
	require.Nil(t, chained.Unwrap())
}

func TestChain_OverwritesPriorLink(t *testing.T) {
	first := stderrors.New("first")
	second := stderrors.New("second")

	a := Chain(New("E", "m"), first)
	b := Chain(a, second)

	// Each instance keeps exactly one link: its own last-set cause.
	require.Same(t, second, b.Cause().(error))
	require.Same(t, first, a.Cause().(error))
}

func TestChain_SequentialThousand(t *testing.T) {
	err := New("E", "m")

	current := err
	for i := 0; i < 1000; i++ {
		current = Chain(current, current)
	}

	require.Equal(t, "E", current.ErrorType())
	require.Equal(t, "m", current.Message())
	require.NotNil(t, current.Cause())

	// Walking back one link at a time reaches the root without recursion.
	steps := 0
	for walker := error(current); walker != nil; walker = stderrors.Unwrap(walker) {
		steps++
		require.LessOrEqual(t, steps, 1001)
	}
	require.Equal(t, 1001, steps)
}

func TestChain_RefreshesStack(t *testing.T) {
	original := New("E", "m")
	chained := Chain(original, "cause")

	require.NotEmpty(t, chained.Stack())
}

func TestChain_ManyCausesIndependentInstances(t *testing.T) {
	roots := make([]error, 3)
	chains := make([]*Base, 3)
	base := New("E", "m")
	for i := range roots {
		roots[i] = fmt.Errorf("root %d", i)
		chains[i] = Chain(base, roots[i])
	}

	for i := range chains {
		require.Same(t, roots[i], chains[i].Cause().(error))
	}
	require.Nil(t, base.Cause())
}

func TestChainAny(t *testing.T) {
	var iface Error = NewValidation("email", "malformed address")

	chained := ChainAny(iface, "root cause")

	rebuilt, ok := chained.(*ValidationError)
	require.True(t, ok)
	require.Equal(t, "email", rebuilt.Field)
	require.Equal(t, "root cause", rebuilt.Cause())
	require.Nil(t, iface.Cause())
}

func TestChainAny_Nil(t *testing.T) {
	require.Nil(t, ChainAny(nil, "cause"))
}

func TestChainAny_NilPointer(t *testing.T) {
	var nilBase *Base
	var iface Error = nilBase

	require.NotPanics(t, func() {
		require.Same(t, nilBase, ChainAny(iface, "cause").(*Base))
	})
}
