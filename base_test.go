package fault

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBase_Error(t *testing.T) {
	err := New("E", "m")
	require.Equal(t, "E: m", err.Error())
}

func TestBase_Error_WithContext(t *testing.T) {
	err := New("E", "m", WithContext(Context{"x": 1}))
	require.Equal(t, `E: m {"x":1}`, err.Error())
}

func TestBase_Error_EmptyContextOmitted(t *testing.T) {
	err := New("E", "m", WithContext(Context{}))
	require.Equal(t, "E: m", err.Error())
}

func TestBase_Error_UnserializableContextOmitted(t *testing.T) {
	err := New("E", "m", WithContext(Context{"fn": func() {}}))
	require.NotPanics(t, func() {
		require.Equal(t, "E: m", err.Error())
	})
}

func TestBase_Error_CyclicContextOmitted(t *testing.T) {
	ctx := Context{}
	ctx["self"] = ctx
	err := New("E", "m", WithContext(ctx))

	require.NotPanics(t, func() {
		require.Equal(t, "E: m", err.Error())
	})
}

func TestBase_Error_ExcludesCauseAndStack(t *testing.T) {
	cause := stderrors.New("root failure detail")
	err := Chain(New("E", "m"), cause)

	require.Equal(t, "E: m", err.Error())
	require.NotContains(t, err.Error(), "root failure detail")
}

func TestBase_Error_EmptyTagAndMessage(t *testing.T) {
	err := New("", "")
	require.Equal(t, ": ", err.Error())
}

func TestBase_Accessors(t *testing.T) {
	ts := time.Date(2025, 8, 29, 21, 42, 0, 0, time.UTC)
	ctx := Context{"a": 1}

	err := New("DatabaseError", "connection refused",
		WithCode("DB_CONN"),
		WithSeverity(SeverityError),
		WithTimestamp(ts),
		WithContext(ctx),
		WithCauseNote("switch rebooted"),
	)

	require.Equal(t, "DatabaseError", err.ErrorType())
	require.Equal(t, "connection refused", err.Message())
	require.Equal(t, "DB_CONN", err.Code())
	require.Equal(t, SeverityError, err.Severity())
	require.Equal(t, ts, err.Timestamp())
	require.Equal(t, ctx, err.Context())
	require.Equal(t, "switch rebooted", err.CauseNote())
	require.Nil(t, err.Cause())
	require.Nil(t, err.Unwrap())
}

func TestBase_UnsetFieldsStayUnset(t *testing.T) {
	err := New("E", "m")

	require.Equal(t, "", err.Code())
	require.Equal(t, Severity(""), err.Severity())
	require.True(t, err.Timestamp().IsZero())
	require.Nil(t, err.Context())
	require.Equal(t, "", err.CauseNote())
	require.Nil(t, err.Cause())
}

func TestBase_StoresInvalidSeverityVerbatim(t *testing.T) {
	err := New("E", "m", WithSeverity(Severity("URGENT")))
	require.Equal(t, Severity("URGENT"), err.Severity())
	require.False(t, err.Severity().IsValid())
}

func TestBase_StoresTimestampVerbatim(t *testing.T) {
	// A pre-epoch timestamp is odd but legal; nothing rejects it.
	ts := time.Date(1931, 4, 14, 0, 0, 0, 0, time.UTC)
	err := New("E", "m", WithTimestamp(ts))
	require.Equal(t, ts, err.Timestamp())
}

func TestBase_SetContext_ReplacesWholesale(t *testing.T) {
	first := Context{"a": 1, "b": 2}
	second := Context{"c": 3}

	err := New("E", "m", WithContext(first))
	err.SetContext(second)

	require.Equal(t, second, err.Context())
	require.NotContains(t, err.Context(), "a")
}

func TestBase_SetContext_NilClears(t *testing.T) {
	err := New("E", "m", WithContext(Context{"a": 1}))
	err.SetContext(nil)
	require.Nil(t, err.Context())
}

func TestBase_Unwrap(t *testing.T) {
	t.Run("error cause", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Chain(New("E", "m"), cause)
		require.Same(t, cause, err.Unwrap())
	})

	t.Run("non-error cause", func(t *testing.T) {
		err := Chain(New("E", "m"), "just a string")
		require.Nil(t, err.Unwrap())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := Chain(New("E", "m"), nil)
		require.Nil(t, err.Unwrap())
	})
}

func TestBase_Stack(t *testing.T) {
	err := New("E", "m")
	require.NotEmpty(t, err.Stack())
	require.Contains(t, err.Stack(), ".go")
	require.NotNil(t, err.StackTrace())
}

func TestBase_Stack_ZeroValueDegrades(t *testing.T) {
	var err Base
	require.Equal(t, "", err.Stack())
	require.Nil(t, err.StackTrace())
}

func TestBase_Format(t *testing.T) {
	err := New("E", "m", WithContext(Context{"x": 1}))

	require.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	require.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	require.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	plus := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(plus, err.Error()))
	require.Greater(t, len(plus), len(err.Error()))
}
