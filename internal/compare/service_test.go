package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/bharathravi-in/RFP-sub004/internal/diff"
)

func newTestService() *Service {
	return NewService(noop.NewTracerProvider().Tracer("test"), diff.Options{})
}

func TestService_Compare(t *testing.T) {
	svc := newTestService()

	result := svc.Compare(context.Background(), Request{
		TextA:  "a\nold\nc",
		TextB:  "a\nnew\nc",
		LabelA: "Draft 3",
		LabelB: "Draft 4",
	})

	require.NotEmpty(t, result.ID)
	require.Equal(t, "Draft 3", result.LabelA)
	require.Equal(t, "Draft 4", result.LabelB)
	require.Len(t, result.Lines, 3)
	require.Equal(t, diff.Stats{Modified: 1, Unchanged: 2}, result.Stats)
}

func TestService_Compare_Memoized(t *testing.T) {
	svc := newTestService()
	req := Request{TextA: "a\nb", TextB: "a\nc"}

	first := svc.Compare(context.Background(), req)
	second := svc.Compare(context.Background(), req)

	require.Equal(t, first.ID, second.ID, "memoized result keeps its correlation ID")
	require.Equal(t, first.Lines, second.Lines)
	require.Equal(t, first.Stats, second.Stats)
}

func TestService_Compare_LabelsDoNotAffectCacheKey(t *testing.T) {
	svc := newTestService()

	first := svc.Compare(context.Background(), Request{TextA: "x", TextB: "y", LabelA: "v1", LabelB: "v2"})
	second := svc.Compare(context.Background(), Request{TextA: "x", TextB: "y", LabelA: "v7", LabelB: "v8"})

	require.Equal(t, first.ID, second.ID, "same texts must hit the cache regardless of labels")
	require.Equal(t, "v7", second.LabelA, "labels follow the request, not the cache")
	require.Equal(t, "v8", second.LabelB)
}

func TestService_Compare_DifferentInputsDifferentResults(t *testing.T) {
	svc := newTestService()

	first := svc.Compare(context.Background(), Request{TextA: "a", TextB: "b"})
	second := svc.Compare(context.Background(), Request{TextA: "a", TextB: "c"})

	require.NotEqual(t, first.ID, second.ID)
}

func TestService_Invalidate(t *testing.T) {
	svc := newTestService()
	req := Request{TextA: "a", TextB: "b"}

	first := svc.Compare(context.Background(), req)
	require.NoError(t, svc.Invalidate(context.Background()))
	second := svc.Compare(context.Background(), req)

	require.NotEqual(t, first.ID, second.ID, "invalidation forces recompute")
}

func TestCacheKey_BoundaryShift(t *testing.T) {
	// The pair ("ab","c") must never collide with ("a","bc").
	require.NotEqual(t, cacheKey("ab", "c"), cacheKey("a", "bc"))
	require.NotEqual(t, cacheKey("", "x"), cacheKey("x", ""))
	require.Equal(t, cacheKey("a", "b"), cacheKey("a", "b"))
}

func TestService_Compare_EmptyInputs(t *testing.T) {
	svc := newTestService()

	result := svc.Compare(context.Background(), Request{})
	require.Len(t, result.Lines, 1)
	require.Equal(t, diff.LineUnchanged, result.Lines[0].Kind)
	require.Equal(t, diff.Stats{Unchanged: 1}, result.Stats)
}
