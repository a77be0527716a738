package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bmssp/graph"
)

func TestBuilder_FreezeSimple(t *testing.T) {
	g, err := graph.NewBuilder(3).
		AddEdge(0, 1, 1.5).
		AddEdge(1, 2, 2.5).
		Freeze()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.N() != 3 {
		t.Fatalf("expected N()=3, got %d", g.N())
	}

	var got []graph.Edge
	for e := range g.Neighbors(0) {
		got = append(got, e)
	}
	if len(got) != 1 || got[0].Dest != 1 || got[0].Weight != 1.5 {
		t.Fatalf("unexpected neighbors of 0: %+v", got)
	}
}

func TestBuilder_NegativeVertices(t *testing.T) {
	_, err := graph.NewBuilder(-1).Freeze()
	if !errors.Is(err, graph.ErrNegativeVertices) {
		t.Fatalf("expected ErrNegativeVertices, got %v", err)
	}
}

func TestBuilder_VertexOutOfRange(t *testing.T) {
	_, err := graph.NewBuilder(2).AddEdge(0, 5, 1).Freeze()
	if !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Fatalf("expected ErrVertexOutOfRange, got %v", err)
	}
}

func TestBuilder_NegativeWeight(t *testing.T) {
	_, err := graph.NewBuilder(2).AddEdge(0, 1, -1).Freeze()
	if !errors.Is(err, graph.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestBuilder_SelfLoopAndParallelEdgesTolerated(t *testing.T) {
	g, err := graph.NewBuilder(2).
		AddEdge(0, 0, 5).
		AddEdge(0, 1, 1).
		AddEdge(0, 1, 3).
		Freeze()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	for range g.Neighbors(0) {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 out-edges from 0, got %d", count)
	}
}

func TestBuilder_FirstErrorLatched(t *testing.T) {
	_, err := graph.NewBuilder(2).
		AddEdge(0, 9, 1).  // out of range, latched
		AddEdge(0, 1, -3). // would also be an error, but ignored
		Freeze()
	if !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Fatalf("expected the first error (ErrVertexOutOfRange) to win, got %v", err)
	}
}
