package model

import (
	"io"

	"github.com/awalterschulze/gographviz"
)

// States of the completion event.
const (
	Unsignaled = "Unsignaled"
	Signaled   = "Signaled"
)

// GraphvizDot is the state machine of the completion event as a graphviz dot
// graph.
type GraphvizDot struct {
	Graph *gographviz.Escape
}

// NewGraphvizDot creates the dot graph of the completion event.
func NewGraphvizDot() (*GraphvizDot, error) {
	dot := &GraphvizDot{Graph: gographviz.NewEscape()}
	if err := dot.Graph.SetDir(true); err != nil {
		return nil, err
	}
	if err := dot.Graph.SetName("event"); err != nil {
		return nil, err
	}

	nodes := []struct {
		name  string
		attrs map[string]string
	}{
		{"start", map[string]string{"shape": "point"}},
		{Unsignaled, map[string]string{"shape": "ellipse"}},
		{Signaled, map[string]string{"shape": "doublecircle"}},
	}
	for _, n := range nodes {
		if err := dot.Graph.AddNode(dot.Graph.Name, n.name, n.attrs); err != nil {
			return nil, err
		}
	}

	edges := []struct {
		src, dst, label string
	}{
		{"start", Unsignaled, ""},
		{Unsignaled, Signaled, "Set (" + AddFn + ")"},
		{Signaled, Unsignaled, "Wait (" + MainFn + ")"},
	}
	for _, e := range edges {
		var attrs map[string]string
		if e.label != "" {
			attrs = map[string]string{"label": e.label}
		}
		if err := dot.Graph.AddEdge(e.src, e.dst, true, attrs); err != nil {
			return nil, err
		}
	}
	return dot, nil
}

// WriteTo implements io.WriterTo interface.
func (dot *GraphvizDot) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(dot.Graph.String()))
	return int64(n), err
}
