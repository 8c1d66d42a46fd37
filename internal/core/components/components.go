// Package components splits a lexical graph into connected components. Words
// in a component holding no seed can never receive a polarity.
package components

import (
	"github.com/agenthands/polarity/internal/core/lexicon"
	"github.com/agenthands/polarity/internal/core/model"
)

type Component struct {
	Words []*model.Word
}

// Seeds counts the seed words of the component.
func (c Component) Seeds() int {
	n := 0
	for _, w := range c.Words {
		if w.IsSeed() {
			n++
		}
	}
	return n
}

// Reached reports whether propagation touched any word of the component.
func (c Component) Reached() bool {
	for _, w := range c.Words {
		if w.IterationSet() {
			return true
		}
	}
	return false
}

// Detect returns the weakly connected components of g: relation direction is
// ignored. Components and their words follow the insertion order of g.
func Detect(g lexicon.Graph) []Component {
	words := g.Words()
	adj := make(map[*model.Word][]*model.Word, len(words))
	for _, w := range words {
		for _, r := range g.Relations(w) {
			if r.F == r.T {
				continue
			}
			adj[r.F] = append(adj[r.F], r.T)
			adj[r.T] = append(adj[r.T], r.F)
		}
	}

	visited := make(map[*model.Word]bool, len(words))
	var out []Component
	for _, w := range words {
		if visited[w] {
			continue
		}
		out = append(out, Component{Words: collect(w, adj, visited)})
	}
	return out
}

// Unreached counts the components no propagation reached.
func Unreached(cs []Component) int {
	n := 0
	for _, c := range cs {
		if !c.Reached() {
			n++
		}
	}
	return n
}

func collect(start *model.Word, adj map[*model.Word][]*model.Word, visited map[*model.Word]bool) []*model.Word {
	visited[start] = true
	component := []*model.Word{start}
	stack := []*model.Word{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				component = append(component, v)
				stack = append(stack, v)
			}
		}
	}
	return component
}
