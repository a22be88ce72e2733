package dijkstra_test

import (
	"github.com/Gtindi/Networking-Graph/core"
	"github.com/Gtindi/Networking-Graph/dijkstra"
)

// kenyanCities lists the vertices of the road-atlas fixture, in index order.
var kenyanCities = []string{
	"Bungoma", "Kitale", "Lodwar", "Moyale", "Wajir", "Lamu",
	"Malindi", "Mombasa", "Machakos", "Nairobi", "Naivasha", "Nakuru",
	"Eldoret", "Kisumu", "Garissa", "Marsabit", "Taita Taveta", "Turkana",
}

// kenyanRoads lists the atlas connections with their length in km, in
// insertion order.
var kenyanRoads = []struct {
	from, to string
	km       float64
}{
	{"Bungoma", "Kitale", 250},
	{"Bungoma", "Kisumu", 300},
	{"Kisumu", "Eldoret", 200},
	{"Kisumu", "Nakuru", 210},
	{"Nakuru", "Naivasha", 150},
	{"Naivasha", "Nairobi", 300},
	{"Nairobi", "Machakos", 85},
	{"Nairobi", "Garissa", 673},
	{"Garissa", "Marsabit", 125},
	{"Garissa", "Turkana", 78},
	{"Turkana", "Marsabit", 175},
	{"Turkana", "Lamu", 180},
	{"Turkana", "Wajir", 200},
	{"Marsabit", "Moyale", 75},
	{"Moyale", "Lodwar", 350},
	{"Lodwar", "Kitale", 248},
	{"Lodwar", "Eldoret", 473},
	{"Nakuru", "Eldoret", 240},
	{"Eldoret", "Kitale", 173},
	{"Mombasa", "Malindi", 863},
	{"Machakos", "Garissa", 776},
	{"Machakos", "Mombasa", 1005},
	{"Malindi", "Lamu", 489},
	{"Lamu", "Wajir", 373},
	{"Wajir", "Moyale", 205},
	{"Mombasa", "Taita Taveta", 1000},
	{"Taita Taveta", "Kisumu", 500},
	{"Garissa", "Lodwar", 420},
	{"Garissa", "Nakuru", 838},
	{"Garissa", "Malindi", 998},
	{"Nairobi", "Taita Taveta", 736},
}

// cityGraph assembles the weighted atlas; tests assert on the result, so a
// broken build surfaces immediately.
func cityGraph() *core.WeightedGraph[string] {
	g := core.NewWeightedGraph(kenyanCities...)
	for _, r := range kenyanRoads {
		_ = g.AddEdgeByVertices(r.from, r.to, r.km)
	}

	return g
}

// cityArcs adapts the graph's index-addressed edge view to the algorithm's
// arc contract. The mirror entries make every road traversable from both
// endpoints.
func cityArcs(g *core.WeightedGraph[string]) dijkstra.Arcs {
	return func(u int) []dijkstra.Arc {
		edges, err := g.EdgesForIndex(u)
		if err != nil {
			return nil
		}
		arcs := make([]dijkstra.Arc, len(edges))
		for i, e := range edges {
			arcs[i] = dijkstra.Arc{To: e.V, Weight: e.Weight}
		}

		return arcs
	}
}
