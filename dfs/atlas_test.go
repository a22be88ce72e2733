package dfs_test

import (
	"github.com/Gtindi/Networking-Graph/core"
)

// kenyanCities lists the vertices of the road-atlas fixture, in index order.
var kenyanCities = []string{
	"Bungoma", "Kitale", "Lodwar", "Moyale", "Wajir", "Lamu",
	"Malindi", "Mombasa", "Machakos", "Nairobi", "Naivasha", "Nakuru",
	"Eldoret", "Kisumu", "Garissa", "Marsabit", "Taita Taveta", "Turkana",
}

// kenyanRoads lists the atlas connections, in insertion order.
var kenyanRoads = [][2]string{
	{"Bungoma", "Kitale"},
	{"Bungoma", "Kisumu"},
	{"Kisumu", "Eldoret"},
	{"Kisumu", "Nakuru"},
	{"Nakuru", "Naivasha"},
	{"Naivasha", "Nairobi"},
	{"Nairobi", "Machakos"},
	{"Nairobi", "Garissa"},
	{"Garissa", "Marsabit"},
	{"Garissa", "Turkana"},
	{"Turkana", "Marsabit"},
	{"Turkana", "Lamu"},
	{"Turkana", "Wajir"},
	{"Marsabit", "Moyale"},
	{"Moyale", "Lodwar"},
	{"Lodwar", "Kitale"},
	{"Lodwar", "Eldoret"},
	{"Nakuru", "Eldoret"},
	{"Eldoret", "Kitale"},
	{"Mombasa", "Malindi"},
	{"Machakos", "Garissa"},
	{"Machakos", "Mombasa"},
	{"Malindi", "Lamu"},
	{"Lamu", "Wajir"},
	{"Wajir", "Moyale"},
	{"Mombasa", "Taita Taveta"},
	{"Taita Taveta", "Kisumu"},
	{"Garissa", "Lodwar"},
	{"Garissa", "Nakuru"},
	{"Garissa", "Malindi"},
	{"Nairobi", "Taita Taveta"},
}

// cityGraph assembles the atlas; tests assert on the result, so a broken
// build surfaces immediately.
func cityGraph() *core.Graph[string] {
	g := core.NewGraph(kenyanCities...)
	for _, r := range kenyanRoads {
		_ = g.AddEdgeByVertices(r[0], r[1])
	}

	return g
}

// citySuccessors adapts the graph's value-addressed neighbor query to the
// walk contract.
func citySuccessors(g *core.Graph[string]) func(string) []string {
	return func(city string) []string {
		nbrs, err := g.NeighborsForVertex(city)
		if err != nil {
			return nil
		}

		return nbrs
	}
}
