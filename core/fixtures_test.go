package core_test

import (
	"testing"

	"github.com/Gtindi/Networking-Graph/core"
)

// kenyanCities lists the vertices of the road-atlas fixture, in the index
// order shared by tests across the module.
var kenyanCities = []string{
	"Bungoma", "Kitale", "Lodwar", "Moyale", "Wajir", "Lamu",
	"Malindi", "Mombasa", "Machakos", "Nairobi", "Naivasha", "Nakuru",
	"Eldoret", "Kisumu", "Garissa", "Marsabit", "Taita Taveta", "Turkana",
}

// road is one undirected connection of the atlas fixture.
type road struct {
	from, to string
	km       float64
}

// kenyanRoads lists the 31 connections of the atlas, in insertion order.
var kenyanRoads = []road{
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

// buildCityGraph assembles the unweighted atlas.
func buildCityGraph(tb testing.TB) *core.Graph[string] {
	tb.Helper()

	g := core.NewGraph(kenyanCities...)
	for _, r := range kenyanRoads {
		if err := g.AddEdgeByVertices(r.from, r.to); err != nil {
			tb.Fatalf("AddEdgeByVertices(%s, %s): %v", r.from, r.to, err)
		}
	}

	return g
}

// buildWeightedCityGraph assembles the atlas with road lengths in km.
func buildWeightedCityGraph(tb testing.TB) *core.WeightedGraph[string] {
	tb.Helper()

	g := core.NewWeightedGraph(kenyanCities...)
	for _, r := range kenyanRoads {
		if err := g.AddEdgeByVertices(r.from, r.to, r.km); err != nil {
			tb.Fatalf("AddEdgeByVertices(%s, %s, %g): %v", r.from, r.to, r.km, err)
		}
	}

	return g
}
