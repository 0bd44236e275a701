// Package mapgen generates random rectangular terrain maps.
package mapgen

import (
	"go-hex-tactics/internal/utils"
	"go-hex-tactics/pkg/hexmap"
)

// DefaultWeights roughly matches the mix of the bundled demo map.
var DefaultWeights = []utils.Weighted[hexmap.Terrain]{
	{Value: hexmap.TerrainGrass, Weight: 10},
	{Value: hexmap.TerrainForest, Weight: 4},
	{Value: hexmap.TerrainSand, Weight: 2},
	{Value: hexmap.TerrainWater, Weight: 3},
	{Value: hexmap.TerrainMountain, Weight: 2},
}

// Params control Generate.
type Params struct {
	Cols, Rows int
	Seed       int64
	Weights    []utils.Weighted[hexmap.Terrain]
	// Smoothing is the number of majority passes run after the random fill.
	Smoothing int
}

// Generate fills a Cols×Rows map with weighted random terrain, then smooths it
// so terrain forms patches. The same Params always yield the same map when Seed
// is non-zero.
func Generate(p Params) *hexmap.HexMap {
	weights := p.Weights
	if len(weights) == 0 {
		weights = DefaultWeights
	}
	rng := utils.NewPRNGService(p.Seed)
	hm := hexmap.NewRectMap(p.Cols, p.Rows, hexmap.TerrainGrass)
	for _, hex := range hm.Hexes() {
		hm.SetTerrain(hex, utils.ChooseWeighted(rng, weights))
	}
	for i := 0; i < p.Smoothing; i++ {
		smooth(hm)
	}
	return hm
}

// smooth replaces each cell by the terrain most of its neighbours share, when
// at least four of them agree.
func smooth(hm *hexmap.HexMap) {
	next := make(map[hexmap.Hex]hexmap.Terrain, len(hm.Tiles))
	for _, hex := range hm.Hexes() {
		counts := make([]int, len(hexmap.AllTerrains))
		for _, n := range hm.Neighbors(hex) {
			counts[hm.Tiles[n].Terrain]++
		}
		cur := hm.Tiles[hex].Terrain
		next[hex] = cur
		for t, c := range counts {
			if c >= 4 {
				next[hex] = hexmap.Terrain(t)
			}
		}
	}
	for hex, t := range next {
		hm.SetTerrain(hex, t)
	}
}
