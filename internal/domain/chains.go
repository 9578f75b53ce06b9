package domain

import "sort"

// ChainRegistry tracks the tiles owned by each corporation. A corporation is
// active exactly when it owns at least one tile.
type ChainRegistry struct {
	Tiles map[Corporation][]Tile `json:"tiles"`
}

// NewChainRegistry returns a registry with every corporation inactive.
func NewChainRegistry() ChainRegistry {
	return ChainRegistry{Tiles: make(map[Corporation][]Tile)}
}

// Size returns the chain length of c.
func (r ChainRegistry) Size(c Corporation) int {
	return len(r.Tiles[c])
}

// Active reports whether c has been founded and not dissolved.
func (r ChainRegistry) Active(c Corporation) bool {
	return r.Size(c) > 0
}

// Safe reports whether c has reached the safe size.
func (r ChainRegistry) Safe(c Corporation, safeSize int) bool {
	return r.Size(c) >= safeSize
}

// Inactive lists the corporations that may be founded, alphabetically.
func (r ChainRegistry) Inactive() []Corporation {
	var out []Corporation
	for _, c := range Corporations {
		if !r.Active(c) {
			out = append(out, c)
		}
	}
	return out
}

// ActiveCorporations lists the founded corporations, alphabetically.
func (r ChainRegistry) ActiveCorporations() []Corporation {
	var out []Corporation
	for _, c := range Corporations {
		if r.Active(c) {
			out = append(out, c)
		}
	}
	return out
}

// CheckMergeable rejects a merge set containing two or more safe chains.
func (r ChainRegistry) CheckMergeable(corps []Corporation, safeSize int) error {
	safe := 0
	for _, c := range corps {
		if r.Safe(c, safeSize) {
			safe++
		}
	}
	if safe >= 2 {
		return ErrIllegalMergeOfTwoSafeChains
	}
	return nil
}

// BySizeDesc orders corporations by chain size descending, breaking ties alphabetically.
func (r ChainRegistry) BySizeDesc(corps []Corporation) []Corporation {
	out := append([]Corporation(nil), corps...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := r.Size(out[i]), r.Size(out[j])
		if si != sj {
			return si > sj
		}
		return out[i] < out[j]
	})
	return out
}

// Found activates c with the given tiles and marks them owned on the board.
func (r *ChainRegistry) Found(b *Board, c Corporation, tiles []Tile) {
	r.ensure(b)
	owned := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		b.Cells[t] = c
		owned = append(owned, t)
	}
	r.Tiles[c] = owned
}

// Grow appends a single tile to c.
func (r *ChainRegistry) Grow(b *Board, c Corporation, t Tile) {
	r.ensure(b)
	b.Cells[t] = c
	r.Tiles[c] = append(r.Tiles[c], t)
}

// Merge moves every tile of the defunct corporations, plus extra, into survivor.
// Each defunct corporation becomes inactive and may be founded again later.
func (r *ChainRegistry) Merge(b *Board, survivor Corporation, defunct []Corporation, extra Tile) {
	r.ensure(b)
	for _, d := range defunct {
		for _, t := range r.Tiles[d] {
			b.Cells[t] = survivor
			r.Tiles[survivor] = append(r.Tiles[survivor], t)
		}
		delete(r.Tiles, d)
	}
	if b.OwnerOf(extra) != survivor {
		b.Cells[extra] = survivor
		r.Tiles[survivor] = append(r.Tiles[survivor], extra)
	}
}

func (r *ChainRegistry) ensure(b *Board) {
	if r.Tiles == nil {
		r.Tiles = make(map[Corporation][]Tile)
	}
	if b.Cells == nil {
		b.Cells = make(map[Tile]Corporation)
	}
}

func (r ChainRegistry) clone() ChainRegistry {
	tiles := make(map[Corporation][]Tile, len(r.Tiles))
	for c, ts := range r.Tiles {
		tiles[c] = append([]Tile(nil), ts...)
	}
	return ChainRegistry{Tiles: tiles}
}
