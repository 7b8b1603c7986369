package curve25519

import (
	"git.gammaspectra.live/P2Pool/group/utils"
	"git.gammaspectra.live/P2Pool/group/wnaf"
)

// TableCache Keeps wNAF tables for repeatedly seen base points, keyed by their
// compressed encoding, so fixed-base multiplications against recurring points
// skip the table build.
type TableCache struct {
	tables utils.Cache[PublicKeyBytes, *wnaf.Table[Point, Ops]]
	window uint
}

// NewTableLRUCache returns a cache bounded to size tables of window width w,
// evicting least recently used entries.
func NewTableLRUCache(size int, w uint) (*TableCache, error) {
	if w < wnaf.MinWindow || w > wnaf.MaxWindow {
		return nil, wnaf.ErrWindow
	}
	return &TableCache{
		tables: utils.NewLRUCache[PublicKeyBytes, *wnaf.Table[Point, Ops]](size),
		window: w,
	}, nil
}

// NewTableMapCache returns an unordered cache bounded to size tables.
func NewTableMapCache(size int, w uint) (*TableCache, error) {
	if w < wnaf.MinWindow || w > wnaf.MaxWindow {
		return nil, wnaf.ErrWindow
	}
	return &TableCache{
		tables: utils.NewMapCache[PublicKeyBytes, *wnaf.Table[Point, Ops]](size),
		window: w,
	}, nil
}

func (c *TableCache) Window() uint {
	return c.window
}

// Get returns the table for p, building and retaining it on first sight.
func (c *TableCache) Get(p *Point) *wnaf.Table[Point, Ops] {
	key := EncodePoint(p)
	if t, ok := c.tables.Get(key); ok {
		return t
	}
	// the window was validated at construction
	t, _ := wnaf.NewTable[Point, Ops](p, c.window)
	c.tables.Set(key, t)
	return t
}

// Preload builds and retains tables for a batch of known upcoming base points,
// spreading the builds across routines. Pass routines <= 0 to size off the host.
//
// The cache itself is only touched from the calling goroutine; workers build
// into their own slots.
func (c *TableCache) Preload(points []Point, routines int) error {
	var missing []*Point
	for _, p := range utils.ValuesToPointers(points) {
		if _, ok := c.tables.Get(EncodePoint(p)); !ok {
			missing = append(missing, p)
		}
	}

	built := make([]*wnaf.Table[Point, Ops], len(missing))
	if err := utils.SplitWork(routines, uint64(len(missing)), func(workIndex uint64, routineIndex int) error {
		t, err := wnaf.NewTable[Point, Ops](missing[workIndex], c.window)
		if err != nil {
			return err
		}
		built[workIndex] = t
		return nil
	}, func(routines, routineIndex int) error {
		return nil
	}); err != nil {
		return err
	}

	for i, t := range built {
		c.tables.Set(EncodePoint(missing[i]), t)
	}
	return nil
}

func (c *TableCache) Clear() {
	c.tables.Clear()
}
