package frame

import (
	"sort"

	errors "github.com/go-frame/frame/errors"
	"github.com/go-frame/frame/internal/keyenc"
)

// JoinKind selects the relational join variant
type JoinKind int

const (
	// InnerJoin keeps only matched row pairs
	InnerJoin JoinKind = iota
	// LeftJoin additionally keeps unmatched left rows, null-padded
	LeftJoin
	// RightJoin additionally keeps unmatched right rows, null-padded
	RightJoin
	// FullJoin keeps unmatched rows from both sides, null-padded
	FullJoin
)

// JoinKey pairs a left-side column name with a right-side column name
type JoinKey struct {
	Left  string
	Right string
}

// On builds a JoinKey list for key columns sharing one name on both sides
func On(names ...string) []JoinKey {
	keys := make([]JoinKey, len(names))
	for i, name := range names {
		keys[i] = JoinKey{Left: name, Right: name}
	}
	return keys
}

// JoinConf configures join output naming. Zero values select the
// defaults.
type JoinConf struct {
	LeftSuffix  string // Alias suffix for left columns whose names collide. Defaults to "_left".
	RightSuffix string // Alias suffix for right columns whose names collide. Defaults to "_right".
}

// Join combines two DataFrames on one or more key column pairs. The
// smaller side is hashed by the xxhash of its encoded key tuple and
// the larger side probes; collisions are settled by exact tuple
// comparison. Rows with any missing key component never match, in any
// kind. Multiple matches per key fan out to the cross product of the
// matching rows. Matched output rows appear in left-major order
// (left row order, then right row order within one left row);
// unmatched right rows, when kept, follow in right row order.
//
// The output carries every left column followed by every non-key
// right column. The key columns are unified under the left-side
// names. A right column colliding with a left output name is kept as
// a duplicate primary name: direct lookup then fails until
// disambiguated via the registered suffix aliases.
func Join(left *DataFrame, right *DataFrame, on []JoinKey, kind JoinKind, conf *JoinConf) (*DataFrame, error) {
	if conf == nil {
		conf = &JoinConf{}
	}
	if conf.LeftSuffix == "" {
		conf.LeftSuffix = "_left"
	}
	if conf.RightSuffix == "" {
		conf.RightSuffix = "_right"
	}
	if len(on) == 0 {
		return nil, errors.ColumnNotFoundError{Name: "(empty join key)"}
	}
	leftKeys := make([]*ErasedColumn, len(on))
	rightKeys := make([]*ErasedColumn, len(on))
	for i, key := range on {
		lcol, err := left.Column(key.Left)
		if err != nil {
			return nil, err
		}
		rcol, err := right.Column(key.Right)
		if err != nil {
			return nil, err
		}
		if lcol.TypeName() != rcol.TypeName() {
			return nil, errors.TypeMismatchError{Name: key.Right, Expected: lcol.TypeName(), Actual: rcol.TypeName()}
		}
		leftKeys[i] = lcol
		rightKeys[i] = rcol
	}

	pairs := matchRows(left, leftKeys, right, rightKeys)

	// expand pairs into aligned row-position lists per output row,
	// with -1 marking a null-padded side
	var leftIdx, rightIdx []int
	matchedLeft := make([]bool, left.RowCount())
	matchedRight := make([]bool, right.RowCount())
	for _, p := range pairs {
		matchedLeft[p[0]] = true
		matchedRight[p[1]] = true
	}
	next := 0
	for li := 0; li < left.RowCount(); li++ {
		if matchedLeft[li] {
			for next < len(pairs) && pairs[next][0] == li {
				leftIdx = append(leftIdx, li)
				rightIdx = append(rightIdx, pairs[next][1])
				next++
			}
		} else if kind == LeftJoin || kind == FullJoin {
			leftIdx = append(leftIdx, li)
			rightIdx = append(rightIdx, -1)
		}
	}
	if kind == RightJoin || kind == FullJoin {
		for ri := 0; ri < right.RowCount(); ri++ {
			if !matchedRight[ri] {
				leftIdx = append(leftIdx, -1)
				rightIdx = append(rightIdx, ri)
			}
		}
	}

	return assembleJoined(left, leftKeys, right, rightKeys, leftIdx, rightIdx, conf)
}

// matchRows produces matched (left, right) row pairs in left-major
// order
func matchRows(left *DataFrame, leftKeys []*ErasedColumn, right *DataFrame, rightKeys []*ErasedColumn) [][2]int {
	type bucketEntry struct {
		idx   int
		tuple string
	}
	buildKeys, probeKeys := leftKeys, rightKeys
	buildCount, probeCount := left.RowCount(), right.RowCount()
	probeIsRight := true
	if right.RowCount() < left.RowCount() {
		buildKeys, probeKeys = rightKeys, leftKeys
		buildCount, probeCount = right.RowCount(), left.RowCount()
		probeIsRight = false
	}
	buckets := make(map[uint64][]bucketEntry, buildCount)
	for i := 0; i < buildCount; i++ {
		tuple, ok := rowKey(buildKeys, i)
		if !ok {
			continue
		}
		h := keyenc.Hash(tuple)
		buckets[h] = append(buckets[h], bucketEntry{idx: i, tuple: string(tuple)})
	}
	var pairs [][2]int
	for i := 0; i < probeCount; i++ {
		tuple, ok := rowKey(probeKeys, i)
		if !ok {
			continue
		}
		for _, entry := range buckets[keyenc.Hash(tuple)] {
			if entry.tuple != string(tuple) {
				continue
			}
			if probeIsRight {
				pairs = append(pairs, [2]int{entry.idx, i})
			} else {
				pairs = append(pairs, [2]int{i, entry.idx})
			}
		}
	}
	// probing the right side yields right-major pairs; restore
	// left-major order, relying on stability to keep right order
	// within each left row
	if probeIsRight {
		sort.SliceStable(pairs, func(a, b int) bool { return pairs[a][0] < pairs[b][0] })
	}
	return pairs
}

// rowKey encodes row i's key tuple. ok is false when any component is
// missing - such rows never match.
func rowKey(keys []*ErasedColumn, i int) (tuple []byte, ok bool) {
	components := make([][]byte, len(keys))
	for k, col := range keys {
		v, present := col.col.valueAt(i)
		if !present {
			return nil, false
		}
		components[k] = encodeValue(v)
	}
	return keyenc.EncodeTuple(components), true
}

func assembleJoined(left *DataFrame, leftKeys []*ErasedColumn, right *DataFrame, rightKeys []*ErasedColumn, leftIdx []int, rightIdx []int, conf *JoinConf) (*DataFrame, error) {
	isLeftKey := func(col *ErasedColumn) int {
		for k, kc := range leftKeys {
			if kc == col {
				return k
			}
		}
		return -1
	}
	isRightKey := func(col *ErasedColumn) bool {
		for _, kc := range rightKeys {
			if kc == col {
				return true
			}
		}
		return false
	}

	out := CreateDataFrame()
	leftOut := make(map[string]*ErasedColumn, len(left.cols))
	for _, col := range left.cols {
		gathered := &ErasedColumn{col: col.col.gatherOptional(col.Name(), leftIdx)}
		if k := isLeftKey(col); k >= 0 {
			// unified key column: unmatched right rows contribute
			// their own key values
			for r, li := range leftIdx {
				if li >= 0 {
					continue
				}
				v, present := rightKeys[k].col.valueAt(rightIdx[r])
				if !present {
					v = nil
				}
				if err := gathered.SetValue(r, v); err != nil {
					return nil, err
				}
			}
		}
		out.insertColumnUnchecked(gathered, len(out.cols))
		leftOut[col.Name()] = gathered
	}
	for _, col := range right.cols {
		if isRightKey(col) {
			continue
		}
		gathered := &ErasedColumn{col: col.col.gatherOptional(col.Name(), rightIdx)}
		out.insertColumnUnchecked(gathered, len(out.cols))
		if lcol, collides := leftOut[col.Name()]; collides {
			out.aliases[col.Name()+conf.LeftSuffix] = lcol
			out.aliases[col.Name()+conf.RightSuffix] = gathered
		}
	}
	return out, nil
}
