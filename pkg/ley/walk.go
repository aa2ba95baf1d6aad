package ley

// WalkFunc is called for each block with its nesting depth (0 for top level).
// Return a non-nil error to stop the walk.
type WalkFunc func(b *Block, depth int) error

// Walk performs a pre-order traversal of blocks and their nested children.
func Walk(blocks []*Block, fn WalkFunc) error {
	return walk(blocks, 0, fn)
}

func walk(blocks []*Block, depth int, fn WalkFunc) error {
	for _, block := range blocks {
		if err := fn(block, depth); err != nil {
			return err
		}
		if err := walk(block.Children(), depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all blocks matching the predicate, in pre-order.
func FindAll(blocks []*Block, predicate func(b *Block) bool) []*Block {
	var result []*Block

	//nolint:errcheck,revive // the callback never fails
	Walk(blocks, func(b *Block, _ int) error {
		if predicate(b) {
			result = append(result, b)
		}
		return nil
	})

	return result
}

// FindByStructure returns all blocks whose structure name equals structure.
func FindByStructure(blocks []*Block, structure string) []*Block {
	return FindAll(blocks, func(b *Block) bool {
		return b.Structure == structure
	})
}

// Count returns the total number of blocks, nested ones included.
func Count(blocks []*Block) int {
	return len(FindAll(blocks, func(*Block) bool { return true }))
}

// MaxDepth returns the number of nesting levels: 0 for no blocks, 1 for
// top-level blocks only.
func MaxDepth(blocks []*Block) int {
	maxDepth := 0

	//nolint:errcheck,revive // the callback never fails
	Walk(blocks, func(_ *Block, depth int) error {
		if depth+1 > maxDepth {
			maxDepth = depth + 1
		}
		return nil
	})

	return maxDepth
}
