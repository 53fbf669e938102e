package board_test

import (
	"fmt"
	"sort"

	"github.com/GongXiangbo/Knight/board"
)

// ExampleBoard_Moves lists the knight destinations from the b1 square of a
// standard board, sorted into file-major order for a stable listing.
func ExampleBoard_Moves() {
	b, err := board.New(8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dsts, err := b.Moves(board.Square{File: 1, Rank: 0}) // b1
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sort.Slice(dsts, func(i, j int) bool { return dsts[i].Less(dsts[j]) })
	fmt.Println(dsts)
	// Output:
	// [(0,2) (2,2) (3,1)]
}
