package main

import (
	"fmt"

	"darkchess/internal/darkchess"
)

func main() {
	pos := darkchess.NewPosition()
	fmt.Println("FEN:", pos.Encode())
	fmt.Print(pos.String())
	moves := pos.LegalMoves()
	fmt.Println("Legal moves:", len(moves))
}
