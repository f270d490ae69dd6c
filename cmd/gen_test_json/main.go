package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"darkchess/internal/darkchess"
	"darkchess/internal/engine"
)

// TestCase 一个局面及其合法动作掩码，供其它语言的实现做对拍。
type TestCase struct {
	Position string   `json:"position"`
	Side     string   `json:"side"`
	Legal    []string `json:"legal"`
	Mask     []int8   `json:"mask"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("maxplies", 300, "max plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	log := logrus.New()
	eng := engine.NewEngine(engine.Config{Seed: *seed, Logger: log})

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		pos := darkchess.NewPosition()
		for ply := 0; ply < *maxPlies; ply++ {
			legal := pos.LegalMoves()
			tc := TestCase{
				Position: pos.Encode(),
				Side:     pos.SideToMove.String(),
				Legal:    make([]string, len(legal)),
				Mask:     pos.LegalActionMask(),
			}
			for i, m := range legal {
				tc.Legal[i] = m.String()
			}
			testCases = append(testCases, tc)

			mv, err := eng.SelectMove(pos, pos.SideToMove)
			if err != nil {
				break
			}
			if mv.IsReveal() {
				pc, _ := eng.SampleHidden(pos)
				err = pos.Reveal(mv.From, pc)
			} else {
				err = pos.ApplyMove(mv)
			}
			if err != nil {
				log.WithError(err).WithField("move", mv.String()).Fatal("apply failed")
			}
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("marshal")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.WithError(err).Fatal("write")
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
