package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"darkchess/internal/config"
	"darkchess/internal/darkchess"
	"darkchess/internal/engine"
	"darkchess/internal/match"
)

type result struct {
	ID       string
	Plies    int
	Stuck    darkchess.Side // 无合法动作的一方；NoSide 表示打满步数
	Hidden   int
	Encoding string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	games := flag.Int("games", 10, "number of games to play")
	parallel := flag.Int("parallel", 4, "games played concurrently")
	maxPlies := flag.Int("maxplies", 400, "max plies per game")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	flag.Parse()

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eng := engine.NewEngine(engine.Config{Seed: cfg.Seed, Logger: log})
	mgr := match.NewManager()
	results := make([]result, *games)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallel)
	for i := 0; i < *games; i++ {
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			res, err := playGame(ctx, eng, mgr, *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			log.WithFields(logrus.Fields{
				"game":   i + 1,
				"match":  res.ID,
				"plies":  res.Plies,
				"stuck":  res.Stuck.String(),
				"hidden": res.Hidden,
			}).Info("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("selfplay failed")
	}

	stuck := map[darkchess.Side]int{}
	for _, r := range results {
		stuck[r.Stuck]++
	}
	log.WithFields(logrus.Fields{
		"games":       *games,
		"red_stuck":   stuck[darkchess.Red],
		"black_stuck": stuck[darkchess.Black],
		"max_plies":   stuck[darkchess.NoSide],
		"matches":     mgr.Len(),
	}).Info("selfplay finished")
}

// playGame 双方都随机选步；翻子时按剩余暗子数量随机决定翻出的棋子。
func playGame(ctx context.Context, eng *engine.Engine, mgr *match.Manager, maxPlies int) (result, error) {
	m := mgr.NewMatch()
	res := result{ID: m.ID, Stuck: darkchess.NoSide}

	for ply := 0; ply < maxPlies; ply++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		stop := false
		err := m.Do(func(pos *darkchess.Position) error {
			mv, err := eng.SelectMove(pos, pos.SideToMove)
			if err != nil {
				res.Stuck = pos.SideToMove
				stop = true
				return nil
			}
			if mv.IsReveal() {
				pc, ok := eng.SampleHidden(pos)
				if !ok {
					return fmt.Errorf("reveal %s with no hidden piece left", mv)
				}
				return pos.Reveal(mv.From, pc)
			}
			return pos.ApplyMove(mv)
		})
		if err != nil {
			return res, err
		}
		if stop {
			break
		}
	}

	final := m.Snapshot()
	res.Plies = m.Plies()
	res.Hidden = final.HiddenTotal
	res.Encoding = final.Encode()
	return res, nil
}
