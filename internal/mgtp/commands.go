package mgtp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"darkchess/internal/darkchess"
	"darkchess/internal/engine"
)

type handler func(s *Session, args []string) (string, error)

// commandNames 的顺序就是 list_commands 的输出顺序。
var commandNames = []string{
	"protocol_version",
	"name",
	"version",
	"known_command",
	"list_commands",
	"quit",
	"boardsize",
	"reset_board",
	"num_repetition",
	"num_moves_to_draw",
	"move",
	"flip",
	"genmove",
	"game_over",
	"ready",
	"time_settings",
	"time_left",
	"showboard",
	"init_board",
}

var commands map[string]handler

func init() {
	commands = map[string]handler{
		"protocol_version":  func(*Session, []string) (string, error) { return ProtocolVersion, nil },
		"name":              func(s *Session, _ []string) (string, error) { return s.opts.Name, nil },
		"version":           func(s *Session, _ []string) (string, error) { return s.opts.Version, nil },
		"known_command":     cmdKnownCommand,
		"list_commands":     cmdListCommands,
		"quit":              cmdQuit,
		"boardsize":         stub,
		"reset_board":       cmdResetBoard,
		"num_repetition":    stub, // 和棋判定未实现
		"num_moves_to_draw": stub,
		"move":              cmdMove,
		"flip":              cmdFlip,
		"genmove":           cmdGenMove,
		"game_over":         cmdGameOver,
		"ready":             stub,
		"time_settings":     stub,
		"time_left":         cmdTimeLeft,
		"showboard":         cmdShowBoard,
		"init_board":        cmdInitBoard,
	}
}

func stub(*Session, []string) (string, error) { return "", nil }

func cmdKnownCommand(_ *Session, args []string) (string, error) {
	if len(args) < 1 {
		return "false", nil
	}
	_, ok := commands[args[0]]
	return strconv.FormatBool(ok), nil
}

func cmdListCommands(*Session, []string) (string, error) {
	var sb strings.Builder
	for _, name := range commandNames {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func cmdQuit(s *Session, _ []string) (string, error) {
	s.quit = true
	return "", nil
}

func cmdResetBoard(s *Session, _ []string) (string, error) {
	s.pos.Reset()
	return "", nil
}

// move <from> <to>：先用合法动作集校验，再执行。
func cmdMove(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArgs
	}
	m, err := darkchess.ParseMove(args[0], args[1])
	if err != nil {
		return "", err
	}
	if m.IsNull() || m.IsReveal() {
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	side := s.pos.SideToMove
	if side == darkchess.NoSide {
		// 未定方时按源格棋子的颜色校验
		side = s.pos.Cell(m.From).Side()
	}
	if !containsMove(s.eng.LegalMoves(s.pos, side), m) {
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if err := s.pos.ApplyMove(m); err != nil {
		return "", err
	}
	return "", nil
}

// flip <square> <piece>
func cmdFlip(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArgs
	}
	sq, err := darkchess.ParseSquare(args[0])
	if err != nil {
		return "", err
	}
	pc, err := darkchess.ParsePiece(args[1])
	if err != nil {
		return "", err
	}
	if err := s.pos.Reveal(sq, pc); err != nil {
		return "", err
	}
	return "", nil
}

// genmove <red|black|unknown>：只选步不落子，服务器会把结果再发回来。
func cmdGenMove(s *Session, args []string) (string, error) {
	side := darkchess.NoSide
	if len(args) > 0 {
		if sd, err := parseSide(args[0]); err == nil {
			side = sd
		}
	}
	s.pos.SetSideToMove(side)

	m, err := s.eng.SelectMove(s.pos, side)
	if errors.Is(err, engine.ErrNoLegalMove) {
		s.log.WithField("side", side.String()).Info("no legal move, resigning")
		return darkchess.NullMove.String(), nil
	}
	if err != nil {
		return darkchess.NullMove.String(), err
	}
	return m.String(), nil
}

func cmdGameOver(s *Session, args []string) (string, error) {
	s.log.WithField("result", strings.Join(args, " ")).Info("game over")
	return "", nil
}

// time_left <red|black> <value>
func cmdTimeLeft(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArgs
	}
	side, err := parseSide(args[0])
	if err != nil || side == darkchess.NoSide {
		return "", fmt.Errorf("%w: %q", ErrUnknownSide, args[0])
	}
	t, err := strconv.Atoi(args[1])
	if err != nil {
		return "", err
	}
	s.pos.SetTime(side, t)
	return "", nil
}

func cmdShowBoard(s *Session, _ []string) (string, error) {
	return "\n" + s.pos.String(), nil
}

func cmdInitBoard(s *Session, args []string) (string, error) {
	l, err := darkchess.ParseLayout(args)
	if err != nil {
		return "", err
	}
	s.pos.Setup(l)
	return "", nil
}

func containsMove(moves []darkchess.Move, m darkchess.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
