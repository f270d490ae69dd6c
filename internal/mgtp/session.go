package mgtp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"darkchess/internal/darkchess"
	"darkchess/internal/engine"
)

const ProtocolVersion = "1.1.0"

var (
	ErrMissingArgs = errors.New("missing arguments")
	ErrIllegalMove = errors.New("illegal move")
	ErrUnknownSide = errors.New("unknown side")
)

type Options struct {
	Name    string
	Version string
	Logger  logrus.FieldLogger
}

// Session 一条 MGTP 连接对应一局；不是并发安全的，命令逐条处理。
type Session struct {
	ID string

	pos  *darkchess.Position
	eng  *engine.Engine
	opts Options
	log  logrus.FieldLogger
	quit bool
}

func NewSession(eng *engine.Engine, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Name == "" {
		opts.Name = "darkchess"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	id := uuid.NewString()
	return &Session{
		ID:   id,
		pos:  darkchess.NewPosition(),
		eng:  eng,
		opts: opts,
		log:  opts.Logger.WithField("session", id),
	}
}

// Position 当前局面，只读使用。
func (s *Session) Position() *darkchess.Position { return s.pos }

// Done 收到 quit 之后为 true。
func (s *Session) Done() bool { return s.quit }

// Run 逐行读取命令并回复，直到 quit、EOF 或 ctx 取消。
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	for !s.quit && sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		reply, ok := s.Execute(sc.Text())
		if !ok {
			continue
		}
		if _, err := bw.WriteString(reply + "\n"); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Execute 处理一行 "<id> <name> [args...]"，返回 "=<id> <result>"。
// 空行不回复，ok 为 false。
func (s *Session) Execute(line string) (reply string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	s.log.WithField("line", line).Debug("recv")

	id := fields[0]
	if _, err := strconv.Atoi(id); err != nil || len(fields) < 2 {
		s.log.WithField("line", line).Warn("malformed command")
		return "=" + id + " ", true
	}
	name, args := fields[1], fields[2:]

	log := s.log.WithFields(logrus.Fields{"id": id, "command": name})
	h, known := commands[name]
	if !known {
		log.Warn("unknown command")
		return "=" + id + " ", true
	}
	result, err := h(s, args)
	if err != nil {
		log.WithError(err).WithField("args", strings.Join(args, " ")).Warn("command rejected")
		result = ""
	}
	return fmt.Sprintf("=%s %s", id, result), true
}

func parseSide(s string) (darkchess.Side, error) {
	switch s {
	case "red":
		return darkchess.Red, nil
	case "black":
		return darkchess.Black, nil
	case "unknown":
		return darkchess.NoSide, nil
	}
	return darkchess.NoSide, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}
