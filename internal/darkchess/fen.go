package darkchess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Encode 简单 FEN-like：8 行（第 8 行在前）用 "/" 隔开，每行 a..d 四个字母；
// 之后是走子方 r/b/-，最后是 14 种暗子剩余数量（KkGgMmRrNnCcPp 顺序，逗号分隔）。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		if r < Rows-1 {
			sb.WriteByte('/')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteByte(cellToChar(p.Board.Cells[indexOf(r, c)]))
		}
	}
	sb.WriteByte(' ')
	switch p.SideToMove {
	case Red:
		sb.WriteByte('r')
	case Black:
		sb.WriteByte('b')
	default:
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	for i, n := range p.Hidden {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 3 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var l Layout
	for i, row := range rows {
		if len(row) != Cols {
			return nil, ErrInvalidFEN
		}
		r := Rows - 1 - i
		for c := 0; c < Cols; c++ {
			cell, err := ParseCell(row[c])
			if err != nil {
				return nil, ErrInvalidFEN
			}
			l.Cells[indexOf(r, c)] = cell
		}
	}

	var stm Side
	switch parts[1] {
	case "r":
		stm = Red
	case "b":
		stm = Black
	case "-":
		stm = NoSide
	default:
		return nil, ErrInvalidFEN
	}

	counts := strings.Split(parts[2], ",")
	if len(counts) != NumPieceKinds {
		return nil, ErrInvalidFEN
	}
	for i, s := range counts {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, ErrInvalidFEN
		}
		l.Hidden[i] = n
	}

	pos := &Position{}
	pos.Setup(l)
	pos.SetSideToMove(stm)
	return pos, nil
}

var ErrInvalidLayout = errors.New("invalid board layout")

// ParseLayout 解析 init_board 的参数：
// 前 32 个是棋盘（第 8 行到第 1 行，每行 a..d），后 14 个是各类暗子数量。
func ParseLayout(args []string) (Layout, error) {
	var l Layout
	if len(args) != NumSquares+NumPieceKinds {
		return l, fmt.Errorf("%w: want %d fields, got %d", ErrInvalidLayout, NumSquares+NumPieceKinds, len(args))
	}
	for i := 0; i < NumSquares; i++ {
		if len(args[i]) != 1 {
			return l, fmt.Errorf("%w: field %d %q", ErrInvalidLayout, i, args[i])
		}
		cell, err := ParseCell(args[i][0])
		if err != nil {
			return l, fmt.Errorf("%w: field %d %q", ErrInvalidLayout, i, args[i])
		}
		r := Rows - 1 - i/Cols
		c := i % Cols
		l.Cells[indexOf(r, c)] = cell
	}
	for i := 0; i < NumPieceKinds; i++ {
		n, err := strconv.Atoi(args[NumSquares+i])
		if err != nil || n < 0 {
			return l, fmt.Errorf("%w: hidden count %q", ErrInvalidLayout, args[NumSquares+i])
		}
		l.Hidden[i] = n
	}
	return l, nil
}

// String 与 showboard 的输出一致。
func (p *Position) String() string {
	var sb strings.Builder
	switch p.SideToMove {
	case Red:
		sb.WriteString("[RED] ")
	case Black:
		sb.WriteString("[BLK] ")
	default:
		sb.WriteString("[UNKNOWN] ")
	}
	for _, n := range p.Hidden {
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for r := Rows - 1; r >= 0; r-- {
		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteByte(' ')
		for c := 0; c < Cols; c++ {
			sb.WriteByte(cellToChar(p.Board.Cells[indexOf(r, c)]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d\n")
	return sb.String()
}
