package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
)

const (
	tokenReady = "ready"
	tokenStart = "start"
	tokenEnd   = "end"

	maxLineLength = 4096
)

var errInputClosed = errors.New("input closed")

type gameManager interface {
	Start(ctx context.Context) (*entity.Game, error)
	Join(ctx context.Context, row, col int) (*entity.Game, error)
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, error)
	EndGame(ctx context.Context) *entity.Game
}

// Server speaks the adjudicator's line protocol: one command per line in,
// one move per line out, flushed immediately.
type Server struct {
	logger  *slog.Logger
	manager gameManager
}

func New(logger *slog.Logger, manager gameManager) *Server {
	return &Server{
		logger:  logger.With("component", "line_server"),
		manager: manager,
	}
}

// Serve - plays one game over in/out. It returns nil on "end" and an error
// wrapping an apperror sentinel on any protocol failure.
func (that *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64), maxLineLength)
	writer := bufio.NewWriter(out)

	if err := writeLine(writer, tokenReady); err != nil {
		return err
	}

	game, err := that.handleFirstLine(ctx, scanner)
	if err != nil {
		return err
	}

	if err = that.emitReply(writer, game); err != nil {
		return err
	}

	return that.handleMessages(ctx, scanner, writer, game)
}

// handleFirstLine - "start" makes the agent O, a move makes it X.
func (that *Server) handleFirstLine(ctx context.Context, scanner *bufio.Scanner) (*entity.Game, error) {
	line, err := readLine(scanner)
	if err != nil {
		if errors.Is(err, apperror.ErrMalformedInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: no first line: %w", apperror.ErrTurnOrder, err)
	}

	switch line {
	case "":
		return nil, fmt.Errorf("%w: empty first line", apperror.ErrTurnOrder)
	case tokenStart:
		game, startErr := that.manager.Start(ctx)
		if startErr != nil {
			return nil, fmt.Errorf("failed to start game: %w", startErr)
		}
		return game, nil
	}

	row, col, err := parseMove(line)
	if err != nil {
		return nil, err
	}

	game, err := that.manager.Join(ctx, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	return game, nil
}

// handleMessages - processes lines until "end" or a protocol failure.
func (that *Server) handleMessages(ctx context.Context, scanner *bufio.Scanner, writer *bufio.Writer, game *entity.Game) error {
	log := that.logger.With("method", "handleMessages")

	for {
		line, err := readLine(scanner)
		if err != nil {
			if errors.Is(err, apperror.ErrMalformedInput) {
				return err
			}
			if game.IsFinished() {
				log.Info("Input closed after the game finished")
				that.manager.EndGame(ctx)
				return nil
			}
			return fmt.Errorf("%w: %w", apperror.ErrTurnOrder, err)
		}

		switch {
		case line == tokenEnd:
			that.manager.EndGame(ctx)
			return nil

		case line == "":
			if game.Mark == entity.PlayerX {
				return fmt.Errorf("%w: empty line while playing second", apperror.ErrTurnOrder)
			}
			log.Debug("Ignoring empty line")
			continue
		}

		row, col, err := parseMove(line)
		if err != nil {
			return err
		}

		game, err = that.manager.MakeTurn(ctx, row, col)
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if err = that.emitReply(writer, game); err != nil {
			return err
		}
	}
}

// emitReply - writes the agent's move when it was the last one played.
func (that *Server) emitReply(writer *bufio.Writer, game *entity.Game) error {
	last, ok := game.LastMove()
	if !ok || last.Player != game.Mark {
		return nil
	}

	return writeLine(writer, last.String())
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		err := scanner.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrMalformedInput, maxLineLength)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		return "", errInputClosed
	}

	return strings.TrimSpace(scanner.Text()), nil
}

func writeLine(writer *bufio.Writer, text string) error {
	if _, err := writer.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// parseMove - reads "<row> <col>".
func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	return row, col, nil
}
