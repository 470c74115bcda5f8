// Package console reads answers to prompts from a line-based input and
// writes session output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// ParseError reports an answer that is not the number a prompt asked for.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Prompter writes a question on its own line and reads the answer from the
// next input line.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask prints question and returns the answer verbatim, without its line ending.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return p.readLine()
}

// AskInt asks question and parses the answer as a base 10, 32-bit integer.
func (p *Prompter) AskInt(ctx context.Context, question, field string) (int, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(answer)
	n, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, &ParseError{Field: field, Input: trimmed, Err: err}
	}
	return int(n), nil
}

// AskDecimal asks question and parses the answer as a decimal number.
func (p *Prompter) AskDecimal(ctx context.Context, question, field string) (decimal.Decimal, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return decimal.Zero, err
	}
	trimmed := strings.TrimSpace(answer)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &ParseError{Field: field, Input: trimmed, Err: err}
	}
	return d, nil
}

// Pause blocks until a line is read. Running out of input also ends the pause.
func (p *Prompter) Pause() error {
	if _, err := p.readLine(); err != nil && !errors.Is(err, ErrInputClosed) {
		return err
	}
	return nil
}

// readLine returns the next line of any length. A final line without a
// line ending still counts as an answer.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
