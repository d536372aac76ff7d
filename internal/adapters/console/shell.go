package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"academicevents/internal/domain"
	"academicevents/internal/ports/input"
	"academicevents/internal/ports/output"
	"academicevents/pkg/prompt"
)

// errClosed is returned by prompts once the input stream is exhausted.
var errClosed = errors.New("console: input closed")

// Shell is the interactive menu adapter. It reads answers from in and writes to out.
type Shell struct {
	eventUseCase        input.EventUseCase
	participantUseCase  input.ParticipantUseCase
	registrationUseCase input.RegistrationUseCase
	reportUseCase       input.ReportUseCase
	tr                  output.T

	in  *bufio.Scanner
	out io.Writer

	locale   string
	location *time.Location
	log      zerolog.Logger
}

type Option func(*Shell)

func WithLocale(locale string) Option {
	return func(s *Shell) { s.locale = locale }
}

// WithLocation sets the zone used to display registration timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Shell) { s.location = loc }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Shell) { s.log = log }
}

func NewShell(
	eventUseCase input.EventUseCase,
	participantUseCase input.ParticipantUseCase,
	registrationUseCase input.RegistrationUseCase,
	reportUseCase input.ReportUseCase,
	tr output.T,
	in io.Reader,
	out io.Writer,
	opts ...Option,
) *Shell {
	s := &Shell{
		eventUseCase:        eventUseCase,
		participantUseCase:  participantUseCase,
		registrationUseCase: registrationUseCase,
		reportUseCase:       reportUseCase,
		tr:                  tr,
		in:                  bufio.NewScanner(in),
		out:                 out,
		locale:              "en",
		location:            time.Local,
		log:                 zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the main menu until the user exits or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.say("app.title", nil)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := s.menu("menu.main")
		if err != nil {
			return s.closed(err)
		}
		switch choice {
		case 1:
			err = s.eventMenu(ctx)
		case 2:
			err = s.participantMenu(ctx)
		case 3:
			err = s.registrationMenu(ctx)
		case 4:
			err = s.reportMenu(ctx)
		case 5:
			s.say("app.goodbye", nil)
			return nil
		default:
			s.say("invalid.choice", nil)
		}
		if err != nil {
			return s.closed(err)
		}
	}
}

func (s *Shell) closed(err error) error {
	if errors.Is(err, errClosed) {
		return nil
	}
	return err
}

func (s *Shell) text(key string, data map[string]any) string {
	return s.tr.T(s.locale, key, data)
}

func (s *Shell) say(key string, data map[string]any) {
	fmt.Fprintln(s.out, s.text(key, data))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) heading(key string) {
	fmt.Fprintf(s.out, "\n=== %s ===\n", s.text(key, nil))
}

func (s *Shell) fail(err error) {
	s.log.Debug().Err(err).Str("code", domain.Code(err)).Msg("operation failed")
	s.println(prompt.ErrorMessage(s.tr, s.locale, err))
}

// report prints the outcome of a mutation addressed by id.
func (s *Shell) report(res domain.Result, err error, okKey string) {
	switch {
	case err != nil:
		s.fail(err)
	case res == domain.NotFound:
		s.say("result.not_found", nil)
	case res == domain.Success:
		s.say(okKey, nil)
	default:
		s.say("result.failed", nil)
	}
}

func (s *Shell) readLine(key string) (string, error) {
	fmt.Fprint(s.out, s.text(key, nil))
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) menu(key string) (int, error) {
	s.println("")
	s.say(key, nil)
	line, err := s.readLine("prompt.choice")
	if err != nil {
		return 0, err
	}
	n, err := prompt.ParseInt(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// ask reprompts until parse accepts the answer.
func ask[T any](s *Shell, key, invalidKey string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(key)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.say(invalidKey, nil)
	}
}

func (s *Shell) askString(key string) (string, error) {
	return s.readLine(key)
}

func (s *Shell) askID(key string) (int64, error) {
	return ask(s, key, "invalid.number", prompt.ParseID)
}

func (s *Shell) askInt(key string) (int, error) {
	return ask(s, key, "invalid.number", prompt.ParseInt)
}

func (s *Shell) askDate(key string) (time.Time, error) {
	return ask(s, key, "invalid.date", prompt.ParseDate)
}

func (s *Shell) askOptionalDate(key string) (*time.Time, error) {
	return ask(s, key, "invalid.date", prompt.ParseOptionalDate)
}

func (s *Shell) askUpper(key string) (string, error) {
	line, err := s.readLine(key)
	return strings.ToUpper(line), err
}

// confirm requires the literal answer "yes".
func (s *Shell) confirm() (bool, error) {
	line, err := s.readLine("prompt.confirm")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "yes"), nil
}
