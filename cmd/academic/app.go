package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"academicevents/internal/adapters/console"
	"academicevents/internal/application"
	"academicevents/internal/config"
	"academicevents/internal/infrastructure/database"
	"academicevents/internal/infrastructure/i18n"
	"academicevents/internal/logger"
	"academicevents/pkg/tz"
)

// app wires ports: output adapters -> application (use cases) -> console adapter.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	db  *database.Provider
	tr  *i18n.Translator

	events        *application.EventService
	participants  *application.ParticipantService
	registrations *application.RegistrationService
	reports       *application.ReportService

	shellOpts []console.Option
}

func newApp(configPath string) (*app, error) {
	path := config.ResolvePath(configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log, os.Stderr)
	if cfg.DB.UsesDefaultCredentials() {
		log.Warn().Msg("using the default development database password")
	}

	loc, err := tz.Load(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: app.timezone: %w", err)
	}

	connector := database.PgxConnector{}
	if tracer := logger.NewQueryTracer(log); tracer != nil {
		connector.Tracer = tracer
	}
	db := database.NewProvider(config.FileSource{Path: path}, connector, log)

	eventRepo := database.NewEventRepository(db)
	participantRepo := database.NewParticipantRepository(db)
	registrationRepo := database.NewRegistrationRepository(db)

	tr := i18n.NewTranslator(cfg.App.Locale, log)

	return &app{
		cfg:           cfg,
		log:           log,
		db:            db,
		tr:            tr,
		events:        application.NewEventService(eventRepo, log),
		participants:  application.NewParticipantService(participantRepo, log),
		registrations: application.NewRegistrationService(registrationRepo, eventRepo, participantRepo, log),
		reports:       application.NewReportService(eventRepo, participantRepo, registrationRepo),
		shellOpts: []console.Option{
			console.WithLocale(tr.Locale()),
			console.WithLocation(loc),
			console.WithLogger(log),
		},
	}, nil
}

func (a *app) shell(in io.Reader, out io.Writer) *console.Shell {
	return console.NewShell(a.events, a.participants, a.registrations, a.reports, a.tr, in, out, a.shellOpts...)
}
