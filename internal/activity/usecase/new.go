package usecase

import (
	"time"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/eventmeta"
	"sppd-activity/internal/matrix"
	"sppd-activity/pkg/datemath"
	pkgLog "sppd-activity/pkg/log"
)

// Config holds the matrix settings the use case needs.
type Config struct {
	Layout      matrix.Layout
	SheetPrefix string
	// VerifyBeforeCommit re-reads the target cell before writing and refuses
	// to overwrite a populated one.
	VerifyBeforeCommit bool
}

type implUseCase struct {
	l          pkgLog.Logger
	matrixRepo repository.MatrixRepository
	eventRepo  repository.EventRepository
	parser     *eventmeta.Parser
	dateMath   *datemath.Parser
	cfg        Config
	now        func() time.Time
}

// New creates a new activity UseCase instance.
func New(
	l pkgLog.Logger,
	matrixRepo repository.MatrixRepository,
	eventRepo repository.EventRepository,
	parser *eventmeta.Parser,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.SheetPrefix == "" {
		cfg.SheetPrefix = "Giat"
	}
	return &implUseCase{
		l:          l,
		matrixRepo: matrixRepo,
		eventRepo:  eventRepo,
		parser:     parser,
		dateMath:   dateMath,
		cfg:        cfg,
		now:        time.Now,
	}
}
