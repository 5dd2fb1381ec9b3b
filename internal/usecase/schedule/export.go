package schedule

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/report"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

type ExportResult struct {
	Body       []byte
	Rows       int
	ArchiveKey string
}

// ExportTasks renders the task listing as CSV. The archive copy and the
// audit line are best effort; neither can fail the download.
type ExportTasks struct {
	list     *ListTasks
	archiver report.Archiver
	audit    *audit.Dispatcher
	clock    timezone.Clock
	log      *zap.Logger
}

func NewExportTasks(
	list *ListTasks,
	archiver report.Archiver,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	log *zap.Logger,
) *ExportTasks {
	if archiver == nil {
		archiver = report.NopArchiver{}
	}
	return &ExportTasks{
		list:     list,
		archiver: archiver,
		audit:    audit,
		clock:    clock,
		log:      log,
	}
}

func (uc *ExportTasks) Execute(
	ctx context.Context,
	actor uint,
	filter calendar.Filter,
) (*ExportResult, error) {

	rows, err := uc.list.Execute(ctx, filter, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteTasksCSV(&buf, rows); err != nil {
		return nil, err
	}

	res := &ExportResult{Body: buf.Bytes(), Rows: len(rows)}

	key, err := uc.archiver.Archive(ctx, "maintenance", res.Body, uc.clock.Now())
	if err != nil {
		uc.log.Warn("report archive failed", zap.Error(err))
	}
	res.ArchiveKey = key

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID: actor,
			Action: "report_exported",
			Entity: "report",
			Details: map[string]any{
				"report":      "maintenance",
				"rows":        res.Rows,
				"archive_key": key,
			},
		})
	}

	return res, nil
}
