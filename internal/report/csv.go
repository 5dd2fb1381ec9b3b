package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
)

var taskHeader = []string{
	"ID",
	"Equipment",
	"Equipment Status",
	"Scheduled Date",
	"Type",
	"Priority",
	"Status",
	"Assigned To",
	"Estimated Cost",
	"Actual Cost",
	"Actual Duration",
	"Completed Date",
	"Location",
}

// WriteTasksCSV writes rows exactly as produced by the task listing.
func WriteTasksCSV(w io.Writer, rows []dto.TaskListDTO) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(taskHeader); err != nil {
		return err
	}

	for _, r := range rows {
		completed := ""
		if r.CompletedDate != nil {
			completed = r.CompletedDate.Format(time.DateOnly)
		}

		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.EquipmentName,
			r.EquipmentStatus,
			r.ScheduledDate.Format(time.DateOnly),
			r.MaintenanceType,
			r.Priority,
			r.DisplayStatus,
			r.AssigneeName,
			strconv.FormatFloat(r.EstimatedCost, 'f', 2, 64),
			strconv.FormatFloat(r.ActualCost, 'f', 2, 64),
			strconv.Itoa(r.ActualDuration),
			completed,
			r.Location,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
