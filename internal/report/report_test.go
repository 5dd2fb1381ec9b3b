package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
)

func TestWriteTasksCSV(t *testing.T) {
	done := time.Date(2026, 10, 10, 15, 0, 0, 0, time.UTC)
	rows := []dto.TaskListDTO{
		{
			ID:              7,
			EquipmentName:   "Treadmill, Pro 5",
			EquipmentStatus: "Available",
			ScheduledDate:   time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC),
			MaintenanceType: "Belt check",
			Priority:        "High",
			Status:          "Completed",
			DisplayStatus:   "Completed",
			AssigneeName:    "Dana",
			EstimatedCost:   120,
			ActualCost:      99.5,
			ActualDuration:  45,
			CompletedDate:   &done,
			Location:        "Floor 1",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTasksCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Equipment,Equipment Status"))
	assert.Equal(t,
		`7,"Treadmill, Pro 5",Available,2026-10-09,Belt check,High,Completed,Dana,120.00,99.50,45,2026-10-10,Floor 1`,
		lines[1],
	)
}

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Archiver_Archive(t *testing.T) {
	client := &fakeS3{}
	a := NewS3Archiver(client, "gym-reports")
	at := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	key, err := a.Archive(context.Background(), "maintenance", []byte("a,b\n"), at)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "reports/2026/10/maintenance-"))
	assert.True(t, strings.HasSuffix(key, ".csv"))
	assert.Equal(t, "gym-reports", aws.ToString(client.in.Bucket))
	assert.Equal(t, key, aws.ToString(client.in.Key))
	assert.Equal(t, "a,b\n", string(client.body))
}

func TestS3Archiver_Error(t *testing.T) {
	a := NewS3Archiver(&fakeS3{err: errors.New("denied")}, "b")
	_, err := a.Archive(context.Background(), "maintenance", nil, time.Now())
	assert.ErrorContains(t, err, "denied")
}

func TestObjectKey_Unique(t *testing.T) {
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, ObjectKey("x", at), ObjectKey("x", at))
}
