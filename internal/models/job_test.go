package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobAcceptsApplications(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		status   JobStatus
		deadline *time.Time
		want     bool
	}{
		{"open without deadline", JobStatusOpen, nil, true},
		{"open before deadline", JobStatusOpen, &future, true},
		{"open past deadline", JobStatusOpen, &past, false},
		{"closed", JobStatusClosed, nil, false},
		{"draft", JobStatusDraft, &future, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &Job{Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, job.AcceptsApplications(now))
		})
	}
}

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, ApplicationStatusPending.Valid())
	assert.True(t, ApplicationStatusOffered.Valid())
	assert.False(t, ApplicationStatus("bogus").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}
