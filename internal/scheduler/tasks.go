package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskContactFollowUp reminds the team about an unhandled contact submission.
const TaskContactFollowUp = "contact.followup"

type ContactFollowUpPayload struct {
	SubmissionID string `json:"submissionId"`
}

func NewContactFollowUpTask(submissionID uuid.UUID) (*asynq.Task, error) {
	data, err := json.Marshal(ContactFollowUpPayload{SubmissionID: submissionID.String()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactFollowUp, data), nil
}

func ParseContactFollowUpPayload(task *asynq.Task) (uuid.UUID, error) {
	var payload ContactFollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(payload.SubmissionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid submission id %q: %w", payload.SubmissionID, err)
	}
	return id, nil
}

// followUpTaskID makes enqueueing idempotent per submission.
func followUpTaskID(submissionID uuid.UUID) string {
	return TaskContactFollowUp + ":" + submissionID.String()
}
