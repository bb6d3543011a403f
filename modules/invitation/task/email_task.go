package task

import (
	"context"
	"encoding/json"
	"fmt"

	"collabtime-api/core/config"
	"collabtime-api/core/constants"
	"collabtime-api/core/logger"
	"collabtime-api/core/utils"

	"github.com/hibiken/asynq"
)

// InvitationEmailPayload carries everything the mail handler needs so it
// does not have to hit the database.
type InvitationEmailPayload struct {
	Email    string `json:"email"`
	TeamName string `json:"team_name"`
	Code     string `json:"code"`
}

// NewInvitationEmailTask builds the asynq task for an invitation email
func NewInvitationEmailTask(payload InvitationEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeInvitationEmail, data), nil
}

// HandleInvitationEmail sends the invitation email through SMTP
func HandleInvitationEmail(ctx context.Context, t *asynq.Task) error {
	var payload InvitationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("InvitationTask:HandleInvitationEmail:Unmarshal", err)
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("You're invited to join %s", payload.TeamName)
	body := fmt.Sprintf(
		"Hi,\n\nYou have been invited to join the team %q on CollabTime.\n\n"+
			"Use the invitation code below to accept:\n\n    %s\n\n"+
			"This code expires in 7 days.\n",
		payload.TeamName, payload.Code,
	)

	if err := utils.SendMail(config.Get().SMTP, payload.Email, subject, body); err != nil {
		logger.Error("InvitationTask:HandleInvitationEmail:Send", err, "email", payload.Email)
		return err
	}

	logger.Info("invitation email sent", "email", payload.Email, "team", payload.TeamName)
	return nil
}
