package response

import (
	"github.com/jinzhu/copier"

	"meetbook/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ResyncResponse struct {
	Reference   string `json:"reference"`
	MeetingUUID string `json:"meeting_uuid"`
	MeetingID   int64  `json:"meeting_id"`
	JoinURL     string `json:"join_url"`
	Passcode    string `json:"passcode"`
}

func NewResyncResponse(result *commands.ResyncResult) (*ResyncResponse, error) {
	resp := &ResyncResponse{Reference: result.Reference}
	if err := copier.Copy(resp, &result.Provisioning); err != nil {
		return nil, err
	}
	return resp, nil
}
