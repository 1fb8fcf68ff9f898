// internal/app/features/groups/types.go
package groups

import "encoding/json"

// createGroupRequest is the POST /groups body. Extra fields are ignored;
// the original clients send form state the server never stored.
type createGroupRequest struct {
	GroupName   string   `json:"group_name"`
	Members     []string `json:"members"`
	ProjectType string   `json:"project_type"`
}

// updateDayRequest is the PUT /groups/{groupID}/day envelope. Data stays
// raw here; it is decoded into the typed day-stage struct once the day
// number is known.
type updateDayRequest struct {
	Day  int             `json:"day"`
	Data json.RawMessage `json:"data"`
}

// updateDayResponse echoes the updated day number back to the client.
type updateDayResponse struct {
	Message string `json:"message"`
	Day     int    `json:"day"`
}
