package model

// NotificationTask is the unit queued for the notification worker. Target is
// either a user id (panel push) or an email address (contains "@", mail path).
type NotificationTask struct {
	Target  string `json:"target"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// NotificationEvent is the JSON frame pushed over a live connection.
type NotificationEvent struct {
	Message string `json:"message"`
}
