package shared

// Asynq task types shared between the API (enqueue side)
// and the worker (processing side).
const (
	TypeNotifyNewInquiry    = "notify:new_inquiry"
	TypeNotifyNewSubscriber = "notify:new_subscriber"
)

// NotifyInquiryPayload is the task payload for a new contact inquiry.
type NotifyInquiryPayload struct {
	InquiryID string `json:"inquiry_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

// NotifySubscriberPayload is the task payload for a new newsletter subscriber.
type NotifySubscriberPayload struct {
	SubscriberID string `json:"subscriber_id"`
	Email        string `json:"email"`
}
