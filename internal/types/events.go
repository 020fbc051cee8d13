package types

// Event is implemented by everything published on an EventSink
type Event interface {
	EventType() string
}

// EventSink receives upload progress events
type EventSink func(Event)

// UploadStartedEvent is sent when a platform sequence begins
type UploadStartedEvent struct {
	Platform Platform `json:"platform"`
	Videos   int      `json:"videos"`
}

func (e UploadStartedEvent) EventType() string { return "upload_started" }

// UploadProgressEvent is sent after each published video of a batch
type UploadProgressEvent struct {
	Platform Platform `json:"platform"`
	Posted   int      `json:"posted"`
	Total    int      `json:"total"`
	SourceID string   `json:"sourceId,omitempty"`
}

func (e UploadProgressEvent) EventType() string { return "upload_progress" }

// UploadCompleteEvent is sent when every video of a platform was published
type UploadCompleteEvent struct {
	Platform    Platform `json:"platform"`
	Posts       int      `json:"posts"`
	CompletedAt string   `json:"completedAt"`
}

func (e UploadCompleteEvent) EventType() string { return "upload_complete" }

// UploadErrorEvent is sent when a platform sequence aborts
type UploadErrorEvent struct {
	Platform Platform `json:"platform"`
	Step     string   `json:"step,omitempty"`
	Error    string   `json:"error"`
}

func (e UploadErrorEvent) EventType() string { return "upload_error" }

// ContextClosedEvent is sent once the shared browser context is closed
type ContextClosedEvent struct {
	Reason string `json:"reason"`
}

func (e ContextClosedEvent) EventType() string { return "context_closed" }
