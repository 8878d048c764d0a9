package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldEventType  = "event_type"
	FieldCategory   = "category"
	FieldEntityID   = "entity_id"
	FieldCounterKey = "counter_key"

	FieldPartitionId = "partition_id"
)
