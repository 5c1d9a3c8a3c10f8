package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogLockIDToken describes lock ID log entry.
	LogLockIDToken = "lock_id"
	// LogLockNameToken describes lock name log entry.
	LogLockNameToken = "lock_name"
	// LogOperationToken describes remote operation ID log entry.
	LogOperationToken = "operation"
	// LogOperationTypeToken describes remote operation type log entry.
	LogOperationTypeToken = "operation_type"
	// LogOperationStatusToken describes remote operation status log entry.
	LogOperationStatusToken = "operation_status"
	// LogAttemptToken describes retry attempt log entry.
	LogAttemptToken = "attempt"
	// LogDevicePropertyToken describes device property log entry.
	LogDevicePropertyToken = "device_prop"
	// LogUserNameToken describes user name log entry.
	LogUserNameToken = "user"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
	// LogRequestIDToken describes outgoing request ID log entry.
	LogRequestIDToken = "request_id"
)

const (
	// LogRoleNameToken describes security role log entry.
	LogRoleNameToken = "role"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogSecretToken describes secret log entry.
	LogSecretToken = "secret"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogTopicToken describes MQTT topic log entry.
	LogTopicToken = "topic"
)
