package model

// HealthStatusOK is the status value reported by a healthy process.
const HealthStatusOK = "OK"

// HealthStatus is the response body of the health-check endpoint.
type HealthStatus struct {
	// Status is "OK" when the service is able to accept scans.
	Status string `json:"status"`
}

// NewHealthStatus returns a healthy status.
func NewHealthStatus() HealthStatus {
	return HealthStatus{Status: HealthStatusOK}
}
