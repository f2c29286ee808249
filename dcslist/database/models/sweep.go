package models

import "time"

// ExpiredServer identifies a server whose bump was cleared by a sweep.
type ExpiredServer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SweepReport is the bump-expiry job's result contract. The sweep is
// idempotent; a run that clears nothing is still a success.
type SweepReport struct {
	Success        bool            `json:"success"`
	ExpiredCount   int             `json:"expired_count"`
	ExpiredServers []ExpiredServer `json:"expired_servers"`
	CheckedAt      time.Time       `json:"checked_at"`
}
