package domain

import "github.com/suphotsudsee/queue-booking-app-v2/pkg/types"

// SlotCandidate кандидат на свободный интервал времени у одного сотрудника
type SlotCandidate struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	Available       bool
	StaffID         int64
	ServiceID       int64
	DurationMinutes int
}
