package training

import (
	"fmt"
	"strconv"
	"time"
)

type TrainingStart struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

type TrainingFinish struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Calories  int       `json:"calories" validate:"gte=0"`
}

type WeightReport struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	// Weight in kilos
	Weight float64 `json:"weight" validate:"gt=0,lt=500"`
}

// Event (DB level type) is a single entry of a member's training log:
//   - training started (with timestamp)
//   - training finished (with timestamp and calories burned)
//   - weight report (with timestamp and weight in kilos)
type Event struct {
	ID        int               `json:"id"`
	MemberID  int               `json:"memberId"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewTrainingStartEvent(memberID int, ts TrainingStart) Event {
	return Event{
		ID:        ts.ID,
		MemberID:  memberID,
		Type:      EventTypeTrainingStarted,
		Timestamp: ts.Timestamp,
		Data:      map[string]string{},
	}
}

func NewTrainingFinishEvent(memberID int, tf TrainingFinish) Event {
	return Event{
		ID:        tf.ID,
		MemberID:  memberID,
		Type:      EventTypeTrainingFinished,
		Timestamp: tf.Timestamp,
		Data: map[string]string{
			"calories": fmt.Sprintf("%d", tf.Calories),
		},
	}
}

func NewWeightReportEvent(memberID int, wr WeightReport) Event {
	return Event{
		ID:        wr.ID,
		MemberID:  memberID,
		Type:      EventTypeWeightReport,
		Timestamp: wr.Timestamp,
		Data: map[string]string{
			"weight": strconv.FormatFloat(wr.Weight, 'f', -1, 64),
		},
	}
}

// Calories burned in a finished training. False for other event types or bad data.
func (e *Event) Calories() (int, bool) {
	if e.Type != EventTypeTrainingFinished {
		return 0, false
	}
	calories, err := strconv.Atoi(e.Data["calories"])
	if err != nil {
		return 0, false
	}
	return calories, true
}

// Weight reported in kilos. False for other event types or bad data.
func (e *Event) Weight() (float64, bool) {
	if e.Type != EventTypeWeightReport {
		return 0, false
	}
	weight, err := strconv.ParseFloat(e.Data["weight"], 64)
	if err != nil {
		return 0, false
	}
	return weight, true
}

// EventType can be one of:
//   - training_started
//   - training_finished
//   - weight_report
type EventType string

const (
	EventTypeTrainingStarted  EventType = "training_started"
	EventTypeTrainingFinished EventType = "training_finished"
	EventTypeWeightReport     EventType = "weight_report"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeTrainingStarted,
		EventTypeTrainingFinished,
		EventTypeWeightReport:
		return true
	default:
		return false
	}
}
