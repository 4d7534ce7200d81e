// Package progress aggregates a member's training log into the energy goal
// dashboard: calories burned per day against a daily goal.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/squadfit/internal/training"
)

const dateLayout = "2006-01-02"

type DayProgress struct {
	Date              string  `json:"date"`
	CaloriesBurned    int     `json:"caloriesBurned"`
	TrainingsFinished int     `json:"trainingsFinished"`
	GoalCompletion    float64 `json:"goalCompletion"`
	GoalMet           bool    `json:"goalMet"`
}

type Summary struct {
	From              string        `json:"from"`
	To                string        `json:"to"`
	DailyGoal         int           `json:"dailyGoal"`
	Days              []DayProgress `json:"days"`
	TotalCalories     int           `json:"totalCalories"`
	TotalTrainings    int           `json:"totalTrainings"`
	AverageCompletion float64       `json:"averageCompletion"`
	CurrentStreak     int           `json:"currentStreak"`
	LatestWeight      *float64      `json:"latestWeight,omitempty"`
	WeightDelta       *float64      `json:"weightDelta,omitempty"`
}

// Summarize buckets events into days calendar days starting at the date of from
// (in from's location). Events outside the window are ignored. A non-positive
// goal yields zero completion for every day.
func Summarize(events []*training.Event, goal int, from time.Time, days int) Summary {
	if days < 1 {
		days = 1
	}

	loc := from.Location()
	start := startOfDay(from, loc)

	summary := Summary{
		From:      start.Format(dateLayout),
		To:        start.AddDate(0, 0, days-1).Format(dateLayout),
		DailyGoal: goal,
		Days:      make([]DayProgress, days),
	}
	for i := range summary.Days {
		summary.Days[i].Date = start.AddDate(0, 0, i).Format(dateLayout)
	}

	var weights []*training.Event
	for _, e := range events {
		if e == nil {
			continue
		}
		idx := dayIndex(start, e.Timestamp.In(loc))
		if idx < 0 || idx >= days {
			continue
		}

		switch e.Type {
		case training.EventTypeTrainingFinished:
			day := &summary.Days[idx]
			day.TrainingsFinished++
			summary.TotalTrainings++
			if calories, ok := e.Calories(); ok {
				day.CaloriesBurned += calories
				summary.TotalCalories += calories
			}
		case training.EventTypeWeightReport:
			weights = append(weights, e)
		}
	}

	completionSum := 0.0
	for i := range summary.Days {
		day := &summary.Days[i]
		day.GoalCompletion = Completion(day.CaloriesBurned, goal)
		day.GoalMet = goal > 0 && day.CaloriesBurned >= goal
		completionSum += day.GoalCompletion
	}
	summary.AverageCompletion = roundPercent(completionSum / float64(days))
	summary.CurrentStreak = currentStreak(summary.Days)

	if len(weights) > 0 {
		sort.SliceStable(weights, func(i, j int) bool {
			return weights[i].Timestamp.Before(weights[j].Timestamp)
		})
		first, firstOK := weights[0].Weight()
		latest, latestOK := weights[len(weights)-1].Weight()
		if latestOK {
			summary.LatestWeight = &latest
			if firstOK {
				delta := math.Round((latest-first)*100) / 100
				summary.WeightDelta = &delta
			}
		}
	}

	return summary
}

// Completion is the percentage of the goal reached, capped at 100.
func Completion(calories, goal int) float64 {
	if goal <= 0 || calories <= 0 {
		return 0
	}
	pct := float64(calories) / float64(goal) * 100
	if pct > 100 {
		return 100
	}
	return roundPercent(pct)
}

// currentStreak counts consecutive days meeting the goal, going back from the
// last day. The last day is still in progress, so missing it does not break the streak.
func currentStreak(days []DayProgress) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].GoalMet {
			streak++
			continue
		}
		if i == len(days)-1 {
			continue
		}
		break
	}
	return streak
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func dayIndex(start, t time.Time) int {
	if t.Before(start) {
		return -1
	}
	day := startOfDay(t, start.Location())
	// rounding keeps DST days (23h / 25h) on the right index
	return int(math.Round(day.Sub(start).Hours() / 24))
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
