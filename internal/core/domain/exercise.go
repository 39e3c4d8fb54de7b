package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseNameMissing = errors.New("exercise name is required")
	ErrNoActiveSession     = errors.New("no active session")
)

const (
	CategoryPosture  = "posture"
	CategoryNeck     = "neck"
	CategoryBack     = "back"
	CategoryShoulder = "shoulder"
	CategoryDesk     = "desk"
	CategoryOther    = "other"
)

type CompletedExercise struct {
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Duration string   `json:"duration"`
	Level    string   `json:"level"`
	Steps    []string `json:"steps"`
}

var postureSteps = []string{
	"Stand with your feet shoulder-width apart",
	"Slowly roll your shoulders back and down",
	"Gently tuck your chin in",
	"Hold this position for 10 seconds",
	"Relax and repeat 5 times",
}

var exerciseCatalog = []Exercise{
	{ID: "posture-correction", Name: "Posture Correction", Category: CategoryPosture, Duration: "5 min", Level: "Beginner", Steps: postureSteps},
	{ID: "neck-relief", Name: "Neck Relief", Category: CategoryNeck, Duration: "5 min", Level: "Beginner", Steps: []string{
		"Sit tall with your shoulders relaxed",
		"Tilt your head toward your right shoulder",
		"Hold for 15 seconds, then return to center",
		"Repeat on the left side",
		"Finish with slow chin tucks",
	}},
	{ID: "lower-back-stretch", Name: "Lower Back Stretch", Category: CategoryBack, Duration: "7 min", Level: "Beginner", Steps: []string{
		"Lie on your back with knees bent",
		"Pull one knee gently toward your chest",
		"Hold for 20 seconds and switch legs",
		"Rock both knees side to side",
		"Rest flat for a few breaths",
	}},
	{ID: "shoulder-mobility", Name: "Shoulder Mobility", Category: CategoryShoulder, Duration: "5 min", Level: "Beginner", Steps: []string{
		"Stand with arms relaxed at your sides",
		"Make ten slow forward shoulder circles",
		"Make ten slow backward shoulder circles",
		"Squeeze your shoulder blades together for 5 seconds",
		"Shake out your arms",
	}},
	{ID: "desk-stretches", Name: "Desk Stretches", Category: CategoryDesk, Duration: "4 min", Level: "Beginner", Steps: []string{
		"Sit at the front edge of your chair",
		"Interlace your fingers and reach overhead",
		"Twist gently to each side",
		"Stretch each wrist for 10 seconds",
	}},
}

var recommendedIDs = []string{"neck-relief", "lower-back-stretch", "shoulder-mobility"}

// ExerciseCatalog returns a copy of the built-in guided exercises.
func ExerciseCatalog() []Exercise {
	out := make([]Exercise, len(exerciseCatalog))
	copy(out, exerciseCatalog)
	return out
}

func FindExercise(id string) (Exercise, error) {
	for _, e := range exerciseCatalog {
		if e.ID == id {
			return e, nil
		}
	}
	return Exercise{}, ErrExerciseNotFound
}

func RecommendedExercises() []Exercise {
	out := make([]Exercise, 0, len(recommendedIDs))
	for _, id := range recommendedIDs {
		if e, err := FindExercise(id); err == nil {
			out = append(out, e)
		}
	}
	return out
}

func NewCompletedExercise(name, category string, at time.Time) (CompletedExercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CompletedExercise{}, ErrExerciseNameMissing
	}
	return CompletedExercise{
		Name:        name,
		Category:    strings.ToLower(strings.TrimSpace(category)),
		CompletedAt: at.UTC(),
	}, nil
}

// PlayerState tracks a user's progress through a guided exercise.
type PlayerState struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	Step       int    `json:"step"`
	TotalSteps int    `json:"totalSteps"`
	Text       string `json:"text"`
	Finished   bool   `json:"finished"`
}

func NewPlayerState(e Exercise) PlayerState {
	return PlayerState{
		ExerciseID: e.ID,
		Name:       e.Name,
		Step:       1,
		TotalSteps: len(e.Steps),
		Text:       e.Steps[0],
	}
}

// Advance moves to the next step. Advancing from the last step marks the
// sequence finished.
func (p *PlayerState) Advance(e Exercise) {
	if p.Step >= p.TotalSteps {
		p.Finished = true
		p.Text = ""
		return
	}
	p.Step++
	p.Text = e.Steps[p.Step-1]
}
