package entity

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
)

const (
	MaxNoteLength       = 500
	MaxReflectionLength = 1000
	MinRating           = 1
	MaxRating           = 5
)

type VirtueEntry struct {
	Completed    bool      `json:"completed"`
	Note         string    `json:"note"`
	LastModified time.Time `json:"last_modified"`
}

type RecordStats struct {
	CompletedCount int `json:"completed_count"`
	// Percent of the thirteen virtues completed, rounded
	CompletionRate int `json:"completion_rate"`
}

// VirtueRecord is one user's activity for one calendar day.
// Year and Week are fixed when the record is created.
type VirtueRecord struct {
	ID              uuid.UUID                `json:"id"`
	UserID          uuid.UUID                `json:"uid"`
	Date            time.Time                `json:"date"`
	Year            int                      `json:"year"`
	Week            int                      `json:"week"`
	Virtues         [VirtueCount]VirtueEntry `json:"virtues"`
	FocusVirtue     *int                     `json:"focus_virtue"`
	DailyReflection string                   `json:"daily_reflection"`
	DailyRating     *int                     `json:"daily_rating"`
	Stats           RecordStats              `json:"stats"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// NewVirtueRecord builds the default record for a user-day. All thirteen entries
// start uncompleted and the focus virtue is copied from the user's setting.
func NewVirtueRecord(userID uuid.UUID, date time.Time, focus *int, now time.Time) *VirtueRecord {
	day := NormalizeDate(date)
	year, week := ISOWeek(day)
	record := &VirtueRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      day,
		Year:      year,
		Week:      week,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range record.Virtues {
		record.Virtues[i] = VirtueEntry{LastModified: now}
	}
	if focus != nil && ValidVirtueIndex(*focus) {
		f := *focus
		record.FocusVirtue = &f
	}
	record.RecomputeStats()
	return record
}

// ToggleVirtue sets the completion state and note of one virtue.
// Nothing is modified when validation fails.
func (r *VirtueRecord) ToggleVirtue(index int, completed bool, note string, now time.Time) error {
	if !ValidVirtueIndex(index) {
		return errorvalues.NewValidationError("virtue_index", fmt.Sprintf("must be between 0 and %d", VirtueCount-1))
	}
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errorvalues.NewValidationError("note", fmt.Sprintf("must be at most %d characters", MaxNoteLength))
	}
	r.Virtues[index] = VirtueEntry{
		Completed:    completed,
		Note:         note,
		LastModified: now,
	}
	r.RecomputeStats()
	return nil
}

// SetReflection overwrites only the provided fields: a nil argument keeps the stored value.
func (r *VirtueRecord) SetReflection(reflection *string, rating *int) error {
	if reflection != nil && utf8.RuneCountInString(*reflection) > MaxReflectionLength {
		return errorvalues.NewValidationError("reflection", fmt.Sprintf("must be at most %d characters", MaxReflectionLength))
	}
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return errorvalues.NewValidationError("rating", fmt.Sprintf("must be between %d and %d", MinRating, MaxRating))
	}
	if reflection != nil {
		r.DailyReflection = *reflection
	}
	if rating != nil {
		v := *rating
		r.DailyRating = &v
	}
	return nil
}

func (r *VirtueRecord) RecomputeStats() {
	count := 0
	for _, v := range r.Virtues {
		if v.Completed {
			count++
		}
	}
	r.Stats = RecordStats{
		CompletedCount: count,
		CompletionRate: CompletionRate(count),
	}
}

// CompletedVirtues lists the indexes of completed virtues in ascending order.
func (r *VirtueRecord) CompletedVirtues() []int {
	result := make([]int, 0, r.Stats.CompletedCount)
	for i, v := range r.Virtues {
		if v.Completed {
			result = append(result, i)
		}
	}
	return result
}

func CompletionRate(completed int) int {
	return int(math.Round(float64(completed) / VirtueCount * 100))
}
