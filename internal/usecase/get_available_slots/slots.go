package get_available_slots

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// generateSlots строит свободные слоты интерпретаторов на каждую дату диапазона
// Слоты длиной duration начинаются с начала окна расписания и идут с шагом step, пока слот помещается в окно
// Слоты, пересекающие активные записи, а также прошедшие даты и уже начавшиеся слоты сегодня отбрасываются
func generateSlots(
	schedules []*domain.Schedule,
	appointments []*domain.Appointment,
	dateFrom, dateTo time.Time,
	now time.Time,
	settings Settings,
) []domain.TimeSlot {
	byDay := make(map[domain.DayOfWeek][]*domain.Schedule)
	for _, s := range schedules {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	busy := make(map[busyKey][]domain.Interval)
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		key := busyKey{date: a.Date.Format(domain.DateFormat), interpreterID: a.InterpreterID}
		busy[key] = append(busy[key], a.Interval())
	}

	currentTime := types.NewTimeString(now)
	result := make([]domain.TimeSlot, 0)

	for date := dateOnly(dateFrom); !date.After(dateOnly(dateTo)); date = date.AddDate(0, 0, 1) {
		// Прошедшие даты пропускаем целиком
		if isDateInPast(date, now) {
			continue
		}
		today := isSameDay(date, now)

		for _, schedule := range byDay[domain.DayOfWeekFromDate(date)] {
			key := busyKey{date: date.Format(domain.DateFormat), interpreterID: schedule.InterpreterID}

			for _, window := range scheduleWindows(schedule.Interval(), settings) {
				if today && window.Start.IsBefore(currentTime) {
					continue
				}
				if overlapsAny(window, busy[key]) {
					continue
				}

				result = append(result, domain.TimeSlot{
					Date:          date,
					InterpreterID: schedule.InterpreterID,
					StartTime:     window.Start,
					EndTime:       window.End,
				})
			}
		}
	}

	return result
}

// scheduleWindows нарезает окно расписания на слоты
func scheduleWindows(window domain.Interval, settings Settings) []domain.Interval {
	result := make([]domain.Interval, 0)
	if settings.SlotDurationMinutes <= 0 || settings.SlotStepMinutes <= 0 {
		return result
	}

	start := window.Start
	for {
		end, err := start.AddMinutes(settings.SlotDurationMinutes)
		if err != nil || end.IsAfter(window.End) {
			break
		}

		result = append(result, domain.Interval{Start: start, End: end})

		start, err = start.AddMinutes(settings.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return result
}

// groupSlots группирует слоты по (дата, интерпретатор)
// Группы упорядочены по дате, затем по интерпретатору; слоты внутри группы по времени начала
func groupSlots(slots []domain.TimeSlot) []domain.GroupedAvailability {
	index := make(map[busyKey]int)
	groups := make([]domain.GroupedAvailability, 0)

	for _, slot := range slots {
		key := busyKey{date: slot.Date.Format(domain.DateFormat), interpreterID: slot.InterpreterID}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.GroupedAvailability{
				Date:          slot.Date,
				InterpreterID: slot.InterpreterID,
				Slots:         make([]domain.TimeSlot, 0),
			})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		da, db := groups[a].Date.Format(domain.DateFormat), groups[b].Date.Format(domain.DateFormat)
		if da != db {
			return da < db
		}
		return groups[a].InterpreterID.String() < groups[b].InterpreterID.String()
	})

	for i := range groups {
		slots := groups[i].Slots
		sort.SliceStable(slots, func(a, b int) bool {
			return slots[a].StartTime.IsBefore(slots[b].StartTime)
		})
	}

	return groups
}

type busyKey struct {
	date          string
	interpreterID uuid.UUID
}

func overlapsAny(window domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if window.Overlaps(b) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	return date.Before(time.Date(y, m, d, 0, 0, 0, 0, date.Location()))
}
