package search_interpreters

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// buildFilter проверяет критерии и собирает фильтр репозитория
// Некорректные критерии отклоняются до обращения к БД
func buildFilter(req *Request) (domain.InterpreterFilter, error) {
	var filter domain.InterpreterFilter

	if v := trimmed(req.Modality); v != nil {
		m := domain.Modality(strings.ToUpper(*v))
		if !m.Valid() {
			return filter, fmt.Errorf("%w: unknown modality %q", ErrInvalidInput, *v)
		}
		filter.Modality = &m
	}

	if v := trimmed(req.Gender); v != nil {
		g := domain.Gender(strings.ToUpper(*v))
		if !g.Valid() {
			return filter, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, *v)
		}
		filter.Gender = &g
	}

	filter.UF = trimmed(req.UF)
	filter.City = trimmed(req.City)
	filter.Neighborhood = trimmed(req.Neighborhood)
	filter.NamePattern = trimmed(req.Name)

	if filter.UF != nil && len(*filter.UF) != 2 {
		return filter, fmt.Errorf("%w: uf must have exactly 2 characters", ErrInvalidInput)
	}

	if err := applySpecialties(&filter, req); err != nil {
		return filter, err
	}

	if err := applyTimeWindow(&filter, req); err != nil {
		return filter, err
	}

	page, err := parsePage(req.Page, req.Size)
	if err != nil {
		return filter, err
	}
	filter.Page = page

	return filter, nil
}

func applySpecialties(filter *domain.InterpreterFilter, req *Request) error {
	for _, raw := range req.SpecialtyIDs {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return fmt.Errorf("%w: specialty id %q: %v", ErrInvalidInput, part, err)
			}
			filter.SpecialtyIDs = append(filter.SpecialtyIDs, id)
		}
	}

	filter.SpecialtyMatch = domain.SpecialtyMatchAny
	if v := trimmed(req.SpecialtyMatch); v != nil {
		m := domain.SpecialtyMatch(strings.ToUpper(*v))
		if !m.Valid() {
			return fmt.Errorf("%w: specialtyMatch must be ANY or ALL", ErrInvalidInput)
		}
		filter.SpecialtyMatch = m
	}

	return nil
}

// applyTimeWindow окно требует обе границы и день (явный или из даты)
// День или дата без окна, как и день, не совпадающий с датой, отклоняются
func applyTimeWindow(filter *domain.InterpreterFilter, req *Request) error {
	if v := trimmed(req.Day); v != nil {
		day, err := domain.ParseDayOfWeek(*v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Day = &day
	}

	if v := trimmed(req.Date); v != nil {
		date, err := time.Parse(domain.DateFormat, *v)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.Date = &date
	}

	if filter.Day != nil && filter.Date != nil {
		if actual := domain.DayOfWeekFromDate(*filter.Date); actual != *filter.Day {
			return fmt.Errorf("%w: dayOfWeek %s contradicts date %s (%s)",
				ErrInvalidInput, *filter.Day, filter.Date.Format(domain.DateFormat), actual)
		}
	}

	start, end := trimmed(req.RequestedStart), trimmed(req.RequestedEnd)
	if start == nil && end == nil {
		if filter.Day != nil || filter.Date != nil {
			return fmt.Errorf("%w: dayOfWeek and date require requestedStart and requestedEnd", ErrInvalidInput)
		}
		return nil
	}
	if start == nil || end == nil {
		return fmt.Errorf("%w: requestedStart and requestedEnd must be given together", ErrInvalidInput)
	}

	interval, err := parseInterval(*start, *end)
	if err != nil {
		return err
	}

	if filter.Day == nil && filter.Date == nil {
		return fmt.Errorf("%w: a time window requires day or date", ErrInvalidInput)
	}

	filter.RequestedStart = &interval.Start
	filter.RequestedEnd = &interval.End

	return nil
}

func parseInterval(start, end string) (domain.Interval, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: requestedStart: %v", ErrInvalidInput, err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: requestedEnd: %v", ErrInvalidInput, err)
	}

	interval, err := domain.NewInterval(s, e)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	return interval, nil
}

func parsePage(pageRaw, sizeRaw *string) (domain.Pagination, error) {
	page := domain.Pagination{Page: 0, Size: domain.DefaultPageSize}

	if v := trimmed(pageRaw); v != nil {
		p, err := strconv.Atoi(*v)
		if err != nil || p < 0 {
			return page, fmt.Errorf("%w: page must be a non-negative integer", ErrInvalidInput)
		}
		page.Page = p
	}

	if v := trimmed(sizeRaw); v != nil {
		s, err := strconv.Atoi(*v)
		if err != nil || s < 1 || s > domain.MaxPageSize {
			return page, fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidInput, domain.MaxPageSize)
		}
		page.Size = s
	}

	return page, nil
}

// trimmed пустые строки считаются отсутствующими
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
