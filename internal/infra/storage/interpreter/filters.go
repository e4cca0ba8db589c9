package interpreter

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/psqlbuilder"
)

var searchColumns = []string{
	"i.id",
	"i.name",
	"i.email",
	"i.phone",
	"i.gender",
	"i.modality",
	"i.rating",
	"i.description",
	"i.video_url",
	"i.created_at",
	"i.updated_at",
}

// searchOption добавляет к запросу одно условие фильтра, если оно задано
type searchOption func(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder

// Порядок важен только для читаемости SQL: все условия объединяются через AND
var searchOptions = []searchOption{
	withModality,
	withGender,
	withLocation,
	withSpecialties,
	withAvailability,
	withoutBookedOnDate,
	withName,
}

// buildSearchQuery собирает запрос поиска интерпретаторов из опциональных условий
func buildSearchQuery(filter domain.InterpreterFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(searchColumns...).
		Distinct().
		From("interpreters i")

	for _, apply := range searchOptions {
		builder = apply(builder, filter)
	}

	page := filter.Page.Normalize()

	return builder.
		OrderBy("i.id ASC").
		Limit(page.Limit()).
		Offset(page.Offset())
}

func withModality(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	if f.Modality == nil {
		return b
	}
	return b.Where(squirrel.Eq{"i.modality": *f.Modality})
}

func withGender(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	if f.Gender == nil {
		return b
	}
	return b.Where(squirrel.Eq{"i.gender": *f.Gender})
}

// withLocation все условия адреса относятся к одной и той же локации
func withLocation(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	if !f.HasLocation() {
		return b
	}

	b = b.Join("interpreter_locations l ON l.interpreter_id = i.id")

	if f.UF != nil {
		b = b.Where(squirrel.Eq{"l.uf": strings.ToUpper(*f.UF)})
	}
	if f.City != nil {
		b = b.Where(squirrel.ILike{"l.city": containsPattern(*f.City)})
	}
	if f.Neighborhood != nil {
		b = b.Where(squirrel.ILike{"l.neighborhood": containsPattern(*f.Neighborhood)})
	}

	return b
}

// withSpecialties ANY: есть хотя бы одна из специальностей, ALL: есть все
func withSpecialties(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	ids := uniqueIDs(f.SpecialtyIDs)
	if len(ids) == 0 {
		return b
	}

	// Подзапрос строится с плейсхолдерами "?", внешний builder заменит их на $N
	sub := squirrel.Select("isp.interpreter_id").
		From("interpreter_specialties isp").
		Where(squirrel.Eq{"isp.specialty_id": ids})

	if f.SpecialtyMatch == domain.SpecialtyMatchAll {
		sub = sub.
			GroupBy("isp.interpreter_id").
			Having("COUNT(DISTINCT isp.specialty_id) = ?", len(ids))
	}

	sql, args, err := sub.ToSql()
	if err != nil {
		// подзапрос не собрался: условие, которое не совпадет ни с одной строкой
		return b.Where("FALSE")
	}

	return b.Where(squirrel.Expr("i.id IN ("+sql+")", args...))
}

// withAvailability окно расписания в этот день должно полностью содержать запрошенный интервал
func withAvailability(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	day, ok := requestedDay(f)
	if !ok || !f.HasTimeWindow() {
		return b
	}

	return b.
		Join("schedules s ON s.interpreter_id = i.id").
		Where(squirrel.Eq{"s.day": day}).
		Where(squirrel.LtOrEq{"s.start_time": *f.RequestedStart}).
		Where(squirrel.GtOrEq{"s.end_time": *f.RequestedEnd})
}

// withoutBookedOnDate исключает интерпретаторов с активной записью, пересекающей окно в эту дату
func withoutBookedOnDate(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	if f.Date == nil || !f.HasTimeWindow() {
		return b
	}

	statuses := make([]string, len(domain.ActiveAppointmentStatuses))
	for i, s := range domain.ActiveAppointmentStatuses {
		statuses[i] = string(s)
	}

	sub := squirrel.Select("a.interpreter_id").
		From("appointments a").
		Where(squirrel.Eq{"a.date": f.Date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"a.status": statuses}).
		Where(squirrel.Lt{"a.start_time": *f.RequestedEnd}).
		Where(squirrel.Gt{"a.end_time": *f.RequestedStart})

	sql, args, err := sub.ToSql()
	if err != nil {
		return b.Where("FALSE")
	}

	return b.Where(squirrel.Expr("i.id NOT IN ("+sql+")", args...))
}

func withName(b squirrel.SelectBuilder, f domain.InterpreterFilter) squirrel.SelectBuilder {
	if f.NamePattern == nil {
		return b
	}
	return b.Where(squirrel.ILike{"i.name": containsPattern(*f.NamePattern)})
}

// requestedDay день недели окна: из конкретной даты, если она задана, иначе из фильтра
func requestedDay(f domain.InterpreterFilter) (domain.DayOfWeek, bool) {
	if f.Date != nil {
		return domain.DayOfWeekFromDate(*f.Date), true
	}
	if f.Day != nil {
		return *f.Day, true
	}
	return "", false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern шаблон ILIKE для подстроки, спецсимволы ввода экранируются
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
