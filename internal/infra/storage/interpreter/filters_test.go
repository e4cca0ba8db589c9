package interpreter

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

const selectPrefix = "SELECT DISTINCT i.id, i.name, i.email, i.phone, i.gender, i.modality, i.rating, " +
	"i.description, i.video_url, i.created_at, i.updated_at FROM interpreters i"

func TestBuildSearchQuery_NoCriteria(t *testing.T) {
	query, args, err := buildSearchQuery(domain.InterpreterFilter{}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectPrefix+" ORDER BY i.id ASC LIMIT 20 OFFSET 0", query)
	assert.Empty(t, args)
}

func TestBuildSearchQuery_LocationIsComposable(t *testing.T) {
	byUF := domain.InterpreterFilter{UF: ptr.Ptr("RS")}
	byUFAndCity := domain.InterpreterFilter{UF: ptr.Ptr("RS"), City: ptr.Ptr("Porto Alegre")}

	q1, args1, err := buildSearchQuery(byUF).ToSql()
	require.NoError(t, err)
	q2, args2, err := buildSearchQuery(byUFAndCity).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		selectPrefix+" JOIN interpreter_locations l ON l.interpreter_id = i.id WHERE l.uf = $1 ORDER BY i.id ASC LIMIT 20 OFFSET 0",
		q1,
	)
	// второй запрос отличается ровно одним условием
	assert.Equal(t, q1, strings.Replace(q2, " AND l.city ILIKE $2", "", 1))
	assert.Equal(t, []interface{}{"RS"}, args1)
	assert.Equal(t, []interface{}{"RS", "%Porto Alegre%"}, args2)
}

func TestBuildSearchQuery_EscapesWildcards(t *testing.T) {
	_, args, err := buildSearchQuery(domain.InterpreterFilter{
		Neighborhood: ptr.Ptr(`50%_off\`),
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}

func TestBuildSearchQuery_Specialties(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		match     domain.SpecialtyMatch
		ids       []uuid.UUID
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "ANY по умолчанию",
			ids:       []uuid.UUID{a, b},
			wantWhere: "WHERE i.id IN (SELECT isp.interpreter_id FROM interpreter_specialties isp WHERE isp.specialty_id IN ($1,$2))",
			wantArgs:  2,
		},
		{
			name:  "ALL требует все специальности",
			match: domain.SpecialtyMatchAll,
			ids:   []uuid.UUID{a, b, a},
			wantWhere: "WHERE i.id IN (SELECT isp.interpreter_id FROM interpreter_specialties isp " +
				"WHERE isp.specialty_id IN ($1,$2) GROUP BY isp.interpreter_id HAVING COUNT(DISTINCT isp.specialty_id) = $3)",
			wantArgs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchQuery(domain.InterpreterFilter{
				SpecialtyIDs:   tt.ids,
				SpecialtyMatch: tt.match,
			}).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			require.Len(t, args, tt.wantArgs)
			if tt.match == domain.SpecialtyMatchAll {
				// дубликаты идентификаторов не увеличивают требуемое количество
				assert.Equal(t, 2, args[2])
			}
		})
	}
}

func TestBuildSearchQuery_Availability(t *testing.T) {
	filter := domain.InterpreterFilter{
		Day:            ptr.Ptr(domain.Tuesday),
		RequestedStart: ptr.Ptr(types.TimeString("10:00")),
		RequestedEnd:   ptr.Ptr(types.TimeString("11:00")),
	}

	query, args, err := buildSearchQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "JOIN schedules s ON s.interpreter_id = i.id")
	assert.Contains(t, query, "WHERE s.day = $1 AND s.start_time <= $2 AND s.end_time >= $3")
	assert.NotContains(t, query, "NOT IN")
	require.Len(t, args, 3)
	assert.Equal(t, domain.Tuesday, args[0])
	assert.Equal(t, "10:00", args[1])
	assert.Equal(t, "11:00", args[2])

	t.Run("без окна день игнорируется", func(t *testing.T) {
		query, _, err := buildSearchQuery(domain.InterpreterFilter{Day: ptr.Ptr(domain.Tuesday)}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, query, "schedules")
	})
}

func TestBuildSearchQuery_DateExcludesBooked(t *testing.T) {
	// 2025-06-10 вторник
	filter := domain.InterpreterFilter{
		Day:            ptr.Ptr(domain.Friday),
		Date:           ptr.Ptr(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		RequestedStart: ptr.Ptr(types.TimeString("10:00")),
		RequestedEnd:   ptr.Ptr(types.TimeString("11:00")),
	}

	query, args, err := buildSearchQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query,
		"AND i.id NOT IN (SELECT a.interpreter_id FROM appointments a WHERE a.date = $4 "+
			"AND a.status IN ($5,$6) AND a.start_time < $7 AND a.end_time > $8)",
	)
	require.Len(t, args, 8)
	assert.Equal(t, domain.Tuesday, args[0], "день берется из даты")
	assert.Equal(t, "2025-06-10", args[3])
}

func TestBuildSearchQuery_ModalityGenderNameAndPaging(t *testing.T) {
	filter := domain.InterpreterFilter{
		Modality:    ptr.Ptr(domain.ModalityOnline),
		Gender:      ptr.Ptr(domain.GenderFemale),
		NamePattern: ptr.Ptr("ana"),
		Page:        domain.Pagination{Page: 3, Size: 10},
	}

	query, args, err := buildSearchQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE i.modality = $1 AND i.gender = $2 AND i.name ILIKE $3")
	assert.True(t, strings.HasSuffix(query, "ORDER BY i.id ASC LIMIT 10 OFFSET 30"))
	assert.Equal(t, []interface{}{domain.ModalityOnline, domain.GenderFemale, "%ana%"}, args)
}
