package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	userClient "github.com/m04kA/SMC-InterpreterService/internal/integrations/userservice"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	items  []*domain.Appointment
	locked []string
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	a.ID = uuid.New()
	r.items = append(r.items, a)
	return a, nil
}

func (r *fakeAppointmentRepo) HasConflict(
	_ context.Context,
	interpreterID uuid.UUID,
	date time.Time,
	interval domain.Interval,
	excludeID *uuid.UUID,
) (bool, error) {
	for _, a := range r.items {
		if a.InterpreterID != interpreterID || !a.IsActive() {
			continue
		}
		if a.Date.Format(domain.DateFormat) != date.Format(domain.DateFormat) {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.Interval().Overlaps(interval) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppointmentRepo) LockInterpreterDate(_ context.Context, id uuid.UUID, date time.Time) error {
	r.locked = append(r.locked, id.String()+":"+date.Format(domain.DateFormat))
	return nil
}

type fakeInterpreterRepo struct{ exists bool }

func (r fakeInterpreterRepo) Exists(context.Context, uuid.UUID) (bool, error) { return r.exists, nil }

type fakeUserClient struct {
	user *domain.User
	err  error
}

func (c fakeUserClient) GetUserWithGracefulDegradation(context.Context, uuid.UUID) (*domain.User, error) {
	return c.user, c.err
}

type fakePublisher struct{ events []domain.AppointmentEvent }

func (p *fakePublisher) PublishAppointmentEvent(_ context.Context, e domain.AppointmentEvent) error {
	p.events = append(p.events, e)
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	today    = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
)

func newTestUseCase(repo *fakeAppointmentRepo, users UserServiceClient, pub *fakePublisher) *UseCase {
	uc := NewUseCase(repo, fakeInterpreterRepo{exists: true}, users, pub, fakeTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: today.Add(9 * time.Hour)}
	return uc
}

func activeUser() fakeUserClient {
	return fakeUserClient{user: &domain.User{Status: "ACTIVE"}}
}

func TestUseCase_Execute_NoDoubleBooking(t *testing.T) {
	interpreterID := uuid.New()
	repo := &fakeAppointmentRepo{items: []*domain.Appointment{{
		ID:            uuid.New(),
		InterpreterID: interpreterID,
		Date:          tomorrow,
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domain.AppointmentStatusAccepted,
	}}}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, activeUser(), pub)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		InterpreterID: interpreterID,
		Date:          tomorrow,
		StartTime:     "10:30",
		EndTime:       "11:30",
		Modality:      domain.ModalityOnline,
	})

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.Len(t, repo.items, 1, "пересекающаяся запись не создается")
	assert.Empty(t, pub.events)
	assert.Equal(t, []string{interpreterID.String() + ":2025-06-11"}, repo.locked)
}

func TestUseCase_Execute_Created(t *testing.T) {
	interpreterID := uuid.New()
	repo := &fakeAppointmentRepo{items: []*domain.Appointment{{
		ID:            uuid.New(),
		InterpreterID: interpreterID,
		Date:          tomorrow,
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domain.AppointmentStatusCanceled,
	}}}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, activeUser(), pub)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		InterpreterID: interpreterID,
		Date:          tomorrow,
		StartTime:     "10:00",
		EndTime:       "11:00",
		Modality:      domain.ModalityPersonally,
		UF:            ptr.Ptr("RS"),
		City:          ptr.Ptr("Porto Alegre"),
	})
	require.NoError(t, err, "отмененная запись не занимает время")

	assert.True(t, resp.UserVerified)
	assert.Equal(t, domain.AppointmentStatusPending, resp.Appointment.Status)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "appointment.pending", pub.events[0].RoutingKey())
	assert.Equal(t, resp.Appointment.ID, pub.events[0].AppointmentID)
}

func TestUseCase_Execute_UserService(t *testing.T) {
	tests := []struct {
		name         string
		client       fakeUserClient
		wantErr      error
		wantVerified bool
	}{
		{name: "активный пользователь", client: activeUser(), wantVerified: true},
		{
			name:    "пользователь не найден",
			client:  fakeUserClient{err: fmt.Errorf("wrap: %w", userClient.ErrUserNotFound)},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "сервис недоступен",
			client: fakeUserClient{err: fmt.Errorf("%w: timeout", userClient.ErrServiceDegraded)},
		},
		{
			name:    "заблокированный пользователь",
			client:  fakeUserClient{user: &domain.User{Status: "BLOCKED"}},
			wantErr: ErrUserInactive,
		},
		{
			name:    "неожиданная ошибка",
			client:  fakeUserClient{err: errors.New("boom")},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{}, tt.client, &fakePublisher{})

			resp, err := uc.Execute(context.Background(), &Request{
				UserID:        uuid.New(),
				InterpreterID: uuid.New(),
				Date:          tomorrow,
				StartTime:     "10:00",
				EndTime:       "11:00",
				Modality:      domain.ModalityOnline,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVerified, resp.UserVerified)
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	base := func() Request {
		return Request{
			UserID:        uuid.New(),
			InterpreterID: uuid.New(),
			Date:          tomorrow,
			StartTime:     "10:00",
			EndTime:       "11:00",
			Modality:      domain.ModalityOnline,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "модальность ALL", mutate: func(r *Request) { r.Modality = domain.ModalityAll }, wantErr: ErrInvalidInput},
		{name: "пустой пользователь", mutate: func(r *Request) { r.UserID = uuid.Nil }, wantErr: ErrInvalidInput},
		{name: "uf из трех букв", mutate: func(r *Request) { r.UF = ptr.Ptr("RSS") }, wantErr: ErrInvalidInput},
		{name: "нулевая длина", mutate: func(r *Request) { r.EndTime = "10:00" }, wantErr: ErrInvalidInterval},
		{name: "вчерашняя дата", mutate: func(r *Request) { r.Date = today.AddDate(0, 0, -1) }, wantErr: ErrInvalidDate},
		{
			name: "сегодня, но уже началась",
			mutate: func(r *Request) {
				r.Date = today
				r.StartTime = "08:00"
				r.EndTime = "10:00"
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			uc := newTestUseCase(repo, activeUser(), &fakePublisher{})

			req := base()
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.items)
		})
	}
}
