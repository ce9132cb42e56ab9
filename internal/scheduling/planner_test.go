package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) TrainerByID(ctx context.Context, id int64) (*TrainerInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TrainerInfo), args.Error(1)
}

func (m *MockStore) RoomByID(ctx context.Context, id int64) (*RoomInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RoomInfo), args.Error(1)
}

func (m *MockStore) SessionByID(ctx context.Context, id int64) (*SessionInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionInfo), args.Error(1)
}

func (m *MockStore) TrainerWindows(ctx context.Context, trainerID int64, weekday int, activeOnly bool) ([]Window, error) {
	args := m.Called(ctx, trainerID, weekday, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Window), args.Error(1)
}

func (m *MockStore) EntriesFor(ctx context.Context, kind ResourceKind, resourceID int64, date string) ([]Entry, error) {
	args := m.Called(ctx, kind, resourceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockStore) InsertPlanning(ctx context.Context, p *Planning) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreate_Success(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7, TrainerID: 3}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Name: "Karim", Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").Return([]Entry{}, nil)
	store.On("InsertPlanning", ctx, mock.AnythingOfType("*scheduling.Planning")).Return(nil)

	planning, warnings, err := planner.Create(ctx, CreateInput{
		SessionID: 7,
		TrainerID: 3,
		Date:      "2026-03-02",
		Start:     "9:00",
		End:       "12:00",
	})

	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.NotEmpty(t, planning.ID)
	assert.Equal(t, "09:00", planning.Start)
	assert.Equal(t, "12:00", planning.End)
	assert.Equal(t, StatusPlanned, planning.Status)
	store.AssertExpectations(t)
}

func TestCreate_RejectsBadRangeBeforeDataAccess(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)

	_, _, err := planner.Create(context.Background(), CreateInput{
		SessionID: 7,
		TrainerID: 3,
		Date:      "2026-03-02",
		Start:     "12:00",
		End:       "09:00",
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	store.AssertNotCalled(t, "SessionByID", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "EntriesFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_TrainerBusy(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").
		Return([]Entry{{ID: "x", Start: "09:00", End: "12:00"}}, nil)

	_, _, err := planner.Create(ctx, CreateInput{
		SessionID: 7,
		TrainerID: 3,
		Date:      "2026-03-02",
		Start:     "11:00",
		End:       "13:00",
	})

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonTrainerBusy, cerr.Reason)
	store.AssertNotCalled(t, "InsertPlanning", mock.Anything, mock.Anything)
}

func TestCreate_RoomCheckedBeforeInsert(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").Return([]Entry{}, nil)
	store.On("RoomByID", ctx, int64(5)).Return(&RoomInfo{ID: 5, Name: "B12", Status: RoomMaintenance}, nil)

	_, _, err := planner.Create(ctx, CreateInput{
		SessionID: 7,
		TrainerID: 3,
		RoomID:    int64Ptr(5),
		Date:      "2026-03-02",
		Start:     "09:00",
		End:       "12:00",
	})

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonRoomUnavailable, cerr.Reason)
	store.AssertNotCalled(t, "InsertPlanning", mock.Anything, mock.Anything)
}

func TestCreate_InactiveTrainerWarnsButCreates(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Name: "Nadia", Status: TrainerInactive}, nil)
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").Return([]Entry{}, nil)
	store.On("InsertPlanning", ctx, mock.AnythingOfType("*scheduling.Planning")).Return(nil)

	planning, warnings, err := planner.Create(ctx, CreateInput{
		SessionID: 7,
		TrainerID: 3,
		Date:      "2026-03-02",
		Start:     "09:00",
		End:       "12:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, planning)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "inactive")
}

func TestCreate_OutsideAvailabilityRejected(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	// window ends at 12:00, proposed range runs past it
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "09:00", End: "12:00"}}, nil)

	_, _, err := planner.Create(ctx, CreateInput{
		SessionID: 7,
		TrainerID: 3,
		Date:      "2026-03-02",
		Start:     "10:00",
		End:       "13:00",
	})

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonTrainerUnavailable, cerr.Reason)
	store.AssertNotCalled(t, "EntriesFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "InsertPlanning", mock.Anything, mock.Anything)
}

func TestGenerateWeek_MondayToFriday(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	// 2026-03-02 is a Monday: the 7-day span holds exactly one of each weekday.
	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7, TrainerID: 3}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), mock.AnythingOfType("int"), true).
		Return([]Window{{Start: "09:00", End: "17:00"}}, nil)
	// Wednesday already has a clashing planning, every other day is free.
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-04").
		Return([]Entry{{ID: "w", Start: "09:00", End: "12:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), mock.AnythingOfType("string")).
		Return([]Entry{}, nil)
	store.On("InsertPlanning", ctx, mock.AnythingOfType("*scheduling.Planning")).Return(nil)

	res, err := planner.GenerateWeek(ctx, WeekInput{
		SessionID: 7,
		StartDate: "2026-03-02",
		Weekdays:  []int{1, 2, 3, 4, 5},
		Start:     "10:00",
		End:       "12:00",
	})

	assert.NoError(t, err)
	assert.Len(t, res.Created, 4)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, ReasonTrainerBusy, res.Conflicts[0].Reason)
	assert.Equal(t, "2026-03-04", res.Conflicts[0].Date)
	assert.Equal(t, "Wednesday", res.Conflicts[0].Weekday)
	assert.Equal(t, 4, res.Summary.CreatedCount)
	assert.Equal(t, 1, res.Summary.ConflictCount)
	// created + conflicts always covers every requested weekday in the span
	assert.Equal(t, 5, res.Summary.TotalCount)
	assert.Equal(t, "2026-03-02", res.Created[0].Date)
}

func TestGenerateWeek_NoCoveringWindowSkipsDay(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7, TrainerID: 3}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	// declared window ends at 12:00, requested range runs to 13:00: not contained
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "09:00", End: "12:00"}}, nil)

	res, err := planner.GenerateWeek(ctx, WeekInput{
		SessionID: 7,
		StartDate: "2026-03-02",
		Weekdays:  []int{1},
		Start:     "10:00",
		End:       "13:00",
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, ReasonTrainerUnavailable, res.Conflicts[0].Reason)
	store.AssertNotCalled(t, "InsertPlanning", mock.Anything, mock.Anything)
}

func TestGenerateWeek_RoomInheritedFromSession(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7, TrainerID: 3, RoomID: int64Ptr(5)}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").Return([]Entry{}, nil)
	store.On("RoomByID", ctx, int64(5)).Return(&RoomInfo{ID: 5, Name: "B12", Status: RoomAvailable}, nil)
	store.On("EntriesFor", ctx, ResourceRoom, int64(5), "2026-03-02").
		Return([]Entry{{ID: "r", Start: "10:00", End: "11:00"}}, nil)

	res, err := planner.GenerateWeek(ctx, WeekInput{
		SessionID: 7,
		StartDate: "2026-03-02",
		Weekdays:  []int{1},
		Start:     "09:00",
		End:       "12:00",
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, ReasonRoomBusy, res.Conflicts[0].Reason)
}

func TestGenerateWeek_MissingSessionAborts(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(99)).Return(nil, nil)

	_, err := planner.GenerateWeek(ctx, WeekInput{
		SessionID: 99,
		TrainerID: 3,
		StartDate: "2026-03-02",
		Weekdays:  []int{1},
		Start:     "09:00",
		End:       "12:00",
	})

	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "session", nf.Entity)
	store.AssertNotCalled(t, "TrainerWindows", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateWeek_PersistenceFailureIsPerDay(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	store.On("SessionByID", ctx, int64(7)).Return(&SessionInfo{ID: 7, TrainerID: 3}, nil)
	store.On("TrainerByID", ctx, int64(3)).Return(&TrainerInfo{ID: 3, Status: TrainerActive}, nil)
	store.On("TrainerWindows", ctx, int64(3), mock.AnythingOfType("int"), true).
		Return([]Window{{Start: "08:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), mock.AnythingOfType("string")).
		Return([]Entry{}, nil)
	// the slot is stolen between check and insert on the first day only
	store.On("InsertPlanning", ctx, mock.MatchedBy(func(p *Planning) bool { return p.Date == "2026-03-02" })).
		Return(ErrSlotTaken)
	store.On("InsertPlanning", ctx, mock.AnythingOfType("*scheduling.Planning")).Return(nil)

	res, err := planner.GenerateWeek(ctx, WeekInput{
		SessionID: 7,
		StartDate: "2026-03-02",
		Weekdays:  []int{1, 2},
		Start:     "09:00",
		End:       "11:00",
	})

	assert.NoError(t, err)
	assert.Len(t, res.Created, 1)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, ReasonSlotTaken, res.Conflicts[0].Reason)
}

func TestCheckSlot_ReportsEverythingTogether(t *testing.T) {
	store := &MockStore{}
	planner := NewPlanner(store)
	ctx := context.Background()

	// no covering window, trainer busy and room busy at once: all three reported
	store.On("TrainerWindows", ctx, int64(3), 1, true).
		Return([]Window{{Start: "14:00", End: "18:00"}}, nil)
	store.On("EntriesFor", ctx, ResourceTrainer, int64(3), "2026-03-02").
		Return([]Entry{{ID: "a", Start: "09:30", End: "10:30"}}, nil)
	store.On("RoomByID", ctx, int64(5)).Return(&RoomInfo{ID: 5, Name: "B12", Status: RoomAvailable}, nil)
	store.On("EntriesFor", ctx, ResourceRoom, int64(5), "2026-03-02").
		Return([]Entry{{ID: "b", Start: "09:00", End: "12:00"}}, nil)

	findings, err := planner.CheckSlot(ctx, CreateInput{
		TrainerID: 3,
		RoomID:    int64Ptr(5),
		Date:      "2026-03-02",
		Start:     "9:00",
		End:       "11:00",
	})

	assert.NoError(t, err)
	reasons := make([]string, 0, len(findings))
	for _, f := range findings {
		reasons = append(reasons, f.Reason)
	}
	assert.ElementsMatch(t, []string{ReasonTrainerUnavailable, ReasonTrainerBusy, ReasonRoomBusy}, reasons)
}
