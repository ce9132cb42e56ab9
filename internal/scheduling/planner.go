package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Planner creates planning entries after checking trainer availability and
// trainer/room double-booking.
type Planner struct {
	store Store
}

func NewPlanner(store Store) *Planner {
	return &Planner{store: store}
}

// CreateInput is a single-planning request.
type CreateInput struct {
	SessionID int64
	TrainerID int64
	RoomID    *int64
	Date      string
	Start     string
	End       string
	Notes     string
}

// Create validates and persists one planning entry. It fails fast on the first
// validation or conflict error: trainer checks run before room checks. An inactive
// trainer is reported as a warning, not a rejection.
func (p *Planner) Create(ctx context.Context, in CreateInput) (*Planning, []string, error) {
	if in.SessionID == 0 {
		return nil, nil, &ValidationError{Field: "session_id", Reason: "required"}
	}
	if in.TrainerID == 0 {
		return nil, nil, &ValidationError{Field: "trainer_id", Reason: "required"}
	}
	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, nil, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	start, end, err := NormalizeRange(in.Start, in.End)
	if err != nil {
		return nil, nil, err
	}

	session, err := p.store.SessionByID(ctx, in.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, &NotFoundError{Entity: "session", ID: in.SessionID}
	}

	var warnings []string
	trainer, err := p.store.TrainerByID(ctx, in.TrainerID)
	if err != nil {
		return nil, nil, err
	}
	if trainer == nil {
		return nil, nil, &NotFoundError{Entity: "trainer", ID: in.TrainerID}
	}
	if trainer.Status == TrainerInactive {
		warnings = append(warnings, fmt.Sprintf("trainer %s is inactive", trainer.Name))
	}

	windows, err := p.store.TrainerWindows(ctx, in.TrainerID, int(day.Weekday()), true)
	if err != nil {
		return nil, nil, err
	}
	if coveringWindow(windows, start, end) == nil {
		return nil, warnings, &ConflictError{
			Reason:  ReasonTrainerUnavailable,
			Message: fmt.Sprintf("no declared availability covers %s-%s on %s", start, end, day.Weekday()),
		}
	}

	if hit, err := p.findConflict(ctx, ResourceTrainer, in.TrainerID, in.Date, start, end); err != nil {
		return nil, nil, err
	} else if hit != nil {
		return nil, warnings, &ConflictError{
			Reason:  ReasonTrainerBusy,
			Message: fmt.Sprintf("trainer already booked %s-%s on %s", hit.Start, hit.End, in.Date),
		}
	}

	if in.RoomID != nil {
		room, err := p.store.RoomByID(ctx, *in.RoomID)
		if err != nil {
			return nil, nil, err
		}
		if room == nil {
			return nil, warnings, &NotFoundError{Entity: "room", ID: *in.RoomID}
		}
		if room.Status != RoomAvailable {
			return nil, warnings, &ConflictError{
				Reason:  ReasonRoomUnavailable,
				Message: fmt.Sprintf("room %s is %s", room.Name, room.Status),
			}
		}
		if hit, err := p.findConflict(ctx, ResourceRoom, *in.RoomID, in.Date, start, end); err != nil {
			return nil, nil, err
		} else if hit != nil {
			return nil, warnings, &ConflictError{
				Reason:  ReasonRoomBusy,
				Message: fmt.Sprintf("room already booked %s-%s on %s", hit.Start, hit.End, in.Date),
			}
		}
	}

	planning := &Planning{
		ID:        uuid.NewString(),
		SessionID: in.SessionID,
		TrainerID: in.TrainerID,
		RoomID:    in.RoomID,
		Date:      in.Date,
		Start:     start,
		End:       end,
		Status:    StatusPlanned,
		Notes:     in.Notes,
	}
	if err := p.store.InsertPlanning(ctx, planning); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, warnings, &ConflictError{Reason: ReasonSlotTaken, Message: "slot was booked concurrently"}
		}
		return nil, warnings, err
	}
	return planning, warnings, nil
}

// Finding is one reported problem from a dry-run check or one skipped day of a batch.
type Finding struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Reason  string `json:"reasonCode"`
	Message string `json:"message"`
}

// CheckSlot is the dry-run counterpart of Create: it gathers every availability
// violation and trainer/room conflict for the proposed slot instead of stopping at
// the first one. Nothing is written.
func (p *Planner) CheckSlot(ctx context.Context, in CreateInput) ([]Finding, error) {
	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	start, end, err := NormalizeRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	weekday := int(day.Weekday())
	name := day.Weekday().String()

	var findings []Finding
	add := func(reason, message string) {
		findings = append(findings, Finding{Date: in.Date, Weekday: name, Reason: reason, Message: message})
	}

	if in.TrainerID != 0 {
		windows, err := p.store.TrainerWindows(ctx, in.TrainerID, weekday, true)
		if err != nil {
			return nil, err
		}
		if coveringWindow(windows, start, end) == nil {
			add(ReasonTrainerUnavailable, fmt.Sprintf("no declared availability covers %s-%s on %s", start, end, name))
		}
		hit, err := p.findConflict(ctx, ResourceTrainer, in.TrainerID, in.Date, start, end)
		if err != nil {
			return nil, err
		}
		if hit != nil {
			add(ReasonTrainerBusy, fmt.Sprintf("trainer already booked %s-%s", hit.Start, hit.End))
		}
	}

	if in.RoomID != nil {
		room, err := p.store.RoomByID(ctx, *in.RoomID)
		if err != nil {
			return nil, err
		}
		switch {
		case room == nil:
			add(ReasonRoomNonexistent, fmt.Sprintf("room %d does not exist", *in.RoomID))
		case room.Status != RoomAvailable:
			add(ReasonRoomUnavailable, fmt.Sprintf("room %s is %s", room.Name, room.Status))
		default:
			hit, err := p.findConflict(ctx, ResourceRoom, *in.RoomID, in.Date, start, end)
			if err != nil {
				return nil, err
			}
			if hit != nil {
				add(ReasonRoomBusy, fmt.Sprintf("room already booked %s-%s", hit.Start, hit.End))
			}
		}
	}

	return findings, nil
}

// WeekInput drives the weekly batch generator. TrainerID and RoomID fall back to the
// session's assignments when zero/nil.
type WeekInput struct {
	SessionID int64
	TrainerID int64
	RoomID    *int64
	StartDate string
	Weekdays  []int
	Start     string
	End       string
	Notes     string
}

type WeekSummary struct {
	CreatedCount  int `json:"createdCount"`
	ConflictCount int `json:"conflictCount"`
	TotalCount    int `json:"totalCount"`
}

// WeekResult is the batch generator's outcome. Partial success is normal: created
// entries and per-day conflicts are returned side by side. The field names are part
// of the API contract.
type WeekResult struct {
	Created   []Planning  `json:"createdBookings"`
	Conflicts []Finding   `json:"conflicts"`
	Summary   WeekSummary `json:"summary"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// GenerateWeek expands a start date plus a weekday set into individual plannings over
// the next 7 calendar days. Days are processed in order; a day that fails any check is
// recorded as a conflict and skipped, it never aborts the batch or rolls back earlier
// days. Only a missing session, trainer or start date aborts before any day runs.
func (p *Planner) GenerateWeek(ctx context.Context, in WeekInput) (*WeekResult, error) {
	if in.SessionID == 0 {
		return nil, &ValidationError{Field: "session_id", Reason: "required"}
	}
	if in.StartDate == "" {
		return nil, &ValidationError{Field: "start_date", Reason: "required"}
	}
	first, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, &ValidationError{Field: "start_date", Reason: "expected YYYY-MM-DD"}
	}
	start, end, err := NormalizeRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	requested := make(map[int]bool, len(in.Weekdays))
	for _, wd := range in.Weekdays {
		if wd < 0 || wd > 6 {
			return nil, &ValidationError{Field: "weekdays", Reason: fmt.Sprintf("weekday %d out of range 0-6", wd)}
		}
		requested[wd] = true
	}
	if len(requested) == 0 {
		return nil, &ValidationError{Field: "weekdays", Reason: "at least one weekday required"}
	}

	session, err := p.store.SessionByID(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &NotFoundError{Entity: "session", ID: in.SessionID}
	}

	trainerID := in.TrainerID
	if trainerID == 0 {
		trainerID = session.TrainerID
	}
	if trainerID == 0 {
		return nil, &ValidationError{Field: "trainer_id", Reason: "required"}
	}
	trainer, err := p.store.TrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, &NotFoundError{Entity: "trainer", ID: trainerID}
	}

	roomID := in.RoomID
	if roomID == nil {
		roomID = session.RoomID
	}

	result := &WeekResult{Created: []Planning{}, Conflicts: []Finding{}}
	if trainer.Status == TrainerInactive {
		result.Warnings = append(result.Warnings, fmt.Sprintf("trainer %s is inactive", trainer.Name))
	}

	for i := 0; i < 7; i++ {
		day := first.AddDate(0, 0, i)
		weekday := int(day.Weekday())
		if !requested[weekday] {
			continue
		}
		date := day.Format(dateLayout)
		name := day.Weekday().String()
		skip := func(reason, message string) {
			result.Conflicts = append(result.Conflicts, Finding{Date: date, Weekday: name, Reason: reason, Message: message})
		}

		windows, err := p.store.TrainerWindows(ctx, trainerID, weekday, true)
		if err != nil {
			return nil, err
		}
		if coveringWindow(windows, start, end) == nil {
			skip(ReasonTrainerUnavailable, fmt.Sprintf("no declared availability covers %s-%s on %s", start, end, name))
			continue
		}

		hit, err := p.findConflict(ctx, ResourceTrainer, trainerID, date, start, end)
		if err != nil {
			return nil, err
		}
		if hit != nil {
			skip(ReasonTrainerBusy, fmt.Sprintf("trainer already booked %s-%s", hit.Start, hit.End))
			continue
		}

		if roomID != nil {
			room, err := p.store.RoomByID(ctx, *roomID)
			if err != nil {
				return nil, err
			}
			if room == nil {
				skip(ReasonRoomNonexistent, fmt.Sprintf("room %d does not exist", *roomID))
				continue
			}
			if room.Status != RoomAvailable {
				skip(ReasonRoomUnavailable, fmt.Sprintf("room %s is %s", room.Name, room.Status))
				continue
			}
			hit, err := p.findConflict(ctx, ResourceRoom, *roomID, date, start, end)
			if err != nil {
				return nil, err
			}
			if hit != nil {
				skip(ReasonRoomBusy, fmt.Sprintf("room already booked %s-%s", hit.Start, hit.End))
				continue
			}
		}

		planning := Planning{
			ID:        uuid.NewString(),
			SessionID: in.SessionID,
			TrainerID: trainerID,
			RoomID:    roomID,
			Date:      date,
			Start:     start,
			End:       end,
			Status:    StatusPlanned,
			Notes:     in.Notes,
		}
		if err := p.store.InsertPlanning(ctx, &planning); err != nil {
			if errors.Is(err, ErrSlotTaken) {
				skip(ReasonSlotTaken, "slot was booked concurrently")
			} else {
				skip(ReasonPersistence, err.Error())
			}
			continue
		}
		result.Created = append(result.Created, planning)
	}

	result.Summary = WeekSummary{
		CreatedCount:  len(result.Created),
		ConflictCount: len(result.Conflicts),
		TotalCount:    len(result.Created) + len(result.Conflicts),
	}
	return result, nil
}
