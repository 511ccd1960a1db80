package dashboard

import (
	"context"
	"log/slog"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

// AppointmentLimit caps the admin appointment listing.
const AppointmentLimit = 100

// AppointmentStore is what the board needs from the appointment service.
type AppointmentStore interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}

// Action is a status control offered for one appointment.
type Action struct {
	Label  string
	Status model.AppointmentStatus
}

// ActionsFor returns the controls to render for a. Terminal appointments get
// none.
func ActionsFor(a *model.Appointment) []Action {
	if a.Status != model.StatusPending {
		return nil
	}
	return []Action{
		{Label: "Confirm", Status: model.StatusConfirmed},
		{Label: "Cancel", Status: model.StatusCancelled},
	}
}

// AppointmentRow is one rendered appointment with its controls.
type AppointmentRow struct {
	*model.Appointment
	Actions []Action
}

// AppointmentView is the render model of the board.
type AppointmentView struct {
	Rows    []AppointmentRow
	Counts  StatusCounts
	Loading bool
	Loaded  bool
	Stale   bool
}

// AppointmentBoard is the admin appointment list and its status actions.
type AppointmentBoard struct {
	store    AppointmentStore
	notifier Notifier
	list     *Listing[*model.Appointment]
}

// NewAppointmentBoard creates a board over every appointment, newest first.
func NewAppointmentBoard(store AppointmentStore, notifier Notifier) *AppointmentBoard {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	q := service.RecentAppointmentsQuery(AppointmentLimit)
	fetch := func(ctx context.Context) ([]*model.Appointment, error) {
		return store.List(ctx, q)
	}
	return &AppointmentBoard{
		store:    store,
		notifier: notifier,
		list:     NewListing("appointments", fetch, notifier),
	}
}

// Load fetches the appointment list.
func (b *AppointmentBoard) Load(ctx context.Context) { b.list.Load(ctx) }

// Close discards results of loads still in flight.
func (b *AppointmentBoard) Close() { b.list.Close() }

// SetStatus requests one status change and, on success, refetches the whole
// list. Local state is untouched when the update fails. The result reports
// whether the update was accepted.
func (b *AppointmentBoard) SetStatus(ctx context.Context, id string, status model.AppointmentStatus) bool {
	if !model.StatusPending.CanTransitionTo(status) {
		b.notifier.Notify(ctx, Toast{Level: LevelError, Message: "Unsupported appointment status."})
		return false
	}

	if err := b.store.UpdateStatus(ctx, id, status); err != nil {
		slog.Error("appointment status update failed", "id", id, "status", status, "error", err)
		b.notifier.Notify(ctx, Toast{Level: LevelError, Message: "Could not update the appointment."})
		return false
	}

	b.notifier.Notify(ctx, Toast{Level: LevelSuccess, Message: "Appointment " + string(status) + "."})
	b.list.Load(ctx)
	return true
}

// View returns the render model for the current state.
func (b *AppointmentBoard) View() AppointmentView {
	snap := b.list.Snapshot()
	rows := make([]AppointmentRow, len(snap.Items))
	for i, a := range snap.Items {
		rows[i] = AppointmentRow{Appointment: a, Actions: ActionsFor(a)}
	}
	return AppointmentView{
		Rows:    rows,
		Counts:  CountByStatus(snap.Items),
		Loading: snap.Loading,
		Loaded:  snap.Loaded,
		Stale:   snap.Stale,
	}
}
