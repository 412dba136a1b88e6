package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// ledgerRepo stores rows in memory and serves ListRecent the way the real
// store does: newest first, truncated at limit.
type ledgerRepo struct {
	rows []domain.DeliveryEvent
}

func (r *ledgerRepo) Insert(_ context.Context, e *domain.DeliveryEvent) (int64, error) {
	row := *e
	row.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, row)
	return row.ID, nil
}

func (r *ledgerRepo) ListRecent(_ context.Context, integrationID string, limit int) ([]domain.DeliveryEvent, error) {
	var out []domain.DeliveryEvent
	for _, row := range r.rows {
		if row.IntegrationID == integrationID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestEventService_Append_SetsReceivedAt(t *testing.T) {
	events := &stubEventRepo{}
	repo := newStubIntegrationRepo()
	svc := NewEventService(events, repo, zerolog.Nop())

	before := time.Now().UTC()
	code := 200
	id, err := svc.Append(context.Background(), "int-1", domain.EventSuccess, &code, "")
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected event id")
	}

	ev := events.inserted[0]
	if ev.ReceivedAt.Before(before) {
		t.Errorf("received_at not assigned at ingress: %v", ev.ReceivedAt)
	}
	if ev.Status != domain.EventSuccess || *ev.UpstreamStatus != 200 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestEventService_ListRecent_ClampsLimit(t *testing.T) {
	events := &stubEventRepo{}
	repo := newStubIntegrationRepo()
	seedIntegration(repo, "int-1", "s")
	svc := NewEventService(events, repo, zerolog.Nop())

	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-5, 50},
		{60, 50},
		{10, 10},
	}
	for _, tc := range cases {
		if _, err := svc.ListRecent(context.Background(), "user-1", "int-1", tc.in); err != nil {
			t.Fatalf("ListRecent(%d) returned error: %v", tc.in, err)
		}
		if events.lastLimit != tc.want {
			t.Errorf("limit %d: repo saw %d, want %d", tc.in, events.lastLimit, tc.want)
		}
	}
}

func TestEventService_ListRecent_CapsAtFiftyDescending(t *testing.T) {
	events := &ledgerRepo{}
	repo := newStubIntegrationRepo()
	seedIntegration(repo, "int-1", "s")
	svc := NewEventService(events, repo, zerolog.Nop())

	// 60 rows with distinct timestamps, inserted out of order
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		offset := (i * 37) % 60
		_, _ = events.Insert(context.Background(), &domain.DeliveryEvent{
			IntegrationID: "int-1",
			Status:        domain.EventSuccess,
			ReceivedAt:    base.Add(time.Duration(offset) * time.Second),
		})
	}

	got, err := svc.ListRecent(context.Background(), "user-1", "int-1", 0)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(got) != 50 {
		t.Fatalf("expected 50 rows from a 60-event ledger, got %d", len(got))
	}
	if !got[0].ReceivedAt.Equal(base.Add(59 * time.Second)) {
		t.Errorf("expected the newest row first, got %v", got[0].ReceivedAt)
	}
	for i := 1; i < len(got); i++ {
		if !got[i].ReceivedAt.Before(got[i-1].ReceivedAt) {
			t.Fatalf("rows not strictly descending at index %d: %v then %v",
				i, got[i-1].ReceivedAt, got[i].ReceivedAt)
		}
	}
}

func TestEventService_ListRecent_UnknownIntegration(t *testing.T) {
	events := &stubEventRepo{}
	repo := newStubIntegrationRepo()
	svc := NewEventService(events, repo, zerolog.Nop())

	_, err := svc.ListRecent(context.Background(), "user-1", "nope", 10)
	if !errors.Is(err, domain.ErrIntegrationNotFound) {
		t.Fatalf("expected ErrIntegrationNotFound, got %v", err)
	}
}

func TestEventService_ListRecent_ForeignIntegration(t *testing.T) {
	events := &stubEventRepo{}
	repo := newStubIntegrationRepo()
	seedIntegration(repo, "int-1", "s") // owned by user-1
	svc := NewEventService(events, repo, zerolog.Nop())

	// a foreign owner learns nothing, not even that the id exists
	_, err := svc.ListRecent(context.Background(), "user-2", "int-1", 10)
	if !errors.Is(err, domain.ErrIntegrationNotFound) {
		t.Fatalf("expected ErrIntegrationNotFound for foreign owner, got %v", err)
	}
}
