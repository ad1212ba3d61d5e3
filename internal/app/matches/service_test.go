package matches

import (
	"testing"

	domainmatches "cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/store"
)

func seedService() *Service {
	st := store.NewMemoryStore()
	st.SetMatches([]domainmatches.Match{
		{ID: "1", Status: domainmatches.StatusLive},
		{ID: "2", Status: domainmatches.StatusUpcoming},
		{ID: "3", Status: domainmatches.StatusCompleted},
		{ID: "4", Status: domainmatches.StatusUnknown, StatusNote: "Rain Delay"},
	})
	return NewService(st, nil)
}

func TestServiceListsAndGets(t *testing.T) {
	svc := seedService()

	if got := len(svc.Matches()); got != 4 {
		t.Fatalf("expected 4 matches, got %d", got)
	}

	m, ok := svc.MatchByID("2")
	if !ok || m.Status != domainmatches.StatusUpcoming {
		t.Fatalf("unexpected match %+v ok=%v", m, ok)
	}

	if _, ok := svc.MatchByID("missing"); ok {
		t.Fatal("expected missing id to return false")
	}
}

func TestServiceClassifiesBuckets(t *testing.T) {
	svc := seedService()

	resp := svc.Classified()
	if len(resp.Matches) != 4 {
		t.Fatalf("flat list must keep every match, got %d", len(resp.Matches))
	}
	if len(resp.Live) != 1 || resp.Live[0].ID != "1" {
		t.Fatalf("unexpected live bucket %+v", resp.Live)
	}
	if len(resp.Upcoming) != 1 || resp.Upcoming[0].ID != "2" {
		t.Fatalf("unexpected upcoming bucket %+v", resp.Upcoming)
	}
	if len(resp.Completed) != 1 || resp.Completed[0].ID != "3" {
		t.Fatalf("unexpected completed bucket %+v", resp.Completed)
	}

	// Unknown status joins no bucket but stays in the flat list.
	for _, bucket := range [][]domainmatches.Match{resp.Live, resp.Upcoming, resp.Completed} {
		for _, m := range bucket {
			if m.ID == "4" {
				t.Fatal("unknown-status match must not appear in any bucket")
			}
		}
	}
}

func TestServiceReplaceMatches(t *testing.T) {
	svc := seedService()
	svc.ReplaceMatches([]domainmatches.Match{{ID: "9", Status: domainmatches.StatusLive}})

	if got := len(svc.Matches()); got != 1 {
		t.Fatalf("expected wholesale replace, got %d matches", got)
	}
}
