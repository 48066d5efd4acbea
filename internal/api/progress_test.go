package api

import (
	"context"
	"net/http"
	"testing"

	"wordadventure/internal/models"
)

func intPtr(v int) *int { return &v }

func TestGetUserProgress(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7/progress" {
			t.Errorf("Path = %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"level":4,"xp":900,"progress_data":{"easy":{"learned":3,"total":30}}}`)
	})

	res := client.GetUserProgress(context.Background(), 7)
	if res.Outcome != OutcomeRemote || res.Value.Level != 4 || res.Value.ProgressData[models.DifficultyEasy].Learned != 3 {
		t.Errorf("Unexpected result: %+v", res)
	}

	offline, _ := newOfflineClient(t)
	res = offline.GetUserProgress(context.Background(), 7)
	if res.Outcome != OutcomeIgnored || res.Value != nil || res.Err == nil {
		t.Errorf("Expected ignored result, got %+v", res)
	}
}

func TestUpdateUserProgressFallback(t *testing.T) {
	tests := []struct {
		name        string
		session     *models.Session
		userID      int64
		wantOutcome Outcome
		wantXP      int
	}{
		{
			name:        "same user merges",
			session:     &models.Session{ID: 7, Username: "sam", XP: 100, Level: 1},
			userID:      7,
			wantOutcome: OutcomeDegraded,
			wantXP:      250,
		},
		{
			name:        "other user is ignored",
			session:     &models.Session{ID: 8, Username: "kim", XP: 100, Level: 1},
			userID:      7,
			wantOutcome: OutcomeIgnored,
			wantXP:      100,
		},
		{
			name:        "no session is ignored",
			userID:      7,
			wantOutcome: OutcomeIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, st := newOfflineClient(t)
			if tt.session != nil {
				st.SetCurrent(tt.session)
			}

			res := client.UpdateUserProgress(context.Background(), tt.userID, models.ProgressUpdate{XP: intPtr(250)})
			if res.Outcome != tt.wantOutcome || res.Err == nil || res.Value != nil {
				t.Errorf("Unexpected result: %+v", res)
			}

			current := st.Current()
			if tt.session == nil {
				if current != nil {
					t.Errorf("Expected no session, got %+v", current)
				}
				return
			}
			if current.XP != tt.wantXP || current.Level != 1 {
				t.Errorf("Session after update = %+v", current)
			}
		})
	}
}

func TestUpdateUserProgressRemote(t *testing.T) {
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Method = %s", r.Method)
		}
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})
	st.SetCurrent(&models.Session{ID: 7, XP: 100})

	res := client.UpdateUserProgress(context.Background(), 7, models.ProgressUpdate{XP: intPtr(250)})
	if res.Outcome != OutcomeRemote || string(res.Value) != `{"success":true}` {
		t.Errorf("Unexpected result: %+v", res)
	}
	if st.Current().XP != 100 {
		t.Error("Remote update must not touch the cached session")
	}
}
