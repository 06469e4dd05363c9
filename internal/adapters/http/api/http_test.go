package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/mergington/signups/internal/adapters/http/api"
	repository "github.com/mergington/signups/internal/adapters/repository"
	"github.com/mergington/signups/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDirectory implements api.Dependencies with the directory semantics:
// exact-key lookup, at-most-once membership, insertion order.
type mockDirectory struct {
	roster model.Roster
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		roster: model.Roster{
			"Tennis Club": {
				Description:     "Learn tennis skills and participate in friendly matches",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 16,
				Participants:    []string{"alex@mergington.edu"},
			},
			"Basketball Team": {
				Description:     "Competitive basketball training and games",
				Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"james@mergington.edu", "marcus@mergington.edu"},
			},
		},
	}
}

func (m *mockDirectory) List(_ context.Context) model.Roster {
	return m.roster.Clone()
}

func (m *mockDirectory) Signup(_ context.Context, activity, email string) error {
	a, ok := m.roster[activity]
	if !ok {
		return repository.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return repository.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	m.roster[activity] = a
	return nil
}

func (m *mockDirectory) Remove(_ context.Context, activity, email string) error {
	a, ok := m.roster[activity]
	if !ok {
		return repository.ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			m.roster[activity] = a
			return nil
		}
	}
	return repository.ErrNotSignedUp
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newTestMux(deps api.Dependencies, stats api.StatsProvider) *http.ServeMux {
	server := api.NewServer(deps, stats)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestGetActivities(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		dir := newMockDirectory()
		mux := newTestMux(dir, &mockStatsProvider{})

		Convey("When requesting GET /activities", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return the full mapping", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var listing map[string]model.Activity
				So(json.NewDecoder(w.Body).Decode(&listing), ShouldBeNil)
				So(listing, ShouldContainKey, "Tennis Club")
				So(listing, ShouldContainKey, "Basketball Team")
			})
		})

		Convey("When inspecting one activity in the listing", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			var listing map[string]json.RawMessage
			So(json.NewDecoder(w.Body).Decode(&listing), ShouldBeNil)

			Convey("Then all four fields should be present", func() {
				var fields map[string]any
				So(json.Unmarshal(listing["Tennis Club"], &fields), ShouldBeNil)
				So(fields, ShouldContainKey, "description")
				So(fields, ShouldContainKey, "schedule")
				So(fields, ShouldContainKey, "max_participants")
				So(fields, ShouldContainKey, "participants")
			})
		})
	})
}

func TestSignup(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		dir := newMockDirectory()
		mux := newTestMux(dir, &mockStatsProvider{})

		Convey("When signing up a new student", func() {
			req := httptest.NewRequest("POST", "/activities/Tennis%20Club/signup?email=newstudent@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should succeed with a confirmation message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decodeBody(t, w)
				So(body["message"], ShouldContainSubstring, "Signed up")
				So(body["message"], ShouldContainSubstring, "newstudent@mergington.edu")
			})

			Convey("And the listing should contain the email exactly once", func() {
				participants := dir.roster["Tennis Club"].Participants
				count := 0
				for _, p := range participants {
					if p == "newstudent@mergington.edu" {
						count++
					}
				}
				So(count, ShouldEqual, 1)
				So(len(participants), ShouldEqual, 2)
			})
		})

		Convey("When signing up the same student twice", func() {
			first := httptest.NewRequest("POST", "/activities/Tennis%20Club/signup?email=duplicate@mergington.edu", nil)
			w1 := httptest.NewRecorder()
			mux.ServeHTTP(w1, first)
			So(w1.Code, ShouldEqual, http.StatusOK)

			second := httptest.NewRequest("POST", "/activities/Tennis%20Club/signup?email=duplicate@mergington.edu", nil)
			w2 := httptest.NewRecorder()
			mux.ServeHTTP(w2, second)

			Convey("Then the second call should fail with a duplicate detail", func() {
				So(w2.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody(t, w2)
				So(body["detail"], ShouldContainSubstring, "already signed up")
			})

			Convey("And the participant list should hold the email once", func() {
				count := 0
				for _, p := range dir.roster["Tennis Club"].Participants {
					if p == "duplicate@mergington.edu" {
						count++
					}
				}
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When signing up for an unknown activity", func() {
			req := httptest.NewRequest("POST", "/activities/Nonexistent%20Activity/signup?email=student@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404 with a not-found detail", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				body := decodeBody(t, w)
				So(body["detail"], ShouldContainSubstring, "not found")
			})

			Convey("And the directory should be unchanged", func() {
				So(len(dir.roster), ShouldEqual, 2)
				So(len(dir.roster["Tennis Club"].Participants), ShouldEqual, 1)
			})
		})

		Convey("When the email parameter is missing", func() {
			req := httptest.NewRequest("POST", "/activities/Tennis%20Club/signup", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody(t, w)
				So(body["detail"], ShouldContainSubstring, "Missing email")
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/activities/Tennis%20Club/signup?email=x@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the mux should reject it", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		dir := newMockDirectory()
		mux := newTestMux(dir, &mockStatsProvider{})

		Convey("When removing a registered participant", func() {
			req := httptest.NewRequest("DELETE", "/activities/Basketball%20Team/remove?email=james@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should succeed with a confirmation message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decodeBody(t, w)
				So(body["message"], ShouldContainSubstring, "Removed")
			})

			Convey("And the email should be absent afterward", func() {
				for _, p := range dir.roster["Basketball Team"].Participants {
					So(p, ShouldNotEqual, "james@mergington.edu")
				}
			})
		})

		Convey("When removing a student who never signed up", func() {
			req := httptest.NewRequest("DELETE", "/activities/Tennis%20Club/remove?email=notregistered@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400 with a not-signed-up detail", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody(t, w)
				So(body["detail"], ShouldContainSubstring, "not signed up")
			})
		})

		Convey("When removing from an unknown activity", func() {
			req := httptest.NewRequest("DELETE", "/activities/Nonexistent%20Activity/remove?email=student@mergington.edu", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404 with a not-found detail", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				body := decodeBody(t, w)
				So(body["detail"], ShouldContainSubstring, "not found")
			})
		})

		Convey("When the email parameter is missing", func() {
			req := httptest.NewRequest("DELETE", "/activities/Tennis%20Club/remove", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		dir := newMockDirectory()
		stats := &mockStatsProvider{stats: map[string]interface{}{
			"started":      true,
			"activities":   2,
			"participants": 3,
		}}
		mux := newTestMux(dir, stats)

		Convey("When requesting GET /stats", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should serve the provider's stats", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decodeBody(t, w)
				So(body["activities"], ShouldEqual, 2)
				So(body["participants"], ShouldEqual, 3)
			})
		})

		Convey("When requesting GET /healthz", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should serve Prometheus metrics", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "mergington_signups")
			})
		})

		Convey("When sending a request without a request id", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then one should be assigned", func() {
				So(w.Header().Get("X-Request-ID"), ShouldNotBeBlank)
			})
		})

		Convey("When sending a request with a request id", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			req.Header.Set("X-Request-ID", "test-id-123")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should be echoed back", func() {
				So(w.Header().Get("X-Request-ID"), ShouldEqual, "test-id-123")
			})
		})
	})
}
