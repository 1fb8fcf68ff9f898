package groups_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/features/groups"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/domain/models"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return groups.NewHandler(db, zap.NewNop()), db
}

func TestHandleCreateGroup(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(http.MethodPost, "/groups",
		`{"group_name":"Team A","members":["X","Y"]}`)
	rec := testutil.NewRecorder()
	h.HandleCreateGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var created models.GroupProject
	rec.DecodeJSON(t, &created)
	if created.ID == "" {
		t.Error("expected id in response")
	}
	if created.ProjectType != "podcast" {
		t.Errorf("project_type: got %q, want podcast", created.ProjectType)
	}
	if created.Day1.Completed {
		t.Error("expected day1.completed false")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestHandleCreateGroup_Validation(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"members":["X"]}`, "group_name is required"},
		{"blank name", `{"group_name":"   ","members":["X"]}`, "group_name is required"},
		{"missing members", `{"group_name":"Team B"}`, "members is required"},
		{"bad project type", `{"group_name":"Team B","members":[],"project_type":"movie"}`, "project_type"},
		{"malformed body", `{"group_name":`, "Invalid request body"},
		{"empty body", ``, "Invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(http.MethodPost, "/groups", tc.body)
			rec := testutil.NewRecorder()
			h.HandleCreateGroup(rec.ResponseRecorder, req)
			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, tc.want)
		})
	}
}

func TestHandleCreateGroup_EmptyMembersAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(http.MethodPost, "/groups",
		`{"group_name":"Lonely Team","members":[]}`)
	rec := testutil.NewRecorder()
	h.HandleCreateGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"members":[]`)
}

func TestHandleCreateGroup_DuplicateName(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"group_name":"Duplicate Team","members":["A"]}`
	rec := testutil.NewRecorder()
	h.HandleCreateGroup(rec.ResponseRecorder, testutil.NewJSONRequest(http.MethodPost, "/groups", body))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	h.HandleCreateGroup(rec.ResponseRecorder, testutil.NewJSONRequest(http.MethodPost, "/groups", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Group name already exists")
}

func TestHandleCreateGroup_VlogPreserved(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(http.MethodPost, "/groups",
		`{"group_name":"Vlog Team","members":["A"],"project_type":"vlog"}`)
	rec := testutil.NewRecorder()
	h.HandleCreateGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"project_type":"vlog"`)
}

func TestHandleListGroups(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroupProject(ctx, "Group One", "A")
	fixtures.CreateGroupProject(ctx, "Group Two", "B")

	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	rec := testutil.NewRecorder()
	h.HandleListGroups(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var listed []models.GroupProject
	rec.DecodeJSON(t, &listed)
	if len(listed) != 2 {
		t.Errorf("expected 2 groups, got %d", len(listed))
	}
}

func TestHandleListGroups_EmptyIsArray(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	rec := testutil.NewRecorder()
	h.HandleListGroups(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "[]")
}

func TestHandleGetGroup(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateGroupProject(ctx, "Fetch Team", "A", "B")

	req := httptest.NewRequest(http.MethodGet, "/groups/"+p.ID, nil)
	req = testutil.WithChiURLParam(req, "groupID", p.ID)
	rec := testutil.NewRecorder()
	h.HandleGetGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var found models.GroupProject
	rec.DecodeJSON(t, &found)
	if found.ID != p.ID {
		t.Errorf("id: got %q, want %q", found.ID, p.ID)
	}
	if found.GroupName != "Fetch Team" {
		t.Errorf("group_name: got %q, want %q", found.GroupName, "Fetch Team")
	}
}

func TestHandleGetGroup_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/groups/nonexistent-id-12345", nil)
	req = testutil.WithChiURLParam(req, "groupID", "nonexistent-id-12345")
	rec := testutil.NewRecorder()
	h.HandleGetGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Group not found")
}

func TestHandleUpdateDayStage(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateGroupProject(ctx, "Update Team")

	req := testutil.NewJSONRequest(http.MethodPut, "/groups/"+p.ID+"/day",
		`{"day":2,"data":{"sources":"Wikipedia","learnings":"a lot","target_audience":"teens","completed":true}}`)
	req = testutil.WithChiURLParam(req, "groupID", p.ID)
	rec := testutil.NewRecorder()
	h.HandleUpdateDayStage(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Updated successfully")
	rec.AssertContains(t, `"day":2`)
}

func TestHandleUpdateDayStage_InvalidDay(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateGroupProject(ctx, "Range Team")

	for _, body := range []string{
		`{"day":0,"data":{}}`,
		`{"day":6,"data":{}}`,
		`{"day":9,"data":{"topic":"x"}}`,
	} {
		req := testutil.NewJSONRequest(http.MethodPut, "/groups/"+p.ID+"/day", body)
		req = testutil.WithChiURLParam(req, "groupID", p.ID)
		rec := testutil.NewRecorder()
		h.HandleUpdateDayStage(rec.ResponseRecorder, req)
		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "Invalid day")
	}

	// Bad day wins over bad id.
	req := testutil.NewJSONRequest(http.MethodPut, "/groups/nope/day", `{"day":7,"data":{}}`)
	req = testutil.WithChiURLParam(req, "groupID", "nope")
	rec := testutil.NewRecorder()
	h.HandleUpdateDayStage(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid day")
}

func TestHandleUpdateDayStage_UnknownFieldRejected(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateGroupProject(ctx, "Strict Team")

	req := testutil.NewJSONRequest(http.MethodPut, "/groups/"+p.ID+"/day",
		`{"day":1,"data":{"topic":"Ocean","grammar_connectors":true}}`)
	req = testutil.WithChiURLParam(req, "groupID", p.ID)
	rec := testutil.NewRecorder()
	h.HandleUpdateDayStage(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid day data")
}

func TestHandleUpdateDayStage_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(http.MethodPut, "/groups/nonexistent-id-12345/day",
		`{"day":1,"data":{"topic":"Ocean"}}`)
	req = testutil.WithChiURLParam(req, "groupID", "nonexistent-id-12345")
	rec := testutil.NewRecorder()
	h.HandleUpdateDayStage(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Group not found")
}

func TestHandleDeleteGroup(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateGroupProject(ctx, "Doomed Team")

	req := httptest.NewRequest(http.MethodDelete, "/groups/"+p.ID, nil)
	req = testutil.WithChiURLParam(req, "groupID", p.ID)
	rec := testutil.NewRecorder()
	h.HandleDeleteGroup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Grupo eliminado")

	// Second delete of the same id is a 404.
	rec = testutil.NewRecorder()
	h.HandleDeleteGroup(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Group not found")
}

// TestGroupLifecycle drives the whole surface through the mounted router:
// create, update day 1, verify the wholesale replace, reject day 9,
// delete, then confirm the record is gone.
func TestGroupLifecycle(t *testing.T) {
	h, _ := newTestHandler(t)
	router := groups.Routes(h)

	// Create.
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, testutil.NewJSONRequest(
		http.MethodPost, "/", `{"group_name":"Team A","members":["X","Y"]}`))
	rec.AssertStatus(t, http.StatusOK)

	var created models.GroupProject
	rec.DecodeJSON(t, &created)
	if created.ProjectType != "podcast" {
		t.Fatalf("project_type: got %q, want podcast", created.ProjectType)
	}

	// Update day 1 with a partial payload.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, testutil.NewJSONRequest(
		http.MethodPut, "/"+created.ID+"/day", `{"day":1,"data":{"topic":"Ocean"}}`))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"day":1`)

	// The stage was replaced wholesale: topic set, completed back to default.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, httptest.NewRequest(http.MethodGet, "/"+created.ID, nil))
	rec.AssertStatus(t, http.StatusOK)

	var fetched models.GroupProject
	rec.DecodeJSON(t, &fetched)
	if fetched.Day1.Topic != "Ocean" {
		t.Errorf("day1.topic: got %q, want Ocean", fetched.Day1.Topic)
	}
	if fetched.Day1.Completed {
		t.Error("day1.completed should be reset to false")
	}
	if fetched.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", fetched.UpdatedAt, created.UpdatedAt)
	}

	// Day 9 is out of range.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, testutil.NewJSONRequest(
		http.MethodPut, "/"+created.ID+"/day", `{"day":9,"data":{}}`))
	rec.AssertStatus(t, http.StatusBadRequest)

	// Delete, then the record is gone.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, httptest.NewRequest(http.MethodDelete, "/"+created.ID, nil))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, httptest.NewRequest(http.MethodGet, "/"+created.ID, nil))
	rec.AssertStatus(t, http.StatusNotFound)
}
