package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"stayflow/internal/api"
	"stayflow/internal/config"
	"stayflow/internal/core"
	"stayflow/internal/infra/persistence/memory"
)

var apiNow = time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*api.Server, *core.Service) {
	t.Helper()
	store := memory.NewStore(core.NewDefaultRulesEngine())
	store.SetNow(func() time.Time { return apiNow })
	svc := core.NewService(store, core.WithClock(func() time.Time { return apiNow }))
	cfg := config.Config{HTTPAddr: ":0", Property: config.PropertySettings{Name: "Test Hotel", Currency: "USD"}}
	return api.NewServer(svc, cfg, nil), svc
}

func doJSON(t *testing.T, server *api.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body.String(), err)
	}
}

func createRoomHTTP(t *testing.T, server *api.Server) int {
	t.Helper()
	rec := doJSON(t, server, http.MethodPost, "/api/rooms",
		`{"number":"204","type":"Double","floor":"2","rate":"100.00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create room status %d: %s", rec.Code, rec.Body.String())
	}
	var room struct {
		ID int `json:"id"`
	}
	decode(t, rec, &room)
	return room.ID
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz = %d", rec.Code)
	}
}

func TestRoomBoardFiltersAndStats(t *testing.T) {
	server, _ := newTestServer(t)
	id := createRoomHTTP(t, server)
	doJSON(t, server, http.MethodPost, "/api/rooms", `{"number":"301","type":"Suite","floor":"3","rate":"240"}`)

	rec := doJSON(t, server, http.MethodPost, "/api/rooms/"+strconv.Itoa(id)+"/advance-status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("advance = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, server, http.MethodGet, "/api/rooms?status=occupied", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d", rec.Code)
	}
	var board struct {
		Items  []json.RawMessage `json:"items"`
		Stats  map[string]int    `json:"stats"`
		Floors []int             `json:"floors"`
	}
	decode(t, rec, &board)
	if len(board.Items) != 1 {
		t.Fatalf("occupied filter = %d items", len(board.Items))
	}
	if board.Stats["all"] != 2 || board.Stats["occupied"] != 1 || board.Stats["available"] != 1 {
		t.Fatalf("stats = %v", board.Stats)
	}
	if len(board.Floors) != 2 {
		t.Fatalf("floors = %v", board.Floors)
	}
}

func TestCreateRoomValidationReturns422(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/rooms", `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, rec, &payload)
	if payload.Errors["number"] != "Room number is required" {
		t.Fatalf("field map = %v", payload.Errors)
	}
}

func TestMissingRoomReturns404(t *testing.T) {
	server, _ := newTestServer(t)
	if rec := doJSON(t, server, http.MethodGet, "/api/rooms/999", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get = %d", rec.Code)
	}
	if rec := doJSON(t, server, http.MethodPut, "/api/rooms/999", `{"rate":120}`); rec.Code != http.StatusNotFound {
		t.Fatalf("update = %d", rec.Code)
	}
}

func TestReservationFlowOverHTTP(t *testing.T) {
	server, _ := newTestServer(t)
	roomID := createRoomHTTP(t, server)

	rec := doJSON(t, server, http.MethodPost, "/api/reservations",
		`{"guest_name":"Maria Garcia","guest_email":"maria@example.com","guest_phone":"+1-555-0142",`+
			`"room_id":"`+strconv.Itoa(roomID)+`","check_in":"2026-03-01","check_out":"2026-03-04"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID          int     `json:"id"`
		TotalAmount float64 `json:"total_amount"`
	}
	decode(t, rec, &created)
	if created.TotalAmount != 300 {
		t.Fatalf("auto total = %v", created.TotalAmount)
	}

	path := "/api/reservations/" + strconv.Itoa(created.ID)
	if rec := doJSON(t, server, http.MethodPost, path+"/check-out", ""); rec.Code != http.StatusConflict {
		t.Fatalf("checkout before checkin = %d", rec.Code)
	}
	if rec := doJSON(t, server, http.MethodPost, path+"/check-in", ""); rec.Code != http.StatusOK {
		t.Fatalf("check-in = %d: %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(t, server, http.MethodPost, path+"/cancel", ""); rec.Code != http.StatusConflict {
		t.Fatalf("cancel after check-in = %d", rec.Code)
	}
	if rec := doJSON(t, server, http.MethodPost, path+"/check-out", ""); rec.Code != http.StatusOK {
		t.Fatalf("check-out = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReservationSearchFilter(t *testing.T) {
	server, _ := newTestServer(t)
	roomID := createRoomHTTP(t, server)
	second := doJSON(t, server, http.MethodPost, "/api/rooms", `{"number":"205","type":"Double","floor":"2","rate":"90"}`)
	var other struct {
		ID int `json:"id"`
	}
	decode(t, second, &other)

	doJSON(t, server, http.MethodPost, "/api/reservations",
		`{"guest_name":"Maria Garcia","guest_email":"maria@example.com","guest_phone":"1","room_id":"`+
			strconv.Itoa(roomID)+`","check_in":"2026-03-01","check_out":"2026-03-03","total_amount":"200"}`)
	doJSON(t, server, http.MethodPost, "/api/reservations",
		`{"guest_name":"John Smith","guest_email":"john@example.com","guest_phone":"2","room_id":"`+
			strconv.Itoa(other.ID)+`","check_in":"2026-03-05","check_out":"2026-03-07","total_amount":"180"}`)

	rec := doJSON(t, server, http.MethodGet, "/api/reservations?search=garcia", "")
	var board struct {
		Items []struct {
			GuestName string `json:"guest_name"`
		} `json:"items"`
		Stats map[string]int `json:"stats"`
	}
	decode(t, rec, &board)
	if len(board.Items) != 1 || board.Items[0].GuestName != "Maria Garcia" {
		t.Fatalf("search = %+v", board.Items)
	}
	if board.Stats["all"] != 2 {
		t.Fatalf("stats must span the whole collection: %v", board.Stats)
	}
}

func TestHousekeepingFlowOverHTTP(t *testing.T) {
	server, _ := newTestServer(t)
	roomID := createRoomHTTP(t, server)

	rec := doJSON(t, server, http.MethodPost, "/api/housekeeping",
		`{"room_id":"`+strconv.Itoa(roomID)+`","type":"Deep Cleaning","assigned_to":"Rosa Delgado",`+
			`"priority":"high","scheduled_time":"2026-02-10T12:00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	var task struct {
		ID int `json:"id"`
	}
	decode(t, rec, &task)

	path := "/api/housekeeping/" + strconv.Itoa(task.ID)
	if rec := doJSON(t, server, http.MethodPost, path+"/complete", ""); rec.Code != http.StatusConflict {
		t.Fatalf("complete before start = %d", rec.Code)
	}
	if rec := doJSON(t, server, http.MethodPost, path+"/start", ""); rec.Code != http.StatusOK {
		t.Fatalf("start = %d", rec.Code)
	}
	rec = doJSON(t, server, http.MethodPost, path+"/complete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete = %d: %s", rec.Code, rec.Body.String())
	}
	var completed struct {
		Status        string  `json:"status"`
		CompletedTime *string `json:"completed_time"`
	}
	decode(t, rec, &completed)
	if completed.Status != "completed" || completed.CompletedTime == nil {
		t.Fatalf("completed task = %+v", completed)
	}
}

func TestDashboardSummary(t *testing.T) {
	server, _ := newTestServer(t)
	createRoomHTTP(t, server)

	rec := doJSON(t, server, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard = %d", rec.Code)
	}
	var summary struct {
		TotalRooms    int            `json:"total_rooms"`
		OccupancyRate int            `json:"occupancy_rate"`
		RoomStats     map[string]int `json:"room_stats"`
	}
	decode(t, rec, &summary)
	if summary.TotalRooms != 1 || summary.OccupancyRate != 0 || summary.RoomStats["available"] != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestSettingsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodGet, "/api/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("settings = %d", rec.Code)
	}
	var settings struct {
		PropertyName string `json:"property_name"`
		Currency     string `json:"currency"`
	}
	decode(t, rec, &settings)
	if settings.PropertyName != "Test Hotel" || settings.Currency != "USD" {
		t.Fatalf("settings = %+v", settings)
	}
}

func TestReservationExport(t *testing.T) {
	server, _ := newTestServer(t)
	roomID := createRoomHTTP(t, server)
	doJSON(t, server, http.MethodPost, "/api/reservations",
		`{"guest_name":"Maria Garcia","guest_email":"maria@example.com","guest_phone":"1","room_id":"`+
			strconv.Itoa(roomID)+`","check_in":"2026-03-01","check_out":"2026-03-03","total_amount":"200"}`)

	rec := doJSON(t, server, http.MethodGet, "/api/reservations/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "reservations.xlsx") {
		t.Fatalf("disposition = %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty workbook body")
	}
}
