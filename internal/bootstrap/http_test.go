package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/init-pkg/excel-users/domain/app"
	events_service "github.com/init-pkg/excel-users/internal/app/events/service"
	excel_parser_service "github.com/init-pkg/excel-users/internal/app/excel-parser/service"
	excel_parser_http_handler "github.com/init-pkg/excel-users/internal/app/excel-parser/transports/http"
	ingestion_service "github.com/init-pkg/excel-users/internal/app/ingestion/service"
	user_repository "github.com/init-pkg/excel-users/internal/app/persistence/repository"
	persistence_service "github.com/init-pkg/excel-users/internal/app/persistence/service"
	persistence_http_handler "github.com/init-pkg/excel-users/internal/app/persistence/transports/http"
	staging_service "github.com/init-pkg/excel-users/internal/app/staging/service"
	staging_http_handler "github.com/init-pkg/excel-users/internal/app/staging/transports/http"
	summary_service "github.com/init-pkg/excel-users/internal/app/summary/service"
	validation_service "github.com/init-pkg/excel-users/internal/app/validation/service"
	db_client "github.com/init-pkg/excel-users/internal/clients/db"
	"github.com/init-pkg/excel-users/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type testServer struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Http.UploadMaxBytes = 4 << 20
	cfg.Records.DefaultPageSize = 50
	cfg.Infrastructure.Db = config.Db{Driver: "sqlite", Dsn: filepath.Join(t.TempDir(), "users.db")}

	db, err := db_client.Open(cfg.Infrastructure.Db)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db_client.Migrate(db, cfg.Infrastructure.Db.Driver, discard); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	var (
		store     = staging_service.New(cfg)
		summaries = summary_service.NewMemory()
		events    = events_service.NoopPublisher{}
		pipeline  = ingestion_service.New(
			excel_parser_service.New(discard),
			validation_service.New(discard),
			store, summaries, events, discard,
		)
		gateway = persistence_service.New(user_repository.New(db), discard)
		users   = persistence_service.NewUsersService(store, gateway, events, discard)
	)

	server := NewHttpApp(cfg, discard)
	RegisterHandlers(server, []app.HttpHandler{
		excel_parser_http_handler.New(pipeline, summaries, discard),
		staging_http_handler.New(store, discard),
		persistence_http_handler.New(users),
	})
	return &testServer{server, db}
}

func (this *testServer) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	res, err := this.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, body
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		part.Write(content)
	} else {
		w.WriteField("note", "no file here")
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func workbookOf(t *testing.T, n int) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{"Names", "NID", "phone number", "gender", "email"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	for i := 0; i < n; i++ {
		line := []any{
			fmt.Sprintf("User %03d", i),
			fmt.Sprintf("11998800123%05d", i),
			"0721234567",
			"M",
			fmt.Sprintf("user%d@example.com", i),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &line); err != nil {
			t.Fatalf("row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.Bytes()
}

func TestWelcome(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	var res map[string]string
	if err := json.Unmarshal(body, &res); err != nil || res["message"] != welcomeMessage {
		t.Fatalf("body %s", body)
	}
}

func TestUploadRejections(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		req      *http.Request
		wantDesc string
	}{
		{"wrong extension", uploadRequest(t, "file.csv", []byte("a,b\n")), "Wrong extension type"},
		{"no file", uploadRequest(t, "", nil), "No file passed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := s.do(t, tc.req)
			if code != http.StatusOK {
				t.Fatalf("status %d, body %s", code, body)
			}
			var res struct {
				ErrorCode int    `json:"error_code"`
				ErrDesc   string `json:"err_desc"`
			}
			if err := json.Unmarshal(body, &res); err != nil {
				t.Fatalf("decode %s: %v", body, err)
			}
			if res.ErrorCode != 1 || res.ErrDesc != tc.wantDesc {
				t.Fatalf("got %+v", res)
			}
		})
	}

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/records", nil))
	if code != http.StatusOK || string(bytes.TrimSpace(body)) != "[]" {
		t.Fatalf("records after rejections: %d %s", code, body)
	}
}

func TestUploadMalformedWorkbook(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, uploadRequest(t, "users.xlsx", []byte("definitely not a zip")))
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, body %s", code, body)
	}
}

func TestUploadPageAndPersist(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, uploadRequest(t, "users.xlsx", workbookOf(t, 120)))
	if code != http.StatusOK || len(body) != 0 {
		t.Fatalf("upload: %d %s", code, body)
	}

	pages := map[string]int{
		"/records":                   50,
		"/records?page=3&limit=50":   20,
		"/records?page=4&limit=50":   0,
		"/records?page=x&limit=y":    50,
		"/records?page=2&limit=100":  20,
		"/records?page=3&limit=abc":  50,
		"/records?page=3&limit=-1":   50,
		"/records?page=3&limit=5000": 50,
	}
	for url, want := range pages {
		code, body := s.do(t, httptest.NewRequest(http.MethodGet, url, nil))
		if code != http.StatusOK {
			t.Fatalf("%s: status %d", url, code)
		}
		var rows []map[string]any
		if err := json.Unmarshal(body, &rows); err != nil {
			t.Fatalf("%s: decode %s: %v", url, body, err)
		}
		if rows == nil || len(rows) != want {
			t.Fatalf("%s: %d rows, want %d", url, len(rows), want)
		}
		for _, row := range rows {
			if v, ok := row[app.ValidationErrorsKey]; !ok || v != "" {
				t.Fatalf("%s: validation errors field = %v (present %v)", url, v, ok)
			}
		}
	}

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, "/upload/summary", nil))
	if code != http.StatusOK {
		t.Fatalf("summary: %d %s", code, body)
	}
	var summary app.IngestionSummary
	if err := json.Unmarshal(body, &summary); err != nil || summary.TotalRows != 120 || summary.FileName != "users.xlsx" {
		t.Fatalf("summary = %s (%v)", body, err)
	}

	// a second upload replaces the 120 staged rows
	if code, body := s.do(t, uploadRequest(t, "users.xls", workbookOf(t, 10))); code != http.StatusOK {
		t.Fatalf("second upload: %d %s", code, body)
	}

	code, body = s.do(t, httptest.NewRequest(http.MethodPost, "/users", nil))
	if code != http.StatusCreated {
		t.Fatalf("persist: %d %s", code, body)
	}
	var persisted struct {
		Persisted int `json:"persisted"`
	}
	if err := json.Unmarshal(body, &persisted); err != nil || persisted.Persisted != 10 {
		t.Fatalf("persist body = %s (%v)", body, err)
	}
	var count int64
	if err := s.db.Model(&app.User{}).Count(&count).Error; err != nil || count != 10 {
		t.Fatalf("users count = %d (%v)", count, err)
	}
}

func TestPersistFailureReturns500(t *testing.T) {
	s := newTestServer(t)
	if err := s.db.Exec(`CREATE UNIQUE INDEX idx_users_nid ON users ("NID")`).Error; err != nil {
		t.Fatalf("index: %v", err)
	}

	s.do(t, uploadRequest(t, "users.xlsx", workbookOf(t, 5)))
	if code, body := s.do(t, httptest.NewRequest(http.MethodPost, "/users", nil)); code != http.StatusCreated {
		t.Fatalf("first persist: %d %s", code, body)
	}

	code, body := s.do(t, httptest.NewRequest(http.MethodPost, "/users", nil))
	if code != http.StatusInternalServerError {
		t.Fatalf("second persist: %d %s", code, body)
	}
	var res struct {
		Error string `json:"error"`
		Index int    `json:"index"`
	}
	if err := json.Unmarshal(body, &res); err != nil || res.Error == "" || res.Index != 0 {
		t.Fatalf("error body = %s (%v)", body, err)
	}
}

func TestSummaryNotFound(t *testing.T) {
	s := newTestServer(t)
	code, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/upload/summary", nil))
	if code != http.StatusNotFound {
		t.Fatalf("status %d", code)
	}
}

func TestUploadTemplate(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/upload/template", nil))
	if code != http.StatusOK || !bytes.Contains(body, []byte(`"phone number"`)) {
		t.Fatalf("template: %d %s", code, body)
	}
}

func TestDependencyGraph(t *testing.T) {
	if err := fx.ValidateApp(coreOptions(), clientsOptions(), appOptions()); err != nil {
		t.Fatalf("fx graph: %v", err)
	}
}
