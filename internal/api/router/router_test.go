package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/api/handler"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/internal/testutil"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/photostore/local"
	"github.com/MobeenM17/SuswearGProject/pkg/validate"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}, make([]byte, 64)...)

func setupApp(t *testing.T) http.Handler {
	t.Helper()
	if err := validate.RegisterGinTags(); err != nil {
		t.Fatalf("RegisterGinTags: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			SessionSecret: "test-secret-key-for-unit-testing-2026",
			SessionTTL:    time.Hour,
			BcryptCost:    bcrypt.MinCost,
			Cookie:        config.CookieConfig{SameSite: "Lax"},
		},
		Storage: config.StorageConfig{PublicPrefix: "/uploads", MaxPhotoSize: 1 << 20},
	}
	logger := zap.NewNop()

	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "Staff One", "staff@example.com", "abc123", model.RoleStaff)
	testutil.CreateUser(t, db, "Admin", "admin@example.com", "abc123", model.RoleAdmin)

	dir := t.TempDir()
	photos, err := local.NewStore(dir, cfg.Storage.PublicPrefix, logger)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, nil, photos, logger)
	h := handler.NewHandler(cfg, svc, jwtMgr, logger)
	return Setup(cfg, h, jwtMgr, nil, dir, logger)
}

type client struct {
	t       *testing.T
	app     http.Handler
	cookies []*http.Cookie
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.app.ServeHTTP(w, req)
	return w
}

func (c *client) json(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) login(email, password string) {
	c.t.Helper()
	w := c.json("POST", "/api/login", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		c.t.Fatalf("login %s: expected 200, got %d: %s", email, w.Code, w.Body.String())
	}
	c.cookies = w.Result().Cookies()
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v (%s)", err, env.Data)
		}
	}
}

func TestDonationFlow(t *testing.T) {
	a := setupApp(t)
	anon := &client{t: t, app: a}

	// register + login as donor
	w := anon.json("POST", "/api/register", map[string]string{
		"fullName": "Dana Donor", "email": "Dana@Example.com", "password": "wardrobe42",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	donor := &client{t: t, app: a}
	donor.login("dana@example.com", "wardrobe42")

	// submit
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("description", "Warm winter coat")
	mw.WriteField("categoryId", "Coats & Jackets")
	mw.WriteField("weightKg", "1.8")
	fw, _ := mw.CreateFormFile("photo", "coat.png")
	fw.Write(pngBytes)
	mw.Close()
	req := httptest.NewRequest("POST", "/api/donations", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = donor.do(req)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct{ ID int }
	decode(t, w, &created)

	// donors cannot review
	if w := donor.json("PUT", "/api/donations/review", map[string]interface{}{"donationId": created.ID, "action": "accept"}); w.Code != http.StatusForbidden {
		t.Errorf("donor review: expected 403, got %d", w.Code)
	}

	// staff accepts
	staff := &client{t: t, app: a}
	staff.login("staff@example.com", "abc123")
	w = staff.json("GET", "/api/donations?status=pending", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Dana Donor") {
		t.Fatalf("pending queue: %d %s", w.Code, w.Body.String())
	}
	w = staff.json("PUT", "/api/donations/review", map[string]interface{}{
		"donationId": created.ID, "action": "accept", "sizeLabel": "L",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("review: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = staff.json("PUT", "/api/donations/review", map[string]interface{}{"donationId": created.ID, "action": "reject"})
	if w.Code != http.StatusConflict {
		t.Errorf("re-review: expected 409, got %d", w.Code)
	}

	// unknown fields are rejected
	w = staff.json("PUT", "/api/donations/review", map[string]interface{}{"donationId": created.ID, "action": "accept", "bogus": 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown field: expected 400, got %d", w.Code)
	}

	// public shop shows the arriving item with its photo
	w = anon.json("GET", "/api/inventory", nil)
	var shop struct {
		List []struct {
			Status    string   `json:"status"`
			PhotoURLs []string `json:"photoUrls"`
		} `json:"list"`
	}
	decode(t, w, &shop)
	if len(shop.List) != 1 || shop.List[0].Status != "Arriving" || len(shop.List[0].PhotoURLs) != 1 {
		t.Fatalf("unexpected shop %+v", shop)
	}
	if w := anon.do(httptest.NewRequest("GET", shop.List[0].PhotoURLs[0], nil)); w.Code != http.StatusOK {
		t.Errorf("photo not served at %s: %d", shop.List[0].PhotoURLs[0], w.Code)
	}

	// donor ships it
	w = donor.json("POST", "/api/donations/send", map[string]int{"donationId": created.ID, "charityId": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("send: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = staff.json("GET", "/api/staff/notifications", nil)
	if !strings.Contains(w.Body.String(), "Donation Sent") {
		t.Errorf("staff not notified: %s", w.Body.String())
	}
	w = donor.json("GET", "/api/notifications", nil)
	if !strings.Contains(w.Body.String(), "Accepted") {
		t.Errorf("donor not notified: %s", w.Body.String())
	}

	// admin report
	admin := &client{t: t, app: a}
	admin.login("admin@example.com", "abc123")
	w = admin.json("POST", "/api/reports/co2", map[string]string{"donorEmail": "DANA@example.com"})
	var report struct {
		TotalDonations int     `json:"totalDonations"`
		TotalCO2       float64 `json:"totalCO2"`
		Landfill       float64 `json:"landfillSavedKG"`
	}
	decode(t, w, &report)
	if w.Code != http.StatusOK || report.TotalDonations != 1 || report.TotalCO2 != 12.0 || report.Landfill != 10.0 {
		t.Errorf("unexpected report %d %+v", w.Code, report)
	}
	if w := staff.json("POST", "/api/reports/co2", nil); w.Code != http.StatusForbidden {
		t.Errorf("staff report: expected 403, got %d", w.Code)
	}
}

func TestSessionRequired(t *testing.T) {
	a := setupApp(t)
	anon := &client{t: t, app: a}

	for _, path := range []string{"/api/donations/mine", "/api/staff/notifications", "/api/admin/donors"} {
		if w := anon.json("GET", path, nil); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
	if w := anon.json("GET", "/health", nil); w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	a := setupApp(t)
	admin := &client{t: t, app: a}
	admin.login("admin@example.com", "abc123")

	if w := admin.json("GET", "/api/admin/staff", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w := admin.json("POST", "/api/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	admin.cookies = w.Result().Cookies()
	for _, ck := range admin.cookies {
		if ck.Value != "" {
			t.Errorf("cookie %s not cleared", ck.Name)
		}
	}
	admin.cookies = nil
	if w := admin.json("GET", "/api/admin/staff", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("after logout: expected 401, got %d", w.Code)
	}
}

func TestPromoteThroughAPI(t *testing.T) {
	a := setupApp(t)
	anon := &client{t: t, app: a}
	w := anon.json("POST", "/api/register", map[string]string{"fullName": "Vol", "email": "vol@example.com", "password": "helping12"})
	var reg struct{ ID int }
	decode(t, w, &reg)

	admin := &client{t: t, app: a}
	admin.login("admin@example.com", "abc123")
	if w := admin.json("POST", "/api/admin/promote-donor", map[string]int{"userId": reg.ID}); w.Code != http.StatusOK {
		t.Fatalf("promote: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = admin.json("GET", "/api/admin/staff", nil)
	if !strings.Contains(w.Body.String(), fmt.Sprintf(`"userId":%d`, reg.ID)) {
		t.Errorf("promoted user missing from staff list: %s", w.Body.String())
	}

	vol := &client{t: t, app: a}
	vol.login("vol@example.com", "helping12")
	if w := vol.json("GET", "/api/donations?status=pending", nil); w.Code != http.StatusOK {
		t.Errorf("promoted user should reach the staff queue after a new login, got %d", w.Code)
	}
}
