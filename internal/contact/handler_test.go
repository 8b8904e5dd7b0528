package contact

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*httptest.Server, *fakeStore) {
	t.Helper()
	repo := newFakeRepo()
	store := newFakeStore()
	svc := NewService(repo, store, zap.NewNop())
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/v1/contacts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

type contactForm struct {
	name, email, phone string
	isFavourite        string
	pictureName        string
	pictureBody        string
}

func (f contactForm) encode(t *testing.T) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("name", f.name)
	_ = w.WriteField("email", f.email)
	if f.phone != "" {
		_ = w.WriteField("phone", f.phone)
	}
	if f.isFavourite != "" {
		_ = w.WriteField("isFavourite", f.isFavourite)
	}
	if f.pictureName != "" {
		fw, err := w.CreateFormFile("picture", f.pictureName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(f.pictureBody)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doForm(t *testing.T, method, url string, f contactForm) (*http.Response, envelope) {
	t.Helper()
	body, contentType := f.encode(t)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}

func decodeContact(t *testing.T, raw json.RawMessage) Contact {
	t.Helper()
	var c Contact
	if err := json.Unmarshal(raw, &c); err != nil {
		t.Fatalf("decode contact: %v", err)
	}
	return c
}

func TestCreateEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{
		name: "Ada", email: "ada@x.com", phone: "555-1111",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	c := decodeContact(t, env.Data)
	if c.Picture != nil {
		t.Fatalf("expected empty picture, got %v", *c.Picture)
	}
	if c.Phone == nil || *c.Phone != "555-1111" {
		t.Fatalf("phone = %v", c.Phone)
	}
}

func TestCreateEndpointValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		form contactForm
	}{
		{name: "blank name", form: contactForm{name: " ", email: "a@x.com"}},
		{name: "blank email", form: contactForm{name: "Ada", email: ""}},
		{name: "email without at sign", form: contactForm{name: "Ada", email: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", tt.form)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if env.Error == "" {
				t.Fatal("expected an error message")
			}
		})
	}
}

func TestCreateEndpointDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)

	if resp, _ := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{name: "Ada", email: "ada@x.com"}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create status = %d", resp.StatusCode)
	}
	resp, _ := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{name: "Twin", email: "ada@x.com"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	listResp, listEnv := doGet(t, srv.URL+"/api/v1/contacts")
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", listResp.StatusCode)
	}
	var contacts []Contact
	if err := json.Unmarshal(listEnv.Data, &contacts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contact count = %d, want 1", len(contacts))
	}
}

func TestCreateEndpointWithPicture(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{
		name: "Bob", email: "bob@x.com", phone: "555-2222",
		pictureName: "photo.png", pictureBody: "png-bytes",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	c := decodeContact(t, env.Data)
	urlPattern := regexp.MustCompile(`^http://store\.local/contacts/contacts/[0-9a-f-]{36}\.png$`)
	if c.Picture == nil || !urlPattern.MatchString(*c.Picture) {
		t.Fatalf("picture = %v, want {base}/{bucket}/contacts/{uuid}.png", c.Picture)
	}
}

func TestCreateEndpointNotMultipart(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/contacts", "application/json", strings.NewReader(`{"name":"Ada"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetEndpointNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doGet(t, srv.URL+"/api/v1/contacts/unknown-id")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateEndpoint(t *testing.T) {
	srv, store := newTestServer(t)

	_, createEnv := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{
		name: "Bob", email: "bob@x.com", pictureName: "photo.png", pictureBody: "old",
	})
	created := decodeContact(t, createEnv.Data)
	oldKey := store.uploads[0]

	resp, env := doForm(t, http.MethodPut, srv.URL+"/api/v1/contacts/"+created.ID, contactForm{
		name: "Robert", email: "bob@x.com", isFavourite: "true",
		pictureName: "new.jpg", pictureBody: "new",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	updated := decodeContact(t, env.Data)
	if updated.Name != "Robert" || !updated.IsFavourite {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if _, ok := store.objects[oldKey]; ok {
		t.Fatalf("old object %q still in store", oldKey)
	}
	if updated.Picture == nil || !strings.HasSuffix(*updated.Picture, ".jpg") {
		t.Fatalf("picture URL does not reflect the new key: %v", updated.Picture)
	}
}

func TestUpdateEndpointNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doForm(t, http.MethodPut, srv.URL+"/api/v1/contacts/unknown-id", contactForm{
		name: "X", email: "x@x.com",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	_, env := doForm(t, http.MethodPost, srv.URL+"/api/v1/contacts", contactForm{name: "Ada", email: "ada@x.com"})
	created := decodeContact(t, env.Data)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/contacts/"+created.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	getResp, _ := doGet(t, srv.URL+"/api/v1/contacts/"+created.ID)
	if getResp.StatusCode != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want 404", getResp.StatusCode)
	}
}

func TestDeleteEndpointNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/contacts/unknown-id", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func doGet(t *testing.T, url string) (*http.Response, envelope) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}
