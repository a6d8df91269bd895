package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lawmate/internal/askai"
	"lawmate/internal/auth"
	"lawmate/internal/compliance"
	"lawmate/internal/directory"
	"lawmate/internal/document"
	"lawmate/internal/generate"
	"lawmate/internal/template"
)

// stubAskAI avoids a network hop in transport tests.
type stubAskAI struct {
	answer string
}

func (s *stubAskAI) Ask(_ context.Context, q askai.Question) (*askai.Answer, error) {
	return &askai.Answer{Answer: s.answer}, nil
}

type RouterSuite struct {
	suite.Suite
	server *httptest.Server
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewJWTService("test-signing-key", "lawmate")
	users := auth.NewInMemoryStore()

	registry := template.NewRegistry()

	deps := Deps{
		Logger:       logger,
		JWTValidator: auth.NewMiddlewareValidator(tokens),
		Auth:         auth.NewService(users, tokens, time.Hour, nil, nil, logger),
		Documents:    document.NewService(document.NewInMemoryStore(), nil, nil),
		Generate:     generate.NewService(registry, template.NewRenderer(), nil),
		Checker:      compliance.NewChecker(),
		Directory:    directory.NewService(users, directory.NewMemoryCache(), time.Minute, logger),
		AskAI:        &stubAskAI{answer: "استشر محامياً"},
	}
	s.server = httptest.NewServer(NewRouter(deps))
}

func (s *RouterSuite) TearDownTest() {
	s.server.Close()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) postJSON(path, token string, body any) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, bytes.NewReader(payload))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *RouterSuite) do(method, path, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *RouterSuite) decode(resp *http.Response, dst any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
}

func (s *RouterSuite) register(email string) (token string) {
	resp := s.postJSON("/api/register", "", map[string]any{
		"firstName": "Nadia",
		"lastName":  "Saab",
		"email":     email,
		"password":  "correct horse",
		"userType":  "user",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var session struct {
		Token string `json:"token"`
	}
	s.decode(resp, &session)
	s.Require().NotEmpty(session.Token)
	return session.Token
}

func (s *RouterSuite) TestHealth() {
	resp, err := s.server.Client().Get(s.server.URL + "/health")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *RouterSuite) TestRegisterLoginProfile() {
	token := s.register("nadia@example.com")

	s.Run("duplicate email conflicts", func() {
		resp := s.postJSON("/api/register", "", map[string]any{
			"firstName": "Other",
			"lastName":  "Person",
			"email":     "nadia@example.com",
			"password":  "another pass",
			"userType":  "user",
		})
		s.Equal(http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	s.Run("login returns a working token", func() {
		resp := s.postJSON("/api/login", "", map[string]string{
			"email":    "nadia@example.com",
			"password": "correct horse",
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var session struct {
			Token string `json:"token"`
		}
		s.decode(resp, &session)

		profile := s.do(http.MethodGet, "/api/profile", session.Token, nil)
		s.Equal(http.StatusOK, profile.StatusCode)
		profile.Body.Close()
	})

	s.Run("wrong password is unauthorized", func() {
		resp := s.postJSON("/api/login", "", map[string]string{
			"email":    "nadia@example.com",
			"password": "wrong",
		})
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.Run("profile requires a token", func() {
		resp := s.do(http.MethodGet, "/api/profile", "", nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.Run("profile update round-trips", func() {
		resp := s.do(http.MethodPut, "/api/profile", token, map[string]string{
			"firstName": "Nadya",
			"lastName":  "Saab",
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var user auth.User
		s.decode(resp, &user)
		s.Equal("Nadya", user.FirstName)
	})

	s.Run("register rejects short passwords", func() {
		resp := s.postJSON("/api/register", "", map[string]any{
			"firstName": "A",
			"lastName":  "B",
			"email":     "short@example.com",
			"password":  "short",
			"userType":  "user",
		})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func (s *RouterSuite) TestDocumentCRUD() {
	token := s.register("docs@example.com")

	resp := s.postJSON("/api/documents", token, map[string]any{
		"title":   "عقد إيجار",
		"content": "النص",
		"type":    "rental",
		"tags":    []string{"ايجار"},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var doc document.Document
	s.decode(resp, &doc)

	s.Run("list shows the document", func() {
		resp := s.do(http.MethodGet, "/api/documents", token, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var docs []document.Document
		s.decode(resp, &docs)
		s.Require().Len(docs, 1)
		s.Equal(doc.ID, docs[0].ID)
	})

	s.Run("another user cannot read it", func() {
		other := s.register("intruder@example.com")
		resp := s.do(http.MethodGet, "/api/documents/"+doc.ID.String(), other, nil)
		s.Equal(http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	s.Run("update and delete", func() {
		resp := s.do(http.MethodPut, "/api/documents/"+doc.ID.String(), token, map[string]any{
			"title":   "عقد إيجار معدل",
			"content": "النص الجديد",
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var updated document.Document
		s.decode(resp, &updated)
		s.Equal("عقد إيجار معدل", updated.Title)

		del := s.do(http.MethodDelete, "/api/documents/"+doc.ID.String(), token, nil)
		s.Equal(http.StatusNoContent, del.StatusCode)
		del.Body.Close()

		gone := s.do(http.MethodGet, "/api/documents/"+doc.ID.String(), token, nil)
		s.Equal(http.StatusNotFound, gone.StatusCode)
		gone.Body.Close()
	})

	s.Run("requires auth", func() {
		resp := s.do(http.MethodGet, "/api/documents", "", nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func (s *RouterSuite) TestTemplatesAndGenerate() {
	s.Run("catalog lists templates without bodies", func() {
		resp := s.do(http.MethodGet, "/api/templates", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var infos []templateInfo
		s.decode(resp, &infos)
		s.Require().NotEmpty(infos)
		s.Equal("ikrar", infos[0].ID)
	})

	s.Run("fields endpoint degrades for unknown ids", func() {
		resp := s.do(http.MethodGet, "/api/templates/nonexistent/fields", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var out struct {
			Fields []string `json:"fields"`
		}
		s.decode(resp, &out)
		s.Empty(out.Fields)
	})

	s.Run("generate renders and returns the sms text", func() {
		resp := s.postJSON("/api/generate", "", map[string]any{
			"templateId": "ikrar",
			"fields":     map[string]string{"partyName": "سمير حداد"},
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var out struct {
			Text string `json:"text"`
			SMS  string `json:"sms"`
		}
		s.decode(resp, &out)
		s.Contains(out.Text, "سمير حداد")
		s.Contains(out.Text, template.Watermark)
		s.Contains(out.SMS, "وثيقتك جاهزة للتحميل")
	})

	s.Run("generate rejects unknown templates", func() {
		resp := s.postJSON("/api/generate", "", map[string]any{"templateId": "nope"})
		s.Equal(http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func (s *RouterSuite) TestComplianceCheck() {
	resp := s.postJSON("/api/compliance/check", "", map[string]string{
		"documentType": "rental",
		"text":         "عقد في طرابلس",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var report compliance.Report
	s.decode(resp, &report)
	s.Equal(compliance.CourtTripoli, report.Court)
	s.Len(report.Violations, 2)
}

func (s *RouterSuite) TestTranslate() {
	resp := s.postJSON("/api/translate", "", map[string]string{
		"term": "Force majeure",
		"lang": "ar",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var out struct {
		Translation string `json:"translation"`
	}
	s.decode(resp, &out)
	s.Equal("القوة القاهرة", out.Translation)
}

func (s *RouterSuite) TestAskAI() {
	resp := s.postJSON("/api/askai", "", map[string]string{"question": "سؤال"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var out struct {
		Answer string `json:"answer"`
	}
	s.decode(resp, &out)
	s.Equal("استشر محامياً", out.Answer)
}

func (s *RouterSuite) TestDirectoryAndBooking() {
	resp := s.postJSON("/api/register", "", map[string]any{
		"firstName":     "Fadi",
		"lastName":      "Nassar",
		"email":         "fadi@example.com",
		"password":      "mokhtar pass",
		"userType":      "mokhtar",
		"mokhtarOffice": "Hamra",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var mokhtars []directory.Listing
	list := s.do(http.MethodGet, "/api/mokhtars", "", nil)
	s.Require().Equal(http.StatusOK, list.StatusCode)
	s.decode(list, &mokhtars)
	s.Require().Len(mokhtars, 1)

	s.Run("booking requires auth", func() {
		resp := s.postJSON("/api/mokhtars/"+mokhtars[0].ID+"/book", "", map[string]string{"date": "2026-09-10"})
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	s.Run("booking returns the confirmation sms", func() {
		token := s.register("client@example.com")
		resp := s.postJSON("/api/mokhtars/"+mokhtars[0].ID+"/book", token, map[string]string{"date": "2026-09-10"})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var out struct {
			Confirmation string `json:"confirmation"`
		}
		s.decode(resp, &out)
		s.Contains(out.Confirmation, "حجز مؤكد")
		s.Contains(out.Confirmation, "2026-09-10")
	})
}
