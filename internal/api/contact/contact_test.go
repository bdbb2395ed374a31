package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samirwankhede/contact-relay/internal/mailer"
	contactService "github.com/samirwankhede/contact-relay/internal/service/contact"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSender struct {
	mu    sync.Mutex
	err   error
	calls []mailer.Mail
}

func (s *stubSender) Send(_ context.Context, m mailer.Mail) (mailer.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, m)
	if s.err != nil {
		return mailer.Receipt{}, s.err
	}
	return mailer.Receipt{MessageID: "<stub@example.com>"}, nil
}

func newRouter(sender mailer.Sender) *gin.Engine {
	log := zap.NewNop()
	svc := contactService.NewContactService(log, sender, "box@example.com")
	r := gin.New()
	NewContactHandler(log, svc).Register(r)
	return r
}

func post(r *gin.Engine, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func TestSubmit_Success(t *testing.T) {
	sender := &stubSender{}
	r := newRouter(sender)

	rr := post(r, "application/json", `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Email sent successfully!", message(t, rr))
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "New Portfolio Contact: Hi", sender.calls[0].Subject)
	for _, v := range []string{"Ada", "ada@example.com", "Hi", "Hello there"} {
		assert.Contains(t, sender.calls[0].HTML, v)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"empty name":      `{"name":"","email":"a@b.com","subject":"Hi","message":"Hi"}`,
		"missing email":   `{"name":"Ada","subject":"Hi","message":"Hi"}`,
		"missing subject": `{"name":"Ada","email":"a@b.com","message":"Hi"}`,
		"empty message":   `{"name":"Ada","email":"a@b.com","subject":"Hi","message":""}`,
		"empty object":    `{}`,
		"empty body":      ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			sender := &stubSender{}
			rr := post(newRouter(sender), "application/json", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "All fields are required.", message(t, rr))
			assert.Empty(t, sender.calls)
		})
	}
}

func TestSubmit_NonJSONBodyIsIgnored(t *testing.T) {
	sender := &stubSender{}
	rr := post(newRouter(sender), "text/plain", `{"name":"Ada","email":"a@b.com","subject":"Hi","message":"Hi"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "All fields are required.", message(t, rr))
	assert.Empty(t, sender.calls)
}

func TestSubmit_MalformedJSON(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":     `{"name":"Ada",`,
		"wrong type": `{"name":42,"email":"a@b.com","subject":"Hi","message":"Hi"}`,
	} {
		t.Run(name, func(t *testing.T) {
			sender := &stubSender{}
			rr := post(newRouter(sender), "application/json; charset=utf-8", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Invalid request body.", message(t, rr))
			assert.Empty(t, sender.calls)
		})
	}
}

func TestSubmit_RelayFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("dial tcp: connection refused")}
	rr := post(newRouter(sender), "application/json", `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to send email. Please try again later.", message(t, rr))
	assert.Len(t, sender.calls, 1)
}
