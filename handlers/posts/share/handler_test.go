package share

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"inkwell-backend/testutils"
	"inkwell-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type sentMail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(subject, body, from string, to []string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{Subject: subject, Body: body, From: from, To: to})
	return nil
}

func installMailer(t *testing.T, m utils.Mailer) {
	original := utils.Mail
	utils.Mail = m
	t.Cleanup(func() { utils.Mail = original })
}

var postColumns = []string{"id", "title", "slug", "user_id", "body", "publish", "status", "created_at", "updated_at"}

func mockPostByID(mock sqlmock.Sqlmock, postID string) {
	publish := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE (.*)posts\.id = \$1(.+)LIMIT`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(postID, "Latest one", "latest-one", "author-1", "Some body text", publish, "published", publish, publish))
}

func postShareForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Host = "blog.example.com"
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSendPost_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mailer := &fakeMailer{}
	installMailer(t, mailer)

	postID := "11111111-1111-1111-1111-111111111111"
	mockPostByID(mock, postID)

	r := testutils.SetupTestRouter()
	r.POST("/:year/share", SendPost)

	resp := postShareForm(r, "/"+postID+"/share", url.Values{
		"name":     {"Alice"},
		"email":    {"a@x.com"},
		"to":       {"b@y.com"},
		"comments": {""},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "E-mail successfully sent")

	assert.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Contains(t, msg.Subject, "Alice")
	assert.Contains(t, msg.Subject, "a@x.com")
	assert.Contains(t, msg.Body, "http://blog.example.com/2025/03/09/latest-one")
	assert.Equal(t, []string{"b@y.com"}, msg.To)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPost_InvalidRecipient(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mailer := &fakeMailer{}
	installMailer(t, mailer)

	postID := "11111111-1111-1111-1111-111111111111"
	mockPostByID(mock, postID)

	r := testutils.SetupTestRouter()
	r.POST("/:year/share", SendPost)

	resp := postShareForm(r, "/"+postID+"/share", url.Values{
		"name":  {"Alice"},
		"email": {"a@x.com"},
		"to":    {"not-an-email"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Enter a valid email address.")
	assert.NotContains(t, resp.Body.String(), "E-mail successfully sent")
	assert.Empty(t, mailer.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPost_MailerFailure(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	installMailer(t, &fakeMailer{err: errors.New("smtp unreachable")})

	postID := "11111111-1111-1111-1111-111111111111"
	mockPostByID(mock, postID)

	r := testutils.SetupTestRouter()
	r.POST("/:year/share", SendPost)

	resp := postShareForm(r, "/"+postID+"/share", url.Values{
		"name":  {"Alice"},
		"email": {"a@x.com"},
		"to":    {"b@y.com"},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareForm_PostNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE (.*)posts\.id = \$1(.+)LIMIT`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/:year/share", ShareForm)

	req, _ := http.NewRequest(http.MethodGet, "/does-not-exist/share", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Post not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
