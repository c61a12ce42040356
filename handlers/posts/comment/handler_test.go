package comment

import (
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

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

var postColumns = []string{"id", "title", "slug", "user_id", "body", "publish", "status", "created_at", "updated_at"}

func mockPostLookup(mock sqlmock.Sqlmock, postID string) {
	publish := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE (.*)posts\.slug = \$1(.+)LIMIT`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(postID, "Latest one", "latest-one", "author-1", "Some body text", publish, "published", publish, publish))
}

// The test post carries no tags, so the detail re-render skips the
// similar-posts query.
func mockDetailRender(mock sqlmock.Sqlmock, postID string, commentRows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT (.+) FROM "tags" JOIN post_tags ON post_tags\.tag_id = tags\.id WHERE post_tags\.post_id = \$1`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE post_id = \$1 AND active = \$2 ORDER BY created_at ASC`).
		WithArgs(postID, true).
		WillReturnRows(commentRows)
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateComment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "11111111-1111-1111-1111-111111111111"
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

	mockPostLookup(mock, postID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))
	mock.ExpectCommit()

	mockDetailRender(mock, postID,
		sqlmock.NewRows([]string{"id", "post_id", "name", "email", "body", "active", "created_at", "updated_at"}).
			AddRow("c1", postID, "Bob", "bob@example.com", "Great post!", true, now, now))

	r := testutils.SetupTestRouter()
	r.POST("/:year/:month/:day/:slug", CreateComment)

	resp := postForm(r, "/2025/03/09/latest-one", url.Values{
		"name":  {"Bob"},
		"email": {"bob@example.com"},
		"body":  {"Great post!"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Your comment has been added.")
	assert.Contains(t, resp.Body.String(), "Great post!")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment_MissingName(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "11111111-1111-1111-1111-111111111111"

	mockPostLookup(mock, postID)
	// No INSERT is expected: the comment list must stay unchanged.
	mockDetailRender(mock, postID,
		sqlmock.NewRows([]string{"id", "post_id", "name", "email", "body", "active", "created_at", "updated_at"}))

	r := testutils.SetupTestRouter()
	r.POST("/:year/:month/:day/:slug", CreateComment)

	resp := postForm(r, "/2025/03/09/latest-one", url.Values{
		"email": {"bob@example.com"},
		"body":  {"Great post!"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "This field is required.")
	assert.NotContains(t, resp.Body.String(), "Your comment has been added.")
	assert.Contains(t, resp.Body.String(), "0 comment(s)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment_InvalidEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "11111111-1111-1111-1111-111111111111"

	mockPostLookup(mock, postID)
	mockDetailRender(mock, postID,
		sqlmock.NewRows([]string{"id", "post_id", "name", "email", "body", "active", "created_at", "updated_at"}))

	r := testutils.SetupTestRouter()
	r.POST("/:year/:month/:day/:slug", CreateComment)

	resp := postForm(r, "/2025/03/09/latest-one", url.Values{
		"name":  {"Bob"},
		"email": {"not-an-email"},
		"body":  {"Great post!"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Enter a valid email address.")
	assert.NoError(t, mock.ExpectationsWereMet())
}
