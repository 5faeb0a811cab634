package posts

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"blog-backend/models"
	"blog-backend/testutils"
	"blog-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postColumns = []string{"id", "title", "content", "author", "slug", "published", "created_at", "updated_at"}
	linkColumns = []string{"post_id", "id", "name", "description", "slug", "created_at"}
)

const selectLinksSQL = `SELECT post_categories\.post_id(.+)FROM "categories" JOIN post_categories`

type postResponse struct {
	Success bool               `json:"success"`
	Data    *models.Post       `json:"data"`
	Error   string             `json:"error"`
	Fields  []utils.FieldError `json:"fields"`
}

type postsResponse struct {
	Success bool          `json:"success"`
	Data    []models.Post `json:"data"`
}

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodePost(t *testing.T, resp *httptest.ResponseRecorder) postResponse {
	var body postResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestCreate_ThenGetBySlug(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	// Création
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO "post_categories"`).
		WithArgs(1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(linkColumns).AddRow(1, 1, "Go", nil, "go", now))
	mock.ExpectCommit()

	// Lecture par slug
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE posts\.slug = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(1, "A", "B", "C", "a", false, now, now))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(linkColumns).AddRow(1, 1, "Go", nil, "go", now))

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.create", Create)
	r.POST("/rpc/posts.getBySlug", GetBySlug)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.create",
		`{"title":"A","content":"B","author":"C","slug":"a","categoryIds":[1]}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	created := decodePost(t, resp)
	require.NotNil(t, created.Data)
	assert.Equal(t, uint(1), created.Data.ID)

	resp = performRequest(r, http.MethodPost, "/rpc/posts.getBySlug", `{"slug":"a"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	post := decodePost(t, resp).Data
	require.NotNil(t, post)
	assert.Equal(t, "A", post.Title)
	assert.Equal(t, "B", post.Content)
	assert.Equal(t, "C", post.Author)
	assert.False(t, post.Published)
	require.Len(t, post.Categories, 1)
	assert.Equal(t, uint(1), post.Categories[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RequiresAtLeastOneCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.create", Create)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.create",
		`{"title":"A","content":"B","author":"C","slug":"a","categoryIds":[]}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodePost(t, resp)
	assert.Equal(t, []utils.FieldError{{
		Field:   "categoryIds",
		Message: "categoryIds must contain at least 1 item(s)",
	}}, body.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingFields(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.create", Create)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.create", `{"content":"B"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	fields := map[string]bool{}
	for _, f := range decodePost(t, resp).Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["author"])
	assert.True(t, fields["slug"])
	assert.True(t, fields["categoryIds"])
	assert.False(t, fields["content"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ScriptOnlyContentIsRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.create", Create)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.create",
		`{"title":"A","content":"<script>alert(1)</script>","author":"C","slug":"a","categoryIds":[1]}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodePost(t, resp)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "content", body.Fields[0].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateSlug(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts" (.+) RETURNING "id"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.create", Create)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.create",
		`{"title":"A","content":"B","author":"C","slug":"a","categoryIds":[1]}`)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "slug already exists", decodePost(t, resp).Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_SanitizesContent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE posts\.id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(4, "T", "old", "C", "t", false, now, now))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(linkColumns))
	mock.ExpectExec(`UPDATE "posts" SET "content"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("<p>Hello</p>", sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE posts\.id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(4, "T", "<p>Hello</p>", "C", "t", false, now, now))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(linkColumns))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.update", Update)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.update",
		`{"id":4,"content":"<p>Hello<script>alert(1)</script></p>"}`)

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	post := decodePost(t, resp).Data
	require.NotNil(t, post)
	assert.Equal(t, "<p>Hello</p>", post.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UnknownCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE posts\.id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(4, "T", "B", "C", "t", false, now, now))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(linkColumns))
	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM post_categories WHERE post_id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "post_categories"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.update", Update)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.update", `{"id":4,"categoryIds":[99]}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "unknown category", decodePost(t, resp).Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategory_EmptyCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" JOIN post_categories`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(postColumns))

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.listByCategory", ListByCategory)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.listByCategory", `{"categoryId":5}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(2, "Second", "B", "C", "second", true, now, now).
			AddRow(1, "First", "B", "C", "first", false, now, now))
	mock.ExpectQuery(selectLinksSQL).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(linkColumns).
			AddRow(1, 1, "Go", nil, "go", now))

	r := testutils.SetupTestRouter()
	r.GET("/rpc/posts.listAll", ListAll)

	resp := performRequest(r, http.MethodGet, "/rpc/posts.listAll", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body postsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Empty(t, body.Data[0].Categories)
	require.Len(t, body.Data[1].Categories, 1)
	assert.Equal(t, "go", body.Data[1].Categories[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFoundIsNull(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE posts\.id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns))

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.getById", GetByID)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.getById", `{"id":77}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodePost(t, resp)
	assert.True(t, body.Success)
	assert.Nil(t, body.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM post_categories WHERE post_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "posts" WHERE "posts"\."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/rpc/posts.delete", Delete)

	resp := performRequest(r, http.MethodPost, "/rpc/posts.delete", `{"id":3}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":{"success":true}`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlainListByCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT (.+) FROM "posts" JOIN post_categories`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(postColumns).AddRow(1, "A", "B", "C", "a", true, now, now))
		mock.ExpectQuery(selectLinksSQL).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(linkColumns).AddRow(1, 2, "Web", nil, "web", now))
	}

	r := testutils.SetupTestRouter()
	r.POST("/api/blogs", PlainListByCategory)
	r.GET("/api/blogs", PlainListByCategory)

	for _, resp := range []*httptest.ResponseRecorder{
		performRequest(r, http.MethodPost, "/api/blogs", `{"category":2}`),
		performRequest(r, http.MethodGet, "/api/blogs?category=2", ""),
	} {
		assert.Equal(t, http.StatusOK, resp.Code)
		var posts []models.Post
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "web", posts[0].Categories[0].Slug)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlainListByCategory_InvalidQuery(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.GET("/api/blogs", PlainListByCategory)

	resp := performRequest(r, http.MethodGet, "/api/blogs?category=abc", "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
