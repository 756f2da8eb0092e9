package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/handler"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/book-store/store/internal/handler/mocks"
)

var secret = []byte("test-secret")

var (
	owner = auth.User{ID: 1, Username: "owner"}
	other = auth.User{ID: 2, Username: "other"}
)

func ptr[T any](v T) *T { return &v }

func token(t *testing.T, u auth.User) string {
	t.Helper()
	tok, err := auth.NewToken(secret, u, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

type mockBehavior func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService)

type testCase struct {
	name          string
	method        string
	target        string
	body          string
	authorization string
	mockBehavior  mockBehavior
	expectedCode  int
	expectedBody  string
}

func run(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			bookSvc := service_mocks.NewMockBookService(c)
			relationSvc := service_mocks.NewMockRelationService(c)
			tt.mockBehavior(bookSvc, relationSvc)

			h := handler.New(bookSvc, relationSvc, secret, zap.NewExample().Named("test"))
			e := h.NewRouter()

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			r := httptest.NewRequest(tt.method, tt.target, body)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authorization != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func testBook() model.Book {
	return model.Book{
		ID:             1,
		Name:           "Test book 1",
		Price:          model.MustMoney("25"),
		AuthorName:     "Author 1",
		AnnotatedLikes: 1,
		Rating:         ptr(model.MustMoney("4.666")),
		OwnerName:      "owner",
		Readers:        []model.Reader{{BookID: 1, Username: "reader", FirstName: "Re", LastName: "Ader"}},
	}
}

const testBookJSON = `{"id":1,"name":"Test book 1","price":"25.00","author_name":"Author 1","annotated_likes":1,"rating":"4.67","owner_name":"owner","readers":[{"username":"reader","first_name":"Re","last_name":"Ader"}]}`

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:   "ok",
			method: http.MethodGet,
			target: "/book/?price=25&search=Author%201&ordering=-price,author_name",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().
					ListBooks(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f model.BookFilter) ([]model.Book, error) {
						if f.Price == nil || f.Price.String() != "25.00" || f.Search != "Author 1" ||
							len(f.Ordering) != 2 || f.Ordering[0] != "-price" || f.Ordering[1] != "author_name" {
							return nil, errors.Errorf("unexpected filter %+v", f)
						}
						return []model.Book{testBook()}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: "[" + testBookJSON + "]",
		},
		{
			name:   "without trailing slash",
			method: http.MethodGet,
			target: "/book",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().ListBooks(gomock.Any(), model.BookFilter{}).Return([]model.Book{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "err. price not a number",
			method:       http.MethodGet,
			target:       "/book/?price=cheap",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"price":["A valid number is required."]}`,
		},
		{
			name:   "err. internal",
			method: http.MethodGet,
			target: "/book/",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().ListBooks(gomock.Any(), model.BookFilter{}).Return(nil, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"A server error occurred."}`,
		},
	})
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:   "ok",
			method: http.MethodGet,
			target: "/book/1/",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().GetBook(gomock.Any(), int64(1)).Return(testBook(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: testBookJSON,
		},
		{
			name:   "err. not found",
			method: http.MethodGet,
			target: "/book/42",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().GetBook(gomock.Any(), int64(42)).Return(model.Book{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Not found."}`,
		},
		{
			name:         "err. bad id",
			method:       http.MethodGet,
			target:       "/book/abc/",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Not found."}`,
		},
	})
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	in := model.BookInput{
		Name:       ptr("Test book 1"),
		Price:      ptr(model.MustMoney("25")),
		AuthorName: ptr("Author 1"),
	}
	created := testBook()
	created.AnnotatedLikes, created.Rating, created.Readers = 0, nil, []model.Reader{}

	run(t, []testCase{
		{
			name:          "ok",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{"name":"Test book 1","price":"25.00","author_name":"Author 1","rating":5}`,
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().
					CreateBook(gomock.Any(), &owner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *auth.User, got model.BookInput) (model.Book, error) {
						if *got.Name != *in.Name || !got.Price.Equal(in.Price.Decimal) || *got.AuthorName != *in.AuthorName {
							return model.Book{}, errors.Errorf("unexpected input %+v", got)
						}
						return created, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"name":"Test book 1","price":"25.00","author_name":"Author 1","annotated_likes":0,"rating":null,"owner_name":"owner","readers":[]}`,
		},
		{
			name:         "err. anonymous",
			method:       http.MethodPost,
			target:       "/book/",
			body:         `{"name":"Test book 1","price":"25.00","author_name":"Author 1"}`,
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Authentication credentials were not provided."}`,
		},
		{
			name:          "err. invalid token",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{}`,
			authorization: "Bearer garbage",
			mockBehavior:  func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"detail":"Invalid token."}`,
		},
		{
			name:          "err. username held by another id",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{"name":"Test book 1","price":"25.00","author_name":"Author 1"}`,
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().CreateBook(gomock.Any(), &owner, gomock.Any()).
					Return(model.Book{}, errors.Wrap(errs.ErrIdentityConflict, "ensure user"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"detail":"Username belongs to another user."}`,
		},
		{
			name:          "err. driver error hidden",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{"name":"Test book 1","price":"25.00","author_name":"Author 1"}`,
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().CreateBook(gomock.Any(), &owner, gomock.Any()).
					Return(model.Book{}, errors.New(`insert book: ERROR: relation "book" does not exist (SQLSTATE 42P01)`))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"A server error occurred."}`,
		},
		{
			name:          "err. name too long",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{"name":"` + strings.Repeat("a", 256) + `","price":"25.00","author_name":"Author 1"}`,
			authorization: token(t, owner),
			mockBehavior:  func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode:  http.StatusBadRequest,
			expectedBody:  `{"name":["Ensure this field has no more than 255 characters."]}`,
		},
		{
			name:          "err. required fields",
			method:        http.MethodPost,
			target:        "/book/",
			body:          `{"name":"Test book 1"}`,
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().CreateBook(gomock.Any(), &owner, gomock.Any()).
					Return(model.Book{}, model.BookInput{Name: ptr("Test book 1")}.Validate(false))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"author_name":["This field is required."],"price":["This field is required."]}`,
		},
	})
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	renamed := testBook()
	renamed.Name = "Renamed"

	run(t, []testCase{
		{
			name:          "patch by owner",
			method:        http.MethodPatch,
			target:        "/book/1/",
			body:          `{"name":"Renamed"}`,
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().UpdateBook(gomock.Any(), &owner, int64(1), model.BookInput{Name: ptr("Renamed")}, true).
					Return(renamed, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: strings.Replace(testBookJSON, "Test book 1", "Renamed", 1),
		},
		{
			name:          "err. put by stranger",
			method:        http.MethodPut,
			target:        "/book/1/",
			body:          `{"name":"Renamed","price":"1.00","author_name":"x"}`,
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().UpdateBook(gomock.Any(), &other, int64(1), gomock.Any(), false).
					Return(model.Book{}, errs.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"detail":"You do not have permission to perform this action."}`,
		},
		{
			name:         "err. anonymous",
			method:       http.MethodPatch,
			target:       "/book/1/",
			body:         `{"name":"Renamed"}`,
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Authentication credentials were not provided."}`,
		},
	})
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:          "ok",
			method:        http.MethodDelete,
			target:        "/book/1/",
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().DeleteBook(gomock.Any(), &owner, int64(1)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
			expectedBody: ``,
		},
		{
			name:          "err. stranger",
			method:        http.MethodDelete,
			target:        "/book/1",
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				b.EXPECT().DeleteBook(gomock.Any(), &other, int64(1)).Return(errs.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"detail":"You do not have permission to perform this action."}`,
		},
	})
}

func TestHandler_Relation(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:          "patch like creates relation",
			method:        http.MethodPatch,
			target:        "/book_relation/3/",
			body:          `{"like":true}`,
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				r.EXPECT().UpdateRelation(gomock.Any(), &other, int64(3), model.RelationPatch{Like: ptr(true)}).
					Return(model.Relation{ID: 1, UserID: 2, BookID: 3, Like: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"book":3,"like":true,"in_bookmarks":false,"rating":null}`,
		},
		{
			name:          "put rating",
			method:        http.MethodPut,
			target:        "/book_relation/3",
			body:          `{"rating":4}`,
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				r.EXPECT().UpdateRelation(gomock.Any(), &other, int64(3), model.RelationPatch{Rating: ptr(4)}).
					Return(model.Relation{ID: 1, UserID: 2, BookID: 3, Rating: ptr(4)}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"book":3,"like":false,"in_bookmarks":false,"rating":4}`,
		},
		{
			name:          "get or create",
			method:        http.MethodGet,
			target:        "/book_relation/3/",
			authorization: token(t, owner),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				r.EXPECT().GetRelation(gomock.Any(), &owner, int64(3)).
					Return(model.Relation{ID: 5, UserID: 1, BookID: 3, InBookmarks: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"book":3,"like":false,"in_bookmarks":true,"rating":null}`,
		},
		{
			name:          "err. rating out of choices",
			method:        http.MethodPatch,
			target:        "/book_relation/3/",
			body:          `{"rating":20}`,
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				r.EXPECT().UpdateRelation(gomock.Any(), &other, int64(3), model.RelationPatch{Rating: ptr(20)}).
					Return(model.Relation{}, model.RelationPatch{Rating: ptr(20)}.Validate())
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"rating":["\"20\" is not a valid choice."]}`,
		},
		{
			name:          "err. book missing",
			method:        http.MethodPatch,
			target:        "/book_relation/99/",
			body:          `{"like":true}`,
			authorization: token(t, other),
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {
				r.EXPECT().UpdateRelation(gomock.Any(), &other, int64(99), gomock.Any()).
					Return(model.Relation{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Not found."}`,
		},
		{
			name:         "err. anonymous",
			method:       http.MethodPatch,
			target:       "/book_relation/3/",
			body:         `{"like":true}`,
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Authentication credentials were not provided."}`,
		},
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:         "ok",
			method:       http.MethodGet,
			target:       "/manage/health",
			mockBehavior: func(b *service_mocks.MockBookService, r *service_mocks.MockRelationService) {},
			expectedCode: http.StatusOK,
			expectedBody: `OK`,
		},
	})
}
