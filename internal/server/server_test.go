package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsroom/internal/domain"
	"newsroom/internal/service"
	"newsroom/internal/service/mocks"
)

// The suite exercises the router end to end: real services over mocked
// stores, requests through httptest.
type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users       *mocks.MockUserStore
	publishers  *mocks.MockPublisherStore
	articles    *mocks.MockArticleStore
	newsletters *mocks.MockNewsletterStore
	txManager   *mocks.MockTransactionManager
	notifier    *mocks.MockNotifier

	server *Server

	reader     *domain.User
	journalist *domain.User
	editor     *domain.User
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.users = mocks.NewMockUserStore(s.ctrl)
	s.publishers = mocks.NewMockPublisherStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.newsletters = mocks.NewMockNewsletterStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	contentService := service.NewContentService(
		s.users, s.publishers, s.articles, s.newsletters, s.txManager, s.notifier, logger,
	)
	userService := service.NewUserService(s.users, s.publishers, s.txManager, logger)

	s.server = New(userService, contentService, logger)

	s.reader = &domain.User{ID: 1, Username: "rita", Role: domain.RoleReader}
	s.journalist = &domain.User{ID: 2, Username: "jana", Role: domain.RoleJournalist}
	s.editor = &domain.User{ID: 3, Username: "edda", Role: domain.RoleEditor}
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) expectAuth(token string, user *domain.User) {
	s.users.EXPECT().GetByToken(gomock.Any(), token).Return(user, nil)
}

func (s *ServerTestSuite) TestMissingTokenUnauthorized() {
	rec := s.do(http.MethodGet, "/api/subscribed-articles", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestMalformedAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/subscribed-articles", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestUnknownTokenUnauthorized() {
	s.users.EXPECT().GetByToken(gomock.Any(), "bad").Return(nil, domain.ErrNotFound)

	rec := s.do(http.MethodGet, "/api/subscribed-articles", "bad", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestSubscribedArticles_Reader() {
	s.expectAuth("tok", s.reader)
	s.articles.EXPECT().ListSubscribed(gomock.Any(), s.reader.ID).Return([]domain.ArticleSummary{
		{ID: 1, Title: "Launch Day", Content: "We shipped.", PublisherName: "Daily", JournalistName: "jana", Approved: true},
	}, nil)

	rec := s.do(http.MethodGet, "/api/subscribed-articles", "tok", "")

	s.Equal(http.StatusOK, rec.Code)

	var feed []domain.ArticleSummary
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &feed))
	s.Len(feed, 1)
	s.Equal("Launch Day", feed[0].Title)
	s.Equal("Daily", feed[0].PublisherName)
}

func (s *ServerTestSuite) TestSubscribedArticles_NonReaderEmptyList() {
	s.expectAuth("tok", s.journalist)

	rec := s.do(http.MethodGet, "/api/subscribed-articles", "tok", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("[]\n", rec.Body.String())
}

func (s *ServerTestSuite) TestCreateArticle_Journalist() {
	s.expectAuth("tok", s.journalist)
	s.publishers.EXPECT().Get(gomock.Any(), int64(10)).Return(&domain.Publisher{ID: 10}, nil)
	s.articles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(100), nil)

	rec := s.do(http.MethodPost, "/api/articles/", "tok",
		`{"title":"Launch Day","content":"We shipped.","publisher_id":10}`)

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ServerTestSuite) TestCreateArticle_ReaderForbidden() {
	s.expectAuth("tok", s.reader)

	rec := s.do(http.MethodPost, "/api/articles/", "tok",
		`{"title":"t","content":"b","publisher_id":10}`)

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerTestSuite) TestApproveArticle_JournalistForbidden() {
	s.expectAuth("tok", s.journalist)
	s.articles.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Article{ID: 5}, nil)

	rec := s.do(http.MethodPost, "/api/articles/5/approve", "tok", "")

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerTestSuite) TestApproveArticle_EditorFansOut() {
	s.expectAuth("tok", s.editor)
	article := &domain.Article{ID: 5, Title: "Pending"}
	s.articles.EXPECT().Get(gomock.Any(), int64(5)).Return(article, nil)
	s.articles.EXPECT().Approve(gomock.Any(), int64(5)).Return(true, nil)
	s.notifier.EXPECT().ArticleApproved(gomock.Any(), article)

	rec := s.do(http.MethodPost, "/api/articles/5/approve", "tok", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestShareArticle_UnapprovedBadRequest() {
	s.expectAuth("tok", s.journalist)
	s.articles.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Article{ID: 5, Approved: false}, nil)

	rec := s.do(http.MethodPost, "/api/articles/5/share", "tok", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetArticle_UnknownNotFound() {
	s.expectAuth("tok", s.editor)
	s.articles.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, domain.ErrNotFound)

	rec := s.do(http.MethodGet, "/api/articles/404", "tok", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGetArticle_BadIDBadRequest() {
	s.expectAuth("tok", s.editor)

	rec := s.do(http.MethodGet, "/api/articles/abc", "tok", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestRegister_IssuesToken() {
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(42), nil)
	s.users.EXPECT().IssueToken(gomock.Any(), int64(42), gomock.Any()).Return(nil)

	rec := s.do(http.MethodPost, "/api/register", "",
		`{"username":"nils","email":"nils@example.com","role":"journalist"}`)

	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		User  domain.User `json:"user"`
		Token string      `json:"token"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(42), resp.User.ID)
	s.NotEmpty(resp.Token)
}

func (s *ServerTestSuite) TestRegister_UnknownRoleBadRequest() {
	rec := s.do(http.MethodPost, "/api/register", "",
		`{"username":"nils","role":"admin"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSubscribeToPublisher_Reader() {
	s.expectAuth("tok", s.reader)
	s.publishers.EXPECT().Get(gomock.Any(), int64(10)).Return(&domain.Publisher{ID: 10}, nil)
	s.users.EXPECT().SubscribeToPublisher(gomock.Any(), s.reader.ID, int64(10)).Return(nil)

	rec := s.do(http.MethodPost, "/api/publishers/10/subscribe", "tok", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestChangeRole_Editor() {
	s.expectAuth("tok", s.editor)
	s.users.EXPECT().GetByID(gomock.Any(), s.journalist.ID).Return(s.journalist, nil)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(nil)

	rec := s.do(http.MethodPost, "/api/users/2/role", "tok", `{"role":"reader"}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestDeleteArticle_NoContent() {
	s.expectAuth("tok", s.editor)
	s.articles.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Article{ID: 5}, nil)
	s.articles.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	rec := s.do(http.MethodDelete, "/api/articles/5", "tok", "")

	s.Equal(http.StatusNoContent, rec.Code)
}
