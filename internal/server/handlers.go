package server

import (
	"net/http"

	"newsroom/internal/domain"
	"newsroom/internal/service"
)

type registerRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type registerResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Role)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, registerResponse{User: user, Token: token})
}

// handleSubscribedArticles is the read API: the reader's visible approved
// set. Authenticated non-readers get an empty list with 200.
func (s *Server) handleSubscribedArticles(w http.ResponseWriter, r *http.Request) {
	feed, err := s.content.SubscribedFeed(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, feed)
}

type articleRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublisherID int64  `json:"publisher_id"`
}

func (req articleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:       req.Title,
		Body:        req.Content,
		PublisherID: req.PublisherID,
	}
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.content.ListArticles(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	s.writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	article, err := s.content.CreateArticle(r.Context(), userFromContext(r.Context()), req.input())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, article)
}

func (s *Server) handlePendingArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.content.ListPendingArticles(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	s.writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "articleID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	article, err := s.content.GetArticle(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "articleID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req articleRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	article, err := s.content.UpdateArticle(r.Context(), userFromContext(r.Context()), id, req.input())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "articleID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.content.DeleteArticle(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApproveArticle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "articleID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	article, err := s.content.ApproveArticle(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleShareArticle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "articleID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.content.ShareArticle(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "shared"})
}

type newsletterRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublisherID int64  `json:"publisher_id"`
}

func (req newsletterRequest) input() service.NewsletterInput {
	return service.NewsletterInput{
		Title:       req.Title,
		Body:        req.Content,
		PublisherID: req.PublisherID,
	}
}

func (s *Server) handleListNewsletters(w http.ResponseWriter, r *http.Request) {
	newsletters, err := s.content.ListNewsletters(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if newsletters == nil {
		newsletters = []domain.Newsletter{}
	}
	s.writeJSON(w, http.StatusOK, newsletters)
}

func (s *Server) handleCreateNewsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	newsletter, err := s.content.CreateNewsletter(r.Context(), userFromContext(r.Context()), req.input())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, newsletter)
}

func (s *Server) handleGetNewsletter(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "newsletterID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	newsletter, err := s.content.GetNewsletter(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newsletter)
}

func (s *Server) handleUpdateNewsletter(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "newsletterID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req newsletterRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	newsletter, err := s.content.UpdateNewsletter(r.Context(), userFromContext(r.Context()), id, req.input())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newsletter)
}

func (s *Server) handleDeleteNewsletter(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "newsletterID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.content.DeleteNewsletter(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type publisherRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := s.content.ListPublishers(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if publishers == nil {
		publishers = []domain.Publisher{}
	}
	s.writeJSON(w, http.StatusOK, publishers)
}

func (s *Server) handleCreatePublisher(w http.ResponseWriter, r *http.Request) {
	var req publisherRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	publisher, err := s.content.CreatePublisher(r.Context(), userFromContext(r.Context()), req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, publisher)
}

func (s *Server) handleDeletePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "publisherID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.content.DeletePublisher(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubscribePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "publisherID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.users.SubscribeToPublisher(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

func (s *Server) handleSubscribeJournalist(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "journalistID")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.users.SubscribeToJournalist(r.Context(), userFromContext(r.Context()), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

type changeRoleRequest struct {
	Role domain.Role `json:"role"`
}

func (s *Server) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "userID")
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req changeRoleRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.users.ChangeRole(r.Context(), userFromContext(r.Context()), id, req.Role)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}
