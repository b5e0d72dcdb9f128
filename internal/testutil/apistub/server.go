package apistub

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/gin-gonic/gin"
)

// Server is an in-memory stand-in for the shopping-list API.
type Server struct {
	*httptest.Server
	Router *gin.Engine

	mu          sync.Mutex
	accounts    map[string]*account // by email
	access      map[string]string   // access token -> user id
	refresh     map[string]string   // refresh token -> user id
	lists       map[string]*model.ShoppingList
	nextUser    int
	nextList    int
	hits        map[string]int
	refreshes   int
	tokenTTL    time.Duration
	onRefresh   func()
	failRefresh int
}

type account struct {
	user     model.User
	password string
}

// New starts a stub server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		accounts: make(map[string]*account),
		access:   make(map[string]string),
		refresh:  make(map[string]string),
		lists:    make(map[string]*model.ShoppingList),
		hits:     make(map[string]int),
		tokenTTL: 15 * time.Minute,
	}
	s.Router = s.routes()
	s.Server = httptest.NewServer(s.Router)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.countHits())

	h := &handlers{s: s}
	authGroup := r.Group("/api/v1/auth")
	authGroup.POST("/validate-user", h.validateUser)
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.POST("/refresh", h.refreshToken)

	shopping := r.Group("/api/v1/shopping", s.requireBearer())
	shopping.GET("/lists", h.listLists)
	shopping.POST("/lists", h.createList)
	shopping.GET("/lists/:id", h.getList)
	shopping.POST("/lists/:id/items", h.addItem)
	shopping.DELETE("/lists/:id", h.deleteList)
	return r
}

// AddUser registers an account directly and returns it with its id set.
func (s *Server) AddUser(u model.User, password string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(u, password)
}

func (s *Server) addUserLocked(u model.User, password string) model.User {
	s.nextUser++
	u.ID = itoa(s.nextUser)
	s.accounts[u.Email] = &account{user: u, password: password}
	return u
}

// IssueTokens returns a valid pair for the account with email.
func (s *Server) IssueTokens(email string) (accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return "", ""
	}
	return s.issueLocked(acc.user.ID)
}

// ExpireAccessTokens invalidates every access token, so the next
// authenticated call gets a 401. Refresh tokens stay valid.
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = make(map[string]string)
}

// RevokeRefreshTokens invalidates every refresh token.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = make(map[string]string)
}

// FailRefreshes makes the next n refresh calls answer 500.
func (s *Server) FailRefreshes(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRefresh = n
}

// OnRefresh installs fn to run inside each refresh call before it answers.
func (s *Server) OnRefresh(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

// Refreshes returns how many refresh calls were received.
func (s *Server) Refreshes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshes
}

// Hits returns how many requests reached path (the route pattern, such as
// "/api/v1/shopping/lists/:id").
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// SetTokenTTL changes the lifetime written into new access tokens.
func (s *Server) SetTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenTTL = ttl
}
