package apistub

import (
	"net/http"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	s *Server
}

func (h *handlers) validateUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_EMAIL", "email": "email is required"})
		return
	}

	h.s.mu.Lock()
	_, ok := h.s.accounts[email]
	h.s.mu.Unlock()

	code := "USER_NOT_REGISTERED"
	if ok {
		code = "USER_REGISTERED"
	}
	c.JSON(http.StatusOK, gin.H{"code": code, "email": email})
}

func (h *handlers) register(c *gin.Context) {
	var req struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		Email       string `json:"email"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if _, exists := h.s.accounts[req.Email]; exists {
		c.JSON(http.StatusConflict, gin.H{"detail": "email already registered"})
		return
	}
	u := h.s.addUserLocked(model.User{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}, req.Password)

	c.JSON(http.StatusCreated, gin.H{"id": h.s.nextUser, "username": u.Username})
}

func (h *handlers) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	acc, ok := h.s.accounts[req.Email]
	if !ok || acc.password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
		return
	}
	accessToken, refreshToken := h.s.issueLocked(acc.user.ID)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           acc.user.ID,
			"username":     acc.user.Username,
			"email":        acc.user.Email,
			"first_name":   acc.user.FirstName,
			"last_name":    acc.user.LastName,
			"phone_number": acc.user.PhoneNumber,
		},
		"token": tokenBody(accessToken, refreshToken),
	})
}

func (h *handlers) refreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.s.mu.Lock()
	h.s.refreshes++
	hook := h.s.onRefresh
	fail := h.s.failRefresh > 0
	if fail {
		h.s.failRefresh--
	}
	h.s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if fail {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "refresh unavailable"})
		return
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	userID, ok := h.s.refresh[req.RefreshToken]
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid refresh token"})
		return
	}
	delete(h.s.refresh, req.RefreshToken)
	accessToken, refreshToken := h.s.issueLocked(userID)
	c.JSON(http.StatusOK, tokenBody(accessToken, refreshToken))
}

func tokenBody(accessToken, refreshToken string) gin.H {
	return gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	}
}

func (h *handlers) listLists(c *gin.Context) {
	userID := c.GetString(userIDKey)

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	out := make([]*model.ShoppingList, 0)
	for i := 1; i <= h.s.nextList; i++ {
		if l, ok := h.s.lists[itoa(i)]; ok && l.UserID == userID {
			out = append(out, l)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) createList(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "name is required"})
		return
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.nextList++
	l := &model.ShoppingList{
		ID:        itoa(h.s.nextList),
		Name:      req.Name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:    c.GetString(userIDKey),
		Type:      req.Type,
		Items:     []model.ShoppingItem{},
	}
	h.s.lists[l.ID] = l
	c.JSON(http.StatusCreated, l)
}

// ownedList looks up the list named in the path; the caller holds the lock.
func (h *handlers) ownedList(c *gin.Context) (*model.ShoppingList, bool) {
	l, ok := h.s.lists[c.Param("id")]
	if !ok || l.UserID != c.GetString(userIDKey) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "list not found"})
		return nil, false
	}
	return l, true
}

func (h *handlers) getList(c *gin.Context) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if l, ok := h.ownedList(c); ok {
		c.JSON(http.StatusOK, l)
	}
}

func (h *handlers) addItem(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Type   string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "item name is required"})
		return
	}

	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	l, ok := h.ownedList(c)
	if !ok {
		return
	}
	l.Items = append(l.Items, model.ShoppingItem{Name: req.Name, Status: req.Status, Type: req.Type})
	c.JSON(http.StatusOK, l)
}

func (h *handlers) deleteList(c *gin.Context) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	l, ok := h.ownedList(c)
	if !ok {
		return
	}
	delete(h.s.lists, l.ID)
	c.Status(http.StatusNoContent)
}
