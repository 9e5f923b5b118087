// User HTTP handlers.
//
// This file exposes the REST endpoints for subscribers:
//   - POST /users  (register)
//   - GET  /users  (list)
//
// Registration and listing never expose the internal user ID; the public
// identity of a subscriber is the MSISDN.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-cdr-backend/internal/services"
)

// RegisterUserRequest is the JSON payload for registering a subscriber.
type RegisterUserRequest struct {
	Name   string `json:"name"   binding:"required" example:"Lina Haddad"`
	MSISDN string `json:"msisdn" binding:"required" example:"962790123456"`
}

// UserResponse is the public shape of a subscriber: name and MSISDN only.
type UserResponse struct {
	Name   string `json:"name"   example:"Lina Haddad"`
	MSISDN string `json:"msisdn" example:"962790123456"`
}

// RegisterUser godoc
// @ID          registerUser
// @Summary     Register a subscriber
// @Description Stores a new user after validating the MSISDN format and uniqueness. The response omits the assigned ID.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       body  body  handlers.RegisterUserRequest  true  "Registration payload"
//
// @Success     201  {object} handlers.UserResponse
// @Failure     400  {object} handlers.ErrorResponse "Validation failure or duplicate MSISDN"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users [post]
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), req.Name, req.MSISDN)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateMSISDN):
			fail(c, http.StatusBadRequest, ErrCodeDuplicateMSISDN, "msisdn must be unique; this msisdn already exists")
		case isValidationErr(err):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, UserResponse{Name: u.Name, MSISDN: u.MSISDN})
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List subscribers
// @Description Returns all registered users as name and MSISDN pairs.
// @Tags        Users
// @Produce     json
// @Security    ApiKeyAuth
//
// @Success     200  {array}  handlers.UserResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{Name: u.Name, MSISDN: u.MSISDN})
	}
	ok(c, http.StatusOK, out)
}
