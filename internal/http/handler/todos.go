package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"todoer/internal/core"
	"todoer/internal/http/handler/middleware"
	"todoer/internal/http/payload"

	"go.uber.org/zap"
)

var (
	SignUp     = "POST /api/signup"
	SignIn     = "POST /api/signin"
	Refresh    = "POST /api/refresh"
	AddTodo    = "PUT /api/addTodoItem"
	DeleteTodo = "PUT /api/deleteTodoItem"
	EditTodo   = "PUT /api/editTodoItem"
	GetTodos   = "GET /api/getTodos/{userID}"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todos            UserService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todos:            userService,
	}
}

func (h *TodoHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var signUp payload.SignUpRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &signUp); err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignUp,
			"request_id", requestId)
		return
	}

	session, err := h.todos.SignUp(r.Context(), signUp.ToMessage())
	if err != nil {
		resp := Response{Message: "Could not sign up"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", SignUp,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user signed up",
		"userId", session.User.ID,
		"handler", SignUp,
		"request_id", requestId)

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var signIn payload.SignInRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &signIn); err != nil {
		h.respond(w, Response{
			Message: "Could not sign in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	session, err := h.todos.SignIn(r.Context(), signIn.ToMessage())
	if err != nil {
		resp := Response{Message: "Sign in failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusNotFound
			resp.Error = genericAuthErr
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signin failed",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var refresh payload.RefreshRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &refresh); err != nil {
		h.respond(w, Response{
			Message: "Could not refresh token",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Refresh,
			"request_id", requestId)
		return
	}

	session, err := h.todos.Refresh(r.Context(), refresh.UserID)
	if err != nil {
		h.respondServiceError(w, err, "Could not refresh token", Refresh, requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleGetTodos(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID := r.PathValue("userID")
	if userID == "" {
		h.respond(w, Response{
			Message: "Could not retrieve todos",
			Error:   "userID path parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing userID parameter",
			"handler", GetTodos,
			"request_id", requestId)
		return
	}

	todos, err := h.todos.GetTodos(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "Could not retrieve todos", GetTodos, requestId)
		return
	}

	resp := map[string][]core.TodoItem{
		"todoList": todos,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleAddTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var addTodo payload.AddTodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &addTodo); err != nil {
		h.respond(w, Response{
			Message: "Could not add todo item",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddTodo,
			"request_id", requestId)
		return
	}

	profile, err := h.todos.AddTodo(r.Context(), addTodo.UserID, addTodo.Content)
	if err != nil {
		h.respondServiceError(w, err, "Could not add todo item", AddTodo, requestId)
		return
	}

	h.logs.Infow("todo item added",
		"userId", addTodo.UserID,
		"handler", AddTodo,
		"request_id", requestId)

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var deleteTodo payload.DeleteTodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &deleteTodo); err != nil {
		h.respond(w, Response{
			Message: "Could not delete todo item",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DeleteTodo,
			"request_id", requestId)
		return
	}

	profile, err := h.todos.DeleteTodo(r.Context(), deleteTodo.UserID, deleteTodo.TodoID)
	if err != nil {
		h.respondServiceError(w, err, "Could not delete todo item", DeleteTodo, requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleEditTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var editTodo payload.EditTodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &editTodo); err != nil {
		h.respond(w, Response{
			Message: "Could not edit todo item",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EditTodo,
			"request_id", requestId)
		return
	}

	profile, err := h.todos.EditTodo(r.Context(), editTodo.UserID, editTodo.TodoID, editTodo.Content)
	if err != nil {
		h.respondServiceError(w, err, "Could not edit todo item", EditTodo, requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

// respondServiceError maps core errors from the authenticated operations to
// status codes. Storage failures keep their detail out of the response body.
func (h *TodoHandler) respondServiceError(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrTodoConflict):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	default:
		resp.Error = oopsErr
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
