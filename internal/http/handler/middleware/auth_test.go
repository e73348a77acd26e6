package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"todoer/internal/http/handler/middleware"
	tokenIssuer "todoer/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		auth        *middleware.AuthMiddleware
		jwtService  *tokenIssuer.JWTService
		w           *httptest.ResponseRecorder
		req         *http.Request
		nextCalled  bool
		gotIdentity middleware.Identity
		handler     http.Handler
	)

	BeforeEach(func() {
		jwtService = tokenIssuer.NewJWTService([]byte("test-secret"))
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), jwtService)

		nextCalled = false
		gotIdentity = middleware.Identity{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			gotIdentity, _ = middleware.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		handler = auth.Authenticate(next)

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/getTodos/user-1", nil)
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	signedToken := func(service *tokenIssuer.JWTService) string {
		token, err := service.Sign(service.Generate(tokenIssuer.TokenInfo{
			Subject:   "user-1",
			Username:  "alice",
			FirstName: "A",
			LastName:  "L",
		}))
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	When("the bearer token is valid", func() {
		It("should attach the identity and call the handler", func() {
			req.Header.Set("Authorization", "Bearer "+signedToken(jwtService))
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(gotIdentity.UserID).To(Equal("user-1"))
			Expect(gotIdentity.Username).To(Equal("alice"))
		})
	})

	When("the authorization header is missing", func() {
		It("should respond 401 without reaching the handler", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the authorization header is not a bearer token", func() {
		It("should respond 401 without reaching the handler", func() {
			req.Header.Set("Authorization", "Token abc")
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token is signed with a different secret", func() {
		It("should respond 401 with the same body as every other failure", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			req.Header.Set("Authorization", "Bearer "+signedToken(other))
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())

			forgedBody := w.Body.String()

			w = httptest.NewRecorder()
			req.Header.Del("Authorization")
			handler.ServeHTTP(w, req)
			Expect(w.Body.String()).To(Equal(forgedBody))
		})
	})

	When("the token is expired", func() {
		It("should respond 401 without reaching the handler", func() {
			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(-13 * time.Hour)
			}
			expired := signedToken(jwtService)
			tokenIssuer.TimeNow = time.Now

			req.Header.Set("Authorization", "Bearer "+expired)
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token is malformed", func() {
		It("should respond 401 without reaching the handler", func() {
			req.Header.Set("Authorization", "Bearer not.a.token")
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})
})
