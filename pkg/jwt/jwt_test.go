package jwt_test

import (
	"time"

	tokenIssuer "todoer/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
		secret  []byte
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
		info = tokenIssuer.TokenInfo{
			Subject:   "user-1",
			Username:  "alice",
			FirstName: "A",
			LastName:  "L",
			Admin:     false,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should embed only identity claims", func() {
			token := service.Generate(info)
			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())

			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["firstName"]).To(Equal("A"))
			Expect(claims["lastName"]).To(Equal("L"))
			Expect(claims["admin"]).To(Equal(false))
			Expect(claims).NotTo(HaveKey("password"))
			Expect(claims).NotTo(HaveKey("todoList"))
		})

		It("should set a 12 hour expiry", func() {
			issuedAt := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
			tokenIssuer.TimeNow = func() time.Time { return issuedAt }

			token := service.Generate(info)
			claims := token.Claims.(jwt.MapClaims)
			Expect(claims["exp"]).To(Equal(issuedAt.Add(12 * time.Hour).Unix()))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is valid", func() {
			It("should return the claims", func() {
				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("user-1"))
				Expect(claims["username"]).To(Equal("alice"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should fail with ErrTokenNotValid", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				forged, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(forged)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-13 * time.Hour)
				}
				var err error
				signed, err = service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				tokenIssuer.TimeNow = time.Now
			})

			It("should fail with ErrTokenNotValid", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is malformed", func() {
			It("should fail with ErrTokenNotValid", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
