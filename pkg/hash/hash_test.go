package hash_test

import (
	"todoer/pkg/hash"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BcryptHasher", func() {
	var hasher hash.BcryptHasher

	BeforeEach(func() {
		hasher = hash.NewBcryptHasher()
	})

	Describe("Hash", func() {
		It("should never return the plaintext", func() {
			hashed, err := hasher.Hash("p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(hashed).NotTo(Equal("p1"))
			Expect(hashed).To(HavePrefix("$2a$10$"))
		})

		It("should salt every hash", func() {
			first, err := hasher.Hash("p1")
			Expect(err).NotTo(HaveOccurred())
			second, err := hasher.Hash("p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})
	})

	Describe("Verify", func() {
		var hashed string

		BeforeEach(func() {
			var err error
			hashed, err = hasher.Hash("p1")
			Expect(err).NotTo(HaveOccurred())
		})

		When("the password matches", func() {
			It("should return true", func() {
				ok, err := hasher.Verify("p1", hashed)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
			})
		})

		When("the password does not match", func() {
			It("should return false without an error", func() {
				ok, err := hasher.Verify("wrong", hashed)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		When("the stored hash is malformed", func() {
			It("should return an error", func() {
				ok, err := hasher.Verify("p1", "not-a-bcrypt-hash")
				Expect(err).To(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})
	})
})
