package repository_test

import (
	"context"
	"encoding/json"
	"errors"

	"todoer/internal/db"
	"todoer/internal/repository"
	"todoer/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user table", func() {
				Expect(repo.Migrate()).To(Succeed())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			newUser repository.User
			created repository.User
			err     error
		)

		BeforeEach(func() {
			newUser = repository.User{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
				FirstName:    "A",
				LastName:     "L",
				Email:        "a@x.com",
			}
		})

		JustBeforeEach(func() {
			created, err = repo.CreateUser(ctx, newUser)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(nil)
			})

			It("should assign an id and an empty todo list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).NotTo(BeEmpty())
				Expect(created.TodoList).NotTo(BeNil())
				Expect(created.TodoList).To(BeEmpty())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateRecordArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(record.(*repository.User).Username).To(Equal("alice"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(db.ErrDuplicate)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{ID: "id-1", Username: "alice"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetByID", func() {
		It("should query by the id column", func() {
			fakeStorage.GetOneByReturns(nil)

			_, err := repo.GetByID(ctx, "id-1")
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal("id-1"))
		})

		It("should return ErrUserNotFound for a missing id", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetByID(ctx, "ghost")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})

	Describe("ReplaceTodoList", func() {
		var (
			list    repository.TodoList
			updated repository.User
			err     error
		)

		BeforeEach(func() {
			list = repository.TodoList{{ID: 1, Content: "buy milk"}}
		})

		JustBeforeEach(func() {
			updated, err = repo.ReplaceTodoList(ctx, "id-1", 3, list)
		})

		When("the version is current", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(1, nil)
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{ID: "id-1", TodoList: list, Version: 4}
					return nil
				}
			})

			It("should replace only the todo list and bump the version", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Version).To(Equal(int64(4)))
				Expect(updated.TodoList).To(Equal(list))

				Expect(fakeStorage.UpdateColumnsCallCount()).To(Equal(1))
				_, model, conds, updates := fakeStorage.UpdateColumnsArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(conds).To(Equal(map[string]any{"id": "id-1", "version": int64(3)}))

				Expect(updates).To(HaveLen(2))
				Expect(updates["version"]).To(Equal(int64(4)))
				var written repository.TodoList
				Expect(json.Unmarshal(updates["todo_list"].([]byte), &written)).To(Succeed())
				Expect(written).To(Equal(list))
			})
		})

		When("the version is stale", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(0, nil)
				fakeStorage.GetOneByReturns(nil)
			})

			It("should return ErrVersionConflict", func() {
				Expect(err).To(MatchError(repository.ErrVersionConflict))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(0, nil)
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
