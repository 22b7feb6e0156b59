package services

import (
	"testing"

	"moneytrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@Example.com", "alice", "secret123")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dupe@example.com", "first", "secret123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUPE@example.com", "second", "secret123")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("one@example.com", "same", "secret123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("two@example.com", "same", "secret123")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("blank_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "user", "secret123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("by_email_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("bob@example.com", "bob", "secret123")
		testutil.AssertNoError(t, err)

		found, err := svc.GetUserByEmail("BOB@example.com")
		testutil.AssertNoError(t, err)
		if found.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, found.ID)
		}
	})

	t.Run("by_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("carol@example.com", "carol", "secret123")
		testutil.AssertNoError(t, err)

		found, err := svc.GetUserByUsername("carol")
		testutil.AssertNoError(t, err)
		if found.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("missing@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		_, err = svc.GetUserByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("dave@example.com", "dave", "correcthorse")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correcthorse") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongbattery") {
		t.Error("expected wrong password to fail")
	}
}
