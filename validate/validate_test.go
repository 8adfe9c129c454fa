package validate_test

import (
	"strings"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/validate"
	"github.com/go-playground/validator/v10"
)

func TestUsername(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.RegisterValidation("validate_username", validate.Username)

	args := []struct {
		username string
		valid    bool
	}{
		{username: "alice", valid: true},
		{username: "alice_01", valid: true},
		{username: "al", valid: false},
		{username: "Alice", valid: false},
		{username: "alice!", valid: false},
		{username: strings.Repeat("a", 21), valid: false},
	}

	for _, arg := range args {
		err := v.Var(arg.username, "validate_username")
		if (err == nil) != arg.valid {
			t.Fatalf("username %q : got valid=%v want valid=%v", arg.username, err == nil, arg.valid)
		}
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.RegisterValidation("validate_password", validate.Password)

	args := []struct {
		password string
		valid    bool
	}{
		{password: "c0rr3ct-H0rse_battery#Staple", valid: true},
		{password: "password", valid: false},
		{password: "12345678", valid: false},
	}

	for _, arg := range args {
		err := v.Var(arg.password, "validate_password")
		if (err == nil) != arg.valid {
			t.Fatalf("password %q : got valid=%v want valid=%v", arg.password, err == nil, arg.valid)
		}
	}
}

func TestChannelAboutBoundary(t *testing.T) {
	t.Parallel()

	type payload struct {
		About string `validate:"required,min=11,max=200"`
	}

	v := validator.New()

	args := []struct {
		length int
		valid  bool
	}{
		{length: 10, valid: false},
		{length: 11, valid: true},
		{length: 200, valid: true},
		{length: 201, valid: false},
	}

	for _, arg := range args {
		err := v.Struct(payload{About: strings.Repeat("a", arg.length)})
		if (err == nil) != arg.valid {
			t.Fatalf("about of length %d : got valid=%v want valid=%v", arg.length, err == nil, arg.valid)
		}
	}
}
