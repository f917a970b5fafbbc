package validation_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type userModel struct {
	Mail         string  `json:"mail"`
	Phone        string  `json:"phone"`
	Picture      *string `json:"picture"`
	ASCII        string  `json:"ascii"`
	Alphanumeric string  `json:"alphanumeric"`
	Password     string  `json:"password"`
	Delivery     string  `json:"delivery"`
	GitHub       string  `json:"github"`
	Twitter      *string `json:"twitter"`
	Message      string  `json:"message"`
}

var (
	userMail         = validation.NewField("Mail", func(u userModel) string { return u.Mail })
	userPhone        = validation.NewField("Phone", func(u userModel) string { return u.Phone })
	userPicture      = validation.NewField("Picture", func(u userModel) *string { return u.Picture })
	userASCII        = validation.NewField("ASCII", func(u userModel) string { return u.ASCII })
	userAlphanumeric = validation.NewField("Alphanumeric", func(u userModel) string { return u.Alphanumeric })
	userPassword     = validation.NewField("Password", func(u userModel) string { return u.Password })
	userDelivery     = validation.NewField("Delivery", func(u userModel) string { return u.Delivery })
	userGitHub       = validation.NewField("GitHub", func(u userModel) string { return u.GitHub })
	userTwitter      = validation.NewField("Twitter", func(u userModel) *string { return u.Twitter })
	userMessage      = validation.NewField("Message", func(u userModel) string { return u.Message })
)

func (userModel) Validations() (*validation.Validations[userModel], error) {
	vs := validation.NewValidations[userModel]()
	validation.AddAt(vs, userMail, []string{"mail"}, validation.Not(validation.Empty[string]()).And(validation.Mail()))
	validation.AddAt(vs, userPhone, []string{"phone"}, validation.Phone())
	validation.AddAt(vs, userPicture, []string{"picture"}, validation.OrOptional(validation.Nil[string](), validation.URL()))
	validation.AddAt(vs, userASCII, []string{"ascii"}, validation.ASCII())
	validation.AddAt(vs, userAlphanumeric, []string{"alphanumeric"}, validation.Alphanumeric())
	validation.AddAt(vs, userPassword, []string{"password"}, validation.Alphanumeric().And(validation.CountAtLeast[string](8)).And(validation.CountAtMost[string](12)))
	validation.AddAt(vs, userDelivery, []string{"delivery"}, validation.In("short", "long"))
	validation.AddFuncAt(vs, userGitHub, []string{"github"}, "a GitHub link", func(link string) error {
		if strings.HasPrefix(link, "https://github.com/") {
			return nil
		}
		return validation.NewError("isn't a valid GitHub link")
	})
	if err := validation.AddFunc(vs, userTwitter, "a Twitter username", func(twitter *string) error {
		if twitter == nil || strings.HasPrefix(*twitter, "@") {
			return nil
		}
		return validation.NewError("")
	}, validation.WithMessage(func(*string) string { return "Twitter username should start with '@'" })); err != nil {
		return nil, err
	}
	if err := validation.Add(vs, userMessage, validation.Count[string](8, 11), validation.WithMessage(func(message string) string {
		return "Your message: '" + message + "' isn't between 8 and 11 characters"
	})); err != nil {
		return nil, err
	}
	return vs, nil
}

func validUser() userModel {
	twitter := "@twitter"
	return userModel{
		Mail:         "valid@example.com",
		Phone:        "+33642424242",
		ASCII:        "someasciitext",
		Alphanumeric: "S0m3alphanum3rictext",
		Password:     "somesuperpw",
		Delivery:     "long",
		GitHub:       "https://github.com/amoriarty",
		Twitter:      &twitter,
		Message:      "somemessage",
	}
}

func TestValidate(t *testing.T) {
	ptr := func(s string) *string { return &s }

	t.Run("valid model", func(t *testing.T) {
		assert.NoError(t, validation.Validate(validUser()))
	})

	tests := []struct {
		name   string
		mutate func(*userModel)
		want   string
	}{
		{"invalid mail", func(u *userModel) { u.Mail = "invalid_mail" }, "'mail' isn't a valid mail address"},
		{"empty mail", func(u *userModel) { u.Mail = "" }, "'mail' is empty"},
		{"invalid phone", func(u *userModel) { u.Phone = "0989" }, "'phone' isn't a valid phone number"},
		{"invalid url", func(u *userModel) { u.Picture = ptr("not_an_url") }, "'picture' isn't nil or 'picture' isn't a valid URL"},
		{"non ascii", func(u *userModel) { u.ASCII = "😅" }, "'ascii' contains an invalid character: '😅' (allowed: A-Z, a-z, 0-9)"},
		{"non alphanumeric", func(u *userModel) { u.Alphanumeric = "😅" }, "'alphanumeric' contains an invalid character: '😅' (allowed: A-Z, a-z, 0-9)"},
		{"short password", func(u *userModel) { u.Password = "short" }, "'password' is less than required minimum of 8 characters"},
		{"long password", func(u *userModel) { u.Password = "awaytolongpassword" }, "'password' is greater than required maximum of 12 characters"},
		{"not in list", func(u *userModel) { u.Delivery = "not in" }, "'delivery' isn't in short, long"},
		{"custom check", func(u *userModel) { u.GitHub = "https://example.org" }, "'github' isn't a valid GitHub link"},
		{"custom message on check", func(u *userModel) { u.Twitter = ptr("user") }, "Twitter username should start with '@'"},
		{"custom message on validator", func(u *userModel) { u.Message = "" }, "Your message: '' isn't between 8 and 11 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := validation.Validate(u)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, validation.IsError(err))
		})
	}

	t.Run("valid picture", func(t *testing.T) {
		u := validUser()
		u.Picture = ptr("https://example.com")
		assert.NoError(t, validation.Validate(u))
	})

	t.Run("absent twitter", func(t *testing.T) {
		u := validUser()
		u.Twitter = nil
		assert.NoError(t, validation.Validate(u))
	})
}

func TestValidateFields(t *testing.T) {
	t.Run("validates requested fields only", func(t *testing.T) {
		u := validUser()
		u.Phone = "0989"
		assert.NoError(t, validation.ValidateFields(u, userMail, userPicture))
		assert.EqualError(t, validation.ValidateFields(u, userMail, userPhone), "'phone' isn't a valid phone number")
	})

	t.Run("fails for fields without validator", func(t *testing.T) {
		field := validation.NewField("Unregistered", func(u userModel) int { return 0 })
		assert.ErrorIs(t, validation.ValidateFields(validUser(), field), validation.ErrUndefinedField)
	})
}

func TestValidateAll(t *testing.T) {
	u := validUser()
	u.Mail = ""
	u.Phone = "0989"

	err := validation.ValidateAll(u)
	require.Error(t, err)
	assert.Equal(t, map[string][]string{
		"mail":  {"is empty"},
		"phone": {"isn't a valid phone number"},
	}, validation.Details(err))

	assert.NoError(t, validation.ValidateAll(validUser()))
}

type brokenModel struct{}

var errBrokenSetup = errors.New("setup failed")

func (brokenModel) Validations() (*validation.Validations[brokenModel], error) {
	return nil, errBrokenSetup
}

func TestValidate_SetupError(t *testing.T) {
	field := validation.NewField("Any", func(brokenModel) string { return "" })
	assert.ErrorIs(t, validation.Validate(brokenModel{}), errBrokenSetup)
	assert.ErrorIs(t, validation.ValidateFields(brokenModel{}, field), errBrokenSetup)
	assert.ErrorIs(t, validation.ValidateAll(brokenModel{}), errBrokenSetup)
}

func TestValidate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := validUser()
			if i%2 == 0 {
				u.Mail = ""
				assert.EqualError(t, validation.Validate(u), "'mail' is empty")
				return
			}
			assert.NoError(t, validation.Validate(u))
		}()
	}
	wg.Wait()
}
