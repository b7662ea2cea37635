package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"time"

	"instituteapi/model"
	"instituteapi/repository"
	"instituteapi/services"
	"instituteapi/utils"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type UserService struct {
	Users           *repository.UsersRepo
	Tokens          *services.TokenService
	Revoker         services.TokenRevoker
	AllowRoleSignup bool
	TOTPIssuer      string
	Now             func() time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

type LoginInput struct {
	Email     string
	Password  string
	TOTPCode  string
	UserAgent string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

type TwoFactorSetup struct {
	Secret string
	URL    string
	QRCode string // data URI of a PNG
}

func (s *UserService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	email := model.NormalizeEmail(in.Email)

	role := model.RoleUser
	if s.AllowRoleSignup && in.Role != "" {
		if !in.Role.Valid() {
			return nil, invalid("role", "role must be one of: admin editor user")
		}
		role = in.Role
	}

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, ErrConflict
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.newUser(in.Name, email, in.Password, role)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, storeErr(err)
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

func (s *UserService) newUser(name, email, password string, role model.Role) (*model.User, error) {
	hash, err := services.HashPassword(password)
	if errors.Is(err, services.ErrPasswordTooLong) {
		return nil, invalid("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hash,
		Role:     role,
	}
	user.Init(s.now())
	return user, nil
}

// Login checks credentials and, when enabled, the TOTP code, then issues a token
func (s *UserService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.Users.FindByEmail(ctx, model.NormalizeEmail(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := services.VerifyPassword(user.Password, in.Password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if strings.TrimSpace(in.TOTPCode) == "" {
			utils.TrackAuthAttempt("failure", "2fa")
			return nil, ErrTwoFactorRequired
		}
		if !s.validCode(in.TOTPCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			return nil, ErrInvalidTwoFactor
		}
	}

	now := s.now()
	user.LastLoginAt = &now
	if in.UserAgent != "" {
		user.LastLoginDevice = utils.DescribeUserAgent(in.UserAgent)
	}
	user.Touch(now)
	if err := s.Users.Replace(ctx, user.ID, user); err != nil {
		utils.Log().Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to record login")
	}

	token, expiresAt, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	utils.TrackAuthAttempt("success", "login")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the token until its own expiry
func (s *UserService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	if s.Revoker == nil {
		return nil
	}
	return s.Revoker.Revoke(ctx, token, expiresAt)
}

func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.FindByID(ctx, oid)
	return user, storeErr(err)
}

func (s *UserService) List(ctx context.Context, page Page) (PageResult[model.User], error) {
	page = page.Normalize()
	total, err := s.Users.Count(ctx, nil)
	if err != nil {
		return PageResult[model.User]{}, err
	}
	users, err := s.Users.Find(ctx, repository.Query{
		Sort:  []repository.Sort{{Field: "createdAt", Desc: true}},
		Skip:  page.skip(),
		Limit: int64(page.Limit),
	})
	if err != nil {
		return PageResult[model.User]{}, err
	}
	return PageResult[model.User]{Items: users, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *UserService) save(ctx context.Context, user *model.User) error {
	user.Touch(s.now())
	return storeErr(s.Users.Replace(ctx, user.ID, user))
}

// SetupTwoFactor generates a pending secret that becomes active after EnableTwoFactor
func (s *UserService) SetupTwoFactor(ctx context.Context, userID string) (*TwoFactorSetup, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled {
		return nil, invalid("twoFactor", "two-factor authentication is already enabled")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.TOTPIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		return nil, err
	}

	img, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	user.PendingTwoFactorSecret = key.Secret()
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &TwoFactorSetup{
		Secret: key.Secret(),
		URL:    key.URL(),
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func (s *UserService) EnableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if user.PendingTwoFactorSecret == "" {
		return invalid("code", "two-factor setup has not been started")
	}
	if !s.validCode(code, user.PendingTwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa")
		return ErrInvalidTwoFactor
	}

	user.TwoFactorEnabled = true
	user.TwoFactorSecret = user.PendingTwoFactorSecret
	user.PendingTwoFactorSecret = ""
	utils.TrackAuthAttempt("success", "2fa")
	return s.save(ctx, user)
}

func (s *UserService) DisableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return invalid("twoFactor", "two-factor authentication is not enabled")
	}
	if !s.validCode(code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa")
		return ErrInvalidTwoFactor
	}

	user.TwoFactorEnabled = false
	user.TwoFactorSecret = ""
	return s.save(ctx, user)
}

func (s *UserService) validCode(code, secret string) bool {
	ok, err := totp.ValidateCustom(strings.TrimSpace(code), secret, s.now(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// EnsureAdmin creates the bootstrap admin when no account uses the email yet
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	if name == "" {
		name = "Administrator"
	}
	user, err := s.newUser(name, email, password, model.RoleAdmin)
	if err != nil {
		return false, err
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return false, storeErr(err)
	}
	utils.Log().Info().Str("email", email).Msg("seeded admin account")
	return true, nil
}
