package session

import (
	"context"
	"errors"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/model"
)

// Fallback messages when the backend error carries no structured one.
const (
	msgLoginFailed    = "Đăng nhập thất bại"
	msgRegisterFailed = "Đăng ký thất bại"
	msgUpdateFailed   = "Cập nhật thông tin thất bại"
	msgResetFailed    = "Đặt lại mật khẩu thất bại"
)

// Result is how user-facing auth flows report their outcome. These flows
// never surface an error to the caller.
type Result struct {
	Success bool
	Message string
}

// Store runs the session state machine: anonymous until a login stores a
// token and user, anonymous again after logout or invalidation. The
// persisted record is a mirror; Current re-derives state on every call.
type Store struct {
	sessions *Manager
	api      *backend.Client
	log      *zap.Logger
}

type StoreParams struct {
	fx.In

	Sessions *Manager
	API      *backend.Client
	Log      *zap.Logger
}

func NewStore(p StoreParams) *Store {
	return &Store{
		sessions: p.Sessions,
		api:      p.API,
		log:      p.Log,
	}
}

// Current restores the session from the durable mirror. A corrupt user
// record resets the whole session: a half-valid record is
// indistinguishable from tampering.
func (s *Store) Current(ctx context.Context) model.Session {
	user, err := decodeUser(s.sessions.UserRecord(ctx))
	if err != nil {
		s.log.Warn("clearing corrupt session record", zap.Error(err))
		s.sessions.Invalidate(ctx)
		return model.Session{}
	}

	return model.Session{
		Token: s.sessions.Token(ctx),
		User:  user,
	}
}

func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Current(ctx).Authenticated()
}

func (s *Store) IsAdmin(ctx context.Context) bool {
	return s.Current(ctx).Admin()
}

func (s *Store) Login(ctx context.Context, username, password string) Result {
	data, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.log.Warn("login failed", zap.String("username", username), zap.Error(err))
		return Result{Message: backend.Message(err, msgLoginFailed)}
	}

	record, err := encodeUser(&data.User)
	if err != nil {
		s.log.Error("failed to encode user record", zap.Error(err))
		return Result{Message: msgLoginFailed}
	}

	s.sessions.PutSession(ctx, data.Token, record)
	return Result{Success: true}
}

// Register creates an account without logging it in.
func (s *Store) Register(ctx context.Context, in backend.RegisterInput) Result {
	message, err := s.api.Register(ctx, in)
	if err != nil {
		s.log.Warn("registration failed", zap.String("username", in.Username), zap.Error(err))
		return Result{Message: backend.Message(err, msgRegisterFailed)}
	}
	return Result{Success: true, Message: message}
}

// Logout tells the backend best-effort and then clears the session
// unconditionally. It cannot fail locally.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil && !errors.Is(err, backend.ErrUnauthorized) {
		s.log.Warn("logout call failed", zap.Error(err))
	}
	s.sessions.Invalidate(ctx)
}

// UpdateProfile sends the changed fields and merges what the backend
// echoes back into the stored user record. Fields the echo leaves empty
// keep their current values.
func (s *Store) UpdateProfile(ctx context.Context, id int64, fields map[string]string, avatarName string, avatar io.Reader) Result {
	echoed, err := s.api.UpdateUser(ctx, id, fields, avatarName, avatar)
	if err != nil {
		s.log.Warn("profile update failed", zap.Int64("id", id), zap.Error(err))
		return Result{Message: backend.Message(err, msgUpdateFailed)}
	}

	merged := mergeUser(s.Current(ctx).User, echoed)
	s.putUser(ctx, merged)
	return Result{Success: true}
}

// FetchCurrentUser replaces the stored user record wholesale from
// /api/users/me. Failures are logged and swallowed.
func (s *Store) FetchCurrentUser(ctx context.Context) {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Warn("failed to refresh current user", zap.Error(err))
		return
	}
	s.putUser(ctx, &user)
}

func (s *Store) ForgotPassword(ctx context.Context, email string) Result {
	message, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return Result{Message: backend.Message(err, msgResetFailed)}
	}
	return Result{Success: true, Message: message}
}

func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) Result {
	message, err := s.api.ResetPassword(ctx, token, newPassword)
	if err != nil {
		return Result{Message: backend.Message(err, msgResetFailed)}
	}
	return Result{Success: true, Message: message}
}

func (s *Store) putUser(ctx context.Context, user *model.User) {
	record, err := encodeUser(user)
	if err != nil {
		s.log.Error("failed to encode user record", zap.Error(err))
		return
	}
	s.sessions.PutUserRecord(ctx, record)
}

func mergeUser(current *model.User, echoed model.User) *model.User {
	if current == nil {
		return &echoed
	}

	merged := *current
	if echoed.ID > 0 {
		merged.ID = echoed.ID
	}
	if echoed.Username != "" {
		merged.Username = echoed.Username
	}
	if echoed.Email != "" {
		merged.Email = echoed.Email
	}
	if echoed.FullName != "" {
		merged.FullName = echoed.FullName
	}
	if echoed.Avatar != "" {
		merged.Avatar = echoed.Avatar
	}
	if echoed.Role != "" {
		merged.Role = echoed.Role
	}
	if echoed.Phone != "" {
		merged.Phone = echoed.Phone
	}
	if echoed.CreatedAt != "" {
		merged.CreatedAt = echoed.CreatedAt
	}
	return &merged
}
