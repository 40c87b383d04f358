package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginData, error) {
	return request[LoginData](ctx, c, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"username": username,
		"password": password,
	})
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullname,omitempty"`
}

// Register creates an account. It returns the backend's message; it does
// not log the new account in.
func (c *Client) Register(ctx context.Context, in RegisterInput) (string, error) {
	env, err := c.call(ctx, http.MethodPost, "/api/auth/register", nil, in)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

// CurrentUser fetches the account owning the request's token.
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	return get[model.User](ctx, c, "/api/users/me", nil)
}

// UpdateUser sends a multipart profile update. fields holds the text
// parts; avatar is optional and sent as a file part named "avatar".
func (c *Client) UpdateUser(ctx context.Context, id int64, fields map[string]string, avatarName string, avatar io.Reader) (model.User, error) {
	var out model.User

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return out, err
		}
	}
	if avatar != nil {
		part, err := mw.CreateFormFile("avatar", avatarName)
		if err != nil {
			return out, err
		}
		if _, err := io.Copy(part, avatar); err != nil {
			return out, err
		}
	}
	if err := mw.Close(); err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/api/users/%d", c.base, id), buf)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", http.MethodPut),
			zap.String("path", fmt.Sprintf("/api/users/%d", id)),
			zap.Error(err))
		return out, err
	}
	defer resp.Body.Close()

	env, err := c.decode(ctx, resp)
	if err != nil {
		return out, err
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, fmt.Errorf("failed to decode profile update response: %w", err)
		}
	}
	return out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	env, err := c.call(ctx, http.MethodPost, "/api/auth/forgot-password", nil, map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	env, err := c.call(ctx, http.MethodPost, "/api/auth/reset-password", nil, map[string]string{
		"token":       token,
		"newPassword": newPassword,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
